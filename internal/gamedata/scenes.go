package gamedata

import (
	"strings"

	"github.com/gdamore/tcell/v2"
)

// SceneDef is one story beat's narration, loaded from JSON.
// Lines may contain {placeholders} that Render fills in at display time
// (e.g. {name}, {damage}, {hp}).
type SceneDef struct {
	ID      string   `json:"id"`      // Unique identifier (e.g. "trap")
	Color   string   `json:"color"`   // Hex color for the narration, empty for default
	Lines   []string `json:"lines"`   // Narration lines shown in order
	Options []string `json:"options"` // Numbered menu choices, nil for none
}

// Render returns the scene's lines with every {placeholder} replaced
// from vars. Unknown placeholders are left as-is.
func (s *SceneDef) Render(vars map[string]string) []string {
	if len(vars) == 0 {
		return s.Lines
	}
	pairs := make([]string, 0, len(vars)*2)
	for k, v := range vars {
		pairs = append(pairs, "{"+k+"}", v)
	}
	replacer := strings.NewReplacer(pairs...)

	lines := make([]string, len(s.Lines))
	for i, line := range s.Lines {
		lines[i] = replacer.Replace(line)
	}
	return lines
}

// TCellColor returns the narration color, or white when unset or invalid.
func (s *SceneDef) TCellColor() tcell.Color {
	if s.Color == "" {
		return tcell.ColorWhite
	}
	color, err := ParseHexColor(s.Color)
	if err != nil {
		return tcell.ColorWhite
	}
	return color
}

// ScenesFile represents the structure of scenes.json.
type ScenesFile struct {
	Scenes []SceneDef `json:"scenes"`
}

// LoadScenes loads scene definitions from the embedded scenes.json file.
func LoadScenes() ([]SceneDef, error) {
	file, err := Load[ScenesFile]("scenes.json")
	if err != nil {
		return nil, err
	}
	return file.Scenes, nil
}
