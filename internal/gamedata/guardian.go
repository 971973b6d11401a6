package gamedata

import "github.com/gdamore/tcell/v2"

// GuardianDef defines the chamber guardian, loaded from JSON.
// Its hp must match the engine's starting guardian HP; the driver only
// uses the definition for presentation.
type GuardianDef struct {
	ID    string `json:"id"`    // Unique identifier (e.g. "ruin_guardian")
	Name  string `json:"name"`  // Display name (e.g. "Ruin Guardian")
	Glyph string `json:"glyph"` // Single character for the battle banner
	Color string `json:"color"` // Hex color code
	HP    int    `json:"hp"`    // Starting hit points
}

// GlyphRune returns the glyph as a rune for rendering.
func (g *GuardianDef) GlyphRune() rune {
	if len(g.Glyph) == 0 {
		return '?'
	}
	return rune(g.Glyph[0])
}

// TCellColor returns the color as a tcell.Color.
func (g *GuardianDef) TCellColor() tcell.Color {
	color, err := ParseHexColor(g.Color)
	if err != nil {
		return tcell.ColorWhite // fallback
	}
	return color
}

// LoadGuardian loads the guardian definition from the embedded
// guardian.json file.
func LoadGuardian() (*GuardianDef, error) {
	def, err := Load[GuardianDef]("guardian.json")
	if err != nil {
		return nil, err
	}
	return &def, nil
}

// MustLoadGuardian loads the guardian definition, panicking on error.
func MustLoadGuardian() *GuardianDef {
	def, err := LoadGuardian()
	if err != nil {
		panic(err)
	}
	return def
}
