package ui

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// Line is one narration line with its display color.
type Line struct {
	Text  string
	Color tcell.Color
}

// View is everything the renderer needs to draw one frame.
type View struct {
	Name         string
	HP           int
	HasPotion    bool
	HasKey       bool
	GuardianHP   int
	ShowGuardian bool   // battle banner visible
	Log          []Line // narration, oldest first
	Menu         []string
	Prompt       string // pending text input (name entry), empty otherwise
}

// Renderer draws the adventure to the screen.
type Renderer struct {
	screen *Screen
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Render draws a full frame: status bar, narration log, menu, prompt.
func (r *Renderer) Render(v View) {
	r.screen.Clear()
	width, height := r.screen.Size()
	if width <= 0 || height <= 0 {
		return
	}

	r.drawStatusBar(v, width)

	// Reserve rows for the menu and prompt at the bottom.
	reserved := len(v.Menu)
	if v.Prompt != "" {
		reserved++
	}
	logTop := 2
	logHeight := height - logTop - reserved - 1
	if logHeight < 1 {
		logHeight = 1
	}

	r.drawLog(v.Log, logTop, logHeight, width)

	y := logTop + logHeight
	for i, option := range v.Menu {
		style := tcell.StyleDefault.Foreground(tcell.ColorAqua)
		r.screen.Print(2, y, fmt.Sprintf("%d. %s", i+1, option), style)
		y++
	}
	if v.Prompt != "" {
		style := tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
		x := r.screen.Print(2, y, "> "+v.Prompt, style)
		r.screen.SetContent(x, y, '_', style)
	}

	r.screen.Show()
}

// drawStatusBar draws the top line: name, HP, inventory, guardian HP.
func (r *Renderer) drawStatusBar(v View, width int) {
	style := tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)

	status := fmt.Sprintf(" %s | HP: %d", displayName(v.Name), v.HP)
	if v.HasPotion {
		status += " | potion"
	}
	if v.HasKey {
		status += " | key"
	}
	if v.ShowGuardian {
		status += fmt.Sprintf(" | Guardian HP: %d", v.GuardianHP)
	}
	x := r.screen.Print(0, 0, status, style)
	for ; x < width; x++ {
		r.screen.SetContent(x, 0, ' ', style)
	}

	rule := tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	for x := 0; x < width; x++ {
		r.screen.SetContent(x, 1, '-', rule)
	}
}

// drawLog draws the tail of the narration log that fits the pane,
// word-wrapped to the terminal width.
func (r *Renderer) drawLog(log []Line, top, height, width int) {
	wrapped := make([]Line, 0, len(log))
	for _, line := range log {
		for _, text := range Wrap(line.Text, width-4) {
			wrapped = append(wrapped, Line{Text: text, Color: line.Color})
		}
	}

	start := 0
	if len(wrapped) > height {
		start = len(wrapped) - height
	}
	y := top
	for _, line := range wrapped[start:] {
		color := line.Color
		if color == 0 {
			color = tcell.ColorWhite
		}
		r.screen.Print(2, y, line.Text, tcell.StyleDefault.Foreground(color))
		y++
	}
}

// Wrap breaks text into lines no wider than width, splitting on spaces.
// Words longer than width are left intact on their own line.
func Wrap(text string, width int) []string {
	if width < 1 {
		return []string{text}
	}
	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{""}
	}

	var lines []string
	current := words[0]
	for _, word := range words[1:] {
		if len(current)+1+len(word) <= width {
			current += " " + word
		} else {
			lines = append(lines, current)
			current = word
		}
	}
	return append(lines, current)
}

// displayName falls back to a placeholder until the player is named.
func displayName(name string) string {
	if name == "" {
		return "Adventurer"
	}
	return name
}
