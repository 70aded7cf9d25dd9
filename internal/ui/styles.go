package ui

import "fmt"

// ANSI256 color codes for phase and rarity rendering.
const (
	colorGreen  = 71
	colorYellow = 178
	colorOrange = 208
	colorRed    = 160
	colorBlue   = 74
	colorGray   = 245
	colorGold   = 220
)

var noColor bool

// phaseColors maps the classifier's color names to ANSI codes.
var phaseColors = map[string]int{
	"green":  colorGreen,
	"yellow": colorYellow,
	"orange": colorOrange,
	"red":    colorRed,
	"blue":   colorBlue,
	"gray":   colorGray,
}

// RenderPhase returns s colored for the given classifier color name.
func RenderPhase(s, color string) string {
	code, ok := phaseColors[color]
	if noColor || !ok {
		return s
	}
	return fmt.Sprintf("\x1b[38;5;%dm%s\x1b[0m", code, s)
}

// RenderRare returns s in the rare-item gold color.
func RenderRare(s string) string {
	if noColor {
		return s
	}
	return fmt.Sprintf("\x1b[38;5;%dm%s\x1b[0m", colorGold, s)
}

// RenderMuted returns s in the muted gray color.
func RenderMuted(s string) string {
	if noColor {
		return s
	}
	return fmt.Sprintf("\x1b[38;5;%dm%s\x1b[0m", colorGray, s)
}

// ForceNoColor disables color output globally.
func ForceNoColor() {
	noColor = true
}
