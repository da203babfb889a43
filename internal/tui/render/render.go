// Package render draws the dashboard panes.
package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/cristianoliveira/kioskboard/internal/colors"
	"github.com/cristianoliveira/kioskboard/internal/errors"
)

const (
	separator     = " · "
	ellipsis      = "…"
	resizerGlyph  = "│"
	playingSymbol = "▶"
	pausedSymbol  = "⏸"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(ansiColorNumber(colors.Blue)))
	dimStyle           = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	resizerStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	resizerActiveStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ansiColorNumber(colors.Yellow)))
	labelStyle         = lipgloss.NewStyle().Bold(true).Reverse(true).Padding(0, 2)
	messageStyles      = map[errors.MessageType]lipgloss.Style{
		errors.MessageTypeError:   lipgloss.NewStyle().Foreground(lipgloss.Color(ansiColorNumber(colors.Red))),
		errors.MessageTypeWarning: lipgloss.NewStyle().Foreground(lipgloss.Color(ansiColorNumber(colors.Yellow))),
		errors.MessageTypeInfo:    lipgloss.NewStyle().Foreground(lipgloss.Color(ansiColorNumber(colors.Blue))),
		errors.MessageTypeSuccess: lipgloss.NewStyle().Foreground(lipgloss.Color(ansiColorNumber(colors.Green))),
	}
)

// Fit crops or pads s to exactly width cells.
func Fit(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if w := ansi.StringWidth(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return ansi.Truncate(s, width, "")
}

// Center places s in the middle of width cells, cropping when it does not fit.
func Center(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if ansi.StringWidth(s) >= width {
		return Fit(s, width)
	}
	return Fit(lipgloss.PlaceHorizontal(width, lipgloss.Center, s), width)
}

// Block fits lines into a width x height rectangle.
func Block(lines []string, width, height int) []string {
	out := make([]string, height)
	for i := range out {
		line := ""
		if i < len(lines) {
			line = lines[i]
		}
		out[i] = Fit(line, width)
	}
	return out
}

// Pane renders a header row above body, sized to width x height.
func Pane(title string, body []string, width, height int) []string {
	if height <= 0 {
		return nil
	}
	header := Fit(headerStyle.Render(truncate(title, width)), width)
	return append([]string{header}, Block(body, width, height-1)...)
}

// Message renders a placeholder line in the middle of a body of height rows.
func Message(text string, width, height int) []string {
	lines := make([]string, height)
	if height > 0 {
		lines[height/2] = Center(dimStyle.Render(truncate(text, width)), width)
	}
	return lines
}

// Resizer renders a splitter column of height rows.
func Resizer(width, height int, active bool) []string {
	style := resizerStyle
	if active {
		style = resizerActiveStyle
	}
	lines := make([]string, height)
	for i := range lines {
		lines[i] = Center(style.Render(resizerGlyph), width)
	}
	return lines
}

// Columns joins equally tall columns side by side.
func Columns(cols ...[]string) string {
	if len(cols) == 0 {
		return ""
	}
	height := 0
	for _, c := range cols {
		height = max(height, len(c))
	}
	var b strings.Builder
	for row := 0; row < height; row++ {
		for _, c := range cols {
			if row < len(c) {
				b.WriteString(c[row])
			}
		}
		if row < height-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// StatusLine renders msg, falling back to help when there is no message.
func StatusLine(msg *errors.Message, help string, width int) string {
	if msg == nil {
		return Fit(dimStyle.Render(truncate(help, width)), width)
	}
	style, ok := messageStyles[msg.Type]
	if !ok {
		style = messageStyles[errors.MessageTypeError]
	}
	return Fit(style.Render(truncate(msg.Text, width)), width)
}

// Label renders the transient feedback label.
func Label(text string) string {
	return labelStyle.Render(text)
}

func playSymbol(playing bool) string {
	if playing {
		return playingSymbol
	}
	return pausedSymbol
}

// truncate shortens plain text to width cells with an ellipsis.
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if ansi.StringWidth(s) <= width {
		return s
	}
	return ansi.Truncate(s, width, ellipsis)
}

// ansiColorNumber extracts the color number from an ANSI escape code.
func ansiColorNumber(code string) string {
	if len(code) < 2 {
		return ""
	}
	lastSemicolon := strings.LastIndex(code, ";")
	if lastSemicolon == -1 {
		return ""
	}
	return code[lastSemicolon+1 : len(code)-1]
}
