package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/cristianoliveira/kioskboard/internal/media"
	mediarender "github.com/cristianoliveira/kioskboard/internal/render"
)

// CertificatesState is what the certificates pane shows.
type CertificatesState struct {
	Files   int
	Loading bool
	Empty   bool
	Failed  bool
	Spinner string
	// Rows are the carousel rows at the current offset.
	Rows []string
}

// CertificatesTitle is the pane header, e.g. "Certificates · 4 Files". Narrow
// panes get a shorter label so the count stays readable.
func CertificatesTitle(files, width int) string {
	count := fmt.Sprintf("%d Files", files)
	for _, label := range []string{"Certificates", "Certs"} {
		if title := label + separator + count; ansi.StringWidth(title) <= width {
			return title
		}
	}
	return count
}

// Certificates renders the carousel pane.
func Certificates(state CertificatesState, width, height int) []string {
	title := CertificatesTitle(state.Files, width)
	bodyHeight := max(height-1, 0)
	switch {
	case state.Failed:
		return Pane(title, Message("Listing unavailable", width, bodyHeight), width, height)
	case state.Empty:
		return Pane(title, Message("No certificates", width, bodyHeight), width, height)
	case state.Loading && len(state.Rows) == 0:
		return Pane(title, Message(state.Spinner+" Loading certificates", width, bodyHeight), width, height)
	}
	return Pane(title, state.Rows, width, height)
}

// BoardState is what the board pane shows.
type BoardState struct {
	Title string
	URL   string
}

// Board renders the board panel: a frame carrying the title and link.
func Board(state BoardState, width, height int) []string {
	title := state.Title
	if title == "" {
		title = "Board"
	}
	bodyHeight := max(height-1, 0)
	inner := max(width-4, 1)

	lines := []string{lipgloss.NewStyle().Bold(true).Render(truncate(title, inner))}
	if state.URL == "" {
		lines = append(lines, dimStyle.Render(truncate("no board configured", inner)))
	} else {
		lines = append(lines, "")
		for _, chunk := range chunk(state.URL, inner) {
			lines = append(lines, dimStyle.Render(chunk))
		}
	}
	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("238")).
		Padding(0, 1).
		Width(max(width-2, 1)).
		Render(strings.Join(lines, "\n"))

	cardLines := strings.Split(card, "\n")
	body := make([]string, 0, bodyHeight)
	top := max((bodyHeight-len(cardLines))/2, 0)
	for i := 0; i < top; i++ {
		body = append(body, "")
	}
	for _, l := range cardLines {
		body = append(body, Center(l, width))
	}
	return Pane(title, body, width, height)
}

// chunk splits s into pieces of at most n runes.
func chunk(s string, n int) []string {
	runes := []rune(s)
	var out []string
	for len(runes) > n {
		out = append(out, string(runes[:n]))
		runes = runes[n:]
	}
	return append(out, string(runes))
}

// MediaState is what the media pane shows.
type MediaState struct {
	Loaded   bool
	Failed   bool
	Spinner  string
	Name     string
	Kind     media.Kind
	Position string
	Playing  bool
	Blocked  bool
	Label    string
	Preview  *mediarender.Surface
}

// MediaTitle is the pane header, e.g. "Media · 2/5 ▶".
func MediaTitle(position string, playing bool) string {
	return "Media" + separator + position + " " + playSymbol(playing)
}

// Media renders the slideshow pane.
func Media(state MediaState, width, height int) []string {
	title := MediaTitle(state.Position, state.Playing)
	bodyHeight := max(height-1, 0)

	var body []string
	switch {
	case !state.Loaded:
		body = Message(state.Spinner+" Loading media", width, bodyHeight)
	case state.Failed:
		body = Message("Media unavailable", width, bodyHeight)
	case state.Name == "":
		body = Message("No media", width, bodyHeight)
	case state.Kind == media.Video:
		body = videoCard(state, width, bodyHeight)
	case state.Preview != nil:
		body = centered(state.Preview.Lines, width, bodyHeight)
	default:
		body = Message(state.Name, width, bodyHeight)
	}

	if state.Label != "" && bodyHeight > 0 {
		body = Block(body, width, bodyHeight)
		body[bodyHeight/2] = Center(Label(state.Label), width)
	}
	return Pane(title, body, width, height)
}

func videoCard(state MediaState, width, height int) []string {
	lines := []string{
		lipgloss.NewStyle().Bold(true).Render(playingSymbol + " " + truncate(state.Name, max(width-2, 1))),
	}
	if state.Blocked {
		lines = append(lines, dimStyle.Render(truncate("playback unavailable, advancing on timer", width)))
	}
	return centered(lines, width, height)
}

// centered places lines in the middle of a width x height body.
func centered(lines []string, width, height int) []string {
	body := make([]string, 0, height)
	top := max((height-len(lines))/2, 0)
	for i := 0; i < top; i++ {
		body = append(body, "")
	}
	for _, l := range lines {
		body = append(body, Center(l, width))
	}
	return body
}
