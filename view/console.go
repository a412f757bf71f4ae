package view

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/mattn/go-isatty"

	"github.com/s0up4200/moviepeek/movie"
)

// collapsedPlotLen is the plot length shown while the plot is collapsed.
const collapsedPlotLen = 160

const (
	ansiReset  = "\033[0m"
	ansiBold   = "\033[1m"
	ansiDim    = "\033[2m"
	ansiRed    = "\033[31m"
	ansiYellow = "\033[33m"
	ansiCyan   = "\033[36m"
)

var bannerText = map[Banner]string{
	BannerNotFound: "Movie not found.",
	BannerError:    "Could not reach the movie service. Try again.",
}

// ConsoleRenderer draws snapshots as text
type ConsoleRenderer struct {
	mu    sync.Mutex
	out   io.Writer
	color bool
}

// NewConsoleRenderer creates a renderer writing to out. Colour is only
// used when requested and out is a terminal.
func NewConsoleRenderer(out io.Writer, color bool) *ConsoleRenderer {
	return &ConsoleRenderer{out: out, color: color && isTerminal(out)}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Render implements Renderer
func (r *ConsoleRenderer) Render(s Snapshot) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fmt.Fprint(r.out, r.Format(s))
}

// Format returns the text for a snapshot
func (r *ConsoleRenderer) Format(s Snapshot) string {
	var sb strings.Builder

	if s.WaitingVisible {
		sb.WriteString(r.paint(ansiDim, "Searching..."))
		sb.WriteString("\n")
	}

	for _, b := range s.Banners {
		c := ansiYellow
		if b == BannerError {
			c = ansiRed
		}
		sb.WriteString(r.paint(c, bannerText[b]))
		sb.WriteString("\n")
	}

	if s.MovieVisible {
		r.formatMovie(&sb, s)
	}

	return sb.String()
}

// formatMovie formats the movie region
func (r *ConsoleRenderer) formatMovie(sb *strings.Builder, s Snapshot) {
	var visible []Element
	for _, el := range s.Layout.Elements {
		if el.Extended && !s.ExtendedVisible {
			continue
		}
		visible = append(visible, el)
	}

	title := s.Text[movie.FieldTitle]
	if year := s.Text[movie.FieldYear]; year != "" && year != Placeholder {
		title = fmt.Sprintf("%s (%s)", title, year)
	}
	fmt.Fprintf(sb, "\n%s\n", r.paint(ansiBold, title))

	if s.ImageSrc != "" {
		fmt.Fprintf(sb, "├── Poster: %s\n", s.ImageSrc)
	}

	for i, el := range visible {
		if el.ID == movie.FieldTitle || el.ID == movie.FieldYear {
			continue
		}

		prefix := "├"
		if i == len(visible)-1 {
			prefix = "╰"
		}

		var value string
		switch el.Kind {
		case KindLink:
			value = s.Href[el.ID]
			if value == "" {
				value = Placeholder
			} else {
				value = r.paint(ansiCyan, value)
			}
		default:
			value = s.Text[el.ID]
			if el.ID == movie.FieldPlot && !s.PlotExpanded {
				value = truncate(value, collapsedPlotLen)
			}
		}

		fmt.Fprintf(sb, "%s── %s: %s\n", prefix, el.Label, value)
	}

	if !s.ExtendedVisible {
		sb.WriteString(r.paint(ansiDim, "(:more for details)"))
		sb.WriteString("\n")
	}
	sb.WriteString("\n")
}

func (r *ConsoleRenderer) paint(code, s string) string {
	if !r.color {
		return s
	}
	return code + s + ansiReset
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return strings.TrimSpace(string(runes[:n-3])) + "..."
}
