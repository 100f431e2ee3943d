package progress

// Countdown rendering for autonudge

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

const (
	defaultBarWidth = 30
	minBarWidth     = 10
)

// Palette borrowed from Tokyo Night.
var (
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#7aa2f7"))
	barStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#9ece6a"))
	countStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#e0af68")).Bold(true)
	doneStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#9ece6a")).Bold(true)
	abortStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#e0af68"))
)

// Renderer draws a one-line countdown. On a terminal it rewrites the line
// in place each tick; on anything else it falls back to one plain line per
// tick so piped output stays readable. Writes are small and synchronous,
// so rendering never blocks the tick loop.
type Renderer struct {
	output   io.Writer
	label    string
	total    int
	barWidth int
	colored  bool
	inline   bool
}

// NewRenderer creates a renderer for a countdown of total seconds,
// writing to stdout.
func NewRenderer(label string, total int) *Renderer {
	fd := os.Stdout.Fd()
	tty := isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)

	width := defaultBarWidth
	if tty {
		if termWidth, _, err := term.GetSize(int(fd)); err == nil {
			width = barWidthFor(termWidth, label)
		}
	}

	return &Renderer{
		output:   os.Stdout,
		label:    label,
		total:    total,
		barWidth: width,
		colored:  tty,
		inline:   tty,
	}
}

// DisableColor turns off styled output (for --no-color).
func (r *Renderer) DisableColor() {
	r.colored = false
}

// barWidthFor fits the bar to the terminal, leaving room for the label,
// the seconds counter, and the percentage.
func barWidthFor(termWidth int, label string) int {
	width := termWidth - len(label) - 20
	if width > defaultBarWidth {
		width = defaultBarWidth
	}
	if width < minBarWidth {
		width = minBarWidth
	}
	return width
}

// Tick renders one countdown step.
func (r *Renderer) Tick(remaining int, percent float64) {
	if !r.inline {
		fmt.Fprintf(r.output, "%s %ds (%.0f%%)\n", r.label, remaining, percent)
		return
	}

	fmt.Fprintf(r.output, "\r%s [%s] %s (%3.0f%%) ",
		r.style(labelStyle, r.label),
		r.style(barStyle, r.bar(percent)),
		r.style(countStyle, fmt.Sprintf("%ds", remaining)),
		percent)
}

// Finish renders the completion line and restores the cursor to a fresh line.
func (r *Renderer) Finish(text string) {
	if r.inline {
		fmt.Fprint(r.output, "\n")
	}
	fmt.Fprintf(r.output, "%s\n", r.style(doneStyle, text))
}

// Abort renders the cancellation line. The completed line is never shown.
func (r *Renderer) Abort(text string) {
	if r.inline {
		fmt.Fprint(r.output, "\n")
	}
	fmt.Fprintf(r.output, "%s\n", r.style(abortStyle, text))
}

// bar builds the fixed-width progress bar proportional to percent.
func (r *Renderer) bar(percent float64) string {
	filled := int(float64(r.barWidth) * percent / 100)
	if filled > r.barWidth {
		filled = r.barWidth
	}

	bar := make([]byte, r.barWidth)
	for i := 0; i < filled; i++ {
		bar[i] = '='
	}
	if filled < r.barWidth {
		bar[filled] = '>'
		for i := filled + 1; i < r.barWidth; i++ {
			bar[i] = '-'
		}
	}
	return string(bar)
}

func (r *Renderer) style(s lipgloss.Style, text string) string {
	if !r.colored {
		return text
	}
	return s.Render(text)
}
