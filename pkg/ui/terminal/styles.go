package terminal

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Palette used by DefaultStyles.
var (
	PrimaryColor = lipgloss.Color("#99E8FF")
	AccentColor  = lipgloss.Color("#7D56F4")
	MutedColor   = lipgloss.Color("#626262")
	TextColor    = lipgloss.Color("#FFFFFF")
)

// Width bounds for box rules.
const (
	MinWidth = 40
	MaxWidth = 100
)

// Styles controls how non-interactive output is rendered.
type Styles struct {
	Header lipgloss.Style
	Label  lipgloss.Style
	Rule   lipgloss.Style
}

// DefaultStyles returns the coloured style set.
func DefaultStyles() Styles {
	return Styles{
		Header: lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Bold(true),
		Label: lipgloss.NewStyle().
			Foreground(MutedColor),
		Rule: lipgloss.NewStyle().
			Foreground(AccentColor),
	}
}

// PlainStyles renders text unchanged.
func PlainStyles() Styles {
	return Styles{
		Header: lipgloss.NewStyle(),
		Label:  lipgloss.NewStyle(),
		Rule:   lipgloss.NewStyle(),
	}
}

// outputWidth reports the terminal width of out, clamped to
// [MinWidth, MaxWidth]. Writers that are not terminals get MinWidth.
func outputWidth(out io.Writer) int {
	f, ok := out.(*os.File)
	if !ok {
		return MinWidth
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width < MinWidth {
		return MinWidth
	}
	if width > MaxWidth {
		return MaxWidth
	}
	return width
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return f != nil && term.IsTerminal(int(f.Fd()))
}
