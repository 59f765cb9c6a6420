package render

import (
	"github.com/mattn/go-runewidth"

	"github.com/rileyhilliard/dotfetch/internal/ui"
)

// Logo is multi-line colored art drawn from the top-left corner.
type Logo struct {
	lines [][]ui.Span
}

// NewLogo creates a Logo from lines of spans.
func NewLogo(lines [][]ui.Span) Logo {
	return Logo{lines: lines}
}

// Lines returns the art, one slice of spans per row.
func (l Logo) Lines() [][]ui.Span {
	return l.lines
}

// Height is the number of rows the art occupies.
func (l Logo) Height() int {
	return len(l.lines)
}

// Width is the display width of the widest row.
func (l Logo) Width() int {
	width := 0
	for _, line := range l.lines {
		if w := runewidth.StringWidth(ui.Plain(line)); w > width {
			width = w
		}
	}
	return width
}

func red(s string) ui.Span    { return ui.Span{Text: s, Color: ui.ColorRed} }
func green(s string) ui.Span  { return ui.Span{Text: s, Color: ui.ColorGreen} }
func blue(s string) ui.Span   { return ui.Span{Text: s, Color: ui.ColorBlue} }
func yellow(s string) ui.Span { return ui.Span{Text: s, Color: ui.ColorYellow} }

// windowArt is the four-pane window logo.
var windowArt = [][]ui.Span{
	{green("                                           ..")},
	{green("                                 ...---++++-")},
	{green("                       ...-:////+++++ooooooo-")},
	{red("             ....."), green(" -/++++ooooooooooooooooooo-")},
	{red("    .------/+oooo/ "), green("/oooooooooooooooooooooooo-")},
	{red("  /+ooooooooooooo/ "), green("/oooooooooooooooooooooooo-")},
	{red("  ooooooooooooooo/ "), green("/oooooooooooooooooooooooo-")},
	{red("  ooooooooooooooo/ "), green("/oooooooooooooooooooooooo-")},
	{red("  ooooooooooooooo/ "), green("/oooooooooooooooooooooooo-")},
	{red("  ooooooooooooooo/ "), green("/oooooooooooooooooooooooo-")},
	{red("  ooooooooooooooo/ "), green("/oooooooooooooooooooooooo-")},
	{red("  +++++++++++++++: "), green("/++++++++++++++++++++++++-")},
	{red("  ```````````````` "), green("``````````````````````````")},
	{blue("  +++++++++++++++: "), yellow("-------------------------.")},
	{blue("  ooooooooooooooo/ "), yellow("-::::::::::::::::::::::::.")},
	{blue("  ooooooooooooooo/ "), yellow("-::::::::::::::::::::::::.")},
	{blue("  ooooooooooooooo/ "), yellow("-::::::::::::::::::::::::.")},
	{blue("  ooooooooooooooo/ "), yellow("-::::::::::::::::::::::::.")},
	{blue("  ooooooooooooooo/ "), yellow("-::::::::::::::::::::::::.")},
	{blue("  ooooooooooooooo/ "), yellow("-::::::::::::::::::::::::.")},
	{blue("  .:+oooooooooooo/ "), yellow("-::::::::::::::::::::::::.")},
	{blue("     ````````-::+: "), yellow("-::::::::::::::::::::::::.")},
	{yellow("                    ```---::::::::::::::::::.")},
	{yellow("                               ```---:::::::.")},
	{yellow("                                       ``````")},
}

// DefaultLogo returns the built-in window logo.
func DefaultLogo() Logo {
	return NewLogo(windowArt)
}
