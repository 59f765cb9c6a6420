// Package render paints a HostSnapshot as a dashboard next to a logo. All
// drawing goes through a Context, so cursor and color state never leak into
// process-wide globals.
package render

import (
	"io"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/termenv"

	"github.com/rileyhilliard/dotfetch/internal/ui"
)

// Context is the drawing surface. Rows and columns are zero-based.
type Context interface {
	SetColor(c lipgloss.Color)
	MoveTo(row, col int)
	Write(text string)
}

// Clearer is implemented by contexts that can blank the surface.
type Clearer interface {
	Clear()
}

// TermContext draws on an ANSI terminal through a lipgloss renderer. The
// color profile is detected from the writer, so piped output stays plain.
type TermContext struct {
	renderer *lipgloss.Renderer
	out      *termenv.Output
	style    lipgloss.Style
	err      error
}

// NewTermContext creates a TermContext writing to w.
func NewTermContext(w io.Writer) *TermContext {
	r := lipgloss.NewRenderer(w)
	if ui.ColorsDisabled() {
		r.SetColorProfile(termenv.Ascii)
	}
	return &TermContext{
		renderer: r,
		out:      r.Output(),
		style:    r.NewStyle(),
	}
}

// ForceColor emits ANSI colors even when the writer is not a terminal.
func (c *TermContext) ForceColor() {
	c.renderer.SetColorProfile(termenv.ANSI)
	c.style = c.renderer.NewStyle()
}

// SetColor sets the foreground color for subsequent writes.
func (c *TermContext) SetColor(col lipgloss.Color) {
	c.style = c.renderer.NewStyle().Foreground(col)
}

// MoveTo positions the cursor. Terminal coordinates are one-based.
func (c *TermContext) MoveTo(row, col int) {
	c.out.MoveCursor(row+1, col+1)
}

// Write prints text in the current color at the cursor.
func (c *TermContext) Write(text string) {
	if _, err := io.WriteString(c.out, c.style.Render(text)); err != nil && c.err == nil {
		c.err = err
	}
}

// Clear erases the screen and homes the cursor.
func (c *TermContext) Clear() {
	c.out.ClearScreen()
}

// Err returns the first write error, if any.
func (c *TermContext) Err() error {
	return c.err
}

// Op is one recorded write.
type Op struct {
	Row   int
	Col   int
	Color lipgloss.Color
	Text  string
}

// Recorder is a Context that records writes instead of drawing them.
type Recorder struct {
	row, col int
	color    lipgloss.Color
	cleared  bool

	Ops []Op
}

// NewRecorder creates an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// SetColor implements Context.
func (r *Recorder) SetColor(c lipgloss.Color) {
	r.color = c
}

// MoveTo implements Context.
func (r *Recorder) MoveTo(row, col int) {
	r.row, r.col = row, col
}

// Write implements Context. The cursor advances by the display width of text.
func (r *Recorder) Write(text string) {
	r.Ops = append(r.Ops, Op{Row: r.row, Col: r.col, Color: r.color, Text: text})
	r.col += runewidth.StringWidth(text)
}

// Clear implements Clearer.
func (r *Recorder) Clear() {
	r.cleared = true
	r.Ops = nil
}

// Cleared reports whether Clear was called.
func (r *Recorder) Cleared() bool {
	return r.cleared
}

// Position returns the current cursor position.
func (r *Recorder) Position() (row, col int) {
	return r.row, r.col
}

// OpsAt returns the writes on row, ordered by column.
func (r *Recorder) OpsAt(row int) []Op {
	var ops []Op
	for _, op := range r.Ops {
		if op.Row == row {
			ops = append(ops, op)
		}
	}
	sort.SliceStable(ops, func(i, j int) bool { return ops[i].Col < ops[j].Col })
	return ops
}

// Line returns the plain text of row as it would appear on screen, with
// gaps between writes filled by spaces and trailing spaces trimmed.
func (r *Recorder) Line(row int) string {
	var cells []rune
	for _, op := range r.OpsAt(row) {
		for len(cells) < op.Col {
			cells = append(cells, ' ')
		}
		col := op.Col
		for _, ch := range op.Text {
			if col < len(cells) {
				cells[col] = ch
			} else {
				cells = append(cells, ch)
			}
			col++
		}
	}
	return strings.TrimRight(string(cells), " ")
}

// Rows returns every row that received a write, in ascending order.
func (r *Recorder) Rows() []int {
	seen := make(map[int]bool)
	var rows []int
	for _, op := range r.Ops {
		if !seen[op.Row] {
			seen[op.Row] = true
			rows = append(rows, op.Row)
		}
	}
	sort.Ints(rows)
	return rows
}

// Find returns the first write whose text contains s.
func (r *Recorder) Find(s string) (Op, bool) {
	for _, op := range r.Ops {
		if strings.Contains(op.Text, s) {
			return op, true
		}
	}
	return Op{}, false
}
