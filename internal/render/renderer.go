package render

import (
	"fmt"

	"github.com/rileyhilliard/dotfetch/internal/layout"
	"github.com/rileyhilliard/dotfetch/internal/snapshot"
	"github.com/rileyhilliard/dotfetch/internal/ui"
)

const (
	gpuLabel  = "GPU: "
	diskLabel = "Disks: "
)

// Options controls dashboard placement.
type Options struct {
	// StartRow is the row of the first field (user@host).
	StartRow int

	// Gap is the number of columns between the logo and the labels.
	Gap int

	// ClearScreen blanks the surface before drawing, when the context supports it.
	ClearScreen bool
}

// DefaultOptions places the first field on row 3, five columns right of the logo.
func DefaultOptions() Options {
	return Options{StartRow: 3, Gap: 5}
}

// Result describes what Render drew.
type Result struct {
	Rows        layout.Rows
	LabelColumn int
	CursorRow   int
}

// Renderer draws dashboards on a Context.
type Renderer struct {
	ctx  Context
	opts Options
	logo Logo
}

// New creates a Renderer drawing the default logo.
func New(ctx Context, opts Options) *Renderer {
	if opts.StartRow < 0 {
		opts.StartRow = 0
	}
	if opts.Gap < 0 {
		opts.Gap = 0
	}
	return &Renderer{ctx: ctx, opts: opts, logo: DefaultLogo()}
}

// WithLogo replaces the logo.
func (r *Renderer) WithLogo(l Logo) *Renderer {
	r.logo = l
	return r
}

// Render draws snap in a single pass: the logo at the origin, then one
// label/value row per field, then the GPU, disk and battery sections. The
// cursor is left on the first row below both the logo and the dashboard.
//
// A nil snapshot draws nothing.
func (r *Renderer) Render(snap *snapshot.HostSnapshot) Result {
	if snap == nil || r.ctx == nil {
		return Result{}
	}

	if r.opts.ClearScreen {
		if c, ok := r.ctx.(Clearer); ok {
			c.Clear()
		}
	}

	for row, line := range r.logo.Lines() {
		r.draw(row, 0, line)
	}

	labelCol := r.logo.Width() + r.opts.Gap
	rows := layout.Plan(r.opts.StartRow, len(snap.GPUs), len(snap.Disks), snap.Battery.Available)

	for f := layout.Field(0); f < layout.Field(layout.FixedFields); f++ {
		r.draw(rows.Row(f), labelCol, fieldSpans(f, snap))
	}

	r.draw(rows.GPU, labelCol, label(gpuLabel))
	for i, gpu := range snap.GPUs {
		r.draw(rows.GPU+i, labelCol+len(gpuLabel), value(gpu))
	}

	r.draw(rows.Disks, labelCol, label(diskLabel))
	for i, d := range snap.Disks {
		r.draw(rows.Disks+i, labelCol+len(diskLabel), diskSpans(d))
	}

	if rows.HasBattery() {
		spans := label("Battery: ")
		spans = append(spans, ui.LevelBar(snap.Battery.ChargePercent, snap.Battery.Charging)...)
		r.draw(rows.Battery, labelCol, spans)
	}

	cursor := max(rows.End, r.logo.Height()) + 1
	r.ctx.MoveTo(cursor, 0)
	r.ctx.SetColor(ui.ColorValue)

	return Result{Rows: rows, LabelColumn: labelCol, CursorRow: cursor}
}

func (r *Renderer) draw(row, col int, spans []ui.Span) {
	r.ctx.MoveTo(row, col)
	for _, s := range spans {
		r.ctx.SetColor(s.Color)
		r.ctx.Write(s.Text)
	}
}

func label(text string) []ui.Span {
	return []ui.Span{{Text: text, Color: ui.ColorLabel}}
}

func value(text string) []ui.Span {
	return []ui.Span{{Text: text, Color: ui.ColorValue}}
}

func field(name, v string) []ui.Span {
	return append(label(name+": "), value(v)...)
}

// fieldSpans builds the row for a fixed field.
func fieldSpans(f layout.Field, s *snapshot.HostSnapshot) []ui.Span {
	switch f {
	case layout.FieldUser:
		return []ui.Span{
			{Text: s.User, Color: ui.ColorLabel},
			{Text: "@", Color: ui.ColorValue},
			{Text: s.Host, Color: ui.ColorLabel},
		}
	case layout.FieldManufacturer:
		return field("Manufacturer", s.Chassis.Manufacturer)
	case layout.FieldModel:
		return field("Model", s.Chassis.Model)
	case layout.FieldOS:
		return field("OS", s.OS.Caption+" "+s.OS.Architecture)
	case layout.FieldBuild:
		return field("Build Number", s.OS.Build)
	case layout.FieldUptime:
		return field("Uptime", ui.FormatDuration(s.Uptime))
	case layout.FieldShell:
		return field("Shell", s.Shell)
	case layout.FieldResolution:
		d := s.Display
		return field("Resolution", fmt.Sprintf("%d x %d %dbit %dHz", d.Width, d.Height, d.Depth, d.RefreshRate))
	case layout.FieldFont:
		return field("Font", s.Font)
	case layout.FieldCPU:
		return field("CPU", s.CPU.Name)
	case layout.FieldCores:
		return field("Cores", fmt.Sprintf("%d Physical %d Logical", s.CPU.PhysicalCores, s.CPU.LogicalCores))
	case layout.FieldLoad:
		return append(label("CPU Usage: "), ui.LoadBar(s.CPU.LoadPercent)...)
	case layout.FieldMemory:
		spans := field("RAM", fmt.Sprintf("%dMB / %dMB  ", s.Memory.UsedMB, s.Memory.TotalMB))
		return append(spans, ui.LoadBar(s.Memory.Percent())...)
	}
	return nil
}

// diskSpans builds "<name>  (p)%  [bar]used / total".
func diskSpans(d snapshot.Disk) []ui.Span {
	spans := value(d.Name + "  ")
	spans = append(spans, ui.LoadBar(d.UsedPercent())...)
	return append(spans, value(ui.FormatGB(d.UsedBytes())+" / "+ui.FormatGB(d.TotalBytes))...)
}
