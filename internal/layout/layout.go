// Package layout computes dashboard rows. Every function is pure.
//
// Rows are consumed strictly in category order. Single-line categories take
// one row each; list categories take one row per element, with one row kept
// for the section label when the list is empty.
package layout

// NextOffset returns the first row after a list of itemCount elements that
// starts at startRow. An empty list still reserves its label row, so
// NextOffset(r, 0) == r+1.
func NextOffset(startRow, itemCount int) int {
	if itemCount < 1 {
		itemCount = 1
	}
	return startRow + itemCount
}

// Field names a fixed single-row category.
type Field int

// Fixed categories, in drawing order.
const (
	FieldUser Field = iota
	FieldManufacturer
	FieldModel
	FieldOS
	FieldBuild
	FieldUptime
	FieldShell
	FieldResolution
	FieldFont
	FieldCPU
	FieldCores
	FieldLoad
	FieldMemory
	fieldCount
)

// FixedFields is the number of single-row categories above the lists.
const FixedFields = int(fieldCount)

// Rows is the resolved row assignment for one dashboard.
type Rows struct {
	Fixed   [fieldCount]int
	GPU     int // first GPU row (label row)
	Disks   int // first disk row (label row)
	Battery int // battery row, or -1 when omitted
	End     int // first row not used by the dashboard
}

// Row returns the row of a fixed category.
func (r Rows) Row(f Field) int {
	return r.Fixed[f]
}

// ListBlock returns how many rows the GPU, disk and battery sections use.
func (r Rows) ListBlock() int {
	return r.End - r.GPU
}

// HasBattery reports whether a battery row was assigned.
func (r Rows) HasBattery() bool {
	return r.Battery >= 0
}

// Plan assigns rows starting at startRow for a dashboard with gpuCount GPUs,
// diskCount disks and an optional battery row.
func Plan(startRow, gpuCount, diskCount int, battery bool) Rows {
	var rows Rows
	row := startRow
	for f := Field(0); f < fieldCount; f++ {
		rows.Fixed[f] = row
		row++
	}

	rows.GPU = row
	rows.Disks = NextOffset(rows.GPU, gpuCount)
	row = NextOffset(rows.Disks, diskCount)

	rows.Battery = -1
	if battery {
		rows.Battery = row
		row++
	}
	rows.End = row
	return rows
}
