package xl

import (
	"strconv"
)

// Cell is a single typed value in a sheet grid. The kind is fixed when the
// cell is created; use String, Number, Int or Float to construct one.
type Cell struct {
	kind CellKind
	v    string
}

// CellKind is the type of cell value.
type CellKind int

// Cell value kinds.
const (
	// KindSharedString cells are interned into the workbook shared string
	// table and reference it by index.
	KindSharedString CellKind = iota

	// KindNumber cells carry numeric text written literally.
	KindNumber
)

func (k CellKind) String() string {
	switch k {
	case KindSharedString:
		return "string"
	case KindNumber:
		return "number"
	default:
		return "CellKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// String creates a shared string cell.
func String(v string) Cell {
	return Cell{kind: KindSharedString, v: v}
}

// Number creates a numeric cell from its textual representation. The text is
// written to the sheet as is.
func Number(text string) Cell {
	return Cell{kind: KindNumber, v: text}
}

// Int creates a numeric cell holding an integer.
func Int(v int64) Cell {
	return Number(strconv.FormatInt(v, 10))
}

// Float creates a numeric cell using the shortest decimal form of v.
func Float(v float64) Cell {
	return Number(strconv.FormatFloat(v, 'g', -1, 64))
}

// Kind returns how the cell is stored in the sheet.
func (c Cell) Kind() CellKind { return c.kind }

// Value returns the cell text: the string itself or the number text.
func (c Cell) Value() string { return c.v }
