package xl

// GridBounds is the occupied rectangle of a sheet, used only for the sheet
// dimension hint. An empty BottomRight means the sheet has no cells.
type GridBounds struct {
	TopLeft     string
	BottomRight string
}

// Bounds computes the grid bounds of a sheet. The column bound follows the
// longest row and the row bound is the number of rows.
func Bounds(sh *Sheet) GridBounds {
	b := GridBounds{TopLeft: CellName(0, 0)}
	w := sh.Width()
	if len(sh.Rows) == 0 || w == 0 {
		return b
	}
	b.BottomRight = CellName(w-1, len(sh.Rows)-1)
	return b
}

// Empty reports whether the bounds cover no cells.
func (b GridBounds) Empty() bool {
	return b.BottomRight == ""
}

// Ref returns the dimension reference, e.g. "A1:C2", or the first cell
// address alone for an empty sheet.
func (b GridBounds) Ref() string {
	if b.Empty() {
		return b.TopLeft
	}
	return b.TopLeft + ":" + b.BottomRight
}
