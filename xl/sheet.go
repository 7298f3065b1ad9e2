package xl

// Sheet is a named grid of cells. Rows may have different lengths.
type Sheet struct {
	Name string
	Rows []*Row
}

// Row is an ordered sequence of cells; a cell's column is its position.
type Row struct {
	Cells []Cell
}

// NewSheet returns an empty sheet with the given name.
func NewSheet(name string) *Sheet {
	return &Sheet{Name: name}
}

// AddRow appends a row holding the given cells and returns it.
func (s *Sheet) AddRow(cells ...Cell) *Row {
	r := &Row{Cells: append([]Cell(nil), cells...)}
	s.Rows = append(s.Rows, r)
	return r
}

// Add appends cells to the end of the row.
func (r *Row) Add(cells ...Cell) *Row {
	r.Cells = append(r.Cells, cells...)
	return r
}

// Width returns the effective column count, the length of the longest row.
func (s *Sheet) Width() int {
	w := 0
	for _, r := range s.Rows {
		if len(r.Cells) > w {
			w = len(r.Cells)
		}
	}
	return w
}
