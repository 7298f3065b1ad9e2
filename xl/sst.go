package xl

// SharedStrings is the workbook-wide table of unique string values. Indices
// are assigned in first-seen order by a single scan over all sheets.
type SharedStrings struct {
	values []string
	index  map[string]int // 0-based index into values
	count  int            // total number of string cells
}

// BuildSharedStrings scans sheets in order, then rows, then cells, and
// interns every string cell value.
func BuildSharedStrings(sheets []*Sheet) *SharedStrings {
	sst := &SharedStrings{
		index: map[string]int{},
	}
	for _, sh := range sheets {
		for _, row := range sh.Rows {
			for _, c := range row.Cells {
				if c.kind == KindSharedString {
					sst.add(c.v)
				}
			}
		}
	}
	return sst
}

func (sst *SharedStrings) add(s string) int {
	sst.count++
	if i, ok := sst.index[s]; ok {
		return i
	}
	i := len(sst.values)
	sst.values = append(sst.values, s)
	sst.index[s] = i
	return i
}

// Index returns the table index of s.
func (sst *SharedStrings) Index(s string) (int, bool) {
	i, ok := sst.index[s]
	return i, ok
}

// Values returns the unique values in index order.
func (sst *SharedStrings) Values() []string {
	return sst.values
}

// Count is the total number of string cells across the workbook.
func (sst *SharedStrings) Count() int {
	return sst.count
}

// UniqueCount is the number of distinct string values.
func (sst *SharedStrings) UniqueCount() int {
	return len(sst.values)
}
