package xl

import "strconv"

// ColumnName converts a zero-based column index into spreadsheet column
// letters: 0 is "A", 25 is "Z", 26 is "AA", 701 is "ZZ", 702 is "AAA".
func ColumnName(index int) string {
	if index < 0 {
		panic("invalid column index")
	}
	n := index + 1
	var buf [16]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('A' + (n-1)%26)
		n = (n - 1) / 26
	}
	return string(buf[i:])
}

// CellName returns the A1-style address for a zero-based column index and a
// zero-based row index.
func CellName(col, row int) string {
	if row < 0 {
		panic("invalid row index")
	}
	return ColumnName(col) + strconv.Itoa(row+1)
}
