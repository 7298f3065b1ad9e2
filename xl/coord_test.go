package xl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColumnName(t *testing.T) {
	cases := []struct {
		index int
		want  string
	}{
		{0, "A"},
		{1, "B"},
		{25, "Z"},
		{26, "AA"},
		{27, "AB"},
		{51, "AZ"},
		{52, "BA"},
		{701, "ZZ"},
		{702, "AAA"},
		{16383, "XFD"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, ColumnName(c.index), "index %d", c.index)
	}
}

// columnIndex is the inverse of ColumnName.
func columnIndex(s string) int {
	n := 0
	for _, r := range s {
		n = n*26 + int(r-'A') + 1
	}
	return n - 1
}

func TestColumnNameBijection(t *testing.T) {
	seen := map[string]int{}
	prev := ""
	for i := 0; i < 20000; i++ {
		s := ColumnName(i)
		require.NotEmpty(t, s)
		if j, dup := seen[s]; dup {
			t.Fatalf("indices %d and %d both map to %s", j, i, s)
		}
		seen[s] = i
		require.Equal(t, i, columnIndex(s))

		// spreadsheet column order: shorter names first, then lexical
		if prev != "" {
			require.True(t, len(prev) < len(s) || (len(prev) == len(s) && prev < s), "%s !< %s", prev, s)
		}
		prev = s
	}
}

func TestColumnNameNegativePanics(t *testing.T) {
	assert.Panics(t, func() { ColumnName(-1) })
	assert.Panics(t, func() { CellName(0, -1) })
}

func TestCellName(t *testing.T) {
	assert.Equal(t, "A1", CellName(0, 0))
	assert.Equal(t, "C2", CellName(2, 1))
	assert.Equal(t, "AA10", CellName(26, 9))
}
