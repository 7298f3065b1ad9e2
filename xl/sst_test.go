package xl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSharedStringsAcrossSheets(t *testing.T) {
	a := NewSheet("A")
	a.AddRow(String("x"), String("y"), Int(1))
	a.AddRow(String("y"))

	b := NewSheet("B")
	b.AddRow(String("z"), String("x"))

	sst := BuildSharedStrings([]*Sheet{a, b})

	assert.Equal(t, []string{"x", "y", "z"}, sst.Values())
	assert.Equal(t, 5, sst.Count())
	assert.Equal(t, 3, sst.UniqueCount())

	for i, v := range sst.Values() {
		got, ok := sst.Index(v)
		require.True(t, ok)
		assert.Equal(t, i, got)
	}

	_, ok := sst.Index("missing")
	assert.False(t, ok)
}

func TestSharedStringsNumbersOnly(t *testing.T) {
	sh := NewSheet("N")
	sh.AddRow(Int(1), Float(2.5))
	sh.AddRow(Number("3"))

	sst := BuildSharedStrings([]*Sheet{sh})
	assert.Equal(t, 0, sst.UniqueCount())
	assert.Equal(t, 0, sst.Count())
	assert.Empty(t, sst.Values())
}

func TestSharedStringsEmptyValue(t *testing.T) {
	sh := NewSheet("E")
	sh.AddRow(String(""), String(""))

	sst := BuildSharedStrings([]*Sheet{sh})
	assert.Equal(t, 2, sst.Count())
	assert.Equal(t, 1, sst.UniqueCount())
}
