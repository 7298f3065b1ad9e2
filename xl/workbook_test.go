package xl

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWorkbookParts(t *testing.T) {
	wb := gradesWorkbook(t)

	var paths []string
	for _, p := range wb.Parts() {
		paths = append(paths, p.Path)
		assert.NotEmpty(t, p.Content, p.Path)
	}
	assert.Equal(t, []string{
		"[Content_Types].xml",
		"_rels/.rels",
		"docProps/app.xml",
		"docProps/core.xml",
		"xl/workbook.xml",
		"xl/_rels/workbook.xml.rels",
		"xl/styles.xml",
		"xl/theme/theme1.xml",
		"xl/sharedStrings.xml",
		"xl/worksheets/sheet1.xml",
	}, paths)

	p, ok := wb.Part(PathStyles)
	require.True(t, ok)
	assert.Equal(t, tmplStyles, p.Content)

	assert.Equal(t, 5, wb.SharedStrings().UniqueCount())
}

func TestNewWorkbookImmutable(t *testing.T) {
	sh := NewSheet("S")
	sh.AddRow(String("before"))
	wb, err := NewWorkbook("T", sh)
	require.NoError(t, err)

	p, _ := wb.Part(SheetPath(1))
	before := string(p.Content)

	sh.AddRow(String("after"))
	p, _ = wb.Part(SheetPath(1))
	assert.Equal(t, before, string(p.Content))
	assert.Equal(t, 1, wb.SharedStrings().UniqueCount())
}

func TestNewWorkbookValidation(t *testing.T) {
	ok := NewSheet("Fine")

	_, err := NewWorkbook("", ok)
	assert.ErrorIs(t, err, ErrEmptyTitle)

	_, err = NewWorkbook("a/b", ok)
	assert.ErrorIs(t, err, ErrInvalidTitle)

	_, err = NewWorkbook("T")
	assert.ErrorIs(t, err, ErrNoSheets)

	for _, name := range []string{"", strings.Repeat("x", 32), "'quoted'", "a:b", "a[1]", "what?", "tab\tname", "bell\x07"} {
		_, err = NewWorkbook("T", NewSheet(name))
		assert.ErrorIs(t, err, ErrInvalidSheetName, "name %q", name)
	}

	_, err = NewWorkbook("T", NewSheet("Data"), NewSheet("DATA"))
	assert.ErrorIs(t, err, ErrDuplicateSheetName)

	_, err = NewWorkbook("T", NewSheet(strings.Repeat("é", 31)))
	assert.NoError(t, err)
}
