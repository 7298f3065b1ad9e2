package xl

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"
)

var ErrNoSheets = errors.New("workbook has no sheets")

// Workbook is an immutable, fully assembled spreadsheet package. All parts
// are generated by NewWorkbook.
type Workbook struct {
	Title  string
	Sheets []*Sheet

	sst   *SharedStrings
	parts []Part
}

// NewWorkbook validates the title and sheet names, builds the shared string
// table over all sheets, and generates every package part. The sheets are
// not referenced for serialization afterwards.
func NewWorkbook(title string, sheets ...*Sheet) (*Workbook, error) {
	if err := validateTitle(title); err != nil {
		return nil, err
	}
	if len(sheets) == 0 {
		return nil, ErrNoSheets
	}

	seen := map[string]struct{}{}
	for _, sh := range sheets {
		if err := validateSheetName(sh.Name); err != nil {
			return nil, fmt.Errorf("sheet '%s': %w", sh.Name, err)
		}
		key := strings.ToLower(sh.Name)
		if _, exists := seen[key]; exists {
			return nil, fmt.Errorf("%w '%s'", ErrDuplicateSheetName, sh.Name)
		}
		seen[key] = struct{}{}
	}

	wb := &Workbook{
		Title:  title,
		Sheets: slices.Clone(sheets),
		sst:    BuildSharedStrings(sheets),
	}

	parts, err := assemble(wb.Sheets, wb.sst)
	if err != nil {
		return nil, err
	}
	wb.parts = parts

	return wb, nil
}

// SharedStrings returns the workbook-wide shared string table.
func (wb *Workbook) SharedStrings() *SharedStrings {
	return wb.sst
}

// Parts returns the package parts in archive order.
func (wb *Workbook) Parts() []Part {
	return slices.Clone(wb.parts)
}

// Part returns the part stored at path, e.g. "xl/workbook.xml".
func (wb *Workbook) Part(path string) (Part, bool) {
	for _, p := range wb.parts {
		if p.Path == path {
			return p, true
		}
	}
	return Part{}, false
}

func validateTitle(s string) error {
	if s == "" {
		return ErrEmptyTitle
	}
	if s == "." || s == ".." || strings.ContainsAny(s, "/\\\x00") {
		return fmt.Errorf("%w '%s'", ErrInvalidTitle, s)
	}
	return nil
}

func validateSheetName(s string) error {
	n := utf8.RuneCountInString(s)
	if n == 0 {
		return fmt.Errorf("%w: empty sheet name is not allowed", ErrInvalidSheetName)
	} else if n > 31 {
		return fmt.Errorf("%w: the sheet name is too long", ErrInvalidSheetName)
	}
	if strings.HasPrefix(s, "'") || strings.HasSuffix(s, "'") {
		return fmt.Errorf("%w: the first or last character of the sheet name can not be a single quote", ErrInvalidSheetName)
	}
	if strings.IndexFunc(s, func(r rune) bool { return r < ' ' || !isXMLChar(r) }) >= 0 {
		return fmt.Errorf("%w: the sheet name can not contain control characters", ErrInvalidSheetName)
	}
	if strings.ContainsAny(s, ":\\/?*[]") {
		return fmt.Errorf("%w: the sheet can not contain any of the characters :\\/?*[]", ErrInvalidSheetName)
	}
	return nil
}
