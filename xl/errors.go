package xl

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingSharedString means a string cell was serialized against a
	// shared string table that was not built over the whole workbook.
	ErrMissingSharedString = errors.New("string missing from shared string table")

	ErrEmptyTitle         = errors.New("empty workbook title")
	ErrInvalidTitle       = errors.New("invalid workbook title")
	ErrInvalidSheetName   = errors.New("invalid sheet name")
	ErrDuplicateSheetName = errors.New("duplicate sheet name")
)

// PartError reports a failure to stage, archive or clean up a package part
// or path.
type PartError struct {
	Op   string // "stage", "archive", "cleanup"
	Path string
	Err  error
}

func (e *PartError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *PartError) Unwrap() error {
	return e.Err
}
