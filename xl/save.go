package xl

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
)

// CompressionLevel is the deflate level used for every archive entry.
const CompressionLevel = 4

// Writer materializes a workbook into an .xlsx file. Parts are staged to a
// scratch directory first, which is removed on every exit path.
type Writer struct {
	Dir        string // destination directory, "." when empty
	StagingDir string // parent of the scratch directory, Dir when empty

	// Verbose enables per-file log lines.
	Verbose bool
	Logf    func(format string, args ...any)

	removeAll func(path string) error // os.RemoveAll when nil
}

// Result describes a written archive.
type Result struct {
	Path  string
	Size  int64
	Parts int
}

// Save writes wb to <dir>/<title>.xlsx.
func Save(wb *Workbook, dir string) (Result, error) {
	w := Writer{Dir: dir}
	return w.Write(wb)
}

// Write stages all parts of wb, compresses them into <Dir>/<Title>.xlsx and
// removes the staging tree. Cleanup failures are joined to the returned
// error.
func (w *Writer) Write(wb *Workbook) (res Result, err error) {
	dir := w.Dir
	if dir == "" {
		dir = "."
	}
	stagingParent := w.StagingDir
	if stagingParent == "" {
		stagingParent = dir
	}
	dest := filepath.Join(dir, wb.Title+".xlsx")
	parts := wb.Parts()

	w.logf("Preparing for export...")

	staging := stagingPath(stagingParent, wb.Title)
	defer func() {
		removeAll := w.removeAll
		if removeAll == nil {
			removeAll = os.RemoveAll
		}
		if rmErr := removeAll(staging); rmErr != nil {
			err = errors.Join(err, &PartError{Op: "cleanup", Path: staging, Err: rmErr})
		}
	}()
	if err := os.MkdirAll(staging, 0777); err != nil {
		return res, &PartError{Op: "stage", Path: staging, Err: err}
	}

	w.logf("Writing files...")
	if w.Verbose {
		for _, p := range parts {
			w.logf("Staging %s (%s)", p.Path, humanize.Bytes(uint64(len(p.Content))))
		}
	}
	if err := WriteParts(NewDirStorage(staging), parts); err != nil {
		return res, err
	}

	w.logf("Building archive...")
	size, err := archiveDir(staging, dest, w.verbosef)
	if err != nil {
		return res, err
	}

	res = Result{Path: dest, Size: size, Parts: len(parts)}
	w.logf("Exported data to %s: %s", dest, humanize.Bytes(uint64(size)))
	return res, nil
}

func (w *Writer) logf(format string, args ...any) {
	if w.Logf != nil {
		w.Logf(format, args...)
	}
}

func (w *Writer) verbosef(format string, args ...any) {
	if w.Verbose {
		w.logf(format, args...)
	}
}
