package xl

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// stagingPath returns a fresh scratch directory name for a workbook below
// parent. The random suffix keeps concurrent exports of the same title apart.
func stagingPath(parent, title string) string {
	return filepath.Join(parent, "~"+title+".xlsx-"+uuid.NewString())
}

// archiveDir compresses every regular file below dir into an archive at dest
// and returns the archive size. The archive is written to a temporary file
// next to dest and renamed over it once complete, so an existing dest is left
// untouched when archiving fails.
func archiveDir(dir, dest string, logf func(format string, args ...any)) (size int64, err error) {
	out, err := os.CreateTemp(filepath.Dir(dest), "~"+filepath.Base(dest)+"-*.tmp")
	if err != nil {
		return 0, &PartError{Op: "archive", Path: dest, Err: err}
	}
	tmp := out.Name()
	closed := false
	defer func() {
		if !closed {
			out.Close()
		}
		if err != nil {
			os.Remove(tmp)
		}
	}()

	za, err := NewZipArchive(out, CompressionLevel)
	if err != nil {
		return 0, &PartError{Op: "archive", Path: dest, Err: err}
	}

	walkErr := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.Type().IsRegular() {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		name := filepath.ToSlash(rel)
		logf("Adding file %s", name)
		if err := za.AddFile(name, path); err != nil {
			return &PartError{Op: "archive", Path: name, Err: err}
		}
		return nil
	})
	if walkErr != nil {
		za.Close()
		return 0, walkErr
	}

	if err := za.Close(); err != nil {
		return 0, &PartError{Op: "archive", Path: dest, Err: err}
	}

	info, err := out.Stat()
	if err != nil {
		return 0, &PartError{Op: "archive", Path: dest, Err: err}
	}
	if err := out.Chmod(0644); err != nil {
		return 0, &PartError{Op: "archive", Path: dest, Err: err}
	}
	closed = true
	if err := out.Close(); err != nil {
		return 0, &PartError{Op: "archive", Path: dest, Err: err}
	}
	if err := os.Rename(tmp, dest); err != nil {
		return 0, &PartError{Op: "archive", Path: dest, Err: err}
	}
	return info.Size(), nil
}
