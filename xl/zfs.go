package xl

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/mholt/archiver/v3"
)

// Storage is the interface for writing package parts.
type Storage interface {
	WriteBlob(path string, blob []byte) error
}

// DirStorage writes package parts to a directory structure on disk. It is
// used as the staging area for the archive and is handy for inspecting the
// generated XML.
type DirStorage struct {
	Dir string // Root directory path
}

// ZipArchive writes files into a zip container.
type ZipArchive struct {
	z *archiver.Zip
}

// NewDirStorage creates a new directory-based storage that writes files to the specified directory.
// The directory will be created if it doesn't exist.
func NewDirStorage(dir string) *DirStorage {
	return &DirStorage{
		Dir: dir,
	}
}

// WriteBlob writes a file part to the directory structure.
// Creates any necessary parent directories automatically.
func (ds *DirStorage) WriteBlob(path string, blob []byte) error {
	path = strings.TrimPrefix(path, "/")
	fn := filepath.Join(ds.Dir, filepath.FromSlash(path))
	err := os.MkdirAll(filepath.Dir(fn), 0777)
	if err != nil {
		return err
	}
	return os.WriteFile(fn, blob, 0666)
}

// WriteParts stores every part, stopping at the first failure.
func WriteParts(s Storage, parts []Part) error {
	for _, p := range parts {
		if err := s.WriteBlob(p.Path, p.Content); err != nil {
			return &PartError{Op: "stage", Path: p.Path, Err: err}
		}
	}
	return nil
}

// NewZipArchive starts a zip container on out, deflating entries at the
// given level.
func NewZipArchive(out io.Writer, level int) (*ZipArchive, error) {
	z := archiver.NewZip()
	z.CompressionLevel = level
	if err := z.Create(out); err != nil {
		return nil, err
	}
	return &ZipArchive{z: z}, nil
}

// AddFile copies the file at absPath into the archive under name.
func (za *ZipArchive) AddFile(name, absPath string) error {
	file, err := os.Open(absPath)
	if err != nil {
		return err
	}
	defer file.Close()
	fileInfo, err := file.Stat()
	if err != nil {
		return err
	}
	return za.z.Write(archiver.File{
		FileInfo: archiver.FileInfo{
			FileInfo:   fileInfo,
			CustomName: name,
		},
		ReadCloser: file,
	})
}

// Close finalizes the archive. The archive is invalid until Close succeeds.
func (za *ZipArchive) Close() error {
	return za.z.Close()
}
