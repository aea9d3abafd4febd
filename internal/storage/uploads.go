// Package storage persists uploaded cover images on local disk.  Files are
// stored under a randomly generated name and served back via the /uploads
// static mount.  A write that succeeds while the referencing database insert
// later fails leaves an orphaned file; that is accepted and not cleaned up.
package storage

import (
	"errors"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// ErrNotImage is returned when the uploaded file is not an image.
var ErrNotImage = errors.New("only image files are allowed")

// DiskStore writes uploads into a single directory.
type DiskStore struct {
	dir string
}

// NewDiskStore creates the upload directory if needed and returns a store
// over it.
func NewDiskStore(dir string) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskStore{dir: dir}, nil
}

// Save stores an uploaded image under a generated name and returns the
// public URL path it will be served from.  Files whose declared content
// type is not image/* are rejected with ErrNotImage.
func (s *DiskStore) Save(fh *multipart.FileHeader) (string, error) {
	if !strings.HasPrefix(fh.Header.Get("Content-Type"), "image/") {
		return "", ErrNotImage
	}

	src, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	name := uuid.NewString() + filepath.Ext(fh.Filename)
	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}
	return "/uploads/" + name, nil
}
