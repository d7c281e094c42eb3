// Package storage provides the photo blob store backing ad uploads.
//
// Blobs live as flat files under a single directory and are addressed by a
// generated name, never by the client-supplied one. The generated name is a
// UUID plus the original extension, so references are unguessable and the
// directory never collides. Only a small image extension allow-list is
// accepted.
package storage

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// ErrUnsupportedType is returned for uploads whose extension is not an
// accepted image format.
var ErrUnsupportedType = errors.New("storage: unsupported file type")

// ErrBadName is returned when a blob reference is empty or tries to escape
// the store directory.
var ErrBadName = errors.New("storage: invalid blob name")

var allowedExt = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
}

// Local is a filesystem-backed blob store rooted at a single directory.
type Local struct {
	dir string
}

// NewLocal creates the store directory if needed and returns the store.
func NewLocal(dir string) (*Local, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: create dir %q: %w", dir, err)
	}
	return &Local{dir: dir}, nil
}

// Dir returns the root directory of the store, for serving files.
func (l *Local) Dir() string { return l.dir }

// Store writes the blob under a fresh UUID-based name derived from the
// original filename's extension and returns that name. The original name
// is used for nothing else.
func (l *Local) Store(r io.Reader, origName string) (string, error) {
	ext := strings.ToLower(filepath.Ext(origName))
	if !allowedExt[ext] {
		return "", ErrUnsupportedType
	}
	name := uuid.NewString() + ext

	f, err := os.Create(filepath.Join(l.dir, name))
	if err != nil {
		return "", fmt.Errorf("storage: create blob: %w", err)
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(f.Name())
		return "", fmt.Errorf("storage: write blob: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return "", fmt.Errorf("storage: close blob: %w", err)
	}
	return name, nil
}

// Delete removes a stored blob. A missing file is not an error; a name
// containing path separators or traversal is rejected.
func (l *Local) Delete(name string) error {
	if err := validName(name); err != nil {
		return err
	}
	if err := os.Remove(filepath.Join(l.dir, name)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("storage: delete blob %q: %w", name, err)
	}
	return nil
}

// Exists reports whether a blob with the given name is present.
func (l *Local) Exists(name string) bool {
	if validName(name) != nil {
		return false
	}
	_, err := os.Stat(filepath.Join(l.dir, name))
	return err == nil
}

func validName(name string) error {
	if name == "" || name != filepath.Base(name) || strings.HasPrefix(name, ".") {
		return ErrBadName
	}
	return nil
}
