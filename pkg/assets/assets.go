// Package assets stores uploaded image blobs under collision-resistant
// generated names. Names are never derived from user input.
package assets

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Upload is a binary blob plus the suggested filename extension
// (including the leading dot, e.g. ".png").
type Upload struct {
	Data []byte
	Ext  string
}

// Store persists an upload and returns the generated object name.
type Store interface {
	Save(ctx context.Context, up *Upload) (string, error)
}

// NewObjectName generates a random hex name keeping only the extension
// of the original filename.
func NewObjectName(ext string) string {
	return strings.ReplaceAll(uuid.NewString(), "-", "") + ext
}

// DiskStore writes uploads into a local directory.
type DiskStore struct {
	dir string
}

func NewDiskStore(dir string) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskStore{dir: dir}, nil
}

// Dir returns the upload directory, for static serving.
func (d *DiskStore) Dir() string { return d.dir }

func (d *DiskStore) Save(_ context.Context, up *Upload) (string, error) {
	name := NewObjectName(up.Ext)
	if err := os.WriteFile(filepath.Join(d.dir, name), up.Data, 0o644); err != nil {
		return "", err
	}
	return name, nil
}
