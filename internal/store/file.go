package store

import (
	"context"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"

	"product-showcase-service/internal/domain"
)

// FileStore implements ProductReader on top of a JSON array stored in a file.
type FileStore struct {
	fsys     fs.FS
	name     string
	validate *validator.Validate
}

// NewFileStore creates a FileStore reading the products document at path.
func NewFileStore(path string) *FileStore {
	return NewFSStore(os.DirFS(filepath.Dir(path)), filepath.Base(path))
}

// NewFSStore creates a FileStore reading name from fsys.
func NewFSStore(fsys fs.FS, name string) *FileStore {
	return &FileStore{
		fsys:     fsys,
		name:     name,
		validate: validator.New(),
	}
}

// LoadAll reads and parses the whole document.
// Read failures wrap ErrStoreUnavailable, parse and record failures wrap ErrStoreCorrupt.
func (s *FileStore) LoadAll(ctx context.Context) ([]domain.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	data, err := fs.ReadFile(s.fsys, s.name)
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %w", ErrStoreUnavailable, s.name, err)
	}

	var products []domain.Product
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, fmt.Errorf("%w: parsing %s: %w", ErrStoreCorrupt, s.name, err)
	}
	if products == nil { // "null" decodes without error
		return nil, fmt.Errorf("%w: %s does not contain a JSON array", ErrStoreCorrupt, s.name)
	}

	seen := make(map[string]struct{}, len(products))
	for i := range products {
		if err := s.validate.Struct(&products[i]); err != nil {
			return nil, fmt.Errorf("%w: record %d: %w", ErrStoreCorrupt, i, err)
		}
		id := products[i].ID
		if _, dup := seen[id]; dup {
			return nil, fmt.Errorf("%w: duplicate product id %q", ErrStoreCorrupt, id)
		}
		seen[id] = struct{}{}
	}

	return products, nil
}

// Ping checks that the document exists and is a regular file, without reading it.
func (s *FileStore) Ping(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	info, err := fs.Stat(s.fsys, s.name)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("%w: %s is not a regular file", ErrStoreUnavailable, s.name)
	}
	return nil
}
