// Package uploads reads payment proofs that older releases wrote to a local
// directory instead of the database.
package uploads

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"storefront/internal/pkg/errs"
)

const storageName = "uploads"

// DirStore implements ports.UploadStore over one flat directory.
type DirStore struct {
	dir       string
	available bool
	cause     error
}

// NewDirStore creates dir when missing. A directory that cannot be created (for
// example on a read-only filesystem) yields a store whose every call returns
// StorageUnavailableError.
func NewDirStore(dir string) *DirStore {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return &DirStore{dir: dir, cause: err}
	}
	return &DirStore{dir: dir, available: true}
}

func (s *DirStore) Dir() string {
	return s.dir
}

func (s *DirStore) Available() bool {
	return s.available
}

// List returns the regular files in the directory sorted by name.
func (s *DirStore) List(ctx context.Context) ([]string, error) {
	if err := s.check(ctx); err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, errs.NewStorageUnavailableErrorWithCause(storageName, err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.Type().IsRegular() {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)

	return names, nil
}

// Read returns the contents of the named file. Names containing a path separator
// or parent reference are rejected.
func (s *DirStore) Read(ctx context.Context, name string) ([]byte, error) {
	if err := s.check(ctx); err != nil {
		return nil, err
	}

	if err := validateName(name); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(filepath.Join(s.dir, name))
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return nil, errs.NewObjectNotFoundErrorWithCause("upload", name, err)
	case err != nil:
		return nil, errs.NewStorageUnavailableErrorWithCause(storageName, err)
	}

	return data, nil
}

func (s *DirStore) check(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !s.available {
		return errs.NewStorageUnavailableErrorWithCause(storageName, s.cause)
	}
	return nil
}

func validateName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("filename")
	}
	if name != filepath.Base(name) || strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
		return errs.NewValueIsInvalidErrorWithCause("filename", fmt.Errorf("%q is not a plain file name", name))
	}
	return nil
}
