package ports

import "context"

// UploadStore reads payment proofs saved by older releases as plain files.
type UploadStore interface {
	// List returns the file names in the store, sorted.
	List(ctx context.Context) ([]string, error)

	// Read returns the file contents. Returns ObjectNotFoundError for unknown
	// names and StorageUnavailableError when the store cannot be reached.
	Read(ctx context.Context, name string) ([]byte, error)
}
