package param

import "context"

type Fetcher interface {
	// Fetch returns the decrypted value stored at path.
	Fetch(ctx context.Context, path string) (string, error)
	// FetchAll returns the values directly below path, ordered by name.
	FetchAll(ctx context.Context, path string) ([]string, error)
}
