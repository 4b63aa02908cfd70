package interfaces

import "context"

// Fetcher defines one download strategy under benchmark. On success the
// destination file contains the complete retrieved content; on failure the
// returned error aborts that benchmark iteration.
type Fetcher interface {
	// Name identifies the strategy in report lines
	Name() string

	// Fetch downloads url into the file at dest
	Fetch(ctx context.Context, url, dest string) error
}
