package model

// Result represents one successful benchmark measurement. Results are
// rendered immediately and never persisted.
type Result struct {
	Fetcher string  // Fetcher name
	Elapsed float64 // Wall-clock seconds for the download
	Bytes   int64   // File size from the filesystem, not the stream
	Speed   float64 // Bytes per second
}

// Mismatch represents a digest verification failure for one benchmark run
type Mismatch struct {
	Fetcher  string // Fetcher name
	Target   string // Target name
	Size     string // Target's human-readable size label
	Actual   string // Base64 MD5 computed from the downloaded file
	Expected string // Base64 MD5 from the target table
}
