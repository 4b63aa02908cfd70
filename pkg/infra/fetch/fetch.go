// Package fetch provides the download strategies under benchmark: two
// streaming HTTP clients and two external-process wrappers.
package fetch

import "github.com/m-mizutani/fetchbench/pkg/domain/interfaces"

// Options configures the fetcher set
type Options struct {
	// WgetBin overrides the wget binary name (default: "wget" from PATH)
	WgetBin string
	// CurlBin overrides the curl binary name (default: "curl" from PATH)
	CurlBin string
}

// Default returns the fixed set of fetchers in benchmark order. The set is
// assembled once at startup and passed explicitly to the runner.
func Default(opts Options) []interfaces.Fetcher {
	return []interfaces.Fetcher{
		NewHTTPRawCopy(),
		NewHTTPChunked(),
		NewWgetExec(opts.WgetBin),
		NewCurlExec(opts.CurlBin),
	}
}
