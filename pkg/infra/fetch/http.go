package fetch

import (
	"context"
	"io"
	"net/http"
	"os"

	"github.com/m-mizutani/goerr/v2"

	"github.com/m-mizutani/fetchbench/pkg/domain/interfaces"
)

// chunkSize is the read size for the chunked HTTP fetcher
const chunkSize = 128 * 1024

type httpRawCopy struct{}

// NewHTTPRawCopy returns a fetcher that streams the response body into the
// destination file with a single io.Copy.
func NewHTTPRawCopy() interfaces.Fetcher {
	return &httpRawCopy{}
}

func (f *httpRawCopy) Name() string { return "http_raw_copy" }

func (f *httpRawCopy) Fetch(ctx context.Context, url, dest string) error {
	body, err := openStream(ctx, url)
	if err != nil {
		return err
	}
	defer body.Close()

	fp, err := os.Create(dest)
	if err != nil {
		return goerr.Wrap(err, "failed to create destination file", goerr.V("dest", dest))
	}
	defer fp.Close()

	if _, err := io.Copy(fp, body); err != nil {
		return goerr.Wrap(err, "failed to copy response body", goerr.V("url", url))
	}

	return nil
}

type httpChunked struct{}

// NewHTTPChunked returns a fetcher that reads the response body in 128 KiB
// chunks and writes each chunk to the destination file.
func NewHTTPChunked() interfaces.Fetcher {
	return &httpChunked{}
}

func (f *httpChunked) Name() string { return "http_chunked" }

func (f *httpChunked) Fetch(ctx context.Context, url, dest string) error {
	body, err := openStream(ctx, url)
	if err != nil {
		return err
	}
	defer body.Close()

	fp, err := os.Create(dest)
	if err != nil {
		return goerr.Wrap(err, "failed to create destination file", goerr.V("dest", dest))
	}
	defer fp.Close()

	buf := make([]byte, chunkSize)
	for {
		n, readErr := body.Read(buf)
		if n > 0 {
			if _, err := fp.Write(buf[:n]); err != nil {
				return goerr.Wrap(err, "failed to write chunk", goerr.V("dest", dest))
			}
		}
		if readErr == io.EOF {
			return nil
		}
		if readErr != nil {
			return goerr.Wrap(readErr, "failed to read response body", goerr.V("url", url))
		}
	}
}

// openStream issues the GET request and returns the response body on a 2xx
// status. The caller owns the returned ReadCloser.
func openStream(ctx context.Context, url string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create request", goerr.V("url", url))
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to GET", goerr.V("url", url))
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		resp.Body.Close()
		return nil, goerr.New("unexpected status code",
			goerr.V("url", url),
			goerr.V("status", resp.StatusCode),
		)
	}

	return resp.Body, nil
}
