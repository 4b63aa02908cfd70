package http

import (
	"math/rand"
	"net/http"
	"strconv"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
)

// maxRandomSize caps /random payloads at 1 GiB
const maxRandomSize = 1 << 30

// randomWriteSize is the block size for streaming /random payloads
const randomWriteSize = 128 * 1024

// handleRandom streams ?size=N pseudo-random bytes. The generator is seeded
// with the size, so a given size always yields the same content and the same
// digest across runs.
func handleRandom(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("size")
	size, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		writeError(w, goerr.Wrap(err, "invalid size parameter", goerr.V("size", raw)), http.StatusBadRequest)
		return
	}
	if size < 0 || size > maxRandomSize {
		writeError(w, goerr.New("size out of range", goerr.V("size", size)), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/octet-stream")
	w.Header().Set("Content-Length", strconv.FormatInt(size, 10))
	w.WriteHeader(http.StatusOK)

	rng := rand.New(rand.NewSource(size))
	buf := make([]byte, randomWriteSize)
	for remain := size; remain > 0; {
		n := int64(len(buf))
		if remain < n {
			n = remain
		}
		rng.Read(buf[:n])
		if _, err := w.Write(buf[:n]); err != nil {
			ctxlog.From(r.Context()).Warn("Failed to write random payload", "error", err)
			return
		}
		remain -= n
	}
}
