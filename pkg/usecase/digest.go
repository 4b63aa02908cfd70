package usecase

import (
	"crypto/md5"
	"encoding/base64"
	"io"
	"os"

	"github.com/m-mizutani/goerr/v2"
)

// digestBlockSize is the read size for incremental hashing
const digestBlockSize = 1024 * 1024

// FileDigest returns the base64 encoding of the MD5 digest of the file at
// path, reading it in 1 MiB blocks.
func FileDigest(path string) (string, error) {
	fp, err := os.Open(path)
	if err != nil {
		return "", goerr.Wrap(err, "failed to open file for digest", goerr.V("path", path))
	}
	defer fp.Close()

	hash := md5.New()
	buf := make([]byte, digestBlockSize)
	for {
		n, readErr := fp.Read(buf)
		if n > 0 {
			hash.Write(buf[:n])
		}
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			return "", goerr.Wrap(readErr, "failed to read file for digest", goerr.V("path", path))
		}
	}

	return base64.StdEncoding.EncodeToString(hash.Sum(nil)), nil
}
