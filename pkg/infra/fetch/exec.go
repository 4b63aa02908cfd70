package fetch

import (
	"context"
	"os/exec"

	"github.com/m-mizutani/goerr/v2"

	"github.com/m-mizutani/fetchbench/pkg/domain/interfaces"
)

type wgetExec struct {
	bin string
}

// NewWgetExec returns a fetcher that spawns wget in quiet mode, writing the
// download directly to the destination path. bin may be an alternative
// wget-compatible binary; empty means "wget" from PATH.
func NewWgetExec(bin string) interfaces.Fetcher {
	if bin == "" {
		bin = "wget"
	}
	return &wgetExec{bin: bin}
}

func (f *wgetExec) Name() string { return "wget_subprocess" }

func (f *wgetExec) Fetch(ctx context.Context, url, dest string) error {
	cmd := exec.CommandContext(ctx, f.bin, "-q", "-O", dest, url)
	if out, err := cmd.CombinedOutput(); err != nil {
		return goerr.Wrap(err, "wget failed",
			goerr.V("url", url),
			goerr.V("output", string(out)),
		)
	}
	return nil
}

type curlExec struct {
	bin string
}

// NewCurlExec returns a fetcher that spawns curl in silent mode with an
// explicit output path. bin may be an alternative curl-compatible binary;
// empty means "curl" from PATH.
func NewCurlExec(bin string) interfaces.Fetcher {
	if bin == "" {
		bin = "curl"
	}
	return &curlExec{bin: bin}
}

func (f *curlExec) Name() string { return "curl_subprocess" }

func (f *curlExec) Fetch(ctx context.Context, url, dest string) error {
	cmd := exec.CommandContext(ctx, f.bin, "-s", "-o", dest, url)
	if out, err := cmd.CombinedOutput(); err != nil {
		return goerr.Wrap(err, "curl failed",
			goerr.V("url", url),
			goerr.V("output", string(out)),
		)
	}
	return nil
}
