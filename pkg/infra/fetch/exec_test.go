package fetch_test

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/m-mizutani/fetchbench/pkg/domain/interfaces"
	"github.com/m-mizutani/fetchbench/pkg/infra/fetch"
)

// writeFakeTool creates an executable shell script standing in for wget or
// curl. It writes the given body to the destination path argument, which is
// the argument after flag ("-O" for wget, "-o" for curl).
func writeFakeTool(t *testing.T, flag, body string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell script fixtures require a POSIX shell")
	}

	script := strings.Join([]string{
		"#!/bin/sh",
		"while [ $# -gt 0 ]; do",
		"  if [ \"$1\" = \"" + flag + "\" ]; then",
		"    dest=\"$2\"",
		"    shift",
		"  fi",
		"  shift",
		"done",
		"printf '%s' '" + body + "' > \"$dest\"",
		"",
	}, "\n")

	path := filepath.Join(t.TempDir(), "faketool")
	gt.NoError(t, os.WriteFile(path, []byte(script), 0755))
	return path
}

// writeFailingTool creates an executable that exits non-zero, like wget or
// curl against an unresolvable host.
func writeFailingTool(t *testing.T) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell script fixtures require a POSIX shell")
	}

	script := "#!/bin/sh\necho 'could not resolve host' >&2\nexit 4\n"
	path := filepath.Join(t.TempDir(), "failtool")
	gt.NoError(t, os.WriteFile(path, []byte(script), 0755))
	return path
}

func TestWgetExec(t *testing.T) {
	bin := writeFakeTool(t, "-O", "hello world!")
	fetcher := fetch.NewWgetExec(bin)
	gt.Value(t, fetcher.Name()).Equal("wget_subprocess")

	dest := filepath.Join(t.TempDir(), "out.bin")
	gt.NoError(t, fetcher.Fetch(context.Background(), "http://example.com/f", dest))

	got, err := os.ReadFile(dest)
	gt.NoError(t, err)
	gt.Value(t, string(got)).Equal("hello world!")
}

func TestCurlExec(t *testing.T) {
	bin := writeFakeTool(t, "-o", "hello world!")
	fetcher := fetch.NewCurlExec(bin)
	gt.Value(t, fetcher.Name()).Equal("curl_subprocess")

	dest := filepath.Join(t.TempDir(), "out.bin")
	gt.NoError(t, fetcher.Fetch(context.Background(), "http://example.com/f", dest))

	got, err := os.ReadFile(dest)
	gt.NoError(t, err)
	gt.Value(t, string(got)).Equal("hello world!")
}

func TestExecFetchers_NonZeroExit(t *testing.T) {
	bin := writeFailingTool(t)

	fetchers := []interfaces.Fetcher{
		fetch.NewWgetExec(bin),
		fetch.NewCurlExec(bin),
	}

	for _, f := range fetchers {
		t.Run(f.Name(), func(t *testing.T) {
			dest := filepath.Join(t.TempDir(), "out.bin")
			err := f.Fetch(context.Background(), "http://no-such-host.invalid/f", dest)
			gt.Error(t, err)
			gt.True(t, strings.Contains(err.Error(), "failed"))
		})
	}
}

func TestExecFetchers_MissingBinary(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "out.bin")
	missing := filepath.Join(t.TempDir(), "no-such-tool")

	gt.Error(t, fetch.NewWgetExec(missing).Fetch(context.Background(), "http://example.com/f", dest))
	gt.Error(t, fetch.NewCurlExec(missing).Fetch(context.Background(), "http://example.com/f", dest))
}
