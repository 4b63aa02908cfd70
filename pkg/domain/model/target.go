package model

import (
	"encoding/base64"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
)

// Target describes a file to benchmark: where to fetch it from and what
// its content digest must be. Targets are immutable after load.
type Target struct {
	// Name is a human-readable identifier used in report lines
	Name string `toml:"name"`
	// URL is the HTTP source of the file
	URL string `toml:"url"`
	// MD5 is the base64 encoding of the expected MD5 digest
	MD5 string `toml:"md5"`
	// Size is a human-readable size label used only in mismatch diagnostics
	Size string `toml:"size"`
}

// Validate checks that the target is usable for benchmarking
func (t *Target) Validate() error {
	if t.Name == "" {
		return goerr.New("target name is required")
	}
	if t.URL == "" {
		return goerr.New("target URL is required", goerr.V("name", t.Name))
	}
	raw, err := base64.StdEncoding.DecodeString(t.MD5)
	if err != nil {
		return goerr.Wrap(err, "target MD5 is not valid base64", goerr.V("name", t.Name))
	}
	if len(raw) != 16 {
		return goerr.New("target MD5 must decode to 16 bytes",
			goerr.V("name", t.Name),
			goerr.V("decoded_len", len(raw)),
		)
	}
	return nil
}

// Manifest is the TOML format for a user-provided target table
type Manifest struct {
	Targets []Target `toml:"targets"`
}

// LoadManifest reads a TOML manifest file and returns its validated targets
func LoadManifest(path string) ([]Target, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read manifest file", goerr.V("path", path))
	}

	var manifest Manifest
	if err := toml.Unmarshal(data, &manifest); err != nil {
		return nil, goerr.Wrap(err, "failed to parse manifest TOML", goerr.V("path", path))
	}

	if len(manifest.Targets) == 0 {
		return nil, goerr.New("manifest contains no targets", goerr.V("path", path))
	}

	for i := range manifest.Targets {
		if err := manifest.Targets[i].Validate(); err != nil {
			return nil, goerr.Wrap(err, "invalid target in manifest", goerr.V("index", i))
		}
	}

	return manifest.Targets, nil
}

// DefaultTargets returns the built-in benchmark table: three Landsat tiles
// of increasing size hosted on Google Cloud Storage.
func DefaultTargets() []Target {
	return []Target{
		{
			Name: "LC80440342016259LGN00_BQA.TIF",
			URL:  "https://storage.googleapis.com/gcp-public-data-landsat/LC08/PRE/044/034/LC80440342016259LGN00/LC80440342016259LGN00_BQA.TIF",
			MD5:  "zqigvl5Envmi/GLc8yH51A==",
			Size: "3.2MB",
		},
		{
			Name: "LC80440342016259LGN00_B1.TIF",
			URL:  "https://storage.googleapis.com/gcp-public-data-landsat/LC08/PRE/044/034/LC80440342016259LGN00/LC80440342016259LGN00_B1.TIF",
			MD5:  "835L6B5frB0zCB6s22r2Sw==",
			Size: "71.26MB",
		},
		{
			Name: "LC80440342016259LGN00_B8.TIF",
			URL:  "https://storage.googleapis.com/gcp-public-data-landsat/LC08/PRE/044/034/LC80440342016259LGN00/LC80440342016259LGN00_B8.TIF",
			MD5:  "y795LrUzBwk2tL6PM01cEA==",
			Size: "304.12MB",
		},
	}
}
