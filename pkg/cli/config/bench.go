package config

import "github.com/urfave/cli/v3"

// Bench holds benchmark run configuration
type Bench struct {
	Manifest string
	Only     []string
	WgetBin  string
	CurlBin  string
	SkipPool bool
}

// Flags returns CLI flags for benchmark configuration
func (c *Bench) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "manifest",
			Usage:       "TOML manifest of targets (default: built-in Landsat table)",
			Destination: &c.Manifest,
			Sources:     cli.EnvVars("FETCHBENCH_MANIFEST"),
		},
		&cli.StringSliceFlag{
			Name:        "only",
			Usage:       "Run only the named fetchers (repeatable)",
			Destination: &c.Only,
		},
		&cli.StringFlag{
			Name:        "wget-bin",
			Usage:       "wget binary name or path",
			Value:       "wget",
			Destination: &c.WgetBin,
			Sources:     cli.EnvVars("FETCHBENCH_WGET_BIN"),
		},
		&cli.StringFlag{
			Name:        "curl-bin",
			Usage:       "curl binary name or path",
			Value:       "curl",
			Destination: &c.CurlBin,
			Sources:     cli.EnvVars("FETCHBENCH_CURL_BIN"),
		},
		&cli.BoolFlag{
			Name:        "skip-pool",
			Usage:       "Skip the second, worker-pool-dispatched pass",
			Destination: &c.SkipPool,
		},
	}
}
