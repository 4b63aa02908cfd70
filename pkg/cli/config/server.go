package config

import "github.com/urfave/cli/v3"

// Server holds fixture server configuration
type Server struct {
	Addr string
	Dir  string
}

// Flags returns CLI flags for server configuration
func (c *Server) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "Server address",
			Value:       "localhost:8080",
			Destination: &c.Addr,
			Sources:     cli.EnvVars("FETCHBENCH_ADDR"),
		},
		&cli.StringFlag{
			Name:        "dir",
			Usage:       "Directory served under /files/",
			Destination: &c.Dir,
			Sources:     cli.EnvVars("FETCHBENCH_DIR"),
		},
	}
}
