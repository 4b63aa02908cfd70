package cli

import (
	"context"
	"log/slog"
	"slices"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/m-mizutani/fetchbench/pkg/cli/config"
	"github.com/m-mizutani/fetchbench/pkg/domain/interfaces"
	"github.com/m-mizutani/fetchbench/pkg/domain/model"
	"github.com/m-mizutani/fetchbench/pkg/infra/fetch"
	"github.com/m-mizutani/fetchbench/pkg/usecase"
)

func cmdRun() *cli.Command {
	var benchCfg config.Bench

	return &cli.Command{
		Name:    "run",
		Aliases: []string{"r"},
		Usage:   "Run the download benchmark",
		Flags:   benchCfg.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			targets := model.DefaultTargets()
			if benchCfg.Manifest != "" {
				loaded, err := model.LoadManifest(benchCfg.Manifest)
				if err != nil {
					return goerr.Wrap(err, "failed to load manifest")
				}
				targets = loaded
			}

			fetchers := fetch.Default(fetch.Options{
				WgetBin: benchCfg.WgetBin,
				CurlBin: benchCfg.CurlBin,
			})
			if len(benchCfg.Only) > 0 {
				fetchers = filterFetchers(fetchers, benchCfg.Only)
				if len(fetchers) == 0 {
					return goerr.New("no fetcher matches --only",
						goerr.V("only", benchCfg.Only),
					)
				}
			}

			logger.Info("Benchmark configured",
				slog.Int("targets", len(targets)),
				slog.Int("fetchers", len(fetchers)),
			)

			bench := usecase.NewBench(targets, fetchers,
				usecase.WithSkipPool(benchCfg.SkipPool),
			)
			if err := bench.Run(ctx); err != nil {
				return goerr.Wrap(err, "benchmark aborted")
			}

			return nil
		},
	}
}

func filterFetchers(fetchers []interfaces.Fetcher, only []string) []interfaces.Fetcher {
	var selected []interfaces.Fetcher
	for _, f := range fetchers {
		if slices.Contains(only, f.Name()) {
			selected = append(selected, f)
		}
	}
	return selected
}
