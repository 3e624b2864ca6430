package cli

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/structgrid/config"
	"github.com/katalvlaran/structgrid/export"
	"github.com/katalvlaran/structgrid/grid"
	"github.com/katalvlaran/structgrid/mesher"
)

// generateOpts holds the flags of the generate command.
type generateOpts struct {
	grid  gridFlags
	title string // plot title
}

func newGenerateCmd() *cobra.Command {
	opts := generateOpts{title: "mesh"}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a grid and write its vertex dump and plot",
		Long: `Generate builds an nx×ny grid under the inlet contour and writes a vertex dump
(.gz and .zst suffixes compress it) and a PNG scatter plot of the vertices.
Flags override values read from --config.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, &opts.grid)
			if err != nil {
				return err
			}
			_, err = runGenerate(cmd.Context(), cfg, opts.title)
			return err
		},
	}

	bindGridFlags(cmd, &opts.grid)
	bindOutputFlags(cmd, &opts.grid)
	cmd.Flags().StringVar(&opts.title, "title", opts.title, "plot title")

	return cmd
}

// buildGrid generates the grid described by cfg. The collection uses JIK so
// that query steps and cells follow the generated columns for any nx, ny.
func buildGrid(logger *log.Logger, cfg config.Config) (*grid.VertexCollection, error) {
	kind, err := cfg.Kind()
	if err != nil {
		return nil, err
	}
	h, err := cfg.ContourFunc()
	if err != nil {
		return nil, err
	}

	prog := newProgress(logger)
	opts := append(cfg.Options(logger), mesher.WithOrder(grid.JIK))
	c, err := mesher.BuildGrid(cfg.NX, cfg.NY, cfg.LenX, kind, h, opts...)
	if err != nil {
		return nil, err
	}
	prog.done(fmt.Sprintf("Generated %d vertices", c.Len()))
	return c, nil
}

// runGenerate builds the grid, then writes the dump and the plot concurrently.
// The collection is read-only once built, so both writers share it.
func runGenerate(ctx context.Context, cfg config.Config, title string) (*grid.VertexCollection, error) {
	logger := loggerFromContext(ctx)
	logger.Debug("configuration", "nx", cfg.NX, "ny", cfg.NY, "lenx", cfg.LenX, "distribution", cfg.Distribution, "contour", cfg.Contour)

	c, err := buildGrid(logger, cfg)
	if err != nil {
		return nil, err
	}
	if minX, maxX, minY, maxY, err := c.Extents(); err == nil {
		logger.Info("Extents", "x", fmt.Sprintf("[%g, %g]", minX, maxX), "y", fmt.Sprintf("[%g, %g]", minY, maxY))
	}

	g, ctx := errgroup.WithContext(ctx)
	if cfg.Dump != "" {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			prog := newProgress(logger)
			if err := export.DumpFile(cfg.Dump, c); err != nil {
				return err
			}
			prog.done(fmt.Sprintf("Wrote %s (%s)", cfg.Dump, export.CompressionFor(cfg.Dump)))
			return nil
		})
	}
	if cfg.Plot != "" {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			prog := newProgress(logger)
			if err := export.PlotVertices(cfg.Plot, title, c); err != nil {
				return err
			}
			prog.done("Wrote " + cfg.Plot)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return c, err
	}
	return c, nil
}
