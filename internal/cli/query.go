package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/structgrid/geometry"
	"github.com/katalvlaran/structgrid/grid"
)

// queryOpts holds the flags of the query command.
type queryOpts struct {
	grid      gridFlags
	id        int    // vertex to inspect
	direction string // neighbour direction; empty lists all planar neighbours
	cell      bool   // print the cell anchored at id instead
}

func newQueryCmd() *cobra.Command {
	var opts queryOpts

	cmd := &cobra.Command{
		Use:   "query",
		Short: "Print a vertex of a generated grid with its neighbours or cell",
		Example: `  structgrid query --nx 3 --ny 3 --id 5 --direction north
  structgrid query --config run.toml --id 1 --cell`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, &opts.grid)
			if err != nil {
				return err
			}
			c, err := buildGrid(loggerFromContext(cmd.Context()), cfg)
			if err != nil {
				return err
			}
			return runQuery(cmd.OutOrStdout(), c, &opts)
		},
	}

	bindGridFlags(cmd, &opts.grid)
	cmd.Flags().IntVar(&opts.id, "id", 1, "vertex id (1-based)")
	cmd.Flags().StringVar(&opts.direction, "direction", "", "neighbour direction: north, south, east, west (n, s, e, w)")
	cmd.Flags().BoolVar(&opts.cell, "cell", false, "print the cell whose south-west corner is --id")

	return cmd
}

func runQuery(w io.Writer, c *grid.VertexCollection, opts *queryOpts) error {
	v, err := c.FindVertex(opts.id)
	if err != nil {
		return err
	}

	if opts.cell {
		cell, err := c.CellAt(opts.id)
		if err != nil {
			return err
		}
		corners := cell.Corners()
		fmt.Fprintf(w, "cell %d: centre %s\n", cell.ID, cell.Centre())
		for i, name := range []string{"SW", "SE", "NE", "NW"} {
			fmt.Fprintf(w, "  %s %s\n", name, corners[i])
		}
		return nil
	}

	if opts.direction != "" {
		d, err := geometry.ParseDirection(opts.direction)
		if err != nil {
			return err
		}
		n, err := c.FindAdjacentVertex(opts.id, d)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, n)
		return nil
	}

	neighbors, err := c.Neighbors(opts.id)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, v)
	for _, d := range geometry.PlanarDirections() {
		if n, ok := neighbors[d]; ok {
			fmt.Fprintf(w, "  %-5s %s\n", d, n)
		} else {
			fmt.Fprintf(w, "  %-5s boundary\n", d)
		}
	}
	return nil
}
