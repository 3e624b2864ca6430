package cli

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/structgrid/config"
	"github.com/katalvlaran/structgrid/mesher"
)

// gridFlags holds the grid-defining flags shared by generate, query and config.
type gridFlags struct {
	configPath   string  // TOML or YAML file read before flags are applied
	nx           int     // points along x
	ny           int     // points along y
	lenx         float64 // domain length
	distribution string  // wall distribution name
	beta         float64 // clustering factor for tangent distributions
	contour      string  // inlet contour expression in x
	dump         string  // vertex dump path; bound by generate only
	plot         string  // PNG path; bound by generate only
}

func bindGridFlags(cmd *cobra.Command, o *gridFlags) {
	def := config.Default()
	cmd.Flags().StringVarP(&o.configPath, "config", "c", "", "config file (.toml, .yaml, .yml)")
	cmd.Flags().IntVar(&o.nx, "nx", def.NX, "points along x")
	cmd.Flags().IntVar(&o.ny, "ny", def.NY, "points along y")
	cmd.Flags().Float64Var(&o.lenx, "lenx", def.LenX, "domain length along x")
	cmd.Flags().StringVarP(&o.distribution, "distribution", "d", def.Distribution, "wall distribution: uniform, hyperbolic-tangent (tanh), top-clustered-tangent (top-tanh)")
	cmd.Flags().Float64Var(&o.beta, "beta", mesher.DefaultBeta, "clustering factor for the tangent distributions")
	cmd.Flags().StringVar(&o.contour, "contour", def.Contour, "inlet contour height as an expression in x")
}

// bindOutputFlags adds the output path flags of the generate command.
func bindOutputFlags(cmd *cobra.Command, o *gridFlags) {
	def := config.Default()
	cmd.Flags().StringVarP(&o.dump, "dump", "o", def.Dump, "vertex dump path (empty to skip)")
	cmd.Flags().StringVarP(&o.plot, "plot", "p", def.Plot, "PNG plot path (empty to skip)")
}

// resolveConfig loads the config file, if any, then applies every flag the
// user set explicitly.
func resolveConfig(cmd *cobra.Command, o *gridFlags) (config.Config, error) {
	cfg := config.Default()
	if o.configPath != "" {
		loaded, err := config.Load(o.configPath)
		if err != nil {
			return config.Config{}, err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("nx") {
		cfg.NX = o.nx
	}
	if flags.Changed("ny") {
		cfg.NY = o.ny
	}
	if flags.Changed("lenx") {
		cfg.LenX = o.lenx
	}
	if flags.Changed("distribution") {
		cfg.Distribution = o.distribution
	}
	if flags.Changed("beta") {
		beta := o.beta
		cfg.Beta = &beta
	}
	if flags.Changed("contour") {
		cfg.Contour = o.contour
	}
	if flags.Changed("dump") {
		cfg.Dump = o.dump
	}
	if flags.Changed("plot") {
		cfg.Plot = o.plot
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}
