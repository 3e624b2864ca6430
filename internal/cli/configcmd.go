package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/structgrid/config"
)

func newConfigCmd() *cobra.Command {
	var (
		opts   gridFlags
		format string
	)

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Long:  `Config prints the defaults merged with --config and any flags, in a form generate --config accepts.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, &opts)
			if err != nil {
				return err
			}
			return writeConfig(cmd.OutOrStdout(), cfg, format)
		},
	}

	bindGridFlags(cmd, &opts)
	cmd.Flags().StringVarP(&format, "format", "f", "toml", "output format: toml, yaml")

	return cmd
}

func writeConfig(w io.Writer, cfg config.Config, format string) error {
	switch strings.ToLower(format) {
	case "toml":
		return toml.NewEncoder(w).Encode(cfg)
	case "yaml", "yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(cfg); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("%q: %w", format, config.ErrUnsupportedFormat)
}
