// SPDX-License-Identifier: MIT
package config_test

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/structgrid/config"
	"github.com/katalvlaran/structgrid/contour"
	"github.com/katalvlaran/structgrid/mesher"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 200, cfg.NX)
	assert.Equal(t, 100, cfg.NY)
	assert.Equal(t, 2.0, cfg.LenX)
	assert.Nil(t, cfg.Beta)
	assert.Equal(t, "vertex-dump.txt", cfg.Dump)
	assert.Equal(t, "mesh.png", cfg.Plot)

	kind, err := cfg.Kind()
	require.NoError(t, err)
	assert.Equal(t, mesher.Uniform, kind)

	h, err := cfg.ContourFunc()
	require.NoError(t, err)
	ref := contour.Default()
	for _, x := range []float64{0, 0.5, 1, 2} {
		assert.InDelta(t, ref(x), h(x), 1e-12)
	}
}

func TestLoad_TOML(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "run.toml", `
nx = 40
ny = 20
lenx = 3
distribution = "tanh"
beta = 1.5
contour = "0.5 + 0.1*x"
`)
	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 40, cfg.NX)
	assert.Equal(t, 20, cfg.NY)
	assert.Equal(t, 3.0, cfg.LenX)
	require.NotNil(t, cfg.Beta)
	assert.Equal(t, 1.5, *cfg.Beta)

	kind, err := cfg.Kind()
	require.NoError(t, err)
	assert.Equal(t, mesher.HyperbolicTangent, kind)
	// Unset keys keep their defaults.
	assert.Equal(t, "vertex-dump.txt", cfg.Dump)
}

func TestLoad_YAML(t *testing.T) {
	t.Setenv("STRUCTGRID_OUT", "/tmp/out")
	path := writeFile(t, "run.yml", `
nx: 5
ny: 4
distribution: top-clustered-tangent
dump: $STRUCTGRID_OUT/dump.txt.gz
`)
	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.NX)
	assert.Equal(t, 4, cfg.NY)
	assert.Equal(t, 2.0, cfg.LenX)
	assert.Equal(t, "/tmp/out/dump.txt.gz", cfg.Dump)
}

func TestLoad_EmptyYAMLKeepsDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := config.Load(writeFile(t, "empty.yaml", ""))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoad_Errors(t *testing.T) {
	t.Parallel()

	_, err := config.Load(writeFile(t, "run.json", "{}"))
	assert.True(t, errors.Is(err, config.ErrUnsupportedFormat))

	_, err = config.Load(filepath.Join(t.TempDir(), "absent.toml"))
	assert.True(t, errors.Is(err, os.ErrNotExist))

	_, err = config.Load(writeFile(t, "unknown.toml", "nz = 3\n"))
	assert.True(t, errors.Is(err, config.ErrInvalidConfig))

	_, err = config.Load(writeFile(t, "unknown.yaml", "nz: 3\n"))
	assert.Error(t, err)

	_, err = config.Load(writeFile(t, "broken.toml", "nx = \n"))
	assert.Error(t, err)

	_, err = config.Load(writeFile(t, "small.toml", "nx = 1\n"))
	assert.True(t, errors.Is(err, config.ErrInvalidConfig))
	assert.True(t, errors.Is(err, mesher.ErrTooFewPoints))
}

func TestValidate(t *testing.T) {
	t.Parallel()

	neg, inf := -1.0, math.Inf(1)
	cases := []struct {
		name   string
		mutate func(*config.Config)
		cause  error
	}{
		{"Length", func(c *config.Config) { c.LenX = 0 }, mesher.ErrInvalidLength},
		{"Distribution", func(c *config.Config) { c.Distribution = "cosine" }, mesher.ErrUnknownDistribution},
		{"Beta", func(c *config.Config) { c.Distribution = "tanh"; c.Beta = &neg }, mesher.ErrInvalidBeta},
		{"InfiniteBeta", func(c *config.Config) { c.Distribution = "top-tanh"; c.Beta = &inf }, mesher.ErrInvalidBeta},
		{"Contour", func(c *config.Config) { c.Contour = "1 - y" }, contour.ErrBadExpression},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.Default()
			tc.mutate(&cfg)
			err := cfg.Validate()
			assert.True(t, errors.Is(err, config.ErrInvalidConfig), "%v", err)
			assert.True(t, errors.Is(err, tc.cause), "%v", err)
		})
	}

	// Uniform ignores β entirely.
	cfg := config.Default()
	cfg.Beta = &neg
	assert.NoError(t, cfg.Validate())

	// Every problem is reported at once.
	cfg = config.Config{Distribution: "?", Contour: "z"}
	err := cfg.Validate()
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "nx=0"))
	assert.True(t, errors.Is(err, mesher.ErrUnknownDistribution))
}

func TestOptions_DriveBuildGrid(t *testing.T) {
	t.Parallel()

	beta := 3.0
	cfg := config.Default()
	cfg.NX, cfg.NY = 3, 5
	cfg.Distribution = "top-tanh"
	cfg.Beta = &beta

	assert.Len(t, cfg.Options(nil), 1)
	opts := cfg.Options(log.New(&strings.Builder{}))
	assert.Len(t, opts, 2)

	kind, err := cfg.Kind()
	require.NoError(t, err)
	h, err := cfg.ContourFunc()
	require.NoError(t, err)

	c, err := mesher.BuildGrid(cfg.NX, cfg.NY, cfg.LenX, kind, h, opts...)
	require.NoError(t, err)

	want, err := mesher.Distribute(mesher.TopClusteredTangent, 5, h(0), beta)
	require.NoError(t, err)
	for j, y := range want {
		v, err := c.FindVertex(j + 1)
		require.NoError(t, err)
		assert.Equal(t, y, v.Coords.Y)
	}
}
