package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/kinetic/grid"
	"github.com/katalvlaran/kinetic/internal/config"
	"github.com/katalvlaran/kinetic/motion"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "kinetic.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestLoad_MissingFileYieldsDefaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, config.DefaultConfig(), cfg)

	cfg, err = config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.DefaultConfig(), cfg)
}

func TestLoad_OverridesDefaults(t *testing.T) {
	path := writeFile(t, "grid_mode: box\nprop_type: fan\nformat: json\n")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, grid.Box, cfg.GridMode)
	assert.Equal(t, motion.Fan, cfg.PropType)
	assert.Equal(t, config.FormatJSON, cfg.Format)
	assert.Equal(t, 4, cfg.Concurrency, "unset fields keep defaults")
}

func TestLoad_EnvTables(t *testing.T) {
	t.Setenv("KINETIC_TABLES", "/tmp/tables.yaml")

	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/tables.yaml", cfg.Tables)
}

func TestLoad_Invalid(t *testing.T) {
	cases := map[string]string{
		"mode":        "grid_mode: hex\n",
		"prop":        "prop_type: yoyo\n",
		"format":      "format: xml\n",
		"concurrency": "concurrency: 0\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := config.Load(writeFile(t, body))
			assert.ErrorIs(t, err, config.ErrInvalidConfig)
		})
	}

	_, err := config.Load(writeFile(t, "grid_mode: [\n"))
	assert.Error(t, err)
}
