package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/pagekit/internal/config"
	"github.com/rshade/pagekit/internal/logging"
)

// isolateConfig points PAGEKIT_HOME at a temp dir and clears overrides.
func isolateConfig(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv(config.EnvHome, home)
	t.Setenv(config.EnvLogLevel, "")
	t.Setenv(config.EnvItemsPerPage, "")
	t.Setenv(config.EnvMaxDisplayedPages, "")
	t.Setenv(config.EnvOutputFormat, "")
	t.Cleanup(config.ResetGlobalConfigForTest)
	return home
}

func TestNew_Defaults(t *testing.T) {
	home := isolateConfig(t)

	cfg := config.New()

	assert.Equal(t, config.CurrentVersion, cfg.Version)
	assert.Equal(t, config.DefaultItemsPerPage, cfg.Pagination.ItemsPerPage)
	assert.Equal(t, config.DefaultMaxDisplayedPages, cfg.Pagination.MaxDisplayedPages)
	assert.True(t, cfg.Pagination.FullMode)
	assert.Equal(t, "table", cfg.Output.DefaultFormat)
	assert.Equal(t, filepath.Join(home, "config.yaml"), cfg.ConfigPath())
	require.NoError(t, cfg.Validate())
}

func TestNew_LoadsFileAndEnvOverrides(t *testing.T) {
	home := isolateConfig(t)
	require.NoError(t, os.WriteFile(filepath.Join(home, "config.yaml"), []byte(`
pagination:
  items_per_page: 15
  full_mode: false
output:
  default_format: yaml
`), 0o600))
	t.Setenv(config.EnvMaxDisplayedPages, "3")
	t.Setenv(config.EnvLogLevel, "debug")
	t.Setenv(config.EnvItemsPerPage, "not-a-number")

	cfg := config.New()

	assert.Equal(t, 15, cfg.Pagination.ItemsPerPage)
	assert.False(t, cfg.Pagination.FullMode)
	assert.Equal(t, 3, cfg.Pagination.MaxDisplayedPages)
	assert.Equal(t, "yaml", cfg.Output.DefaultFormat)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestConfig_SaveRoundTrip(t *testing.T) {
	isolateConfig(t)

	cfg := config.New()
	cfg.Pagination.ItemsPerPage = 42
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	cfg.SetConfigPath(path)
	require.NoError(t, cfg.Save())

	loaded := config.DefaultConfig()
	require.NoError(t, config.ShallowMergeYAML(loaded, path))
	assert.Equal(t, 42, loaded.Pagination.ItemsPerPage)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestConfig_SaveWithoutPath(t *testing.T) {
	cfg := config.DefaultConfig()
	require.Error(t, cfg.Save())
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*config.Config)
		wantErr error
	}{
		{name: "defaults", mutate: func(*config.Config) {}},
		{name: "minor version accepted", mutate: func(c *config.Config) { c.Version = "1.4.2" }},
		{
			name:    "major version rejected",
			mutate:  func(c *config.Config) { c.Version = "2.0.0" },
			wantErr: config.ErrInvalidVersion,
		},
		{
			name:    "garbage version",
			mutate:  func(c *config.Config) { c.Version = "banana" },
			wantErr: config.ErrInvalidVersion,
		},
		{
			name:    "zero items per page",
			mutate:  func(c *config.Config) { c.Pagination.ItemsPerPage = 0 },
			wantErr: config.ErrInvalidItemsPerPage,
		},
		{
			name:    "too many displayed pages",
			mutate:  func(c *config.Config) { c.Pagination.MaxDisplayedPages = 100 },
			wantErr: config.ErrInvalidMaxDisplayed,
		},
		{
			name:    "unknown output format",
			mutate:  func(c *config.Config) { c.Output.DefaultFormat = "xml" },
			wantErr: config.ErrInvalidOutputFormat,
		},
		{
			name:    "unknown log format",
			mutate:  func(c *config.Config) { c.Logging.Format = "logfmt" },
			wantErr: config.ErrInvalidLoggingFormat,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestGlobalConfig(t *testing.T) {
	isolateConfig(t)
	t.Setenv(config.EnvItemsPerPage, "11")

	assert.Equal(t, 11, config.GetPaginationDefaults().ItemsPerPage)
	assert.Equal(t, "json", config.GetOutputFormat("json"))
	assert.Equal(t, "table", config.GetOutputFormat(""))

	config.ResetGlobalConfigForTest()
	t.Setenv(config.EnvItemsPerPage, "12")
	assert.Equal(t, 12, config.GetPaginationDefaults().ItemsPerPage)
}

func TestGetConfigDir(t *testing.T) {
	t.Setenv(config.EnvHome, "/custom/home")
	dir, err := config.GetConfigDir()
	require.NoError(t, err)
	assert.Equal(t, "/custom/home", dir)
}

func TestEnsureLogDir(t *testing.T) {
	home := isolateConfig(t)
	logFile := filepath.Join(home, "logs", "deep", "pagekit.log")
	require.NoError(t, os.WriteFile(filepath.Join(home, "config.yaml"),
		[]byte("logging:\n  file: "+logFile+"\n"), 0o600))

	require.NoError(t, config.EnsureLogDir())

	info, err := os.Stat(filepath.Dir(logFile))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestLoggingConfig_ToLoggingConfig(t *testing.T) {
	stderr := config.LoggingConfig{Level: "warn", Format: "json"}
	assert.Equal(t, logging.Config{Level: "warn", Format: "json", Output: logging.OutputStderr},
		stderr.ToLoggingConfig())

	file := config.LoggingConfig{Level: "debug", File: "/var/log/pagekit.log"}
	got := file.ToLoggingConfig()
	assert.Equal(t, logging.OutputFile, got.Output)
	assert.Equal(t, "/var/log/pagekit.log", got.File)
}
