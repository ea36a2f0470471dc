package cli_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/rshade/pagekit/internal/cli"
	"github.com/rshade/pagekit/internal/cli/pagination"
	"github.com/rshade/pagekit/internal/config"
)

func TestPagesCmd_Table(t *testing.T) {
	setupCLITest(t)

	out, err := execute(t, "", "pages", "--total", "95", "--page", "5", "--page-size", "10", "--max-pages", "5")

	require.NoError(t, err)
	assert.Contains(t, out, "5 of 10")
	assert.Contains(t, out, "41-50")
	assert.Contains(t, out, "3 4 5 6 7")
	assert.Contains(t, out, "« ‹ 3 4 [5] 6 7 › »")
}

func TestPagesCmd_TableGroupsCounts(t *testing.T) {
	setupCLITest(t)

	out, err := execute(t, "", "pages", "--total", "123456", "--page", "2", "--page-size", "1000")

	require.NoError(t, err)
	assert.Contains(t, out, "123,456")
	assert.Contains(t, out, "1,001-2,000")
}

func TestPagesCmd_JSON(t *testing.T) {
	setupCLITest(t)

	out, err := execute(t, "", "pages", "--total", "95", "--page", "5", "--page-size", "10",
		"--max-pages", "5", "--full=false", "-o", "json")
	require.NoError(t, err)

	var meta pagination.PageMeta
	require.NoError(t, json.Unmarshal([]byte(out), &meta))
	assert.Equal(t, 5, meta.CurrentPage)
	assert.Equal(t, 10, meta.TotalPages)
	assert.Equal(t, 41, meta.FirstItem)
	assert.Equal(t, 50, meta.LastItem)
	assert.Equal(t, []int{3, 4, 5, 6, 7}, meta.VisiblePages)
	assert.True(t, meta.HasPrevious)
	assert.True(t, meta.HasNext)
	assert.False(t, meta.FullMode)
}

func TestPagesCmd_YAML(t *testing.T) {
	setupCLITest(t)

	out, err := execute(t, "", "pages", "--total", "0", "-o", "yaml")
	require.NoError(t, err)

	var meta pagination.PageMeta
	require.NoError(t, yaml.Unmarshal([]byte(out), &meta))
	assert.Equal(t, 1, meta.CurrentPage)
	assert.Equal(t, 0, meta.TotalPages)
	assert.Equal(t, 0, meta.FirstItem)
	assert.False(t, meta.HasNext)
	assert.Empty(t, meta.VisiblePages)
}

func TestPagesCmd_ClampsOutOfRangePage(t *testing.T) {
	tests := []struct {
		name      string
		page      string
		wantFirst int
		wantLast  int
	}{
		{"one past the end", "11", 91, 95},
		{"huge page", "1000000000000000000", 91, 95},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupCLITest(t)

			out, err := execute(t, "", "pages", "--total", "95", "--page-size", "10",
				"--max-pages", "5", "--page", tt.page, "-o", "json")
			require.NoError(t, err)

			var meta pagination.PageMeta
			require.NoError(t, json.Unmarshal([]byte(out), &meta))
			assert.Equal(t, 10, meta.CurrentPage)
			assert.Equal(t, 10, meta.TotalPages)
			assert.Equal(t, tt.wantFirst, meta.FirstItem)
			assert.Equal(t, tt.wantLast, meta.LastItem)
			assert.True(t, meta.HasPrevious)
			assert.False(t, meta.HasNext)
			assert.Equal(t, []int{8, 9, 10}, meta.VisiblePages)
		})
	}
}

func TestPagesCmd_DefaultOutputFromConfig(t *testing.T) {
	home := setupCLITest(t)
	require.NoError(t, os.WriteFile(filepath.Join(home, "config.yaml"),
		[]byte("output:\n  default_format: json\n"), 0o600))

	out, err := execute(t, "", "pages", "--total", "30")
	require.NoError(t, err)

	var meta pagination.PageMeta
	require.NoError(t, json.Unmarshal([]byte(out), &meta))
	assert.Equal(t, config.DefaultItemsPerPage, meta.PageSize)
	assert.Equal(t, 2, meta.TotalPages)
}

func TestPagesCmd_Errors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr error
		wantMsg string
	}{
		{
			name:    "negative total",
			args:    []string{"pages", "--total", "-1"},
			wantErr: cli.ErrNegativeTotal,
		},
		{
			name:    "missing total",
			args:    []string{"pages"},
			wantMsg: `required flag(s) "total" not set`,
		},
		{
			name:    "bad output format",
			args:    []string{"pages", "--total", "5", "-o", "xml"},
			wantMsg: "unsupported output format",
		},
		{
			name:    "bad page size",
			args:    []string{"pages", "--total", "5", "--page-size", "0"},
			wantErr: pagination.ErrInvalidPageSize,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupCLITest(t)

			_, err := execute(t, "", tt.args...)

			require.Error(t, err)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			}
			if tt.wantMsg != "" {
				assert.Contains(t, err.Error(), tt.wantMsg)
			}
		})
	}
}
