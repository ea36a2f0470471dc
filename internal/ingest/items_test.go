package ingest_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/pagekit/internal/ingest"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    ingest.Format
		wantErr bool
	}{
		{"", ingest.FormatAuto, false},
		{"auto", ingest.FormatAuto, false},
		{"JSON", ingest.FormatJSON, false},
		{"yml", ingest.FormatYAML, false},
		{"txt", ingest.FormatLines, false},
		{"csv", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ingest.ParseFormat(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, ingest.ErrUnknownFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDetectFormat(t *testing.T) {
	assert.Equal(t, ingest.FormatJSON, ingest.DetectFormat("items.JSON"))
	assert.Equal(t, ingest.FormatYAML, ingest.DetectFormat("/a/b/items.yml"))
	assert.Equal(t, ingest.FormatLines, ingest.DetectFormat("README"))
	assert.Equal(t, ingest.FormatLines, ingest.DetectFormat(ingest.StdinPath))
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		format ingest.Format
		want   []string
	}{
		{
			name:   "lines with CRLF",
			input:  "alpha\r\nbeta\r\n\r\ngamma",
			format: ingest.FormatLines,
			want:   []string{"alpha", "beta", "", "gamma"},
		},
		{
			name:   "json strings and objects",
			input:  `["a", 2, {"k":"v"}, null]`,
			format: ingest.FormatJSON,
			want:   []string{"a", "2", `{"k":"v"}`, "null"},
		},
		{
			name:   "yaml sequence",
			input:  "- one\n- 2\n- name: three\n",
			format: ingest.FormatYAML,
			want:   []string{"one", "2", `{"name":"three"}`},
		},
		{
			name:   "empty json",
			input:  "",
			format: ingest.FormatJSON,
			want:   nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ingest.Decode(strings.NewReader(tt.input), tt.format)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecode_Errors(t *testing.T) {
	_, err := ingest.Decode(strings.NewReader(`{"not":"an array"}`), ingest.FormatJSON)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decoding JSON array")

	_, err = ingest.Decode(strings.NewReader("key: value\n"), ingest.FormatYAML)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decoding YAML sequence")

	_, err = ingest.Decode(strings.NewReader(""), ingest.Format("xml"))
	require.ErrorIs(t, err, ingest.ErrUnknownFormat)
}

func TestLoader_PreservesArgumentOrder(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "first.txt")
	second := filepath.Join(dir, "second.json")
	third := filepath.Join(dir, "third.yaml")
	require.NoError(t, os.WriteFile(first, []byte("a\nb\n"), 0o600))
	require.NoError(t, os.WriteFile(second, []byte(`["c","d"]`), 0o600))
	require.NoError(t, os.WriteFile(third, []byte("- e\n"), 0o600))

	items, err := ingest.Loader{}.Load(context.Background(), []string{first, second, third})

	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c", "d", "e"}, items)
}

func TestLoader_ForcedFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.txt")
	require.NoError(t, os.WriteFile(path, []byte(`["x","y"]`), 0o600))

	items, err := ingest.Loader{Format: ingest.FormatJSON}.Load(context.Background(), []string{path})

	require.NoError(t, err)
	assert.Equal(t, []string{"x", "y"}, items)
}

func TestLoader_Stdin(t *testing.T) {
	loader := ingest.Loader{Stdin: strings.NewReader("one\ntwo\n")}

	items, err := loader.Load(context.Background(), nil)

	require.NoError(t, err)
	assert.Equal(t, []string{"one", "two"}, items)
}

func TestLoader_StdinWithFiles(t *testing.T) {
	path := filepath.Join(t.TempDir(), "items.txt")
	require.NoError(t, os.WriteFile(path, []byte("file\n"), 0o600))
	loader := ingest.Loader{Stdin: strings.NewReader("piped\n")}

	items, err := loader.Load(context.Background(), []string{ingest.StdinPath, path})

	require.NoError(t, err)
	assert.Equal(t, []string{"piped", "file"}, items)
}

func TestLoader_DuplicateStdin(t *testing.T) {
	path := filepath.Join(t.TempDir(), "items.txt")
	require.NoError(t, os.WriteFile(path, []byte("file\n"), 0o600))
	loader := ingest.Loader{Stdin: strings.NewReader("one\ntwo\n")}

	_, err := loader.Load(context.Background(), []string{ingest.StdinPath, path, ingest.StdinPath})

	require.ErrorIs(t, err, ingest.ErrDuplicateStdin)
}

func TestLoader_MissingFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.txt")

	_, err := ingest.Loader{}.Load(context.Background(), []string{missing})

	require.Error(t, err)
	assert.Contains(t, err.Error(), missing)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoader_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := ingest.Loader{Stdin: strings.NewReader("x")}.Load(ctx, nil)

	require.ErrorIs(t, err, context.Canceled)
}
