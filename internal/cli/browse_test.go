package cli_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/pagekit/internal/cli/pagination"
	"github.com/rshade/pagekit/internal/ingest"
)

func TestBrowseCmd_PlainFromFile(t *testing.T) {
	setupCLITest(t)
	path := writeItemsFile(t, "items.txt", 25)

	out, err := execute(t, "", "browse", "--page", "3", "--page-size", "10", "--full=false", path)

	require.NoError(t, err)
	assert.Contains(t, out, "21  item-20\n")
	assert.Contains(t, out, "25  item-24\n")
	assert.NotContains(t, out, "item-19")
	assert.Contains(t, out, "‹ 1 2 [3] ›")
	assert.Contains(t, out, "Items 21–25 of 25 · Page 3/3")
}

func TestBrowseCmd_StdinSorted(t *testing.T) {
	setupCLITest(t)

	out, err := execute(t, "banana\nfig\napple\n", "browse", "--sort", "text")

	require.NoError(t, err)
	assert.Contains(t, out, "1  apple\n2  banana\n3  fig\n")
	assert.Contains(t, out, "Items 1–3 of 3 · Page 1/1")
}

func TestBrowseCmd_PageOutOfRangeShowsLastPage(t *testing.T) {
	setupCLITest(t)
	path := writeItemsFile(t, "items.txt", 25)

	out, err := execute(t, "", "browse", "--page", "9", "--page-size", "10", path)

	require.NoError(t, err)
	assert.Contains(t, out, "Page 3/3")
}

func TestBrowseCmd_MultipleSources(t *testing.T) {
	setupCLITest(t)
	dir := t.TempDir()
	jsonPath := filepath.Join(dir, "a.json")
	yamlPath := filepath.Join(dir, "b.yaml")
	require.NoError(t, os.WriteFile(jsonPath, []byte(`["one", {"n": 2}]`), 0o600))
	require.NoError(t, os.WriteFile(yamlPath, []byte("- three\n"), 0o600))

	out, err := execute(t, "", "browse", jsonPath, yamlPath)

	require.NoError(t, err)
	assert.Contains(t, out, "1  one\n2  {\"n\":2}\n3  three\n")
}

func TestBrowseCmd_EmptyInput(t *testing.T) {
	setupCLITest(t)

	out, err := execute(t, "", "browse")

	require.NoError(t, err)
	assert.Equal(t, "No items\n", out)
}

func TestBrowseCmd_Errors(t *testing.T) {
	setupCLITest(t)
	path := writeItemsFile(t, "items.txt", 3)

	_, err := execute(t, "", "browse", "--page-size", "0", path)
	require.ErrorIs(t, err, pagination.ErrInvalidPageSize)

	_, err = execute(t, "", "browse", "--format", "csv", path)
	require.ErrorIs(t, err, ingest.ErrUnknownFormat)

	_, err = execute(t, "", "browse", "--sort", "size", path)
	require.ErrorIs(t, err, pagination.ErrInvalidSortField)

	missing := filepath.Join(t.TempDir(), "missing.txt")
	_, err = execute(t, "", "browse", missing)
	require.ErrorIs(t, err, os.ErrNotExist)

	_, err = execute(t, "a\nb\n", "browse", "-", "-")
	require.ErrorIs(t, err, ingest.ErrDuplicateStdin)
}
