package plotting

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/irisml/irispredict/datasets"
)

func TestSaveScatter(t *testing.T) {
	ds, err := datasets.LoadIris()
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "iris.png")
	require.NoError(t, SaveScatter(ds, path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}
