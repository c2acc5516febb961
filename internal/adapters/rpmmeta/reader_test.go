package rpmmeta_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.trai.ch/bdep/internal/adapters/rpmmeta"
)

func TestReadHeaderMissingFile(t *testing.T) {
	r := rpmmeta.NewReader()
	_, err := r.ReadHeader(filepath.Join(t.TempDir(), "nope.rpm"))
	require.Error(t, err)
}

func TestReadHeaderRejectsGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "garbage.rpm")
	require.NoError(t, os.WriteFile(path, []byte("definitely not an rpm header"), 0o644))

	r := rpmmeta.NewReader()
	_, err := r.ReadHeader(path)
	require.Error(t, err)
}
