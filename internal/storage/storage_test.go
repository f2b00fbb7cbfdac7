package storage_test

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/straye-as/sales-dashboard/internal/config"
	"github.com/straye-as/sales-dashboard/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestStorageInterfaceCompliance(t *testing.T) {
	var _ storage.Storage = (*storage.LocalStorage)(nil)
	var _ storage.Storage = (*storage.AzureBlobStorage)(nil)
}

func TestNewLocalStorage_CreatesDirectory(t *testing.T) {
	basePath := filepath.Join(t.TempDir(), "archives")

	ls, err := storage.NewLocalStorage(basePath)
	require.NoError(t, err)
	assert.NotNil(t, ls)

	info, err := os.Stat(basePath)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestLocalStorage_PutOpenRemove(t *testing.T) {
	ctx := context.Background()
	ls, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	size, err := ls.Put(ctx, "expenditure-report/2024-01-31.csv", "text/csv", strings.NewReader("a,b\n1,2\n"))
	require.NoError(t, err)
	assert.Equal(t, int64(8), size)

	rc, err := ls.Open(ctx, "expenditure-report/2024-01-31.csv")
	require.NoError(t, err)
	data, err := io.ReadAll(rc)
	require.NoError(t, rc.Close())
	require.NoError(t, err)
	assert.Equal(t, "a,b\n1,2\n", string(data))

	_, err = ls.Put(ctx, "expenditure-report/2024-01-31.csv", "text/csv", strings.NewReader("replaced"))
	require.NoError(t, err)
	rc, err = ls.Open(ctx, "expenditure-report/2024-01-31.csv")
	require.NoError(t, err)
	data, _ = io.ReadAll(rc)
	rc.Close()
	assert.Equal(t, "replaced", string(data))

	require.NoError(t, ls.Remove(ctx, "expenditure-report/2024-01-31.csv"))
	_, err = ls.Open(ctx, "expenditure-report/2024-01-31.csv")
	assert.ErrorIs(t, err, storage.ErrNotFound)

	assert.NoError(t, ls.Remove(ctx, "expenditure-report/2024-01-31.csv"), "removing a missing key is not an error")
}

func TestLocalStorage_RejectsEscapingKeys(t *testing.T) {
	ctx := context.Background()
	ls, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	for _, key := range []string{"../outside.csv", "/etc/passwd", "."} {
		_, err := ls.Put(ctx, key, "text/csv", strings.NewReader("x"))
		assert.Error(t, err, key)
	}
}

func TestLocalStorage_ListByPrefix(t *testing.T) {
	ctx := context.Background()
	ls, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	for _, key := range []string{
		"expenditure-report/2024-02-01.csv",
		"expenditure-report/2024-01-01.csv",
		"other/2024-01-15.csv",
	} {
		_, err := ls.Put(ctx, key, "text/csv", strings.NewReader("x"))
		require.NoError(t, err)
	}

	keys, err := ls.List(ctx, "expenditure-report/")
	require.NoError(t, err)
	assert.Equal(t, []string{"expenditure-report/2024-01-01.csv", "expenditure-report/2024-02-01.csv"}, keys)
}

func TestNewStorage_Modes(t *testing.T) {
	s, err := storage.NewStorage(&config.StorageConfig{Mode: "local", LocalBasePath: t.TempDir()}, zap.NewNop())
	require.NoError(t, err)
	assert.IsType(t, &storage.LocalStorage{}, s)

	_, err = storage.NewStorage(&config.StorageConfig{Mode: "azure"}, zap.NewNop())
	assert.Error(t, err, "azure mode needs a connection string")

	_, err = storage.NewStorage(&config.StorageConfig{Mode: "ftp"}, zap.NewNop())
	assert.Error(t, err)
}
