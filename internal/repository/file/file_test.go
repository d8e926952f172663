package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"club-transfer-ledger/config"
	"club-transfer-ledger/internal/entities"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newFile(t *testing.T) (*File, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "state", "data.json")
	f := New(zap.NewNop().Sugar(), config.FileConfig{Path: path})
	require.NoError(t, f.OnStart(context.Background()))
	return f, path
}

func TestLoadMissingFile(t *testing.T) {
	f, _ := newFile(t)

	_, ok, err := f.Load(context.Background())
	require.NoError(t, err)
	require.False(t, ok)
}

func TestSaveLoad(t *testing.T) {
	ctx := context.Background()
	f, path := newFile(t)

	s := entities.SeedSnapshot()
	s.Players["7"] = entities.Player{ID: "7", DisplayLabel: "luka", ProfileRef: "l_rbx", Club: "NK Osijek", ContractTerm: "2026"}
	require.NoError(t, f.Save(ctx, s))

	got, ok, err := f.Load(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, s, got)

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	require.Len(t, entries, 1, "temp files must not be left behind")
}

func TestLoadCorruptFile(t *testing.T) {
	f, path := newFile(t)
	require.NoError(t, os.WriteFile(path, []byte("{"), 0o600))

	_, _, err := f.Load(context.Background())
	require.ErrorIs(t, err, entities.ErrCorruptSnapshot)
}

func TestSaveCancelledContext(t *testing.T) {
	f, path := newFile(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.Error(t, f.Save(ctx, entities.SeedSnapshot()))
	_, err := os.Stat(path)
	require.ErrorIs(t, err, os.ErrNotExist)
}
