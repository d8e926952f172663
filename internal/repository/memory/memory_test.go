package memory

import (
	"context"
	"errors"
	"testing"

	"club-transfer-ledger/internal/entities"

	"github.com/stretchr/testify/require"
)

func TestMemoryRoundTrip(t *testing.T) {
	ctx := context.Background()
	m := New()

	_, ok, err := m.Load(ctx)
	require.NoError(t, err)
	require.False(t, ok)

	s := entities.SeedSnapshot()
	require.NoError(t, m.Save(ctx, s))
	require.Equal(t, 1, m.Saves())

	got, ok, err := m.Load(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, s, got)
}

func TestMemoryFailSaves(t *testing.T) {
	ctx := context.Background()
	m := New()
	boom := errors.New("boom")

	m.FailSaves(boom)
	require.ErrorIs(t, m.Save(ctx, entities.SeedSnapshot()), boom)
	require.Zero(t, m.Saves())

	m.FailSaves(nil)
	require.NoError(t, m.Save(ctx, entities.SeedSnapshot()))
}
