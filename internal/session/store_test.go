package session

import (
	"context"
	"testing"
	"time"

	"core/internal/dialog"
	"core/internal/model"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	got, err := store.Get(ctx, "nope")
	require.NoError(t, err)
	assert.Nil(t, got)

	sess := dialog.NewSession("conv-1")
	sess.State = dialog.StateAskBudget
	sess.Gathered.Installation = []string{model.InstallPitcher}
	require.NoError(t, store.Save(ctx, sess))

	got, err = store.Get(ctx, "conv-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, dialog.StateAskBudget, got.State)
	assert.Equal(t, []string{model.InstallPitcher}, got.Gathered.Installation)

	require.NoError(t, store.Delete(ctx, "conv-1"))
	got, err = store.Get(ctx, "conv-1")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func newTestRedisStore(t *testing.T) *RedisStore {
	t.Helper()
	mr := miniredis.RunT(t)
	store, err := NewRedisStore(context.Background(), mr.Addr(), "", 0, time.Hour)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestRedisStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := newTestRedisStore(t)

	got, err := store.Get(ctx, "missing")
	require.NoError(t, err)
	assert.Nil(t, got)

	sess := dialog.NewSession("conv-2")
	sess.State = dialog.StateAskEco
	sess.Gathered.Budget = 150
	sess.Gathered.Contaminants.Lead = true
	sess.Current = &model.Requirements{MaxPrice: 200, Priorities: []string{model.PriorityHealth}}
	require.NoError(t, store.Save(ctx, sess))

	got, err = store.Get(ctx, "conv-2")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, dialog.StateAskEco, got.State)
	assert.Equal(t, float64(150), got.Gathered.Budget)
	assert.True(t, got.Gathered.Contaminants.Lead)
	require.NotNil(t, got.Current)
	assert.Equal(t, float64(200), got.Current.MaxPrice)

	require.NoError(t, store.Delete(ctx, "conv-2"))
	got, err = store.Get(ctx, "conv-2")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestRedisStoreConnectFailure(t *testing.T) {
	_, err := NewRedisStore(context.Background(), "127.0.0.1:1", "", 0, time.Hour)
	assert.Error(t, err)
}
