package mutation

import (
	"context"
	"errors"
	"testing"

	"github.com/TheAdijagtap/erpx/internal/domain/entity"
	"github.com/TheAdijagtap/erpx/internal/readmodel"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubLoader struct {
	snap *readmodel.Snapshot
	err  error
	hits int
}

func (l *stubLoader) Load(ctx context.Context) (*readmodel.Snapshot, error) {
	l.hits++
	if l.err != nil {
		return nil, l.err
	}
	return l.snap, nil
}

func TestRunCommitsOnRemoteSuccess(t *testing.T) {
	store := readmodel.NewStore()
	p := NewPipeline(store, &stubLoader{})
	id := uuid.New()

	err := p.Run(context.Background(), Command{
		Name: "item.create",
		Forward: func(snap *readmodel.Snapshot) {
			snap.Items[id] = entity.Item{ID: id, Name: "Rebar 12mm"}
		},
		Inverse: func(snap *readmodel.Snapshot) {
			delete(snap.Items, id)
		},
		Remote: func(ctx context.Context) error { return nil },
	})

	require.NoError(t, err)
	got, ok := store.Item(id)
	require.True(t, ok)
	assert.Equal(t, "Rebar 12mm", got.Name)
}

func TestRunRollsBackOnRemoteFailure(t *testing.T) {
	store := readmodel.NewStore()
	p := NewPipeline(store, &stubLoader{})
	id := uuid.New()
	boom := errors.New("connection refused")

	err := p.Run(context.Background(), Command{
		Name: "item.create",
		Forward: func(snap *readmodel.Snapshot) {
			snap.Items[id] = entity.Item{ID: id, Name: "Rebar 12mm"}
		},
		Inverse: func(snap *readmodel.Snapshot) {
			delete(snap.Items, id)
		},
		Remote: func(ctx context.Context) error { return boom },
	})

	require.ErrorIs(t, err, boom)
	_, ok := store.Item(id)
	assert.False(t, ok, "rollback must remove the optimistic entry")
}

func TestRunRollbackRestoresPriorState(t *testing.T) {
	store := readmodel.NewStore()
	p := NewPipeline(store, &stubLoader{})
	id := uuid.New()
	store.Apply(func(snap *readmodel.Snapshot) {
		snap.Items[id] = entity.Item{ID: id, CurrentStock: decimal.NewFromInt(10)}
	})
	before, _ := store.Item(id)

	err := p.Run(context.Background(), Command{
		Name: "stock.adjust",
		Forward: func(snap *readmodel.Snapshot) {
			it := snap.Items[id]
			it.CurrentStock = decimal.NewFromInt(35)
			snap.Items[id] = it
		},
		Inverse: func(snap *readmodel.Snapshot) {
			snap.Items[id] = before
		},
		Remote: func(ctx context.Context) error { return errors.New("timeout") },
	})

	require.Error(t, err)
	got, _ := store.Item(id)
	assert.True(t, got.CurrentStock.Equal(decimal.NewFromInt(10)))
}

func TestRunWithoutRemoteIsLocalOnly(t *testing.T) {
	store := readmodel.NewStore()
	p := NewPipeline(store, &stubLoader{})
	id := uuid.New()

	err := p.Run(context.Background(), Command{
		Name: "local.patch",
		Forward: func(snap *readmodel.Snapshot) {
			snap.Products[id] = entity.Product{ID: id}
		},
	})

	require.NoError(t, err)
	_, ok := store.Product(id)
	assert.True(t, ok)
}

func TestReloadReplacesSnapshot(t *testing.T) {
	store := readmodel.NewStore()
	stale := uuid.New()
	store.Apply(func(snap *readmodel.Snapshot) {
		snap.Items[stale] = entity.Item{ID: stale}
	})

	fresh := readmodel.NewSnapshot()
	loaded := uuid.New()
	fresh.Items[loaded] = entity.Item{ID: loaded, Name: "Loaded"}
	loader := &stubLoader{snap: fresh}
	p := NewPipeline(store, loader)

	require.NoError(t, p.Reload(context.Background()))
	assert.Equal(t, 1, loader.hits)
	assert.False(t, store.Loading())

	_, ok := store.Item(stale)
	assert.False(t, ok)
	got, ok := store.Item(loaded)
	require.True(t, ok)
	assert.Equal(t, "Loaded", got.Name)
}

func TestReloadKeepsSnapshotOnFailure(t *testing.T) {
	store := readmodel.NewStore()
	id := uuid.New()
	store.Apply(func(snap *readmodel.Snapshot) {
		snap.Items[id] = entity.Item{ID: id, Name: "Survivor"}
	})
	loader := &stubLoader{err: errors.New("db down")}
	p := NewPipeline(store, loader)

	err := p.Reload(context.Background())
	require.Error(t, err)
	assert.False(t, store.Loading())

	got, ok := store.Item(id)
	require.True(t, ok)
	assert.Equal(t, "Survivor", got.Name)
}
