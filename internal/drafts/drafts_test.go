package drafts

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clinicstack/clinic-manager/internal/domain/clinical"
	"github.com/clinicstack/clinic-manager/internal/tenant"
)

func newTestStore(t *testing.T) (*Store, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })

	return NewStore(rdb), mr
}

func TestSaveAndLoad(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()
	scope := tenant.Scope{WorkspaceID: "ws-1"}

	rec := clinical.Record{
		ChiefComplaint: "blurred vision",
		Vision:         clinical.EyePair{OD: "6/9", OS: "6/6"},
		Diagnosis:      "refractive error",
	}

	require.NoError(t, store.Save(ctx, scope, "pat-1", rec))

	got, err := store.Load(ctx, scope, "pat-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, rec, *got)
}

func TestLoadMissingReturnsNil(t *testing.T) {
	store, _ := newTestStore(t)

	got, err := store.Load(context.Background(), tenant.Scope{WorkspaceID: "ws-1"}, "pat-unknown")

	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestLoadCorruptDraftReturnsNil(t *testing.T) {
	store, mr := newTestStore(t)
	scope := tenant.Scope{WorkspaceID: "ws-1"}

	mr.Set("draft:visit:ws-1:pat-1", "{not json")

	got, err := store.Load(context.Background(), scope, "pat-1")

	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestClear(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()
	scope := tenant.Scope{WorkspaceID: "ws-1"}

	require.NoError(t, store.Save(ctx, scope, "pat-1", clinical.Record{Diagnosis: "x"}))
	require.NoError(t, store.Clear(ctx, scope, "pat-1"))

	assert.False(t, mr.Exists("draft:visit:ws-1:pat-1"))
}

func TestDraftsAreScopedByWorkspace(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, tenant.Scope{WorkspaceID: "ws-1"}, "pat-1",
		clinical.Record{Diagnosis: "glaucoma suspect"}))

	got, err := store.Load(ctx, tenant.Scope{WorkspaceID: "ws-2"}, "pat-1")

	require.NoError(t, err)
	assert.Nil(t, got)
}
