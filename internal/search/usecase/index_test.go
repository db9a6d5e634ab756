package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/blevesearch/bleve/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"collab-srv/internal/model"
	"collab-srv/internal/search"
	"collab-srv/pkg/log"
	"collab-srv/pkg/searchdb"
)

type indexedDoc struct {
	index string
	id    string
	doc   map[string]any
}

// fakeSearchDB records every call so tests can assert on what the
// usecase handed to the backend.
type fakeSearchDB struct {
	searchFn  func(index string, req *bleve.SearchRequest) (*bleve.SearchResult, error)
	indexed   []indexedDoc
	deleted   []string
	created   []string
	dropped   []string
	indexErr  error
	deleteErr error
	createErr error
	dropErr   error
}

func (f *fakeSearchDB) Connect(context.Context) error  { return nil }
func (f *fakeSearchDB) Disconnect() error              { return nil }
func (f *fakeSearchDB) IsHealthy(context.Context) bool { return true }

func (f *fakeSearchDB) CreateIndexIfAbsent(name string) error {
	f.created = append(f.created, name)
	return f.createErr
}

func (f *fakeSearchDB) DeleteIndexIfPresent(name string) error {
	f.dropped = append(f.dropped, name)
	return f.dropErr
}

func (f *fakeSearchDB) Search(_ context.Context, index string, req *bleve.SearchRequest) (*bleve.SearchResult, error) {
	if f.searchFn != nil {
		return f.searchFn(index, req)
	}
	return &bleve.SearchResult{}, nil
}

func (f *fakeSearchDB) IndexDocument(_ context.Context, index, id string, doc map[string]any) error {
	if f.indexErr != nil {
		return f.indexErr
	}
	f.indexed = append(f.indexed, indexedDoc{index: index, id: id, doc: doc})
	return nil
}

func (f *fakeSearchDB) DeleteDocument(_ context.Context, index, id string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, index+"/"+id)
	return nil
}

func newTestUseCase(db searchdb.ISearchDB, now time.Time) *implUseCase {
	return &implUseCase{
		searchDB: db,
		l:        log.NewNoop(),
		now:      func() time.Time { return now },
	}
}

func TestIndexResource(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	t.Run("missing id is rejected", func(t *testing.T) {
		uc := newTestUseCase(&fakeSearchDB{}, now)

		err := uc.IndexResource(ctx, model.Resource{Title: "untitled"})
		assert.ErrorIs(t, err, search.ErrInvalidDocument)
	})

	t.Run("document is enriched before the write", func(t *testing.T) {
		db := &fakeSearchDB{}
		uc := newTestUseCase(db, now)

		err := uc.IndexResource(ctx, model.Resource{
			ID:            "res-1",
			Title:         "Fractions Workbook",
			DownloadCount: 500,
			Rating:        4.0,
			CreatedAt:     now.AddDate(0, 0, -10),
		})
		require.NoError(t, err)
		require.Len(t, db.indexed, 1)

		written := db.indexed[0]
		assert.Equal(t, searchdb.IndexResources, written.index)
		assert.Equal(t, "res-1", written.id)
		assert.Contains(t, written.doc["searchText"], "Fractions Workbook")
		assert.Greater(t, written.doc["popularity"].(float64), 0.0)
	})

	t.Run("dates serialize as strings for the index date mappings", func(t *testing.T) {
		db := &fakeSearchDB{}
		uc := newTestUseCase(db, now)

		require.NoError(t, uc.IndexResource(ctx, model.Resource{ID: "res-1", CreatedAt: now}))
		assert.IsType(t, "", db.indexed[0].doc["createdAt"])
	})

	t.Run("backend failure wraps ErrIndexWrite", func(t *testing.T) {
		uc := newTestUseCase(&fakeSearchDB{indexErr: errors.New("disk full")}, now)

		err := uc.IndexResource(ctx, model.Resource{ID: "res-1"})
		assert.ErrorIs(t, err, search.ErrIndexWrite)
	})
}

func TestIndexUser(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	t.Run("missing id is rejected", func(t *testing.T) {
		uc := newTestUseCase(&fakeSearchDB{}, now)
		assert.ErrorIs(t, uc.IndexUser(ctx, model.User{}), search.ErrInvalidDocument)
	})

	t.Run("activity score is computed before the write", func(t *testing.T) {
		db := &fakeSearchDB{}
		uc := newTestUseCase(db, now)

		lastActive := now.AddDate(0, 0, -1)
		err := uc.IndexUser(ctx, model.User{
			ID:              "user-1",
			ConnectionCount: 40,
			ResourceCount:   10,
			LastActive:      &lastActive,
		})
		require.NoError(t, err)
		require.Len(t, db.indexed, 1)

		assert.Equal(t, searchdb.IndexUsers, db.indexed[0].index)
		assert.Greater(t, db.indexed[0].doc["activityScore"].(float64), 0.0)
	})
}

func TestIndexCommunity(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	t.Run("missing id is rejected", func(t *testing.T) {
		uc := newTestUseCase(&fakeSearchDB{}, now)
		assert.ErrorIs(t, uc.IndexCommunity(ctx, model.Community{}), search.ErrInvalidDocument)
	})

	t.Run("community is written as-is", func(t *testing.T) {
		db := &fakeSearchDB{}
		uc := newTestUseCase(db, now)

		err := uc.IndexCommunity(ctx, model.Community{ID: "com-1", Name: "STEM Teachers", MemberCount: 42})
		require.NoError(t, err)
		require.Len(t, db.indexed, 1)

		assert.Equal(t, searchdb.IndexCommunities, db.indexed[0].index)
		assert.Equal(t, "STEM Teachers", db.indexed[0].doc["name"])
	})
}

func TestDeleteDocuments(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	t.Run("delete routes to the right index", func(t *testing.T) {
		db := &fakeSearchDB{}
		uc := newTestUseCase(db, now)

		require.NoError(t, uc.DeleteResource(ctx, "r1"))
		require.NoError(t, uc.DeleteUser(ctx, "u1"))
		require.NoError(t, uc.DeleteCommunity(ctx, "c1"))

		assert.Equal(t, []string{"resources/r1", "users/u1", "communities/c1"}, db.deleted)
	})

	t.Run("backend failure wraps ErrIndexDelete", func(t *testing.T) {
		uc := newTestUseCase(&fakeSearchDB{deleteErr: errors.New("boom")}, now)
		assert.ErrorIs(t, uc.DeleteResource(ctx, "r1"), search.ErrIndexDelete)
	})
}

func TestIndexLifecycle(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	t.Run("only registered index names are accepted", func(t *testing.T) {
		uc := newTestUseCase(&fakeSearchDB{}, now)

		assert.ErrorIs(t, uc.EnsureIndex(ctx, "bogus"), search.ErrUnknownIndex)
		assert.ErrorIs(t, uc.RemoveIndex(ctx, "bogus"), search.ErrUnknownIndex)
	})

	t.Run("known names pass through to the backend", func(t *testing.T) {
		db := &fakeSearchDB{}
		uc := newTestUseCase(db, now)

		require.NoError(t, uc.EnsureIndex(ctx, searchdb.IndexResources))
		require.NoError(t, uc.RemoveIndex(ctx, searchdb.IndexUsers))

		assert.Equal(t, []string{searchdb.IndexResources}, db.created)
		assert.Equal(t, []string{searchdb.IndexUsers}, db.dropped)
	})

	t.Run("backend failures wrap the domain errors", func(t *testing.T) {
		uc := newTestUseCase(&fakeSearchDB{
			createErr: errors.New("locked"),
			dropErr:   errors.New("locked"),
		}, now)

		assert.ErrorIs(t, uc.EnsureIndex(ctx, searchdb.IndexResources), search.ErrIndexWrite)
		assert.ErrorIs(t, uc.RemoveIndex(ctx, searchdb.IndexResources), search.ErrIndexDelete)
	})
}
