package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"collab-srv/internal/indexing"
	"collab-srv/internal/model"
	"collab-srv/internal/search"
	"collab-srv/pkg/log"
)

// fakeSearchUC records write/delete calls and fails on demand.
type fakeSearchUC struct {
	search.UseCase

	indexedResources []model.Resource
	indexedUsers     []model.User
	deletedIDs       []string
	failWith         error
}

func (f *fakeSearchUC) IndexResource(_ context.Context, r model.Resource) error {
	if f.failWith != nil {
		return f.failWith
	}
	f.indexedResources = append(f.indexedResources, r)
	return nil
}

func (f *fakeSearchUC) IndexUser(_ context.Context, u model.User) error {
	if f.failWith != nil {
		return f.failWith
	}
	f.indexedUsers = append(f.indexedUsers, u)
	return nil
}

func (f *fakeSearchUC) IndexCommunity(context.Context, model.Community) error {
	return f.failWith
}

func (f *fakeSearchUC) DeleteResource(_ context.Context, id string) error {
	if f.failWith != nil {
		return f.failWith
	}
	f.deletedIDs = append(f.deletedIDs, id)
	return nil
}

func TestUpsertResource(t *testing.T) {
	ctx := context.Background()

	t.Run("missing id is rejected before the write", func(t *testing.T) {
		searchUC := &fakeSearchUC{}
		uc := New(searchUC, log.NewNoop())

		err := uc.UpsertResource(ctx, indexing.UpsertResourceInput{})
		assert.ErrorIs(t, err, indexing.ErrMissingID)
		assert.Empty(t, searchUC.indexedResources)
	})

	t.Run("delegates to the search service", func(t *testing.T) {
		searchUC := &fakeSearchUC{}
		uc := New(searchUC, log.NewNoop())

		err := uc.UpsertResource(ctx, indexing.UpsertResourceInput{
			Resource: model.Resource{ID: "res-1", Title: "Fractions Workbook"},
		})
		require.NoError(t, err)
		require.Len(t, searchUC.indexedResources, 1)
		assert.Equal(t, "res-1", searchUC.indexedResources[0].ID)
	})

	t.Run("write failure wraps ErrWriteFailed", func(t *testing.T) {
		uc := New(&fakeSearchUC{failWith: errors.New("index closed")}, log.NewNoop())

		err := uc.UpsertResource(ctx, indexing.UpsertResourceInput{
			Resource: model.Resource{ID: "res-1"},
		})
		assert.ErrorIs(t, err, indexing.ErrWriteFailed)
	})
}

func TestDeleteResource(t *testing.T) {
	ctx := context.Background()

	t.Run("missing id is rejected", func(t *testing.T) {
		uc := New(&fakeSearchUC{}, log.NewNoop())
		assert.ErrorIs(t, uc.DeleteResource(ctx, indexing.DeleteInput{}), indexing.ErrMissingID)
	})

	t.Run("delegates to the search service", func(t *testing.T) {
		searchUC := &fakeSearchUC{}
		uc := New(searchUC, log.NewNoop())

		require.NoError(t, uc.DeleteResource(ctx, indexing.DeleteInput{ID: "res-1"}))
		assert.Equal(t, []string{"res-1"}, searchUC.deletedIDs)
	})

	t.Run("delete failure wraps ErrDeleteFailed", func(t *testing.T) {
		uc := New(&fakeSearchUC{failWith: errors.New("index closed")}, log.NewNoop())
		assert.ErrorIs(t, uc.DeleteResource(ctx, indexing.DeleteInput{ID: "res-1"}), indexing.ErrDeleteFailed)
	})
}
