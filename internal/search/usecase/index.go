package usecase

import (
	"context"
	"encoding/json"
	"fmt"

	"collab-srv/internal/model"
	"collab-srv/internal/search"
	"collab-srv/pkg/searchdb"
)

// IndexResource enriches a resource with its derived ranking signals
// and writes it to the resource index. Re-indexing an existing id
// replaces the stored document.
func (uc *implUseCase) IndexResource(ctx context.Context, resource model.Resource) error {
	if resource.ID == "" {
		return search.ErrInvalidDocument
	}
	enriched := enrichResource(resource, uc.now())
	return uc.writeDocument(ctx, searchdb.IndexResources, enriched.ID, enriched)
}

// IndexUser enriches a user with its activity score and writes it to
// the user index.
func (uc *implUseCase) IndexUser(ctx context.Context, user model.User) error {
	if user.ID == "" {
		return search.ErrInvalidDocument
	}
	enriched := enrichUser(user, uc.now())
	return uc.writeDocument(ctx, searchdb.IndexUsers, enriched.ID, enriched)
}

// IndexCommunity writes a community as-is; communities carry no
// derived signals.
func (uc *implUseCase) IndexCommunity(ctx context.Context, community model.Community) error {
	if community.ID == "" {
		return search.ErrInvalidDocument
	}
	return uc.writeDocument(ctx, searchdb.IndexCommunities, community.ID, community)
}

// DeleteResource removes a resource document. Deleting a missing id
// is a no-op.
func (uc *implUseCase) DeleteResource(ctx context.Context, id string) error {
	return uc.deleteDocument(ctx, searchdb.IndexResources, id)
}

// DeleteUser removes a user document.
func (uc *implUseCase) DeleteUser(ctx context.Context, id string) error {
	return uc.deleteDocument(ctx, searchdb.IndexUsers, id)
}

// DeleteCommunity removes a community document.
func (uc *implUseCase) DeleteCommunity(ctx context.Context, id string) error {
	return uc.deleteDocument(ctx, searchdb.IndexCommunities, id)
}

// EnsureIndex creates the named index if absent. Only registered index
// names are accepted.
func (uc *implUseCase) EnsureIndex(ctx context.Context, name string) error {
	if !knownIndex(name) {
		return fmt.Errorf("%w: %s", search.ErrUnknownIndex, name)
	}
	if err := uc.searchDB.CreateIndexIfAbsent(name); err != nil {
		uc.l.Errorf(ctx, "search.usecase.EnsureIndex(%s): %v", name, err)
		return fmt.Errorf("%w: %v", search.ErrIndexWrite, err)
	}
	return nil
}

// RemoveIndex deletes the named index if present.
func (uc *implUseCase) RemoveIndex(ctx context.Context, name string) error {
	if !knownIndex(name) {
		return fmt.Errorf("%w: %s", search.ErrUnknownIndex, name)
	}
	if err := uc.searchDB.DeleteIndexIfPresent(name); err != nil {
		uc.l.Errorf(ctx, "search.usecase.RemoveIndex(%s): %v", name, err)
		return fmt.Errorf("%w: %v", search.ErrIndexDelete, err)
	}
	return nil
}

func (uc *implUseCase) writeDocument(ctx context.Context, index, id string, doc any) error {
	fields, err := toDocument(doc)
	if err != nil {
		return fmt.Errorf("%w: %v", search.ErrIndexWrite, err)
	}
	if err := uc.searchDB.IndexDocument(ctx, index, id, fields); err != nil {
		uc.l.Errorf(ctx, "search.usecase.writeDocument(%s, %s): %v", index, id, err)
		return fmt.Errorf("%w: %v", search.ErrIndexWrite, err)
	}
	return nil
}

func (uc *implUseCase) deleteDocument(ctx context.Context, index, id string) error {
	if err := uc.searchDB.DeleteDocument(ctx, index, id); err != nil {
		uc.l.Errorf(ctx, "search.usecase.deleteDocument(%s, %s): %v", index, id, err)
		return fmt.Errorf("%w: %v", search.ErrIndexDelete, err)
	}
	return nil
}

// toDocument flattens a typed document into the generic field map the
// backend indexes. Times serialize as RFC3339 strings, matching the
// index date mappings.
func toDocument(doc any) (map[string]any, error) {
	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, err
	}
	var fields map[string]any
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, err
	}
	return fields, nil
}

func knownIndex(name string) bool {
	for _, n := range searchdb.IndexNames() {
		if n == name {
			return true
		}
	}
	return false
}
