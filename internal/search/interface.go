package search

import (
	"context"

	"collab-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	SearchResources(ctx context.Context, input ResourceQuery) (ResourceResult, error)
	SearchUsers(ctx context.Context, input UserQuery) (UserResult, error)
	SearchCommunities(ctx context.Context, input CommunityQuery) (CommunityResult, error)

	IndexResource(ctx context.Context, resource model.Resource) error
	IndexUser(ctx context.Context, user model.User) error
	IndexCommunity(ctx context.Context, community model.Community) error

	DeleteResource(ctx context.Context, id string) error
	DeleteUser(ctx context.Context, id string) error
	DeleteCommunity(ctx context.Context, id string) error

	EnsureIndex(ctx context.Context, name string) error
	RemoveIndex(ctx context.Context, name string) error
}
