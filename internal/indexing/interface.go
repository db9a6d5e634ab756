package indexing

import (
	"context"
)

//go:generate mockery --name UseCase
type UseCase interface {
	UpsertResource(ctx context.Context, input UpsertResourceInput) error
	UpsertUser(ctx context.Context, input UpsertUserInput) error
	UpsertCommunity(ctx context.Context, input UpsertCommunityInput) error

	DeleteResource(ctx context.Context, input DeleteInput) error
	DeleteUser(ctx context.Context, input DeleteInput) error
	DeleteCommunity(ctx context.Context, input DeleteInput) error
}
