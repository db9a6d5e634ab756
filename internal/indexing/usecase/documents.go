package usecase

import (
	"context"
	"fmt"

	"collab-srv/internal/indexing"
)

// UpsertResource writes a resource through the search service, which
// enriches it before indexing.
func (uc *implUseCase) UpsertResource(ctx context.Context, input indexing.UpsertResourceInput) error {
	if input.Resource.ID == "" {
		return indexing.ErrMissingID
	}
	if err := uc.searchUC.IndexResource(ctx, input.Resource); err != nil {
		uc.l.Errorf(ctx, "indexing.usecase.UpsertResource(%s): %v", input.Resource.ID, err)
		return fmt.Errorf("%w: %v", indexing.ErrWriteFailed, err)
	}
	return nil
}

// UpsertUser writes a user through the search service.
func (uc *implUseCase) UpsertUser(ctx context.Context, input indexing.UpsertUserInput) error {
	if input.User.ID == "" {
		return indexing.ErrMissingID
	}
	if err := uc.searchUC.IndexUser(ctx, input.User); err != nil {
		uc.l.Errorf(ctx, "indexing.usecase.UpsertUser(%s): %v", input.User.ID, err)
		return fmt.Errorf("%w: %v", indexing.ErrWriteFailed, err)
	}
	return nil
}

// UpsertCommunity writes a community through the search service.
func (uc *implUseCase) UpsertCommunity(ctx context.Context, input indexing.UpsertCommunityInput) error {
	if input.Community.ID == "" {
		return indexing.ErrMissingID
	}
	if err := uc.searchUC.IndexCommunity(ctx, input.Community); err != nil {
		uc.l.Errorf(ctx, "indexing.usecase.UpsertCommunity(%s): %v", input.Community.ID, err)
		return fmt.Errorf("%w: %v", indexing.ErrWriteFailed, err)
	}
	return nil
}

// DeleteResource removes a resource document.
func (uc *implUseCase) DeleteResource(ctx context.Context, input indexing.DeleteInput) error {
	if input.ID == "" {
		return indexing.ErrMissingID
	}
	if err := uc.searchUC.DeleteResource(ctx, input.ID); err != nil {
		uc.l.Errorf(ctx, "indexing.usecase.DeleteResource(%s): %v", input.ID, err)
		return fmt.Errorf("%w: %v", indexing.ErrDeleteFailed, err)
	}
	return nil
}

// DeleteUser removes a user document.
func (uc *implUseCase) DeleteUser(ctx context.Context, input indexing.DeleteInput) error {
	if input.ID == "" {
		return indexing.ErrMissingID
	}
	if err := uc.searchUC.DeleteUser(ctx, input.ID); err != nil {
		uc.l.Errorf(ctx, "indexing.usecase.DeleteUser(%s): %v", input.ID, err)
		return fmt.Errorf("%w: %v", indexing.ErrDeleteFailed, err)
	}
	return nil
}

// DeleteCommunity removes a community document.
func (uc *implUseCase) DeleteCommunity(ctx context.Context, input indexing.DeleteInput) error {
	if input.ID == "" {
		return indexing.ErrMissingID
	}
	if err := uc.searchUC.DeleteCommunity(ctx, input.ID); err != nil {
		uc.l.Errorf(ctx, "indexing.usecase.DeleteCommunity(%s): %v", input.ID, err)
		return fmt.Errorf("%w: %v", indexing.ErrDeleteFailed, err)
	}
	return nil
}
