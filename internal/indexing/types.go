package indexing

import (
	"collab-srv/internal/model"
)

// UpsertResourceInput - a resource create/update to index.
type UpsertResourceInput struct {
	Resource model.Resource
}

// UpsertUserInput - a user create/update to index.
type UpsertUserInput struct {
	User model.User
}

// UpsertCommunityInput - a community create/update to index.
type UpsertCommunityInput struct {
	Community model.Community
}

// DeleteInput - a document removal by id.
type DeleteInput struct {
	ID string
}
