package usecase

import (
	"time"

	"collab-srv/internal/search"
	"collab-srv/pkg/log"
	"collab-srv/pkg/searchdb"
)

// implUseCase - Implementation of the search UseCase interface
type implUseCase struct {
	searchDB searchdb.ISearchDB
	l        log.Logger
	now      func() time.Time
}

// New - Factory function
func New(
	searchDB searchdb.ISearchDB,
	l log.Logger,
) search.UseCase {
	return &implUseCase{
		searchDB: searchDB,
		l:        l,
		now:      time.Now,
	}
}
