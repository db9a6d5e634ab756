package usecase

import (
	"collab-srv/internal/indexing"
	"collab-srv/internal/search"
	"collab-srv/pkg/log"
)

// implUseCase - Implementation of the indexing UseCase interface
type implUseCase struct {
	searchUC search.UseCase
	l        log.Logger
}

// New - Factory function
func New(
	searchUC search.UseCase,
	l log.Logger,
) indexing.UseCase {
	return &implUseCase{
		searchUC: searchUC,
		l:        l,
	}
}
