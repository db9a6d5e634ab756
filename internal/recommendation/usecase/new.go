package usecase

import (
	"math/rand"
	"time"

	"collab-srv/internal/recommendation"
	"collab-srv/internal/recommendation/repository"
	"collab-srv/internal/search"
	"collab-srv/pkg/log"
)

// implUseCase - Implementation of the recommendation UseCase interface
type implUseCase struct {
	searchUC        search.UseCase
	interactionRepo repository.InteractionRepository
	l               log.Logger
	now             func() time.Time
	randIntn        func(n int) int
}

// New - Factory function
func New(
	searchUC search.UseCase,
	interactionRepo repository.InteractionRepository,
	l log.Logger,
) recommendation.UseCase {
	return &implUseCase{
		searchUC:        searchUC,
		interactionRepo: interactionRepo,
		l:               l,
		now:             time.Now,
		randIntn:        rand.Intn,
	}
}
