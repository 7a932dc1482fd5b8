package ports

import (
	"context"

	"github.com/recipegen/recipe-roulette/internal/core/domain"
)

type HistoryService interface {
	Record(ctx context.Context, username string, recipe domain.Recipe) error
	ListForUser(ctx context.Context, username string) ([]domain.HistoryEntry, error)
}
