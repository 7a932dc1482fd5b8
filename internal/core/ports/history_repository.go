package ports

import (
	"context"

	"github.com/recipegen/recipe-roulette/internal/core/domain"
)

// HistoryRepository persists selection history. Insert writes one whole row
// atomically; ListForUser returns the user's entries newest-first.
type HistoryRepository interface {
	Insert(ctx context.Context, entry *domain.HistoryEntry) error
	ListForUser(ctx context.Context, username string) ([]domain.HistoryEntry, error)
}
