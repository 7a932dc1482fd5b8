package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/recipegen/recipe-roulette/internal/core/domain"
	"github.com/recipegen/recipe-roulette/internal/core/ports"
)

// HistoryService records recipe selections and serves per-user history.
type HistoryService struct {
	repo ports.HistoryRepository
	now  func() time.Time
	log  zerolog.Logger
}

func NewHistoryService(repo ports.HistoryRepository, log zerolog.Logger) *HistoryService {
	return &HistoryService{repo: repo, now: time.Now, log: log}
}

// Record appends a snapshot of recipe to username's history with a
// server-assigned timestamp. Missing recipe fields are stored empty; they
// never cause a fault.
func (s *HistoryService) Record(ctx context.Context, username string, recipe domain.Recipe) error {
	entry := &domain.HistoryEntry{
		Username:     username,
		RecipeName:   recipe.Name,
		Ingredients:  recipe.Ingredients,
		Instructions: recipe.Instructions,
		ImageURL:     recipe.ImageURL,
		RecipeURL:    recipe.SourceURL,
		Timestamp:    s.now().UTC(),
	}

	if err := s.repo.Insert(ctx, entry); err != nil {
		return fmt.Errorf("record history: %w", err)
	}

	s.log.Info().Str("username", username).Str("recipe", recipe.Name).Msg("selection recorded")
	return nil
}

// ListForUser returns username's entries newest-first, empty when none.
func (s *HistoryService) ListForUser(ctx context.Context, username string) ([]domain.HistoryEntry, error) {
	entries, err := s.repo.ListForUser(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("list history: %w", err)
	}
	return entries, nil
}
