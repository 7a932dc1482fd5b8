package ports

import (
	"context"

	"github.com/recipegen/recipe-roulette/internal/core/domain"
)

// CredentialRepository defines the interface for credential persistence.
// Insert must be atomic insert-if-absent: under concurrent calls for the
// same username exactly one may succeed, the rest return ErrUserExists.
type CredentialRepository interface {
	Insert(ctx context.Context, user *domain.User) error
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
}
