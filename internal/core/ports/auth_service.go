package ports

import "context"

type AuthService interface {
	// Register creates the account and reports whether it was created.
	// A duplicate username yields (false, nil): an expected outcome, not a fault.
	Register(ctx context.Context, username, password string) (bool, error)
	// Authenticate reports whether the password matches the stored hash.
	// Unknown user and wrong password are indistinguishable: both (false, nil).
	// A non-nil error always means a storage fault, never bad credentials.
	Authenticate(ctx context.Context, username, password string) (bool, error)
	// Login authenticates and mints a session token. Returns
	// domain.ErrInvalidCredentials or domain.ErrTooManyAttempts on refusal.
	Login(ctx context.Context, username, password string) (string, error)
}
