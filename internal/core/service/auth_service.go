package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/recipegen/recipe-roulette/internal/core/domain"
	"github.com/recipegen/recipe-roulette/internal/core/ports"
)

// LoginThrottle abstracts the failed-login limiter (Redis).
type LoginThrottle interface {
	// Allow reports whether a login attempt for username may proceed.
	Allow(ctx context.Context, username string) (bool, error)
	// Failure records a failed attempt.
	Failure(ctx context.Context, username string) error
	// Success clears the failure counter after a successful login.
	Success(ctx context.Context, username string) error
}

// AuthService implements registration, credential checks, and session tokens.
type AuthService struct {
	repo      ports.CredentialRepository
	throttle  LoginThrottle
	jwtSecret string
	tokenTTL  time.Duration
	log       zerolog.Logger
}

// NewAuthService constructs an AuthService. throttle may be nil to disable
// login rate limiting.
func NewAuthService(repo ports.CredentialRepository, throttle LoginThrottle, jwtSecret string, tokenTTL time.Duration, log zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{repo: repo, throttle: throttle, jwtSecret: jwtSecret, tokenTTL: tokenTTL, log: log}
}

// hashPassword returns the deterministic SHA-256 hex digest of password.
// Authenticate recomputes this digest and compares it byte-for-byte with the
// stored value, so the digest must stay salt-free and parameter-stable.
func hashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

// Register creates the account and reports whether it was created. A taken
// username yields (false, nil); only storage faults produce an error.
func (s *AuthService) Register(ctx context.Context, username, password string) (bool, error) {
	if username == "" || password == "" {
		return false, domain.ErrInvalidCredentials
	}

	user := &domain.User{
		Username:     username,
		PasswordHash: hashPassword(password),
		CreatedAt:    time.Now().UTC(),
	}

	err := s.repo.Insert(ctx, user)
	if errors.Is(err, domain.ErrUserExists) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("register user: %w", err)
	}

	s.log.Info().Str("username", username).Msg("user registered")
	return true, nil
}

// Authenticate reports whether password matches the stored hash for username.
// Unknown user and wrong password are indistinguishable in the result; an
// error is returned only for storage faults.
func (s *AuthService) Authenticate(ctx context.Context, username, password string) (bool, error) {
	user, err := s.repo.FindByUsername(ctx, username)
	if errors.Is(err, domain.ErrUserNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("authenticate user: %w", err)
	}
	return user.PasswordHash == hashPassword(password), nil
}

// Login applies the throttle, authenticates, and mints a session token.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	if s.throttle != nil {
		allowed, err := s.throttle.Allow(ctx, username)
		if err != nil {
			// A throttle outage must never read as an auth failure.
			s.log.Warn().Err(err).Str("username", username).Msg("login throttle check failed, proceeding")
		} else if !allowed {
			return "", domain.ErrTooManyAttempts
		}
	}

	ok, err := s.Authenticate(ctx, username, password)
	if err != nil {
		return "", err
	}
	if !ok {
		if s.throttle != nil {
			if terr := s.throttle.Failure(ctx, username); terr != nil {
				s.log.Warn().Err(terr).Str("username", username).Msg("failed to record login failure")
			}
		}
		return "", domain.ErrInvalidCredentials
	}

	if s.throttle != nil {
		if terr := s.throttle.Success(ctx, username); terr != nil {
			s.log.Warn().Err(terr).Str("username", username).Msg("failed to clear login throttle")
		}
	}

	return s.generateToken(username)
}

func (s *AuthService) generateToken(username string) (string, error) {
	claims := jwt.MapClaims{
		"username": username,
		"exp":      time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
