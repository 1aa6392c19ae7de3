package service

import (
	"context"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"

	"brew-pos/internal/model"
	"brew-pos/internal/repository"

	"github.com/rs/zerolog"
)

// authService implements AuthService.
type authService struct {
	customerRepo repository.CustomerRepository
	logger       zerolog.Logger
}

// NewAuthService creates a new auth service.
func NewAuthService(customerRepo repository.CustomerRepository, logger zerolog.Logger) AuthService {
	return &authService{
		customerRepo: customerRepo,
		logger:       logger.With().Str("service", "auth").Logger(),
	}
}

// HashPassword computes the stored digest for a password. Unsalted SHA-256,
// kept for compatibility with existing member records. TODO: migrate stored
// hashes to a salted scheme before exposing login outside the shop LAN.
func HashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

// VerifyLogin checks a member's email and password. Unknown email, non-member
// email and wrong password all yield the same nil result without an error.
func (s *authService) VerifyLogin(ctx context.Context, email, password string) (*model.MemberIdentity, error) {
	if email == "" || password == "" {
		return nil, nil
	}

	account, err := s.customerRepo.GetMemberByEmail(ctx, email)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to look up member account")
		return nil, fmt.Errorf("failed to verify login: %w", err)
	}
	if account == nil {
		s.logger.Debug().Msg("login failed, no matching member")
		return nil, nil
	}

	supplied := HashPassword(password)
	if subtle.ConstantTimeCompare([]byte(supplied), []byte(account.PasswordHash)) != 1 {
		s.logger.Debug().
			Str("customer_id", account.CustomerID.String()).
			Msg("login failed, password mismatch")
		return nil, nil
	}

	s.logger.Info().
		Str("customer_id", account.CustomerID.String()).
		Msg("member login verified")

	return &model.MemberIdentity{
		CustomerID: account.CustomerID,
		Name:       account.Name,
	}, nil
}
