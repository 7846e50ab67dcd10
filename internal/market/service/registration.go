package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/openlocal/market/internal/market/domain"
	"github.com/openlocal/market/internal/market/store"
	"github.com/openlocal/market/pkg/cryptox"
	"github.com/openlocal/market/pkg/slogx"
)

// VerificationTokenTTL is how long an email verification token stays valid.
const VerificationTokenTTL = 48 * time.Hour

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrBuyerRoleMissing   = errors.New("buyer role missing from registry")
	ErrInvalidVerifyToken = errors.New("invalid or expired verification token")
)

// RegistrationService creates accounts and confirms email ownership. New
// accounts always start as buyers.
type RegistrationService struct {
	Store store.Store
}

// Register creates a buyer account and returns the new user id plus the
// email verification token. The token is returned to the caller because no
// mail transport is wired; only its fingerprint is stored.
func (s *RegistrationService) Register(
	ctx context.Context,
	name, email, password, phone string,
) (int64, string, error) {
	l := slogx.FromContext(ctx)

	passHash, err := cryptox.HashPassword(password)
	if err != nil {
		l.Error("failed to hash password", slog.Any("error", err))
		return 0, "", err
	}

	buyerRole, err := s.Store.Roles().GetRoleByName(ctx, domain.RoleBuyer)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			l.Error("registration attempted before role registry was seeded")
			return 0, "", ErrBuyerRoleMissing
		}
		return 0, "", err
	}

	verifyToken, err := cryptox.GenerateToken(cryptox.TokenSize256)
	if err != nil {
		return 0, "", err
	}

	var userID int64
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		userID, err = tx.Users().CreateUser(ctx, domain.User{
			Name:         name,
			Email:        email,
			PasswordHash: passHash,
			Phone:        phone,
			RoleID:       buyerRole.ID,
		})
		if err != nil {
			if errors.Is(err, store.ErrAlreadyExists) {
				return ErrEmailTaken
			}
			return err
		}

		expiresAt := time.Now().UTC().Add(VerificationTokenTTL)
		return tx.Users().SetEmailVerificationToken(ctx, userID,
			cryptox.FingerprintToken(verifyToken), expiresAt)
	})
	if err != nil {
		return 0, "", err
	}

	l.Info("registered new buyer", slog.Int64("user_id", userID))
	return userID, verifyToken, nil
}

// VerifyEmail confirms an email address from a verification token. The
// token is single-use; verification clears it.
func (s *RegistrationService) VerifyEmail(ctx context.Context, token string) error {
	l := slogx.FromContext(ctx)

	user, err := s.Store.Users().GetUserByVerificationToken(ctx, cryptox.FingerprintToken(token))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrInvalidVerifyToken
		}
		return err
	}

	if err := s.Store.Users().MarkEmailVerified(ctx, user.ID); err != nil {
		return err
	}

	l.Info("email verified", slog.Int64("user_id", user.ID))
	return nil
}
