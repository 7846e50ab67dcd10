package service

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/openlocal/market/internal/market/store"
	"github.com/openlocal/market/pkg/cryptox"
	"github.com/openlocal/market/pkg/idx"
	"github.com/openlocal/market/pkg/jwtx"
	"github.com/openlocal/market/pkg/slogx"
)

var ErrInvalidCredentials = errors.New("invalid_credentials")

// TokenGrant is the outcome of a successful login.
type TokenGrant struct {
	AccessToken string
	ExpiresIn   int // seconds
	Scope       string
}

// AuthService exchanges credentials for short-lived access tokens. There
// are no refresh tokens; clients log in again when the token lapses.
type AuthService struct {
	Store     store.Store
	Signer    *jwtx.Signer
	Issuer    string
	AccessTTL time.Duration
}

// Login verifies credentials and mints an access token whose scopes derive
// from the user's role.
func (s *AuthService) Login(ctx context.Context, email, password string) (TokenGrant, error) {
	l := slogx.FromContext(ctx)

	user, err := s.Store.Users().GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			// Burn a hash comparison so unknown emails cost the same as
			// wrong passwords.
			_ = cryptox.VerifyPassword(password, dummyHash)
			return TokenGrant{}, ErrInvalidCredentials
		}
		return TokenGrant{}, err
	}

	if cryptox.VerifyPassword(password, user.PasswordHash) != nil {
		l.Info("login failed", slog.Int64("user_id", user.ID))
		return TokenGrant{}, ErrInvalidCredentials
	}

	role, err := s.Store.Roles().GetRoleByID(ctx, user.RoleID)
	if err != nil {
		return TokenGrant{}, err
	}

	ttl := s.AccessTTL
	if ttl <= 0 {
		ttl = jwtx.DefaultAccessTokenTTL
	}

	scopes := role.Scopes()
	claims := jwtx.NewAccessClaims(
		strconv.FormatInt(user.ID, 10),
		idx.New().String(),
		scopes,
		role.Name,
		user.Name,
		ttl,
		s.Issuer,
		time.Now().UTC(),
	)

	token, err := s.Signer.Sign(claims)
	if err != nil {
		l.Error("failed to sign access token", slog.Any("error", err))
		return TokenGrant{}, err
	}

	l.Info("login succeeded",
		slog.Int64("user_id", user.ID),
		slog.String("role", role.Name),
	)
	return TokenGrant{
		AccessToken: token,
		ExpiresIn:   int(ttl.Seconds()),
		Scope:       strings.Join(scopes, " "),
	}, nil
}

// dummyHash is a valid Argon2id hash of a random string, used to equalise
// login timing for unknown emails.
const dummyHash = "$argon2id$v=19$m=19456,t=2,p=1$AAAAAAAAAAAAAAAAAAAAAA$t1AbcpkuNTgVEUK9BMHSVvoWYbmYvRcuOPzLT9jnX0o"
