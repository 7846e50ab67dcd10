package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/openlocal/market/internal/market/domain"
	"github.com/openlocal/market/internal/market/store"
	"github.com/openlocal/market/pkg/cryptox"
	"github.com/openlocal/market/pkg/slogx"
)

var (
	ErrBootstrapAlready      = errors.New("system already bootstrapped")
	ErrBootstrapUnauthorized = errors.New("unauthorized bootstrap attempt")
)

// BootstrapResult reports what the one-shot seed created.
type BootstrapResult struct {
	AdminUserID int64
	Roles       []string
	Countries   int
}

// BootstrapService performs the one-shot system seed: role registry,
// location reference data and the initial admin account.
type BootstrapService struct {
	Store store.Store
	Token string // pre-configured bootstrap token
}

// IsBootstrapped reports whether the registry and user table are seeded.
func (s *BootstrapService) IsBootstrapped(ctx context.Context) (bool, error) {
	rolesEmpty, err := s.Store.Roles().IsEmpty(ctx)
	if err != nil {
		return false, err
	}
	usersEmpty, err := s.Store.Users().IsEmpty(ctx)
	if err != nil {
		return false, err
	}
	return !rolesEmpty && !usersEmpty, nil
}

// Bootstrap seeds the system. When data.Roles is empty the standard
// marketplace registry is used. The "admin" role must exist in whatever
// set is seeded, since the initial account needs it.
func (s *BootstrapService) Bootstrap(
	ctx context.Context,
	token string,
	data domain.BootstrapData,
) (BootstrapResult, error) {
	l := slogx.FromContext(ctx)

	if bootstrapped, err := s.IsBootstrapped(ctx); err != nil {
		return BootstrapResult{}, err
	} else if bootstrapped {
		l.Warn("attempted bootstrap on already-bootstrapped system")
		return BootstrapResult{}, ErrBootstrapAlready
	}

	if token != s.Token {
		l.Warn("unauthorized bootstrap attempt")
		return BootstrapResult{}, ErrBootstrapUnauthorized
	}

	passHash, err := cryptox.HashPassword(data.AdminPassword)
	if err != nil {
		l.Error("failed to hash admin password", slog.Any("error", err))
		return BootstrapResult{}, err
	}

	roleDefs := data.Roles
	if len(roleDefs) == 0 {
		roleDefs = domain.DefaultRoles()
	}

	var result BootstrapResult
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		// Roles first, users reference them.
		roleIDs := make(map[string]int64, len(roleDefs))
		for _, def := range roleDefs {
			roleID, err := tx.Roles().CreateRole(ctx, domain.Role{
				Name:           def.Name,
				DisplayName:    def.DisplayName,
				CanSell:        def.CanSell,
				CanModerate:    def.CanModerate,
				CanAccessAdmin: def.CanAccessAdmin,
			})
			if err != nil {
				return err
			}
			roleIDs[def.Name] = roleID
			result.Roles = append(result.Roles, def.Name)
		}

		adminRoleID, ok := roleIDs[domain.RoleAdmin]
		if !ok {
			return errors.New("bootstrap must define the admin role")
		}

		adminID, err := tx.Users().CreateUser(ctx, domain.User{
			Name:         data.AdminName,
			Email:        data.AdminEmail,
			PasswordHash: passHash,
			RoleID:       adminRoleID,
		})
		if err != nil {
			return err
		}
		result.AdminUserID = adminID

		for _, country := range data.Countries {
			countryID, err := tx.Locations().CreateCountry(ctx, domain.Country{Name: country.Name})
			if err != nil {
				return err
			}
			for _, state := range country.States {
				stateID, err := tx.Locations().CreateState(ctx, domain.State{
					CountryID: countryID,
					Name:      state.Name,
				})
				if err != nil {
					return err
				}
				for _, city := range state.Cities {
					if _, err := tx.Locations().CreateCity(ctx, domain.City{
						StateID: stateID,
						Name:    city,
					}); err != nil {
						return err
					}
				}
			}
			result.Countries++
		}
		return nil
	})
	if err != nil {
		return BootstrapResult{}, err
	}

	l.Info("successfully bootstrapped system",
		slog.Int64("admin_user_id", result.AdminUserID),
		slog.Int("roles", len(result.Roles)),
		slog.Int("countries", result.Countries),
	)
	return result, nil
}
