package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/openlocal/market/internal/market/domain"
	"github.com/openlocal/market/internal/market/store"
	"github.com/openlocal/market/pkg/slogx"
)

// ErrSellerRoleMissing reports an unseeded registry. The upgrade fails
// loudly instead of leaving the user silently unchanged.
var ErrSellerRoleMissing = errors.New("seller role missing from registry")

// UpgradeResult is the outcome of an upgrade request. Upgraded is false
// when the user already held the seller role, or when a non-buyer role
// (moderator, admin) made the request and the account was left untouched.
type UpgradeResult struct {
	Upgraded bool
	Role     domain.Role
	Profile  *domain.SellerProfile
}

// SellerService owns the buyer-to-seller transition.
type SellerService struct {
	Store store.Store
}

// UpgradeToSeller promotes a buyer to the seller role and creates their
// storefront profile. Calling it for any non-buyer is a no-op that
// reports Upgraded=false. storeName defaults to "<Name>'s Store".
func (s *SellerService) UpgradeToSeller(ctx context.Context, userID int64, storeName string) (UpgradeResult, error) {
	l := slogx.FromContext(ctx)

	user, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		return UpgradeResult{}, err
	}

	role, err := s.Store.Roles().GetRoleByID(ctx, user.RoleID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return UpgradeResult{}, domain.ErrRoleNotResolved
		}
		return UpgradeResult{}, err
	}
	user.Role = &role

	// Already a seller: report the current state without touching it.
	if role.Name == domain.RoleSeller {
		result := UpgradeResult{Upgraded: false, Role: role}
		profile, err := s.Store.SellerProfiles().GetByUserID(ctx, userID)
		switch {
		case err == nil:
			result.Profile = &profile
		case !errors.Is(err, store.ErrNotFound):
			return UpgradeResult{}, err
		}
		return result, nil
	}

	// Non-buyers (moderator, admin) are not eligible. Leave the account
	// untouched and report Upgraded=false rather than failing.
	eligible, err := user.CanUpgradeToSeller()
	if err != nil {
		return UpgradeResult{}, err
	}
	if !eligible {
		l.Debug("seller upgrade skipped for ineligible role",
			slog.Int64("user_id", userID),
			slog.String("role", role.Name),
		)
		return UpgradeResult{Upgraded: false, Role: role}, nil
	}

	sellerRole, err := s.Store.Roles().GetRoleByName(ctx, domain.RoleSeller)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			l.Error("upgrade attempted but seller role is not seeded")
			return UpgradeResult{}, ErrSellerRoleMissing
		}
		return UpgradeResult{}, err
	}

	if storeName == "" {
		storeName = user.Name + "'s Store"
	}

	var profile domain.SellerProfile
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Users().UpdateRole(ctx, userID, sellerRole.ID); err != nil {
			return err
		}

		// A profile can survive a past demotion; reuse it instead of
		// violating the one-per-user constraint.
		existing, err := tx.SellerProfiles().GetByUserID(ctx, userID)
		if err == nil {
			profile = existing
			return tx.SellerProfiles().SetActive(ctx, existing.ID, true)
		}
		if !errors.Is(err, store.ErrNotFound) {
			return err
		}

		profile = domain.SellerProfile{
			UserID:    userID,
			StoreName: storeName,
			IsActive:  true,
		}
		profileID, err := tx.SellerProfiles().Create(ctx, profile)
		if err != nil {
			return err
		}
		profile.ID = profileID
		return nil
	})
	if err != nil {
		return UpgradeResult{}, err
	}

	l.Info("user upgraded to seller",
		slog.Int64("user_id", userID),
		slog.Int64("seller_profile_id", profile.ID),
	)
	profile.IsActive = true
	return UpgradeResult{Upgraded: true, Role: sellerRole, Profile: &profile}, nil
}
