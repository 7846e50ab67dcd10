package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/openlocal/market/internal/market/domain"
	"github.com/openlocal/market/internal/market/store"
)

type UserService struct {
	Store store.Store
}

// GetUserByID fetches a user with all relations hydrated: role, seller
// profile, buyer appointments and location references.
func (s *UserService) GetUserByID(ctx context.Context, userID int64) (domain.User, error) {
	user, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		return domain.User{}, err
	}
	if err := s.hydrate(ctx, &user); err != nil {
		return domain.User{}, err
	}
	return user, nil
}

// GetUserByEmail fetches a user by email with relations hydrated.
func (s *UserService) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	user, err := s.Store.Users().GetUserByEmail(ctx, email)
	if err != nil {
		return domain.User{}, err
	}
	if err := s.hydrate(ctx, &user); err != nil {
		return domain.User{}, err
	}
	return user, nil
}

// UpdateLocation replaces the user's location fields and returns the
// re-hydrated user.
func (s *UserService) UpdateLocation(ctx context.Context, userID int64, loc store.UserLocation) (domain.User, error) {
	// Reference ids must resolve before they are stored.
	if loc.CountryID != nil {
		if _, err := s.Store.Locations().GetCountryByID(ctx, *loc.CountryID); err != nil {
			return domain.User{}, fmt.Errorf("country %d: %w", *loc.CountryID, err)
		}
	}
	if loc.StateID != nil {
		if _, err := s.Store.Locations().GetStateByID(ctx, *loc.StateID); err != nil {
			return domain.User{}, fmt.Errorf("state %d: %w", *loc.StateID, err)
		}
	}
	if loc.CityID != nil {
		if _, err := s.Store.Locations().GetCityByID(ctx, *loc.CityID); err != nil {
			return domain.User{}, fmt.Errorf("city %d: %w", *loc.CityID, err)
		}
	}

	if err := s.Store.Users().UpdateLocation(ctx, userID, loc); err != nil {
		return domain.User{}, err
	}
	return s.GetUserByID(ctx, userID)
}

// hydrate resolves the user's relations in place. A missing role row is a
// data-integrity failure and surfaces as domain.ErrRoleNotResolved; missing
// seller profiles and location rows are ordinary absences.
func (s *UserService) hydrate(ctx context.Context, u *domain.User) error {
	role, err := s.Store.Roles().GetRoleByID(ctx, u.RoleID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("user %d role %d: %w", u.ID, u.RoleID, domain.ErrRoleNotResolved)
		}
		return err
	}
	u.Role = &role

	profile, err := s.Store.SellerProfiles().GetByUserID(ctx, u.ID)
	switch {
	case err == nil:
		u.SellerProfile = &profile
	case errors.Is(err, store.ErrNotFound):
		u.SellerProfile = nil
	default:
		return err
	}

	appointments, err := s.Store.Appointments().ListByBuyer(ctx, u.ID)
	if err != nil {
		return err
	}
	u.Appointments = appointments

	if u.CountryID != nil {
		if country, err := s.Store.Locations().GetCountryByID(ctx, *u.CountryID); err == nil {
			u.Country = &country
		} else if !errors.Is(err, store.ErrNotFound) {
			return err
		}
	}
	if u.StateID != nil {
		if state, err := s.Store.Locations().GetStateByID(ctx, *u.StateID); err == nil {
			u.State = &state
		} else if !errors.Is(err, store.ErrNotFound) {
			return err
		}
	}
	if u.CityID != nil {
		if city, err := s.Store.Locations().GetCityByID(ctx, *u.CityID); err == nil {
			u.City = &city
		} else if !errors.Is(err, store.ErrNotFound) {
			return err
		}
	}

	return nil
}
