package domain

import (
	"errors"
	"slices"
	"strings"
	"time"
)

// ErrRoleNotResolved reports a user whose role reference could not be
// resolved to a role row. This is a data-integrity failure: permission
// queries propagate it rather than defaulting to "no".
var ErrRoleNotResolved = errors.New("domain: user role not resolved")

// User is the marketplace participant. Relations (role, seller profile,
// appointments, location rows) are hydrated by the store layer; the entity
// itself performs no lookups.
type User struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string // opaque, never serialized
	Phone        string
	Bio          string

	EmailVerifiedAt *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time

	RoleID int64
	Role   *Role // hydrated from RoleID

	SellerProfile *SellerProfile // nil for non-sellers
	Appointments  []Appointment  // bookings where this user is the buyer

	// Location fields. LocationDisplay is a user-supplied override that
	// always wins over the structured composition.
	LocationDisplay string
	LocationData    map[string]any // opaque structured blob, stored as JSON
	CountryID       *int64
	StateID         *int64
	CityID          *int64
	AddressLine     string
	PostalCode      string
	Latitude        *float64 // stored with 8 fractional digits
	Longitude       *float64
	GooglePlaceID   string

	Country *Country // hydrated from CountryID
	State   *State
	City    *City
}

// RoleName resolves the referenced role's stable name.
func (u *User) RoleName() (string, error) {
	if u.Role == nil {
		return "", ErrRoleNotResolved
	}
	return u.Role.Name, nil
}

// RoleDisplayName resolves the referenced role's presentation label.
func (u *User) RoleDisplayName() (string, error) {
	if u.Role == nil {
		return "", ErrRoleNotResolved
	}
	return u.Role.DisplayName, nil
}

// HasRole reports whether the user's role name matches exactly.
func (u *User) HasRole(name string) (bool, error) {
	roleName, err := u.RoleName()
	if err != nil {
		return false, err
	}
	return roleName == name, nil
}

// HasAnyRole reports whether the user's role name is one of the given names.
func (u *User) HasAnyRole(names ...string) (bool, error) {
	roleName, err := u.RoleName()
	if err != nil {
		return false, err
	}
	return slices.Contains(names, roleName), nil
}

func (u *User) IsBuyer() (bool, error)     { return u.HasRole(RoleBuyer) }
func (u *User) IsSeller() (bool, error)    { return u.HasRole(RoleSeller) }
func (u *User) IsModerator() (bool, error) { return u.HasRole(RoleModerator) }
func (u *User) IsAdmin() (bool, error)     { return u.HasRole(RoleAdmin) }

// CanSell reports the resolved role's sell permission.
func (u *User) CanSell() (bool, error) {
	if u.Role == nil {
		return false, ErrRoleNotResolved
	}
	return u.Role.CanSell, nil
}

// CanModerate reports the resolved role's moderation permission.
func (u *User) CanModerate() (bool, error) {
	if u.Role == nil {
		return false, ErrRoleNotResolved
	}
	return u.Role.CanModerate, nil
}

// CanAccessAdmin reports the resolved role's admin-panel permission.
func (u *User) CanAccessAdmin() (bool, error) {
	if u.Role == nil {
		return false, ErrRoleNotResolved
	}
	return u.Role.CanAccessAdmin, nil
}

// CanUpgradeToSeller reports upgrade eligibility. Being a buyer is the sole
// rule; verification status does not gate the transition.
func (u *User) CanUpgradeToSeller() (bool, error) {
	return u.IsBuyer()
}

// IsVerifiedSeller reports whether a seller profile exists and is verified.
// A missing profile is an ordinary "no", not an error.
func (u *User) IsVerifiedSeller() bool {
	return u.SellerProfile != nil && u.SellerProfile.IsVerified
}

// HasActiveSellerAccount reports whether a seller profile exists and is active.
func (u *User) HasActiveSellerAccount() bool {
	return u.SellerProfile != nil && u.SellerProfile.IsActive
}

// Coordinates returns the coordinate pair, or nil when either axis is unset.
// A stored value of exactly 0.0 counts as unset; this mirrors the behavior
// the rest of the system was built against, so coordinates on the equator or
// prime meridian are not representable.
func (u *User) Coordinates() *Coordinates {
	if u.Latitude == nil || u.Longitude == nil {
		return nil
	}
	if *u.Latitude == 0 || *u.Longitude == 0 {
		return nil
	}
	return &Coordinates{Latitude: *u.Latitude, Longitude: *u.Longitude}
}

// FullLocation produces the display location. The explicit override wins;
// otherwise city, state and country names are joined in that order, skipping
// unresolved parts. An empty string means no location is available.
func (u *User) FullLocation() string {
	if u.LocationDisplay != "" {
		return u.LocationDisplay
	}

	var parts []string
	if u.City != nil {
		parts = append(parts, u.City.Name)
	}
	if u.State != nil {
		parts = append(parts, u.State.Name)
	}
	if u.Country != nil {
		parts = append(parts, u.Country.Name)
	}
	return strings.Join(parts, ", ")
}

// HasLocationData reports whether any location information was supplied,
// either the display override or the structured blob.
func (u *User) HasLocationData() bool {
	return u.LocationDisplay != "" || len(u.LocationData) > 0
}
