package store

import (
	"context"
	"errors"
	"time"

	"github.com/openlocal/market/internal/market/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite today)
// implement this. Sub-repositories keep each concern tidy and let the
// service layer depend on exactly what it touches.
type Store interface {
	Users() Users
	Roles() Roles
	SellerProfiles() SellerProfiles
	Appointments() Appointments
	Locations() Locations

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction. A non-nil error from fn
	// rolls the transaction back; nil commits it.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

// UserLocation carries the writable location fields of a user. Pointer
// fields distinguish "absent" from a zero value at the storage layer.
type UserLocation struct {
	LocationDisplay string
	LocationData    map[string]any
	CountryID       *int64
	StateID         *int64
	CityID          *int64
	AddressLine     string
	PostalCode      string
	Latitude        *float64
	Longitude       *float64
	GooglePlaceID   string
}

type Users interface {
	// GetUserByID returns the raw user row. Relations are hydrated by the
	// service layer through explicit repository calls.
	GetUserByID(ctx context.Context, id int64) (domain.User, error)

	// GetUserByEmail is used during login and registration.
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)

	// CreateUser inserts a new user and returns the generated id.
	CreateUser(ctx context.Context, u domain.User) (int64, error)

	// UpdateRole mutates the role reference and bumps updated_at. This is
	// the only role mutation the core performs (seller upgrade).
	UpdateRole(ctx context.Context, userID, roleID int64) error

	// UpdateLocation replaces all writable location fields.
	UpdateLocation(ctx context.Context, userID int64, loc UserLocation) error

	// SetEmailVerificationToken stores the fingerprint of an outstanding
	// verification token together with its expiry.
	SetEmailVerificationToken(ctx context.Context, userID int64, fingerprint string, expiresAt time.Time) error

	// GetUserByVerificationToken resolves an unexpired token fingerprint.
	GetUserByVerificationToken(ctx context.Context, fingerprint string) (domain.User, error)

	// MarkEmailVerified stamps email_verified_at and clears the token.
	MarkEmailVerified(ctx context.Context, userID int64) error

	// ClearExpiredVerificationTokens is housekeeping.
	ClearExpiredVerificationTokens(ctx context.Context) error

	// DeleteUser removes a user row. Related records are owned by external
	// collaborators; no cascade is defined here.
	DeleteUser(ctx context.Context, userID int64) error

	// IsEmpty returns true if there are no users.
	IsEmpty(ctx context.Context) (bool, error)
}

type Roles interface {
	// GetRoleByID fetches a role by its id.
	GetRoleByID(ctx context.Context, id int64) (domain.Role, error)

	// GetRoleByName fetches a role by its stable name. This is the Role
	// Registry lookup contract: a missing name yields ErrNotFound.
	GetRoleByName(ctx context.Context, name string) (domain.Role, error)

	// ListAll returns all roles in the registry.
	ListAll(ctx context.Context) ([]domain.Role, error)

	// CreateRole inserts a role (bootstrap only) and returns its id.
	CreateRole(ctx context.Context, r domain.Role) (int64, error)

	// IsEmpty returns true if the registry has not been seeded.
	IsEmpty(ctx context.Context) (bool, error)
}

type SellerProfiles interface {
	// GetByUserID returns the user's seller profile, or ErrNotFound when
	// the user has never sold.
	GetByUserID(ctx context.Context, userID int64) (domain.SellerProfile, error)

	// Create inserts a profile (at most one per user) and returns its id.
	Create(ctx context.Context, p domain.SellerProfile) (int64, error)

	// SetVerified flips the verification flag.
	SetVerified(ctx context.Context, profileID int64, verified bool) error

	// SetActive flips the active flag.
	SetActive(ctx context.Context, profileID int64, active bool) error
}

type Appointments interface {
	// Create inserts an appointment and returns its id.
	Create(ctx context.Context, a domain.Appointment) (int64, error)

	// ListByBuyer returns all appointments where the user is the buyer,
	// newest first.
	ListByBuyer(ctx context.Context, buyerID int64) ([]domain.Appointment, error)

	// UpdateStatus transitions an appointment's status.
	UpdateStatus(ctx context.Context, appointmentID int64, status string) error

	// DeleteExpiredPending removes pending appointments whose end time has
	// passed. Housekeeping.
	DeleteExpiredPending(ctx context.Context) error
}

type Locations interface {
	GetCountryByID(ctx context.Context, id int64) (domain.Country, error)
	GetStateByID(ctx context.Context, id int64) (domain.State, error)
	GetCityByID(ctx context.Context, id int64) (domain.City, error)

	ListCountries(ctx context.Context) ([]domain.Country, error)

	CreateCountry(ctx context.Context, c domain.Country) (int64, error)
	CreateState(ctx context.Context, s domain.State) (int64, error)
	CreateCity(ctx context.Context, c domain.City) (int64, error)
}
