package marketsdk

import "time"

// ============================================================================
// Auth types
// ============================================================================

// RegisterRequest creates a new buyer account.
type RegisterRequest struct {
	// Name is the display name for the account (2-64 chars)
	Name string `json:"name" validate:"required,min=2,max=64"`

	// Email must be unique across the service
	Email string `json:"email" validate:"required,email,max=254"`

	// Password is the plaintext password (8-128 chars); only a hash is stored
	Password string `json:"password" validate:"required,min=8,max=128"`

	// Phone is an optional contact number
	Phone string `json:"phone,omitempty" validate:"omitempty,max=32"`
}

// RegisterResponse is returned after a successful registration.
type RegisterResponse struct {
	// ID is the numeric id of the new account
	ID int64 `json:"id"`

	// VerificationToken must be presented to POST /v1/auth/verify-email.
	// With no mail transport configured the service hands it back directly.
	VerificationToken string `json:"verification_token"`
}

// VerifyEmailRequest confirms ownership of a registered email address.
type VerifyEmailRequest struct {
	Token string `json:"token" validate:"required"`
}

// LoginRequest exchanges credentials for an access token.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// TokenResponse is returned from POST /v1/auth/login.
type TokenResponse struct {
	// AccessToken is the JWT used to authenticate API requests
	AccessToken string `json:"access_token"`

	// TokenType is always "Bearer"
	TokenType string `json:"token_type"`

	// ExpiresIn is the lifetime in seconds of the access token
	ExpiresIn int `json:"expires_in"`

	// Scope is the space-delimited list of scopes granted to this token
	Scope string `json:"scope,omitempty"`
}

// ============================================================================
// Bootstrap types
// ============================================================================

// BootstrapRequest seeds the role registry, reference locations and the
// initial admin account. Only valid while the system is empty.
type BootstrapRequest struct {
	// AdminName is the display name for the initial admin (2-64 chars)
	AdminName string `json:"admin_name" validate:"required,min=2,max=64"`

	// AdminEmail is the login email for the initial admin
	AdminEmail string `json:"admin_email" validate:"required,email,max=254"`

	// AdminPassword is the password for the initial admin (8-128 chars)
	AdminPassword string `json:"admin_password" validate:"required,min=8,max=128"`

	// Countries optionally seeds reference geography alongside the roles
	Countries []CountryDefinition `json:"countries,omitempty" validate:"omitempty,dive"`
}

// CountryDefinition seeds a country and its states during bootstrap.
type CountryDefinition struct {
	Name   string            `json:"name" validate:"required,max=100"`
	States []StateDefinition `json:"states,omitempty" validate:"omitempty,dive"`
}

// StateDefinition seeds a state and its cities during bootstrap.
type StateDefinition struct {
	Name   string   `json:"name" validate:"required,max=100"`
	Cities []string `json:"cities,omitempty"`
}

// BootstrapResponse reports what the bootstrap created.
type BootstrapResponse struct {
	// AdminUserID is the id of the created admin account
	AdminUserID int64 `json:"admin_user_id"`

	// Roles lists the role names seeded into the registry
	Roles []string `json:"roles"`

	// Countries is the number of countries seeded
	Countries int `json:"countries"`
}

// ============================================================================
// Account types
// ============================================================================

// RoleResponse describes a role in the registry.
type RoleResponse struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	DisplayName    string `json:"display_name"`
	CanSell        bool   `json:"can_sell"`
	CanModerate    bool   `json:"can_moderate"`
	CanAccessAdmin bool   `json:"can_access_admin"`
}

// RolesResponse wraps the role listing.
type RolesResponse struct {
	Roles []RoleResponse `json:"roles"`
}

// SellerProfileResponse describes a user's seller storefront.
type SellerProfileResponse struct {
	ID         int64     `json:"id"`
	StoreName  string    `json:"store_name"`
	Bio        string    `json:"bio,omitempty"`
	IsVerified bool      `json:"is_verified"`
	IsActive   bool      `json:"is_active"`
	CreatedAt  time.Time `json:"created_at"`
}

// Coordinates is a latitude/longitude pair.
type Coordinates struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lng"`
}

// LocationResponse summarises where a user is.
type LocationResponse struct {
	// Display is the human-readable location line. A stored override wins
	// over the "City, State, Country" form assembled from references.
	Display string `json:"display,omitempty"`

	AddressLine   string         `json:"address_line,omitempty"`
	PostalCode    string         `json:"postal_code,omitempty"`
	City          string         `json:"city,omitempty"`
	State         string         `json:"state,omitempty"`
	Country       string         `json:"country,omitempty"`
	Coordinates   *Coordinates   `json:"coordinates,omitempty"`
	GooglePlaceID string         `json:"google_place_id,omitempty"`
	Data          map[string]any `json:"data,omitempty"`
}

// UserResponse is the account view returned from GET /v1/me.
type UserResponse struct {
	ID            int64                  `json:"id"`
	Name          string                 `json:"name"`
	Email         string                 `json:"email"`
	Phone         string                 `json:"phone,omitempty"`
	Bio           string                 `json:"bio,omitempty"`
	EmailVerified bool                   `json:"email_verified"`
	Role          RoleResponse           `json:"role"`
	SellerProfile *SellerProfileResponse `json:"seller_profile,omitempty"`
	Location      LocationResponse       `json:"location"`
	CreatedAt     time.Time              `json:"created_at"`
}

// UpdateLocationRequest replaces the caller's stored location. Omitted
// pointer fields clear the corresponding value.
type UpdateLocationRequest struct {
	CountryID     *int64         `json:"country_id,omitempty"`
	StateID       *int64         `json:"state_id,omitempty"`
	CityID        *int64         `json:"city_id,omitempty"`
	AddressLine   string         `json:"address_line,omitempty" validate:"omitempty,max=255"`
	PostalCode    string         `json:"postal_code,omitempty" validate:"omitempty,max=20"`
	Latitude      *float64       `json:"latitude,omitempty" validate:"omitempty,latitude"`
	Longitude     *float64       `json:"longitude,omitempty" validate:"omitempty,longitude"`
	GooglePlaceID string         `json:"google_place_id,omitempty" validate:"omitempty,max=255"`
	Display       string         `json:"display,omitempty" validate:"omitempty,max=255"`
	Data          map[string]any `json:"data,omitempty"`
}

// UpgradeRequest asks the service to promote the caller to seller.
type UpgradeRequest struct {
	// StoreName names the storefront created with the upgrade. Defaults to
	// "<Name>'s Store" when empty.
	StoreName string `json:"store_name,omitempty" validate:"omitempty,max=100"`
}

// UpgradeResponse reports the outcome of an upgrade request.
type UpgradeResponse struct {
	// Upgraded is false when the caller already held the seller role
	Upgraded      bool                   `json:"upgraded"`
	Role          string                 `json:"role"`
	SellerProfile *SellerProfileResponse `json:"seller_profile,omitempty"`
}

// AppointmentResponse describes a booking with a seller.
type AppointmentResponse struct {
	ID              int64     `json:"id"`
	SellerProfileID int64     `json:"seller_profile_id"`
	StartsAt        time.Time `json:"starts_at"`
	EndsAt          time.Time `json:"ends_at"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
}

// AppointmentsResponse wraps the appointment listing.
type AppointmentsResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
}

// ============================================================================
// Health types
// ============================================================================

// HealthResponse is returned from the /livez and /readyz endpoints.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks reports per-dependency readiness.
type HealthChecks struct {
	Database string `json:"database"`
}
