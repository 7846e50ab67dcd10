package domain

import "time"

// SellerProfile tracks a user's seller-specific state. At most one profile
// exists per user. Creation and verification are administrative concerns;
// the user entity only reads the flags.
type SellerProfile struct {
	ID         int64
	UserID     int64
	StoreName  string
	Bio        string
	IsVerified bool
	IsActive   bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
