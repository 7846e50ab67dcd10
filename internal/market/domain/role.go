package domain

import "time"

// Well-known role names. Roles are reference data seeded at bootstrap; the
// registry may contain more than these, but the convenience predicates on
// User only ever consult this set.
const (
	RoleBuyer     = "buyer"
	RoleSeller    = "seller"
	RoleModerator = "moderator"
	RoleAdmin     = "admin"
)

// Role is an immutable permission set with a stable name. Users reference
// exactly one role; the role itself is never mutated by user actions.
type Role struct {
	ID          int64
	Name        string // stable key, e.g. "buyer"
	DisplayName string // presentation label, e.g. "Buyer"

	CanSell        bool
	CanModerate    bool
	CanAccessAdmin bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Scopes derives the access-token scopes granted by this role's permission
// flags. Every authenticated user can read and write their own profile.
func (r Role) Scopes() []string {
	scopes := []string{"profile:read", "profile:write"}
	if r.CanSell {
		scopes = append(scopes, "market:sell")
	}
	if r.CanModerate {
		scopes = append(scopes, "market:moderate")
	}
	if r.CanAccessAdmin {
		scopes = append(scopes, "admin:read", "admin:write")
	}
	return scopes
}
