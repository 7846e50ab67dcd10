package domain

// BootstrapData is the one-shot system seed: the role registry, location
// reference data, and the initial admin account.
type BootstrapData struct {
	AdminName     string
	AdminEmail    string
	AdminPassword string
	Roles         []RoleDefinition
	Countries     []CountryDefinition
}

// RoleDefinition describes a role to seed, including its permission flags.
type RoleDefinition struct {
	Name           string
	DisplayName    string
	CanSell        bool
	CanModerate    bool
	CanAccessAdmin bool
}

// CountryDefinition seeds a country with its states and cities.
type CountryDefinition struct {
	Name   string
	States []StateDefinition
}

type StateDefinition struct {
	Name   string
	Cities []string
}

// DefaultRoles is the standard marketplace role registry.
func DefaultRoles() []RoleDefinition {
	return []RoleDefinition{
		{Name: RoleBuyer, DisplayName: "Buyer"},
		{Name: RoleSeller, DisplayName: "Seller", CanSell: true},
		{Name: RoleModerator, DisplayName: "Moderator", CanModerate: true},
		{Name: RoleAdmin, DisplayName: "Administrator", CanSell: true, CanModerate: true, CanAccessAdmin: true},
	}
}
