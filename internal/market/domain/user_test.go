package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func buyerRole() *Role {
	return &Role{ID: 1, Name: RoleBuyer, DisplayName: "Buyer"}
}

func TestUserRolePredicates(t *testing.T) {
	t.Run("unresolved role propagates error", func(t *testing.T) {
		u := &User{RoleID: 1}

		_, err := u.RoleName()
		require.ErrorIs(t, err, ErrRoleNotResolved)

		_, err = u.IsBuyer()
		require.ErrorIs(t, err, ErrRoleNotResolved)

		_, err = u.CanSell()
		require.ErrorIs(t, err, ErrRoleNotResolved)

		_, err = u.HasAnyRole(RoleAdmin, RoleModerator)
		require.ErrorIs(t, err, ErrRoleNotResolved)
	})

	t.Run("resolved role", func(t *testing.T) {
		u := &User{Role: buyerRole()}

		name, err := u.RoleName()
		require.NoError(t, err)
		require.Equal(t, RoleBuyer, name)

		isBuyer, err := u.IsBuyer()
		require.NoError(t, err)
		require.True(t, isBuyer)

		isAdmin, err := u.IsAdmin()
		require.NoError(t, err)
		require.False(t, isAdmin)

		any, err := u.HasAnyRole(RoleSeller, RoleBuyer)
		require.NoError(t, err)
		require.True(t, any)

		staff, err := u.HasAnyRole(RoleModerator, RoleAdmin)
		require.NoError(t, err)
		require.False(t, staff, "a buyer holds no staff role")
	})

	t.Run("permission flags follow the role", func(t *testing.T) {
		u := &User{Role: &Role{Name: RoleModerator, CanModerate: true}}

		canModerate, err := u.CanModerate()
		require.NoError(t, err)
		require.True(t, canModerate)

		canSell, err := u.CanSell()
		require.NoError(t, err)
		require.False(t, canSell)
	})

	t.Run("only buyers can upgrade", func(t *testing.T) {
		buyer := &User{Role: buyerRole()}
		eligible, err := buyer.CanUpgradeToSeller()
		require.NoError(t, err)
		require.True(t, eligible)

		seller := &User{Role: &Role{Name: RoleSeller, CanSell: true}}
		eligible, err = seller.CanUpgradeToSeller()
		require.NoError(t, err)
		require.False(t, eligible)
	})
}

func TestUserSellerProfilePredicates(t *testing.T) {
	t.Run("missing profile is a plain no", func(t *testing.T) {
		u := &User{}
		require.False(t, u.IsVerifiedSeller())
		require.False(t, u.HasActiveSellerAccount())
	})

	t.Run("profile flags", func(t *testing.T) {
		u := &User{SellerProfile: &SellerProfile{IsActive: true}}
		require.True(t, u.HasActiveSellerAccount())
		require.False(t, u.IsVerifiedSeller())

		u.SellerProfile.IsVerified = true
		require.True(t, u.IsVerifiedSeller())
	})
}

func TestUserCoordinates(t *testing.T) {
	lat := -27.4698
	lng := 153.0251
	zero := 0.0

	t.Run("both axes set", func(t *testing.T) {
		u := &User{Latitude: &lat, Longitude: &lng}
		c := u.Coordinates()
		require.NotNil(t, c)
		require.InDelta(t, -27.4698, c.Latitude, 1e-9)
		require.InDelta(t, 153.0251, c.Longitude, 1e-9)
	})

	t.Run("missing axis", func(t *testing.T) {
		require.Nil(t, (&User{Latitude: &lat}).Coordinates())
		require.Nil(t, (&User{Longitude: &lng}).Coordinates())
		require.Nil(t, (&User{}).Coordinates())
	})

	t.Run("zero counts as unset", func(t *testing.T) {
		require.Nil(t, (&User{Latitude: &zero, Longitude: &lng}).Coordinates())
		require.Nil(t, (&User{Latitude: &lat, Longitude: &zero}).Coordinates())
	})
}

func TestUserFullLocation(t *testing.T) {
	t.Run("override wins", func(t *testing.T) {
		u := &User{
			LocationDisplay: "Sunny Coast",
			City:            &City{Name: "Brisbane"},
			Country:         &Country{Name: "Australia"},
		}
		require.Equal(t, "Sunny Coast", u.FullLocation())
	})

	t.Run("composed from references", func(t *testing.T) {
		u := &User{
			City:    &City{Name: "Brisbane"},
			State:   &State{Name: "Queensland"},
			Country: &Country{Name: "Australia"},
		}
		require.Equal(t, "Brisbane, Queensland, Australia", u.FullLocation())
	})

	t.Run("unresolved parts are skipped", func(t *testing.T) {
		u := &User{Country: &Country{Name: "Australia"}}
		require.Equal(t, "Australia", u.FullLocation())

		require.Equal(t, "", (&User{}).FullLocation())
	})
}

func TestUserHasLocationData(t *testing.T) {
	require.False(t, (&User{}).HasLocationData())
	require.True(t, (&User{LocationDisplay: "Somewhere"}).HasLocationData())
	require.True(t, (&User{LocationData: map[string]any{"source": "import"}}).HasLocationData())
}

func TestRoleScopes(t *testing.T) {
	require.Equal(t, []string{"profile:read", "profile:write"}, Role{}.Scopes())

	seller := Role{CanSell: true}
	require.Contains(t, seller.Scopes(), "market:sell")

	admin := Role{CanSell: true, CanModerate: true, CanAccessAdmin: true}
	require.Equal(t,
		[]string{"profile:read", "profile:write", "market:sell", "market:moderate", "admin:read", "admin:write"},
		admin.Scopes())
}
