package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/openlocal/market/internal/market/domain"
	"github.com/openlocal/market/internal/market/store"
	"github.com/openlocal/market/internal/market/store/drivers/sqlite"
	"github.com/openlocal/market/pkg/cryptox"
	"github.com/openlocal/market/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

func newTestAuthService(t *testing.T, st store.Store) *AuthService {
	t.Helper()

	signer, err := jwtx.GenerateSigner("test-key")
	require.NoError(t, err)
	return &AuthService{Store: st, Signer: signer, Issuer: "market-test"}
}

func TestMain(m *testing.M) {
	pepperPath := filepath.Join(os.TempDir(), "market-service-test-pepper")
	cryptox.SetPepperPath(pepperPath)
	os.Remove(pepperPath)
	defer os.Remove(pepperPath)

	os.Exit(m.Run())
}

// newTestStore returns a migrated in-memory store.
func newTestStore(t *testing.T) store.Store {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.ApplyMigrations())
	return st
}

// seedRoles seeds the default registry and returns the roles by name.
func seedRoles(t *testing.T, st store.Store) map[string]domain.Role {
	t.Helper()

	ctx := context.Background()
	out := make(map[string]domain.Role)
	for _, def := range domain.DefaultRoles() {
		id, err := st.Roles().CreateRole(ctx, domain.Role{
			Name:           def.Name,
			DisplayName:    def.DisplayName,
			CanSell:        def.CanSell,
			CanModerate:    def.CanModerate,
			CanAccessAdmin: def.CanAccessAdmin,
		})
		require.NoError(t, err)

		role, err := st.Roles().GetRoleByID(ctx, id)
		require.NoError(t, err)
		out[def.Name] = role
	}
	return out
}

func TestRegisterAndVerifyEmail(t *testing.T) {
	st := newTestStore(t)
	seedRoles(t, st)
	ctx := context.Background()

	reg := &RegistrationService{Store: st}

	userID, token, err := reg.Register(ctx, "Alice", "alice@example.com", "hunter2hunter2", "")
	require.NoError(t, err)
	require.NotZero(t, userID)
	require.NotEmpty(t, token)

	user, err := st.Users().GetUserByID(ctx, userID)
	require.NoError(t, err)
	require.Equal(t, "alice@example.com", user.Email)
	require.Nil(t, user.EmailVerifiedAt, "email starts unverified")
	require.NotEqual(t, "hunter2hunter2", user.PasswordHash, "password must be hashed")

	t.Run("duplicate email is rejected", func(t *testing.T) {
		_, _, err := reg.Register(ctx, "Mallory", "alice@example.com", "hunter2hunter2", "")
		require.ErrorIs(t, err, ErrEmailTaken)
	})

	t.Run("bogus token is rejected", func(t *testing.T) {
		require.ErrorIs(t, reg.VerifyEmail(ctx, "not-a-real-token"), ErrInvalidVerifyToken)
	})

	t.Run("valid token verifies", func(t *testing.T) {
		require.NoError(t, reg.VerifyEmail(ctx, token))

		user, err := st.Users().GetUserByID(ctx, userID)
		require.NoError(t, err)
		require.NotNil(t, user.EmailVerifiedAt)
	})

	t.Run("token is single use", func(t *testing.T) {
		require.ErrorIs(t, reg.VerifyEmail(ctx, token), ErrInvalidVerifyToken)
	})
}

func TestRegisterWithoutSeededRegistry(t *testing.T) {
	st := newTestStore(t)
	reg := &RegistrationService{Store: st}

	_, _, err := reg.Register(context.Background(), "Alice", "alice@example.com", "hunter2hunter2", "")
	require.ErrorIs(t, err, ErrBuyerRoleMissing)
}

func TestLogin(t *testing.T) {
	st := newTestStore(t)
	seedRoles(t, st)
	ctx := context.Background()

	reg := &RegistrationService{Store: st}
	_, _, err := reg.Register(ctx, "Alice", "alice@example.com", "hunter2hunter2", "")
	require.NoError(t, err)

	auth := newTestAuthService(t, st)

	t.Run("valid credentials mint a token", func(t *testing.T) {
		grant, err := auth.Login(ctx, "alice@example.com", "hunter2hunter2")
		require.NoError(t, err)
		require.NotEmpty(t, grant.AccessToken)
		require.Positive(t, grant.ExpiresIn)

		// Buyers get the profile scopes and nothing else.
		require.Equal(t, "profile:read profile:write", grant.Scope)

		claims, err := auth.Signer.Verifier(auth.Issuer).Verify(grant.AccessToken)
		require.NoError(t, err)
		require.Equal(t, domain.RoleBuyer, claims.Role)
		require.Equal(t, "Alice", claims.Name)
	})

	t.Run("wrong password is rejected", func(t *testing.T) {
		_, err := auth.Login(ctx, "alice@example.com", "wrong-password")
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown email is rejected", func(t *testing.T) {
		_, err := auth.Login(ctx, "nobody@example.com", "hunter2hunter2")
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestUpgradeToSeller(t *testing.T) {
	st := newTestStore(t)
	roles := seedRoles(t, st)
	ctx := context.Background()

	reg := &RegistrationService{Store: st}
	userID, _, err := reg.Register(ctx, "Alice", "alice@example.com", "hunter2hunter2", "")
	require.NoError(t, err)

	seller := &SellerService{Store: st}

	t.Run("buyer upgrades and gains a storefront", func(t *testing.T) {
		result, err := seller.UpgradeToSeller(ctx, userID, "Alice's Plants")
		require.NoError(t, err)
		require.True(t, result.Upgraded)
		require.Equal(t, domain.RoleSeller, result.Role.Name)
		require.NotNil(t, result.Profile)
		require.Equal(t, "Alice's Plants", result.Profile.StoreName)
		require.True(t, result.Profile.IsActive)
		require.False(t, result.Profile.IsVerified, "verification is a separate step")

		user, err := st.Users().GetUserByID(ctx, userID)
		require.NoError(t, err)
		require.Equal(t, roles[domain.RoleSeller].ID, user.RoleID)
	})

	t.Run("second upgrade is a no-op", func(t *testing.T) {
		result, err := seller.UpgradeToSeller(ctx, userID, "")
		require.NoError(t, err)
		require.False(t, result.Upgraded)
		require.Equal(t, domain.RoleSeller, result.Role.Name)
		require.NotNil(t, result.Profile)
		require.Equal(t, "Alice's Plants", result.Profile.StoreName)
	})

	t.Run("ineligible roles are a silent no-op", func(t *testing.T) {
		for _, roleName := range []string{domain.RoleModerator, domain.RoleAdmin} {
			id, err := st.Users().CreateUser(ctx, domain.User{
				Name:         "Staff " + roleName,
				Email:        roleName + "@example.com",
				PasswordHash: "x",
				RoleID:       roles[roleName].ID,
			})
			require.NoError(t, err)

			result, err := seller.UpgradeToSeller(ctx, id, "")
			require.NoError(t, err)
			require.False(t, result.Upgraded)
			require.Equal(t, roleName, result.Role.Name)
			require.Nil(t, result.Profile)

			user, err := st.Users().GetUserByID(ctx, id)
			require.NoError(t, err)
			require.Equal(t, roles[roleName].ID, user.RoleID, "account must be untouched")
		}
	})
}

func TestUpgradeToSellerMissingRole(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	// Seed only the buyer role so the upgrade target is absent.
	buyerID, err := st.Roles().CreateRole(ctx, domain.Role{Name: domain.RoleBuyer, DisplayName: "Buyer"})
	require.NoError(t, err)

	userID, err := st.Users().CreateUser(ctx, domain.User{
		Name:         "Alice",
		Email:        "alice@example.com",
		PasswordHash: "x",
		RoleID:       buyerID,
	})
	require.NoError(t, err)

	seller := &SellerService{Store: st}
	_, err = seller.UpgradeToSeller(ctx, userID, "")
	require.ErrorIs(t, err, ErrSellerRoleMissing)

	// The failed upgrade must not have touched the user.
	user, err := st.Users().GetUserByID(ctx, userID)
	require.NoError(t, err)
	require.Equal(t, buyerID, user.RoleID)
}

func TestBootstrap(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	svc := &BootstrapService{Store: st, Token: "secret-token"}

	data := domain.BootstrapData{
		AdminName:     "Root",
		AdminEmail:    "root@example.com",
		AdminPassword: "change-me-please",
		Countries: []domain.CountryDefinition{
			{
				Name: "Australia",
				States: []domain.StateDefinition{
					{Name: "Queensland", Cities: []string{"Brisbane", "Cairns"}},
				},
			},
		},
	}

	t.Run("wrong token is rejected", func(t *testing.T) {
		_, err := svc.Bootstrap(ctx, "wrong", data)
		require.ErrorIs(t, err, ErrBootstrapUnauthorized)
	})

	t.Run("seeds roles, admin and geography", func(t *testing.T) {
		result, err := svc.Bootstrap(ctx, "secret-token", data)
		require.NoError(t, err)
		require.NotZero(t, result.AdminUserID)
		require.ElementsMatch(t, []string{"buyer", "seller", "moderator", "admin"}, result.Roles)
		require.Equal(t, 1, result.Countries)

		admin, err := st.Users().GetUserByID(ctx, result.AdminUserID)
		require.NoError(t, err)
		role, err := st.Roles().GetRoleByID(ctx, admin.RoleID)
		require.NoError(t, err)
		require.Equal(t, domain.RoleAdmin, role.Name)
		require.True(t, role.CanAccessAdmin)

		countries, err := st.Locations().ListCountries(ctx)
		require.NoError(t, err)
		require.Len(t, countries, 1)
	})

	t.Run("second bootstrap is refused", func(t *testing.T) {
		_, err := svc.Bootstrap(ctx, "secret-token", data)
		require.ErrorIs(t, err, ErrBootstrapAlready)
	})
}

func TestUserHydration(t *testing.T) {
	st := newTestStore(t)
	seedRoles(t, st)
	ctx := context.Background()

	reg := &RegistrationService{Store: st}
	userID, _, err := reg.Register(ctx, "Alice", "alice@example.com", "hunter2hunter2", "")
	require.NoError(t, err)

	users := &UserService{Store: st}

	// Seed a little geography to point the user at.
	countryID, err := st.Locations().CreateCountry(ctx, domain.Country{Name: "Australia"})
	require.NoError(t, err)
	stateID, err := st.Locations().CreateState(ctx, domain.State{CountryID: countryID, Name: "Queensland"})
	require.NoError(t, err)
	cityID, err := st.Locations().CreateCity(ctx, domain.City{StateID: stateID, Name: "Brisbane"})
	require.NoError(t, err)

	lat, lng := -27.4698, 153.0251
	user, err := users.UpdateLocation(ctx, userID, store.UserLocation{
		CountryID: &countryID,
		StateID:   &stateID,
		CityID:    &cityID,
		Latitude:  &lat,
		Longitude: &lng,
	})
	require.NoError(t, err)

	require.NotNil(t, user.Role)
	require.Equal(t, domain.RoleBuyer, user.Role.Name)
	require.Equal(t, "Brisbane, Queensland, Australia", user.FullLocation())

	coords := user.Coordinates()
	require.NotNil(t, coords)
	require.InDelta(t, -27.4698, coords.Latitude, 1e-6)
	require.InDelta(t, 153.0251, coords.Longitude, 1e-6)

	t.Run("unknown reference id is rejected", func(t *testing.T) {
		missing := int64(9999)
		_, err := users.UpdateLocation(ctx, userID, store.UserLocation{CityID: &missing})
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("display override wins", func(t *testing.T) {
		user, err := users.UpdateLocation(ctx, userID, store.UserLocation{
			LocationDisplay: "Somewhere else entirely",
			CountryID:       &countryID,
		})
		require.NoError(t, err)
		require.Equal(t, "Somewhere else entirely", user.FullLocation())
	})
}
