// Package marketsdk is a Go client for the OpenLocal market service.
//
// The SDKClient covers unauthenticated operations (register, login, email
// verification, role listing, bootstrap, health). Logging in returns a
// Session, which carries the bearer token for the account endpoints.
//
// Basic usage:
//
//	client := marketsdk.NewSDKClient("http://localhost:8080")
//
//	// One-time system setup.
//	_, err := client.Bootstrap(ctx, bootstrapToken, marketsdk.BootstrapRequest{
//		AdminName:     "Admin",
//		AdminEmail:    "admin@example.com",
//		AdminPassword: "change-me-please",
//	})
//
//	// Register and verify a buyer.
//	reg, err := client.Register(ctx, marketsdk.RegisterRequest{
//		Name:     "Alice",
//		Email:    "alice@example.com",
//		Password: "hunter2hunter2",
//	})
//	err = client.VerifyEmail(ctx, reg.VerificationToken)
//
//	// Authenticate and use the account surface.
//	session, err := client.Login(ctx, "alice@example.com", "hunter2hunter2")
//	me, err := session.Me(ctx)
//	result, err := session.UpgradeToSeller(ctx, marketsdk.UpgradeRequest{StoreName: "Alice's Plants"})
//
// Errors returned by the service are surfaced as *APIError, so callers can
// branch on the machine-readable code:
//
//	var apiErr *marketsdk.APIError
//	if errors.As(err, &apiErr) && apiErr.Code == marketsdk.ErrorCodeConflict {
//		// duplicate email
//	}
package marketsdk
