package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/openlocal/market/internal/market/service"
	"github.com/openlocal/market/pkg/httpx"
	"github.com/openlocal/market/pkg/marketsdk"
	"github.com/openlocal/market/pkg/slogx"
)

type LoginHandler struct {
	AuthService *service.AuthService
}

// ServeHTTP godoc
//
//	@Summary		Log in
//	@Description	Exchanges email and password for a short-lived bearer
//	@Description	token. Scopes derive from the account's role.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		marketsdk.LoginRequest	true	"Credentials"
//	@Success		200		{object}	marketsdk.TokenResponse	"access_token, token_type, expires_in, scope"
//	@Failure		400		{object}	marketsdk.APIError		"Malformed body"
//	@Failure		401		{object}	marketsdk.APIError		"Invalid credentials"
//	@Failure		500		{object}	marketsdk.APIError		"Internal error"
//	@Router			/v1/auth/login [post].
func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req marketsdk.LoginRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	grant, err := h.AuthService.Login(ctx, strings.ToLower(strings.TrimSpace(req.Email)), req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			marketsdk.ErrInvalidCredentials.WriteError(w)
			return
		}
		log.Error("login failed", "err", err)
		marketsdk.ErrServerError.WriteError(w)
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, marketsdk.TokenResponse{
		AccessToken: grant.AccessToken,
		TokenType:   "Bearer",
		ExpiresIn:   grant.ExpiresIn,
		Scope:       grant.Scope,
	})
}
