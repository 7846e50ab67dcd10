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

type RegisterHandler struct {
	RegistrationService *service.RegistrationService
}

// ServeHTTP godoc
//
//	@Summary		Register a new account
//	@Description	Creates a buyer account. The response carries the email
//	@Description	verification token; present it to /v1/auth/verify-email.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		marketsdk.RegisterRequest	true	"Account details"
//	@Success		201		{object}	marketsdk.RegisterResponse	"id, verification_token"
//	@Failure		400		{object}	marketsdk.APIError			"Malformed body or validation failure"
//	@Failure		409		{object}	marketsdk.APIError			"Email already registered"
//	@Failure		500		{object}	marketsdk.APIError			"Internal error"
//	@Router			/v1/auth/register [post].
func (h *RegisterHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req marketsdk.RegisterRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	userID, verifyToken, err := h.RegistrationService.Register(
		ctx,
		strings.TrimSpace(req.Name),
		strings.ToLower(strings.TrimSpace(req.Email)),
		req.Password,
		strings.TrimSpace(req.Phone),
	)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmailTaken):
			marketsdk.ErrConflict.WithMessage("Email is already registered").WriteError(w)
		case errors.Is(err, service.ErrBuyerRoleMissing):
			log.Error("registration before bootstrap", "err", err)
			marketsdk.ErrServerError.WithMessage("Service is not initialised").WriteError(w)
		default:
			log.Error("registration failed", "err", err)
			marketsdk.ErrServerError.WriteError(w)
		}
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusCreated, marketsdk.RegisterResponse{
		ID:                userID,
		VerificationToken: verifyToken,
	})
}
