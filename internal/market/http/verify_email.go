package http

import (
	"errors"
	"net/http"

	"github.com/openlocal/market/internal/market/service"
	"github.com/openlocal/market/pkg/marketsdk"
	"github.com/openlocal/market/pkg/slogx"
)

type VerifyEmailHandler struct {
	RegistrationService *service.RegistrationService
}

// ServeHTTP godoc
//
//	@Summary		Verify email address
//	@Description	Confirms ownership of a registered email from the token
//	@Description	handed out at registration. Tokens are single use.
//	@Tags			Auth
//	@Accept			json
//	@Param			request	body	marketsdk.VerifyEmailRequest	true	"Verification token"
//	@Success		204		"Email verified"
//	@Failure		400		{object}	marketsdk.APIError	"Malformed body"
//	@Failure		401		{object}	marketsdk.APIError	"Invalid or expired token"
//	@Failure		500		{object}	marketsdk.APIError	"Internal error"
//	@Router			/v1/auth/verify-email [post].
func (h *VerifyEmailHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req marketsdk.VerifyEmailRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	if err := h.RegistrationService.VerifyEmail(ctx, req.Token); err != nil {
		if errors.Is(err, service.ErrInvalidVerifyToken) {
			marketsdk.ErrInvalidToken.WithMessage("Invalid or expired verification token").WriteError(w)
			return
		}
		log.Error("email verification failed", "err", err)
		marketsdk.ErrServerError.WriteError(w)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
