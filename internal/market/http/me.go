package http

import (
	"errors"
	"net/http"

	"github.com/openlocal/market/internal/market/domain"
	"github.com/openlocal/market/internal/market/service"
	"github.com/openlocal/market/internal/market/store"
	"github.com/openlocal/market/pkg/httpx"
	"github.com/openlocal/market/pkg/marketsdk"
	"github.com/openlocal/market/pkg/slogx"
)

type MeHandler struct {
	UserService *service.UserService
}

// ServeHTTP godoc
//
//	@Summary		Get the authenticated account
//	@Description	Returns the caller's account with role, seller profile,
//	@Description	appointments and location resolved. Requires 'profile:read'.
//	@Tags			Account
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	marketsdk.UserResponse	"Account view"
//	@Failure		401	{object}	marketsdk.APIError		"Invalid or missing access token"
//	@Failure		500	{object}	marketsdk.APIError		"Internal error"
//	@Router			/v1/me [get].
func (h *MeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	userID, ok := userIDFromContext(ctx)
	if !ok {
		marketsdk.ErrInvalidToken.WriteError(w)
		return
	}

	user, err := h.UserService.GetUserByID(ctx, userID)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			// Token subject no longer exists, e.g. deleted account.
			marketsdk.ErrInvalidToken.WriteError(w)
		case errors.Is(err, domain.ErrRoleNotResolved):
			log.Error("user has dangling role reference", "user_id", userID, "err", err)
			marketsdk.ErrServerError.WriteError(w)
		default:
			log.Warn("failed to load user", "user_id", userID, "err", err)
			marketsdk.ErrServerError.WriteError(w)
		}
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, toUserResponse(user))
}
