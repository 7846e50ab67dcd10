package http

import (
	"errors"
	"net/http"

	"github.com/openlocal/market/internal/market/service"
	"github.com/openlocal/market/internal/market/store"
	"github.com/openlocal/market/pkg/httpx"
	"github.com/openlocal/market/pkg/marketsdk"
	"github.com/openlocal/market/pkg/slogx"
)

type AppointmentsHandler struct {
	UserService *service.UserService
}

// ServeHTTP godoc
//
//	@Summary		List the caller's appointments
//	@Description	Returns the bookings where the caller is the buyer, newest
//	@Description	first. Requires 'profile:read'.
//	@Tags			Account
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	marketsdk.AppointmentsResponse	"appointments"
//	@Failure		401	{object}	marketsdk.APIError				"Invalid or missing access token"
//	@Failure		500	{object}	marketsdk.APIError				"Internal error"
//	@Router			/v1/me/appointments [get].
func (h *AppointmentsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	userID, ok := userIDFromContext(ctx)
	if !ok {
		marketsdk.ErrInvalidToken.WriteError(w)
		return
	}

	user, err := h.UserService.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			marketsdk.ErrInvalidToken.WriteError(w)
			return
		}
		log.Warn("failed to load appointments", "user_id", userID, "err", err)
		marketsdk.ErrServerError.WriteError(w)
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, toAppointmentsResponse(user.Appointments))
}
