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

type LocationHandler struct {
	UserService *service.UserService
}

// ServeHTTP godoc
//
//	@Summary		Update the account's location
//	@Description	Replaces all stored location fields with the request body;
//	@Description	omitted fields are cleared. Reference ids must exist.
//	@Description	Requires 'profile:write'.
//	@Tags			Account
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		marketsdk.UpdateLocationRequest	true	"New location"
//	@Success		200		{object}	marketsdk.LocationResponse		"Resolved location"
//	@Failure		400		{object}	marketsdk.APIError				"Malformed body or unknown reference id"
//	@Failure		401		{object}	marketsdk.APIError				"Invalid or missing access token"
//	@Failure		500		{object}	marketsdk.APIError				"Internal error"
//	@Router			/v1/me/location [put].
func (h *LocationHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	userID, ok := userIDFromContext(ctx)
	if !ok {
		marketsdk.ErrInvalidToken.WriteError(w)
		return
	}

	var req marketsdk.UpdateLocationRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	user, err := h.UserService.UpdateLocation(ctx, userID, store.UserLocation{
		LocationDisplay: req.Display,
		LocationData:    req.Data,
		CountryID:       req.CountryID,
		StateID:         req.StateID,
		CityID:          req.CityID,
		AddressLine:     req.AddressLine,
		PostalCode:      req.PostalCode,
		Latitude:        req.Latitude,
		Longitude:       req.Longitude,
		GooglePlaceID:   req.GooglePlaceID,
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			marketsdk.ErrInvalidRequest.WithMessage("Unknown location reference id").WriteError(w)
			return
		}
		log.Error("failed to update location", "user_id", userID, "err", err)
		marketsdk.ErrServerError.WriteError(w)
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, toLocationResponse(user))
}
