package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/openlocal/market/internal/market/service"
	"github.com/openlocal/market/internal/market/store"
	"github.com/openlocal/market/pkg/httpx"
	"github.com/openlocal/market/pkg/marketsdk"
	"github.com/openlocal/market/pkg/slogx"
)

type UpgradeHandler struct {
	SellerService *service.SellerService
}

// ServeHTTP godoc
//
//	@Summary		Upgrade to seller
//	@Description	Promotes a buyer to the seller role and creates their
//	@Description	storefront. Any non-buyer gets upgraded=false with the
//	@Description	account left unchanged. Requires 'profile:write'.
//	@Tags			Account
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		marketsdk.UpgradeRequest	false	"Optional storefront name"
//	@Success		200		{object}	marketsdk.UpgradeResponse	"upgraded, role, seller_profile"
//	@Failure		400		{object}	marketsdk.APIError			"Malformed body"
//	@Failure		401		{object}	marketsdk.APIError			"Invalid or missing access token"
//	@Failure		500		{object}	marketsdk.APIError			"Internal error or unseeded registry"
//	@Router			/v1/me/upgrade-to-seller [post].
func (h *UpgradeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	userID, ok := userIDFromContext(ctx)
	if !ok {
		marketsdk.ErrInvalidToken.WriteError(w)
		return
	}

	// Body is optional; an empty body means default storefront name.
	var req marketsdk.UpgradeRequest
	if r.Body != nil {
		if err := decodeUpgradeBody(r, &req); err != nil {
			marketsdk.ErrInvalidRequest.WithMessage("Request body must be valid JSON").WriteError(w)
			return
		}
	}

	result, err := h.SellerService.UpgradeToSeller(ctx, userID, req.StoreName)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			marketsdk.ErrInvalidToken.WriteError(w)
		case errors.Is(err, service.ErrSellerRoleMissing):
			log.Error("seller role missing from registry", "err", err)
			marketsdk.ErrServerError.WithMessage("Seller role is not configured").WriteError(w)
		default:
			log.Error("seller upgrade failed", "user_id", userID, "err", err)
			marketsdk.ErrServerError.WriteError(w)
		}
		return
	}

	resp := marketsdk.UpgradeResponse{
		Upgraded: result.Upgraded,
		Role:     result.Role.Name,
	}
	if result.Profile != nil {
		profile := toSellerProfileResponse(*result.Profile)
		resp.SellerProfile = &profile
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, resp)
}

// decodeUpgradeBody tolerates an empty body but rejects malformed JSON.
func decodeUpgradeBody(r *http.Request, req *marketsdk.UpgradeRequest) error {
	raw, err := io.ReadAll(io.LimitReader(r.Body, 1<<16))
	if err != nil {
		return err
	}
	if len(raw) == 0 {
		return nil
	}
	return json.Unmarshal(raw, req)
}
