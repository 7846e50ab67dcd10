package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/openlocal/market/internal/market/domain"
	"github.com/openlocal/market/internal/market/service"
	"github.com/openlocal/market/pkg/httpx"
	"github.com/openlocal/market/pkg/marketsdk"
	"github.com/openlocal/market/pkg/slogx"
)

type BootstrapHandler struct {
	BootstrapService *service.BootstrapService
}

// ServeHTTP godoc
//
//	@Summary		Bootstrap the system
//	@Description	One-shot seed of the role registry, reference geography
//	@Description	and the initial admin account. Requires the configured
//	@Description	X-Bootstrap-Token header and an empty system.
//	@Tags			System
//	@Accept			json
//	@Produce		json
//	@Param			X-Bootstrap-Token	header		string						true	"Pre-configured bootstrap token"
//	@Param			request				body		marketsdk.BootstrapRequest	true	"Seed data"
//	@Success		201					{object}	marketsdk.BootstrapResponse	"admin_user_id, roles, countries"
//	@Failure		400					{object}	marketsdk.APIError			"Malformed body or validation failure"
//	@Failure		401					{object}	marketsdk.APIError			"Missing or invalid token, or already bootstrapped"
//	@Failure		404					{object}	marketsdk.APIError			"Bootstrap not enabled (no token configured)"
//	@Failure		500					{object}	marketsdk.APIError			"Internal error"
//	@Router			/v1/bootstrap [post].
func (h *BootstrapHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	if h.BootstrapService.Token == "" {
		marketsdk.ErrNotFound.WithMessage("Bootstrap endpoint is not enabled").WriteError(w)
		return
	}

	token := r.Header.Get("X-Bootstrap-Token")
	if token == "" {
		marketsdk.ErrInvalidToken.WithMessage("Bootstrap token is required in X-Bootstrap-Token header").WriteError(w)
		return
	}

	var req marketsdk.BootstrapRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	result, err := h.BootstrapService.Bootstrap(ctx, token, domain.BootstrapData{
		AdminName:     strings.TrimSpace(req.AdminName),
		AdminEmail:    strings.ToLower(strings.TrimSpace(req.AdminEmail)),
		AdminPassword: req.AdminPassword,
		Countries:     toCountryDefinitions(req.Countries),
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrBootstrapAlready):
			marketsdk.ErrInvalidToken.WithMessage("System has already been bootstrapped").WriteError(w)
		case errors.Is(err, service.ErrBootstrapUnauthorized):
			marketsdk.ErrInvalidToken.WithMessage("Invalid bootstrap token").WriteError(w)
		default:
			log.Error("bootstrap failed", "err", err)
			marketsdk.ErrServerError.WriteError(w)
		}
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusCreated, marketsdk.BootstrapResponse{
		AdminUserID: result.AdminUserID,
		Roles:       result.Roles,
		Countries:   result.Countries,
	})
}

func toCountryDefinitions(in []marketsdk.CountryDefinition) []domain.CountryDefinition {
	out := make([]domain.CountryDefinition, 0, len(in))
	for _, country := range in {
		def := domain.CountryDefinition{Name: strings.TrimSpace(country.Name)}
		for _, state := range country.States {
			def.States = append(def.States, domain.StateDefinition{
				Name:   strings.TrimSpace(state.Name),
				Cities: state.Cities,
			})
		}
		out = append(out, def)
	}
	return out
}
