package http

import (
	"net/http"

	"github.com/openlocal/market/internal/market/service"
	"github.com/openlocal/market/pkg/httpx"
	"github.com/openlocal/market/pkg/marketsdk"
	"github.com/openlocal/market/pkg/slogx"
)

type RolesHandler struct {
	RolesService *service.RolesService
}

// ServeHTTP godoc
//
//	@Summary		List roles
//	@Description	Returns the role registry with permission flags. Public
//	@Description	reference data.
//	@Tags			Roles
//	@Produce		json
//	@Success		200	{object}	marketsdk.RolesResponse	"roles"
//	@Failure		500	{object}	marketsdk.APIError		"Internal error"
//	@Router			/v1/roles [get].
func (h *RolesHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	roles, err := h.RolesService.ListAll(ctx)
	if err != nil {
		log.Error("failed to list roles", "err", err)
		marketsdk.ErrServerError.WriteError(w)
		return
	}

	resp := marketsdk.RolesResponse{Roles: make([]marketsdk.RoleResponse, 0, len(roles))}
	for _, role := range roles {
		resp.Roles = append(resp.Roles, toRoleResponse(role))
	}

	httpx.WriteJSON(w, http.StatusOK, resp)
}
