package service

import (
	"context"

	"github.com/openlocal/market/internal/market/domain"
	"github.com/openlocal/market/internal/market/store"
)

type RolesService struct {
	Store store.Store
}

// GetRoleByName fetches a role by its stable name.
func (s *RolesService) GetRoleByName(ctx context.Context, name string) (domain.Role, error) {
	return s.Store.Roles().GetRoleByName(ctx, name)
}

// ListAll returns all roles in the registry.
func (s *RolesService) ListAll(ctx context.Context) ([]domain.Role, error) {
	return s.Store.Roles().ListAll(ctx)
}
