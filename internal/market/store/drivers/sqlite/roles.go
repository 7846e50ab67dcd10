package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/openlocal/market/internal/market/domain"
)

type rolesRepo struct {
	q querier
}

const roleColumns = `id, name, display_name, can_sell, can_moderate, can_access_admin, created_at, updated_at`

func scanRole(row *sql.Row) (domain.Role, error) {
	var role domain.Role
	err := row.Scan(
		&role.ID, &role.Name, &role.DisplayName,
		&role.CanSell, &role.CanModerate, &role.CanAccessAdmin,
		&role.CreatedAt, &role.UpdatedAt,
	)
	if err != nil {
		return domain.Role{}, mapNotFound(err)
	}
	return role, nil
}

func (r *rolesRepo) GetRoleByID(ctx context.Context, id int64) (domain.Role, error) {
	return scanRole(r.q.QueryRowContext(ctx,
		`SELECT `+roleColumns+` FROM roles WHERE id = ?`, id))
}

func (r *rolesRepo) GetRoleByName(ctx context.Context, name string) (domain.Role, error) {
	return scanRole(r.q.QueryRowContext(ctx,
		`SELECT `+roleColumns+` FROM roles WHERE name = ?`, name))
}

func (r *rolesRepo) ListAll(ctx context.Context) ([]domain.Role, error) {
	rows, err := r.q.QueryContext(ctx,
		`SELECT `+roleColumns+` FROM roles ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var roles []domain.Role
	for rows.Next() {
		var role domain.Role
		err := rows.Scan(
			&role.ID, &role.Name, &role.DisplayName,
			&role.CanSell, &role.CanModerate, &role.CanAccessAdmin,
			&role.CreatedAt, &role.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		roles = append(roles, role)
	}
	return roles, rows.Err()
}

func (r *rolesRepo) CreateRole(ctx context.Context, role domain.Role) (int64, error) {
	now := time.Now().UTC()
	res, err := r.q.ExecContext(ctx, `
		INSERT INTO roles (name, display_name, can_sell, can_moderate, can_access_admin, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		role.Name, role.DisplayName, role.CanSell, role.CanModerate,
		role.CanAccessAdmin, now, now,
	)
	if err != nil {
		return 0, mapConstraint(err)
	}
	return res.LastInsertId()
}

func (r *rolesRepo) IsEmpty(ctx context.Context) (bool, error) {
	var count int64
	if err := r.q.QueryRowContext(ctx, `SELECT COUNT(*) FROM roles`).Scan(&count); err != nil {
		return false, err
	}
	return count == 0, nil
}
