package sqlite

import (
	"context"
	"time"

	"github.com/openlocal/market/internal/market/domain"
)

type sellerProfilesRepo struct {
	q querier
}

func (r *sellerProfilesRepo) GetByUserID(ctx context.Context, userID int64) (domain.SellerProfile, error) {
	var p domain.SellerProfile
	err := r.q.QueryRowContext(ctx, `
		SELECT id, user_id, store_name, bio, is_verified, is_active, created_at, updated_at
		FROM seller_profiles WHERE user_id = ?`, userID).Scan(
		&p.ID, &p.UserID, &p.StoreName, &p.Bio,
		&p.IsVerified, &p.IsActive, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return domain.SellerProfile{}, mapNotFound(err)
	}
	return p, nil
}

func (r *sellerProfilesRepo) Create(ctx context.Context, p domain.SellerProfile) (int64, error) {
	now := time.Now().UTC()
	res, err := r.q.ExecContext(ctx, `
		INSERT INTO seller_profiles (user_id, store_name, bio, is_verified, is_active, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		p.UserID, p.StoreName, p.Bio, p.IsVerified, p.IsActive, now, now,
	)
	if err != nil {
		return 0, mapConstraint(err)
	}
	return res.LastInsertId()
}

func (r *sellerProfilesRepo) SetVerified(ctx context.Context, profileID int64, verified bool) error {
	_, err := r.q.ExecContext(ctx,
		`UPDATE seller_profiles SET is_verified = ?, updated_at = ? WHERE id = ?`,
		verified, time.Now().UTC(), profileID)
	return err
}

func (r *sellerProfilesRepo) SetActive(ctx context.Context, profileID int64, active bool) error {
	_, err := r.q.ExecContext(ctx,
		`UPDATE seller_profiles SET is_active = ?, updated_at = ? WHERE id = ?`,
		active, time.Now().UTC(), profileID)
	return err
}
