package sqlite

import (
	"context"
	"time"

	"github.com/openlocal/market/internal/market/domain"
)

type appointmentsRepo struct {
	q querier
}

func (r *appointmentsRepo) Create(ctx context.Context, a domain.Appointment) (int64, error) {
	now := time.Now().UTC()
	res, err := r.q.ExecContext(ctx, `
		INSERT INTO seller_appointments (buyer_id, seller_profile_id, starts_at, ends_at, status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		a.BuyerID, a.SellerProfileID, a.StartsAt.UTC(), a.EndsAt.UTC(),
		a.Status, now, now,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r *appointmentsRepo) ListByBuyer(ctx context.Context, buyerID int64) ([]domain.Appointment, error) {
	rows, err := r.q.QueryContext(ctx, `
		SELECT id, buyer_id, seller_profile_id, starts_at, ends_at, status, created_at, updated_at
		FROM seller_appointments WHERE buyer_id = ?
		ORDER BY starts_at DESC`, buyerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var appointments []domain.Appointment
	for rows.Next() {
		var a domain.Appointment
		err := rows.Scan(
			&a.ID, &a.BuyerID, &a.SellerProfileID,
			&a.StartsAt, &a.EndsAt, &a.Status, &a.CreatedAt, &a.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		appointments = append(appointments, a)
	}
	return appointments, rows.Err()
}

func (r *appointmentsRepo) UpdateStatus(ctx context.Context, appointmentID int64, status string) error {
	_, err := r.q.ExecContext(ctx,
		`UPDATE seller_appointments SET status = ?, updated_at = ? WHERE id = ?`,
		status, time.Now().UTC(), appointmentID)
	return err
}

func (r *appointmentsRepo) DeleteExpiredPending(ctx context.Context) error {
	_, err := r.q.ExecContext(ctx,
		`DELETE FROM seller_appointments WHERE status = ? AND ends_at <= ?`,
		domain.AppointmentPending, time.Now().UTC())
	return err
}
