package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/openlocal/market/internal/market/domain"
	"github.com/openlocal/market/internal/market/store"
)

type usersRepo struct {
	q querier
}

const userColumns = `id, name, email, password_hash, phone, bio,
	email_verified_at, role_id, location_display, location_data,
	country_id, state_id, city_id, address_line, postal_code,
	latitude, longitude, google_place_id, created_at, updated_at`

func (r *usersRepo) scanUser(row *sql.Row) (domain.User, error) {
	var (
		u            domain.User
		verifiedAt   sql.NullTime
		locationData sql.NullString
		countryID    sql.NullInt64
		stateID      sql.NullInt64
		cityID       sql.NullInt64
		latitude     sql.NullFloat64
		longitude    sql.NullFloat64
	)

	err := row.Scan(
		&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Phone, &u.Bio,
		&verifiedAt, &u.RoleID, &u.LocationDisplay, &locationData,
		&countryID, &stateID, &cityID, &u.AddressLine, &u.PostalCode,
		&latitude, &longitude, &u.GooglePlaceID, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}

	u.EmailVerifiedAt = mapNullTimePtr(verifiedAt)
	u.CountryID = mapNullInt64Ptr(countryID)
	u.StateID = mapNullInt64Ptr(stateID)
	u.CityID = mapNullInt64Ptr(cityID)
	u.Latitude = mapNullFloatPtr(latitude)
	u.Longitude = mapNullFloatPtr(longitude)

	u.LocationData, err = unmarshalLocationData(locationData)
	if err != nil {
		return domain.User{}, err
	}

	return u, nil
}

func (r *usersRepo) GetUserByID(ctx context.Context, id int64) (domain.User, error) {
	row := r.q.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = ?`, id)
	return r.scanUser(row)
}

func (r *usersRepo) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	row := r.q.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = ?`, email)
	return r.scanUser(row)
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) (int64, error) {
	locationData, err := marshalLocationData(u.LocationData)
	if err != nil {
		return 0, err
	}

	now := time.Now().UTC()
	res, err := r.q.ExecContext(ctx, `
		INSERT INTO users (
			name, email, password_hash, phone, bio, email_verified_at,
			role_id, location_display, location_data, country_id, state_id,
			city_id, address_line, postal_code, latitude, longitude,
			google_place_id, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		u.Name, u.Email, u.PasswordHash, u.Phone, u.Bio,
		mapOptionalTime(u.EmailVerifiedAt), u.RoleID, u.LocationDisplay,
		locationData, mapOptionalInt64(u.CountryID), mapOptionalInt64(u.StateID),
		mapOptionalInt64(u.CityID), u.AddressLine, u.PostalCode,
		mapOptionalCoord(u.Latitude), mapOptionalCoord(u.Longitude),
		u.GooglePlaceID, now, now,
	)
	if err != nil {
		return 0, mapConstraint(err)
	}
	return res.LastInsertId()
}

func (r *usersRepo) UpdateRole(ctx context.Context, userID, roleID int64) error {
	_, err := r.q.ExecContext(ctx,
		`UPDATE users SET role_id = ?, updated_at = ? WHERE id = ?`,
		roleID, time.Now().UTC(), userID)
	return err
}

func (r *usersRepo) UpdateLocation(ctx context.Context, userID int64, loc store.UserLocation) error {
	locationData, err := marshalLocationData(loc.LocationData)
	if err != nil {
		return err
	}

	_, err = r.q.ExecContext(ctx, `
		UPDATE users SET
			location_display = ?, location_data = ?, country_id = ?,
			state_id = ?, city_id = ?, address_line = ?, postal_code = ?,
			latitude = ?, longitude = ?, google_place_id = ?, updated_at = ?
		WHERE id = ?`,
		loc.LocationDisplay, locationData, mapOptionalInt64(loc.CountryID),
		mapOptionalInt64(loc.StateID), mapOptionalInt64(loc.CityID),
		loc.AddressLine, loc.PostalCode, mapOptionalCoord(loc.Latitude),
		mapOptionalCoord(loc.Longitude), loc.GooglePlaceID,
		time.Now().UTC(), userID,
	)
	return err
}

func (r *usersRepo) SetEmailVerificationToken(ctx context.Context, userID int64, fingerprint string, expiresAt time.Time) error {
	_, err := r.q.ExecContext(ctx,
		`UPDATE users SET email_verify_token = ?, email_verify_expires_at = ?, updated_at = ? WHERE id = ?`,
		fingerprint, expiresAt.UTC(), time.Now().UTC(), userID)
	return err
}

func (r *usersRepo) GetUserByVerificationToken(ctx context.Context, fingerprint string) (domain.User, error) {
	row := r.q.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users
		 WHERE email_verify_token = ? AND email_verify_expires_at > ?`,
		fingerprint, time.Now().UTC())
	return r.scanUser(row)
}

func (r *usersRepo) MarkEmailVerified(ctx context.Context, userID int64) error {
	now := time.Now().UTC()
	_, err := r.q.ExecContext(ctx, `
		UPDATE users SET
			email_verified_at = ?, email_verify_token = NULL,
			email_verify_expires_at = NULL, updated_at = ?
		WHERE id = ?`,
		now, now, userID)
	return err
}

func (r *usersRepo) ClearExpiredVerificationTokens(ctx context.Context) error {
	_, err := r.q.ExecContext(ctx, `
		UPDATE users SET email_verify_token = NULL, email_verify_expires_at = NULL
		WHERE email_verify_token IS NOT NULL AND email_verify_expires_at <= ?`,
		time.Now().UTC())
	return err
}

func (r *usersRepo) DeleteUser(ctx context.Context, userID int64) error {
	_, err := r.q.ExecContext(ctx, `DELETE FROM users WHERE id = ?`, userID)
	return err
}

func (r *usersRepo) IsEmpty(ctx context.Context) (bool, error) {
	var count int64
	if err := r.q.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&count); err != nil {
		return false, err
	}
	return count == 0, nil
}
