package sqlite

import (
	"context"

	"github.com/openlocal/market/internal/market/domain"
)

type locationsRepo struct {
	q querier
}

func (r *locationsRepo) GetCountryByID(ctx context.Context, id int64) (domain.Country, error) {
	var c domain.Country
	err := r.q.QueryRowContext(ctx,
		`SELECT id, name FROM countries WHERE id = ?`, id).Scan(&c.ID, &c.Name)
	if err != nil {
		return domain.Country{}, mapNotFound(err)
	}
	return c, nil
}

func (r *locationsRepo) GetStateByID(ctx context.Context, id int64) (domain.State, error) {
	var s domain.State
	err := r.q.QueryRowContext(ctx,
		`SELECT id, country_id, name FROM states WHERE id = ?`, id).
		Scan(&s.ID, &s.CountryID, &s.Name)
	if err != nil {
		return domain.State{}, mapNotFound(err)
	}
	return s, nil
}

func (r *locationsRepo) GetCityByID(ctx context.Context, id int64) (domain.City, error) {
	var c domain.City
	err := r.q.QueryRowContext(ctx,
		`SELECT id, state_id, name FROM cities WHERE id = ?`, id).
		Scan(&c.ID, &c.StateID, &c.Name)
	if err != nil {
		return domain.City{}, mapNotFound(err)
	}
	return c, nil
}

func (r *locationsRepo) ListCountries(ctx context.Context) ([]domain.Country, error) {
	rows, err := r.q.QueryContext(ctx, `SELECT id, name FROM countries ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var countries []domain.Country
	for rows.Next() {
		var c domain.Country
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, err
		}
		countries = append(countries, c)
	}
	return countries, rows.Err()
}

func (r *locationsRepo) CreateCountry(ctx context.Context, c domain.Country) (int64, error) {
	res, err := r.q.ExecContext(ctx,
		`INSERT INTO countries (name) VALUES (?)`, c.Name)
	if err != nil {
		return 0, mapConstraint(err)
	}
	return res.LastInsertId()
}

func (r *locationsRepo) CreateState(ctx context.Context, s domain.State) (int64, error) {
	res, err := r.q.ExecContext(ctx,
		`INSERT INTO states (country_id, name) VALUES (?, ?)`, s.CountryID, s.Name)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r *locationsRepo) CreateCity(ctx context.Context, c domain.City) (int64, error) {
	res, err := r.q.ExecContext(ctx,
		`INSERT INTO cities (state_id, name) VALUES (?, ?)`, c.StateID, c.Name)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}
