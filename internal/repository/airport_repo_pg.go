package repository

import (
	"context"

	"github.com/Domenick1991/flightplanner/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

type AirportRepository interface {
	List(ctx context.Context) ([]domain.Airport, error)
	GetByIdentifier(ctx context.Context, identifier string) (*domain.Airport, error)
	Create(ctx context.Context, airport domain.Airport) error
	Update(ctx context.Context, identifier string, airport domain.Airport) error
	Delete(ctx context.Context, identifier string) error
}

type PGAirportRepository struct {
	db *pgxpool.Pool
}

func NewAirportRepository(db *pgxpool.Pool) AirportRepository {
	return &PGAirportRepository{db: db}
}

func (r *PGAirportRepository) List(ctx context.Context) ([]domain.Airport, error) {
	rows, err := r.db.Query(ctx, `SELECT identifier, name, latitude, longitude, frequencies, fuel_types FROM airports ORDER BY identifier`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	airports := make([]domain.Airport, 0)
	for rows.Next() {
		var a domain.Airport
		if err := rows.Scan(&a.Identifier, &a.Name, &a.Latitude, &a.Longitude, &a.Frequencies, &a.FuelTypes); err != nil {
			return nil, err
		}
		airports = append(airports, a)
	}
	return airports, rows.Err()
}

func (r *PGAirportRepository) GetByIdentifier(ctx context.Context, identifier string) (*domain.Airport, error) {
	row := r.db.QueryRow(ctx, `SELECT identifier, name, latitude, longitude, frequencies, fuel_types FROM airports WHERE upper(identifier)=upper($1)`, identifier)
	var a domain.Airport
	if err := row.Scan(&a.Identifier, &a.Name, &a.Latitude, &a.Longitude, &a.Frequencies, &a.FuelTypes); err != nil {
		return nil, translate(err, domain.ErrAirportNotFound)
	}
	return &a, nil
}

func (r *PGAirportRepository) Create(ctx context.Context, a domain.Airport) error {
	_, err := r.db.Exec(ctx, `INSERT INTO airports (identifier, name, latitude, longitude, frequencies, fuel_types)
		VALUES ($1, $2, $3, $4, $5, $6)`, a.Identifier, a.Name, a.Latitude, a.Longitude, a.Frequencies, a.FuelTypes)
	return translate(err, domain.ErrAirportNotFound)
}

func (r *PGAirportRepository) Update(ctx context.Context, identifier string, a domain.Airport) error {
	res, err := r.db.Exec(ctx, `UPDATE airports SET identifier=$1, name=$2, latitude=$3, longitude=$4, frequencies=$5, fuel_types=$6, updated_at=now()
		WHERE upper(identifier)=upper($7)`, a.Identifier, a.Name, a.Latitude, a.Longitude, a.Frequencies, a.FuelTypes, identifier)
	if err != nil {
		return translate(err, domain.ErrAirportNotFound)
	}
	if res.RowsAffected() == 0 {
		return domain.ErrAirportNotFound
	}
	return nil
}

func (r *PGAirportRepository) Delete(ctx context.Context, identifier string) error {
	res, err := r.db.Exec(ctx, `DELETE FROM airports WHERE upper(identifier)=upper($1)`, identifier)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return domain.ErrAirportNotFound
	}
	return nil
}

var _ AirportRepository = (*PGAirportRepository)(nil)
