package repository

import (
	"context"

	"github.com/Domenick1991/flightplanner/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

type AirplaneRepository interface {
	List(ctx context.Context) ([]domain.Airplane, error)
	GetByKey(ctx context.Context, key int) (*domain.Airplane, error)
	Create(ctx context.Context, airplane domain.Airplane) error
	Delete(ctx context.Context, key int) error
}

type PGAirplaneRepository struct {
	db *pgxpool.Pool
}

func NewAirplaneRepository(db *pgxpool.Pool) AirplaneRepository {
	return &PGAirplaneRepository{db: db}
}

func (r *PGAirplaneRepository) List(ctx context.Context) ([]domain.Airplane, error) {
	rows, err := r.db.Query(ctx, `SELECT key, make_and_model, type, tank_capacity, burn_rate, airspeed FROM airplanes ORDER BY key`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	airplanes := make([]domain.Airplane, 0)
	for rows.Next() {
		var p domain.Airplane
		if err := rows.Scan(&p.Key, &p.MakeAndModel, &p.Type, &p.TankCapacity, &p.BurnRate, &p.Airspeed); err != nil {
			return nil, err
		}
		airplanes = append(airplanes, p)
	}
	return airplanes, rows.Err()
}

func (r *PGAirplaneRepository) GetByKey(ctx context.Context, key int) (*domain.Airplane, error) {
	row := r.db.QueryRow(ctx, `SELECT key, make_and_model, type, tank_capacity, burn_rate, airspeed FROM airplanes WHERE key=$1`, key)
	var p domain.Airplane
	if err := row.Scan(&p.Key, &p.MakeAndModel, &p.Type, &p.TankCapacity, &p.BurnRate, &p.Airspeed); err != nil {
		return nil, translate(err, domain.ErrAirplaneNotFound)
	}
	return &p, nil
}

func (r *PGAirplaneRepository) Create(ctx context.Context, p domain.Airplane) error {
	_, err := r.db.Exec(ctx, `INSERT INTO airplanes (key, make_and_model, type, tank_capacity, burn_rate, airspeed)
		VALUES ($1, $2, $3, $4, $5, $6)`, p.Key, p.MakeAndModel, int(p.Type), p.TankCapacity, p.BurnRate, p.Airspeed)
	return translate(err, domain.ErrAirplaneNotFound)
}

func (r *PGAirplaneRepository) Delete(ctx context.Context, key int) error {
	res, err := r.db.Exec(ctx, `DELETE FROM airplanes WHERE key=$1`, key)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return domain.ErrAirplaneNotFound
	}
	return nil
}

var _ AirplaneRepository = (*PGAirplaneRepository)(nil)
