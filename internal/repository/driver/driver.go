package driver

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"dispatch/internal/entities"
	"dispatch/internal/repository"
	"dispatch/internal/service/driverpool"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const driverColumns = `id, name, phone, status, lat, lon,
		vehicle_type, vehicle_fuel, vehicle_plate, max_weight_kg, max_volume_l,
		rating, active_orders, max_active_orders, total_deliveries, created_at, updated_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, driverModifyEntity entities.DriverModify) (string, error) {
	driverModifyModel := FromDomainModify(&driverModifyEntity)
	query := `INSERT INTO drivers (id, name, phone, status, lat, lon,
			vehicle_type, vehicle_fuel, vehicle_plate, max_weight_kg, max_volume_l,
			rating, max_active_orders)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, COALESCE($12, 0), $13)
		RETURNING id`

	var id string
	err := r.querier.QueryRow(
		ctx,
		query,
		driverModifyModel.ID,
		driverModifyModel.Name,
		driverModifyModel.Phone,
		driverModifyModel.Status,
		driverModifyModel.Lat,
		driverModifyModel.Lon,
		driverModifyModel.VehicleType,
		driverModifyModel.VehicleFuel,
		driverModifyModel.VehiclePlate,
		driverModifyModel.MaxWeightKg,
		driverModifyModel.MaxVolumeL,
		driverModifyModel.Rating,
		driverModifyModel.MaxActiveOrders,
	).Scan(&id)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return "", driverpool.ErrConflict
		}
		return "", fmt.Errorf("unexpected driver repository create error: %w", err)
	}

	return id, nil
}

func (r *Repository) Update(ctx context.Context, driverModifyEntity entities.DriverModify) (*entities.Driver, error) {
	driverModifyModel := FromDomainModify(&driverModifyEntity)

	builder := qb.
		Update("drivers")

	if driverModifyModel.Name != nil {
		builder = builder.Set("name", driverModifyModel.Name)
	}
	if driverModifyModel.Phone != nil {
		builder = builder.Set("phone", driverModifyModel.Phone)
	}
	if driverModifyModel.Status != nil {
		builder = builder.Set("status", driverModifyModel.Status)
	}
	if driverModifyModel.Lat != nil {
		builder = builder.Set("lat", driverModifyModel.Lat)
		builder = builder.Set("lon", driverModifyModel.Lon)
	}
	if driverModifyModel.VehicleType != nil {
		builder = builder.Set("vehicle_type", driverModifyModel.VehicleType)
		builder = builder.Set("vehicle_fuel", driverModifyModel.VehicleFuel)
		builder = builder.Set("vehicle_plate", driverModifyModel.VehiclePlate)
		builder = builder.Set("max_weight_kg", driverModifyModel.MaxWeightKg)
		builder = builder.Set("max_volume_l", driverModifyModel.MaxVolumeL)
	}
	if driverModifyModel.Rating != nil {
		builder = builder.Set("rating", driverModifyModel.Rating)
	}
	if driverModifyModel.ActiveOrders != nil {
		builder = builder.Set("active_orders", driverModifyModel.ActiveOrders)
	}
	if driverModifyModel.MaxActiveOrders != nil {
		builder = builder.Set("max_active_orders", driverModifyModel.MaxActiveOrders)
	}
	if driverModifyModel.TotalDeliveries != nil {
		builder = builder.Set("total_deliveries", driverModifyModel.TotalDeliveries)
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	builder = builder.
		Where(sq.Eq{"id": driverModifyModel.ID}).
		Suffix("RETURNING " + driverColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected driver repository update error: %w", err)
	}

	var driverModel DriverDB
	err = r.querier.QueryRow(ctx, query, args...).Scan(scanTargets(&driverModel)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, driverpool.ErrDriverNotFound
		}

		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, driverpool.ErrConflict
		}

		return nil, fmt.Errorf("unexpected driver repository update error: %w", err)
	}

	return ToDomain(&driverModel), nil
}

func (r *Repository) GetByID(ctx context.Context, id string) (*entities.Driver, error) {
	query := `SELECT ` + driverColumns + `
		FROM drivers
		WHERE id = $1`

	var driverModel DriverDB
	err := r.querier.QueryRow(ctx, query, id).Scan(scanTargets(&driverModel)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, driverpool.ErrDriverNotFound
		}

		return nil, fmt.Errorf("unexpected driver repository getbyid error: %w", err)
	}

	return ToDomain(&driverModel), nil
}

func (r *Repository) GetAll(ctx context.Context) ([]entities.Driver, error) {
	query := `SELECT ` + driverColumns + `
		FROM drivers
		ORDER BY created_at, id`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected driver repository getall error: %w", err)
	}
	defer rows.Close()

	driverModels := make([]DriverDB, 0, 8)
	for rows.Next() {
		var driverModel DriverDB
		err := rows.Scan(scanTargets(&driverModel)...)
		if err != nil {
			return nil, fmt.Errorf("unexpected driver repository getall error: %w", err)
		}
		driverModels = append(driverModels, driverModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected driver repository getall error: %w", err)
	}

	return ToDomainList(driverModels), nil
}

// MarkOfflineNotUpdatedSince flips stale non-offline drivers to offline
// in one statement. Returns how many rows changed.
func (r *Repository) MarkOfflineNotUpdatedSince(ctx context.Context, cutoff time.Time) (int64, error) {
	query := `UPDATE drivers
		SET status = 'offline',
			updated_at = NOW()
		WHERE status != 'offline'
		AND updated_at < $1`

	result, err := r.querier.Exec(ctx, query, cutoff)
	if err != nil {
		return 0, fmt.Errorf("unexpected driver repository mark offline error: %w", err)
	}

	return result.RowsAffected(), nil
}

func scanTargets(d *DriverDB) []interface{} {
	return []interface{}{
		&d.ID,
		&d.Name,
		&d.Phone,
		&d.Status,
		&d.Lat,
		&d.Lon,
		&d.VehicleType,
		&d.VehicleFuel,
		&d.VehiclePlate,
		&d.MaxWeightKg,
		&d.MaxVolumeL,
		&d.Rating,
		&d.ActiveOrders,
		&d.MaxActiveOrders,
		&d.TotalDeliveries,
		&d.CreatedAt,
		&d.UpdatedAt,
	}
}
