package order

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"dispatch/internal/entities"
	"dispatch/internal/repository"
	"dispatch/internal/service/order"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const orderColumns = `id, customer_id, tracking_number, status, driver_id, driver_name, assignment_method,
		pickup_street, pickup_commune, pickup_region, pickup_lat, pickup_lon,
		dropoff_street, dropoff_commune, dropoff_region, dropoff_lat, dropoff_lon,
		package_type, package_description, weight_kg, length_cm, width_cm, height_cm, fragile,
		distance_km, cost, scheduled_for, created_at,
		assigned_at, picked_up_at, in_transit_at, delivered_at, cancelled_at, updated_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, orderEntity *entities.Order) (string, error) {
	orderModel := FromDomain(orderEntity)
	query := `INSERT INTO orders (id, customer_id, tracking_number, status,
			pickup_street, pickup_commune, pickup_region, pickup_lat, pickup_lon,
			dropoff_street, dropoff_commune, dropoff_region, dropoff_lat, dropoff_lon,
			package_type, package_description, weight_kg, length_cm, width_cm, height_cm, fragile,
			distance_km, cost, scheduled_for)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12,
			$13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24)
		RETURNING id`

	var id string
	err := r.querier.QueryRow(
		ctx,
		query,
		orderModel.ID,
		orderModel.CustomerID,
		orderModel.TrackingNumber,
		orderModel.Status,
		orderModel.PickupStreet,
		orderModel.PickupCommune,
		orderModel.PickupRegion,
		orderModel.PickupLat,
		orderModel.PickupLon,
		orderModel.DropoffStreet,
		orderModel.DropoffCommune,
		orderModel.DropoffRegion,
		orderModel.DropoffLat,
		orderModel.DropoffLon,
		orderModel.PackageType,
		orderModel.PackageDescription,
		orderModel.WeightKg,
		orderModel.LengthCm,
		orderModel.WidthCm,
		orderModel.HeightCm,
		orderModel.Fragile,
		orderModel.DistanceKm,
		orderModel.Cost,
		orderModel.ScheduledFor,
	).Scan(&id)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return "", order.ErrConflict
		}
		return "", fmt.Errorf("unexpected order repository create error: %w", err)
	}

	return id, nil
}

func (r *Repository) Update(ctx context.Context, orderModifyEntity entities.OrderModify) (*entities.Order, error) {
	orderModifyModel := FromDomainModify(&orderModifyEntity)

	builder := qb.
		Update("orders")

	if orderModifyModel.TrackingNumber != nil {
		builder = builder.Set("tracking_number", orderModifyModel.TrackingNumber)
	}
	if orderModifyModel.Status != nil {
		builder = builder.Set("status", orderModifyModel.Status)
	}
	if orderModifyModel.DriverID != nil {
		builder = builder.Set("driver_id", orderModifyModel.DriverID)
	}
	if orderModifyModel.DriverName != nil {
		builder = builder.Set("driver_name", orderModifyModel.DriverName)
	}
	if orderModifyModel.AssignmentMethod != nil {
		builder = builder.Set("assignment_method", orderModifyModel.AssignmentMethod)
	}
	if orderModifyModel.DistanceKm != nil {
		builder = builder.Set("distance_km", orderModifyModel.DistanceKm)
	}
	if orderModifyModel.Cost != nil {
		builder = builder.Set("cost", orderModifyModel.Cost)
	}
	if orderModifyModel.ScheduledFor != nil {
		builder = builder.Set("scheduled_for", orderModifyModel.ScheduledFor)
	}
	if orderModifyModel.AssignedAt != nil {
		builder = builder.Set("assigned_at", orderModifyModel.AssignedAt)
	}
	if orderModifyModel.PickedUpAt != nil {
		builder = builder.Set("picked_up_at", orderModifyModel.PickedUpAt)
	}
	if orderModifyModel.InTransitAt != nil {
		builder = builder.Set("in_transit_at", orderModifyModel.InTransitAt)
	}
	if orderModifyModel.DeliveredAt != nil {
		builder = builder.Set("delivered_at", orderModifyModel.DeliveredAt)
	}
	if orderModifyModel.CancelledAt != nil {
		builder = builder.Set("cancelled_at", orderModifyModel.CancelledAt)
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	builder = builder.
		Where(sq.Eq{"id": orderModifyModel.ID}).
		Suffix("RETURNING " + orderColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository update error: %w", err)
	}

	var orderModel OrderDB
	err = r.querier.QueryRow(ctx, query, args...).Scan(scanTargets(&orderModel)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrOrderNotFound
		}

		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, order.ErrConflict
		}

		return nil, fmt.Errorf("unexpected order repository update error: %w", err)
	}

	return ToDomain(&orderModel), nil
}

func (r *Repository) GetByID(ctx context.Context, id string) (*entities.Order, error) {
	query := `SELECT ` + orderColumns + `
		FROM orders
		WHERE id = $1`

	var orderModel OrderDB
	err := r.querier.QueryRow(ctx, query, id).Scan(scanTargets(&orderModel)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrOrderNotFound
		}

		return nil, fmt.Errorf("unexpected order repository getbyid error: %w", err)
	}

	return ToDomain(&orderModel), nil
}

func (r *Repository) GetAll(ctx context.Context, filter entities.OrderFilter) ([]entities.Order, error) {
	builder := qb.
		Select(orderColumns).
		From("orders").
		OrderBy("created_at", "id")

	if filter.CustomerID != nil {
		builder = builder.Where(sq.Eq{"customer_id": *filter.CustomerID})
	}
	if filter.DriverID != nil {
		builder = builder.Where(sq.Eq{"driver_id": *filter.DriverID})
	}
	if filter.Status != nil {
		builder = builder.Where(sq.Eq{"status": filter.Status.String()})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository getall error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository getall error: %w", err)
	}
	defer rows.Close()

	orderModels := make([]OrderDB, 0, 8)
	for rows.Next() {
		var orderModel OrderDB
		err := rows.Scan(scanTargets(&orderModel)...)
		if err != nil {
			return nil, fmt.Errorf("unexpected order repository getall error: %w", err)
		}
		orderModels = append(orderModels, orderModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository getall error: %w", err)
	}

	return ToDomainList(orderModels), nil
}

func scanTargets(o *OrderDB) []interface{} {
	return []interface{}{
		&o.ID,
		&o.CustomerID,
		&o.TrackingNumber,
		&o.Status,
		&o.DriverID,
		&o.DriverName,
		&o.AssignmentMethod,
		&o.PickupStreet,
		&o.PickupCommune,
		&o.PickupRegion,
		&o.PickupLat,
		&o.PickupLon,
		&o.DropoffStreet,
		&o.DropoffCommune,
		&o.DropoffRegion,
		&o.DropoffLat,
		&o.DropoffLon,
		&o.PackageType,
		&o.PackageDescription,
		&o.WeightKg,
		&o.LengthCm,
		&o.WidthCm,
		&o.HeightCm,
		&o.Fragile,
		&o.DistanceKm,
		&o.Cost,
		&o.ScheduledFor,
		&o.CreatedAt,
		&o.AssignedAt,
		&o.PickedUpAt,
		&o.InTransitAt,
		&o.DeliveredAt,
		&o.CancelledAt,
		&o.UpdatedAt,
	}
}
