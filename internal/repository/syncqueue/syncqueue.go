package syncqueue

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"dispatch/internal/entities"
)

var ErrItemNotFound = errors.New("sync item not found")

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, item entities.SyncItem) (int64, error) {
	query := `INSERT INTO sync_queue (type, payload)
		VALUES ($1, $2)
		RETURNING id`

	var id int64
	err := r.querier.QueryRow(ctx, query, item.Type.String(), item.Payload).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("unexpected sync queue repository create error: %w", err)
	}

	return id, nil
}

// GetOldest returns up to limit items in insertion order.
func (r *Repository) GetOldest(ctx context.Context, limit int) ([]entities.SyncItem, error) {
	query := `SELECT id, type, payload, retries, created_at
		FROM sync_queue
		ORDER BY id
		LIMIT $1`

	rows, err := r.querier.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("unexpected sync queue repository getoldest error: %w", err)
	}
	defer rows.Close()

	itemModels := make([]SyncItemDB, 0, limit)
	for rows.Next() {
		var itemModel SyncItemDB
		err := rows.Scan(
			&itemModel.ID,
			&itemModel.Type,
			&itemModel.Payload,
			&itemModel.Retries,
			&itemModel.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected sync queue repository getoldest error: %w", err)
		}
		itemModels = append(itemModels, itemModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected sync queue repository getoldest error: %w", err)
	}

	return ToDomainList(itemModels), nil
}

func (r *Repository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM sync_queue WHERE id = $1`

	result, err := r.querier.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("unexpected sync queue repository delete error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrItemNotFound
	}

	return nil
}

func (r *Repository) IncrementRetries(ctx context.Context, id int64) (int, error) {
	query := `UPDATE sync_queue
		SET retries = retries + 1
		WHERE id = $1
		RETURNING retries`

	var retries int
	err := r.querier.QueryRow(ctx, query, id).Scan(&retries)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, ErrItemNotFound
		}
		return 0, fmt.Errorf("unexpected sync queue repository increment retries error: %w", err)
	}

	return retries, nil
}

func (r *Repository) Count(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM sync_queue`

	var count int64
	err := r.querier.QueryRow(ctx, query).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("unexpected sync queue repository count error: %w", err)
	}

	return count, nil
}
