package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hostelops/washline/internal/app/models"
	"github.com/hostelops/washline/internal/pkg/logger"
)

// ItemRepository handles lost-and-found listings
type ItemRepository struct {
	db Querier
	sb squirrel.StatementBuilderType
}

// NewItemRepository creates a new ItemRepository
func NewItemRepository(db *pgxpool.Pool) *ItemRepository {
	return &ItemRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// CreateItem inserts a new listing
func (r *ItemRepository) CreateItem(ctx context.Context, item *models.Item) error {
	sql, args, err := r.sb.Insert("lost_found_items").
		Columns("tag", "description", "image_url", "roll_no", "hostel_id", "room_no", "phone_no").
		Values(item.Tag, item.Description, item.ImageURL, item.RollNo, item.HostelID, item.RoomNo, item.PhoneNo).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build insert item query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&item.ID, &item.CreatedAt); err != nil {
		logger.Error().Err(err).Str("tag", string(item.Tag)).Msg("Error inserting lost-and-found item")
		return fmt.Errorf("error creating item: %w", err)
	}

	return nil
}

// ListByTag returns all listings under one tag, most recent first
func (r *ItemRepository) ListByTag(ctx context.Context, tag models.ItemTag) ([]*models.Item, error) {
	sql, args, err := r.sb.Select("id", "tag", "description", "image_url", "roll_no", "hostel_id", "room_no", "phone_no", "created_at").
		From("lost_found_items").
		Where(squirrel.Eq{"tag": tag}).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list items query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("tag", string(tag)).Msg("Error executing list items query")
		return nil, fmt.Errorf("error listing items: %w", err)
	}
	defer rows.Close()

	items := []*models.Item{}
	for rows.Next() {
		item := &models.Item{}
		err := rows.Scan(&item.ID, &item.Tag, &item.Description, &item.ImageURL,
			&item.RollNo, &item.HostelID, &item.RoomNo, &item.PhoneNo, &item.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("error scanning item row: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating item rows: %w", err)
	}

	return items, nil
}
