package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hostelops/washline/internal/app/models"
	"github.com/hostelops/washline/internal/pkg/dberrors"
	"github.com/hostelops/washline/internal/pkg/logger"
)

// HostelRepository handles hostel reference data
type HostelRepository struct {
	db Querier
	sb squirrel.StatementBuilderType
}

// NewHostelRepository creates a new HostelRepository
func NewHostelRepository(db *pgxpool.Pool) *HostelRepository {
	return &HostelRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// CreateHostel inserts a hostel; duplicates by name are rejected
func (r *HostelRepository) CreateHostel(ctx context.Context, hostel *models.Hostel) (int64, error) {
	sql, args, err := r.sb.Insert("hostels").
		Columns("name").
		Values(hostel.Name).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create hostel query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&hostel.ID)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return 0, ErrDuplicate
		}
		logger.Error().Err(err).Str("name", hostel.Name).Msg("Error executing create hostel query")
		return 0, fmt.Errorf("error creating hostel: %w", err)
	}

	return hostel.ID, nil
}

// GetHostelByID retrieves a hostel by id
func (r *HostelRepository) GetHostelByID(ctx context.Context, id int64) (*models.Hostel, error) {
	sql, args, err := r.sb.Select("id", "name").
		From("hostels").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get hostel query: %w", err)
	}

	hostel := &models.Hostel{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(&hostel.ID, &hostel.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		logger.Error().Err(err).Int64("hostelID", id).Msg("Error scanning hostel row")
		return nil, fmt.Errorf("error getting hostel by id: %w", err)
	}

	return hostel, nil
}

// GetAllHostels retrieves every hostel ordered by name
func (r *HostelRepository) GetAllHostels(ctx context.Context) ([]*models.Hostel, error) {
	sql, args, err := r.sb.Select("id", "name").
		From("hostels").
		OrderBy("name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get all hostels query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get all hostels query")
		return nil, fmt.Errorf("error querying hostels: %w", err)
	}
	defer rows.Close()

	hostels := []*models.Hostel{}
	for rows.Next() {
		hostel := &models.Hostel{}
		if err := rows.Scan(&hostel.ID, &hostel.Name); err != nil {
			return nil, fmt.Errorf("error scanning hostel row: %w", err)
		}
		hostels = append(hostels, hostel)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating hostel rows: %w", err)
	}

	return hostels, nil
}
