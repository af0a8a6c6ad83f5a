package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hostelops/washline/internal/app/models"
	"github.com/hostelops/washline/internal/pkg/logger"
)

// ComplaintRepository handles student-to-staff complaints
type ComplaintRepository struct {
	db Querier
	sb squirrel.StatementBuilderType
}

// NewComplaintRepository creates a new ComplaintRepository
func NewComplaintRepository(db *pgxpool.Pool) *ComplaintRepository {
	return &ComplaintRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// CreateComplaint appends one complaint
func (r *ComplaintRepository) CreateComplaint(ctx context.Context, c *models.Complaint) error {
	sql, args, err := r.sb.Insert("complaints").
		Columns("roll_no", "body").
		Values(c.RollNo, c.Body).
		Suffix("RETURNING id, filed_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build insert complaint query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&c.ID, &c.FiledAt); err != nil {
		logger.Error().Err(err).Str("rollNo", c.RollNo).Msg("Error inserting complaint")
		return fmt.Errorf("error creating complaint: %w", err)
	}

	return nil
}

// ListAll returns every complaint, most recent first
func (r *ComplaintRepository) ListAll(ctx context.Context) ([]*models.Complaint, error) {
	sql, args, err := r.sb.Select("id", "roll_no", "body", "filed_at").
		From("complaints").
		OrderBy("filed_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list complaints query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list complaints query")
		return nil, fmt.Errorf("error listing complaints: %w", err)
	}
	defer rows.Close()

	complaints := []*models.Complaint{}
	for rows.Next() {
		c := &models.Complaint{}
		if err := rows.Scan(&c.ID, &c.RollNo, &c.Body, &c.FiledAt); err != nil {
			return nil, fmt.Errorf("error scanning complaint row: %w", err)
		}
		complaints = append(complaints, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating complaint rows: %w", err)
	}

	return complaints, nil
}
