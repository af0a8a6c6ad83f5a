package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hostelops/washline/internal/app/models"
	"github.com/hostelops/washline/internal/pkg/dberrors"
	"github.com/hostelops/washline/internal/pkg/logger"
)

// MessageRepository handles staff-to-hostel announcements
type MessageRepository struct {
	db Querier
	sb squirrel.StatementBuilderType
}

// NewMessageRepository creates a new MessageRepository
func NewMessageRepository(db *pgxpool.Pool) *MessageRepository {
	return &MessageRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// CreateMessage appends one announcement for a hostel
func (r *MessageRepository) CreateMessage(ctx context.Context, msg *models.HostelMessage) error {
	sql, args, err := r.sb.Insert("hostel_messages").
		Columns("hostel_id", "body", "sender_email").
		Values(msg.HostelID, msg.Body, msg.SenderEmail).
		Suffix("RETURNING id, sent_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build insert message query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&msg.ID, &msg.SentAt); err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return ErrNotFound
		}
		logger.Error().Err(err).Int64("hostelID", msg.HostelID).Msg("Error inserting hostel message")
		return fmt.Errorf("error creating message: %w", err)
	}

	return nil
}

// ListByHostel returns a hostel's announcements, most recent first
func (r *MessageRepository) ListByHostel(ctx context.Context, hostelID int64) ([]*models.HostelMessage, error) {
	sql, args, err := r.sb.Select("id", "hostel_id", "body", "sender_email", "sent_at").
		From("hostel_messages").
		Where(squirrel.Eq{"hostel_id": hostelID}).
		OrderBy("sent_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list messages query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("hostelID", hostelID).Msg("Error executing list messages query")
		return nil, fmt.Errorf("error listing messages: %w", err)
	}
	defer rows.Close()

	messages := []*models.HostelMessage{}
	for rows.Next() {
		msg := &models.HostelMessage{}
		if err := rows.Scan(&msg.ID, &msg.HostelID, &msg.Body, &msg.SenderEmail, &msg.SentAt); err != nil {
			return nil, fmt.Errorf("error scanning message row: %w", err)
		}
		messages = append(messages, msg)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating message rows: %w", err)
	}

	return messages, nil
}
