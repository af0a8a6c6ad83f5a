package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hostelops/washline/internal/app/models"
	"github.com/hostelops/washline/internal/db"
	"github.com/hostelops/washline/internal/pkg/logger"
)

// LaundryRepository handles laundry bag lifecycle rows. Submission and the
// ready transition are multi-row units of work, so this repository keeps the
// pool and runs them transactionally.
type LaundryRepository struct {
	pool *pgxpool.Pool
	sb   squirrel.StatementBuilderType
}

// NewLaundryRepository creates a new LaundryRepository
func NewLaundryRepository(pool *pgxpool.Pool) *LaundryRepository {
	return &LaundryRepository{
		pool: pool,
		sb:   squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// CreateSubmission atomically marks the student as having an outstanding bag
// and inserts the new bag instance at status Received. If the student's flag
// is already set, nothing is persisted and ErrOutstandingBag is returned.
func (r *LaundryRepository) CreateSubmission(ctx context.Context, studentID, bagAssignmentID, hostelID int64, clothesCount int, note string) (*models.LaundryBag, error) {
	bag := &models.LaundryBag{
		BagAssignmentID: bagAssignmentID,
		ClothesCount:    clothesCount,
		HostelID:        hostelID,
		Status:          models.StatusReceived,
		Note:            note,
	}

	err := db.WithTransaction(ctx, r.pool, func(ctx context.Context, tx pgx.Tx) error {
		// Conditional check-and-set guards against double submission
		markSQL, markArgs, err := r.sb.Update("students").
			Set("laundry_outstanding", true).
			Where(squirrel.Eq{"id": studentID, "laundry_outstanding": false}).
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build mark outstanding query: %w", err)
		}

		cmdTag, err := tx.Exec(ctx, markSQL, markArgs...)
		if err != nil {
			return fmt.Errorf("error marking student outstanding: %w", err)
		}
		if cmdTag.RowsAffected() == 0 {
			return ErrOutstandingBag
		}

		insertSQL, insertArgs, err := r.sb.Insert("laundry_bags").
			Columns("bag_assignment_id", "clothes_count", "received_date", "hostel_id", "status", "note").
			Values(bagAssignmentID, clothesCount, squirrel.Expr("NOW()"), hostelID, models.StatusReceived, note).
			Suffix("RETURNING id, received_date").
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build insert bag query: %w", err)
		}

		if err := tx.QueryRow(ctx, insertSQL, insertArgs...).Scan(&bag.ID, &bag.ReceivedDate); err != nil {
			return fmt.Errorf("error inserting laundry bag: %w", err)
		}

		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrOutstandingBag) {
			logger.Error().Err(err).Int64("studentID", studentID).Msg("Laundry submission failed")
		}
		return nil, err
	}

	return bag, nil
}

// GetBagByID retrieves one bag instance
func (r *LaundryRepository) GetBagByID(ctx context.Context, id int64) (*models.LaundryBag, error) {
	sql, args, err := r.sb.Select("id", "bag_assignment_id", "clothes_count", "received_date", "hostel_id", "status", "note", "return_date").
		From("laundry_bags").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get bag query: %w", err)
	}

	bag := &models.LaundryBag{}
	err = r.pool.QueryRow(ctx, sql, args...).Scan(
		&bag.ID, &bag.BagAssignmentID, &bag.ClothesCount, &bag.ReceivedDate,
		&bag.HostelID, &bag.Status, &bag.Note, &bag.ReturnDate)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		logger.Error().Err(err).Int64("bagID", id).Msg("Error scanning laundry bag row")
		return nil, fmt.Errorf("error getting laundry bag: %w", err)
	}

	return bag, nil
}

// UpdateStatus moves a bag from expected current status to the new status as a
// compare-and-swap; a concurrent edit surfaces as ErrStatusChanged. The
// terminal transition additionally stamps the return date and clears the
// owner's outstanding flag in the same transaction, so the status write is
// never left half-applied: if the owner flag cannot be cleared, everything is
// rolled back and ErrOwnerFlagUpdate is returned.
func (r *LaundryRepository) UpdateStatus(ctx context.Context, bagID int64, from, to models.LaundryStatus) (*models.LaundryBag, error) {
	var bag *models.LaundryBag

	err := db.WithTransaction(ctx, r.pool, func(ctx context.Context, tx pgx.Tx) error {
		update := r.sb.Update("laundry_bags").
			Set("status", to).
			Where(squirrel.Eq{"id": bagID, "status": from}).
			Suffix("RETURNING id, bag_assignment_id, clothes_count, received_date, hostel_id, status, note, return_date")
		if to.Terminal() {
			update = update.Set("return_date", time.Now())
		}

		updateSQL, updateArgs, err := update.ToSql()
		if err != nil {
			return fmt.Errorf("failed to build update status query: %w", err)
		}

		bag = &models.LaundryBag{}
		err = tx.QueryRow(ctx, updateSQL, updateArgs...).Scan(
			&bag.ID, &bag.BagAssignmentID, &bag.ClothesCount, &bag.ReceivedDate,
			&bag.HostelID, &bag.Status, &bag.Note, &bag.ReturnDate)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return ErrStatusChanged
			}
			return fmt.Errorf("error updating bag status: %w", err)
		}

		if !to.Terminal() {
			return nil
		}

		// Clear the owner's flag through the bag assignment binding
		clearSQL := `
			UPDATE students SET laundry_outstanding = false
			FROM bag_assignments ba
			WHERE students.id = ba.student_id AND ba.id = $1`
		cmdTag, err := tx.Exec(ctx, clearSQL, bag.BagAssignmentID)
		if err != nil {
			return fmt.Errorf("error clearing owner flag: %w", err)
		}
		if cmdTag.RowsAffected() == 0 {
			return ErrOwnerFlagUpdate
		}

		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrStatusChanged) {
			logger.Error().Err(err).Int64("bagID", bagID).Str("to", string(to)).Msg("Laundry status update failed")
		}
		return nil, err
	}

	return bag, nil
}

const bagDetailColumns = `
	b.id, b.bag_assignment_id, b.clothes_count, b.received_date, b.hostel_id,
	b.status, b.note, b.return_date,
	s.roll_no, u.name, u.email, s.room_no, s.phone_no, h.name, ba.bag_code`

const bagDetailJoins = `
	FROM laundry_bags b
	JOIN bag_assignments ba ON ba.id = b.bag_assignment_id
	JOIN students s ON s.id = ba.student_id
	JOIN users u ON u.id = s.user_id
	JOIN hostels h ON h.id = b.hostel_id`

// GetHistoryByRollNo returns all bags for the student, most recent first
func (r *LaundryRepository) GetHistoryByRollNo(ctx context.Context, rollNo string) ([]*models.LaundryBagDetail, error) {
	query := "SELECT " + bagDetailColumns + bagDetailJoins + `
	WHERE s.roll_no = $1
	ORDER BY b.received_date DESC`

	rows, err := r.pool.Query(ctx, query, rollNo)
	if err != nil {
		logger.Error().Err(err).Str("rollNo", rollNo).Msg("Error executing laundry history query")
		return nil, fmt.Errorf("error querying laundry history: %w", err)
	}
	defer rows.Close()

	return scanBagDetails(rows)
}

// GetAllBags returns every bag joined with its owner, most recent first
func (r *LaundryRepository) GetAllBags(ctx context.Context) ([]*models.LaundryBagDetail, error) {
	query := "SELECT " + bagDetailColumns + bagDetailJoins + `
	ORDER BY b.received_date DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get all bags query")
		return nil, fmt.Errorf("error querying laundry bags: %w", err)
	}
	defer rows.Close()

	return scanBagDetails(rows)
}

func scanBagDetails(rows pgx.Rows) ([]*models.LaundryBagDetail, error) {
	details := []*models.LaundryBagDetail{}
	for rows.Next() {
		d := &models.LaundryBagDetail{}
		err := rows.Scan(
			&d.ID, &d.BagAssignmentID, &d.ClothesCount, &d.ReceivedDate, &d.HostelID,
			&d.Status, &d.Note, &d.ReturnDate,
			&d.RollNo, &d.StudentName, &d.StudentEmail, &d.RoomNo, &d.PhoneNo, &d.HostelName, &d.BagCode)
		if err != nil {
			return nil, fmt.Errorf("error scanning bag detail row: %w", err)
		}
		details = append(details, d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating bag detail rows: %w", err)
	}

	return details, nil
}
