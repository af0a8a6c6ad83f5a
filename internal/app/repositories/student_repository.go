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

// StudentRepository handles student profiles and bag assignments
type StudentRepository struct {
	db Querier
	sb squirrel.StatementBuilderType
}

// NewStudentRepository creates a new StudentRepository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// WithTx returns a copy of the repository that runs inside tx
func (r *StudentRepository) WithTx(tx pgx.Tx) *StudentRepository {
	return &StudentRepository{db: tx, sb: r.sb}
}

// CreateStudent inserts a student profile
func (r *StudentRepository) CreateStudent(ctx context.Context, student *models.Student) (int64, error) {
	sql, args, err := r.sb.Insert("students").
		Columns("user_id", "roll_no", "hostel_id", "room_no", "phone_no").
		Values(student.UserID, student.RollNo, student.HostelID, student.RoomNo, student.PhoneNo).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create student query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&student.ID)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return 0, ErrDuplicate
		}
		logger.Error().Err(err).Str("rollNo", student.RollNo).Msg("Error executing create student query")
		return 0, fmt.Errorf("error creating student: %w", err)
	}

	return student.ID, nil
}

// CreateBagAssignment binds a physical bag to a student. The binding is
// created once and used only for lookup afterwards.
func (r *StudentRepository) CreateBagAssignment(ctx context.Context, assignment *models.BagAssignment) (int64, error) {
	sql, args, err := r.sb.Insert("bag_assignments").
		Columns("bag_code", "student_id").
		Values(assignment.BagCode, assignment.StudentID).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create bag assignment query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&assignment.ID)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return 0, ErrDuplicate
		}
		logger.Error().Err(err).Str("bagCode", assignment.BagCode).Msg("Error executing create bag assignment query")
		return 0, fmt.Errorf("error creating bag assignment: %w", err)
	}

	return assignment.ID, nil
}

// GetBagAssignmentByStudentID looks up the student's bag binding
func (r *StudentRepository) GetBagAssignmentByStudentID(ctx context.Context, studentID int64) (*models.BagAssignment, error) {
	sql, args, err := r.sb.Select("id", "bag_code", "student_id").
		From("bag_assignments").
		Where(squirrel.Eq{"student_id": studentID}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get bag assignment query: %w", err)
	}

	assignment := &models.BagAssignment{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(&assignment.ID, &assignment.BagCode, &assignment.StudentID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		logger.Error().Err(err).Int64("studentID", studentID).Msg("Error scanning bag assignment row")
		return nil, fmt.Errorf("error getting bag assignment: %w", err)
	}

	return assignment, nil
}

// GetStudentByRollNo retrieves a student profile by roll number
func (r *StudentRepository) GetStudentByRollNo(ctx context.Context, rollNo string) (*models.Student, error) {
	return r.getStudent(ctx, squirrel.Eq{"s.roll_no": rollNo})
}

// GetStudentByUserID retrieves a student profile by account id
func (r *StudentRepository) GetStudentByUserID(ctx context.Context, userID int64) (*models.Student, error) {
	return r.getStudent(ctx, squirrel.Eq{"s.user_id": userID})
}

// GetStudentByEmail retrieves a student profile by account email
func (r *StudentRepository) GetStudentByEmail(ctx context.Context, email string) (*models.Student, error) {
	return r.getStudent(ctx, squirrel.Eq{"u.email": email})
}

func (r *StudentRepository) getStudent(ctx context.Context, pred squirrel.Eq) (*models.Student, error) {
	sql, args, err := r.sb.Select(
		"s.id", "s.user_id", "s.roll_no", "s.hostel_id", "s.room_no", "s.phone_no", "s.laundry_outstanding",
		"u.id", "u.email", "u.name", "u.role_type", "u.created_at",
		"h.id", "h.name").
		From("students s").
		Join("users u ON u.id = s.user_id").
		Join("hostels h ON h.id = s.hostel_id").
		Where(pred).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get student query: %w", err)
	}

	student := &models.Student{User: &models.User{}, Hostel: &models.Hostel{}}
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&student.ID, &student.UserID, &student.RollNo, &student.HostelID, &student.RoomNo, &student.PhoneNo, &student.LaundryOutstanding,
		&student.User.ID, &student.User.Email, &student.User.Name, &student.User.RoleType, &student.User.CreatedAt,
		&student.Hostel.ID, &student.Hostel.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		logger.Error().Err(err).Msg("Error scanning student row")
		return nil, fmt.Errorf("error getting student: %w", err)
	}

	return student, nil
}
