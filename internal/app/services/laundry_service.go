package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/hostelops/washline/internal/app/models"
	"github.com/hostelops/washline/internal/app/models/dto"
	"github.com/hostelops/washline/internal/app/repositories"
	"github.com/hostelops/washline/internal/pkg/apperrors"
	"github.com/hostelops/washline/internal/pkg/metrics"
)

// Clothes count bounds for one bag
const (
	minClothesCount = 1
	maxClothesCount = 30
)

// laundryStore is the persistence surface LaundryService depends on
type laundryStore interface {
	CreateSubmission(ctx context.Context, studentID, bagAssignmentID, hostelID int64, clothesCount int, note string) (*models.LaundryBag, error)
	GetBagByID(ctx context.Context, id int64) (*models.LaundryBag, error)
	UpdateStatus(ctx context.Context, bagID int64, from, to models.LaundryStatus) (*models.LaundryBag, error)
	GetHistoryByRollNo(ctx context.Context, rollNo string) ([]*models.LaundryBagDetail, error)
	GetAllBags(ctx context.Context) ([]*models.LaundryBagDetail, error)
}

// studentDirectory resolves accounts to student profiles and bag bindings
type studentDirectory interface {
	GetStudentByUserID(ctx context.Context, userID int64) (*models.Student, error)
	GetStudentByRollNo(ctx context.Context, rollNo string) (*models.Student, error)
	GetBagAssignmentByStudentID(ctx context.Context, studentID int64) (*models.BagAssignment, error)
}

// LaundryService handles bag submission, the status lifecycle and history
type LaundryService struct {
	bags     laundryStore
	students studentDirectory
	logger   zerolog.Logger
}

// NewLaundryService creates a new LaundryService
func NewLaundryService(bags laundryStore, students studentDirectory, logger zerolog.Logger) *LaundryService {
	return &LaundryService{
		bags:     bags,
		students: students,
		logger:   logger,
	}
}

// Submit accepts a laundry drop-off for the authenticated student. A student
// can have at most one bag in process; a second submission is refused until
// the first reaches "Ready to Collect".
func (s *LaundryService) Submit(ctx context.Context, userID int64, req *dto.SubmitLaundryRequest) (*dto.LaundryBagResponse, error) {
	if req.ClothesCount < minClothesCount || req.ClothesCount > maxClothesCount {
		return nil, fmt.Errorf("%w: clothes count must be between %d and %d",
			apperrors.ErrClothesCountOutOfRange, minClothesCount, maxClothesCount)
	}

	student, err := s.students.GetStudentByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error getting student: %w", err)
	}

	assignment, err := s.students.GetBagAssignmentByStudentID(ctx, student.ID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrBagAssignmentNotFound
		}
		return nil, fmt.Errorf("error getting bag assignment: %w", err)
	}

	bag, err := s.bags.CreateSubmission(ctx, student.ID, assignment.ID, student.HostelID, req.ClothesCount, req.Note)
	if err != nil {
		if errors.Is(err, repositories.ErrOutstandingBag) {
			return nil, fmt.Errorf("%w", apperrors.ErrLaundryInProcess)
		}
		return nil, fmt.Errorf("error submitting laundry: %w", err)
	}

	metrics.LaundrySubmissionsTotal.Inc()
	s.logger.Info().Str("rollNo", student.RollNo).Int64("bagID", bag.ID).Msg("Laundry bag submitted")

	resp := &dto.LaundryBagResponse{
		ID:           bag.ID,
		BagCode:      assignment.BagCode,
		ClothesCount: bag.ClothesCount,
		ReceivedDate: bag.ReceivedDate,
		Status:       string(bag.Status),
		Note:         bag.Note,
		RollNo:       student.RollNo,
		RoomNo:       student.RoomNo,
		PhoneNo:      student.PhoneNo,
	}
	if student.User != nil {
		resp.StudentEmail = student.User.Email
		resp.StudentName = student.User.Name
	}
	if student.Hostel != nil {
		resp.HostelName = student.Hostel.Name
	}

	return resp, nil
}

// SetStatus moves a bag to a later lifecycle status. Skipping intermediate
// statuses is allowed, moving backwards is not. Reaching "Ready to Collect"
// stamps the return date and frees the owner for the next submission.
func (s *LaundryService) SetStatus(ctx context.Context, bagID int64, status string) (*models.LaundryBag, error) {
	next := models.LaundryStatus(status)
	if !next.Valid() {
		return nil, fmt.Errorf("%w: %q", apperrors.ErrUnknownLaundryStatus, status)
	}

	bag, err := s.bags.GetBagByID(ctx, bagID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrBagNotFound
		}
		return nil, fmt.Errorf("error getting bag: %w", err)
	}

	if !bag.Status.CanTransitionTo(next) {
		return nil, fmt.Errorf("%w: %s to %s", apperrors.ErrBackwardStatusMove, bag.Status, next)
	}

	updated, err := s.bags.UpdateStatus(ctx, bagID, bag.Status, next)
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrStatusChanged):
			return nil, apperrors.NewConflictError("bag status was changed by someone else, reload and retry")
		case errors.Is(err, repositories.ErrOwnerFlagUpdate):
			return nil, fmt.Errorf("%w: owner flag not cleared", apperrors.ErrPartialUpdate)
		default:
			return nil, fmt.Errorf("error updating bag status: %w", err)
		}
	}

	metrics.LaundryStatusUpdatesTotal.WithLabelValues(string(next)).Inc()
	s.logger.Info().Int64("bagID", bagID).Str("status", string(next)).Msg("Laundry status updated")

	return updated, nil
}

// GetHistory returns a student's bags, most recent first
func (s *LaundryService) GetHistory(ctx context.Context, rollNo string) ([]*dto.LaundryBagResponse, error) {
	if _, err := s.students.GetStudentByRollNo(ctx, rollNo); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error getting student: %w", err)
	}

	details, err := s.bags.GetHistoryByRollNo(ctx, rollNo)
	if err != nil {
		return nil, fmt.Errorf("error getting laundry history: %w", err)
	}

	return toBagResponses(details), nil
}

// GetAll returns every bag with its owner for the staff overview
func (s *LaundryService) GetAll(ctx context.Context) ([]*dto.LaundryBagResponse, error) {
	details, err := s.bags.GetAllBags(ctx)
	if err != nil {
		return nil, fmt.Errorf("error getting laundry bags: %w", err)
	}

	return toBagResponses(details), nil
}

func toBagResponses(details []*models.LaundryBagDetail) []*dto.LaundryBagResponse {
	resp := make([]*dto.LaundryBagResponse, 0, len(details))
	for _, d := range details {
		resp = append(resp, &dto.LaundryBagResponse{
			ID:           d.ID,
			BagCode:      d.BagCode,
			ClothesCount: d.ClothesCount,
			ReceivedDate: d.ReceivedDate,
			Status:       string(d.Status),
			Note:         d.Note,
			ReturnDate:   d.ReturnDate,
			HostelName:   d.HostelName,
			StudentEmail: d.StudentEmail,
			RollNo:       d.RollNo,
			StudentName:  d.StudentName,
			RoomNo:       d.RoomNo,
			PhoneNo:      d.PhoneNo,
		})
	}
	return resp
}
