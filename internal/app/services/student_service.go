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
)

// StudentService handles student profiles and hostel reference data
type StudentService struct {
	studentRepo *repositories.StudentRepository
	hostelRepo  *repositories.HostelRepository
	logger      zerolog.Logger
}

// NewStudentService creates a new StudentService
func NewStudentService(studentRepo *repositories.StudentRepository, hostelRepo *repositories.HostelRepository, logger zerolog.Logger) *StudentService {
	return &StudentService{
		studentRepo: studentRepo,
		hostelRepo:  hostelRepo,
		logger:      logger,
	}
}

// GetProfile returns the student profile behind an account
func (s *StudentService) GetProfile(ctx context.Context, userID int64) (*dto.StudentProfileResponse, error) {
	student, err := s.studentRepo.GetStudentByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error getting student profile: %w", err)
	}

	return toProfileResponse(student), nil
}

// GetStudentByEmail looks up a student profile for the staff desk
func (s *StudentService) GetStudentByEmail(ctx context.Context, email string) (*dto.StudentProfileResponse, error) {
	student, err := s.studentRepo.GetStudentByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error getting student by email: %w", err)
	}

	return toProfileResponse(student), nil
}

// ListHostels returns all hostels for the registration form
func (s *StudentService) ListHostels(ctx context.Context) ([]dto.HostelResponse, error) {
	hostels, err := s.hostelRepo.GetAllHostels(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing hostels: %w", err)
	}

	resp := make([]dto.HostelResponse, 0, len(hostels))
	for _, h := range hostels {
		resp = append(resp, dto.HostelResponse{ID: h.ID, Name: h.Name})
	}

	return resp, nil
}

func toProfileResponse(student *models.Student) *dto.StudentProfileResponse {
	resp := &dto.StudentProfileResponse{
		ID:                 student.ID,
		RollNo:             student.RollNo,
		HostelID:           student.HostelID,
		RoomNo:             student.RoomNo,
		PhoneNo:            student.PhoneNo,
		LaundryOutstanding: student.LaundryOutstanding,
	}
	if student.User != nil {
		resp.Email = student.User.Email
		resp.Name = student.User.Name
	}
	if student.Hostel != nil {
		resp.HostelName = student.Hostel.Name
	}
	return resp
}
