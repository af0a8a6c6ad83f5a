package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/hostelops/washline/internal/app/models"
	"github.com/hostelops/washline/internal/app/models/dto"
	"github.com/hostelops/washline/internal/app/repositories"
	"github.com/hostelops/washline/internal/pkg/apperrors"
)

// messageStore is the persistence surface for announcements
type messageStore interface {
	CreateMessage(ctx context.Context, msg *models.HostelMessage) error
	ListByHostel(ctx context.Context, hostelID int64) ([]*models.HostelMessage, error)
}

// complaintStore is the persistence surface for complaints
type complaintStore interface {
	CreateComplaint(ctx context.Context, c *models.Complaint) error
	ListAll(ctx context.Context) ([]*models.Complaint, error)
}

// hostelReader resolves hostel ids for broadcast validation
type hostelReader interface {
	GetHostelByID(ctx context.Context, id int64) (*models.Hostel, error)
}

// MessageService handles hostel announcements and student complaints
type MessageService struct {
	messages   messageStore
	complaints complaintStore
	hostels    hostelReader
	students   studentDirectory
	logger     zerolog.Logger
}

// NewMessageService creates a new MessageService
func NewMessageService(messages messageStore, complaints complaintStore, hostels hostelReader, students studentDirectory, logger zerolog.Logger) *MessageService {
	return &MessageService{
		messages:   messages,
		complaints: complaints,
		hostels:    hostels,
		students:   students,
		logger:     logger,
	}
}

// Broadcast appends an announcement to one hostel's board
func (s *MessageService) Broadcast(ctx context.Context, senderEmail string, req *dto.BroadcastRequest) (*dto.MessageResponse, error) {
	if strings.TrimSpace(req.Body) == "" {
		return nil, apperrors.NewValidationError("message body cannot be empty")
	}

	if _, err := s.hostels.GetHostelByID(ctx, req.HostelID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrHostelNotFound
		}
		return nil, fmt.Errorf("error checking hostel: %w", err)
	}

	msg := &models.HostelMessage{
		HostelID:    req.HostelID,
		Body:        req.Body,
		SenderEmail: senderEmail,
	}
	if err := s.messages.CreateMessage(ctx, msg); err != nil {
		// The hostel row can disappear between the existence check and the
		// insert; the foreign key catches that.
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrHostelNotFound
		}
		return nil, fmt.Errorf("error broadcasting message: %w", err)
	}

	s.logger.Info().Int64("hostelID", req.HostelID).Str("sender", senderEmail).Msg("Hostel message broadcast")

	return toMessageResponse(msg), nil
}

// ListForStudent returns the announcements addressed to the student's hostel
func (s *MessageService) ListForStudent(ctx context.Context, userID int64) ([]*dto.MessageResponse, error) {
	student, err := s.students.GetStudentByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error getting student: %w", err)
	}

	return s.ListForHostel(ctx, student.HostelID)
}

// ListForHostel returns one hostel's announcements, most recent first
func (s *MessageService) ListForHostel(ctx context.Context, hostelID int64) ([]*dto.MessageResponse, error) {
	messages, err := s.messages.ListByHostel(ctx, hostelID)
	if err != nil {
		return nil, fmt.Errorf("error listing messages: %w", err)
	}

	resp := make([]*dto.MessageResponse, 0, len(messages))
	for _, msg := range messages {
		resp = append(resp, toMessageResponse(msg))
	}

	return resp, nil
}

// FileComplaint records a student complaint for the staff desk
func (s *MessageService) FileComplaint(ctx context.Context, userID int64, req *dto.FileComplaintRequest) (*dto.ComplaintResponse, error) {
	if strings.TrimSpace(req.Body) == "" {
		return nil, apperrors.NewValidationError("complaint body cannot be empty")
	}

	student, err := s.students.GetStudentByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error getting student: %w", err)
	}

	c := &models.Complaint{RollNo: student.RollNo, Body: req.Body}
	if err := s.complaints.CreateComplaint(ctx, c); err != nil {
		return nil, fmt.Errorf("error filing complaint: %w", err)
	}

	s.logger.Info().Str("rollNo", student.RollNo).Msg("Complaint filed")

	return toComplaintResponse(c), nil
}

// ListComplaints returns every complaint, most recent first
func (s *MessageService) ListComplaints(ctx context.Context) ([]*dto.ComplaintResponse, error) {
	complaints, err := s.complaints.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing complaints: %w", err)
	}

	resp := make([]*dto.ComplaintResponse, 0, len(complaints))
	for _, c := range complaints {
		resp = append(resp, toComplaintResponse(c))
	}

	return resp, nil
}

func toMessageResponse(msg *models.HostelMessage) *dto.MessageResponse {
	return &dto.MessageResponse{
		ID:          msg.ID,
		HostelID:    msg.HostelID,
		Body:        msg.Body,
		SenderEmail: msg.SenderEmail,
		SentAt:      msg.SentAt,
	}
}

func toComplaintResponse(c *models.Complaint) *dto.ComplaintResponse {
	return &dto.ComplaintResponse{
		ID:      c.ID,
		RollNo:  c.RollNo,
		Body:    c.Body,
		FiledAt: c.FiledAt,
	}
}
