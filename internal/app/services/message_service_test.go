package services

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hostelops/washline/internal/app/models"
	"github.com/hostelops/washline/internal/app/models/dto"
	"github.com/hostelops/washline/internal/app/repositories"
	"github.com/hostelops/washline/internal/pkg/apperrors"
)

type mockMessageStore struct {
	createFn func(ctx context.Context, msg *models.HostelMessage) error
	listFn   func(ctx context.Context, hostelID int64) ([]*models.HostelMessage, error)
}

func (m *mockMessageStore) CreateMessage(ctx context.Context, msg *models.HostelMessage) error {
	return m.createFn(ctx, msg)
}

func (m *mockMessageStore) ListByHostel(ctx context.Context, hostelID int64) ([]*models.HostelMessage, error) {
	return m.listFn(ctx, hostelID)
}

type mockComplaintStore struct {
	createFn func(ctx context.Context, c *models.Complaint) error
	listFn   func(ctx context.Context) ([]*models.Complaint, error)
}

func (m *mockComplaintStore) CreateComplaint(ctx context.Context, c *models.Complaint) error {
	return m.createFn(ctx, c)
}

func (m *mockComplaintStore) ListAll(ctx context.Context) ([]*models.Complaint, error) {
	return m.listFn(ctx)
}

type mockHostelReader struct {
	getFn func(ctx context.Context, id int64) (*models.Hostel, error)
}

func (m *mockHostelReader) GetHostelByID(ctx context.Context, id int64) (*models.Hostel, error) {
	return m.getFn(ctx, id)
}

func knownHostels() *mockHostelReader {
	return &mockHostelReader{
		getFn: func(ctx context.Context, id int64) (*models.Hostel, error) {
			return &models.Hostel{ID: id, Name: "Hostel 2B"}, nil
		},
	}
}

func TestMessageServiceBroadcast(t *testing.T) {
	messages := &mockMessageStore{
		createFn: func(ctx context.Context, msg *models.HostelMessage) error {
			msg.ID = 3
			msg.SentAt = time.Now()
			return nil
		},
	}
	svc := NewMessageService(messages, &mockComplaintStore{}, knownHostels(), itemStudents(), zerolog.Nop())

	resp, err := svc.Broadcast(context.Background(), "staff@campus.edu",
		&dto.BroadcastRequest{HostelID: 2, Body: "Machines offline on Sunday"})
	require.NoError(t, err)
	assert.Equal(t, int64(3), resp.ID)
	assert.Equal(t, "staff@campus.edu", resp.SenderEmail)
	assert.Equal(t, int64(2), resp.HostelID)
}

func TestMessageServiceBroadcastEmptyBody(t *testing.T) {
	svc := NewMessageService(&mockMessageStore{}, &mockComplaintStore{}, knownHostels(), itemStudents(), zerolog.Nop())

	_, err := svc.Broadcast(context.Background(), "staff@campus.edu",
		&dto.BroadcastRequest{HostelID: 2, Body: "   "})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestMessageServiceBroadcastUnknownHostel(t *testing.T) {
	hostels := &mockHostelReader{
		getFn: func(ctx context.Context, id int64) (*models.Hostel, error) {
			return nil, repositories.ErrNotFound
		},
	}
	svc := NewMessageService(&mockMessageStore{}, &mockComplaintStore{}, hostels, itemStudents(), zerolog.Nop())

	_, err := svc.Broadcast(context.Background(), "staff@campus.edu",
		&dto.BroadcastRequest{HostelID: 404, Body: "hello"})
	assert.ErrorIs(t, err, apperrors.ErrHostelNotFound)
}

func TestMessageServiceBroadcastHostelDeletedDuringInsert(t *testing.T) {
	messages := &mockMessageStore{
		createFn: func(ctx context.Context, msg *models.HostelMessage) error {
			return repositories.ErrNotFound
		},
	}
	svc := NewMessageService(messages, &mockComplaintStore{}, knownHostels(), itemStudents(), zerolog.Nop())

	_, err := svc.Broadcast(context.Background(), "staff@campus.edu",
		&dto.BroadcastRequest{HostelID: 2, Body: "hello"})
	assert.ErrorIs(t, err, apperrors.ErrHostelNotFound)
}

func TestMessageServiceListForStudent(t *testing.T) {
	messages := &mockMessageStore{
		listFn: func(ctx context.Context, hostelID int64) ([]*models.HostelMessage, error) {
			assert.Equal(t, int64(2), hostelID)
			return []*models.HostelMessage{
				{ID: 2, HostelID: hostelID, Body: "newer"},
				{ID: 1, HostelID: hostelID, Body: "older"},
			}, nil
		},
	}
	svc := NewMessageService(messages, &mockComplaintStore{}, knownHostels(), itemStudents(), zerolog.Nop())

	resp, err := svc.ListForStudent(context.Background(), 42)
	require.NoError(t, err)
	require.Len(t, resp, 2)
	assert.Equal(t, "newer", resp[0].Body)
}

func TestMessageServiceFileComplaint(t *testing.T) {
	complaints := &mockComplaintStore{
		createFn: func(ctx context.Context, c *models.Complaint) error {
			c.ID = 8
			c.FiledAt = time.Now()
			return nil
		},
	}
	svc := NewMessageService(&mockMessageStore{}, complaints, knownHostels(), itemStudents(), zerolog.Nop())

	resp, err := svc.FileComplaint(context.Background(), 42, &dto.FileComplaintRequest{Body: "Clothes returned damp"})
	require.NoError(t, err)
	assert.Equal(t, int64(8), resp.ID)
	// Roll number is resolved from the account, not taken from the request
	assert.Equal(t, "ab123", resp.RollNo)
}

func TestMessageServiceFileComplaintEmptyBody(t *testing.T) {
	svc := NewMessageService(&mockMessageStore{}, &mockComplaintStore{}, knownHostels(), itemStudents(), zerolog.Nop())

	_, err := svc.FileComplaint(context.Background(), 42, &dto.FileComplaintRequest{Body: ""})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestMessageServiceListComplaints(t *testing.T) {
	complaints := &mockComplaintStore{
		listFn: func(ctx context.Context) ([]*models.Complaint, error) {
			return []*models.Complaint{
				{ID: 2, RollNo: "cd456", Body: "newer"},
				{ID: 1, RollNo: "ab123", Body: "older"},
			}, nil
		},
	}
	svc := NewMessageService(&mockMessageStore{}, complaints, knownHostels(), itemStudents(), zerolog.Nop())

	resp, err := svc.ListComplaints(context.Background())
	require.NoError(t, err)
	require.Len(t, resp, 2)
	assert.Equal(t, "cd456", resp[0].RollNo)
}
