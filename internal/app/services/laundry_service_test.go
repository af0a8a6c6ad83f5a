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

type mockLaundryStore struct {
	createFn     func(ctx context.Context, studentID, bagAssignmentID, hostelID int64, clothesCount int, note string) (*models.LaundryBag, error)
	getBagFn     func(ctx context.Context, id int64) (*models.LaundryBag, error)
	updateFn     func(ctx context.Context, bagID int64, from, to models.LaundryStatus) (*models.LaundryBag, error)
	historyFn    func(ctx context.Context, rollNo string) ([]*models.LaundryBagDetail, error)
	getAllFn     func(ctx context.Context) ([]*models.LaundryBagDetail, error)
	createCalled bool
}

func (m *mockLaundryStore) CreateSubmission(ctx context.Context, studentID, bagAssignmentID, hostelID int64, clothesCount int, note string) (*models.LaundryBag, error) {
	m.createCalled = true
	return m.createFn(ctx, studentID, bagAssignmentID, hostelID, clothesCount, note)
}

func (m *mockLaundryStore) GetBagByID(ctx context.Context, id int64) (*models.LaundryBag, error) {
	return m.getBagFn(ctx, id)
}

func (m *mockLaundryStore) UpdateStatus(ctx context.Context, bagID int64, from, to models.LaundryStatus) (*models.LaundryBag, error) {
	return m.updateFn(ctx, bagID, from, to)
}

func (m *mockLaundryStore) GetHistoryByRollNo(ctx context.Context, rollNo string) ([]*models.LaundryBagDetail, error) {
	return m.historyFn(ctx, rollNo)
}

func (m *mockLaundryStore) GetAllBags(ctx context.Context) ([]*models.LaundryBagDetail, error) {
	return m.getAllFn(ctx)
}

type mockStudentDirectory struct {
	byUserIDFn   func(ctx context.Context, userID int64) (*models.Student, error)
	byRollNoFn   func(ctx context.Context, rollNo string) (*models.Student, error)
	assignmentFn func(ctx context.Context, studentID int64) (*models.BagAssignment, error)
}

func (m *mockStudentDirectory) GetStudentByUserID(ctx context.Context, userID int64) (*models.Student, error) {
	return m.byUserIDFn(ctx, userID)
}

func (m *mockStudentDirectory) GetStudentByRollNo(ctx context.Context, rollNo string) (*models.Student, error) {
	return m.byRollNoFn(ctx, rollNo)
}

func (m *mockStudentDirectory) GetBagAssignmentByStudentID(ctx context.Context, studentID int64) (*models.BagAssignment, error) {
	return m.assignmentFn(ctx, studentID)
}

func testStudent() *models.Student {
	return &models.Student{
		ID:       7,
		UserID:   42,
		RollNo:   "ab123",
		HostelID: 2,
		RoomNo:   "502",
		PhoneNo:  "9876543210",
		User:     &models.User{ID: 42, Email: "ab123@campus.edu", Name: "John Doe"},
		Hostel:   &models.Hostel{ID: 2, Name: "Hostel 2B"},
	}
}

func TestLaundryServiceSubmit(t *testing.T) {
	students := &mockStudentDirectory{
		byUserIDFn: func(ctx context.Context, userID int64) (*models.Student, error) {
			return testStudent(), nil
		},
		assignmentFn: func(ctx context.Context, studentID int64) (*models.BagAssignment, error) {
			return &models.BagAssignment{ID: 11, BagCode: "BAG-0042", StudentID: 7}, nil
		},
	}
	bags := &mockLaundryStore{
		createFn: func(ctx context.Context, studentID, bagAssignmentID, hostelID int64, clothesCount int, note string) (*models.LaundryBag, error) {
			assert.Equal(t, int64(7), studentID)
			assert.Equal(t, int64(11), bagAssignmentID)
			assert.Equal(t, int64(2), hostelID)
			return &models.LaundryBag{
				ID:              99,
				BagAssignmentID: bagAssignmentID,
				ClothesCount:    clothesCount,
				ReceivedDate:    time.Now(),
				HostelID:        hostelID,
				Status:          models.StatusReceived,
				Note:            note,
			}, nil
		},
	}
	svc := NewLaundryService(bags, students, zerolog.Nop())

	resp, err := svc.Submit(context.Background(), 42, &dto.SubmitLaundryRequest{ClothesCount: 12, Note: "woollens separate"})
	require.NoError(t, err)
	assert.Equal(t, int64(99), resp.ID)
	assert.Equal(t, "BAG-0042", resp.BagCode)
	assert.Equal(t, string(models.StatusReceived), resp.Status)
	assert.Equal(t, "ab123", resp.RollNo)
	assert.Equal(t, "Hostel 2B", resp.HostelName)
}

func TestLaundryServiceSubmitClothesCountOutOfRange(t *testing.T) {
	bags := &mockLaundryStore{}
	svc := NewLaundryService(bags, &mockStudentDirectory{}, zerolog.Nop())

	for _, count := range []int{0, -1, 31, 100} {
		_, err := svc.Submit(context.Background(), 42, &dto.SubmitLaundryRequest{ClothesCount: count})
		assert.ErrorIs(t, err, apperrors.ErrClothesCountOutOfRange, "count %d", count)
	}
	assert.False(t, bags.createCalled)
}

func TestLaundryServiceSubmitAlreadyInProcess(t *testing.T) {
	students := &mockStudentDirectory{
		byUserIDFn: func(ctx context.Context, userID int64) (*models.Student, error) {
			return testStudent(), nil
		},
		assignmentFn: func(ctx context.Context, studentID int64) (*models.BagAssignment, error) {
			return &models.BagAssignment{ID: 11, BagCode: "BAG-0042", StudentID: 7}, nil
		},
	}
	bags := &mockLaundryStore{
		createFn: func(ctx context.Context, studentID, bagAssignmentID, hostelID int64, clothesCount int, note string) (*models.LaundryBag, error) {
			return nil, repositories.ErrOutstandingBag
		},
	}
	svc := NewLaundryService(bags, students, zerolog.Nop())

	_, err := svc.Submit(context.Background(), 42, &dto.SubmitLaundryRequest{ClothesCount: 5})
	assert.ErrorIs(t, err, apperrors.ErrLaundryInProcess)
}

func TestLaundryServiceSubmitNoBagAssignment(t *testing.T) {
	students := &mockStudentDirectory{
		byUserIDFn: func(ctx context.Context, userID int64) (*models.Student, error) {
			return testStudent(), nil
		},
		assignmentFn: func(ctx context.Context, studentID int64) (*models.BagAssignment, error) {
			return nil, repositories.ErrNotFound
		},
	}
	svc := NewLaundryService(&mockLaundryStore{}, students, zerolog.Nop())

	_, err := svc.Submit(context.Background(), 42, &dto.SubmitLaundryRequest{ClothesCount: 5})
	assert.ErrorIs(t, err, apperrors.ErrBagAssignmentNotFound)
}

func TestLaundryServiceSetStatus(t *testing.T) {
	tests := []struct {
		name      string
		current   models.LaundryStatus
		target    string
		updateErr error
		wantErr   error
	}{
		{"forward move", models.StatusReceived, "Washing", nil, nil},
		{"skip to terminal", models.StatusWashing, "Ready to Collect", nil, nil},
		{"unknown status", models.StatusReceived, "Folded", nil, apperrors.ErrUnknownLaundryStatus},
		{"same status", models.StatusWashing, "Washing", nil, apperrors.ErrBackwardStatusMove},
		{"backward move", models.StatusDrying, "Washing", nil, apperrors.ErrBackwardStatusMove},
		{"lost race", models.StatusReceived, "Washing", repositories.ErrStatusChanged, apperrors.ErrConflict},
		{"owner flag failure", models.StatusDrying, "Ready to Collect", repositories.ErrOwnerFlagUpdate, apperrors.ErrPartialUpdate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bags := &mockLaundryStore{
				getBagFn: func(ctx context.Context, id int64) (*models.LaundryBag, error) {
					return &models.LaundryBag{ID: id, Status: tt.current}, nil
				},
				updateFn: func(ctx context.Context, bagID int64, from, to models.LaundryStatus) (*models.LaundryBag, error) {
					assert.Equal(t, tt.current, from)
					if tt.updateErr != nil {
						return nil, tt.updateErr
					}
					return &models.LaundryBag{ID: bagID, Status: to}, nil
				},
			}
			svc := NewLaundryService(bags, &mockStudentDirectory{}, zerolog.Nop())

			bag, err := svc.SetStatus(context.Background(), 99, tt.target)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, models.LaundryStatus(tt.target), bag.Status)
		})
	}
}

func TestLaundryServiceSetStatusBagNotFound(t *testing.T) {
	bags := &mockLaundryStore{
		getBagFn: func(ctx context.Context, id int64) (*models.LaundryBag, error) {
			return nil, repositories.ErrNotFound
		},
	}
	svc := NewLaundryService(bags, &mockStudentDirectory{}, zerolog.Nop())

	_, err := svc.SetStatus(context.Background(), 404, "Washing")
	assert.ErrorIs(t, err, apperrors.ErrBagNotFound)
}

func TestLaundryServiceGetHistory(t *testing.T) {
	now := time.Now()
	students := &mockStudentDirectory{
		byRollNoFn: func(ctx context.Context, rollNo string) (*models.Student, error) {
			return testStudent(), nil
		},
	}
	bags := &mockLaundryStore{
		historyFn: func(ctx context.Context, rollNo string) ([]*models.LaundryBagDetail, error) {
			return []*models.LaundryBagDetail{
				{LaundryBag: models.LaundryBag{ID: 2, ReceivedDate: now, Status: models.StatusWashing}, RollNo: rollNo, BagCode: "BAG-0042"},
				{LaundryBag: models.LaundryBag{ID: 1, ReceivedDate: now.Add(-24 * time.Hour), Status: models.StatusReadyToCollect}, RollNo: rollNo, BagCode: "BAG-0042"},
			}, nil
		},
	}
	svc := NewLaundryService(bags, students, zerolog.Nop())

	history, err := svc.GetHistory(context.Background(), "ab123")
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, int64(2), history[0].ID)
	assert.Equal(t, int64(1), history[1].ID)
}

func TestLaundryServiceGetHistoryUnknownStudent(t *testing.T) {
	students := &mockStudentDirectory{
		byRollNoFn: func(ctx context.Context, rollNo string) (*models.Student, error) {
			return nil, repositories.ErrNotFound
		},
	}
	svc := NewLaundryService(&mockLaundryStore{}, students, zerolog.Nop())

	_, err := svc.GetHistory(context.Background(), "zz999")
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
}
