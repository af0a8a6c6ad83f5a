package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hostelops/washline/internal/app/models"
	"github.com/hostelops/washline/internal/app/repositories"
	"github.com/hostelops/washline/internal/app/services"
	"github.com/hostelops/washline/internal/middleware"
)

type fakeLaundryStore struct {
	bags map[int64]*models.LaundryBag
}

func (f *fakeLaundryStore) CreateSubmission(ctx context.Context, studentID, bagAssignmentID, hostelID int64, clothesCount int, note string) (*models.LaundryBag, error) {
	bag := &models.LaundryBag{
		ID:              int64(len(f.bags) + 1),
		BagAssignmentID: bagAssignmentID,
		ClothesCount:    clothesCount,
		ReceivedDate:    time.Now(),
		HostelID:        hostelID,
		Status:          models.StatusReceived,
		Note:            note,
	}
	f.bags[bag.ID] = bag
	return bag, nil
}

func (f *fakeLaundryStore) GetBagByID(ctx context.Context, id int64) (*models.LaundryBag, error) {
	bag, ok := f.bags[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return bag, nil
}

func (f *fakeLaundryStore) UpdateStatus(ctx context.Context, bagID int64, from, to models.LaundryStatus) (*models.LaundryBag, error) {
	bag, ok := f.bags[bagID]
	if !ok || bag.Status != from {
		return nil, repositories.ErrStatusChanged
	}
	bag.Status = to
	if to.Terminal() {
		now := time.Now()
		bag.ReturnDate = &now
	}
	return bag, nil
}

func (f *fakeLaundryStore) GetHistoryByRollNo(ctx context.Context, rollNo string) ([]*models.LaundryBagDetail, error) {
	return nil, nil
}

func (f *fakeLaundryStore) GetAllBags(ctx context.Context) ([]*models.LaundryBagDetail, error) {
	return nil, nil
}

type fakeStudentDirectory struct{}

func (fakeStudentDirectory) GetStudentByUserID(ctx context.Context, userID int64) (*models.Student, error) {
	return &models.Student{
		ID: 7, UserID: userID, RollNo: "ab123", HostelID: 2, RoomNo: "502", PhoneNo: "9876543210",
		User:   &models.User{ID: userID, Email: "ab123@campus.edu", Name: "John Doe"},
		Hostel: &models.Hostel{ID: 2, Name: "Hostel 2B"},
	}, nil
}

func (fakeStudentDirectory) GetStudentByRollNo(ctx context.Context, rollNo string) (*models.Student, error) {
	return nil, repositories.ErrNotFound
}

func (fakeStudentDirectory) GetBagAssignmentByStudentID(ctx context.Context, studentID int64) (*models.BagAssignment, error) {
	return &models.BagAssignment{ID: 11, BagCode: "BAG-0042", StudentID: studentID}, nil
}

func laundryTestRouter(store *fakeLaundryStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	svc := services.NewLaundryService(store, fakeStudentDirectory{}, zerolog.Nop())
	controller := NewLaundryController(svc, zerolog.Nop())

	router := gin.New()
	// Stand-in for JWTAuth: inject the authenticated account
	router.Use(func(c *gin.Context) {
		c.Set(middleware.ContextUserID, int64(42))
		c.Set(middleware.ContextRollNo, "ab123")
	})
	router.POST("/laundry", controller.Submit)
	router.PUT("/laundry/:id/status", controller.UpdateStatus)
	return router
}

func TestLaundryControllerSubmit(t *testing.T) {
	router := laundryTestRouter(&fakeLaundryStore{bags: map[int64]*models.LaundryBag{}})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/laundry", strings.NewReader(`{"clothesCount": 12, "note": "woollens"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Data struct {
			BagCode string `json:"bagCode"`
			Status  string `json:"status"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "BAG-0042", resp.Data.BagCode)
	assert.Equal(t, "Received", resp.Data.Status)
}

func TestLaundryControllerSubmitRejectsBadPayload(t *testing.T) {
	router := laundryTestRouter(&fakeLaundryStore{bags: map[int64]*models.LaundryBag{}})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/laundry", strings.NewReader(`{"note": "no count"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLaundryControllerSubmitCountOutOfRange(t *testing.T) {
	router := laundryTestRouter(&fakeLaundryStore{bags: map[int64]*models.LaundryBag{}})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/laundry", strings.NewReader(`{"clothesCount": 31}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLaundryControllerUpdateStatus(t *testing.T) {
	store := &fakeLaundryStore{bags: map[int64]*models.LaundryBag{
		1: {ID: 1, Status: models.StatusReceived},
	}}
	router := laundryTestRouter(store)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("PUT", "/laundry/1/status", strings.NewReader(`{"status": "Washing"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, models.StatusWashing, store.bags[1].Status)
}

func TestLaundryControllerUpdateStatusBackward(t *testing.T) {
	store := &fakeLaundryStore{bags: map[int64]*models.LaundryBag{
		1: {ID: 1, Status: models.StatusDrying},
	}}
	router := laundryTestRouter(store)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("PUT", "/laundry/1/status", strings.NewReader(`{"status": "Washing"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, models.StatusDrying, store.bags[1].Status)
}

func TestLaundryControllerUpdateStatusUnknownBag(t *testing.T) {
	router := laundryTestRouter(&fakeLaundryStore{bags: map[int64]*models.LaundryBag{}})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("PUT", "/laundry/404/status", strings.NewReader(`{"status": "Washing"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
