package middleware

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hostelops/washline/internal/app/models/dto"
	"github.com/hostelops/washline/internal/pkg/apperrors"
)

func TestHandleAPIError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   dto.ErrorCode
	}{
		{"not found", apperrors.ErrBagNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound},
		{"student not found", apperrors.ErrStudentNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound},
		{"invalid credentials", apperrors.ErrInvalidCredentials, http.StatusUnauthorized, dto.ErrorCodeInvalidCredentials},
		{"permission denied", apperrors.ErrPermissionDenied, http.StatusForbidden, dto.ErrorCodeForbidden},
		{"validation", apperrors.NewValidationError("bad input"), http.StatusBadRequest, dto.ErrorCodeValidationFailed},
		{"clothes count", fmt.Errorf("%w: got 31", apperrors.ErrClothesCountOutOfRange), http.StatusBadRequest, dto.ErrorCodeValidationFailed},
		{"unknown status", apperrors.ErrUnknownLaundryStatus, http.StatusBadRequest, dto.ErrorCodeValidationFailed},
		{"email taken", apperrors.ErrEmailAlreadyExists, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists},
		{"laundry in process", apperrors.ErrLaundryInProcess, http.StatusConflict, dto.ErrorCodeConflict},
		{"backward move", apperrors.ErrBackwardStatusMove, http.StatusConflict, dto.ErrorCodeConflict},
		{"conflict wrapper", apperrors.NewConflictError("edited concurrently"), http.StatusConflict, dto.ErrorCodeConflict},
		{"upload failed", fmt.Errorf("%w: timeout", apperrors.ErrUploadFailed), http.StatusBadGateway, dto.ErrorCodeUploadFailed},
		{"partial update", fmt.Errorf("%w: owner flag", apperrors.ErrPartialUpdate), http.StatusInternalServerError, dto.ErrorCodePartialUpdate},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError, dto.ErrorCodeInternalServer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest("GET", "/", nil)

			HandleAPIError(c, tt.err)

			assert.Equal(t, tt.wantStatus, w.Code)

			var resp dto.APIResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			require.NotNil(t, resp.Error)
			assert.Equal(t, tt.wantCode, resp.Error.Code)
		})
	}
}

func TestHandleAPIErrorHidesInternalDetails(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/", nil)

	HandleAPIError(c, errors.New("pq: connection refused on 10.1.2.3"))

	var resp dto.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Error)
	assert.Equal(t, "Internal server error", resp.Error.Message)
	assert.NotContains(t, w.Body.String(), "10.1.2.3")
}
