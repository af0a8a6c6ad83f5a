package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/hostelops/washline/internal/app/models/dto"
	"github.com/hostelops/washline/internal/app/services"
	"github.com/hostelops/washline/internal/middleware"
)

// StudentController serves student profiles and hostel reference data
type StudentController struct {
	studentService *services.StudentService
	logger         zerolog.Logger
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService *services.StudentService, logger zerolog.Logger) *StudentController {
	return &StudentController{
		studentService: studentService,
		logger:         logger,
	}
}

// GetProfile returns the authenticated student's profile
// @Summary Get own profile
// @Description Returns the profile of the logged-in student, including the outstanding-laundry flag.
// @Tags students
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.StudentProfileResponse} "Student profile"
// @Failure 401 {object} dto.APIResponse "Not authenticated"
// @Failure 404 {object} dto.APIResponse "Student not found"
// @Router /students/me [get]
func (c *StudentController) GetProfile(ctx *gin.Context) {
	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")))
		return
	}

	profile, err := c.studentService.GetProfile(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(profile))
}

// GetStudentByEmail looks up a student for the staff desk
// @Summary Look up a student by email
// @Description Returns the student profile behind an email address. Staff only.
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param email query string true "Student email"
// @Success 200 {object} dto.APIResponse{data=dto.StudentProfileResponse} "Student profile"
// @Failure 400 {object} dto.APIResponse "Missing email"
// @Failure 403 {object} dto.APIResponse "Staff only"
// @Failure 404 {object} dto.APIResponse "Student not found"
// @Router /students [get]
func (c *StudentController) GetStudentByEmail(ctx *gin.Context) {
	email := ctx.Query("email")
	if email == "" {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "email query parameter is required").WithField("email")))
		return
	}

	profile, err := c.studentService.GetStudentByEmail(ctx.Request.Context(), email)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(profile))
}

// ListHostels returns all hostels
// @Summary List hostels
// @Description Returns every hostel, for the registration form and broadcast targeting.
// @Tags hostels
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]dto.HostelResponse} "Hostels"
// @Router /hostels [get]
func (c *StudentController) ListHostels(ctx *gin.Context) {
	hostels, err := c.studentService.ListHostels(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(hostels))
}
