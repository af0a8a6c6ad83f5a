package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/hostelops/washline/internal/app/models/dto"
	"github.com/hostelops/washline/internal/app/services"
	"github.com/hostelops/washline/internal/middleware"
)

// LaundryController handles the bag lifecycle endpoints
type LaundryController struct {
	laundryService *services.LaundryService
	logger         zerolog.Logger
}

// NewLaundryController creates a new LaundryController
func NewLaundryController(laundryService *services.LaundryService, logger zerolog.Logger) *LaundryController {
	return &LaundryController{
		laundryService: laundryService,
		logger:         logger,
	}
}

// Submit handles a laundry drop-off
// @Summary Submit a laundry bag
// @Description Records a drop-off for the logged-in student. Refused while a previous bag is still in process.
// @Tags laundry
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.SubmitLaundryRequest true "Drop-off details"
// @Success 201 {object} dto.APIResponse{data=dto.LaundryBagResponse} "Bag accepted"
// @Failure 400 {object} dto.APIResponse "Clothes count out of range"
// @Failure 409 {object} dto.APIResponse "Laundry already in process"
// @Router /laundry [post]
func (c *LaundryController) Submit(ctx *gin.Context) {
	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")))
		return
	}

	var req dto.SubmitLaundryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	bag, err := c.laundryService.Submit(ctx.Request.Context(), userID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(bag))
}

// UpdateStatus handles a staff status edit
// @Summary Update a bag's status
// @Description Moves a bag to a later lifecycle status. Staff only. Backward moves are rejected.
// @Tags laundry
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Bag ID"
// @Param request body dto.UpdateLaundryStatusRequest true "Target status"
// @Success 200 {object} dto.APIResponse{data=models.LaundryBag} "Updated bag"
// @Failure 400 {object} dto.APIResponse "Unknown status"
// @Failure 403 {object} dto.APIResponse "Staff only"
// @Failure 404 {object} dto.APIResponse "Bag not found"
// @Failure 409 {object} dto.APIResponse "Backward move or concurrent edit"
// @Router /laundry/{id}/status [put]
func (c *LaundryController) UpdateStatus(ctx *gin.Context) {
	bagID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "invalid bag id").WithField("id")))
		return
	}

	var req dto.UpdateLaundryStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	bag, err := c.laundryService.SetStatus(ctx.Request.Context(), bagID, req.Status)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(bag))
}

// GetHistory returns the authenticated student's laundry history
// @Summary Get own laundry history
// @Description Returns the logged-in student's bags, most recent first.
// @Tags laundry
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.LaundryBagResponse} "Laundry history"
// @Failure 401 {object} dto.APIResponse "Not authenticated"
// @Router /laundry/history [get]
func (c *LaundryController) GetHistory(ctx *gin.Context) {
	rollNo := ctx.GetString(middleware.ContextRollNo)
	if rollNo == "" {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")))
		return
	}

	history, err := c.laundryService.GetHistory(ctx.Request.Context(), rollNo)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(history))
}

// GetStudentHistory returns one student's laundry history for the staff desk
// @Summary Get a student's laundry history
// @Description Returns a student's bags by roll number, most recent first. Staff only.
// @Tags laundry
// @Produce json
// @Security BearerAuth
// @Param rollNo path string true "Roll number"
// @Success 200 {object} dto.APIResponse{data=[]dto.LaundryBagResponse} "Laundry history"
// @Failure 403 {object} dto.APIResponse "Staff only"
// @Failure 404 {object} dto.APIResponse "Student not found"
// @Router /laundry/students/{rollNo} [get]
func (c *LaundryController) GetStudentHistory(ctx *gin.Context) {
	history, err := c.laundryService.GetHistory(ctx.Request.Context(), ctx.Param("rollNo"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(history))
}

// GetAll returns every bag for the staff overview
// @Summary List all laundry bags
// @Description Returns every bag with its owner, most recent first. Staff only.
// @Tags laundry
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.LaundryBagResponse} "All bags"
// @Failure 403 {object} dto.APIResponse "Staff only"
// @Router /laundry [get]
func (c *LaundryController) GetAll(ctx *gin.Context) {
	bags, err := c.laundryService.GetAll(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(bags))
}
