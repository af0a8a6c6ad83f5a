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

// MessageController handles announcements and complaints
type MessageController struct {
	messageService *services.MessageService
	logger         zerolog.Logger
}

// NewMessageController creates a new MessageController
func NewMessageController(messageService *services.MessageService, logger zerolog.Logger) *MessageController {
	return &MessageController{
		messageService: messageService,
		logger:         logger,
	}
}

// Broadcast sends an announcement to one hostel
// @Summary Broadcast a message to a hostel
// @Description Appends an announcement to one hostel's board. Staff only.
// @Tags messages
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.BroadcastRequest true "Announcement"
// @Success 201 {object} dto.APIResponse{data=dto.MessageResponse} "Message broadcast"
// @Failure 400 {object} dto.APIResponse "Empty body"
// @Failure 403 {object} dto.APIResponse "Staff only"
// @Failure 404 {object} dto.APIResponse "Hostel not found"
// @Router /messages [post]
func (c *MessageController) Broadcast(ctx *gin.Context) {
	senderEmail, ok := middleware.EmailFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")))
		return
	}

	var req dto.BroadcastRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	msg, err := c.messageService.Broadcast(ctx.Request.Context(), senderEmail, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(msg))
}

// ListMessages returns the announcements for the student's hostel
// @Summary List own hostel's messages
// @Description Returns the announcements addressed to the logged-in student's hostel, most recent first.
// @Tags messages
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.MessageResponse} "Messages"
// @Failure 401 {object} dto.APIResponse "Not authenticated"
// @Router /messages [get]
func (c *MessageController) ListMessages(ctx *gin.Context) {
	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")))
		return
	}

	messages, err := c.messageService.ListForStudent(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(messages))
}

// ListHostelMessages returns one hostel's announcements for the staff desk
// @Summary List a hostel's messages
// @Description Returns the announcements sent to one hostel, most recent first. Staff only.
// @Tags messages
// @Produce json
// @Security BearerAuth
// @Param hostelId path int true "Hostel ID"
// @Success 200 {object} dto.APIResponse{data=[]dto.MessageResponse} "Messages"
// @Failure 403 {object} dto.APIResponse "Staff only"
// @Router /messages/hostels/{hostelId} [get]
func (c *MessageController) ListHostelMessages(ctx *gin.Context) {
	hostelID, err := strconv.ParseInt(ctx.Param("hostelId"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "invalid hostel id").WithField("hostelId")))
		return
	}

	messages, err := c.messageService.ListForHostel(ctx.Request.Context(), hostelID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(messages))
}

// FileComplaint records a student complaint
// @Summary File a complaint
// @Description Records a complaint from the logged-in student for the staff desk.
// @Tags complaints
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.FileComplaintRequest true "Complaint"
// @Success 201 {object} dto.APIResponse{data=dto.ComplaintResponse} "Complaint filed"
// @Failure 400 {object} dto.APIResponse "Empty body"
// @Router /complaints [post]
func (c *MessageController) FileComplaint(ctx *gin.Context) {
	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")))
		return
	}

	var req dto.FileComplaintRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	complaint, err := c.messageService.FileComplaint(ctx.Request.Context(), userID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(complaint))
}

// ListComplaints returns every complaint for the staff desk
// @Summary List complaints
// @Description Returns every filed complaint, most recent first. Staff only.
// @Tags complaints
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.ComplaintResponse} "Complaints"
// @Failure 403 {object} dto.APIResponse "Staff only"
// @Router /complaints [get]
func (c *MessageController) ListComplaints(ctx *gin.Context) {
	complaints, err := c.messageService.ListComplaints(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(complaints))
}
