package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/hostelops/washline/internal/app/models/dto"
	"github.com/hostelops/washline/internal/app/services"
	"github.com/hostelops/washline/internal/middleware"
)

// Image uploads above this size are rejected before touching the store
const maxImageSize = 8 << 20 // 8 MiB

// ItemController handles the lost-and-found board endpoints
type ItemController struct {
	itemService *services.ItemService
	logger      zerolog.Logger
}

// NewItemController creates a new ItemController
func NewItemController(itemService *services.ItemService, logger zerolog.Logger) *ItemController {
	return &ItemController{
		itemService: itemService,
		logger:      logger,
	}
}

// Post publishes a lost or found listing
// @Summary Post a lost or found item
// @Description Publishes a board entry with an attached image. Contact details are filled from the poster's profile.
// @Tags items
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param tag formData string true "lost or found"
// @Param description formData string true "Item description"
// @Param image formData file true "Item photo"
// @Success 201 {object} dto.APIResponse{data=dto.ItemResponse} "Item posted"
// @Failure 400 {object} dto.APIResponse "Invalid tag or missing image"
// @Failure 502 {object} dto.APIResponse "Image upload failed"
// @Router /items [post]
func (c *ItemController) Post(ctx *gin.Context) {
	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")))
		return
	}

	var req dto.PostItemRequest
	if err := ctx.ShouldBind(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	image, err := ctx.FormFile("image")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "an image file is required").WithField("image")))
		return
	}
	if image.Size > maxImageSize {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "image must be 8 MB or smaller").WithField("image")))
		return
	}

	item, err := c.itemService.Post(ctx.Request.Context(), userID, &req, image)
	if err != nil {
		c.logger.Error().Err(err).Str("tag", req.Tag).Msg("Item post failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(item))
}

// List returns board entries under one tag
// @Summary List lost or found items
// @Description Returns the board entries under the given tag, most recent first.
// @Tags items
// @Produce json
// @Security BearerAuth
// @Param tag path string true "lost or found"
// @Success 200 {object} dto.APIResponse{data=[]dto.ItemResponse} "Board entries"
// @Failure 400 {object} dto.APIResponse "Unknown tag"
// @Router /items/{tag} [get]
func (c *ItemController) List(ctx *gin.Context) {
	items, err := c.itemService.List(ctx.Request.Context(), ctx.Param("tag"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(items))
}
