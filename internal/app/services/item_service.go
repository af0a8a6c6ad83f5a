package services

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"strings"

	"github.com/rs/zerolog"

	"github.com/hostelops/washline/internal/app/models"
	"github.com/hostelops/washline/internal/app/models/dto"
	"github.com/hostelops/washline/internal/app/repositories"
	"github.com/hostelops/washline/internal/pkg/apperrors"
	"github.com/hostelops/washline/internal/pkg/filestorage"
	"github.com/hostelops/washline/internal/pkg/metrics"
)

// itemStore is the persistence surface ItemService depends on
type itemStore interface {
	CreateItem(ctx context.Context, item *models.Item) error
	ListByTag(ctx context.Context, tag models.ItemTag) ([]*models.Item, error)
}

// ItemService handles the lost-and-found board
type ItemService struct {
	items      itemStore
	students   studentDirectory
	imageStore filestorage.ImageStore
	logger     zerolog.Logger
}

// NewItemService creates a new ItemService
func NewItemService(items itemStore, students studentDirectory, imageStore filestorage.ImageStore, logger zerolog.Logger) *ItemService {
	return &ItemService{
		items:      items,
		students:   students,
		imageStore: imageStore,
		logger:     logger,
	}
}

// Post publishes a lost or found listing. The image is uploaded before the
// row is inserted; if the insert then fails the uploaded image is removed on
// a best-effort basis so the store does not accumulate orphans.
func (s *ItemService) Post(ctx context.Context, userID int64, req *dto.PostItemRequest, image *multipart.FileHeader) (*dto.ItemResponse, error) {
	tag := models.ItemTag(req.Tag)
	if !tag.Valid() {
		return nil, fmt.Errorf("%w: %q", apperrors.ErrUnknownItemTag, req.Tag)
	}
	if strings.TrimSpace(req.Description) == "" {
		return nil, apperrors.NewValidationError("description cannot be empty")
	}
	if image == nil {
		return nil, apperrors.NewValidationError("an image is required")
	}

	student, err := s.students.GetStudentByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error getting student: %w", err)
	}

	imageURL, err := s.imageStore.Save(ctx, image)
	if err != nil {
		metrics.ImageUploadFailuresTotal.Inc()
		s.logger.Error().Err(err).Str("tag", req.Tag).Msg("Image upload failed")
		return nil, fmt.Errorf("%w: %v", apperrors.ErrUploadFailed, err)
	}

	item := &models.Item{
		Tag:         tag,
		Description: req.Description,
		ImageURL:    imageURL,
		RollNo:      student.RollNo,
		HostelID:    student.HostelID,
		RoomNo:      student.RoomNo,
		PhoneNo:     student.PhoneNo,
	}

	if err := s.items.CreateItem(ctx, item); err != nil {
		if delErr := s.imageStore.Delete(ctx, imageURL); delErr != nil {
			s.logger.Warn().Err(delErr).Str("imageURL", imageURL).Msg("Failed to remove orphaned image")
		}
		return nil, fmt.Errorf("error creating item: %w", err)
	}

	metrics.ItemPostsTotal.WithLabelValues(string(tag)).Inc()
	s.logger.Info().Int64("itemID", item.ID).Str("tag", string(tag)).Msg("Lost-and-found item posted")

	return toItemResponse(item), nil
}

// List returns the board entries under one tag, most recent first
func (s *ItemService) List(ctx context.Context, tagStr string) ([]*dto.ItemResponse, error) {
	tag := models.ItemTag(tagStr)
	if !tag.Valid() {
		return nil, fmt.Errorf("%w: %q", apperrors.ErrUnknownItemTag, tagStr)
	}

	items, err := s.items.ListByTag(ctx, tag)
	if err != nil {
		return nil, fmt.Errorf("error listing items: %w", err)
	}

	resp := make([]*dto.ItemResponse, 0, len(items))
	for _, item := range items {
		resp = append(resp, toItemResponse(item))
	}

	return resp, nil
}

func toItemResponse(item *models.Item) *dto.ItemResponse {
	return &dto.ItemResponse{
		ID:          item.ID,
		Tag:         string(item.Tag),
		Description: item.Description,
		ImageURL:    item.ImageURL,
		RollNo:      item.RollNo,
		HostelID:    item.HostelID,
		RoomNo:      item.RoomNo,
		PhoneNo:     item.PhoneNo,
		CreatedAt:   item.CreatedAt,
	}
}
