package filestorage

import (
	"context"
	"mime/multipart"
)

// ImageStore is the contract for the image storage collaborator: it accepts an
// uploaded file and returns a stable externally-resolvable URL, or fails. The
// callers stay indifferent to which backend is configured.
type ImageStore interface {
	// Save stores the uploaded file and returns its absolute URL.
	Save(ctx context.Context, fileHeader *multipart.FileHeader) (string, error)

	// Delete removes a previously stored image. Deleting an image that no
	// longer exists is not an error.
	Delete(ctx context.Context, imageURL string) error
}
