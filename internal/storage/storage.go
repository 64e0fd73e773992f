package storage

import (
	"context"
	"errors"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// ErrUnsupportedType is returned when an upload is not an accepted image type.
var ErrUnsupportedType = errors.New("storage: images only (jpg, jpeg, png, gif, webp)")

// Storage persists uploaded project images and removes them when their
// owning record stops referencing them.
type Storage interface {
	// Store writes the uploaded content and returns the stored filename.
	Store(ctx context.Context, src io.Reader, originalName string) (string, error)

	// Delete removes a stored file. Deleting a file that does not exist
	// is not an error.
	Delete(ctx context.Context, storedName string) error
}

var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// newStoredName generates a collision-free filename keeping the original
// extension, rejecting non-image extensions.
func newStoredName(originalName string) (string, error) {
	ext := strings.ToLower(filepath.Ext(originalName))
	if !allowedExtensions[ext] {
		return "", ErrUnsupportedType
	}
	return uuid.NewString() + ext, nil
}
