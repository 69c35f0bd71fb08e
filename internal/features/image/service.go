package image

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrInvalidImage is returned for payloads that are not a base64 image
// data-URL.
var ErrInvalidImage = errors.New("image must be a base64 data-URL")

var allowedExtensions = map[string]bool{
	"png":  true,
	"jpeg": true,
	"jpg":  true,
	"gif":  true,
	"webp": true,
}

type ImageService interface {
	Upload(ctx context.Context, dataURL string) (string, error)
}

type ImageServiceImpl struct {
	Storage Storage
	Logger  *zap.Logger
}

func NewImageService(storage Storage, logger *zap.Logger) ImageService {
	return &ImageServiceImpl{Storage: storage, Logger: logger}
}

// Upload decodes a `data:image/<ext>;base64,` payload, stores it under a
// unique key, and returns the public URL.
func (s *ImageServiceImpl) Upload(ctx context.Context, dataURL string) (string, error) {
	ext, payload, err := parseDataURL(dataURL)
	if err != nil {
		return "", err
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", ErrInvalidImage
	}
	if len(data) == 0 {
		return "", ErrInvalidImage
	}

	key := fmt.Sprintf("cards/%d-%s.%s", time.Now().UnixNano(), uuid.NewString(), ext)
	contentType := "image/" + ext

	if err := s.Storage.Put(ctx, key, data, contentType); err != nil {
		s.Logger.Error("image upload failed", zap.String("key", key), zap.Error(err))
		return "", err
	}

	return s.Storage.PublicURL(key), nil
}

// parseDataURL splits a data-URL into its image extension and base64 payload.
func parseDataURL(dataURL string) (ext, payload string, err error) {
	rest, ok := strings.CutPrefix(dataURL, "data:image/")
	if !ok {
		return "", "", ErrInvalidImage
	}
	ext, payload, ok = strings.Cut(rest, ";base64,")
	if !ok {
		return "", "", ErrInvalidImage
	}
	ext = strings.ToLower(ext)
	if !allowedExtensions[ext] {
		return "", "", ErrInvalidImage
	}
	return ext, payload, nil
}
