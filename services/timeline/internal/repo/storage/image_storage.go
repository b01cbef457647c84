package storage

import (
	"context"
	"fmt"

	"sns-app/services/timeline/internal/entity"
)

type ImageStorage interface {
	Upload(ctx context.Context, bucket, key string, file *entity.ImageFile) (string, error)
	PublicURL(bucket, path string) string
}

// ObjectStore is the subset of the S3 client the image storage needs.
type ObjectStore interface {
	Upload(ctx context.Context, bucket, key string, data []byte, contentType string) (string, error)
	PublicURL(bucket, path string) string
}

type imageStorage struct {
	store ObjectStore
}

func NewImageStorage(store ObjectStore) ImageStorage {
	return &imageStorage{store: store}
}

func (s *imageStorage) Upload(ctx context.Context, bucket, key string, file *entity.ImageFile) (string, error) {
	if file == nil || len(file.Data) == 0 {
		return "", fmt.Errorf("no image data for %s", key)
	}

	contentType := file.ContentType
	if contentType == "" {
		contentType = "image/jpeg"
	}

	path, err := s.store.Upload(ctx, bucket, key, file.Data, contentType)
	if err != nil {
		return "", err
	}
	return path, nil
}

func (s *imageStorage) PublicURL(bucket, path string) string {
	return s.store.PublicURL(bucket, path)
}
