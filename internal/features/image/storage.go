package image

import (
	"bytes"
	"context"
	"fmt"

	"cardvault/internal/config"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"go.uber.org/fx"
)

// Storage is the blob store for uploaded card images.
type Storage interface {
	Put(ctx context.Context, key string, data []byte, contentType string) error
	PublicURL(key string) string
}

type MinioStorage struct {
	Client     *minio.Client
	Bucket     string
	PublicBase string
}

// NewMinioStorage connects to the object store and makes sure the bucket
// exists before the server starts taking uploads.
func NewMinioStorage(lc fx.Lifecycle, cfg *config.Config) (Storage, error) {
	client, err := minio.New(cfg.S3Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.S3AccessKey, cfg.S3SecretKey, ""),
		Secure: cfg.S3UseSSL,
		Region: cfg.S3Region,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create object storage client: %w", err)
	}

	s := &MinioStorage{
		Client:     client,
		Bucket:     cfg.S3Bucket,
		PublicBase: cfg.S3PublicURL,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return s.ensureBucket(ctx)
		},
	})

	return s, nil
}

func (s *MinioStorage) ensureBucket(ctx context.Context) error {
	exists, err := s.Client.BucketExists(ctx, s.Bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket %q: %w", s.Bucket, err)
	}
	if exists {
		return nil
	}
	if err := s.Client.MakeBucket(ctx, s.Bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("failed to create bucket %q: %w", s.Bucket, err)
	}
	return nil
}

func (s *MinioStorage) Put(ctx context.Context, key string, data []byte, contentType string) error {
	_, err := s.Client.PutObject(ctx, s.Bucket, key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return fmt.Errorf("failed to store object %q: %w", key, err)
	}
	return nil
}

func (s *MinioStorage) PublicURL(key string) string {
	return s.PublicBase + "/" + key
}
