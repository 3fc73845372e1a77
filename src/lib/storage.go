package lib

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/prajwalshetti/Project-matrimony/src/config"
)

// PhotoStorage uploads profile photos to an S3-compatible bucket and hands
// back the public URL stored on the user document.
type PhotoStorage struct {
	client *minio.Client
	bucket string
}

func NewPhotoStorage(cfg config.S3Config) (*PhotoStorage, error) {
	if cfg.Endpoint == "" {
		return nil, fmt.Errorf("s3 endpoint is required")
	}

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("create s3 client: %w", err)
	}

	return &PhotoStorage{client: client, bucket: cfg.Bucket}, nil
}

func (s *PhotoStorage) EnsureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("check bucket: %w", err)
	}
	if exists {
		return nil
	}
	if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("make bucket: %w", err)
	}
	return nil
}

// UploadProfilePhoto stores the photo under profiles/<userID>/<uuid><ext>
// and returns its URL.
func (s *PhotoStorage) UploadProfilePhoto(ctx context.Context, userID, fileName, contentType string, body io.Reader, size int64) (string, error) {
	key := fmt.Sprintf("profiles/%s/%s%s", userID, uuid.NewString(), strings.ToLower(path.Ext(fileName)))

	if strings.TrimSpace(contentType) == "" {
		contentType = "application/octet-stream"
	}

	_, err := s.client.PutObject(ctx, s.bucket, key, body, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("put object: %w", err)
	}

	return fmt.Sprintf("%s/%s/%s", s.client.EndpointURL(), s.bucket, key), nil
}
