package media

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/rs/zerolog"
)

// MinioConfig captures the settings for the object storage backend.
type MinioConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// MinioStore uploads listing photos to a MinIO (S3-compatible) bucket.
type MinioStore struct {
	client *minio.Client
	bucket string
	log    zerolog.Logger
}

// NewMinioStore initialises the client and ensures the bucket exists.
func NewMinioStore(ctx context.Context, cfg MinioConfig, log zerolog.Logger) (*MinioStore, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("minio client: %w", err)
	}

	if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
		exists, existsErr := client.BucketExists(ctx, cfg.Bucket)
		if existsErr != nil || !exists {
			return nil, fmt.Errorf("minio bucket %q: %w", cfg.Bucket, err)
		}
	}

	log.Info().Str("endpoint", cfg.Endpoint).Str("bucket", cfg.Bucket).Msg("media storage ready")
	return &MinioStore{client: client, bucket: cfg.Bucket, log: log}, nil
}

// Upload stores the photo under a fresh object key and returns its public
// URL. The original filename only contributes its extension.
func (s *MinioStore) Upload(ctx context.Context, filename string, data []byte) (string, error) {
	objectKey := fmt.Sprintf("photos/%s%s", uuid.NewString(), filepath.Ext(filename))

	_, err := s.client.PutObject(ctx, s.bucket, objectKey, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: http.DetectContentType(data),
	})
	if err != nil {
		return "", fmt.Errorf("minio put %q: %w", objectKey, err)
	}

	url := fmt.Sprintf("%s/%s/%s", s.client.EndpointURL(), s.bucket, objectKey)
	s.log.Debug().Str("object_key", objectKey).Int("size_bytes", len(data)).Msg("photo uploaded")
	return url, nil
}
