package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"youthive/internal/config"
)

// ErrObjectExists signals a no-overwrite violation: uploads never
// replace an existing object.
var ErrObjectExists = errors.New("object already exists")

type Storage interface {
	UploadPDF(ctx context.Context, objectName string, file io.Reader, size int64, contentType string) (string, error)
	DeletePDF(ctx context.Context, objectName string) error
	PublicURL(objectName string) string
}

type MinIOClient struct {
	client *minio.Client
	cfg    config.MinIO
}

func NewMinIOClient(cfg *config.Config) (*MinIOClient, error) {
	client, err := minio.New(cfg.MinIO.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinIO.AccessKey, cfg.MinIO.SecretKey, ""),
		Secure: cfg.MinIO.UseSSL,
		Region: cfg.MinIO.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}

	m := &MinIOClient{client: client, cfg: cfg.MinIO}

	if err := m.ensureBucket(context.Background()); err != nil {
		return nil, err
	}

	return m, nil
}

func (m *MinIOClient) ensureBucket(ctx context.Context) error {
	exists, err := m.client.BucketExists(ctx, m.cfg.BucketName)
	if err != nil {
		return fmt.Errorf("failed to check bucket: %w", err)
	}
	if exists {
		return nil
	}

	err = m.client.MakeBucket(ctx, m.cfg.BucketName, minio.MakeBucketOptions{Region: m.cfg.Region})
	if err != nil {
		return fmt.Errorf("failed to create bucket %s: %w", m.cfg.BucketName, err)
	}
	return nil
}

// UploadPDF stores the file under objectName and returns its public
// URL. Existing objects are never overwritten.
//
// The check and the write are separate requests, so two concurrent
// uploads of the same objectName can race past the StatObject. Object
// names carry an xid suffix, which keeps such a collision out of
// normal operation.
func (m *MinIOClient) UploadPDF(ctx context.Context, objectName string, file io.Reader, size int64, contentType string) (string, error) {
	_, err := m.client.StatObject(ctx, m.cfg.BucketName, objectName, minio.StatObjectOptions{})
	if err == nil {
		return "", ErrObjectExists
	}

	_, err = m.client.PutObject(ctx, m.cfg.BucketName, objectName, file, size,
		minio.PutObjectOptions{
			ContentType:  contentType,
			CacheControl: "max-age=3600",
			UserMetadata: map[string]string{
				"uploaded-at": time.Now().Format(time.RFC3339),
			},
		})
	if err != nil {
		return "", fmt.Errorf("failed to upload to MinIO: %w", err)
	}

	return m.PublicURL(objectName), nil
}

func (m *MinIOClient) DeletePDF(ctx context.Context, objectName string) error {
	err := m.client.RemoveObject(ctx, m.cfg.BucketName, objectName, minio.RemoveObjectOptions{})
	if err != nil {
		return fmt.Errorf("failed to delete from MinIO: %w", err)
	}
	return nil
}

func (m *MinIOClient) PublicURL(objectName string) string {
	scheme := "http"
	if m.cfg.UseSSL {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", scheme, m.cfg.Endpoint, m.cfg.BucketName, objectName)
}
