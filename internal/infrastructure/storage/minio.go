package storage

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/johnquangdev/voicenotes/pkg/config"
)

// MinIOClient stores exported reports in an S3-compatible bucket
type MinIOClient struct {
	client    *minio.Client
	bucket    string
	publicURL string // e.g. https://minio.example.com when behind a reverse proxy
	expiry    time.Duration
}

// NewMinIOClient creates a new MinIO client and makes sure the bucket exists
func NewMinIOClient(cfg *config.StorageConfig) (*MinIOClient, error) {
	minioClient, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}

	client := &MinIOClient{
		client:    minioClient,
		bucket:    cfg.BucketName,
		publicURL: strings.TrimRight(cfg.PublicURL, "/"),
		expiry:    cfg.URLExpiry,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := client.ensureBucket(ctx); err != nil {
		return nil, fmt.Errorf("failed to initialize bucket: %w", err)
	}

	return client, nil
}

// ensureBucket creates the bucket when missing. Objects stay private and
// are shared through presigned URLs.
func (m *MinIOClient) ensureBucket(ctx context.Context) error {
	exists, err := m.client.BucketExists(ctx, m.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if exists {
		return nil
	}

	if err := m.client.MakeBucket(ctx, m.bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("failed to create bucket: %w", err)
	}
	return nil
}

// UploadFile uploads a stream to MinIO
func (m *MinIOClient) UploadFile(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) error {
	_, err := m.client.PutObject(ctx, m.bucket, objectName, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return fmt.Errorf("failed to upload file: %w", err)
	}
	return nil
}

// UploadLocalFile uploads a file from disk
func (m *MinIOClient) UploadLocalFile(ctx context.Context, objectName, path, contentType string) error {
	_, err := m.client.FPutObject(ctx, m.bucket, objectName, path, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return fmt.Errorf("failed to upload %s: %w", path, err)
	}
	return nil
}

// GetFileURL returns a presigned download URL. expiry <= 0 uses the
// configured default.
func (m *MinIOClient) GetFileURL(ctx context.Context, objectName string, expiry time.Duration) (string, error) {
	if expiry <= 0 {
		expiry = m.expiry
	}
	if expiry <= 0 {
		expiry = time.Hour
	}

	u, err := m.client.PresignedGetObject(ctx, m.bucket, objectName, expiry, nil)
	if err != nil {
		return "", fmt.Errorf("failed to generate presigned URL: %w", err)
	}

	return withPublicURL(u, m.publicURL), nil
}

// withPublicURL swaps the internal endpoint for the public one, keeping
// the /bucket/object path and the signature query.
func withPublicURL(u *url.URL, publicURL string) string {
	if publicURL == "" {
		return u.String()
	}
	return publicURL + u.EscapedPath() + "?" + u.RawQuery
}

// Ping checks that the bucket is reachable
func (m *MinIOClient) Ping(ctx context.Context) error {
	exists, err := m.client.BucketExists(ctx, m.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket: %w", err)
	}
	if !exists {
		return fmt.Errorf("bucket %s does not exist", m.bucket)
	}
	return nil
}
