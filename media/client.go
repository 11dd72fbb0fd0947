// Package media wraps the external media host. Uploaded images get a durable
// public URL that callers later store on the relevant entity.
package media

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"portfolio-backend/config"
)

// UploadResult carries the service-assigned public URL and opaque asset
// identifier for an uploaded file.
type UploadResult struct {
	URL      string
	PublicID string
}

// Uploader is the surface handlers depend on, so they can be tested without a
// live media host.
type Uploader interface {
	Upload(ctx context.Context, name string, reader io.Reader, size int64, contentType string) (UploadResult, error)
}

// Client is an S3-compatible media host client scoped to one bucket and
// folder.
type Client struct {
	mc      *minio.Client
	bucket  string
	folder  string
	baseURL string
}

func NewClient(cfg config.MediaConfig) (*Client, error) {
	if cfg.Endpoint == "" {
		return nil, fmt.Errorf("media endpoint is required")
	}
	if cfg.AccessKey == "" || cfg.SecretKey == "" {
		return nil, fmt.Errorf("media access key and secret key are required")
	}

	mc, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create media client: %w", err)
	}

	baseURL := cfg.PublicBaseURL
	if baseURL == "" {
		scheme := "http"
		if cfg.UseSSL {
			scheme = "https"
		}
		baseURL = fmt.Sprintf("%s://%s", scheme, cfg.Endpoint)
	}

	return &Client{
		mc:      mc,
		bucket:  cfg.Bucket,
		folder:  cfg.Folder,
		baseURL: strings.TrimRight(baseURL, "/"),
	}, nil
}

// EnsureBucket creates the bucket if it does not exist yet.
func (c *Client) EnsureBucket(ctx context.Context) error {
	exists, err := c.mc.BucketExists(ctx, c.bucket)
	if err != nil {
		return fmt.Errorf("check bucket: %w", err)
	}
	if !exists {
		if err := c.mc.MakeBucket(ctx, c.bucket, minio.MakeBucketOptions{}); err != nil {
			return fmt.Errorf("create bucket: %w", err)
		}
	}
	return nil
}

// Upload stores the file under the configured folder and returns its public
// URL and asset identifier.
func (c *Client) Upload(ctx context.Context, name string, reader io.Reader, size int64, contentType string) (UploadResult, error) {
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	key := path.Join(c.folder, name)
	_, err := c.mc.PutObject(ctx, c.bucket, key, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return UploadResult{}, fmt.Errorf("upload %s: %w", key, err)
	}

	return UploadResult{
		URL:      fmt.Sprintf("%s/%s/%s", c.baseURL, c.bucket, key),
		PublicID: key,
	}, nil
}
