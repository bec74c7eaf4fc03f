package asset

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// MinIOConfig locates the bucket holding model assets
type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	Secure    bool
}

// MinIOFetcher reads assets from an S3-compatible bucket
type MinIOFetcher struct {
	client *minio.Client
	bucket string
}

func NewMinIOFetcher(cfg MinIOConfig) (*MinIOFetcher, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.Secure,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}
	return &MinIOFetcher{client: client, bucket: cfg.Bucket}, nil
}

func (f *MinIOFetcher) Fetch(ctx context.Context, ref string) (io.ReadCloser, error) {
	key, err := objectKey(ref)
	if err != nil {
		return nil, err
	}

	obj, err := f.client.GetObject(ctx, f.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch asset %s: %w", ref, err)
	}
	// GetObject is lazy; Stat surfaces a missing key before parsing starts
	if _, err := obj.Stat(); err != nil {
		obj.Close()
		resp := minio.ToErrorResponse(err)
		if resp.Code == "NoSuchKey" || resp.StatusCode == http.StatusNotFound {
			return nil, fmt.Errorf("%w: %s", ErrAssetNotFound, ref)
		}
		return nil, fmt.Errorf("failed to stat asset %s: %w", ref, err)
	}
	return obj, nil
}
