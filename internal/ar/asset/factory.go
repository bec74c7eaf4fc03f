package asset

import (
	"fmt"

	"github.com/spf13/afero"

	"github.com/tair/virtual-tryon/internal/config"
)

// FromConfig returns the fetcher selected by assets.source
func FromConfig(cfg *config.Config) (Fetcher, error) {
	switch cfg.Assets.Source {
	case config.AssetsFS, "":
		return NewFSFetcher(afero.NewOsFs(), cfg.Assets.Root), nil
	case config.AssetsHTTP:
		return NewHTTPFetcher(cfg.Assets.BaseURL)
	case config.AssetsMinIO:
		return NewMinIOFetcher(MinIOConfig{
			Endpoint:  cfg.MinIO.Endpoint,
			AccessKey: cfg.MinIO.AccessKey,
			SecretKey: cfg.MinIO.SecretKey,
			Bucket:    cfg.MinIO.Bucket,
			Secure:    cfg.MinIO.Secure,
		})
	default:
		return nil, fmt.Errorf("unknown asset source %q", cfg.Assets.Source)
	}
}
