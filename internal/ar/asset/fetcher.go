package asset

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"
)

var (
	ErrAssetNotFound     = errors.New("asset not found")
	ErrUnsupportedFormat = errors.New("unsupported model format")
	ErrInvalidRef        = errors.New("invalid asset reference")
)

// Fetcher opens the raw bytes of a model asset
type Fetcher interface {
	Fetch(ctx context.Context, ref string) (io.ReadCloser, error)
}

// objectKey turns a model ref such as /models/shoe.glb into a relative key,
// rejecting refs that escape the asset root
func objectKey(ref string) (string, error) {
	if ref == "" {
		return "", ErrInvalidRef
	}
	key := path.Clean("/" + strings.TrimSpace(ref))
	key = strings.TrimPrefix(key, "/")
	if key == "" || key == "." {
		return "", fmt.Errorf("%w: %q", ErrInvalidRef, ref)
	}
	for _, part := range strings.Split(ref, "/") {
		if part == ".." {
			return "", fmt.Errorf("%w: %q", ErrInvalidRef, ref)
		}
	}
	return key, nil
}
