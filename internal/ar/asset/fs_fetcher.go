package asset

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// FSFetcher reads assets below a root directory
type FSFetcher struct {
	fs   afero.Fs
	root string
}

func NewFSFetcher(fs afero.Fs, root string) *FSFetcher {
	return &FSFetcher{fs: fs, root: root}
}

func (f *FSFetcher) Fetch(ctx context.Context, ref string) (io.ReadCloser, error) {
	key, err := objectKey(ref)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	file, err := f.fs.Open(filepath.Join(f.root, filepath.FromSlash(key)))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrAssetNotFound, ref)
		}
		return nil, fmt.Errorf("failed to open asset %s: %w", ref, err)
	}
	return file, nil
}
