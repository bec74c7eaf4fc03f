package asset

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// HTTPFetcher downloads assets relative to a base URL
type HTTPFetcher struct {
	base   *url.URL
	client *http.Client
}

// NewHTTPFetcher creates a fetcher whose requests carry trace context
func NewHTTPFetcher(baseURL string) (*HTTPFetcher, error) {
	base, err := url.Parse(strings.TrimSuffix(baseURL, "/") + "/")
	if err != nil || base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("invalid asset base url %q", baseURL)
	}
	return &HTTPFetcher{
		base:   base,
		client: &http.Client{Transport: otelhttp.NewTransport(http.DefaultTransport)},
	}, nil
}

func (f *HTTPFetcher) Fetch(ctx context.Context, ref string) (io.ReadCloser, error) {
	key, err := objectKey(ref)
	if err != nil {
		return nil, err
	}

	target := f.base.ResolveReference(&url.URL{Path: key})
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build asset request: %w", err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch asset %s: %w", ref, err)
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		resp.Body.Close()
		return nil, fmt.Errorf("%w: %s", ErrAssetNotFound, ref)
	case resp.StatusCode >= 300:
		resp.Body.Close()
		return nil, fmt.Errorf("failed to fetch asset %s: status %d", ref, resp.StatusCode)
	}
	return resp.Body, nil
}
