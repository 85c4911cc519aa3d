package site

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"os"
	"path"
	"path/filepath"

	"github.com/efpwealth/platform/pkg/config"
	"github.com/efpwealth/platform/pkg/httputil"
	"github.com/efpwealth/platform/pkg/logger"
)

// AssetFetcher downloads the Chart.js bundles the landing page inlines,
// caching them on disk so regeneration works offline. The cache directory
// and source URLs are explicit configuration, not package globals.
type AssetFetcher struct {
	cfg    config.AssetsConfig
	client *httputil.Client
	logger *logger.Logger
}

// NewAssetFetcher creates a new AssetFetcher. The HTTP client's rate limit
// is expected to be set by the caller from the same config.
func NewAssetFetcher(cfg config.AssetsConfig, client *httputil.Client, log *logger.Logger) *AssetFetcher {
	return &AssetFetcher{cfg: cfg, client: client, logger: log}
}

// ChartScripts returns the Chart.js bundle and its date adapter as inline
// script sources, downloading whichever is not cached yet.
func (f *AssetFetcher) ChartScripts(ctx context.Context) (string, string, error) {
	chartJS, err := f.fetch(ctx, f.cfg.ChartJSURL)
	if err != nil {
		return "", "", err
	}

	adapter, err := f.fetch(ctx, f.cfg.DateAdapterURL)
	if err != nil {
		return "", "", err
	}

	return chartJS, adapter, nil
}

// fetch returns the asset body, from the on-disk cache when present.
func (f *AssetFetcher) fetch(ctx context.Context, rawURL string) (string, error) {
	name, err := assetFileName(rawURL)
	if err != nil {
		return "", err
	}
	cached := filepath.Join(f.cfg.CacheDir, name)

	if data, err := os.ReadFile(cached); err == nil {
		f.logger.WithField("asset", name).Debug("Asset served from cache")
		return string(data), nil
	}

	f.logger.WithField("url", rawURL).Info("Downloading asset")

	resp, err := f.client.Get(ctx, rawURL)
	if err != nil {
		return "", fmt.Errorf("download %s: %w", rawURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		return "", fmt.Errorf("download %s: unexpected status %d", rawURL, resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", rawURL, err)
	}

	if err := os.MkdirAll(f.cfg.CacheDir, 0o755); err != nil {
		return "", fmt.Errorf("create asset cache dir: %w", err)
	}
	if err := os.WriteFile(cached, data, 0o644); err != nil {
		return "", fmt.Errorf("cache asset %s: %w", name, err)
	}

	return string(data), nil
}

func assetFileName(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("parse asset URL %q: %w", rawURL, err)
	}
	name := path.Base(u.Path)
	if name == "" || name == "." || name == "/" {
		return "", fmt.Errorf("asset URL %q has no file name", rawURL)
	}
	return name, nil
}
