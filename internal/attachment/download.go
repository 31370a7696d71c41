package attachment

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"regexp"
	"time"

	pkgLog "memos-graph-sync/pkg/log"
)

const downloadTimeout = 30 * time.Second

var unsafeFilename = regexp.MustCompile(`[<>:"/\\|?*]`)

// SanitizeFilename replaces characters that are not portable in file names with "_".
func SanitizeFilename(name string) string {
	return unsafeFilename.ReplaceAllString(name, "_")
}

// FileDownloader stores attachments on the local filesystem.
type FileDownloader struct {
	httpClient *http.Client
	l          pkgLog.Logger
}

// NewFileDownloader creates a FileDownloader. A nil client gets a 30s timeout.
func NewFileDownloader(httpClient *http.Client, l pkgLog.Logger) *FileDownloader {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: downloadTimeout}
	}
	return &FileDownloader{httpClient: httpClient, l: l}
}

// Download saves link as <graphPath>/assets/memos/<sanitized filename>. An existing
// file is reused without fetching.
func (d *FileDownloader) Download(ctx context.Context, link, filename, graphPath string) (string, error) {
	if graphPath == "" {
		return "", fmt.Errorf("%w: graph path is not configured", ErrDownload)
	}

	safe := SanitizeFilename(filename)
	assetsDir := filepath.Join(graphPath, filepath.FromSlash(AssetsDir))
	target := filepath.Join(assetsDir, safe)
	relative := relativeAssetsPrefix + safe

	if _, err := os.Stat(target); err == nil {
		d.l.Debugf(ctx, "attachment: already exists: %s", safe)
		return relative, nil
	}

	if err := os.MkdirAll(assetsDir, 0o755); err != nil {
		return "", fmt.Errorf("%w: failed to create assets dir: %v", ErrDownload, err)
	}

	ctx, cancel := context.WithTimeout(ctx, downloadTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, link, nil)
	if err != nil {
		return "", fmt.Errorf("%w: failed to build request: %v", ErrDownload, err)
	}

	resp, err := d.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrDownload, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("%w: status %d for %s", ErrDownload, resp.StatusCode, link)
	}

	tmp, err := os.CreateTemp(assetsDir, "."+safe+".*")
	if err != nil {
		return "", fmt.Errorf("%w: failed to create temp file: %v", ErrDownload, err)
	}
	defer os.Remove(tmp.Name())

	n, err := io.Copy(tmp, resp.Body)
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return "", fmt.Errorf("%w: failed to write %s: %v", ErrDownload, safe, err)
	}
	if err := os.Rename(tmp.Name(), target); err != nil {
		return "", fmt.Errorf("%w: failed to move %s into place: %v", ErrDownload, safe, err)
	}

	d.l.Infof(ctx, "attachment: saved %s (%d bytes)", safe, n)
	return relative, nil
}
