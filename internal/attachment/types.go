package attachment

import (
	"context"
	"errors"
)

// Mode is the attachment policy.
type Mode string

const (
	ModeLink     Mode = "link"
	ModeDownload Mode = "download"
	ModeDisabled Mode = "disabled"
)

// Valid reports whether m is a known mode.
func (m Mode) Valid() bool {
	switch m {
	case ModeLink, ModeDownload, ModeDisabled:
		return true
	}
	return false
}

const (
	// AssetsDir is where downloaded attachments live, relative to the graph root.
	AssetsDir = "assets/memos"
	// relativeAssetsPrefix is how pages reference AssetsDir.
	relativeAssetsPrefix = "../assets/memos/"
)

// ErrDownload marks a failed attachment download. It is never fatal to a sync.
var ErrDownload = errors.New("attachment download failed")

// Options controls how attachments are resolved.
type Options struct {
	Mode            Mode
	ShowUnavailable bool
	GraphPath       string // required for ModeDownload
}

// Downloader materializes a remote attachment under the graph's assets directory
// and returns the path pages should embed.
type Downloader interface {
	Download(ctx context.Context, link, filename, graphPath string) (string, error)
}
