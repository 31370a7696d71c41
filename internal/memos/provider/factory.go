package provider

import (
	"fmt"
	"net/http"
	"strings"

	"memos-graph-sync/internal/memos"
	"memos-graph-sync/internal/memos/idmap"
	"memos-graph-sync/internal/memos/legacy"
	v1 "memos-graph-sync/internal/memos/v1"
	pkgLog "memos-graph-sync/pkg/log"
)

const (
	VersionV1     = "v1"
	VersionLegacy = "legacy"
)

// Config selects and configures a Memos client.
type Config struct {
	URL         string
	APIVersion  string
	AccessToken string
	OpenID      string
	HTTPClient  *http.Client
}

// NewClient creates the client matching cfg.APIVersion. An empty version means v1;
// "v0" is accepted as an alias of legacy.
func NewClient(cfg Config, ids *idmap.Mapper, l pkgLog.Logger) (memos.Client, error) {
	if cfg.URL == "" {
		return nil, fmt.Errorf("memos url is required")
	}
	if ids == nil {
		ids = idmap.New()
	}

	transport := memos.NewTransport(cfg.URL, cfg.AccessToken, cfg.OpenID, cfg.HTTPClient)

	switch strings.ToLower(cfg.APIVersion) {
	case "", VersionV1:
		return v1.New(transport, ids, l), nil
	case VersionLegacy, "v0":
		return legacy.New(transport, ids, l), nil
	default:
		return nil, fmt.Errorf("%w: %q", memos.ErrUnsupportedVersion, cfg.APIVersion)
	}
}
