package attachment

import (
	"context"
	"fmt"
	"strings"

	"memos-graph-sync/internal/model"
	pkgLog "memos-graph-sync/pkg/log"
)

// Resolver turns memo resources into attachment blocks.
type Resolver struct {
	host       string
	downloader Downloader
	l          pkgLog.Logger
}

// New creates a Resolver. host is the public Memos URL used to build resource links.
func New(host string, downloader Downloader, l pkgLog.Logger) *Resolver {
	return &Resolver{
		host:       strings.TrimRight(host, "/"),
		downloader: downloader,
		l:          l,
	}
}

// Resolve returns the block for res, or nil when the attachment is skipped.
func (r *Resolver) Resolve(ctx context.Context, res model.Resource, memo model.Memo, opt Options) *model.BlockPayload {
	if opt.Mode == ModeDisabled {
		return nil
	}

	link := r.link(res, memo)

	if opt.Mode == ModeDownload && link != "" && r.downloader != nil {
		localPath, err := r.downloader.Download(ctx, link, res.Filename, opt.GraphPath)
		if err == nil {
			return &model.BlockPayload{Content: embed(res.Filename, localPath)}
		}
		r.l.Warnf(ctx, "attachment: %s falls back to remote link: %v", res.Filename, err)
	}

	if link != "" {
		return &model.BlockPayload{Content: embed(res.Filename, link)}
	}

	if opt.ShowUnavailable {
		return &model.BlockPayload{Content: fmt.Sprintf("📎 %s (view this attachment in Memos)", res.Filename)}
	}
	return nil
}

// link prefers the external link; public memos fall back to the server resource URL.
func (r *Resolver) link(res model.Resource, memo model.Memo) string {
	if res.ExternalLink != "" {
		return res.ExternalLink
	}
	if memo.Visibility.IsPublic() && r.host != "" {
		return fmt.Sprintf("%s/o/r/%s", r.host, res.ID)
	}
	return ""
}

func embed(name, target string) string {
	return fmt.Sprintf("![%s](%s)", name, target)
}
