package main

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"memos-graph-sync/config"
	"memos-graph-sync/internal/attachment"
	"memos-graph-sync/internal/graph"
	graphRepo "memos-graph-sync/internal/graph/repository/sqlite"
	"memos-graph-sync/internal/memos/idmap"
	"memos-graph-sync/internal/memos/provider"
	memoSync "memos-graph-sync/internal/sync"
	syncUC "memos-graph-sync/internal/sync/usecase"
	"memos-graph-sync/internal/syncstatus"
	settingsRepo "memos-graph-sync/internal/syncstatus/repository/sqlite"
	"memos-graph-sync/internal/transform"
	"memos-graph-sync/pkg/database"
	"memos-graph-sync/pkg/log"
)

const defaultRunTimeout = 10 * time.Minute

// app holds the wired components shared by every command.
type app struct {
	cfg        *config.Config
	l          log.Logger
	db         *gorm.DB
	store      graph.Store
	uc         memoSync.UseCase
	runTimeout time.Duration
}

func newApp(ctx context.Context) (*app, error) {
	// 1. Configuration
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	// 2. Logger
	l := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
		FilePath:     cfg.Logger.FilePath,
		MaxSizeMB:    cfg.Logger.MaxSizeMB,
		MaxBackups:   cfg.Logger.MaxBackups,
		MaxAgeDays:   cfg.Logger.MaxAgeDays,
	})
	l.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	l.Infof(ctx, "Memos URL: %s (api %s)", cfg.Memos.URL, cfg.Memos.APIVersion)

	// 3. Storage
	db, err := database.Open(database.Config{Path: cfg.Database.Path, Debug: cfg.Database.Debug})
	if err != nil {
		return nil, err
	}
	store, err := graphRepo.New(db, l)
	if err != nil {
		database.Close(db)
		return nil, fmt.Errorf("graph store: %w", err)
	}
	settings, err := settingsRepo.New(db)
	if err != nil {
		database.Close(db)
		return nil, fmt.Errorf("settings store: %w", err)
	}

	// 4. Memos client
	client, err := provider.NewClient(provider.Config{
		URL:         cfg.Memos.URL,
		APIVersion:  cfg.Memos.APIVersion,
		AccessToken: cfg.Memos.AccessToken,
		OpenID:      cfg.Memos.OpenID,
	}, idmap.New(), l)
	if err != nil {
		database.Close(db)
		return nil, err
	}

	// 5. Rendering
	downloader := attachment.NewFileDownloader(nil, l)
	renderer := transform.New(attachment.New(cfg.Memos.ExternalURL, downloader, l))

	loc, err := time.LoadLocation(cfg.Environment.Timezone)
	if err != nil {
		l.Warnf(ctx, "Invalid timezone %q, falling back to local time: %v", cfg.Environment.Timezone, err)
		loc = time.Local
	}

	runTimeout, err := time.ParseDuration(cfg.Sync.RunTimeout)
	if err != nil || runTimeout <= 0 {
		runTimeout = defaultRunTimeout
	}

	// 6. UseCase
	uc := syncUC.New(l, client, store, syncstatus.New(settings, l), renderer, memoSync.Options{
		Mode:            memoSync.Mode(cfg.Sync.Mode),
		CustomPage:      cfg.Sync.CustomPage,
		DateFormat:      cfg.Sync.DateFormat,
		PageSize:        cfg.Sync.PageSize,
		IncludeArchived: cfg.Sync.IncludeArchived,
		TagFilter:       memoSync.TagFilterList(cfg.Sync.TagFilter),
		Render: transform.Options{
			PreferredTodo: cfg.Sync.PreferredTodo,
			IncludeMemoID: cfg.Sync.IncludeMemoID,
			Attachments: attachment.Options{
				Mode:            attachment.Mode(cfg.Sync.AttachmentMode),
				ShowUnavailable: cfg.Sync.ShowUnavailableAttachments,
				GraphPath:       cfg.Sync.GraphPath,
			},
		},
	}, loc)

	return &app{
		cfg:        cfg,
		l:          l,
		db:         db,
		store:      store,
		uc:         uc,
		runTimeout: runTimeout,
	}, nil
}

// ready reports whether the database still answers.
func (a *app) ready() bool {
	sqlDB, err := a.db.DB()
	if err != nil {
		return false
	}
	return sqlDB.Ping() == nil
}

func (a *app) close(ctx context.Context) {
	if err := database.Close(a.db); err != nil {
		a.l.Warnf(ctx, "Failed to close database: %v", err)
	}
}
