package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "memos:\n  url: http://memos.local\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Memos.APIVersion != "v1" {
		t.Errorf("expected v1, got %q", cfg.Memos.APIVersion)
	}
	if cfg.Memos.ExternalURL != "http://memos.local" {
		t.Errorf("expected external url to default to url, got %q", cfg.Memos.ExternalURL)
	}
	if cfg.Sync.Mode != "custom_page" || cfg.Sync.PageSize != 50 || cfg.Sync.BackgroundSync != "hourly" {
		t.Errorf("unexpected sync defaults: %+v", cfg.Sync)
	}
	if !cfg.Sync.IncludeMemoID || cfg.Sync.AttachmentMode != "link" {
		t.Errorf("unexpected render defaults: %+v", cfg.Sync)
	}
	if cfg.Webhook.Enabled || cfg.Webhook.RateLimitPerMin != 60 {
		t.Errorf("unexpected webhook defaults: %+v", cfg.Webhook)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoad_FileAndEnv(t *testing.T) {
	path := writeConfig(t, `
memos:
  url: http://memos.local
  api_version: LEGACY
  access_token: ${MEMOSYNC_TEST_TOKEN}
sync:
  mode: journal
  tag_filter: "work|ideas"
  background_sync: none
webhook:
  enabled: true
  secret: from-file
`)
	t.Setenv("MEMOSYNC_TEST_TOKEN", "tok-123")
	t.Setenv("WEBHOOK_SECRET", "from-env")
	t.Setenv("SYNC_PAGE_SIZE", "10")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Memos.APIVersion != "legacy" {
		t.Errorf("expected lower-cased api version, got %q", cfg.Memos.APIVersion)
	}
	if cfg.Memos.AccessToken != "tok-123" {
		t.Errorf("expected expanded token, got %q", cfg.Memos.AccessToken)
	}
	if cfg.Webhook.Secret != "from-env" {
		t.Errorf("expected env secret, got %q", cfg.Webhook.Secret)
	}
	if cfg.Sync.PageSize != 10 {
		t.Errorf("expected env page size 10, got %d", cfg.Sync.PageSize)
	}
	if cfg.Sync.Mode != "journal" || cfg.Sync.TagFilter != "work|ideas" || cfg.Sync.BackgroundSync != "none" {
		t.Errorf("unexpected sync config: %+v", cfg.Sync)
	}
}

func TestLoad_BadFile(t *testing.T) {
	if _, err := Load(writeConfig(t, "memos: [unterminated")); err == nil {
		t.Errorf("expected parse error")
	}
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Memos:    MemosConfig{URL: "http://m", APIVersion: "v1"},
			Sync:     SyncConfig{Mode: "journal", AttachmentMode: "download", BackgroundSync: "minutely", PageSize: 20},
			Database: DatabaseConfig{Path: "x.db"},
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{name: "valid", mutate: func(c *Config) {}},
		{name: "missing url", mutate: func(c *Config) { c.Memos.URL = " " }, wantErr: "memos.url"},
		{name: "bad api version", mutate: func(c *Config) { c.Memos.APIVersion = "v2" }, wantErr: "memos.api_version"},
		{name: "bad mode", mutate: func(c *Config) { c.Sync.Mode = "weekly" }, wantErr: "sync.mode"},
		{name: "bad attachment mode", mutate: func(c *Config) { c.Sync.AttachmentMode = "inline" }, wantErr: "sync.attachment_mode"},
		{name: "bad interval", mutate: func(c *Config) { c.Sync.BackgroundSync = "daily" }, wantErr: "sync.background_sync"},
		{name: "bad page size", mutate: func(c *Config) { c.Sync.PageSize = 0 }, wantErr: "sync.page_size"},
		{name: "missing db", mutate: func(c *Config) { c.Database.Path = "" }, wantErr: "database.path"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := valid()
			tc.mutate(c)
			err := c.Validate()
			if tc.wantErr == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("expected error containing %q, got %v", tc.wantErr, err)
			}
		})
	}
}
