package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Sync specifics
	Memos    MemosConfig
	Sync     SyncConfig
	Database DatabaseConfig

	// Webhooks
	Webhook WebhookConfig
}

type EnvironmentConfig struct {
	Name     string
	Timezone string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
	FilePath     string
	MaxSizeMB    int
	MaxBackups   int
	MaxAgeDays   int
}

type MemosConfig struct {
	URL         string
	APIVersion  string
	AccessToken string
	OpenID      string
	ExternalURL string // host used for attachment links (e.g., http://localhost:5230)
}

type SyncConfig struct {
	Mode            string
	CustomPage      string
	DateFormat      string
	PageSize        int
	IncludeArchived bool
	TagFilter       string
	BackgroundSync  string
	RunTimeout      string

	PreferredTodo              string
	IncludeMemoID              bool
	AttachmentMode             string
	ShowUnavailableAttachments bool
	GraphPath                  string
}

type DatabaseConfig struct {
	Path  string
	Debug bool
}

type WebhookConfig struct {
	Enabled         bool
	Secret          string
	RateLimitPerMin int
}

var (
	validAPIVersions     = []string{"v1", "legacy", "v0"}
	validSyncModes       = []string{"custom_page", "journal", "journal_grouped"}
	validAttachmentModes = []string{"link", "download", "disabled"}
	validIntervals       = []string{"minutely", "half_hourly", "hourly", "bi_hourly", "none"}
)

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, . and /etc/memosync/.
// A non-empty path reads that file instead.
func Load(path string) (*Config, error) {
	v := viper.New()
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./config")
		v.AddConfigPath(".")
		v.AddConfigPath("/etc/memosync/")
	}

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.Environment.Timezone = v.GetString("environment.timezone")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")
	cfg.Logger.FilePath = v.GetString("logger.file_path")
	cfg.Logger.MaxSizeMB = v.GetInt("logger.max_size_mb")
	cfg.Logger.MaxBackups = v.GetInt("logger.max_backups")
	cfg.Logger.MaxAgeDays = v.GetInt("logger.max_age_days")

	// Memos
	cfg.Memos.URL = v.GetString("memos.url")
	cfg.Memos.APIVersion = strings.ToLower(v.GetString("memos.api_version"))
	cfg.Memos.AccessToken = expandEnvVar(v, v.GetString("memos.access_token"))
	cfg.Memos.OpenID = v.GetString("memos.open_id")
	cfg.Memos.ExternalURL = v.GetString("memos.external_url")
	if memosURL := v.GetString("memos_url"); memosURL != "" {
		cfg.Memos.URL = memosURL
	}
	if memosToken := v.GetString("memos_access_token"); memosToken != "" {
		cfg.Memos.AccessToken = memosToken
	}
	// If external URL not set, default to internal URL
	if cfg.Memos.ExternalURL == "" {
		cfg.Memos.ExternalURL = cfg.Memos.URL
	}

	// Sync
	cfg.Sync.Mode = v.GetString("sync.mode")
	cfg.Sync.CustomPage = v.GetString("sync.custom_page")
	cfg.Sync.DateFormat = v.GetString("sync.date_format")
	cfg.Sync.PageSize = v.GetInt("sync.page_size")
	cfg.Sync.IncludeArchived = v.GetBool("sync.include_archived")
	cfg.Sync.TagFilter = v.GetString("sync.tag_filter")
	cfg.Sync.BackgroundSync = v.GetString("sync.background_sync")
	cfg.Sync.RunTimeout = v.GetString("sync.run_timeout")
	cfg.Sync.PreferredTodo = v.GetString("sync.preferred_todo")
	cfg.Sync.IncludeMemoID = v.GetBool("sync.include_memo_id")
	cfg.Sync.AttachmentMode = v.GetString("sync.attachment_mode")
	cfg.Sync.ShowUnavailableAttachments = v.GetBool("sync.show_unavailable_attachments")
	cfg.Sync.GraphPath = v.GetString("sync.graph_path")

	// Database
	cfg.Database.Path = v.GetString("database.path")
	cfg.Database.Debug = v.GetBool("database.debug")

	// Webhooks
	cfg.Webhook.Enabled = v.GetBool("webhook.enabled")
	cfg.Webhook.Secret = expandEnvVar(v, v.GetString("webhook.secret"))
	if webhookSecret := v.GetString("webhook_secret"); webhookSecret != "" {
		cfg.Webhook.Secret = webhookSecret
	}
	cfg.Webhook.RateLimitPerMin = v.GetInt("webhook.rate_limit_per_min")

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("environment.timezone", "Local")
	v.SetDefault("http_server.port", 8080)
	v.SetDefault("http_server.mode", "debug")
	v.SetDefault("logger.level", "debug")
	v.SetDefault("logger.mode", "debug")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)
	v.SetDefault("memos.api_version", "v1")

	v.SetDefault("sync.mode", "custom_page")
	v.SetDefault("sync.custom_page", "Memos")
	v.SetDefault("sync.date_format", "2006-01-02")
	v.SetDefault("sync.page_size", 50)
	v.SetDefault("sync.background_sync", "hourly")
	v.SetDefault("sync.run_timeout", "10m")
	v.SetDefault("sync.preferred_todo", "TODO")
	v.SetDefault("sync.include_memo_id", true)
	v.SetDefault("sync.attachment_mode", "link")
	v.SetDefault("sync.show_unavailable_attachments", true)
	v.SetDefault("sync.graph_path", "./graph")

	v.SetDefault("database.path", "./data/memosync.db")

	v.SetDefault("webhook.rate_limit_per_min", 60)
	v.SetDefault("webhook.enabled", false)
}

// Validate rejects configurations the service cannot run with.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Memos.URL) == "" {
		return errors.New("memos.url is required")
	}
	if err := oneOf("memos.api_version", c.Memos.APIVersion, validAPIVersions); err != nil {
		return err
	}
	if err := oneOf("sync.mode", c.Sync.Mode, validSyncModes); err != nil {
		return err
	}
	if err := oneOf("sync.attachment_mode", c.Sync.AttachmentMode, validAttachmentModes); err != nil {
		return err
	}
	if err := oneOf("sync.background_sync", c.Sync.BackgroundSync, validIntervals); err != nil {
		return err
	}
	if c.Sync.PageSize <= 0 {
		return fmt.Errorf("sync.page_size must be positive, got %d", c.Sync.PageSize)
	}
	if c.Database.Path == "" {
		return errors.New("database.path is required")
	}
	return nil
}

func oneOf(key, value string, allowed []string) error {
	for _, a := range allowed {
		if value == a {
			return nil
		}
	}
	return fmt.Errorf("%s: unsupported value %q (want one of %s)", key, value, strings.Join(allowed, ", "))
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(v *viper.Viper, value string) string {
	if !strings.HasPrefix(value, "${") || !strings.HasSuffix(value, "}") {
		return value
	}

	envVar := value[2 : len(value)-1]
	if envValue := v.GetString(strings.ToLower(envVar)); envValue != "" {
		return envValue
	}
	return os.Getenv(envVar)
}
