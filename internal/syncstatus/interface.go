package syncstatus

import "context"

// SettingsRepository persists named JSON documents.
type SettingsRepository interface {
	// Load returns the document stored under key; ok is false when there is none.
	Load(ctx context.Context, key string) (value []byte, ok bool, err error)
	// Save overwrites the document stored under key.
	Save(ctx context.Context, key string, value []byte) error
}
