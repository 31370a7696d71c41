package sqlite

import "time"

// blockRecord is the blocks table row. Properties are stored as a JSON object.
type blockRecord struct {
	ID         uint   `gorm:"primaryKey"`
	UUID       string `gorm:"size:36;uniqueIndex"`
	PageName   string `gorm:"index"`
	ParentUUID string `gorm:"size:36;index"`
	Position   int
	Content    string
	Properties string
	CreatedAt  time.Time
}

func (blockRecord) TableName() string {
	return "blocks"
}
