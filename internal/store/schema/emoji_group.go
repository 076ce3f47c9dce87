package schema

import "time"

// EmojiGroup represents the emoji_groups table - named, ordered collections of a user's emojis
type EmojiGroup struct {
	ID     int64  `gorm:"column:id;primaryKey;autoIncrement"`
	UserID int64  `gorm:"column:user_id;not null"`
	Name   string `gorm:"column:name;not null;type:text"`
	// SortOrder is the 0-based rank of the group, contiguous per user
	SortOrder int       `gorm:"column:sort_order;not null"`
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the EmojiGroup model
func (EmojiGroup) TableName() string {
	return "emoji_groups"
}
