package schema

import "time"

// EmojiInventory represents the emoji_inventory table - one row per owned emoji unit
type EmojiInventory struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// UserID is the owner of the unit
	UserID int64 `gorm:"column:user_id;not null;index:idx_emoji_inventory_user_emoji,priority:1"`
	// Emoji is the catalog glyph of the unit
	Emoji string `gorm:"column:emoji;not null;type:text;index:idx_emoji_inventory_user_emoji,priority:2"`
	// GroupID is the group the unit is filed under, NULL when ungrouped
	GroupID *int64 `gorm:"column:group_id;index:idx_emoji_inventory_group"`
	// CreatedAt is the timestamp when the unit was granted or received
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the EmojiInventory model
func (EmojiInventory) TableName() string {
	return "emoji_inventory"
}
