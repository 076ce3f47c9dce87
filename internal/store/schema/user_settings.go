package schema

import "time"

// UserSettings represents the user_settings table
type UserSettings struct {
	UserID int64 `gorm:"column:user_id;primaryKey"`
	// Private hides the user's inventory from other users and from owner lookups
	Private   bool      `gorm:"column:private;not null;default:false"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (UserSettings) TableName() string {
	return "user_settings"
}

// LastSeen represents the last_seen table, used for periodic activity rewards
type LastSeen struct {
	UserID int64     `gorm:"column:user_id;primaryKey"`
	SeenAt time.Time `gorm:"column:seen_at;not null;type:timestamptz"`
}

func (LastSeen) TableName() string {
	return "last_seen"
}
