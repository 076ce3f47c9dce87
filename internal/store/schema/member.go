package schema

import (
	"time"

	"gorm.io/datatypes"
)

// Member represents the members table - identity data mirrored from the chat platform
type Member struct {
	UserID      int64   `gorm:"column:user_id;primaryKey"`
	DisplayName *string `gorm:"column:display_name;type:text"`
	Nickname    *string `gorm:"column:nickname;type:text"`
	// Roles holds the member's role IDs as a JSON array of strings
	Roles     datatypes.JSONSlice[string] `gorm:"column:roles;not null;type:jsonb;default:'[]'"`
	UpdatedAt time.Time                   `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName specifies the table name for the Member model
func (Member) TableName() string {
	return "members"
}
