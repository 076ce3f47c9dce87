package schema

import "time"

// TradeLogKind is the kind of ledger exchange recorded in the trade log
type TradeLogKind string

const (
	TradeLogKindTrade   TradeLogKind = "trade"
	TradeLogKindRecycle TradeLogKind = "recycle"
)

// TradeLog represents the trade_log table - append-only record of settled trades and recycles
type TradeLog struct {
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// EventID is the ULID shared with the published ledger event
	EventID string       `gorm:"column:event_id;not null;type:text;uniqueIndex"`
	Kind    TradeLogKind `gorm:"column:kind;not null;type:text"`
	// SenderUserID is the offering user, or the recycling user
	SenderUserID int64 `gorm:"column:sender_user_id;not null;index"`
	// RecipientUserID is the accepting user, NULL for the system counterparty
	RecipientUserID *int64    `gorm:"column:recipient_user_id;index"`
	CreatedAt       time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`

	// Associations
	Contents []TradeLogContent `gorm:"foreignKey:TradeLogID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the TradeLog model
func (TradeLog) TableName() string {
	return "trade_log"
}

// TradeLogContent represents the trade_log_contents table.
// Count is signed from the sender's side: positive was received, negative was given.
type TradeLogContent struct {
	TradeLogID int64  `gorm:"column:trade_log_id;primaryKey"`
	Emoji      string `gorm:"column:emoji;primaryKey;type:text"`
	Count      int    `gorm:"column:count;not null"`
}

// TableName specifies the table name for the TradeLogContent model
func (TradeLogContent) TableName() string {
	return "trade_log_contents"
}
