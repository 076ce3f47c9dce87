package schema

import "time"

// TradeOffer represents the trade_offers table - at most one row per ordered user pair
type TradeOffer struct {
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// UserID is the offering user
	UserID int64 `gorm:"column:user_id;not null;uniqueIndex:uq_trade_offers_pair,priority:1"`
	// TargetUserID is the user the offer is made to
	TargetUserID int64     `gorm:"column:target_user_id;not null;uniqueIndex:uq_trade_offers_pair,priority:2;index:idx_trade_offers_target"`
	CreatedAt    time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`

	// Associations
	Contents []TradeOfferContent `gorm:"foreignKey:TradeOfferID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the TradeOffer model
func (TradeOffer) TableName() string {
	return "trade_offers"
}

// TradeOfferContent represents the trade_offer_contents table.
// Count is signed: positive is requested by the offering user, negative is offered.
type TradeOfferContent struct {
	TradeOfferID int64  `gorm:"column:trade_offer_id;primaryKey"`
	Emoji        string `gorm:"column:emoji;primaryKey;type:text"`
	Count        int    `gorm:"column:count;not null"`
}

// TableName specifies the table name for the TradeOfferContent model
func (TradeOfferContent) TableName() string {
	return "trade_offer_contents"
}
