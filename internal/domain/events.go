package domain

import "time"

// LedgerEventType is the type of a published ledger event
type LedgerEventType string

const (
	LedgerEventEmojiGranted         LedgerEventType = "emoji.granted"
	LedgerEventTradeSettled         LedgerEventType = "trade.settled"
	LedgerEventTradeRecycled        LedgerEventType = "trade.recycled"
	LedgerEventOfferInvalidated     LedgerEventType = "offer.invalidated"
	LedgerEventConfirmationTimedOut LedgerEventType = "confirmation.timed_out"
)

// LedgerEvent is the message published to the event stream after a ledger change commits
type LedgerEvent struct {
	ID         string          `json:"id"`
	Type       LedgerEventType `json:"type"`
	UserID     UserID          `json:"user_id"`
	OtherUser  *UserID         `json:"other_user_id,omitempty"`
	Sent       []string        `json:"sent,omitempty"`
	Received   []string        `json:"received,omitempty"`
	OccurredAt time.Time       `json:"occurred_at"`
}
