package dto

import "time"

// Every response carries Message, the text the gateway shows the chat user.

// MessageResponse is a response with nothing but a message
type MessageResponse struct {
	Message string `json:"message"`
}

// EmojiCount is one multiset entry
type EmojiCount struct {
	Emoji string `json:"emoji"`
	Count int    `json:"count"`
}

// GroupResponse is a group with its emojis
type GroupResponse struct {
	Name   string       `json:"name"`
	Emojis []EmojiCount `json:"emojis"`
}

// InventoryResponse represents a user's inventory. Groups is only set for grouped views.
type InventoryResponse struct {
	UserID    string          `json:"user_id"`
	Total     int             `json:"total"`
	Emojis    []EmojiCount    `json:"emojis,omitempty"`
	Groups    []GroupResponse `json:"groups,omitempty"`
	Ungrouped []EmojiCount    `json:"ungrouped,omitempty"`
	Message   string          `json:"message"`
}

// GrantResponse represents the response for an administrative grant
type GrantResponse struct {
	UserID  string       `json:"user_id"`
	Granted []EmojiCount `json:"granted"`
	Message string       `json:"message"`
}

// ActivityResponse represents the response for recording user activity
type ActivityResponse struct {
	// Granted is the reward emoji, empty when the user was already rewarded this period
	Granted string `json:"granted,omitempty"`
	// Announce is false when the reward should not be shown publicly
	Announce bool   `json:"announce"`
	Message  string `json:"message,omitempty"`
}

// PrivacyResponse represents the response for toggling inventory privacy
type PrivacyResponse struct {
	Private bool   `json:"private"`
	Message string `json:"message"`
}

// EmojiOwner is a user holding an emoji
type EmojiOwner struct {
	UserID string `json:"user_id"`
	Name   string `json:"name"`
	Count  int    `json:"count"`
}

// EmojiOwnersResponse represents the response for finding who has an emoji
type EmojiOwnersResponse struct {
	Emoji   string       `json:"emoji"`
	Owners  []EmojiOwner `json:"owners"`
	Message string       `json:"message"`
}

// GroupSummary is a group name with its unit count
type GroupSummary struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// GroupListResponse represents the response for listing groups
type GroupListResponse struct {
	Groups         []GroupSummary `json:"groups"`
	UngroupedCount int            `json:"ungrouped_count"`
	Message        string         `json:"message"`
}

// GroupContentsResponse represents the emojis in one group, or the ungrouped emojis
type GroupContentsResponse struct {
	Name    string       `json:"name,omitempty"`
	Emojis  []EmojiCount `json:"emojis"`
	Message string       `json:"message"`
}

// AddToGroupResponse represents the response for filing emojis under a group
type AddToGroupResponse struct {
	Group   string       `json:"group"`
	Added   []EmojiCount `json:"added"`
	Created bool         `json:"created"`
	Message string       `json:"message"`
}

// RemoveFromGroupResponse represents the response for ungrouping emojis
type RemoveFromGroupResponse struct {
	Removed []EmojiCount `json:"removed"`
	Message string       `json:"message"`
}

// RenameGroupResponse represents the response for renaming a group
type RenameGroupResponse struct {
	OldName string `json:"old_name"`
	NewName string `json:"new_name"`
	Message string `json:"message"`
}

// RepositionGroupResponse represents the response for moving a group
type RepositionGroupResponse struct {
	Name        string    `json:"name"`
	Outcome     string    `json:"outcome"`
	Neighbours  *[]string `json:"neighbours,omitempty"`
	OldPosition int       `json:"old_position"`
	GroupCount  int       `json:"group_count"`
	Message     string    `json:"message"`
}

// TradeOfferResponse represents a trade offer
type TradeOfferResponse struct {
	OffererID   string       `json:"offerer_id"`
	OffererName string       `json:"offerer_name"`
	TargetID    string       `json:"target_id"`
	TargetName  string       `json:"target_name"`
	Offered     []EmojiCount `json:"offered"`
	Requested   []EmojiCount `json:"requested"`
	CreatedAt   *time.Time   `json:"created_at,omitempty"`
}

// CreateOfferResponse represents the response for offering a trade
type CreateOfferResponse struct {
	Offer   TradeOfferResponse `json:"offer"`
	Message string             `json:"message"`
}

// TradeOffersResponse represents a user's outgoing and incoming offers
type TradeOffersResponse struct {
	Outgoing []TradeOfferResponse `json:"outgoing"`
	Incoming []TradeOfferResponse `json:"incoming"`
	Message  string               `json:"message"`
}

// ConfirmationPromptResponse is the question the accepting user must answer
type ConfirmationPromptResponse struct {
	PromptID  string             `json:"prompt_id"`
	Offer     TradeOfferResponse `json:"offer"`
	Lose      []EmojiCount       `json:"lose"`
	Gain      []EmojiCount       `json:"gain"`
	ExpiresAt time.Time          `json:"expires_at"`
	Message   string             `json:"message"`
}

// TradeResultResponse is the final result of an accepted trade offer
type TradeResultResponse struct {
	// Outcome is confirmed, declined or timed_out
	Outcome string `json:"outcome"`
	EventID string `json:"event_id,omitempty"`
	// Invalidated counts other offers removed because the trade made them unfulfillable
	Invalidated int    `json:"invalidated"`
	Message     string `json:"message"`
}

// RecycleResponse represents the response for recycling emojis
type RecycleResponse struct {
	Consumed []EmojiCount `json:"consumed"`
	Payout   string       `json:"payout"`
	EventID  string       `json:"event_id"`
	// Public is false when the user's inventory is private and the result should only be shown to them
	Public  bool   `json:"public"`
	Message string `json:"message"`
}

// TradeLogEntry is one settled trade or recycle
type TradeLogEntry struct {
	EventID string `json:"event_id"`
	// Kind is trade or recycle
	Kind string `json:"kind"`
	// CounterpartyID is empty for recycles
	CounterpartyID string       `json:"counterparty_id,omitempty"`
	Gave           []EmojiCount `json:"gave"`
	Got            []EmojiCount `json:"got"`
	Timestamp      time.Time    `json:"timestamp"`
	Message        string       `json:"message"`
}

// TradeHistoryResponse represents the user's recent trades and recycles, newest first
type TradeHistoryResponse struct {
	Entries []TradeLogEntry `json:"entries"`
}
