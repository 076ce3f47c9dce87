package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrSelfTrade is returned when a user makes a trade offer to themselves
	ErrSelfTrade = errors.New("cannot trade with yourself")

	// ErrOfferExists is returned when the offerer already has an outstanding offer to the target
	ErrOfferExists = errors.New("trade offer to that user already exists")

	// ErrEmptyOffered is returned when a trade offer gives nothing
	ErrEmptyOffered = errors.New("offered emojis are empty")

	// ErrEmptyRequested is returned when a trade offer asks for nothing
	ErrEmptyRequested = errors.New("requested emojis are empty")

	// ErrOverlappingOffer is returned when an emoji appears on both sides of an offer
	ErrOverlappingOffer = errors.New("emoji appears on both sides of the trade")

	// ErrOffererLacksEmojis is returned when the offerer does not own the offered emojis
	ErrOffererLacksEmojis = errors.New("offerer does not have the offered emojis")

	// ErrTargetLacksEmojis is returned when the target does not own the requested emojis
	ErrTargetLacksEmojis = errors.New("target does not have the requested emojis")

	// ErrNoSuchOffer is returned when no offer exists between the two users
	ErrNoSuchOffer = errors.New("trade offer not found")

	// ErrOfferChanged is returned when the stored offer differs from the one shown for confirmation
	ErrOfferChanged = errors.New("trade offer changed during confirmation")

	// ErrNoSuchGroup is returned when the named group does not exist for the user
	ErrNoSuchGroup = errors.New("group not found")

	// ErrInvalidGroupName is returned when a group name is blank or too long
	ErrInvalidGroupName = errors.New("invalid group name")

	// ErrRecycleArity is returned when a recycle request does not consume exactly RecycleInputCount emojis
	ErrRecycleArity = errors.New("recycling requires exactly 3 emojis")

	// ErrInsufficientEmojis is returned when a user does not own the emojis an operation needs
	ErrInsufficientEmojis = errors.New("insufficient emojis")

	// ErrNoTradingRole is returned when the acting user lacks every configured trading role
	ErrNoTradingRole = errors.New("user does not have a trading role")

	// ErrOffererNoTradingRole is returned when the offering user lacks every configured trading role
	ErrOffererNoTradingRole = errors.New("offerer does not have a trading role")

	// ErrPrivateInventory is returned when a user views another user's private inventory
	ErrPrivateInventory = errors.New("inventory is private")

	// ErrLedgerInvariant is returned when a ledger mutation would break conservation of emojis.
	// The surrounding transaction is always rolled back.
	ErrLedgerInvariant = errors.New("ledger invariant violated")
)

// NameTakenError is returned when renaming a group to a name that another group already uses
type NameTakenError struct {
	Name string
}

func (e *NameTakenError) Error() string {
	return fmt.Sprintf("group name already taken: %s", e.Name)
}

// ParseError is returned when text cannot be resolved to catalog emojis
type ParseError struct {
	Input string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("unrecognized emoji input: %q", e.Input)
}
