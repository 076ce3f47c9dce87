package store

import (
	"context"
	"time"

	"github.com/feral-file/ff-emoji-ledger/internal/domain"
	"github.com/feral-file/ff-emoji-ledger/internal/store/schema"
)

// EmojiResolver maps stored glyphs back to catalog emojis
type EmojiResolver interface {
	Resolve(glyph string) (domain.Emoji, bool)
}

// AddToGroupResult is the outcome of filing emojis under a group
type AddToGroupResult struct {
	// Name is the stored name of the group, which may differ in case from the requested one
	Name string
	// Added holds the emojis that were actually moved into the group
	Added domain.EmojiCounts
	// Created reports whether the group was created by this call
	Created bool
}

// RecycleInput is the input for consuming emojis in exchange for a payout
type RecycleInput struct {
	User     domain.UserID
	Consumed domain.EmojiCounts
	Payout   domain.Emoji
	EventID  string
}

// EmojiOwner is a user holding at least one unit of an emoji
type EmojiOwner struct {
	User  domain.UserID
	Count int
}

// TradeOfferRecord is a stored offer together with its row ID, used for batch scans
type TradeOfferRecord struct {
	ID    int64
	Offer domain.TradeOffer
}

// UpsertMemberInput is the input for mirroring a chat member into the directory
type UpsertMemberInput struct {
	UserID      domain.UserID
	DisplayName *string
	Nickname    *string
	Roles       []string
}

// Store defines the interface for ledger persistence.
// Every mutating method runs in its own transaction and re-validates ownership under lock.
//
//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks -mock_names=Store=MockStore
type Store interface {
	// GrantEmojis adds ungrouped units to a user's inventory
	GrantEmojis(ctx context.Context, userID domain.UserID, emojis domain.EmojiCounts) error
	// GetInventory returns every emoji the user owns with its count
	GetInventory(ctx context.Context, userID domain.UserID) (domain.EmojiCounts, error)
	// GetGroupedInventory returns the inventory split by group, groups in rank order
	GetGroupedInventory(ctx context.Context, userID domain.UserID) (*domain.GroupedInventory, error)
	// HasEmojis reports whether the user owns at least the given counts
	HasEmojis(ctx context.Context, userID domain.UserID, emojis domain.EmojiCounts) (bool, error)
	// GetEmojiOwners lists users owning the emoji, most units first.
	// When publicOnly is set, users with a private inventory are left out.
	GetEmojiOwners(ctx context.Context, emoji domain.Emoji, publicOnly bool) ([]EmojiOwner, error)

	// AddToGroup files up to the requested units under the named group, creating it if needed
	AddToGroup(ctx context.Context, userID domain.UserID, name string, emojis domain.EmojiCounts) (*AddToGroupResult, error)
	// RemoveFromGroup ungroups up to the requested units, from the named group or from any group when name is nil
	RemoveFromGroup(ctx context.Context, userID domain.UserID, emojis domain.EmojiCounts, name *string) (domain.EmojiCounts, error)
	// RenameGroup renames a group and returns its previous stored name
	RenameGroup(ctx context.Context, userID domain.UserID, oldName, newName string) (string, error)
	// ListGroups returns groups in rank order with their unit counts
	ListGroups(ctx context.Context, userID domain.UserID) (*domain.GroupListing, error)
	// GetGroupContents returns the emojis in the named group
	GetGroupContents(ctx context.Context, userID domain.UserID, name string) (*domain.GroupContents, error)
	// GetUngrouped returns the emojis not filed under any group
	GetUngrouped(ctx context.Context, userID domain.UserID) (domain.EmojiCounts, error)
	// RepositionGroup moves a group to a 0-based rank, clamped to the valid range
	RepositionGroup(ctx context.Context, userID domain.UserID, name string, position int) (*domain.RepositionResult, error)
	// PruneEmptyGroups deletes the user's empty groups and closes rank gaps, returning the number deleted
	PruneEmptyGroups(ctx context.Context, userID domain.UserID) (int, error)
	// ListUsersWithGroups returns users owning at least one group, in ID order, after the given user
	ListUsersWithGroups(ctx context.Context, afterUser domain.UserID, limit int) ([]domain.UserID, error)

	// CreateTradeOffer stores a new offer after checking existence and ownership under lock
	CreateTradeOffer(ctx context.Context, offer domain.TradeOffer) error
	// GetTradeOffer returns the offer between the two users, or nil when there is none
	GetTradeOffer(ctx context.Context, offerer, target domain.UserID) (*domain.TradeOffer, error)
	// DeleteTradeOffer removes the offer between the two users
	DeleteTradeOffer(ctx context.Context, offerer, target domain.UserID) error
	// GetUserTradeOffers returns a user's outgoing and incoming offers
	GetUserTradeOffers(ctx context.Context, userID domain.UserID) (*domain.UserOffers, error)
	// SettleTradeOffer executes the stored offer if it still equals expected and both sides still own their emojis
	SettleTradeOffer(ctx context.Context, expected domain.TradeOffer, eventID string) (*domain.SettlementResult, error)
	// ListTradeOffers returns offers with row ID greater than afterID, in ID order
	ListTradeOffers(ctx context.Context, afterID int64, limit int) ([]TradeOfferRecord, error)
	// InvalidateTradeOfferIfUnfulfillable deletes the offer when the offerer no longer owns what was offered
	InvalidateTradeOfferIfUnfulfillable(ctx context.Context, offerer, target domain.UserID) (bool, error)

	// Recycle consumes emojis and grants the payout
	Recycle(ctx context.Context, input RecycleInput) (*domain.RecycleResult, error)
	// GetTradeLog returns the user's most recent trade log entries, newest first
	GetTradeLog(ctx context.Context, userID domain.UserID, limit int) ([]domain.TradeLogEntry, error)

	// IsPrivate reports whether the user's inventory is hidden from others
	IsPrivate(ctx context.Context, userID domain.UserID) (bool, error)
	// TogglePrivacy flips the privacy flag and returns the new value
	TogglePrivacy(ctx context.Context, userID domain.UserID) (bool, error)

	// TouchLastSeen records activity at now and returns the previous timestamp, nil on first activity
	TouchLastSeen(ctx context.Context, userID domain.UserID, now time.Time) (*time.Time, error)

	// UpsertMember creates or replaces a member directory entry
	UpsertMember(ctx context.Context, input UpsertMemberInput) error
	// GetMember returns the member directory entry, or nil when unknown
	GetMember(ctx context.Context, userID domain.UserID) (*schema.Member, error)
}
