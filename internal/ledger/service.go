package ledger

import (
	"context"
	"fmt"
	"slices"

	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"github.com/feral-file/ff-emoji-ledger/internal/adapter"
	"github.com/feral-file/ff-emoji-ledger/internal/catalog"
	"github.com/feral-file/ff-emoji-ledger/internal/confirm"
	"github.com/feral-file/ff-emoji-ledger/internal/domain"
	"github.com/feral-file/ff-emoji-ledger/internal/logger"
	"github.com/feral-file/ff-emoji-ledger/internal/messaging"
	"github.com/feral-file/ff-emoji-ledger/internal/store"
)

// Config holds ledger policy
type Config struct {
	// TradingRoles are the role IDs allowed to trade. Empty allows everyone.
	TradingRoles []string
}

// Caller is the user a request acts for, with the roles the gateway saw on them
type Caller struct {
	User domain.UserID
	// Roles are the caller's role IDs. Nil means unknown, in which case the directory is consulted.
	Roles []string
}

// Directory resolves user identities for messages and role checks
//
//go:generate mockgen -source=service.go -destination=../mocks/ledger.go -package=mocks -mock_names=Directory=MockDirectory,Confirmer=MockConfirmer,Service=MockLedgerService
type Directory interface {
	// DisplayName returns the nickname, then the display name, then the decimal ID
	DisplayName(ctx context.Context, user domain.UserID) (string, error)
	// Roles returns the user's role IDs
	Roles(ctx context.Context, user domain.UserID) ([]string, error)
}

// Confirmer asks the accepting user to confirm a trade and waits for the answer
type Confirmer interface {
	Confirm(ctx context.Context, offer domain.TradeOffer) (confirm.Outcome, error)
}

// AcceptResult is the outcome of an accept that got past validation
type AcceptResult struct {
	Outcome confirm.Outcome
	// Offer is the offer shown to the accepting user
	Offer domain.TradeOffer
	// Settlement is set when the trade was confirmed and settled
	Settlement *domain.SettlementResult
}

// Service is the ledger API used by command handlers
type Service interface {
	// Grant adds ungrouped emojis to a user's inventory
	Grant(ctx context.Context, user domain.UserID, emojis domain.EmojiCounts) error
	// Inventory returns the owner's emojis, failing with ErrPrivateInventory for other viewers of a private inventory
	Inventory(ctx context.Context, viewer, owner domain.UserID) (domain.EmojiCounts, error)
	// GroupedInventory is Inventory split by group
	GroupedInventory(ctx context.Context, viewer, owner domain.UserID) (*domain.GroupedInventory, error)
	// HasAtLeast reports whether the user owns at least the given emojis
	HasAtLeast(ctx context.Context, user domain.UserID, emojis domain.EmojiCounts) (bool, error)
	// WhoHas lists users with a public inventory owning the emoji
	WhoHas(ctx context.Context, emoji domain.Emoji) ([]store.EmojiOwner, error)
	// TogglePrivacy flips the user's privacy flag and returns the new value
	TogglePrivacy(ctx context.Context, user domain.UserID) (bool, error)
	// IsPrivate reports whether the user's inventory is private
	IsPrivate(ctx context.Context, user domain.UserID) (bool, error)

	AddToGroup(ctx context.Context, user domain.UserID, name string, emojis domain.EmojiCounts) (*store.AddToGroupResult, error)
	RemoveFromGroup(ctx context.Context, user domain.UserID, emojis domain.EmojiCounts, name *string) (domain.EmojiCounts, error)
	RenameGroup(ctx context.Context, user domain.UserID, oldName, newName string) (string, error)
	ListGroups(ctx context.Context, user domain.UserID) (*domain.GroupListing, error)
	GroupContents(ctx context.Context, user domain.UserID, name string) (*domain.GroupContents, error)
	Ungrouped(ctx context.Context, user domain.UserID) (domain.EmojiCounts, error)
	RepositionGroup(ctx context.Context, user domain.UserID, name string, position int) (*domain.RepositionResult, error)

	// Offer proposes a trade from the caller to target
	Offer(ctx context.Context, offerer, target domain.UserID, offered, requested domain.EmojiCounts) (*domain.TradeOffer, error)
	// Withdraw removes the offerer's offer to target
	Withdraw(ctx context.Context, offerer, target domain.UserID) error
	// Reject removes the offer made to target by offerer
	Reject(ctx context.Context, target, offerer domain.UserID) error
	// ViewOffers returns the user's outgoing and incoming offers
	ViewOffers(ctx context.Context, user domain.UserID) (*domain.UserOffers, error)
	// Accept validates the offer from offerer, asks the caller to confirm and settles it
	Accept(ctx context.Context, caller Caller, offerer domain.UserID, confirmer Confirmer) (*AcceptResult, error)

	// Recycle exchanges exactly three emojis for a random one
	Recycle(ctx context.Context, user domain.UserID, emojis domain.EmojiCounts) (*domain.RecycleResult, error)
	// History returns the user's latest trades and recycles, newest first
	History(ctx context.Context, user domain.UserID, limit int) ([]domain.TradeLogEntry, error)
}

type service struct {
	cfg       Config
	store     store.Store
	catalog   catalog.Catalog
	publisher messaging.Publisher
	directory Directory
	clock     adapter.Clock
}

// NewService creates a new ledger service
func NewService(cfg Config, st store.Store, cat catalog.Catalog, publisher messaging.Publisher, directory Directory, clock adapter.Clock) Service {
	return &service{
		cfg:       cfg,
		store:     st,
		catalog:   cat,
		publisher: publisher,
		directory: directory,
		clock:     clock,
	}
}

func (s *service) newEventID() string {
	return ulid.MustNewDefault(s.clock.Now()).String()
}

// publish sends an event after its ledger change committed.
// The change stands even if publishing fails, so errors are only logged.
func (s *service) publish(ctx context.Context, event *domain.LedgerEvent) {
	if err := s.publisher.PublishEvent(ctx, event); err != nil {
		logger.ErrorCtx(ctx, fmt.Errorf("failed to publish %s event: %w", event.Type, err),
			zap.String("event_id", event.ID))
	}
}

func (s *service) publishInvalidated(ctx context.Context, offers []domain.TradeOffer) {
	for _, o := range offers {
		target := o.Target
		s.publish(ctx, &domain.LedgerEvent{
			ID:         s.newEventID(),
			Type:       domain.LedgerEventOfferInvalidated,
			UserID:     o.Offerer,
			OtherUser:  &target,
			Sent:       glyphList(o.Offered),
			Received:   glyphList(o.Requested),
			OccurredAt: s.clock.Now(),
		})
	}
}

func glyphList(counts domain.EmojiCounts) []string {
	flat := counts.Flatten()
	out := make([]string, 0, len(flat))
	for _, e := range flat {
		out = append(out, e.String())
	}
	return out
}

// hasTradingRole reports whether roles intersect the configured trading roles
func (s *service) hasTradingRole(roles []string) bool {
	if len(s.cfg.TradingRoles) == 0 {
		return true
	}
	return slices.ContainsFunc(roles, func(r string) bool {
		return slices.Contains(s.cfg.TradingRoles, r)
	})
}

func (s *service) checkTradingRoles(ctx context.Context, caller Caller, offerer domain.UserID) error {
	if len(s.cfg.TradingRoles) == 0 {
		return nil
	}

	roles := caller.Roles
	if roles == nil {
		var err error
		roles, err = s.directory.Roles(ctx, caller.User)
		if err != nil {
			return fmt.Errorf("failed to get roles: %w", err)
		}
	}
	if !s.hasTradingRole(roles) {
		return domain.ErrNoTradingRole
	}

	offererRoles, err := s.directory.Roles(ctx, offerer)
	if err != nil {
		return fmt.Errorf("failed to get offerer roles: %w", err)
	}
	if !s.hasTradingRole(offererRoles) {
		return domain.ErrOffererNoTradingRole
	}
	return nil
}
