package ledger

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/feral-file/ff-emoji-ledger/internal/domain"
	"github.com/feral-file/ff-emoji-ledger/internal/logger"
	"github.com/feral-file/ff-emoji-ledger/internal/store"
)

func (s *service) Grant(ctx context.Context, user domain.UserID, emojis domain.EmojiCounts) error {
	if emojis.IsEmpty() {
		return nil
	}

	if err := s.store.GrantEmojis(ctx, user, emojis); err != nil {
		return err
	}
	logger.InfoCtx(ctx, "Granted emojis", logger.User("user_id", user), logger.Emojis("emojis", emojis))

	s.publish(ctx, &domain.LedgerEvent{
		ID:         s.newEventID(),
		Type:       domain.LedgerEventEmojiGranted,
		UserID:     user,
		Received:   glyphList(emojis),
		OccurredAt: s.clock.Now(),
	})
	return nil
}

// checkVisible fails when viewer may not see owner's inventory
func (s *service) checkVisible(ctx context.Context, viewer, owner domain.UserID) error {
	if viewer == owner {
		return nil
	}

	private, err := s.store.IsPrivate(ctx, owner)
	if err != nil {
		return err
	}
	if private {
		return domain.ErrPrivateInventory
	}
	return nil
}

func (s *service) Inventory(ctx context.Context, viewer, owner domain.UserID) (domain.EmojiCounts, error) {
	if err := s.checkVisible(ctx, viewer, owner); err != nil {
		return nil, err
	}
	return s.store.GetInventory(ctx, owner)
}

func (s *service) GroupedInventory(ctx context.Context, viewer, owner domain.UserID) (*domain.GroupedInventory, error) {
	if err := s.checkVisible(ctx, viewer, owner); err != nil {
		return nil, err
	}
	return s.store.GetGroupedInventory(ctx, owner)
}

func (s *service) HasAtLeast(ctx context.Context, user domain.UserID, emojis domain.EmojiCounts) (bool, error) {
	return s.store.HasEmojis(ctx, user, emojis)
}

func (s *service) WhoHas(ctx context.Context, emoji domain.Emoji) ([]store.EmojiOwner, error) {
	return s.store.GetEmojiOwners(ctx, emoji, true)
}

func (s *service) TogglePrivacy(ctx context.Context, user domain.UserID) (bool, error) {
	private, err := s.store.TogglePrivacy(ctx, user)
	if err != nil {
		return false, err
	}
	logger.InfoCtx(ctx, "Toggled inventory privacy", logger.User("user_id", user), zap.Bool("private", private))
	return private, nil
}

func (s *service) IsPrivate(ctx context.Context, user domain.UserID) (bool, error) {
	return s.store.IsPrivate(ctx, user)
}

func (s *service) History(ctx context.Context, user domain.UserID, limit int) ([]domain.TradeLogEntry, error) {
	if limit <= 0 {
		return nil, fmt.Errorf("invalid history limit %d", limit)
	}
	return s.store.GetTradeLog(ctx, user, limit)
}
