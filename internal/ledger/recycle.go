package ledger

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/feral-file/ff-emoji-ledger/internal/domain"
	"github.com/feral-file/ff-emoji-ledger/internal/logger"
	"github.com/feral-file/ff-emoji-ledger/internal/store"
)

func (s *service) Recycle(ctx context.Context, user domain.UserID, emojis domain.EmojiCounts) (*domain.RecycleResult, error) {
	if emojis.Total() != domain.RecycleInputCount {
		return nil, domain.ErrRecycleArity
	}

	owns, err := s.store.HasEmojis(ctx, user, emojis)
	if err != nil {
		return nil, err
	}
	if !owns {
		return nil, domain.ErrInsufficientEmojis
	}

	payout, err := s.catalog.RandomExcluding(emojis)
	if err != nil {
		return nil, fmt.Errorf("failed to draw recycle payout: %w", err)
	}

	result, err := s.store.Recycle(ctx, store.RecycleInput{
		User:     user,
		Consumed: emojis,
		Payout:   payout,
		EventID:  s.newEventID(),
	})
	if err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "Recycled emojis",
		logger.User("user_id", user),
		logger.Emojis("consumed", emojis),
		zap.Stringer("payout", payout),
		zap.String("event_id", result.EventID))

	s.publish(ctx, &domain.LedgerEvent{
		ID:         result.EventID,
		Type:       domain.LedgerEventTradeRecycled,
		UserID:     user,
		Sent:       glyphList(emojis),
		Received:   []string{payout.String()},
		OccurredAt: s.clock.Now(),
	})
	s.publishInvalidated(ctx, result.Invalidated)

	return result, nil
}
