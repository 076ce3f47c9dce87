package reward

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/feral-file/ff-emoji-ledger/internal/adapter"
	"github.com/feral-file/ff-emoji-ledger/internal/catalog"
	"github.com/feral-file/ff-emoji-ledger/internal/domain"
	"github.com/feral-file/ff-emoji-ledger/internal/ledger"
	"github.com/feral-file/ff-emoji-ledger/internal/logger"
	"github.com/feral-file/ff-emoji-ledger/internal/store"
)

// Period is the length of a reward period
type Period string

const (
	Daily  Period = "daily"
	Weekly Period = "weekly"
)

// ParsePeriod validates a configured period name
func ParsePeriod(s string) (Period, error) {
	switch Period(s) {
	case Daily, Weekly:
		return Period(s), nil
	}
	return "", fmt.Errorf("unknown reward period %q", s)
}

// Same reports whether a and b fall in the same period, in UTC.
// Weekly periods are ISO weeks starting on Monday.
func (p Period) Same(a, b time.Time) bool {
	a, b = a.UTC(), b.UTC()
	if p == Daily {
		ay, am, ad := a.Date()
		by, bm, bd := b.Date()
		return ay == by && am == bm && ad == bd
	}
	ay, aw := a.ISOWeek()
	by, bw := b.ISOWeek()
	return ay == by && aw == bw
}

// Reward is the outcome of recording activity
type Reward struct {
	// Granted is the emoji given for the first activity in the period, nil if none
	Granted *domain.Emoji
	// Announce is false when the user's inventory is private and the grant should not be shown publicly
	Announce bool
}

// Rewarder grants one random emoji on a user's first activity in each period
//
//go:generate mockgen -source=reward.go -destination=../mocks/rewarder.go -package=mocks -mock_names=Rewarder=MockRewarder
type Rewarder interface {
	RecordActivity(ctx context.Context, user domain.UserID) (*Reward, error)
}

type rewarder struct {
	period  Period
	store   store.Store
	catalog catalog.Catalog
	ledger  ledger.Service
	clock   adapter.Clock
}

// NewRewarder creates a new rewarder
func NewRewarder(period Period, st store.Store, cat catalog.Catalog, ledgerService ledger.Service, clock adapter.Clock) Rewarder {
	return &rewarder{
		period:  period,
		store:   st,
		catalog: cat,
		ledger:  ledgerService,
		clock:   clock,
	}
}

func (r *rewarder) RecordActivity(ctx context.Context, user domain.UserID) (*Reward, error) {
	now := r.clock.Now()

	previous, err := r.store.TouchLastSeen(ctx, user, now)
	if err != nil {
		return nil, err
	}
	if previous != nil && r.period.Same(*previous, now) {
		return &Reward{}, nil
	}

	emoji := r.catalog.Random()
	if err := r.ledger.Grant(ctx, user, domain.NewEmojiCounts(emoji)); err != nil {
		return nil, fmt.Errorf("failed to grant reward: %w", err)
	}

	private, err := r.store.IsPrivate(ctx, user)
	if err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "Granted activity reward",
		logger.User("user_id", user),
		zap.Stringer("emoji", emoji),
		zap.String("period", string(r.period)))

	return &Reward{Granted: &emoji, Announce: !private}, nil
}
