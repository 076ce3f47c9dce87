package sweeper

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/alitto/pond/v2"
	"github.com/cenkalti/backoff/v4"
	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"github.com/feral-file/ff-emoji-ledger/internal/adapter"
	"github.com/feral-file/ff-emoji-ledger/internal/domain"
	"github.com/feral-file/ff-emoji-ledger/internal/logger"
	"github.com/feral-file/ff-emoji-ledger/internal/messaging"
	"github.com/feral-file/ff-emoji-ledger/internal/store"
)

// OfferSweeperConfig holds configuration for the offer sweeper
type OfferSweeperConfig struct {
	Interval        time.Duration // Time to sleep between sweep cycles
	BatchSize       int           // Offers or users loaded per page
	WorkerPoolSize  int           // Concurrent workers
	WorkerQueueSize int           // Pending checks before submission blocks; zero means BatchSize
	MaxRetryElapsed time.Duration // Retry budget for a single store call
}

// offerSweeper re-validates outstanding trade offers and removes empty groups.
// Settlement and recycling already invalidate the offers they break; the sweeper
// catches offers broken by any other path, such as administrative inventory fixes.
type offerSweeper struct {
	config    *OfferSweeperConfig
	store     store.Store
	publisher messaging.Publisher
	clock     adapter.Clock
	pool      pond.ResultPool[bool]
	running   atomic.Bool
	stopChan  chan struct{}
	stoppedCh chan struct{}
}

// NewOfferSweeper creates a new offer sweeper
func NewOfferSweeper(
	config *OfferSweeperConfig,
	st store.Store,
	publisher messaging.Publisher,
	clock adapter.Clock,
) Sweeper {
	return &offerSweeper{
		config:    config,
		store:     st,
		publisher: publisher,
		clock:     clock,
		stopChan:  make(chan struct{}),
		stoppedCh: make(chan struct{}),
	}
}

// Name returns the sweeper's name
func (s *offerSweeper) Name() string {
	return "offer-sweeper"
}

// Start runs sweep cycles until the context is canceled or Stop is called
func (s *offerSweeper) Start(ctx context.Context) error {
	if !s.running.CompareAndSwap(false, true) {
		return fmt.Errorf("sweeper already running")
	}
	defer func() {
		s.running.Store(false)
		close(s.stoppedCh)
	}()

	logger.InfoCtx(ctx, "Starting offer sweeper",
		zap.Duration("interval", s.config.Interval),
		zap.Int("batch_size", s.config.BatchSize),
		zap.Int("worker_pool_size", s.config.WorkerPoolSize),
		zap.Int("worker_queue_size", s.config.WorkerQueueSize),
	)

	queueSize := s.config.WorkerQueueSize
	if queueSize <= 0 {
		queueSize = s.config.BatchSize
	}
	s.pool = pond.NewResultPool[bool](
		s.config.WorkerPoolSize,
		pond.WithQueueSize(queueSize),
		pond.WithContext(ctx),
	)
	defer s.pool.StopAndWait()

	for {
		if err := s.runSweepCycle(ctx); err != nil && !errors.Is(err, context.Canceled) {
			logger.ErrorCtx(ctx, err)
		}

		if !s.sleep(ctx, s.config.Interval) {
			logger.InfoCtx(ctx, "Offer sweeper stopping")
			return nil
		}
	}
}

// Stop signals the main loop and waits for it to exit
func (s *offerSweeper) Stop(ctx context.Context) error {
	if !s.running.CompareAndSwap(true, false) {
		return nil // Already stopped
	}

	logger.InfoCtx(ctx, "Stopping offer sweeper")
	close(s.stopChan)

	select {
	case <-s.stoppedCh:
		logger.InfoCtx(ctx, "Offer sweeper stopped gracefully")
		return nil
	case <-ctx.Done():
		logger.WarnCtx(ctx, "Offer sweeper stop interrupted by context timeout")
		return ctx.Err()
	}
}

// sleep returns false when interrupted by ctx or Stop
func (s *offerSweeper) sleep(ctx context.Context, duration time.Duration) bool {
	select {
	case <-s.clock.After(duration):
		return true
	case <-ctx.Done():
		return false
	case <-s.stopChan:
		return false
	}
}

func (s *offerSweeper) runSweepCycle(ctx context.Context) error {
	startTime := s.clock.Now()

	checked, invalidated, err := s.sweepOffers(ctx)
	if err != nil {
		return err
	}

	users, pruned, err := s.sweepGroups(ctx)
	if err != nil {
		return err
	}

	logger.InfoCtx(ctx, "Sweep cycle completed",
		zap.Duration("duration", s.clock.Since(startTime)),
		zap.Int("offers_checked", checked),
		zap.Int("offers_invalidated", invalidated),
		zap.Int("users_with_groups", users),
		zap.Int("users_pruned", pruned),
	)
	return nil
}

// sweepOffers pages through every offer and deletes the unfulfillable ones
func (s *offerSweeper) sweepOffers(ctx context.Context) (int, int, error) {
	var checked, invalidated int
	var afterID int64

	for {
		var records []store.TradeOfferRecord
		err := s.retry(ctx, "list trade offers", func() error {
			var err error
			records, err = s.store.ListTradeOffers(ctx, afterID, s.config.BatchSize)
			return err
		})
		if err != nil {
			return checked, invalidated, fmt.Errorf("failed to list trade offers: %w", err)
		}
		if len(records) == 0 {
			return checked, invalidated, nil
		}

		group := s.pool.NewGroup()
		for _, record := range records {
			group.Submit(func() bool {
				return s.checkOffer(ctx, record.Offer)
			})
		}
		results, err := group.Wait()
		if err != nil {
			return checked, invalidated, err
		}
		for _, removed := range results {
			checked++
			if removed {
				invalidated++
			}
		}

		afterID = records[len(records)-1].ID
	}
}

// checkOffer deletes the offer if it can no longer be fulfilled and reports whether it did
func (s *offerSweeper) checkOffer(ctx context.Context, offer domain.TradeOffer) bool {
	var removed bool
	err := s.retry(ctx, "invalidate trade offer", func() error {
		var err error
		removed, err = s.store.InvalidateTradeOfferIfUnfulfillable(ctx, offer.Offerer, offer.Target)
		return err
	})
	if err != nil {
		logger.ErrorCtx(ctx, err, logger.Offer(offer)...)
		return false
	}
	if !removed {
		return false
	}

	logger.InfoCtx(ctx, "Invalidated unfulfillable trade offer", logger.Offer(offer)...)

	target := offer.Target
	event := &domain.LedgerEvent{
		ID:         ulid.MustNewDefault(s.clock.Now()).String(),
		Type:       domain.LedgerEventOfferInvalidated,
		UserID:     offer.Offerer,
		OtherUser:  &target,
		OccurredAt: s.clock.Now(),
	}
	for _, e := range offer.Offered.Flatten() {
		event.Sent = append(event.Sent, e.String())
	}
	for _, e := range offer.Requested.Flatten() {
		event.Received = append(event.Received, e.String())
	}
	if err := s.publisher.PublishEvent(ctx, event); err != nil {
		logger.ErrorCtx(ctx, fmt.Errorf("failed to publish offer invalidation: %w", err), logger.Offer(offer)...)
	}
	return true
}

// sweepGroups pages through users owning groups and prunes their empty groups
func (s *offerSweeper) sweepGroups(ctx context.Context) (int, int, error) {
	var users, pruned int
	var after domain.UserID

	for {
		var page []domain.UserID
		err := s.retry(ctx, "list users with groups", func() error {
			var err error
			page, err = s.store.ListUsersWithGroups(ctx, after, s.config.BatchSize)
			return err
		})
		if err != nil {
			return users, pruned, fmt.Errorf("failed to list users with groups: %w", err)
		}
		if len(page) == 0 {
			return users, pruned, nil
		}

		group := s.pool.NewGroup()
		for _, user := range page {
			group.Submit(func() bool {
				n, err := s.pruneGroups(ctx, user)
				if err != nil {
					logger.ErrorCtx(ctx, err, logger.User("user_id", user))
					return false
				}
				return n > 0
			})
		}
		results, err := group.Wait()
		if err != nil {
			return users, pruned, err
		}
		for _, didPrune := range results {
			users++
			if didPrune {
				pruned++
			}
		}

		after = page[len(page)-1]
	}
}

func (s *offerSweeper) pruneGroups(ctx context.Context, user domain.UserID) (int, error) {
	var n int
	err := s.retry(ctx, "prune empty groups", func() error {
		var err error
		n, err = s.store.PruneEmptyGroups(ctx, user)
		return err
	})
	if n > 0 {
		logger.InfoCtx(ctx, "Pruned empty groups", logger.User("user_id", user), zap.Int("count", n))
	}
	return n, err
}

// retry runs op with exponential backoff bounded by MaxRetryElapsed
func (s *offerSweeper) retry(ctx context.Context, what string, op func() error) error {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 500 * time.Millisecond
	b.MaxInterval = 30 * time.Second
	b.MaxElapsedTime = s.config.MaxRetryElapsed

	var attemptCount int
	return backoff.RetryNotify(op, backoff.WithContext(b, ctx), func(err error, d time.Duration) {
		attemptCount++
		logger.WarnCtx(ctx, "Store call failed, retrying",
			zap.String("operation", what),
			zap.Error(err),
			zap.Int("attempt", attemptCount),
			zap.Duration("next_retry_in", d),
		)
	})
}
