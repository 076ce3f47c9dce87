package ledger

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/feral-file/ff-emoji-ledger/internal/confirm"
	"github.com/feral-file/ff-emoji-ledger/internal/domain"
	"github.com/feral-file/ff-emoji-ledger/internal/logger"
)

// AcceptStage tells which side of the confirmation prompt an accept failed on
type AcceptStage string

const (
	// StageAccept failures happen before the user is prompted
	StageAccept AcceptStage = "accept"
	// StageConfirm failures happen when settling a confirmed trade
	StageConfirm AcceptStage = "confirm"
)

// AcceptError is a validation failure during accept
type AcceptError struct {
	Stage AcceptStage
	Err   error
}

func (e *AcceptError) Error() string {
	return fmt.Sprintf("%s stage: %v", e.Stage, e.Err)
}

func (e *AcceptError) Unwrap() error {
	return e.Err
}

// validationErrors are the failures reported to the accepting user rather than treated as faults
var validationErrors = []error{
	domain.ErrNoSuchOffer,
	domain.ErrTargetLacksEmojis,
	domain.ErrOffererLacksEmojis,
	domain.ErrOfferChanged,
}

func isValidationError(err error) bool {
	for _, target := range validationErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

func (s *service) Offer(ctx context.Context, offerer, target domain.UserID, offered, requested domain.EmojiCounts) (*domain.TradeOffer, error) {
	if offerer == target {
		return nil, domain.ErrSelfTrade
	}

	existing, err := s.store.GetTradeOffer(ctx, offerer, target)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrOfferExists
	}

	offer, err := domain.NewTradeOffer(offerer, target, offered, requested)
	if err != nil {
		return nil, err
	}

	owns, err := s.store.HasEmojis(ctx, offerer, offered)
	if err != nil {
		return nil, err
	}
	if !owns {
		return nil, domain.ErrOffererLacksEmojis
	}

	// The store re-checks ownership and uniqueness under lock
	if err := s.store.CreateTradeOffer(ctx, offer); err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "Trade offer created", logger.Offer(offer)...)
	return &offer, nil
}

func (s *service) Withdraw(ctx context.Context, offerer, target domain.UserID) error {
	if err := s.store.DeleteTradeOffer(ctx, offerer, target); err != nil {
		return err
	}
	logger.InfoCtx(ctx, "Trade offer withdrawn", logger.User("offerer", offerer), logger.User("target", target))
	return nil
}

func (s *service) Reject(ctx context.Context, target, offerer domain.UserID) error {
	if err := s.store.DeleteTradeOffer(ctx, offerer, target); err != nil {
		return err
	}
	logger.InfoCtx(ctx, "Trade offer rejected", logger.User("offerer", offerer), logger.User("target", target))
	return nil
}

func (s *service) ViewOffers(ctx context.Context, user domain.UserID) (*domain.UserOffers, error) {
	return s.store.GetUserTradeOffers(ctx, user)
}

// validateForAccept fetches the current offer and checks both sides still own their emojis
func (s *service) validateForAccept(ctx context.Context, offerer, target domain.UserID) (*domain.TradeOffer, error) {
	offer, err := s.store.GetTradeOffer(ctx, offerer, target)
	if err != nil {
		return nil, err
	}
	if offer == nil {
		return nil, domain.ErrNoSuchOffer
	}

	targetOwns, err := s.store.HasEmojis(ctx, target, offer.Requested)
	if err != nil {
		return nil, err
	}
	if !targetOwns {
		return nil, domain.ErrTargetLacksEmojis
	}

	offererOwns, err := s.store.HasEmojis(ctx, offerer, offer.Offered)
	if err != nil {
		return nil, err
	}
	if !offererOwns {
		return nil, domain.ErrOffererLacksEmojis
	}

	return offer, nil
}

func (s *service) Accept(ctx context.Context, caller Caller, offerer domain.UserID, confirmer Confirmer) (*AcceptResult, error) {
	if err := s.checkTradingRoles(ctx, caller, offerer); err != nil {
		return nil, err
	}

	offer, err := s.validateForAccept(ctx, offerer, caller.User)
	if err != nil {
		if isValidationError(err) {
			return nil, &AcceptError{Stage: StageAccept, Err: err}
		}
		return nil, err
	}

	outcome, err := confirmer.Confirm(ctx, *offer)
	if err != nil {
		return nil, fmt.Errorf("failed to confirm trade: %w", err)
	}

	result := &AcceptResult{Outcome: outcome, Offer: *offer}
	switch outcome {
	case confirm.Declined:
		logger.InfoCtx(ctx, "Trade declined", logger.Offer(*offer)...)
		return result, nil
	case confirm.TimedOut:
		other := offerer
		s.publish(ctx, &domain.LedgerEvent{
			ID:         s.newEventID(),
			Type:       domain.LedgerEventConfirmationTimedOut,
			UserID:     caller.User,
			OtherUser:  &other,
			OccurredAt: s.clock.Now(),
		})
		return result, nil
	case confirm.Confirmed:
	default:
		return nil, fmt.Errorf("unexpected confirmation outcome %q", outcome)
	}

	eventID := s.newEventID()
	settlement, err := s.store.SettleTradeOffer(ctx, *offer, eventID)
	if err != nil {
		if isValidationError(err) {
			return nil, &AcceptError{Stage: StageConfirm, Err: err}
		}
		return nil, err
	}
	result.Settlement = settlement

	logger.InfoCtx(ctx, "Trade settled",
		append(logger.Offer(*offer),
			zap.String("event_id", eventID),
			zap.Int("invalidated", len(settlement.Invalidated)))...)

	accepter := caller.User
	s.publish(ctx, &domain.LedgerEvent{
		ID:         eventID,
		Type:       domain.LedgerEventTradeSettled,
		UserID:     offerer,
		OtherUser:  &accepter,
		Sent:       glyphList(offer.Offered),
		Received:   glyphList(offer.Requested),
		OccurredAt: s.clock.Now(),
	})
	s.publishInvalidated(ctx, settlement.Invalidated)

	return result, nil
}
