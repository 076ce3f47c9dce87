package executor

import (
	"context"
	"errors"

	"github.com/feral-file/ff-emoji-ledger/internal/api/shared/dto"
	apierrors "github.com/feral-file/ff-emoji-ledger/internal/api/shared/errors"
	"github.com/feral-file/ff-emoji-ledger/internal/confirm"
	"github.com/feral-file/ff-emoji-ledger/internal/domain"
	"github.com/feral-file/ff-emoji-ledger/internal/ledger"
)

func (e *executor) CreateOffer(ctx context.Context, offerer, target domain.UserID, offer, request string) (*dto.CreateOfferResponse, error) {
	offered, err := e.parse(ctx, offer)
	if err != nil {
		return nil, err
	}
	requested, err := e.parse(ctx, request)
	if err != nil {
		return nil, err
	}

	created, err := e.ledger.Offer(ctx, offerer, target, offered, requested)
	if err != nil {
		return nil, e.toAPIError(ctx, err, nil)
	}

	targetName := e.displayName(ctx, target)
	return &dto.CreateOfferResponse{
		Offer:   dto.MapTradeOffer(*created, e.displayName(ctx, offerer), targetName),
		Message: offerCreatedMessage(targetName, *created),
	}, nil
}

func (e *executor) WithdrawOffer(ctx context.Context, offerer, target domain.UserID) (*dto.MessageResponse, error) {
	targetName := e.displayName(ctx, target)
	if err := e.ledger.Withdraw(ctx, offerer, target); err != nil {
		return nil, e.toAPIError(ctx, err, map[error]string{
			domain.ErrNoSuchOffer: "You have no trade offer to " + targetName + ".",
		})
	}
	return &dto.MessageResponse{Message: offerWithdrawnMessage(targetName)}, nil
}

func (e *executor) RejectOffer(ctx context.Context, target, offerer domain.UserID) (*dto.MessageResponse, error) {
	offererName := e.displayName(ctx, offerer)
	if err := e.ledger.Reject(ctx, target, offerer); err != nil {
		return nil, e.toAPIError(ctx, err, map[error]string{
			domain.ErrNoSuchOffer: "You have no trade offer from " + offererName + ".",
		})
	}
	return &dto.MessageResponse{Message: offerRejectedMessage(offererName)}, nil
}

func (e *executor) ListOffers(ctx context.Context, user domain.UserID) (*dto.TradeOffersResponse, error) {
	offers, err := e.ledger.ViewOffers(ctx, user)
	if err != nil {
		return nil, e.toAPIError(ctx, err, nil)
	}

	userName := e.displayName(ctx, user)
	resp := &dto.TradeOffersResponse{
		Outgoing: make([]dto.TradeOfferResponse, 0, len(offers.Outgoing)),
		Incoming: make([]dto.TradeOfferResponse, 0, len(offers.Incoming)),
	}

	outgoing := make([]namedOffer, 0, len(offers.Outgoing))
	for _, o := range offers.Outgoing {
		name := e.displayName(ctx, o.Target)
		outgoing = append(outgoing, namedOffer{offer: o, other: name})
		resp.Outgoing = append(resp.Outgoing, dto.MapTradeOffer(o, userName, name))
	}
	incoming := make([]namedOffer, 0, len(offers.Incoming))
	for _, o := range offers.Incoming {
		name := e.displayName(ctx, o.Offerer)
		incoming = append(incoming, namedOffer{offer: o, other: name})
		resp.Incoming = append(resp.Incoming, dto.MapTradeOffer(o, name, userName))
	}

	resp.Message = viewOffersMessage(outgoing, incoming)
	return resp, nil
}

// AcceptOffer runs the accept in the background and returns as soon as the user has to be asked.
// The answer arrives through AnswerConfirmation, which hands back the result of the same run.
// Failures before the prompt are returned directly.
func (e *executor) AcceptOffer(ctx context.Context, caller ledger.Caller, offerer domain.UserID) (*dto.ConfirmationPromptResponse, error) {
	offererName := e.displayName(ctx, offerer)
	session := e.broker.Begin(caller.User)

	// The run outlives this request: it waits for the answer that comes with a later one
	runCtx := context.WithoutCancel(ctx)
	go func() {
		session.Finish(e.runAccept(runCtx, caller, offerer, offererName, session))
	}()

	select {
	case <-session.Prompted():
	case <-session.Done():
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	select {
	case <-session.Prompted():
		prompt := session.Prompt()
		return &dto.ConfirmationPromptResponse{
			PromptID:  prompt.ID,
			Offer:     dto.MapTradeOffer(prompt.Offer, offererName, e.displayName(ctx, caller.User)),
			Lose:      dto.MapEmojiCounts(prompt.Offer.Requested),
			Gain:      dto.MapEmojiCounts(prompt.Offer.Offered),
			ExpiresAt: prompt.ExpiresAt,
			Message:   confirmationMessage(offererName, prompt.Offer),
		}, nil
	default:
	}

	reply := session.Result()
	if reply.err != nil {
		return nil, reply.err
	}
	return nil, apierrors.NewInternalError("Trade finished without asking for confirmation")
}

// runAccept drives one accept to completion. The session is the confirmer.
func (e *executor) runAccept(ctx context.Context, caller ledger.Caller, offerer domain.UserID, offererName string, confirmer ledger.Confirmer) *acceptReply {
	result, err := e.ledger.Accept(ctx, caller, offerer, confirmer)
	if err != nil {
		return &acceptReply{err: e.acceptError(ctx, err, offererName)}
	}

	resp := &dto.TradeResultResponse{Outcome: string(result.Outcome)}
	switch result.Outcome {
	case confirm.Declined:
		resp.Message = tradeDeclinedMessage
	case confirm.TimedOut:
		resp.Message = tradeTimedOutMessage
	default:
		resp.EventID = result.Settlement.EventID
		resp.Invalidated = len(result.Settlement.Invalidated)
		resp.Message = tradeSettledMessage(e.displayName(ctx, caller.User), offererName, result.Offer)
	}
	return &acceptReply{response: resp}
}

// acceptError words validation failures by whether the user had already seen the prompt
func (e *executor) acceptError(ctx context.Context, err error, offererName string) error {
	var acceptErr *ledger.AcceptError
	if errors.As(err, &acceptErr) && acceptErr.Stage == ledger.StageConfirm {
		return e.toAPIError(ctx, err, map[error]string{
			domain.ErrNoSuchOffer:        "The trade offer from " + offererName + " is no longer there.",
			domain.ErrTargetLacksEmojis:  "You no longer have the requested emojis.",
			domain.ErrOffererLacksEmojis: offererName + " no longer has the offered emojis.",
			domain.ErrOfferChanged:       "The offer from " + offererName + " was changed while you were accepting it, so the trade was cancelled.",
		})
	}
	return e.toAPIError(ctx, err, map[error]string{
		domain.ErrNoSuchOffer:        "You do not have a trade offer from " + offererName + ".",
		domain.ErrTargetLacksEmojis:  "You do not have the requested emojis.",
		domain.ErrOffererLacksEmojis: "Something went wrong: " + offererName + " does not have the offered emojis.",
	})
}

func (e *executor) AnswerConfirmation(ctx context.Context, promptID string, user domain.UserID, choice string) (*dto.TradeResultResponse, error) {
	parsed, err := confirm.ParseChoice(choice)
	if err != nil {
		return nil, e.toAPIError(ctx, err, nil)
	}

	reply, err := e.broker.Answer(ctx, promptID, user, parsed)
	if err != nil {
		return nil, e.toAPIError(ctx, err, nil)
	}
	if reply.err != nil {
		return nil, reply.err
	}
	return reply.response, nil
}
