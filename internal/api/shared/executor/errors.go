package executor

import (
	"context"
	"errors"
	"fmt"

	apierrors "github.com/feral-file/ff-emoji-ledger/internal/api/shared/errors"
	"github.com/feral-file/ff-emoji-ledger/internal/confirm"
	"github.com/feral-file/ff-emoji-ledger/internal/domain"
	"github.com/feral-file/ff-emoji-ledger/internal/logger"
)

// userError is a failure the user caused or can act on, with the message they are shown
type userError struct {
	target  error
	code    apierrors.ErrorCode
	message string
}

var userErrors = []userError{
	{domain.ErrSelfTrade, apierrors.ErrCodeValidationFailed, "You can't trade yourself."},
	{domain.ErrOfferExists, apierrors.ErrCodeConflict, "You already have a trade offer to that user."},
	{domain.ErrEmptyOffered, apierrors.ErrCodeValidationFailed, "Offer is empty."},
	{domain.ErrEmptyRequested, apierrors.ErrCodeValidationFailed, "Request is empty."},
	{domain.ErrOverlappingOffer, apierrors.ErrCodeValidationFailed, "You put an emoji on both sides of the trade."},
	{domain.ErrOffererLacksEmojis, apierrors.ErrCodeConflict, "You don't have those emojis to offer."},
	{domain.ErrTargetLacksEmojis, apierrors.ErrCodeConflict, "You do not have the requested emojis."},
	{domain.ErrNoSuchOffer, apierrors.ErrCodeNotFound, "There is no such trade offer."},
	{domain.ErrOfferChanged, apierrors.ErrCodeConflict, "The offer was changed while you were accepting it, so the trade was cancelled."},
	{domain.ErrNoTradingRole, apierrors.ErrCodeForbidden, "You do not have a role that allows trading."},
	{domain.ErrOffererNoTradingRole, apierrors.ErrCodeForbidden, "Offering user does not have a role that allows trading."},
	{domain.ErrNoSuchGroup, apierrors.ErrCodeNotFound, "You have no such group."},
	{domain.ErrInvalidGroupName, apierrors.ErrCodeValidationFailed, fmt.Sprintf("Group names must be between 1 and %d characters.", domain.MaxGroupNameLength)},
	{domain.ErrRecycleArity, apierrors.ErrCodeValidationFailed, "You must specify exactly 3 emojis."},
	{domain.ErrInsufficientEmojis, apierrors.ErrCodeConflict, "You don't own all specified emojis."},
	{domain.ErrPrivateInventory, apierrors.ErrCodeForbidden, "That inventory is set to private."},

	{confirm.ErrUnknownPrompt, apierrors.ErrCodeNotFound, "This trade confirmation has expired or does not exist."},
	{confirm.ErrWrongUser, apierrors.ErrCodeForbidden, "This trade confirmation is not for you."},
	{confirm.ErrAlreadyAnswered, apierrors.ErrCodeConflict, "This trade confirmation was already answered."},
	{confirm.ErrInvalidChoice, apierrors.ErrCodeValidationFailed, "Please answer yes or no."},
}

func notAnEmojiMessage(input string) string {
	return fmt.Sprintf("Could not find \"%s\" as an emoji in my list.", input)
}

// toAPIError converts a ledger error into an API error carrying the user-facing message.
// overrides replace the default message of specific errors.
// Anything unrecognized is logged and reported as an internal error.
func (e *executor) toAPIError(ctx context.Context, err error, overrides map[error]string) error {
	var apiErr *apierrors.APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}

	var parseErr *domain.ParseError
	if errors.As(err, &parseErr) {
		return apierrors.New(apierrors.ErrCodeValidationFailed, notAnEmojiMessage(parseErr.Input), err.Error())
	}

	var takenErr *domain.NameTakenError
	if errors.As(err, &takenErr) {
		return apierrors.NewConflictError(nameTakenMessage(takenErr.Name), err.Error())
	}

	for _, ue := range userErrors {
		if !errors.Is(err, ue.target) {
			continue
		}
		message := ue.message
		if override, ok := overrides[ue.target]; ok {
			message = override
		}
		return apierrors.New(ue.code, message, err.Error())
	}

	logger.ErrorCtx(ctx, err)
	return apierrors.NewInternalError("Something went wrong. Please try again later.")
}
