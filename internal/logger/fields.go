package logger

import (
	"go.uber.org/zap"

	"github.com/feral-file/ff-emoji-ledger/internal/domain"
)

// User returns a field for a user ID
func User(key string, id domain.UserID) zap.Field {
	return zap.Uint64(key, uint64(id))
}

// Emojis returns a field rendering a multiset
func Emojis(key string, counts domain.EmojiCounts) zap.Field {
	return zap.Stringer(key, counts)
}

// Offer returns the fields describing a trade offer
func Offer(offer domain.TradeOffer) []zap.Field {
	return []zap.Field{
		User("offerer", offer.Offerer),
		User("target", offer.Target),
		Emojis("offered", offer.Offered),
		Emojis("requested", offer.Requested),
	}
}
