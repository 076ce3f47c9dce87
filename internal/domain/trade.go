package domain

import "time"

// RecycleInputCount is the number of emojis consumed by one recycle
const RecycleInputCount = 3

// TradeOffer is a proposal from Offerer to Target: Offerer gives Offered and receives Requested.
// At most one offer exists per ordered (Offerer, Target) pair.
type TradeOffer struct {
	Offerer   UserID
	Target    UserID
	Offered   EmojiCounts
	Requested EmojiCounts
	CreatedAt time.Time
}

// NewTradeOffer validates and builds a trade offer.
// Checks run in order: self trade, empty offered, empty requested, overlap.
func NewTradeOffer(offerer, target UserID, offered, requested EmojiCounts) (TradeOffer, error) {
	if offerer == target {
		return TradeOffer{}, ErrSelfTrade
	}
	if offered.IsEmpty() {
		return TradeOffer{}, ErrEmptyOffered
	}
	if requested.IsEmpty() {
		return TradeOffer{}, ErrEmptyRequested
	}
	if _, overlap := offered.Overlap(requested); overlap {
		return TradeOffer{}, ErrOverlappingOffer
	}
	return TradeOffer{
		Offerer:   offerer,
		Target:    target,
		Offered:   offered.Clone(),
		Requested: requested.Clone(),
	}, nil
}

// Equal reports whether two offers describe the same trade. CreatedAt is ignored.
func (o TradeOffer) Equal(other TradeOffer) bool {
	return o.Offerer == other.Offerer &&
		o.Target == other.Target &&
		o.Offered.Equal(other.Offered) &&
		o.Requested.Equal(other.Requested)
}

// SignedContents encodes the offer as a signed multiset:
// positive counts are requested by the offerer, negative counts are offered.
func (o TradeOffer) SignedContents() map[Emoji]int {
	contents := make(map[Emoji]int, len(o.Offered)+len(o.Requested))
	for e, n := range o.Requested {
		contents[e] += n
	}
	for e, n := range o.Offered {
		contents[e] -= n
	}
	return contents
}

// SplitSignedContents is the inverse of SignedContents
func SplitSignedContents(contents map[Emoji]int) (offered, requested EmojiCounts) {
	offered = make(EmojiCounts)
	requested = make(EmojiCounts)
	for e, n := range contents {
		switch {
		case n > 0:
			requested.Add(e, n)
		case n < 0:
			offered.Add(e, -n)
		}
	}
	return offered, requested
}

// TradeLogEntry is an append-only record of a settled trade or a recycle
type TradeLogEntry struct {
	EventID   string
	Sender    UserID
	Recipient Counterparty
	// Sent are the emojis the sender gave up
	Sent EmojiCounts
	// Received are the emojis the sender got back
	Received  EmojiCounts
	Timestamp time.Time
}

// SettlementResult describes a committed trade
type SettlementResult struct {
	Offer       TradeOffer
	EventID     string
	Invalidated []TradeOffer
}

// RecycleResult describes a committed recycle
type RecycleResult struct {
	User        UserID
	Consumed    EmojiCounts
	Payout      Emoji
	EventID     string
	Invalidated []TradeOffer
}

// UserOffers holds the offers a user has made and received
type UserOffers struct {
	Outgoing []TradeOffer
	Incoming []TradeOffer
}
