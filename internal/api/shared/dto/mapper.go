package dto

import (
	"github.com/feral-file/ff-emoji-ledger/internal/domain"
)

// MapEmojiCounts converts a multiset to DTO entries in catalog order
func MapEmojiCounts(counts domain.EmojiCounts) []EmojiCount {
	sorted := counts.Sorted()
	out := make([]EmojiCount, 0, len(sorted))
	for _, entry := range sorted {
		out = append(out, EmojiCount{
			Emoji: entry.Emoji.String(),
			Count: entry.Count,
		})
	}
	return out
}

// MapTradeOffer converts a trade offer to its DTO
func MapTradeOffer(offer domain.TradeOffer, offererName, targetName string) TradeOfferResponse {
	resp := TradeOfferResponse{
		OffererID:   offer.Offerer.String(),
		OffererName: offererName,
		TargetID:    offer.Target.String(),
		TargetName:  targetName,
		Offered:     MapEmojiCounts(offer.Offered),
		Requested:   MapEmojiCounts(offer.Requested),
	}
	if !offer.CreatedAt.IsZero() {
		createdAt := offer.CreatedAt
		resp.CreatedAt = &createdAt
	}
	return resp
}

// MapGroups converts grouped inventory contents to DTOs, keeping rank order
func MapGroups(groups []domain.GroupContents) []GroupResponse {
	out := make([]GroupResponse, 0, len(groups))
	for _, g := range groups {
		out = append(out, GroupResponse{
			Name:   g.Name,
			Emojis: MapEmojiCounts(g.Emojis),
		})
	}
	return out
}

// MapGroupSummaries converts a group listing to DTOs
func MapGroupSummaries(groups []domain.GroupSummary) []GroupSummary {
	out := make([]GroupSummary, 0, len(groups))
	for _, g := range groups {
		out = append(out, GroupSummary{Name: g.Name, Count: g.Count})
	}
	return out
}
