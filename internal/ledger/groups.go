package ledger

import (
	"context"

	"github.com/feral-file/ff-emoji-ledger/internal/domain"
	"github.com/feral-file/ff-emoji-ledger/internal/store"
)

// Group operations hold no policy beyond what the store enforces in its transactions.

func (s *service) AddToGroup(ctx context.Context, user domain.UserID, name string, emojis domain.EmojiCounts) (*store.AddToGroupResult, error) {
	return s.store.AddToGroup(ctx, user, name, emojis)
}

func (s *service) RemoveFromGroup(ctx context.Context, user domain.UserID, emojis domain.EmojiCounts, name *string) (domain.EmojiCounts, error) {
	return s.store.RemoveFromGroup(ctx, user, emojis, name)
}

func (s *service) RenameGroup(ctx context.Context, user domain.UserID, oldName, newName string) (string, error) {
	return s.store.RenameGroup(ctx, user, oldName, newName)
}

func (s *service) ListGroups(ctx context.Context, user domain.UserID) (*domain.GroupListing, error) {
	return s.store.ListGroups(ctx, user)
}

func (s *service) GroupContents(ctx context.Context, user domain.UserID, name string) (*domain.GroupContents, error) {
	return s.store.GetGroupContents(ctx, user, name)
}

func (s *service) Ungrouped(ctx context.Context, user domain.UserID) (domain.EmojiCounts, error) {
	return s.store.GetUngrouped(ctx, user)
}

func (s *service) RepositionGroup(ctx context.Context, user domain.UserID, name string, position int) (*domain.RepositionResult, error) {
	return s.store.RepositionGroup(ctx, user, name, position)
}
