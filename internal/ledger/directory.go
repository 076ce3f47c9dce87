package ledger

import (
	"context"
	"fmt"
	"strings"

	"github.com/feral-file/ff-emoji-ledger/internal/domain"
	"github.com/feral-file/ff-emoji-ledger/internal/store"
)

type memberDirectory struct {
	store store.Store
}

// NewMemberDirectory returns a Directory backed by the members table
func NewMemberDirectory(st store.Store) Directory {
	return &memberDirectory{store: st}
}

func (d *memberDirectory) DisplayName(ctx context.Context, user domain.UserID) (string, error) {
	member, err := d.store.GetMember(ctx, user)
	if err != nil {
		return "", fmt.Errorf("failed to get member: %w", err)
	}
	if member != nil {
		if member.Nickname != nil && strings.TrimSpace(*member.Nickname) != "" {
			return *member.Nickname, nil
		}
		if member.DisplayName != nil && strings.TrimSpace(*member.DisplayName) != "" {
			return *member.DisplayName, nil
		}
	}
	return user.String(), nil
}

func (d *memberDirectory) Roles(ctx context.Context, user domain.UserID) ([]string, error) {
	member, err := d.store.GetMember(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("failed to get member: %w", err)
	}
	if member == nil {
		return []string{}, nil
	}
	return []string(member.Roles), nil
}
