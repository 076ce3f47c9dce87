package executor

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/feral-file/ff-emoji-ledger/internal/adapter"
	"github.com/feral-file/ff-emoji-ledger/internal/api/shared/constants"
	"github.com/feral-file/ff-emoji-ledger/internal/api/shared/dto"
	apierrors "github.com/feral-file/ff-emoji-ledger/internal/api/shared/errors"
	"github.com/feral-file/ff-emoji-ledger/internal/catalog"
	"github.com/feral-file/ff-emoji-ledger/internal/confirm"
	"github.com/feral-file/ff-emoji-ledger/internal/domain"
	"github.com/feral-file/ff-emoji-ledger/internal/ledger"
	"github.com/feral-file/ff-emoji-ledger/internal/logger"
	"github.com/feral-file/ff-emoji-ledger/internal/reward"
	"github.com/feral-file/ff-emoji-ledger/internal/store"
)

// Executor is the interface for the API executor.
// It turns chat commands into ledger calls and ledger results into the messages shown to users.
// Errors it returns are *apierrors.APIError.
//
//go:generate mockgen -source=executor.go -destination=../../../mocks/api_executor.go -package=mocks -mock_names=Executor=MockAPIExecutor
type Executor interface {
	// Grant gives emojis to a user outside of any trade
	Grant(ctx context.Context, user domain.UserID, emojis string) (*dto.GrantResponse, error)
	// RecordActivity grants the periodic reward on the user's first activity in a period
	RecordActivity(ctx context.Context, user domain.UserID) (*dto.ActivityResponse, error)
	// GetInventory returns the owner's inventory as seen by the viewer
	GetInventory(ctx context.Context, viewer, owner domain.UserID, grouped bool) (*dto.InventoryResponse, error)
	// TogglePrivacy flips the user's inventory privacy
	TogglePrivacy(ctx context.Context, user domain.UserID) (*dto.PrivacyResponse, error)
	// FindEmojiOwners lists users with public inventories owning the emoji
	FindEmojiOwners(ctx context.Context, emoji string) (*dto.EmojiOwnersResponse, error)

	AddToGroup(ctx context.Context, user domain.UserID, group, emojis string) (*dto.AddToGroupResponse, error)
	RemoveFromGroup(ctx context.Context, user domain.UserID, group *string, emojis string) (*dto.RemoveFromGroupResponse, error)
	RenameGroup(ctx context.Context, user domain.UserID, oldName, newName string) (*dto.RenameGroupResponse, error)
	ListGroups(ctx context.Context, user domain.UserID) (*dto.GroupListResponse, error)
	GetGroupContents(ctx context.Context, user domain.UserID, name string) (*dto.GroupContentsResponse, error)
	GetUngrouped(ctx context.Context, user domain.UserID) (*dto.GroupContentsResponse, error)
	RepositionGroup(ctx context.Context, user domain.UserID, name string, position int) (*dto.RepositionGroupResponse, error)

	CreateOffer(ctx context.Context, offerer, target domain.UserID, offer, request string) (*dto.CreateOfferResponse, error)
	WithdrawOffer(ctx context.Context, offerer, target domain.UserID) (*dto.MessageResponse, error)
	RejectOffer(ctx context.Context, target, offerer domain.UserID) (*dto.MessageResponse, error)
	ListOffers(ctx context.Context, user domain.UserID) (*dto.TradeOffersResponse, error)
	// AcceptOffer validates the offer and returns the confirmation prompt to show the accepting user
	AcceptOffer(ctx context.Context, caller ledger.Caller, offerer domain.UserID) (*dto.ConfirmationPromptResponse, error)
	// AnswerConfirmation delivers the user's answer to a prompt and returns the trade result
	AnswerConfirmation(ctx context.Context, promptID string, user domain.UserID, choice string) (*dto.TradeResultResponse, error)

	Recycle(ctx context.Context, user domain.UserID, emojis string) (*dto.RecycleResponse, error)
	GetTradeHistory(ctx context.Context, user domain.UserID, limit int) (*dto.TradeHistoryResponse, error)

	// UpsertMember mirrors a chat member into the directory used for names and roles
	UpsertMember(ctx context.Context, user domain.UserID, req dto.UpsertMemberRequest) error
}

// acceptReply is what the goroutine running an accept hands to whoever answers its prompt
type acceptReply struct {
	response *dto.TradeResultResponse
	err      error
}

type executor struct {
	ledger    ledger.Service
	rewarder  reward.Rewarder
	directory ledger.Directory
	catalog   catalog.Catalog
	store     store.Store
	broker    *confirm.Broker[*acceptReply]
}

// NewExecutor creates the API executor. A nil rewarder disables activity rewards.
// Trade confirmations expire after confirmationTimeout.
func NewExecutor(
	ledgerService ledger.Service,
	rewarder reward.Rewarder,
	directory ledger.Directory,
	cat catalog.Catalog,
	st store.Store,
	clock adapter.Clock,
	confirmationTimeout time.Duration,
) Executor {
	return &executor{
		ledger:    ledgerService,
		rewarder:  rewarder,
		directory: directory,
		catalog:   cat,
		store:     st,
		broker:    confirm.NewBroker[*acceptReply](clock, confirmationTimeout),
	}
}

// displayName falls back to the decimal ID when the directory cannot be reached
func (e *executor) displayName(ctx context.Context, user domain.UserID) string {
	name, err := e.directory.DisplayName(ctx, user)
	if err != nil {
		logger.WarnCtx(ctx, "Failed to resolve display name", zap.Error(err), logger.User("user_id", user))
		return user.String()
	}
	return name
}

func (e *executor) parse(ctx context.Context, input string) (domain.EmojiCounts, error) {
	counts, err := e.catalog.Parse(input)
	if err != nil {
		return nil, e.toAPIError(ctx, err, nil)
	}
	return counts, nil
}

func (e *executor) Grant(ctx context.Context, user domain.UserID, emojis string) (*dto.GrantResponse, error) {
	counts, err := e.parse(ctx, emojis)
	if err != nil {
		return nil, err
	}

	if err := e.ledger.Grant(ctx, user, counts); err != nil {
		return nil, e.toAPIError(ctx, err, nil)
	}

	return &dto.GrantResponse{
		UserID:  user.String(),
		Granted: dto.MapEmojiCounts(counts),
		Message: grantMessage(e.displayName(ctx, user), counts),
	}, nil
}

func (e *executor) RecordActivity(ctx context.Context, user domain.UserID) (*dto.ActivityResponse, error) {
	if e.rewarder == nil {
		return &dto.ActivityResponse{}, nil
	}

	r, err := e.rewarder.RecordActivity(ctx, user)
	if err != nil {
		return nil, e.toAPIError(ctx, err, nil)
	}
	if r.Granted == nil {
		return &dto.ActivityResponse{}, nil
	}

	return &dto.ActivityResponse{
		Granted:  r.Granted.String(),
		Announce: r.Announce,
		Message:  rewardMessage(*r.Granted),
	}, nil
}

func (e *executor) GetInventory(ctx context.Context, viewer, owner domain.UserID, grouped bool) (*dto.InventoryResponse, error) {
	// Messages address the viewer as "you" when looking at their own inventory
	var ownerName string
	if viewer != owner {
		ownerName = e.displayName(ctx, owner)
	}
	overrides := map[error]string{
		domain.ErrPrivateInventory: privateInventoryMessage(ownerName),
	}

	resp := &dto.InventoryResponse{UserID: owner.String()}
	if grouped {
		inv, err := e.ledger.GroupedInventory(ctx, viewer, owner)
		if err != nil {
			return nil, e.toAPIError(ctx, err, overrides)
		}
		resp.Groups = dto.MapGroups(inv.Groups)
		resp.Ungrouped = dto.MapEmojiCounts(inv.Ungrouped)
		resp.Total = inv.Ungrouped.Total()
		for _, g := range inv.Groups {
			resp.Total += g.Emojis.Total()
		}
		resp.Message = inventoryMessage(ownerName, inv.Groups, inv.Ungrouped)
		return resp, nil
	}

	counts, err := e.ledger.Inventory(ctx, viewer, owner)
	if err != nil {
		return nil, e.toAPIError(ctx, err, overrides)
	}
	resp.Emojis = dto.MapEmojiCounts(counts)
	resp.Total = counts.Total()
	resp.Message = inventoryMessage(ownerName, nil, counts)
	return resp, nil
}

func (e *executor) TogglePrivacy(ctx context.Context, user domain.UserID) (*dto.PrivacyResponse, error) {
	private, err := e.ledger.TogglePrivacy(ctx, user)
	if err != nil {
		return nil, e.toAPIError(ctx, err, nil)
	}
	return &dto.PrivacyResponse{
		Private: private,
		Message: privacyMessage(private),
	}, nil
}

func (e *executor) FindEmojiOwners(ctx context.Context, emoji string) (*dto.EmojiOwnersResponse, error) {
	counts, err := e.catalog.Parse(emoji)
	if err != nil || counts.Distinct() != 1 {
		return nil, apierrors.New(apierrors.ErrCodeValidationFailed, notAnEmojiMessage(emoji))
	}
	target := counts.Sorted()[0].Emoji

	owners, err := e.ledger.WhoHas(ctx, target)
	if err != nil {
		return nil, e.toAPIError(ctx, err, nil)
	}

	named := make([]namedOwner, 0, len(owners))
	resp := &dto.EmojiOwnersResponse{
		Emoji:  target.String(),
		Owners: make([]dto.EmojiOwner, 0, len(owners)),
	}
	for _, o := range owners {
		name := e.displayName(ctx, o.User)
		named = append(named, namedOwner{name: name, count: o.Count})
		resp.Owners = append(resp.Owners, dto.EmojiOwner{
			UserID: o.User.String(),
			Name:   name,
			Count:  o.Count,
		})
	}
	resp.Message = whoHasMessage(target, named)
	return resp, nil
}

func (e *executor) AddToGroup(ctx context.Context, user domain.UserID, group, emojis string) (*dto.AddToGroupResponse, error) {
	counts, err := e.parse(ctx, emojis)
	if err != nil {
		return nil, err
	}

	result, err := e.ledger.AddToGroup(ctx, user, group, counts)
	if err != nil {
		return nil, e.toAPIError(ctx, err, nil)
	}

	return &dto.AddToGroupResponse{
		Group:   result.Name,
		Added:   dto.MapEmojiCounts(result.Added),
		Created: result.Created,
		Message: addedToGroupMessage(counts.Total(), result.Name, result.Added),
	}, nil
}

func (e *executor) RemoveFromGroup(ctx context.Context, user domain.UserID, group *string, emojis string) (*dto.RemoveFromGroupResponse, error) {
	counts, err := e.parse(ctx, emojis)
	if err != nil {
		return nil, err
	}

	var overrides map[error]string
	if group != nil {
		overrides = map[error]string{domain.ErrNoSuchGroup: noSuchGroupMessage(strings.TrimSpace(*group))}
	}

	removed, err := e.ledger.RemoveFromGroup(ctx, user, counts, group)
	if err != nil {
		return nil, e.toAPIError(ctx, err, overrides)
	}

	return &dto.RemoveFromGroupResponse{
		Removed: dto.MapEmojiCounts(removed),
		Message: removedFromGroupMessage(counts.Total(), group != nil, removed),
	}, nil
}

func (e *executor) RenameGroup(ctx context.Context, user domain.UserID, oldName, newName string) (*dto.RenameGroupResponse, error) {
	previous, err := e.ledger.RenameGroup(ctx, user, oldName, newName)
	if err != nil {
		return nil, e.toAPIError(ctx, err, map[error]string{
			domain.ErrNoSuchGroup: noSuchGroupMessage(strings.TrimSpace(oldName)),
		})
	}

	newName = strings.TrimSpace(newName)
	return &dto.RenameGroupResponse{
		OldName: previous,
		NewName: newName,
		Message: renamedGroupMessage(previous, newName),
	}, nil
}

func (e *executor) ListGroups(ctx context.Context, user domain.UserID) (*dto.GroupListResponse, error) {
	listing, err := e.ledger.ListGroups(ctx, user)
	if err != nil {
		return nil, e.toAPIError(ctx, err, nil)
	}
	return &dto.GroupListResponse{
		Groups:         dto.MapGroupSummaries(listing.Groups),
		UngroupedCount: listing.UngroupedCount,
		Message:        listGroupsMessage(listing),
	}, nil
}

func (e *executor) GetGroupContents(ctx context.Context, user domain.UserID, name string) (*dto.GroupContentsResponse, error) {
	contents, err := e.ledger.GroupContents(ctx, user, name)
	if err != nil {
		return nil, e.toAPIError(ctx, err, map[error]string{
			domain.ErrNoSuchGroup: noSuchGroupMessage(strings.TrimSpace(name)),
		})
	}
	return &dto.GroupContentsResponse{
		Name:    contents.Name,
		Emojis:  dto.MapEmojiCounts(contents.Emojis),
		Message: groupContentsMessage(contents),
	}, nil
}

func (e *executor) GetUngrouped(ctx context.Context, user domain.UserID) (*dto.GroupContentsResponse, error) {
	emojis, err := e.ledger.Ungrouped(ctx, user)
	if err != nil {
		return nil, e.toAPIError(ctx, err, nil)
	}
	return &dto.GroupContentsResponse{
		Emojis:  dto.MapEmojiCounts(emojis),
		Message: ungroupedMessage(emojis),
	}, nil
}

func (e *executor) RepositionGroup(ctx context.Context, user domain.UserID, name string, position int) (*dto.RepositionGroupResponse, error) {
	result, err := e.ledger.RepositionGroup(ctx, user, name, position)
	if err != nil {
		return nil, e.toAPIError(ctx, err, map[error]string{
			domain.ErrNoSuchGroup: noSuchGroupMessage(strings.TrimSpace(name)),
		})
	}

	resp := &dto.RepositionGroupResponse{
		Name:        result.Name,
		Outcome:     string(result.Kind),
		OldPosition: result.OldPosition,
		GroupCount:  result.GroupCount,
		Message:     repositionMessage(result),
	}
	if result.Kind == domain.MovedBetween {
		neighbours := []string{result.Neighbours[0], result.Neighbours[1]}
		resp.Neighbours = &neighbours
	}
	return resp, nil
}

func (e *executor) Recycle(ctx context.Context, user domain.UserID, emojis string) (*dto.RecycleResponse, error) {
	counts, err := e.parse(ctx, emojis)
	if err != nil {
		return nil, err
	}

	result, err := e.ledger.Recycle(ctx, user, counts)
	if err != nil {
		return nil, e.toAPIError(ctx, err, nil)
	}

	// The recycle already committed; a failed lookup only makes the reply private
	private, err := e.ledger.IsPrivate(ctx, user)
	if err != nil {
		logger.WarnCtx(ctx, "Failed to read privacy flag", zap.Error(err), logger.User("user_id", user))
		private = true
	}

	var name string
	if !private {
		name = e.displayName(ctx, user)
	}

	return &dto.RecycleResponse{
		Consumed: dto.MapEmojiCounts(result.Consumed),
		Payout:   result.Payout.String(),
		EventID:  result.EventID,
		Public:   !private,
		Message:  recycleMessage(name, !private, result),
	}, nil
}

func (e *executor) GetTradeHistory(ctx context.Context, user domain.UserID, limit int) (*dto.TradeHistoryResponse, error) {
	if limit <= 0 {
		limit = constants.DEFAULT_HISTORY_LIMIT
	}
	limit = min(limit, constants.MAX_HISTORY_LIMIT)

	entries, err := e.ledger.History(ctx, user, limit)
	if err != nil {
		return nil, e.toAPIError(ctx, err, nil)
	}

	resp := &dto.TradeHistoryResponse{Entries: make([]dto.TradeLogEntry, 0, len(entries))}
	for _, entry := range entries {
		item := dto.TradeLogEntry{
			EventID:   entry.EventID,
			Timestamp: entry.Timestamp,
		}

		gave, got := entry.Sent, entry.Received
		counterparty, isUser := entry.Recipient.User()
		if isUser && entry.Sender != user {
			// Seen from the accepting side the two halves swap
			gave, got = entry.Received, entry.Sent
			counterparty = entry.Sender
		}
		item.Gave = dto.MapEmojiCounts(gave)
		item.Got = dto.MapEmojiCounts(got)

		if isUser {
			item.Kind = "trade"
			item.CounterpartyID = counterparty.String()
			item.Message = historyMessage(gave, got, e.displayName(ctx, counterparty), false)
		} else {
			item.Kind = "recycle"
			item.Message = historyMessage(gave, got, "", true)
		}
		resp.Entries = append(resp.Entries, item)
	}
	return resp, nil
}

func (e *executor) UpsertMember(ctx context.Context, user domain.UserID, req dto.UpsertMemberRequest) error {
	roles := req.Roles
	if roles == nil {
		roles = []string{}
	}

	err := e.store.UpsertMember(ctx, store.UpsertMemberInput{
		UserID:      user,
		DisplayName: req.DisplayName,
		Nickname:    req.Nickname,
		Roles:       roles,
	})
	if err != nil {
		return e.toAPIError(ctx, err, nil)
	}
	return nil
}
