package ledger_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"github.com/feral-file/ff-emoji-ledger/internal/confirm"
	"github.com/feral-file/ff-emoji-ledger/internal/domain"
	"github.com/feral-file/ff-emoji-ledger/internal/ledger"
	"github.com/feral-file/ff-emoji-ledger/internal/logger"
	"github.com/feral-file/ff-emoji-ledger/internal/mocks"
	"github.com/feral-file/ff-emoji-ledger/internal/store"
	"github.com/feral-file/ff-emoji-ledger/internal/store/schema"
)

const (
	alice domain.UserID = 1001
	bob   domain.UserID = 1002
)

var (
	grin  = domain.NewEmoji("😀", 0)
	smile = domain.NewEmoji("😃", 1)
	laugh = domain.NewEmoji("😄", 2)
	wink  = domain.NewEmoji("😉", 9)

	testNow = time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)
)

type testLedgerMocks struct {
	ctrl      *gomock.Controller
	store     *mocks.MockStore
	catalog   *mocks.MockCatalog
	publisher *mocks.MockPublisher
	directory *mocks.MockDirectory
	clock     *mocks.MockClock
	confirmer *mocks.MockConfirmer
	service   ledger.Service
}

func setupTestLedger(t *testing.T, cfg ledger.Config) *testLedgerMocks {
	err := logger.Initialize(logger.Config{
		Debug: true,
	})
	if err != nil {
		t.Fatalf("Failed to initialize logger: %v", err)
	}

	ctrl := gomock.NewController(t)

	tm := &testLedgerMocks{
		ctrl:      ctrl,
		store:     mocks.NewMockStore(ctrl),
		catalog:   mocks.NewMockCatalog(ctrl),
		publisher: mocks.NewMockPublisher(ctrl),
		directory: mocks.NewMockDirectory(ctrl),
		clock:     mocks.NewMockClock(ctrl),
		confirmer: mocks.NewMockConfirmer(ctrl),
	}
	tm.clock.EXPECT().Now().Return(testNow).AnyTimes()

	tm.service = ledger.NewService(cfg, tm.store, tm.catalog, tm.publisher, tm.directory, tm.clock)
	return tm
}

func tearDownTestLedger(mocks *testLedgerMocks) {
	mocks.ctrl.Finish()
}

// eventOfType matches a published ledger event by type
type eventOfType domain.LedgerEventType

func (m eventOfType) Matches(x any) bool {
	event, ok := x.(*domain.LedgerEvent)
	return ok && event.Type == domain.LedgerEventType(m)
}

func (m eventOfType) String() string {
	return "is a " + string(m) + " event"
}

func testOffer() domain.TradeOffer {
	return domain.TradeOffer{
		Offerer:   alice,
		Target:    bob,
		Offered:   domain.NewEmojiCounts(grin),
		Requested: domain.NewEmojiCounts(smile, smile),
	}
}

func TestGrant(t *testing.T) {
	mocks := setupTestLedger(t, ledger.Config{})
	defer tearDownTestLedger(mocks)

	ctx := context.Background()
	emojis := domain.NewEmojiCounts(grin, grin)

	mocks.store.EXPECT().GrantEmojis(gomock.Any(), alice, emojis).Return(nil)
	mocks.publisher.EXPECT().
		PublishEvent(gomock.Any(), eventOfType(domain.LedgerEventEmojiGranted)).
		DoAndReturn(func(_ context.Context, event *domain.LedgerEvent) error {
			assert.Equal(t, alice, event.UserID)
			assert.Equal(t, []string{"😀", "😀"}, event.Received)
			assert.Len(t, event.ID, 26)
			return nil
		})

	require.NoError(t, mocks.service.Grant(ctx, alice, emojis))
}

func TestGrant_EmptyIsNoop(t *testing.T) {
	mocks := setupTestLedger(t, ledger.Config{})
	defer tearDownTestLedger(mocks)

	require.NoError(t, mocks.service.Grant(context.Background(), alice, domain.EmojiCounts{}))
}

func TestGrant_PublishFailureDoesNotFail(t *testing.T) {
	mocks := setupTestLedger(t, ledger.Config{})
	defer tearDownTestLedger(mocks)

	emojis := domain.NewEmojiCounts(grin)
	mocks.store.EXPECT().GrantEmojis(gomock.Any(), alice, emojis).Return(nil)
	mocks.publisher.EXPECT().PublishEvent(gomock.Any(), gomock.Any()).Return(errors.New("broker down"))

	assert.NoError(t, mocks.service.Grant(context.Background(), alice, emojis))
}

func TestInventory_Privacy(t *testing.T) {
	tests := []struct {
		name    string
		viewer  domain.UserID
		private bool
		setup   bool
		wantErr error
	}{
		{name: "owner sees own private inventory", viewer: alice, private: true, setup: false},
		{name: "other user sees public inventory", viewer: bob, private: false, setup: true},
		{name: "other user blocked by private inventory", viewer: bob, private: true, setup: true, wantErr: domain.ErrPrivateInventory},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mocks := setupTestLedger(t, ledger.Config{})
			defer tearDownTestLedger(mocks)

			ctx := context.Background()
			if tt.setup {
				mocks.store.EXPECT().IsPrivate(gomock.Any(), alice).Return(tt.private, nil)
			}
			if tt.wantErr == nil {
				mocks.store.EXPECT().GetInventory(gomock.Any(), alice).Return(domain.NewEmojiCounts(grin), nil)
			}

			inventory, err := mocks.service.Inventory(ctx, tt.viewer, alice)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, domain.NewEmojiCounts(grin), inventory)
		})
	}
}

func TestWhoHas_PublicOnly(t *testing.T) {
	mocks := setupTestLedger(t, ledger.Config{})
	defer tearDownTestLedger(mocks)

	owners := []store.EmojiOwner{{User: alice, Count: 2}}
	mocks.store.EXPECT().GetEmojiOwners(gomock.Any(), grin, true).Return(owners, nil)

	got, err := mocks.service.WhoHas(context.Background(), grin)
	require.NoError(t, err)
	assert.Equal(t, owners, got)
}

func TestHistory_InvalidLimit(t *testing.T) {
	mocks := setupTestLedger(t, ledger.Config{})
	defer tearDownTestLedger(mocks)

	_, err := mocks.service.History(context.Background(), alice, 0)
	assert.Error(t, err)
}

func TestOffer(t *testing.T) {
	offered := domain.NewEmojiCounts(grin)
	requested := domain.NewEmojiCounts(smile)

	t.Run("self trade", func(t *testing.T) {
		mocks := setupTestLedger(t, ledger.Config{})
		defer tearDownTestLedger(mocks)

		_, err := mocks.service.Offer(context.Background(), alice, alice, offered, requested)
		assert.ErrorIs(t, err, domain.ErrSelfTrade)
	})

	t.Run("existing offer is checked before contents", func(t *testing.T) {
		mocks := setupTestLedger(t, ledger.Config{})
		defer tearDownTestLedger(mocks)

		existing := testOffer()
		mocks.store.EXPECT().GetTradeOffer(gomock.Any(), alice, bob).Return(&existing, nil)

		_, err := mocks.service.Offer(context.Background(), alice, bob, domain.EmojiCounts{}, requested)
		assert.ErrorIs(t, err, domain.ErrOfferExists)
	})

	t.Run("empty and overlapping contents", func(t *testing.T) {
		cases := []struct {
			offered   domain.EmojiCounts
			requested domain.EmojiCounts
			wantErr   error
		}{
			{domain.EmojiCounts{}, requested, domain.ErrEmptyOffered},
			{offered, domain.EmojiCounts{}, domain.ErrEmptyRequested},
			{offered, domain.NewEmojiCounts(grin, smile), domain.ErrOverlappingOffer},
		}
		for _, c := range cases {
			mocks := setupTestLedger(t, ledger.Config{})
			mocks.store.EXPECT().GetTradeOffer(gomock.Any(), alice, bob).Return(nil, nil)

			_, err := mocks.service.Offer(context.Background(), alice, bob, c.offered, c.requested)
			assert.ErrorIs(t, err, c.wantErr)
			tearDownTestLedger(mocks)
		}
	})

	t.Run("offerer lacks emojis", func(t *testing.T) {
		mocks := setupTestLedger(t, ledger.Config{})
		defer tearDownTestLedger(mocks)

		mocks.store.EXPECT().GetTradeOffer(gomock.Any(), alice, bob).Return(nil, nil)
		mocks.store.EXPECT().HasEmojis(gomock.Any(), alice, offered).Return(false, nil)

		_, err := mocks.service.Offer(context.Background(), alice, bob, offered, requested)
		assert.ErrorIs(t, err, domain.ErrOffererLacksEmojis)
	})

	t.Run("created", func(t *testing.T) {
		mocks := setupTestLedger(t, ledger.Config{})
		defer tearDownTestLedger(mocks)

		mocks.store.EXPECT().GetTradeOffer(gomock.Any(), alice, bob).Return(nil, nil)
		mocks.store.EXPECT().HasEmojis(gomock.Any(), alice, offered).Return(true, nil)
		mocks.store.EXPECT().
			CreateTradeOffer(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, offer domain.TradeOffer) error {
				assert.Equal(t, alice, offer.Offerer)
				assert.Equal(t, bob, offer.Target)
				assert.True(t, offer.Offered.Equal(offered))
				assert.True(t, offer.Requested.Equal(requested))
				return nil
			})

		offer, err := mocks.service.Offer(context.Background(), alice, bob, offered, requested)
		require.NoError(t, err)
		assert.Equal(t, bob, offer.Target)
	})
}

func TestWithdrawAndReject(t *testing.T) {
	mocks := setupTestLedger(t, ledger.Config{})
	defer tearDownTestLedger(mocks)

	ctx := context.Background()

	mocks.store.EXPECT().DeleteTradeOffer(gomock.Any(), alice, bob).Return(nil)
	require.NoError(t, mocks.service.Withdraw(ctx, alice, bob))

	// Reject takes the target first and deletes the offer made to them
	mocks.store.EXPECT().DeleteTradeOffer(gomock.Any(), alice, bob).Return(domain.ErrNoSuchOffer)
	assert.ErrorIs(t, mocks.service.Reject(ctx, bob, alice), domain.ErrNoSuchOffer)
}

func expectValidOffer(mocks *testLedgerMocks, offer domain.TradeOffer) {
	mocks.store.EXPECT().GetTradeOffer(gomock.Any(), offer.Offerer, offer.Target).Return(&offer, nil)
	mocks.store.EXPECT().HasEmojis(gomock.Any(), offer.Target, offer.Requested).Return(true, nil)
	mocks.store.EXPECT().HasEmojis(gomock.Any(), offer.Offerer, offer.Offered).Return(true, nil)
}

func TestAccept_AcceptStage(t *testing.T) {
	offer := testOffer()

	tests := []struct {
		name    string
		setup   func(m *testLedgerMocks)
		wantErr error
	}{
		{
			name: "no such offer",
			setup: func(m *testLedgerMocks) {
				m.store.EXPECT().GetTradeOffer(gomock.Any(), alice, bob).Return(nil, nil)
			},
			wantErr: domain.ErrNoSuchOffer,
		},
		{
			name: "target lacks emojis is checked first",
			setup: func(m *testLedgerMocks) {
				m.store.EXPECT().GetTradeOffer(gomock.Any(), alice, bob).Return(&offer, nil)
				m.store.EXPECT().HasEmojis(gomock.Any(), bob, offer.Requested).Return(false, nil)
			},
			wantErr: domain.ErrTargetLacksEmojis,
		},
		{
			name: "offerer lacks emojis",
			setup: func(m *testLedgerMocks) {
				m.store.EXPECT().GetTradeOffer(gomock.Any(), alice, bob).Return(&offer, nil)
				m.store.EXPECT().HasEmojis(gomock.Any(), bob, offer.Requested).Return(true, nil)
				m.store.EXPECT().HasEmojis(gomock.Any(), alice, offer.Offered).Return(false, nil)
			},
			wantErr: domain.ErrOffererLacksEmojis,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mocks := setupTestLedger(t, ledger.Config{})
			defer tearDownTestLedger(mocks)

			tt.setup(mocks)

			_, err := mocks.service.Accept(context.Background(), ledger.Caller{User: bob}, alice, mocks.confirmer)
			require.Error(t, err)

			var acceptErr *ledger.AcceptError
			require.ErrorAs(t, err, &acceptErr)
			assert.Equal(t, ledger.StageAccept, acceptErr.Stage)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestAccept_Confirmed(t *testing.T) {
	mocks := setupTestLedger(t, ledger.Config{})
	defer tearDownTestLedger(mocks)

	offer := testOffer()
	expectValidOffer(mocks, offer)

	invalidated := domain.TradeOffer{
		Offerer:   bob,
		Target:    domain.UserID(1003),
		Offered:   domain.NewEmojiCounts(smile, smile),
		Requested: domain.NewEmojiCounts(laugh),
	}

	mocks.confirmer.EXPECT().Confirm(gomock.Any(), offer).Return(confirm.Confirmed, nil)
	mocks.store.EXPECT().
		SettleTradeOffer(gomock.Any(), offer, gomock.Any()).
		DoAndReturn(func(_ context.Context, expected domain.TradeOffer, eventID string) (*domain.SettlementResult, error) {
			return &domain.SettlementResult{Offer: expected, EventID: eventID, Invalidated: []domain.TradeOffer{invalidated}}, nil
		})

	gomock.InOrder(
		mocks.publisher.EXPECT().
			PublishEvent(gomock.Any(), eventOfType(domain.LedgerEventTradeSettled)).
			DoAndReturn(func(_ context.Context, event *domain.LedgerEvent) error {
				assert.Equal(t, alice, event.UserID)
				require.NotNil(t, event.OtherUser)
				assert.Equal(t, bob, *event.OtherUser)
				assert.Equal(t, []string{"😀"}, event.Sent)
				assert.Equal(t, []string{"😃", "😃"}, event.Received)
				return nil
			}),
		mocks.publisher.EXPECT().
			PublishEvent(gomock.Any(), eventOfType(domain.LedgerEventOfferInvalidated)).
			Return(nil),
	)

	result, err := mocks.service.Accept(context.Background(), ledger.Caller{User: bob}, alice, mocks.confirmer)
	require.NoError(t, err)
	assert.Equal(t, confirm.Confirmed, result.Outcome)
	require.NotNil(t, result.Settlement)
	assert.Len(t, result.Settlement.Invalidated, 1)
	assert.NotEmpty(t, result.Settlement.EventID)
}

func TestAccept_DeclinedLeavesOffer(t *testing.T) {
	mocks := setupTestLedger(t, ledger.Config{})
	defer tearDownTestLedger(mocks)

	offer := testOffer()
	expectValidOffer(mocks, offer)
	mocks.confirmer.EXPECT().Confirm(gomock.Any(), offer).Return(confirm.Declined, nil)

	result, err := mocks.service.Accept(context.Background(), ledger.Caller{User: bob}, alice, mocks.confirmer)
	require.NoError(t, err)
	assert.Equal(t, confirm.Declined, result.Outcome)
	assert.Nil(t, result.Settlement)
}

func TestAccept_TimeoutLeavesOffer(t *testing.T) {
	mocks := setupTestLedger(t, ledger.Config{})
	defer tearDownTestLedger(mocks)

	offer := testOffer()
	expectValidOffer(mocks, offer)
	mocks.confirmer.EXPECT().Confirm(gomock.Any(), offer).Return(confirm.TimedOut, nil)
	mocks.publisher.EXPECT().
		PublishEvent(gomock.Any(), eventOfType(domain.LedgerEventConfirmationTimedOut)).
		DoAndReturn(func(_ context.Context, event *domain.LedgerEvent) error {
			assert.Equal(t, bob, event.UserID)
			return nil
		})

	// No SettleTradeOffer or DeleteTradeOffer call is expected
	result, err := mocks.service.Accept(context.Background(), ledger.Caller{User: bob}, alice, mocks.confirmer)
	require.NoError(t, err)
	assert.Equal(t, confirm.TimedOut, result.Outcome)
	assert.Nil(t, result.Settlement)
}

func TestAccept_ConfirmStage(t *testing.T) {
	for _, wantErr := range []error{
		domain.ErrNoSuchOffer,
		domain.ErrTargetLacksEmojis,
		domain.ErrOffererLacksEmojis,
		domain.ErrOfferChanged,
	} {
		t.Run(wantErr.Error(), func(t *testing.T) {
			mocks := setupTestLedger(t, ledger.Config{})
			defer tearDownTestLedger(mocks)

			offer := testOffer()
			expectValidOffer(mocks, offer)
			mocks.confirmer.EXPECT().Confirm(gomock.Any(), offer).Return(confirm.Confirmed, nil)
			mocks.store.EXPECT().SettleTradeOffer(gomock.Any(), offer, gomock.Any()).Return(nil, wantErr)

			_, err := mocks.service.Accept(context.Background(), ledger.Caller{User: bob}, alice, mocks.confirmer)

			var acceptErr *ledger.AcceptError
			require.ErrorAs(t, err, &acceptErr)
			assert.Equal(t, ledger.StageConfirm, acceptErr.Stage)
			assert.ErrorIs(t, err, wantErr)
		})
	}
}

func TestAccept_InternalErrorIsNotAStageError(t *testing.T) {
	mocks := setupTestLedger(t, ledger.Config{})
	defer tearDownTestLedger(mocks)

	offer := testOffer()
	expectValidOffer(mocks, offer)
	mocks.confirmer.EXPECT().Confirm(gomock.Any(), offer).Return(confirm.Confirmed, nil)
	mocks.store.EXPECT().
		SettleTradeOffer(gomock.Any(), offer, gomock.Any()).
		Return(nil, domain.ErrLedgerInvariant)

	_, err := mocks.service.Accept(context.Background(), ledger.Caller{User: bob}, alice, mocks.confirmer)
	require.Error(t, err)

	var acceptErr *ledger.AcceptError
	assert.False(t, errors.As(err, &acceptErr))
	assert.ErrorIs(t, err, domain.ErrLedgerInvariant)
}

func TestAccept_TradingRoles(t *testing.T) {
	cfg := ledger.Config{TradingRoles: []string{"trader"}}

	t.Run("caller without role", func(t *testing.T) {
		mocks := setupTestLedger(t, cfg)
		defer tearDownTestLedger(mocks)

		_, err := mocks.service.Accept(context.Background(), ledger.Caller{User: bob, Roles: []string{"member"}}, alice, mocks.confirmer)
		assert.ErrorIs(t, err, domain.ErrNoTradingRole)
	})

	t.Run("caller roles fall back to the directory", func(t *testing.T) {
		mocks := setupTestLedger(t, cfg)
		defer tearDownTestLedger(mocks)

		mocks.directory.EXPECT().Roles(gomock.Any(), bob).Return([]string{}, nil)

		_, err := mocks.service.Accept(context.Background(), ledger.Caller{User: bob}, alice, mocks.confirmer)
		assert.ErrorIs(t, err, domain.ErrNoTradingRole)
	})

	t.Run("offerer without role", func(t *testing.T) {
		mocks := setupTestLedger(t, cfg)
		defer tearDownTestLedger(mocks)

		mocks.directory.EXPECT().Roles(gomock.Any(), alice).Return([]string{"member"}, nil)

		_, err := mocks.service.Accept(context.Background(), ledger.Caller{User: bob, Roles: []string{"trader"}}, alice, mocks.confirmer)
		assert.ErrorIs(t, err, domain.ErrOffererNoTradingRole)
	})

	t.Run("both hold a role", func(t *testing.T) {
		mocks := setupTestLedger(t, cfg)
		defer tearDownTestLedger(mocks)

		offer := testOffer()
		mocks.directory.EXPECT().Roles(gomock.Any(), alice).Return([]string{"member", "trader"}, nil)
		expectValidOffer(mocks, offer)
		mocks.confirmer.EXPECT().Confirm(gomock.Any(), offer).Return(confirm.Declined, nil)

		result, err := mocks.service.Accept(context.Background(), ledger.Caller{User: bob, Roles: []string{"trader"}}, alice, mocks.confirmer)
		require.NoError(t, err)
		assert.Equal(t, confirm.Declined, result.Outcome)
	})
}

func TestRecycle(t *testing.T) {
	t.Run("arity is checked before anything else", func(t *testing.T) {
		for _, input := range []domain.EmojiCounts{
			domain.NewEmojiCounts(grin, smile),
			domain.NewEmojiCounts(grin, smile, laugh, laugh),
		} {
			mocks := setupTestLedger(t, ledger.Config{})
			_, err := mocks.service.Recycle(context.Background(), alice, input)
			assert.ErrorIs(t, err, domain.ErrRecycleArity)
			tearDownTestLedger(mocks)
		}
	})

	t.Run("insufficient emojis", func(t *testing.T) {
		mocks := setupTestLedger(t, ledger.Config{})
		defer tearDownTestLedger(mocks)

		input := domain.NewEmojiCounts(grin, grin, grin)
		mocks.store.EXPECT().HasEmojis(gomock.Any(), alice, input).Return(false, nil)

		_, err := mocks.service.Recycle(context.Background(), alice, input)
		assert.ErrorIs(t, err, domain.ErrInsufficientEmojis)
	})

	t.Run("recycled", func(t *testing.T) {
		mocks := setupTestLedger(t, ledger.Config{})
		defer tearDownTestLedger(mocks)

		input := domain.NewEmojiCounts(grin, smile, laugh)
		mocks.store.EXPECT().HasEmojis(gomock.Any(), alice, input).Return(true, nil)
		mocks.catalog.EXPECT().RandomExcluding(input).Return(wink, nil)
		mocks.store.EXPECT().
			Recycle(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, in store.RecycleInput) (*domain.RecycleResult, error) {
				assert.Equal(t, alice, in.User)
				assert.Equal(t, wink, in.Payout)
				assert.NotEmpty(t, in.EventID)
				return &domain.RecycleResult{User: in.User, Consumed: in.Consumed, Payout: in.Payout, EventID: in.EventID}, nil
			})
		mocks.publisher.EXPECT().
			PublishEvent(gomock.Any(), eventOfType(domain.LedgerEventTradeRecycled)).
			DoAndReturn(func(_ context.Context, event *domain.LedgerEvent) error {
				assert.Equal(t, []string{"😉"}, event.Received)
				assert.Len(t, event.Sent, 3)
				return nil
			})

		result, err := mocks.service.Recycle(context.Background(), alice, input)
		require.NoError(t, err)
		assert.Equal(t, wink, result.Payout)
	})
}

func TestMemberDirectory(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	st := mocks.NewMockStore(ctrl)
	dir := ledger.NewMemberDirectory(st)
	ctx := context.Background()

	nick := "Ali"
	display := "Alice"
	blank := " "

	tests := []struct {
		name     string
		member   *schema.Member
		expected string
	}{
		{name: "unknown member falls back to id", member: nil, expected: "1001"},
		{name: "nickname wins", member: &schema.Member{Nickname: &nick, DisplayName: &display}, expected: "Ali"},
		{name: "display name when no nickname", member: &schema.Member{DisplayName: &display}, expected: "Alice"},
		{name: "blank names are ignored", member: &schema.Member{Nickname: &blank}, expected: "1001"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st.EXPECT().GetMember(gomock.Any(), alice).Return(tt.member, nil)

			name, err := dir.DisplayName(ctx, alice)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, name)
		})
	}

	t.Run("roles", func(t *testing.T) {
		st.EXPECT().GetMember(gomock.Any(), alice).Return(&schema.Member{Roles: datatypes.JSONSlice[string]{"trader"}}, nil)

		roles, err := dir.Roles(ctx, alice)
		require.NoError(t, err)
		assert.Equal(t, []string{"trader"}, roles)
	})
}
