package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-emoji-ledger/internal/catalog"
	"github.com/feral-file/ff-emoji-ledger/internal/domain"
	"github.com/feral-file/ff-emoji-ledger/internal/store/schema"
)

var testCatalog = mustDefaultCatalog()

func mustDefaultCatalog() catalog.Catalog {
	c, err := catalog.Default()
	if err != nil {
		panic(err)
	}
	return c
}

// =============================================================================
// Test Data Builders
// =============================================================================

// emoji returns the catalog emoji at the given ordinal
func emoji(ordinal int) domain.Emoji {
	e, ok := testCatalog.ByOrdinal(ordinal)
	if !ok {
		panic("ordinal out of catalog range")
	}
	return e
}

// emojis builds a multiset with one unit per listed ordinal, so emojis(1, 1, 2) is two of #1 and one of #2
func emojis(ordinals ...int) domain.EmojiCounts {
	counts := make(domain.EmojiCounts)
	for _, o := range ordinals {
		counts.Add(emoji(o), 1)
	}
	return counts
}

func mustOffer(t *testing.T, offerer, target domain.UserID, offered, requested domain.EmojiCounts) domain.TradeOffer {
	t.Helper()
	offer, err := domain.NewTradeOffer(offerer, target, offered, requested)
	require.NoError(t, err)
	return offer
}

func strPtr(s string) *string {
	return &s
}

// groupRanks returns the user's group sort orders in ascending order
func groupRanks(t *testing.T, store Store, userID domain.UserID) []int {
	t.Helper()
	var ranks []int
	err := store.(*pgStore).db.Model(&schema.EmojiGroup{}).
		Where("user_id = ?", dbUserID(userID)).
		Order("sort_order ASC").
		Pluck("sort_order", &ranks).Error
	require.NoError(t, err)
	return ranks
}

func groupNames(t *testing.T, store Store, userID domain.UserID) []string {
	t.Helper()
	listing, err := store.ListGroups(context.Background(), userID)
	require.NoError(t, err)
	names := make([]string, 0, len(listing.Groups))
	for _, g := range listing.Groups {
		names = append(names, g.Name)
	}
	return names
}

func assertInventory(t *testing.T, store Store, userID domain.UserID, expected domain.EmojiCounts) {
	t.Helper()
	inventory, err := store.GetInventory(context.Background(), userID)
	require.NoError(t, err)
	assert.True(t, expected.Equal(inventory), "inventory of %s: expected %s, got %s", userID, expected, inventory)
}

// =============================================================================
// Inventory
// =============================================================================

func testGrantAndInventory(t *testing.T, store Store) {
	ctx := context.Background()
	const user = domain.UserID(101)

	t.Run("empty inventory", func(t *testing.T) {
		inventory, err := store.GetInventory(ctx, domain.UserID(999))
		require.NoError(t, err)
		assert.True(t, inventory.IsEmpty())
	})

	t.Run("grants accumulate", func(t *testing.T) {
		require.NoError(t, store.GrantEmojis(ctx, user, emojis(1, 1)))
		require.NoError(t, store.GrantEmojis(ctx, user, emojis(2)))
		assertInventory(t, store, user, emojis(1, 1, 2))
	})

	t.Run("granting nothing is a no-op", func(t *testing.T) {
		require.NoError(t, store.GrantEmojis(ctx, user, domain.EmojiCounts{}))
		assertInventory(t, store, user, emojis(1, 1, 2))
	})

	t.Run("has emojis", func(t *testing.T) {
		tests := []struct {
			name     string
			counts   domain.EmojiCounts
			expected bool
		}{
			{"exact counts", emojis(1, 1, 2), true},
			{"subset", emojis(1), true},
			{"too many", emojis(1, 1, 1), false},
			{"not owned", emojis(3), false},
			{"empty", domain.EmojiCounts{}, true},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				ok, err := store.HasEmojis(ctx, user, tt.counts)
				require.NoError(t, err)
				assert.Equal(t, tt.expected, ok)
			})
		}
	})
}

func testGroupedInventory(t *testing.T, store Store) {
	ctx := context.Background()
	const user = domain.UserID(102)

	require.NoError(t, store.GrantEmojis(ctx, user, emojis(1, 1, 2, 3, 4)))
	_, err := store.AddToGroup(ctx, user, "first", emojis(1))
	require.NoError(t, err)
	_, err = store.AddToGroup(ctx, user, "second", emojis(2, 3))
	require.NoError(t, err)

	inventory, err := store.GetGroupedInventory(ctx, user)
	require.NoError(t, err)
	require.Len(t, inventory.Groups, 2)
	assert.Equal(t, "first", inventory.Groups[0].Name)
	assert.True(t, emojis(1).Equal(inventory.Groups[0].Emojis))
	assert.Equal(t, "second", inventory.Groups[1].Name)
	assert.True(t, emojis(2, 3).Equal(inventory.Groups[1].Emojis))
	assert.True(t, emojis(1, 4).Equal(inventory.Ungrouped))

	ungrouped, err := store.GetUngrouped(ctx, user)
	require.NoError(t, err)
	assert.True(t, emojis(1, 4).Equal(ungrouped))
}

func testGetEmojiOwners(t *testing.T, store Store) {
	ctx := context.Background()
	const (
		alice = domain.UserID(103)
		bob   = domain.UserID(104)
		carol = domain.UserID(105)
	)

	require.NoError(t, store.GrantEmojis(ctx, alice, emojis(5)))
	require.NoError(t, store.GrantEmojis(ctx, bob, emojis(5, 5)))
	require.NoError(t, store.GrantEmojis(ctx, carol, emojis(5, 5, 5)))
	private, err := store.TogglePrivacy(ctx, carol)
	require.NoError(t, err)
	require.True(t, private)

	t.Run("all owners", func(t *testing.T) {
		owners, err := store.GetEmojiOwners(ctx, emoji(5), false)
		require.NoError(t, err)
		assert.Equal(t, []EmojiOwner{{carol, 3}, {bob, 2}, {alice, 1}}, owners)
	})

	t.Run("public owners only", func(t *testing.T) {
		owners, err := store.GetEmojiOwners(ctx, emoji(5), true)
		require.NoError(t, err)
		assert.Equal(t, []EmojiOwner{{bob, 2}, {alice, 1}}, owners)
	})

	t.Run("nobody", func(t *testing.T) {
		owners, err := store.GetEmojiOwners(ctx, emoji(6), true)
		require.NoError(t, err)
		assert.Empty(t, owners)
	})
}

// =============================================================================
// Groups
// =============================================================================

func testAddToGroup(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("partial add reports what moved", func(t *testing.T) {
		const user = domain.UserID(110)
		require.NoError(t, store.GrantEmojis(ctx, user, emojis(1, 1)))

		result, err := store.AddToGroup(ctx, user, "Fruit", emojis(1, 1, 1, 1, 1, 2))
		require.NoError(t, err)
		assert.Equal(t, "Fruit", result.Name)
		assert.True(t, result.Created)
		assert.True(t, emojis(1, 1).Equal(result.Added))
	})

	t.Run("case-insensitive name merges into the existing group", func(t *testing.T) {
		const user = domain.UserID(111)
		require.NoError(t, store.GrantEmojis(ctx, user, emojis(1, 2)))

		_, err := store.AddToGroup(ctx, user, "fruit", emojis(1))
		require.NoError(t, err)
		result, err := store.AddToGroup(ctx, user, "  FRUIT ", emojis(2))
		require.NoError(t, err)
		assert.Equal(t, "fruit", result.Name)
		assert.False(t, result.Created)
		assert.True(t, emojis(2).Equal(result.Added))
		assert.Equal(t, []string{"fruit"}, groupNames(t, store, user))
	})

	t.Run("units already in the group are not added twice", func(t *testing.T) {
		const user = domain.UserID(112)
		require.NoError(t, store.GrantEmojis(ctx, user, emojis(1)))

		_, err := store.AddToGroup(ctx, user, "g", emojis(1))
		require.NoError(t, err)
		result, err := store.AddToGroup(ctx, user, "g", emojis(1))
		require.NoError(t, err)
		assert.True(t, result.Added.IsEmpty())
		assert.Equal(t, []string{"g"}, groupNames(t, store, user))
	})

	t.Run("a new group that receives nothing does not persist", func(t *testing.T) {
		const user = domain.UserID(113)
		result, err := store.AddToGroup(ctx, user, "empty", emojis(1))
		require.NoError(t, err)
		assert.True(t, result.Added.IsEmpty())
		assert.Empty(t, groupNames(t, store, user))
	})

	t.Run("moving the last unit out of a group deletes it and closes the gap", func(t *testing.T) {
		const user = domain.UserID(114)
		require.NoError(t, store.GrantEmojis(ctx, user, emojis(1, 2, 3)))
		for i, name := range []string{"a", "b", "c"} {
			_, err := store.AddToGroup(ctx, user, name, emojis(i+1))
			require.NoError(t, err)
		}

		result, err := store.AddToGroup(ctx, user, "c", emojis(2))
		require.NoError(t, err)
		assert.True(t, emojis(2).Equal(result.Added))
		assert.Equal(t, []string{"a", "c"}, groupNames(t, store, user))
		assert.Equal(t, []int{0, 1}, groupRanks(t, store, user))
	})

	t.Run("ungrouped units are taken before grouped ones", func(t *testing.T) {
		const user = domain.UserID(115)
		require.NoError(t, store.GrantEmojis(ctx, user, emojis(1, 1)))
		_, err := store.AddToGroup(ctx, user, "keep", emojis(1))
		require.NoError(t, err)

		_, err = store.AddToGroup(ctx, user, "other", emojis(1))
		require.NoError(t, err)
		assert.Equal(t, []string{"keep", "other"}, groupNames(t, store, user))
	})

	t.Run("invalid names", func(t *testing.T) {
		tests := []struct {
			name  string
			group string
		}{
			{"blank", "   "},
			{"too long", "abcdefghijklmnopqrstuvwxyzabcdefghijklmnopqrstuvwxyz"},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := store.AddToGroup(ctx, domain.UserID(116), tt.group, emojis(1))
				assert.ErrorIs(t, err, domain.ErrInvalidGroupName)
			})
		}
	})
}

func testRemoveFromGroup(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("round trip deletes the group", func(t *testing.T) {
		const user = domain.UserID(120)
		require.NoError(t, store.GrantEmojis(ctx, user, emojis(1, 1, 2)))

		added, err := store.AddToGroup(ctx, user, "G", emojis(1, 1, 2))
		require.NoError(t, err)
		require.True(t, emojis(1, 1, 2).Equal(added.Added))

		removed, err := store.RemoveFromGroup(ctx, user, emojis(1, 1, 2), strPtr("G"))
		require.NoError(t, err)
		assert.True(t, emojis(1, 1, 2).Equal(removed))
		assert.Empty(t, groupNames(t, store, user))
		assertInventory(t, store, user, emojis(1, 1, 2))
	})

	t.Run("named group only", func(t *testing.T) {
		const user = domain.UserID(121)
		require.NoError(t, store.GrantEmojis(ctx, user, emojis(1, 1)))
		_, err := store.AddToGroup(ctx, user, "a", emojis(1))
		require.NoError(t, err)
		_, err = store.AddToGroup(ctx, user, "b", emojis(1))
		require.NoError(t, err)

		removed, err := store.RemoveFromGroup(ctx, user, emojis(1, 1), strPtr("b"))
		require.NoError(t, err)
		assert.True(t, emojis(1).Equal(removed))
		assert.Equal(t, []string{"a"}, groupNames(t, store, user))
	})

	t.Run("without a name the least prioritized group goes first", func(t *testing.T) {
		const user = domain.UserID(122)
		require.NoError(t, store.GrantEmojis(ctx, user, emojis(1, 1)))
		_, err := store.AddToGroup(ctx, user, "top", emojis(1))
		require.NoError(t, err)
		_, err = store.AddToGroup(ctx, user, "bottom", emojis(1))
		require.NoError(t, err)

		removed, err := store.RemoveFromGroup(ctx, user, emojis(1), nil)
		require.NoError(t, err)
		assert.True(t, emojis(1).Equal(removed))
		assert.Equal(t, []string{"top"}, groupNames(t, store, user))
	})

	t.Run("ungrouped units are not reported as removed", func(t *testing.T) {
		const user = domain.UserID(123)
		require.NoError(t, store.GrantEmojis(ctx, user, emojis(1)))

		removed, err := store.RemoveFromGroup(ctx, user, emojis(1), nil)
		require.NoError(t, err)
		assert.True(t, removed.IsEmpty())
	})

	t.Run("missing group", func(t *testing.T) {
		_, err := store.RemoveFromGroup(ctx, domain.UserID(124), emojis(1), strPtr("nope"))
		assert.ErrorIs(t, err, domain.ErrNoSuchGroup)
	})
}

func testRenameGroup(t *testing.T, store Store) {
	ctx := context.Background()
	const user = domain.UserID(130)

	require.NoError(t, store.GrantEmojis(ctx, user, emojis(1, 2)))
	_, err := store.AddToGroup(ctx, user, "Alpha", emojis(1))
	require.NoError(t, err)
	_, err = store.AddToGroup(ctx, user, "Beta", emojis(2))
	require.NoError(t, err)

	t.Run("rename returns the previous name", func(t *testing.T) {
		previous, err := store.RenameGroup(ctx, user, "alpha", "Gamma")
		require.NoError(t, err)
		assert.Equal(t, "Alpha", previous)
		assert.Equal(t, []string{"Gamma", "Beta"}, groupNames(t, store, user))
	})

	t.Run("case variant of the same group", func(t *testing.T) {
		previous, err := store.RenameGroup(ctx, user, "gamma", "GAMMA")
		require.NoError(t, err)
		assert.Equal(t, "Gamma", previous)
		assert.Equal(t, []string{"GAMMA", "Beta"}, groupNames(t, store, user))
	})

	t.Run("name taken by another group", func(t *testing.T) {
		_, err := store.RenameGroup(ctx, user, "GAMMA", "beta")
		var taken *domain.NameTakenError
		require.True(t, errors.As(err, &taken))
		assert.Equal(t, "Beta", taken.Name)
	})

	t.Run("missing group", func(t *testing.T) {
		_, err := store.RenameGroup(ctx, user, "Delta", "Epsilon")
		assert.ErrorIs(t, err, domain.ErrNoSuchGroup)
	})

	t.Run("invalid new name", func(t *testing.T) {
		_, err := store.RenameGroup(ctx, user, "Beta", "")
		assert.ErrorIs(t, err, domain.ErrInvalidGroupName)
	})
}

func testListGroupsAndContents(t *testing.T, store Store) {
	ctx := context.Background()
	const user = domain.UserID(131)

	require.NoError(t, store.GrantEmojis(ctx, user, emojis(1, 1, 2, 3)))
	_, err := store.AddToGroup(ctx, user, "pair", emojis(1, 1))
	require.NoError(t, err)

	listing, err := store.ListGroups(ctx, user)
	require.NoError(t, err)
	assert.Equal(t, []domain.GroupSummary{{Name: "pair", Count: 2}}, listing.Groups)
	assert.Equal(t, 2, listing.UngroupedCount)

	contents, err := store.GetGroupContents(ctx, user, "PAIR")
	require.NoError(t, err)
	assert.Equal(t, "pair", contents.Name)
	assert.True(t, emojis(1, 1).Equal(contents.Emojis))

	_, err = store.GetGroupContents(ctx, user, "missing")
	assert.ErrorIs(t, err, domain.ErrNoSuchGroup)
}

func testRepositionGroup(t *testing.T, store Store) {
	ctx := context.Background()

	setup := func(t *testing.T, user domain.UserID) {
		require.NoError(t, store.GrantEmojis(ctx, user, emojis(1, 2, 3, 4)))
		for i, name := range []string{"A", "B", "C", "D"} {
			_, err := store.AddToGroup(ctx, user, name, emojis(i+1))
			require.NoError(t, err)
		}
	}

	tests := []struct {
		name       string
		group      string
		position   int
		kind       domain.RepositionKind
		neighbours [2]string
		order      []string
	}{
		{"move between", "A", 2, domain.MovedBetween, [2]string{"C", "D"}, []string{"B", "C", "A", "D"}},
		{"move up between", "D", 1, domain.MovedBetween, [2]string{"A", "B"}, []string{"A", "D", "B", "C"}},
		{"move to front", "c", 0, domain.MovedToFront, [2]string{}, []string{"C", "A", "B", "D"}},
		{"move to back", "B", 3, domain.MovedToBack, [2]string{}, []string{"A", "C", "D", "B"}},
		{"clamped to back", "A", 99, domain.MovedToBack, [2]string{}, []string{"B", "C", "D", "A"}},
		{"clamped to front", "D", -5, domain.MovedToFront, [2]string{}, []string{"D", "A", "B", "C"}},
		{"did not move", "B", 1, domain.DidNotMove, [2]string{}, []string{"A", "B", "C", "D"}},
		{"already at the end", "D", 10, domain.DidNotMove, [2]string{}, []string{"A", "B", "C", "D"}},
	}

	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user := domain.UserID(140 + i)
			setup(t, user)

			result, err := store.RepositionGroup(ctx, user, tt.group, tt.position)
			require.NoError(t, err)
			assert.Equal(t, tt.kind, result.Kind)
			assert.Equal(t, tt.neighbours, result.Neighbours)
			assert.Equal(t, tt.position, result.RequestedPosition)
			assert.Equal(t, 4, result.GroupCount)
			assert.Equal(t, tt.order, groupNames(t, store, user))
			assert.Equal(t, []int{0, 1, 2, 3}, groupRanks(t, store, user))
		})
	}

	t.Run("missing group", func(t *testing.T) {
		_, err := store.RepositionGroup(ctx, domain.UserID(160), "nope", 0)
		assert.ErrorIs(t, err, domain.ErrNoSuchGroup)
	})
}

func testPruneEmptyGroups(t *testing.T, store Store) {
	ctx := context.Background()
	const user = domain.UserID(161)

	require.NoError(t, store.GrantEmojis(ctx, user, emojis(1, 2)))
	_, err := store.AddToGroup(ctx, user, "a", emojis(1))
	require.NoError(t, err)
	_, err = store.AddToGroup(ctx, user, "c", emojis(2))
	require.NoError(t, err)

	// An empty group left behind by an earlier bug
	db := store.(*pgStore).db
	require.NoError(t, db.Exec("UPDATE emoji_groups SET sort_order = 2 WHERE user_id = ? AND name = 'c'", dbUserID(user)).Error)
	require.NoError(t, db.Create(&schema.EmojiGroup{UserID: dbUserID(user), Name: "b", SortOrder: 1}).Error)

	users, err := store.ListUsersWithGroups(ctx, domain.UserID(user-1), 10)
	require.NoError(t, err)
	assert.Contains(t, users, user)

	pruned, err := store.PruneEmptyGroups(ctx, user)
	require.NoError(t, err)
	assert.Equal(t, 1, pruned)
	assert.Equal(t, []string{"a", "c"}, groupNames(t, store, user))
	assert.Equal(t, []int{0, 1}, groupRanks(t, store, user))

	pruned, err = store.PruneEmptyGroups(ctx, user)
	require.NoError(t, err)
	assert.Equal(t, 0, pruned)
}

// =============================================================================
// Trade offers
// =============================================================================

func testTradeOffers(t *testing.T, store Store) {
	ctx := context.Background()
	const (
		alice = domain.UserID(201)
		bob   = domain.UserID(202)
	)
	require.NoError(t, store.GrantEmojis(ctx, alice, emojis(1, 1)))

	offer := mustOffer(t, alice, bob, emojis(1, 1), emojis(2))

	t.Run("create and get", func(t *testing.T) {
		require.NoError(t, store.CreateTradeOffer(ctx, offer))

		stored, err := store.GetTradeOffer(ctx, alice, bob)
		require.NoError(t, err)
		require.NotNil(t, stored)
		assert.True(t, offer.Equal(*stored))
		assert.False(t, stored.CreatedAt.IsZero())
	})

	t.Run("at most one offer per pair", func(t *testing.T) {
		err := store.CreateTradeOffer(ctx, mustOffer(t, alice, bob, emojis(1), emojis(3)))
		assert.ErrorIs(t, err, domain.ErrOfferExists)
	})

	t.Run("offerer must own the offered emojis", func(t *testing.T) {
		err := store.CreateTradeOffer(ctx, mustOffer(t, bob, alice, emojis(2), emojis(1)))
		assert.ErrorIs(t, err, domain.ErrOffererLacksEmojis)
	})

	t.Run("outgoing and incoming", func(t *testing.T) {
		offers, err := store.GetUserTradeOffers(ctx, alice)
		require.NoError(t, err)
		require.Len(t, offers.Outgoing, 1)
		assert.Empty(t, offers.Incoming)
		assert.True(t, offer.Equal(offers.Outgoing[0]))

		offers, err = store.GetUserTradeOffers(ctx, bob)
		require.NoError(t, err)
		assert.Empty(t, offers.Outgoing)
		require.Len(t, offers.Incoming, 1)
		assert.True(t, offer.Equal(offers.Incoming[0]))
	})

	t.Run("list in ID order", func(t *testing.T) {
		records, err := store.ListTradeOffers(ctx, 0, 100)
		require.NoError(t, err)
		require.NotEmpty(t, records)

		last := records[len(records)-1]
		assert.True(t, offer.Equal(last.Offer))

		after, err := store.ListTradeOffers(ctx, last.ID, 100)
		require.NoError(t, err)
		assert.Empty(t, after)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, store.DeleteTradeOffer(ctx, alice, bob))

		stored, err := store.GetTradeOffer(ctx, alice, bob)
		require.NoError(t, err)
		assert.Nil(t, stored)

		assert.ErrorIs(t, store.DeleteTradeOffer(ctx, alice, bob), domain.ErrNoSuchOffer)
	})
}

func testSettleTradeOffer(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("settlement swaps emojis and clears groups", func(t *testing.T) {
		const (
			alice = domain.UserID(210)
			bob   = domain.UserID(211)
		)
		require.NoError(t, store.GrantEmojis(ctx, alice, emojis(1, 1, 4)))
		require.NoError(t, store.GrantEmojis(ctx, bob, emojis(2, 3)))
		_, err := store.AddToGroup(ctx, alice, "mine", emojis(1, 1))
		require.NoError(t, err)
		_, err = store.AddToGroup(ctx, bob, "fav", emojis(2))
		require.NoError(t, err)
		_, err = store.AddToGroup(ctx, bob, "keep", emojis(3))
		require.NoError(t, err)

		offer := mustOffer(t, alice, bob, emojis(1, 1), emojis(2))
		require.NoError(t, store.CreateTradeOffer(ctx, offer))

		result, err := store.SettleTradeOffer(ctx, offer, "01JTESTSETTLE0000000000000")
		require.NoError(t, err)
		assert.True(t, offer.Equal(result.Offer))
		assert.Equal(t, "01JTESTSETTLE0000000000000", result.EventID)
		assert.Empty(t, result.Invalidated)

		assertInventory(t, store, alice, emojis(2, 4))
		assertInventory(t, store, bob, emojis(1, 1, 3))

		// Moved units arrive ungrouped and emptied groups are gone
		assert.Empty(t, groupNames(t, store, alice))
		assert.Equal(t, []string{"keep"}, groupNames(t, store, bob))
		assert.Equal(t, []int{0}, groupRanks(t, store, bob))
		ungrouped, err := store.GetUngrouped(ctx, bob)
		require.NoError(t, err)
		assert.True(t, emojis(1, 1).Equal(ungrouped))

		stored, err := store.GetTradeOffer(ctx, alice, bob)
		require.NoError(t, err)
		assert.Nil(t, stored)

		log, err := store.GetTradeLog(ctx, bob, 10)
		require.NoError(t, err)
		require.Len(t, log, 1)
		assert.Equal(t, alice, log[0].Sender)
		assert.Equal(t, domain.UserCounterparty(bob), log[0].Recipient)
		assert.True(t, emojis(1, 1).Equal(log[0].Sent))
		assert.True(t, emojis(2).Equal(log[0].Received))
	})

	t.Run("offer changed during confirmation", func(t *testing.T) {
		const (
			alice = domain.UserID(212)
			bob   = domain.UserID(213)
		)
		require.NoError(t, store.GrantEmojis(ctx, alice, emojis(1, 1)))
		require.NoError(t, store.GrantEmojis(ctx, bob, emojis(2)))

		shown := mustOffer(t, alice, bob, emojis(1), emojis(2))
		require.NoError(t, store.CreateTradeOffer(ctx, shown))
		require.NoError(t, store.DeleteTradeOffer(ctx, alice, bob))
		require.NoError(t, store.CreateTradeOffer(ctx, mustOffer(t, alice, bob, emojis(1, 1), emojis(2))))

		_, err := store.SettleTradeOffer(ctx, shown, "changed")
		assert.ErrorIs(t, err, domain.ErrOfferChanged)
		assertInventory(t, store, alice, emojis(1, 1))
		assertInventory(t, store, bob, emojis(2))
	})

	t.Run("withdrawn offer", func(t *testing.T) {
		offer := mustOffer(t, domain.UserID(214), domain.UserID(215), emojis(1), emojis(2))
		_, err := store.SettleTradeOffer(ctx, offer, "missing")
		assert.ErrorIs(t, err, domain.ErrNoSuchOffer)
	})

	t.Run("offerer lost the offered emojis", func(t *testing.T) {
		const (
			alice = domain.UserID(216)
			bob   = domain.UserID(217)
		)
		require.NoError(t, store.GrantEmojis(ctx, alice, emojis(1)))
		require.NoError(t, store.GrantEmojis(ctx, bob, emojis(2)))

		offer := mustOffer(t, alice, bob, emojis(1), emojis(2))
		require.NoError(t, store.CreateTradeOffer(ctx, offer))
		require.NoError(t, store.(*pgStore).db.Where("user_id = ?", dbUserID(alice)).Delete(&schema.EmojiInventory{}).Error)

		_, err := store.SettleTradeOffer(ctx, offer, "lost")
		assert.ErrorIs(t, err, domain.ErrOffererLacksEmojis)
		assertInventory(t, store, bob, emojis(2))
	})
}

// testSettlementAfterCompetingTrade covers an A-B offer broken by a B-C trade settled first
func testSettlementAfterCompetingTrade(t *testing.T, store Store) {
	ctx := context.Background()
	const (
		a = domain.UserID(220)
		b = domain.UserID(221)
		c = domain.UserID(222)
	)
	apple, orange, pear := 1, 2, 3

	require.NoError(t, store.GrantEmojis(ctx, a, emojis(apple)))
	require.NoError(t, store.GrantEmojis(ctx, b, emojis(orange, orange)))
	require.NoError(t, store.GrantEmojis(ctx, c, emojis(pear)))

	aToB := mustOffer(t, a, b, emojis(apple), emojis(orange, orange))
	require.NoError(t, store.CreateTradeOffer(ctx, aToB))
	bToC := mustOffer(t, b, c, emojis(orange), emojis(pear))
	require.NoError(t, store.CreateTradeOffer(ctx, bToC))

	_, err := store.SettleTradeOffer(ctx, bToC, "b-c")
	require.NoError(t, err)

	_, err = store.SettleTradeOffer(ctx, aToB, "a-b")
	assert.ErrorIs(t, err, domain.ErrTargetLacksEmojis)

	assertInventory(t, store, a, emojis(apple))
	assertInventory(t, store, b, emojis(orange, pear))
	assertInventory(t, store, c, emojis(orange))

	// The offer is still pending since only the target side changed
	stored, err := store.GetTradeOffer(ctx, a, b)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.True(t, aToB.Equal(*stored))
}

func testInvalidationSweep(t *testing.T, store Store) {
	ctx := context.Background()
	const (
		a = domain.UserID(230)
		b = domain.UserID(231)
		c = domain.UserID(232)
	)
	require.NoError(t, store.GrantEmojis(ctx, a, emojis(1)))
	require.NoError(t, store.GrantEmojis(ctx, b, emojis(2)))
	require.NoError(t, store.GrantEmojis(ctx, c, emojis(3)))

	bToA := mustOffer(t, b, a, emojis(2), emojis(1))
	bToC := mustOffer(t, b, c, emojis(2), emojis(3))
	cToB := mustOffer(t, c, b, emojis(3), emojis(2))
	for _, o := range []domain.TradeOffer{bToA, bToC, cToB} {
		require.NoError(t, store.CreateTradeOffer(ctx, o))
	}

	result, err := store.SettleTradeOffer(ctx, bToA, "sweep")
	require.NoError(t, err)
	require.Len(t, result.Invalidated, 1)
	assert.True(t, bToC.Equal(result.Invalidated[0]))

	stored, err := store.GetTradeOffer(ctx, b, c)
	require.NoError(t, err)
	assert.Nil(t, stored)

	// Offers where the settled user is only the target are left alone
	stored, err = store.GetTradeOffer(ctx, c, b)
	require.NoError(t, err)
	assert.NotNil(t, stored)
}

func testInvalidateTradeOfferIfUnfulfillable(t *testing.T, store Store) {
	ctx := context.Background()
	const (
		a = domain.UserID(240)
		b = domain.UserID(241)
	)
	require.NoError(t, store.GrantEmojis(ctx, a, emojis(1)))
	offer := mustOffer(t, a, b, emojis(1), emojis(2))
	require.NoError(t, store.CreateTradeOffer(ctx, offer))

	invalidated, err := store.InvalidateTradeOfferIfUnfulfillable(ctx, a, b)
	require.NoError(t, err)
	assert.False(t, invalidated)

	// Remove the unit behind the ledger's back
	require.NoError(t, store.(*pgStore).db.Where("user_id = ?", dbUserID(a)).Delete(&schema.EmojiInventory{}).Error)

	invalidated, err = store.InvalidateTradeOfferIfUnfulfillable(ctx, a, b)
	require.NoError(t, err)
	assert.True(t, invalidated)

	invalidated, err = store.InvalidateTradeOfferIfUnfulfillable(ctx, a, b)
	require.NoError(t, err)
	assert.False(t, invalidated)
}

// =============================================================================
// Recycling
// =============================================================================

func testRecycle(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("arity is checked first", func(t *testing.T) {
		_, err := store.Recycle(ctx, RecycleInput{User: domain.UserID(250), Consumed: emojis(1, 2), Payout: emoji(3)})
		assert.ErrorIs(t, err, domain.ErrRecycleArity)
	})

	t.Run("must own the emojis", func(t *testing.T) {
		const user = domain.UserID(251)
		require.NoError(t, store.GrantEmojis(ctx, user, emojis(1, 1)))
		_, err := store.Recycle(ctx, RecycleInput{User: user, Consumed: emojis(1, 1, 1), Payout: emoji(3), EventID: "r-251"})
		assert.ErrorIs(t, err, domain.ErrInsufficientEmojis)
		assertInventory(t, store, user, emojis(1, 1))
	})

	t.Run("consumes least prioritized units and grants the payout", func(t *testing.T) {
		const user = domain.UserID(252)
		require.NoError(t, store.GrantEmojis(ctx, user, emojis(1, 1, 1, 1, 2)))
		_, err := store.AddToGroup(ctx, user, "top", emojis(1))
		require.NoError(t, err)
		_, err = store.AddToGroup(ctx, user, "low", emojis(1, 2))
		require.NoError(t, err)

		result, err := store.Recycle(ctx, RecycleInput{User: user, Consumed: emojis(1, 1, 1), Payout: emoji(9), EventID: "r-252"})
		require.NoError(t, err)
		assert.Equal(t, emoji(9), result.Payout)
		assert.Equal(t, "r-252", result.EventID)

		assertInventory(t, store, user, emojis(1, 2, 9))
		grouped, err := store.GetGroupedInventory(ctx, user)
		require.NoError(t, err)
		require.Len(t, grouped.Groups, 2)
		assert.Equal(t, "top", grouped.Groups[0].Name)
		assert.True(t, emojis(1).Equal(grouped.Groups[0].Emojis))
		assert.Equal(t, "low", grouped.Groups[1].Name)
		assert.True(t, emojis(2).Equal(grouped.Groups[1].Emojis))
		assert.True(t, emojis(9).Equal(grouped.Ungrouped))

		log, err := store.GetTradeLog(ctx, user, 10)
		require.NoError(t, err)
		require.Len(t, log, 1)
		assert.True(t, log[0].Recipient.IsSystem())
		assert.True(t, emojis(1, 1, 1).Equal(log[0].Sent))
		assert.True(t, emojis(9).Equal(log[0].Received))
	})

	t.Run("invalidates the user's own unfulfillable offers", func(t *testing.T) {
		const (
			user  = domain.UserID(253)
			other = domain.UserID(254)
		)
		require.NoError(t, store.GrantEmojis(ctx, user, emojis(1, 2, 3)))
		require.NoError(t, store.GrantEmojis(ctx, other, emojis(4)))
		outgoing := mustOffer(t, user, other, emojis(1), emojis(4))
		incoming := mustOffer(t, other, user, emojis(4), emojis(2))
		require.NoError(t, store.CreateTradeOffer(ctx, outgoing))
		require.NoError(t, store.CreateTradeOffer(ctx, incoming))

		result, err := store.Recycle(ctx, RecycleInput{User: user, Consumed: emojis(1, 2, 3), Payout: emoji(5), EventID: "r-253"})
		require.NoError(t, err)
		require.Len(t, result.Invalidated, 1)
		assert.True(t, outgoing.Equal(result.Invalidated[0]))

		stored, err := store.GetTradeOffer(ctx, other, user)
		require.NoError(t, err)
		assert.NotNil(t, stored)
	})
}

// testConservation checks that trades are zero-sum and recycling is net -2
func testConservation(t *testing.T, store Store) {
	ctx := context.Background()
	users := []domain.UserID{260, 261, 262}

	total := func() int {
		sum := 0
		for _, u := range users {
			inventory, err := store.GetInventory(ctx, u)
			require.NoError(t, err)
			for e, n := range inventory {
				require.GreaterOrEqual(t, n, 0, "negative count of %s for %s", e, u)
			}
			sum += inventory.Total()
		}
		return sum
	}

	require.NoError(t, store.GrantEmojis(ctx, users[0], emojis(1, 2, 3)))
	require.NoError(t, store.GrantEmojis(ctx, users[1], emojis(4, 4)))
	require.NoError(t, store.GrantEmojis(ctx, users[2], emojis(5)))
	assert.Equal(t, 6, total())

	offer := mustOffer(t, users[0], users[1], emojis(1, 2), emojis(4))
	require.NoError(t, store.CreateTradeOffer(ctx, offer))
	_, err := store.SettleTradeOffer(ctx, offer, "c-1")
	require.NoError(t, err)
	assert.Equal(t, 6, total())

	_, err = store.Recycle(ctx, RecycleInput{User: users[1], Consumed: emojis(1, 2, 4), Payout: emoji(7), EventID: "c-2"})
	require.NoError(t, err)
	assert.Equal(t, 4, total())

	require.NoError(t, store.GrantEmojis(ctx, users[2], emojis(8)))
	assert.Equal(t, 5, total())
}

// =============================================================================
// Settings, activity and members
// =============================================================================

func testPrivacy(t *testing.T, store Store) {
	ctx := context.Background()
	const user = domain.UserID(270)

	private, err := store.IsPrivate(ctx, user)
	require.NoError(t, err)
	assert.False(t, private)

	private, err = store.TogglePrivacy(ctx, user)
	require.NoError(t, err)
	assert.True(t, private)

	private, err = store.IsPrivate(ctx, user)
	require.NoError(t, err)
	assert.True(t, private)

	private, err = store.TogglePrivacy(ctx, user)
	require.NoError(t, err)
	assert.False(t, private)
}

func testTouchLastSeen(t *testing.T, store Store) {
	ctx := context.Background()
	const user = domain.UserID(271)
	first := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	second := first.Add(48 * time.Hour)

	previous, err := store.TouchLastSeen(ctx, user, first)
	require.NoError(t, err)
	assert.Nil(t, previous)

	previous, err = store.TouchLastSeen(ctx, user, second)
	require.NoError(t, err)
	require.NotNil(t, previous)
	assert.True(t, first.Equal(*previous))
}

func testMembers(t *testing.T, store Store) {
	ctx := context.Background()
	const user = domain.UserID(272)

	member, err := store.GetMember(ctx, user)
	require.NoError(t, err)
	assert.Nil(t, member)

	require.NoError(t, store.UpsertMember(ctx, UpsertMemberInput{
		UserID:      user,
		DisplayName: strPtr("Display"),
		Roles:       []string{"100"},
	}))
	member, err = store.GetMember(ctx, user)
	require.NoError(t, err)
	require.NotNil(t, member)
	assert.Equal(t, "Display", *member.DisplayName)
	assert.Nil(t, member.Nickname)
	assert.Equal(t, []string{"100"}, []string(member.Roles))

	require.NoError(t, store.UpsertMember(ctx, UpsertMemberInput{
		UserID:      user,
		DisplayName: strPtr("Display"),
		Nickname:    strPtr("Nick"),
	}))
	member, err = store.GetMember(ctx, user)
	require.NoError(t, err)
	assert.Equal(t, "Nick", *member.Nickname)
	assert.Empty(t, member.Roles)
}

// RunStoreTests runs all store tests against the given implementation
func RunStoreTests(t *testing.T, initDB func(t *testing.T) Store, cleanupDB func(t *testing.T)) {
	tests := []struct {
		name string
		fn   func(*testing.T, Store)
	}{
		{"GrantAndInventory", testGrantAndInventory},
		{"GroupedInventory", testGroupedInventory},
		{"GetEmojiOwners", testGetEmojiOwners},
		{"AddToGroup", testAddToGroup},
		{"RemoveFromGroup", testRemoveFromGroup},
		{"RenameGroup", testRenameGroup},
		{"ListGroupsAndContents", testListGroupsAndContents},
		{"RepositionGroup", testRepositionGroup},
		{"PruneEmptyGroups", testPruneEmptyGroups},
		{"TradeOffers", testTradeOffers},
		{"SettleTradeOffer", testSettleTradeOffer},
		{"SettlementAfterCompetingTrade", testSettlementAfterCompetingTrade},
		{"InvalidationSweep", testInvalidationSweep},
		{"InvalidateTradeOfferIfUnfulfillable", testInvalidateTradeOfferIfUnfulfillable},
		{"Recycle", testRecycle},
		{"Conservation", testConservation},
		{"Privacy", testPrivacy},
		{"TouchLastSeen", testTouchLastSeen},
		{"Members", testMembers},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := initDB(t)
			defer cleanupDB(t)
			tt.fn(t, store)
		})
	}
}
