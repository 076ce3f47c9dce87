package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTradeOffer(t *testing.T) {
	tests := []struct {
		name        string
		offerer     UserID
		target      UserID
		offered     EmojiCounts
		requested   EmojiCounts
		expectedErr error
	}{
		{
			name:      "valid offer",
			offerer:   1,
			target:    2,
			offered:   NewEmojiCounts(grin),
			requested: NewEmojiCounts(smile, smile),
		},
		{
			name:        "self trade",
			offerer:     1,
			target:      1,
			offered:     NewEmojiCounts(grin),
			requested:   NewEmojiCounts(smile),
			expectedErr: ErrSelfTrade,
		},
		{
			name:        "self trade is reported before empty sides",
			offerer:     1,
			target:      1,
			offered:     EmojiCounts{},
			requested:   EmojiCounts{},
			expectedErr: ErrSelfTrade,
		},
		{
			name:        "empty offered",
			offerer:     1,
			target:      2,
			offered:     EmojiCounts{},
			requested:   NewEmojiCounts(smile),
			expectedErr: ErrEmptyOffered,
		},
		{
			name:        "empty requested",
			offerer:     1,
			target:      2,
			offered:     NewEmojiCounts(grin),
			requested:   EmojiCounts{},
			expectedErr: ErrEmptyRequested,
		},
		{
			name:        "empty offered is reported before empty requested",
			offerer:     1,
			target:      2,
			offered:     EmojiCounts{},
			requested:   EmojiCounts{},
			expectedErr: ErrEmptyOffered,
		},
		{
			name:        "emoji on both sides",
			offerer:     1,
			target:      2,
			offered:     NewEmojiCounts(grin, smile),
			requested:   NewEmojiCounts(smile),
			expectedErr: ErrOverlappingOffer,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			offer, err := NewTradeOffer(tt.offerer, tt.target, tt.offered, tt.requested)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.offerer, offer.Offerer)
			assert.Equal(t, tt.target, offer.Target)
			assert.True(t, offer.Offered.Equal(tt.offered))
			assert.True(t, offer.Requested.Equal(tt.requested))
		})
	}
}

func TestTradeOffer_SignedContentsRoundTrip(t *testing.T) {
	offer, err := NewTradeOffer(1, 2, NewEmojiCounts(grin, grin), NewEmojiCounts(smile))
	require.NoError(t, err)

	signed := offer.SignedContents()
	assert.Equal(t, -2, signed[grin])
	assert.Equal(t, 1, signed[smile])

	offered, requested := SplitSignedContents(signed)
	assert.True(t, offered.Equal(offer.Offered))
	assert.True(t, requested.Equal(offer.Requested))
}

func TestTradeOffer_Equal(t *testing.T) {
	a, err := NewTradeOffer(1, 2, NewEmojiCounts(grin), NewEmojiCounts(smile))
	require.NoError(t, err)
	b, err := NewTradeOffer(1, 2, NewEmojiCounts(grin), NewEmojiCounts(smile))
	require.NoError(t, err)
	c, err := NewTradeOffer(1, 2, NewEmojiCounts(grin), NewEmojiCounts(smile, smile))
	require.NoError(t, err)

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
}

func TestCounterparty(t *testing.T) {
	user := UserCounterparty(42)
	id, ok := user.User()
	assert.True(t, ok)
	assert.Equal(t, UserID(42), id)
	assert.False(t, user.IsSystem())
	assert.Equal(t, "42", user.String())

	_, ok = SystemCounterparty.User()
	assert.False(t, ok)
	assert.True(t, SystemCounterparty.IsSystem())
}

func TestParseUserID(t *testing.T) {
	id, err := ParseUserID("123456789012345678")
	require.NoError(t, err)
	assert.Equal(t, UserID(123456789012345678), id)

	_, err = ParseUserID("0")
	assert.Error(t, err)
	_, err = ParseUserID("abc")
	assert.Error(t, err)
}
