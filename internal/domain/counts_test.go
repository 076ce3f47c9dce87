package domain

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

var (
	grin    = NewEmoji("😀", 0)
	smile   = NewEmoji("😃", 1)
	laugh   = NewEmoji("😄", 2)
	letterZ = NewEmoji("🇿", 1580)
	letterY = NewEmoji("🇾", 1581)
)

func TestEmojiCounts_String(t *testing.T) {
	tests := []struct {
		name     string
		counts   EmojiCounts
		expected string
	}{
		{
			name:     "empty",
			counts:   EmojiCounts{},
			expected: "",
		},
		{
			name:     "single units in ordinal order",
			counts:   NewEmojiCounts(laugh, grin),
			expected: "😀😄",
		},
		{
			name:     "duplicates use a multiplier",
			counts:   NewEmojiCounts(smile, smile, smile, grin),
			expected: "😀😃x3",
		},
		{
			name:     "regional indicators are separated",
			counts:   NewEmojiCounts(letterZ, letterY),
			expected: "🇿" + ZWNJ + "🇾" + ZWNJ,
		},
		{
			name:     "regional indicator with multiplier has no separator",
			counts:   NewEmojiCounts(letterZ, letterZ),
			expected: "🇿x2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.counts.String())
		})
	}
}

func TestEmojiCounts_Contains(t *testing.T) {
	inventory := NewEmojiCounts(grin, grin, smile)

	assert.True(t, inventory.Contains(NewEmojiCounts(grin)))
	assert.True(t, inventory.Contains(NewEmojiCounts(grin, grin, smile)))
	assert.True(t, inventory.Contains(EmojiCounts{}))
	assert.False(t, inventory.Contains(NewEmojiCounts(grin, grin, grin)))
	assert.False(t, inventory.Contains(NewEmojiCounts(laugh)))
}

func TestEmojiCounts_Overlap(t *testing.T) {
	a := NewEmojiCounts(grin, laugh)
	b := NewEmojiCounts(smile, laugh)

	e, ok := a.Overlap(b)
	assert.True(t, ok)
	assert.Equal(t, laugh, e)

	_, ok = a.Overlap(NewEmojiCounts(smile))
	assert.False(t, ok)
}

func TestEmojiCounts_AddIgnoresNonPositive(t *testing.T) {
	counts := EmojiCounts{}
	counts.Add(grin, 0)
	counts.Add(smile, -2)

	assert.True(t, counts.IsEmpty())
	assert.Equal(t, 0, counts.Distinct())
}

func TestEmojiCounts_SortedAndFlatten(t *testing.T) {
	counts := NewEmojiCounts(laugh, grin, laugh)

	expected := []EmojiCount{{Emoji: grin, Count: 1}, {Emoji: laugh, Count: 2}}
	if diff := cmp.Diff(expected, counts.Sorted(), cmp.AllowUnexported(Emoji{})); diff != "" {
		t.Errorf("Sorted() mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, []Emoji{grin, laugh, laugh}, counts.Flatten())
	assert.Equal(t, 3, counts.Total())
}

func TestEmojiCounts_Equal(t *testing.T) {
	assert.True(t, NewEmojiCounts(grin, smile).Equal(NewEmojiCounts(smile, grin)))
	assert.False(t, NewEmojiCounts(grin).Equal(NewEmojiCounts(grin, grin)))
	assert.False(t, NewEmojiCounts(grin).Equal(NewEmojiCounts(smile)))
}

func TestEmoji_IsRegionalIndicator(t *testing.T) {
	assert.True(t, letterZ.IsRegionalIndicator())
	assert.False(t, grin.IsRegionalIndicator())
	assert.False(t, NewEmoji("🇺🇸", 1700).IsRegionalIndicator())
}
