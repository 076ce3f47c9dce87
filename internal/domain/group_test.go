package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeGroupName(t *testing.T) {
	name, err := NormalizeGroupName("  Favourites ")
	require.NoError(t, err)
	assert.Equal(t, "Favourites", name)

	_, err = NormalizeGroupName("   ")
	assert.ErrorIs(t, err, ErrInvalidGroupName)

	_, err = NormalizeGroupName(strings.Repeat("a", MaxGroupNameLength+1))
	assert.ErrorIs(t, err, ErrInvalidGroupName)

	_, err = NormalizeGroupName(strings.Repeat("😀", MaxGroupNameLength))
	assert.NoError(t, err)
}

func TestClassifyReposition(t *testing.T) {
	tests := []struct {
		name       string
		oldPos     int
		newPos     int
		kind       RepositionKind
		neighbours [2]string
	}{
		{name: "same position", oldPos: 1, newPos: 1, kind: DidNotMove},
		{name: "to front", oldPos: 2, newPos: 0, kind: MovedToFront},
		{name: "to back", oldPos: 0, newPos: 3, kind: MovedToBack},
		{name: "down between", oldPos: 0, newPos: 2, kind: MovedBetween, neighbours: [2]string{"c", "d"}},
		{name: "up between", oldPos: 3, newPos: 1, kind: MovedBetween, neighbours: [2]string{"a", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			order := MoveName([]string{"a", "b", "c", "d"}, tt.oldPos, tt.newPos)
			kind, neighbours := ClassifyReposition(order, tt.oldPos, tt.newPos)
			assert.Equal(t, tt.kind, kind)
			assert.Equal(t, tt.neighbours, neighbours)
		})
	}
}

func TestMoveName(t *testing.T) {
	assert.Equal(t, []string{"b", "c", "a", "d"}, MoveName([]string{"a", "b", "c", "d"}, 0, 2))
	assert.Equal(t, []string{"d", "a", "b", "c"}, MoveName([]string{"a", "b", "c", "d"}, 3, 0))
	assert.Equal(t, []string{"a", "b", "c", "d"}, MoveName([]string{"a", "b", "c", "d"}, 1, 1))
}
