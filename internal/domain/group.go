package domain

import (
	"strings"
	"unicode/utf8"
)

// MaxGroupNameLength is the longest group name accepted, in characters
const MaxGroupNameLength = 50

// NormalizeGroupName trims the name and validates its length
func NormalizeGroupName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" || utf8.RuneCountInString(name) > MaxGroupNameLength {
		return "", ErrInvalidGroupName
	}
	return name, nil
}

// GroupSummary is a group name with its unit count
type GroupSummary struct {
	Name  string
	Count int
}

// GroupContents is a group name with the emojis in it
type GroupContents struct {
	Name   string
	Emojis EmojiCounts
}

// GroupedInventory is a user's inventory split by group, groups in rank order
type GroupedInventory struct {
	Groups    []GroupContents
	Ungrouped EmojiCounts
}

// GroupListing is the result of listing a user's groups
type GroupListing struct {
	Groups         []GroupSummary
	UngroupedCount int
}

// RepositionKind describes how a reposition changed the group order
type RepositionKind string

const (
	MovedToFront RepositionKind = "moved_to_front"
	MovedToBack  RepositionKind = "moved_to_back"
	MovedBetween RepositionKind = "moved_between"
	DidNotMove   RepositionKind = "did_not_move"
)

// RepositionResult describes a completed reposition.
// Positions are 0-based; Neighbours is only set for MovedBetween.
type RepositionResult struct {
	Name              string
	Kind              RepositionKind
	Neighbours        [2]string
	OldPosition       int
	RequestedPosition int
	GroupCount        int
}

// ClassifyReposition works out the outcome of moving a group from oldPos to the clamped newPos.
// order is the group order after the move.
func ClassifyReposition(order []string, oldPos, newPos int) (RepositionKind, [2]string) {
	var neighbours [2]string
	switch {
	case oldPos == newPos:
		return DidNotMove, neighbours
	case newPos == 0:
		return MovedToFront, neighbours
	case newPos == len(order)-1:
		return MovedToBack, neighbours
	}
	neighbours[0] = order[newPos-1]
	neighbours[1] = order[newPos+1]
	return MovedBetween, neighbours
}

// MoveName returns a new order with the name at oldPos moved to newPos
func MoveName(order []string, oldPos, newPos int) []string {
	moved := make([]string, 0, len(order))
	name := order[oldPos]
	for i, n := range order {
		if i != oldPos {
			moved = append(moved, n)
		}
	}
	moved = append(moved[:newPos], append([]string{name}, moved[newPos:]...)...)
	return moved
}
