package domain

import (
	"fmt"
	"sort"
	"strings"
)

// EmojiCount is a single multiset entry
type EmojiCount struct {
	Emoji Emoji
	Count int
}

// EmojiCounts is a multiset of emojis. Entries with a non-positive count are never stored.
type EmojiCounts map[Emoji]int

// NewEmojiCounts builds a multiset from a flat list, one entry per unit
func NewEmojiCounts(emojis ...Emoji) EmojiCounts {
	counts := make(EmojiCounts, len(emojis))
	for _, e := range emojis {
		counts.Add(e, 1)
	}
	return counts
}

// Add adds n units of e. Non-positive n is ignored.
func (c EmojiCounts) Add(e Emoji, n int) {
	if n <= 0 {
		return
	}
	c[e] += n
}

// Merge adds every unit of other into c
func (c EmojiCounts) Merge(other EmojiCounts) {
	for e, n := range other {
		c.Add(e, n)
	}
}

// Total returns the number of units, counting duplicates
func (c EmojiCounts) Total() int {
	total := 0
	for _, n := range c {
		total += n
	}
	return total
}

// Distinct returns the number of different emojis
func (c EmojiCounts) Distinct() int {
	return len(c)
}

// IsEmpty reports whether the multiset holds no units
func (c EmojiCounts) IsEmpty() bool {
	return c.Total() == 0
}

// Contains reports whether c holds at least every unit of other
func (c EmojiCounts) Contains(other EmojiCounts) bool {
	for e, n := range other {
		if c[e] < n {
			return false
		}
	}
	return true
}

// Overlap returns the lowest-ordinal emoji present in both multisets
func (c EmojiCounts) Overlap(other EmojiCounts) (Emoji, bool) {
	var found Emoji
	ok := false
	for e, n := range c {
		if n <= 0 || other[e] <= 0 {
			continue
		}
		if !ok || e.Less(found) {
			found = e
			ok = true
		}
	}
	return found, ok
}

// Equal reports whether both multisets hold exactly the same units
func (c EmojiCounts) Equal(other EmojiCounts) bool {
	if len(c) != len(other) {
		return false
	}
	for e, n := range c {
		if other[e] != n {
			return false
		}
	}
	return true
}

// Clone returns a copy of the multiset
func (c EmojiCounts) Clone() EmojiCounts {
	clone := make(EmojiCounts, len(c))
	for e, n := range c {
		clone[e] = n
	}
	return clone
}

// Sorted returns the entries ordered by catalog ordinal
func (c EmojiCounts) Sorted() []EmojiCount {
	entries := make([]EmojiCount, 0, len(c))
	for e, n := range c {
		if n > 0 {
			entries = append(entries, EmojiCount{Emoji: e, Count: n})
		}
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Emoji.Less(entries[j].Emoji)
	})
	return entries
}

// Flatten returns one emoji per unit, in catalog order
func (c EmojiCounts) Flatten() []Emoji {
	flat := make([]Emoji, 0, c.Total())
	for _, entry := range c.Sorted() {
		for range entry.Count {
			flat = append(flat, entry.Emoji)
		}
	}
	return flat
}

// String renders the multiset as glyphs with an "xN" suffix for duplicates
func (c EmojiCounts) String() string {
	var b strings.Builder
	for _, entry := range c.Sorted() {
		b.WriteString(entry.Emoji.String())
		if entry.Count > 1 {
			fmt.Fprintf(&b, "x%d", entry.Count)
		} else if entry.Emoji.IsRegionalIndicator() {
			b.WriteString(ZWNJ)
		}
	}
	return b.String()
}
