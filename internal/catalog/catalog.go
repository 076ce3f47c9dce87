package catalog

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand/v2"
	"os"
	"strconv"
	"strings"
	"unicode"

	"github.com/rivo/uniseg"

	"github.com/feral-file/ff-emoji-ledger/internal/domain"
)

const (
	vs16 = "\ufe0f"

	// maxMultiplier bounds the "xN" suffix accepted by Parse
	maxMultiplier = 10000
)

//go:embed emojis.json
var defaultCatalog []byte

// ErrExhausted is returned when every catalog entry is excluded from a random draw
var ErrExhausted = errors.New("no catalog entries left to draw from")

// Catalog is the immutable, ordered list of tradeable emojis
//
//go:generate mockgen -source=catalog.go -destination=../mocks/catalog.go -package=mocks -mock_names=Catalog=MockCatalog
type Catalog interface {
	// Len returns the number of emojis in the catalog
	Len() int
	// ByOrdinal returns the emoji at the given catalog position
	ByOrdinal(ordinal int) (domain.Emoji, bool)
	// Resolve looks up an emoji by glyph, tolerating a missing or extra variation selector
	Resolve(glyph string) (domain.Emoji, bool)
	// Parse turns free text such as "😀x2 🙂" into a multiset
	Parse(input string) (domain.EmojiCounts, error)
	// Random draws a uniformly random emoji
	Random() domain.Emoji
	// RandomExcluding draws a uniformly random emoji that is not in exclude
	RandomExcluding(exclude domain.EmojiCounts) (domain.Emoji, error)
}

// RandomSource supplies random indexes. It must be safe for concurrent use.
type RandomSource interface {
	IntN(n int) int
}

type globalRand struct{}

func (globalRand) IntN(n int) int {
	return rand.IntN(n)
}

type catalog struct {
	emojis []domain.Emoji
	// byGlyph is keyed by glyph with variation selectors removed
	byGlyph map[string]domain.Emoji
	rnd     RandomSource
}

// Option configures a catalog
type Option func(*catalog)

// WithRandomSource replaces the default random source
func WithRandomSource(rnd RandomSource) Option {
	return func(c *catalog) {
		c.rnd = rnd
	}
}

// Default returns the built-in catalog
func Default(opts ...Option) (Catalog, error) {
	return parseCatalog(defaultCatalog, opts...)
}

// Load loads a catalog from a JSON file holding an array of glyphs.
// An empty path loads the built-in catalog.
func Load(filePath string, opts ...Option) (Catalog, error) {
	if filePath == "" {
		return Default(opts...)
	}

	data, err := os.ReadFile(filePath) //nolint:gosec,G304 // This should be a trusted file
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	return parseCatalog(data, opts...)
}

// New builds a catalog from an ordered list of glyphs
func New(glyphs []string, opts ...Option) (Catalog, error) {
	if len(glyphs) == 0 {
		return nil, errors.New("catalog is empty")
	}

	c := &catalog{
		emojis:  make([]domain.Emoji, 0, len(glyphs)),
		byGlyph: make(map[string]domain.Emoji, len(glyphs)),
		rnd:     globalRand{},
	}
	for _, opt := range opts {
		opt(c)
	}

	for i, glyph := range glyphs {
		if glyph == "" {
			return nil, fmt.Errorf("catalog entry %d is empty", i)
		}
		key := stripVS16(glyph)
		if _, exists := c.byGlyph[key]; exists {
			return nil, fmt.Errorf("duplicate catalog entry %q", glyph)
		}
		emoji := domain.NewEmoji(glyph, i)
		c.emojis = append(c.emojis, emoji)
		c.byGlyph[key] = emoji
	}

	return c, nil
}

func parseCatalog(data []byte, opts ...Option) (Catalog, error) {
	var glyphs []string
	if err := json.Unmarshal(data, &glyphs); err != nil {
		return nil, fmt.Errorf("failed to parse catalog JSON: %w", err)
	}
	return New(glyphs, opts...)
}

func (c *catalog) Len() int {
	return len(c.emojis)
}

func (c *catalog) ByOrdinal(ordinal int) (domain.Emoji, bool) {
	if ordinal < 0 || ordinal >= len(c.emojis) {
		return domain.Emoji{}, false
	}
	return c.emojis[ordinal], true
}

func (c *catalog) Resolve(glyph string) (domain.Emoji, bool) {
	e, ok := c.byGlyph[stripVS16(strings.TrimSpace(glyph))]
	return e, ok
}

func (c *catalog) Parse(input string) (domain.EmojiCounts, error) {
	clusters := splitClusters(input)
	counts := make(domain.EmojiCounts)

	for i := 0; i < len(clusters); {
		emoji, ok := c.Resolve(clusters[i])
		if !ok {
			return nil, &domain.ParseError{Input: clusters[i]}
		}
		i++

		n := 1
		if i < len(clusters) && isMultiplierSign(clusters[i]) {
			j := i + 1
			var digits strings.Builder
			for j < len(clusters) && isDigit(clusters[j]) {
				digits.WriteString(clusters[j])
				j++
			}
			if digits.Len() > 0 {
				parsed, err := strconv.Atoi(digits.String())
				if err != nil || parsed <= 0 || parsed > maxMultiplier {
					return nil, &domain.ParseError{Input: clusters[i] + digits.String()}
				}
				n = parsed
				i = j
			}
		}

		counts.Add(emoji, n)
	}

	return counts, nil
}

func (c *catalog) Random() domain.Emoji {
	return c.emojis[c.rnd.IntN(len(c.emojis))]
}

func (c *catalog) RandomExcluding(exclude domain.EmojiCounts) (domain.Emoji, error) {
	excluded := 0
	for e, n := range exclude {
		if n > 0 && e.Ordinal() < len(c.emojis) && c.emojis[e.Ordinal()] == e {
			excluded++
		}
	}

	remaining := len(c.emojis) - excluded
	if remaining <= 0 {
		return domain.Emoji{}, ErrExhausted
	}

	pick := c.rnd.IntN(remaining)
	for _, e := range c.emojis {
		if exclude[e] > 0 {
			continue
		}
		if pick == 0 {
			return e, nil
		}
		pick--
	}

	return domain.Emoji{}, ErrExhausted
}

// splitClusters splits input into grapheme clusters, dropping whitespace and commas
func splitClusters(input string) []string {
	var clusters []string
	state := -1
	rest := input
	for len(rest) > 0 {
		var cluster string
		cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		if strings.TrimFunc(cluster, isSeparator) == "" {
			continue
		}
		clusters = append(clusters, cluster)
	}
	return clusters
}

func isSeparator(r rune) bool {
	return unicode.IsSpace(r) || r == ','
}

func isMultiplierSign(cluster string) bool {
	return cluster == "x" || cluster == "X" || cluster == "×"
}

func isDigit(cluster string) bool {
	return len(cluster) == 1 && cluster[0] >= '0' && cluster[0] <= '9'
}

func stripVS16(glyph string) string {
	return strings.ReplaceAll(glyph, vs16, "")
}
