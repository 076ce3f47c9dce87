package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-emoji-ledger/internal/domain"
)

// fixedRand always returns the same index, clamped to n
type fixedRand struct {
	index int
}

func (f fixedRand) IntN(n int) int {
	if f.index >= n {
		return n - 1
	}
	return f.index
}

func newTestCatalog(t *testing.T, opts ...Option) Catalog {
	c, err := New([]string{"😀", "😃", "\u263a\ufe0f", "🇿", "1\ufe0f\u20e3", "👍"}, opts...)
	require.NoError(t, err)
	return c
}

func TestDefault(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)
	assert.Equal(t, 1875, c.Len())

	first, ok := c.ByOrdinal(0)
	require.True(t, ok)
	assert.Equal(t, "😀", first.String())

	z, ok := c.Resolve("🇿")
	require.True(t, ok)
	assert.True(t, z.IsRegionalIndicator())
}

func TestNew_Errors(t *testing.T) {
	_, err := New(nil)
	assert.Error(t, err)

	_, err = New([]string{"😀", ""})
	assert.Error(t, err)

	_, err = New([]string{"\u263a\ufe0f", "\u263a"})
	assert.Error(t, err, "entries differing only by variation selector are duplicates")
}

func TestLoad(t *testing.T) {
	t.Run("empty path loads the built-in catalog", func(t *testing.T) {
		c, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, 1875, c.Len())
	})

	t.Run("custom file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "catalog.json")
		require.NoError(t, os.WriteFile(path, []byte(`["🍎", "🍐"]`), 0600))

		c, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, 2, c.Len())
		pear, ok := c.ByOrdinal(1)
		require.True(t, ok)
		assert.Equal(t, "🍐", pear.String())
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
		assert.Error(t, err)
	})

	t.Run("invalid json", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "catalog.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"not": "a list"}`), 0600))

		_, err := Load(path)
		assert.Error(t, err)
	})
}

func TestResolve(t *testing.T) {
	c := newTestCatalog(t)

	smiling, ok := c.Resolve("\u263a")
	require.True(t, ok, "missing variation selector still resolves")
	assert.Equal(t, 2, smiling.Ordinal())
	assert.Equal(t, "\u263a\ufe0f", smiling.String())

	grin, ok := c.Resolve("\U0001F600\ufe0f")
	require.True(t, ok, "extra variation selector still resolves")
	assert.Equal(t, 0, grin.Ordinal())

	_, ok = c.Resolve("🍎")
	assert.False(t, ok)

	_, ok = c.ByOrdinal(-1)
	assert.False(t, ok)
	_, ok = c.ByOrdinal(c.Len())
	assert.False(t, ok)
}

func TestParse(t *testing.T) {
	c := newTestCatalog(t)
	grin, _ := c.Resolve("😀")
	smile, _ := c.Resolve("😃")
	keycap, _ := c.Resolve("1\ufe0f\u20e3")
	thumbs, _ := c.Resolve("👍")

	tests := []struct {
		name     string
		input    string
		expected domain.EmojiCounts
		errInput string
	}{
		{
			name:     "single emoji",
			input:    "😀",
			expected: domain.NewEmojiCounts(grin),
		},
		{
			name:     "repeated emojis",
			input:    "😀😃😀",
			expected: domain.NewEmojiCounts(grin, grin, smile),
		},
		{
			name:     "multiplier",
			input:    "😀x3 😃",
			expected: domain.NewEmojiCounts(grin, grin, grin, smile),
		},
		{
			name:     "multiplier with spaces and commas",
			input:    "😀 x 2, 👍",
			expected: domain.NewEmojiCounts(grin, grin, thumbs),
		},
		{
			name:     "keycap is a single cluster",
			input:    "1\ufe0f\u20e3x2",
			expected: domain.NewEmojiCounts(keycap, keycap),
		},
		{
			name:     "empty input",
			input:    "   ",
			expected: domain.EmojiCounts{},
		},
		{
			name:     "unknown emoji",
			input:    "😀🍎",
			errInput: "🍎",
		},
		{
			name:     "multiplier without emoji",
			input:    "x2",
			errInput: "x",
		},
		{
			name:     "zero multiplier",
			input:    "😀x0",
			errInput: "x0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			counts, err := c.Parse(tt.input)
			if tt.errInput != "" {
				var parseErr *domain.ParseError
				require.ErrorAs(t, err, &parseErr)
				assert.Equal(t, tt.errInput, parseErr.Input)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.expected.Equal(counts), "got %s", counts)
		})
	}
}

func TestRandom(t *testing.T) {
	c := newTestCatalog(t, WithRandomSource(fixedRand{index: 1}))

	assert.Equal(t, 1, c.Random().Ordinal())
}

func TestRandomExcluding(t *testing.T) {
	c := newTestCatalog(t, WithRandomSource(fixedRand{index: 0}))
	grin, _ := c.Resolve("😀")
	smile, _ := c.Resolve("😃")

	e, err := c.RandomExcluding(domain.NewEmojiCounts(grin, smile))
	require.NoError(t, err)
	assert.Equal(t, 2, e.Ordinal(), "first non-excluded entry")

	all := make(domain.EmojiCounts)
	for i := range c.Len() {
		e, _ := c.ByOrdinal(i)
		all.Add(e, 1)
	}
	_, err = c.RandomExcluding(all)
	assert.ErrorIs(t, err, ErrExhausted)
}

func TestRandomExcluding_NeverReturnsExcluded(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)
	a, _ := c.ByOrdinal(10)
	b, _ := c.ByOrdinal(20)
	d, _ := c.ByOrdinal(30)
	exclude := domain.NewEmojiCounts(a, b, d)

	for range 500 {
		e, err := c.RandomExcluding(exclude)
		require.NoError(t, err)
		assert.Zero(t, exclude[e])
	}
}
