package biomark

import (
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCorpusEntriesAreValid(t *testing.T) {
	entries := ListSuggestions("")
	require.Equal(t, DefaultCorpus().Len(), len(entries))
	require.NotEmpty(t, entries)
	for _, e := range entries {
		v := Validate(e.Raw)
		assert.Truef(t, v.Valid, "%s: %s", e.ID, v.Message)
		assert.NotEmpty(t, e.Category, e.ID)
		assert.NotEmpty(t, e.Title, e.ID)
	}
}

func TestDefaultCorpusCategories(t *testing.T) {
	assert.Equal(t, []string{"pro", "squad", "attitude", "minimal", "stylish"}, DefaultCorpus().Categories())
}

func TestListSuggestionsFiltersByCategory(t *testing.T) {
	pro := ListSuggestions(" PRO ")
	require.Len(t, pro, 2)
	assert.Equal(t, "pro-player", pro[0].ID)
	assert.Equal(t, "pro-grandmaster", pro[1].ID)

	none := ListSuggestions("nope")
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestDefaultCorpusHasThreeLineScenario(t *testing.T) {
	e, ok := DefaultCorpus().ByID("pro-player")
	require.True(t, ok)
	assert.Equal(t, "[FF0000]🔥 PRO PLAYER\n[FFFFFF]Rank: Heroic\n[00FF00]Daily Active", e.Raw)

	_, ok = DefaultCorpus().ByID("missing")
	assert.False(t, ok)
}

func TestPickRandomCoversCorpus(t *testing.T) {
	c := DefaultCorpus()
	r := rand.New(rand.NewPCG(1, 2))
	seen := make(map[string]int)
	for i := 0; i < c.Len()*200; i++ {
		e := c.PickRandomFrom(r)
		seen[e.ID]++
	}
	assert.Len(t, seen, c.Len())

	e := PickRandom()
	_, ok := c.ByID(e.ID)
	assert.True(t, ok)
}

func TestPickRandomOnZeroCorpus(t *testing.T) {
	var c Corpus
	assert.NotPanics(t, func() {
		assert.Equal(t, ExampleEntry{}, c.PickRandom())
		assert.Equal(t, ExampleEntry{}, c.PickRandomFrom(rand.New(rand.NewPCG(1, 2))))
	})
	assert.Empty(t, c.ListSuggestions(""))
}

func TestNewCorpusRejectsInvalidEntries(t *testing.T) {
	_, err := NewCorpus([]ExampleEntry{{ID: "bad", Category: "x", Raw: "[b]open"}})
	require.ErrorIs(t, err, ErrInvalidExample)
	require.ErrorIs(t, err, ErrUnclosedStyle)
	assert.Contains(t, err.Error(), `"bad"`)

	_, err = NewCorpus([]ExampleEntry{
		{ID: "a", Category: "x", Raw: "ok"},
		{ID: "a", Category: "x", Raw: "ok too"},
	})
	require.ErrorIs(t, err, ErrDuplicateExample)

	_, err = NewCorpus([]ExampleEntry{{Category: "x", Raw: "ok"}})
	require.ErrorIs(t, err, ErrInvalidExample)

	_, err = NewCorpus(nil)
	require.ErrorIs(t, err, ErrEmptyCorpus)
}

func TestNewCorpusHonorsValidateOptions(t *testing.T) {
	entries := []ExampleEntry{{ID: "typo", Category: "x", Raw: "[GG0000]hi"}}
	_, err := NewCorpus(entries)
	require.ErrorIs(t, err, ErrUnknownColor)

	c, err := NewCorpus(entries, WithStrictColors(false))
	require.NoError(t, err)
	assert.Equal(t, 1, c.Len())
}

func TestLoadCorpus(t *testing.T) {
	src := `
examples:
  - id: one
    category: Clan
    title: One
    raw: "[FF0000]one"
  - id: two
    category: clan
    title: Two
    raw: |-
      [b]two[/b]
      lines
`
	c, err := LoadCorpus(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, []string{"clan"}, c.Categories())
	got := c.ListSuggestions("CLAN")
	require.Len(t, got, 2)
	assert.Equal(t, "[b]two[/b]\nlines", got[1].Raw)

	_, err = LoadCorpus(strings.NewReader("examples:\n  - id: x\n    colour: red\n"))
	require.Error(t, err)

	_, err = LoadCorpus(strings.NewReader(""))
	require.ErrorIs(t, err, ErrEmptyCorpus)
}
