package biomark

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCacheMatchesUncached(t *testing.T) {
	c := NewCache(0)
	raw := "[FF0000][b]A[/b]\n[/i]"
	require.Equal(t, ParseString(raw), c.Parse(raw))
	require.Equal(t, ParseString(raw), c.Parse(raw))
	require.Equal(t, Validate(raw), c.Validate(raw))
	require.Equal(t, Validate(raw), c.Validate(raw))
	assert.Equal(t, 2, c.Len())

	c.Flush()
	assert.Equal(t, 0, c.Len())
}

func TestCacheHandsOutCopies(t *testing.T) {
	c := NewCache(0)
	doc := c.Parse("abc")
	doc.Lines[0].Segments[0].Text = "mutated"
	assert.Equal(t, "abc", c.Parse("abc").Lines[0].Segments[0].Text)
}

func TestCacheAppliesOptions(t *testing.T) {
	strict := NewCache(0)
	lenient := NewCache(0, WithStrictColors(false))
	assert.Equal(t, RuleUnknownColor, strict.Validate("[GG0000]").Rule)
	assert.True(t, lenient.Validate("[GG0000]").Valid)
}

func TestCacheConcurrentUse(t *testing.T) {
	c := NewCache(0)
	inputs := []string{"[b]a[/b]", "[FF0000]b\nc", "[i]d", ""}
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				raw := inputs[(i+j)%len(inputs)]
				_ = c.Parse(raw)
				_ = c.Validate(raw)
			}
		}(i)
	}
	wg.Wait()
	assert.Equal(t, 2*len(inputs), c.Len())
}
