package biomark

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed corpus/examples.yaml
var embeddedCorpus []byte

var (
	// ErrInvalidExample reports a corpus entry whose markup fails validation.
	ErrInvalidExample = errors.New("invalid example")
	// ErrDuplicateExample reports two corpus entries with the same ID.
	ErrDuplicateExample = errors.New("duplicate example id")
	// ErrEmptyCorpus reports a corpus without entries.
	ErrEmptyCorpus = errors.New("empty corpus")
)

// ExampleEntry is a ready-made bio template.
type ExampleEntry struct {
	ID       string `yaml:"id"`
	Category string `yaml:"category"`
	Title    string `yaml:"title"`
	Raw      string `yaml:"raw"`
}

// Corpus is an immutable, validated set of examples. It is safe for
// concurrent use.
type Corpus struct {
	entries    []ExampleEntry
	byID       map[string]int
	categories []string
}

type corpusFile struct {
	Examples []ExampleEntry `yaml:"examples"`
}

// NewCorpus validates every entry and returns a Corpus in the given order.
func NewCorpus(entries []ExampleEntry, opts ...ValidateOption) (*Corpus, error) {
	if len(entries) == 0 {
		return nil, ErrEmptyCorpus
	}
	c := &Corpus{
		entries: make([]ExampleEntry, 0, len(entries)),
		byID:    make(map[string]int, len(entries)),
	}
	seen := make(map[string]struct{})
	for i, e := range entries {
		e.ID = strings.TrimSpace(e.ID)
		e.Category = strings.ToLower(strings.TrimSpace(e.Category))
		if e.ID == "" {
			return nil, fmt.Errorf("example %d: %w: missing id", i, ErrInvalidExample)
		}
		if _, dup := c.byID[e.ID]; dup {
			return nil, fmt.Errorf("example %q: %w", e.ID, ErrDuplicateExample)
		}
		if err := Validate(e.Raw, opts...).Err(); err != nil {
			return nil, fmt.Errorf("example %q: %w: %w", e.ID, ErrInvalidExample, err)
		}
		c.byID[e.ID] = len(c.entries)
		c.entries = append(c.entries, e)
		if _, ok := seen[e.Category]; !ok && e.Category != "" {
			seen[e.Category] = struct{}{}
			c.categories = append(c.categories, e.Category)
		}
	}
	return c, nil
}

// LoadCorpus reads a YAML corpus with a top-level "examples" list.
func LoadCorpus(r io.Reader, opts ...ValidateOption) (*Corpus, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var file corpusFile
	if err := dec.Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyCorpus
		}
		return nil, fmt.Errorf("load corpus: %w", err)
	}
	return NewCorpus(file.Examples, opts...)
}

var defaultCorpus = sync.OnceValue(func() *Corpus {
	c, err := LoadCorpus(bytes.NewReader(embeddedCorpus))
	if err != nil {
		panic(fmt.Sprintf("biomark: built-in corpus: %v", err))
	}
	return c
})

// DefaultCorpus returns the built-in examples.
func DefaultCorpus() *Corpus {
	return defaultCorpus()
}

// ListSuggestions returns built-in examples in category, or all of them when
// category is empty.
func ListSuggestions(category string) []ExampleEntry {
	return DefaultCorpus().ListSuggestions(category)
}

// PickRandom returns a uniformly chosen built-in example.
func PickRandom() ExampleEntry {
	return DefaultCorpus().PickRandom()
}

// ListSuggestions returns the examples in category, in corpus order. An
// empty category returns every example. Matching ignores case.
func (c *Corpus) ListSuggestions(category string) []ExampleEntry {
	category = strings.ToLower(strings.TrimSpace(category))
	out := make([]ExampleEntry, 0, len(c.entries))
	for _, e := range c.entries {
		if category == "" || e.Category == category {
			out = append(out, e)
		}
	}
	return out
}

// PickRandom returns a uniformly chosen example. A Corpus not built by
// NewCorpus or LoadCorpus has no entries and yields the zero ExampleEntry.
func (c *Corpus) PickRandom() ExampleEntry {
	if len(c.entries) == 0 {
		return ExampleEntry{}
	}
	return c.entries[rand.IntN(len(c.entries))]
}

// PickRandomFrom is PickRandom with a caller-provided source.
func (c *Corpus) PickRandomFrom(r *rand.Rand) ExampleEntry {
	if len(c.entries) == 0 {
		return ExampleEntry{}
	}
	return c.entries[r.IntN(len(c.entries))]
}

// ByID returns the example with id.
func (c *Corpus) ByID(id string) (ExampleEntry, bool) {
	i, ok := c.byID[id]
	if !ok {
		return ExampleEntry{}, false
	}
	return c.entries[i], true
}

// Categories returns the categories in order of first appearance.
func (c *Corpus) Categories() []string {
	return append([]string(nil), c.categories...)
}

// Len returns the number of examples.
func (c *Corpus) Len() int {
	return len(c.entries)
}
