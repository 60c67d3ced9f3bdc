package attributes

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/dghubble/trie"
)

// Factory interns immutable attribute sets, so that equal sets built through
// the same factory share one *Immutable.  It is safe for concurrent use.
type Factory struct {
	mu       sync.Mutex
	interned *trie.PathTrie
}

// NewFactory returns an empty factory.
func NewFactory() *Factory {
	return &Factory{
		interned: trie.NewPathTrieWithConfig(&trie.PathTrieConfig{
			Segmenter: entrySegmenter,
		}),
	}
}

// Of returns the interned immutable form of c.
func (f *Factory) Of(c *Container) *Immutable {
	if c == nil || c.Len() == 0 {
		return Empty()
	}
	entries := c.sorted()
	key := internKey(entries)

	f.mu.Lock()
	defer f.mu.Unlock()

	if v := f.interned.Get(key); v != nil {
		if got := v.(*Immutable); reflect.DeepEqual(got.entries, entries) {
			return got
		}
		// distinct values that print alike are returned uninterned.
		return &Immutable{entries: entries}
	}
	a := &Immutable{entries: entries}
	f.interned.Put(key, a)
	return a
}

// Concat returns the interned set holding the attributes of a overridden by
// those of b.
func (f *Factory) Concat(a, b *Immutable) *Immutable {
	c := a.Mutable()
	for _, e := range b.entries {
		c.entries[e.attr.Name] = e
	}
	return f.Of(c)
}

const entrySep = '\x00'

func internKey(entries []entry) string {
	var sb strings.Builder
	for _, e := range entries {
		fmt.Fprintf(&sb, "%c%s=%v=%v", entrySep, e.attr.Name, e.attr.Type, e.value)
	}
	return sb.String()
}

// entrySegmenter segments intern keys by entry, the same way the default
// PathTrie segmenter splits on '/'.
func entrySegmenter(path string, start int) (segment string, next int) {
	if len(path) == 0 || start < 0 || start > len(path)-1 {
		return "", -1
	}
	end := strings.IndexByte(path[start+1:], entrySep)
	if end == -1 {
		return path[start:], -1
	}
	return path[start : start+end+1], start + end + 1
}
