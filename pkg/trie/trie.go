/*
Package trie implements a prefix trie over catalog terms for incomplete-
token expansion, built on the teacher's own radix-trie library,
github.com/tchap/go-patricia/v2. The compressed (patricia) trie already
gives O(prefix-length + k) prefix enumeration for free via VisitSubtree, so
the wrapper here does not need to maintain its own descendant-term sets the
way a plain character trie would.
*/
package trie

import (
	"errors"

	"github.com/charmbracelet/log"
	"github.com/tchap/go-patricia/v2/patricia"
)

// present is the sentinel item stored at each inserted term; the trie here
// only needs membership, not a payload.
var present = struct{}{}

// errLimitReached is returned by the VisitSubtree visitor to stop the walk
// once the caller's limit has been met; it is swallowed by PrefixTerms and
// never surfaces to callers.
var errLimitReached = errors.New("trie: limit reached")

// Trie stores a set of terms and supports prefix enumeration.
type Trie struct {
	root *patricia.Trie
}

// New returns an empty Trie.
func New() *Trie {
	return &Trie{root: patricia.NewTrie()}
}

// Insert adds term to the trie. Inserting the same term twice is a no-op.
func (t *Trie) Insert(term string) {
	if term == "" {
		return
	}
	t.root.Insert(patricia.Prefix(term), present)
}

// PrefixTerms returns every inserted term that starts with prefix,
// truncated to limit (a non-positive limit means unlimited). If no
// inserted term shares the prefix, including when the prefix itself was
// never reached while walking, it returns nil. Iteration order is
// implementation-defined.
func (t *Trie) PrefixTerms(prefix string, limit int) []string {
	if prefix == "" {
		return nil
	}
	var terms []string
	err := t.root.VisitSubtree(patricia.Prefix(prefix), func(p patricia.Prefix, _ patricia.Item) error {
		if limit > 0 && len(terms) >= limit {
			return errLimitReached
		}
		terms = append(terms, string(p))
		return nil
	})
	if err != nil && !errors.Is(err, errLimitReached) {
		log.Errorf("trie: error visiting subtree for prefix %q: %v", prefix, err)
		return nil
	}
	return terms
}
