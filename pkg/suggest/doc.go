/*
Package suggest implements the multi-intent segmentation and ranking
pipeline that drives the lexical tool-suggestion engine.

The Engine type owns the catalog (pkg/catalog.ToolSpec values), a prefix
trie (pkg/trie) over every catalog term, and a field-aware inverted index
(pkg/index). Given free text, it:

 1. tokenizes the text (pkg/tokenizer) without dropping stopwords, to keep
    every token's span available for punctuation-boundary detection,
 2. segments the token stream into one or more intent windows, anchored on
    catalog vocabulary and split on configured separator tokens and
    comma/semicolon punctuation,
 3. expands each window's trailing (incomplete) token via the trie,
 4. queries the inverted index once per window, and
 5. fuses the per-window rankings into a single ordered Suggestion list.

# Sessions

Feed and Submit drive an incremental session buffer keyed by an opaque
session id. feed appends to the buffer; submit replaces it wholesale.
Buffers are held in a bounded, evictable github.com/hashicorp/golang-lru/v2
cache — per spec, "sessions are ephemeral and may be evicted at any time
without affecting correctness," so an LRU eviction policy is a conforming
implementation choice, not a correctness concern.

# Construction

NewEngine validates its Config up front (see Config.Validate) and fails
fast on a bad combine_strategy or an out-of-range numeric parameter,
matching the fail-fast-at-construction policy in spec section 7. Runtime
queries never fail: empty text, an unknown session id, or a query with no
candidates all return an empty suggestion slice.

# Intent windows

See windows.go for the segmentation algorithm (anchors, separators,
punctuation boundaries, and window-radius expansion) and engine.go for how
per-window results are combined via "max" or "sum" strategy with an
optional multi_intent_bonus. Both are reproduced exactly as specified,
including the documented non-monotone interaction between
multi_intent_bonus and combine_strategy="max", and the positional quirk in
the sum-mode decay factor — spec.md section 9 calls these out explicitly
as "reproduce as-is."
*/
package suggest
