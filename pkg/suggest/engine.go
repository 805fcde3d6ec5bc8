package suggest

import (
	"math"
	"sort"
	"strings"

	"github.com/bastiangx/toolsuggest/pkg/catalog"
	"github.com/bastiangx/toolsuggest/pkg/index"
	"github.com/bastiangx/toolsuggest/pkg/tokenizer"
	"github.com/bastiangx/toolsuggest/pkg/trie"
	"github.com/charmbracelet/log"
)

// trieExpansionLimit bounds how many terms the trie will expand a trailing
// prefix into per window, per spec.md section 4.4.
const trieExpansionLimit = 64

// Engine is the lexical tool-suggestion engine: it owns the catalog, the
// prefix trie, and the inverted index, and drives intent segmentation and
// cross-window ranking fusion. See the package doc for an overview.
type Engine struct {
	cfg Config

	catalog map[string]catalog.ToolSpec
	trie    *trie.Trie
	inv     *index.Index

	anchorVocab map[string]struct{}
	separators  map[string]struct{}
	stopwords   map[string]struct{}

	sessions *sessionStore

	log *log.Logger
}

// NewEngine validates cfg and constructs an Engine seeded with the given
// catalog. Construction fails only on an invalid Config (spec.md section 7);
// catalog entries without a name are silently dropped.
func NewEngine(tools []catalog.ToolSpec, cfg Config, logger *log.Logger) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.Default()
	}

	e := &Engine{
		cfg:         cfg,
		catalog:     make(map[string]catalog.ToolSpec),
		trie:        trie.New(),
		inv:         index.New(nil),
		anchorVocab: make(map[string]struct{}),
		sessions:    newSessionStore(defaultSessionCapacity),
		log:         logger,
	}

	e.separators = make(map[string]struct{}, len(cfg.IntentSeparatorToks))
	for _, sep := range cfg.IntentSeparatorToks {
		norm := tokenizer.Normalize(sep)
		if norm != "" {
			e.separators[norm] = struct{}{}
		}
	}
	if cfg.DropStopwords {
		e.stopwords = tokenizer.Stopwords(cfg.Locales)
	} else {
		e.stopwords = map[string]struct{}{}
	}

	e.AddTools(tools)
	return e, nil
}

func (e *Engine) isStopword(tok string) bool {
	_, ok := e.stopwords[tok]
	return ok
}

func (e *Engine) isAnchor(tok string) bool {
	_, ok := e.anchorVocab[tok]
	return ok
}

func (e *Engine) isSeparator(tok string) bool {
	_, ok := e.separators[tok]
	return ok
}

// --- Session API ---

// Feed appends delta to the session's buffer (creating the session if
// absent) and returns suggestions ranked over the full buffer.
func (e *Engine) Feed(delta, sessionID string) []catalog.Suggestion {
	buffer := e.sessions.append(sessionID, delta)
	return e.suggest(buffer)
}

// Submit wholesale-replaces the session's buffer with text and returns
// suggestions ranked over it.
func (e *Engine) Submit(text, sessionID string) []catalog.Suggestion {
	e.sessions.replace(sessionID, text)
	return e.suggest(text)
}

// Reset drops the session's buffer. Idempotent.
func (e *Engine) Reset(sessionID string) {
	e.sessions.reset(sessionID)
}

// --- Catalog API ---

// AddTools registers tools into the catalog, trie, inverted index, and
// anchor vocabulary. A tool with an empty Name is silently ignored.
func (e *Engine) AddTools(tools []catalog.ToolSpec) {
	for _, tool := range tools {
		if tool.Name == "" {
			e.log.Debug("suggest: ignoring tool with empty name")
			continue
		}
		e.catalog[tool.Name] = tool

		for _, term := range e.extractTerms(tool) {
			e.trie.Insert(term)
		}

		byField := e.extractTermsByField(tool)
		e.inv.AddTool(tool.Name, byField)
		for _, field := range e.cfg.AnchorFields {
			for _, term := range byField[field] {
				e.anchorVocab[term] = struct{}{}
			}
		}
	}
}

// RemoveTool deletes name from the catalog and rebuilds the trie, inverted
// index, and anchor vocabulary from scratch (incremental deletion is not
// required by spec.md section 3's lifecycle notes).
func (e *Engine) RemoveTool(name string) {
	if _, ok := e.catalog[name]; !ok {
		return
	}
	delete(e.catalog, name)
	e.rebuildIndex()
}

func (e *Engine) rebuildIndex() {
	e.trie = trie.New()
	e.inv = index.New(nil)
	e.anchorVocab = make(map[string]struct{})

	tools := make([]catalog.ToolSpec, 0, len(e.catalog))
	for _, tool := range e.catalog {
		tools = append(tools, tool)
	}
	e.catalog = make(map[string]catalog.ToolSpec)
	e.AddTools(tools)
}

// extractTerms returns the sorted, deduplicated set of normalized terms
// across every field of tool, used to populate the trie.
func (e *Engine) extractTerms(tool catalog.ToolSpec) []string {
	seen := make(map[string]struct{})
	add := func(text string) {
		for _, t := range tokenizer.Tokens(text, tokenizer.Options{RemoveNoise: true}) {
			if nt := tokenizer.Normalize(t); nt != "" {
				seen[nt] = struct{}{}
			}
		}
	}
	add(tool.Name)
	add(tool.Description)
	for _, kw := range tool.Keywords {
		add(kw)
	}
	for _, alias := range tool.Aliases {
		add(alias)
	}

	out := make([]string, 0, len(seen))
	for t := range seen {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

// extractTermsByField returns normalized tokens grouped by catalog field,
// preserving occurrence order within each field (the inverted index counts
// term frequency from this).
func (e *Engine) extractTermsByField(tool catalog.ToolSpec) map[catalog.Field][]string {
	collect := func(texts ...string) []string {
		var out []string
		for _, text := range texts {
			out = append(out, tokenizer.Tokens(text, tokenizer.Options{RemoveNoise: true})...)
		}
		return out
	}

	byField := map[catalog.Field][]string{
		catalog.FieldName:        collect(tool.Name),
		catalog.FieldDescription: collect(tool.Description),
		catalog.FieldKeywords:    collect(tool.Keywords...),
		catalog.FieldAliases:     collect(tool.Aliases...),
	}

	for field, vals := range byField {
		normed := make([]string, 0, len(vals))
		for _, v := range vals {
			if nv := tokenizer.Normalize(v); nv != "" {
				normed = append(normed, nv)
			}
		}
		byField[field] = normed
	}
	return byField
}

// combinedEntry accumulates a tool's cross-window score and explanation.
type combinedEntry struct {
	score float64
	hits  int
	terms map[string]map[catalog.Field]struct{}
}

// suggest runs the full segmentation -> query -> fusion pipeline over text.
func (e *Engine) suggest(text string) []catalog.Suggestion {
	windows := e.intentWindows(text)
	if len(windows) == 0 {
		return nil
	}

	windowTopK := e.cfg.TopK
	if e.cfg.MaxIntents > 1 {
		windowTopK = max(e.cfg.TopK, e.cfg.TopK*e.cfg.MaxIntents)
	}

	combined := make(map[string]*combinedEntry)

	for i, win := range windows {
		var expanded map[string]struct{}
		if win.lastPrefix != "" {
			terms := e.trie.PrefixTerms(win.lastPrefix, trieExpansionLimit)
			if len(terms) > 0 {
				expanded = make(map[string]struct{}, len(terms))
				for _, t := range terms {
					expanded[t] = struct{}{}
				}
			}
		}

		completeSet := toSet(win.completeTerms)
		queryTerms := unionSets(completeSet, expanded)
		if len(queryTerms) == 0 {
			continue
		}

		minHits := e.minCompleteHits(win.anchorHits, win.completeTerms)
		ranked := e.inv.Query(index.QueryParams{
			CompleteTerms:   completeSet,
			ExpandedTerms:   expanded,
			RequireAnchor:   e.cfg.RequireAnchor,
			AnchorFields:    e.cfg.AnchorFields,
			Alpha:           e.cfg.Alpha,
			MinScore:        e.cfg.MinScore,
			TopK:            windowTopK,
			MinCompleteHits: minHits,
			QueryTerms:      queryTerms,
		})
		if len(ranked) == 0 {
			continue
		}

		decay := 1.0 / float64(i+1)
		for _, result := range ranked {
			entry, ok := combined[result.ToolID]
			if !ok {
				entry = &combinedEntry{terms: make(map[string]map[catalog.Field]struct{})}
				combined[result.ToolID] = entry
			}
			switch e.cfg.CombineStrategy {
			case CombineSum:
				entry.score += result.Score * decay
			default:
				entry.score = math.Max(entry.score, result.Score)
			}
			entry.hits++
			for term, fields := range result.Contributions {
				fieldSet, ok := entry.terms[term]
				if !ok {
					fieldSet = make(map[catalog.Field]struct{})
					entry.terms[term] = fieldSet
				}
				for _, f := range fields {
					fieldSet[f] = struct{}{}
				}
			}
		}
	}

	if len(combined) == 0 {
		return nil
	}

	if e.cfg.MultiIntentBonus != 0 {
		for _, entry := range combined {
			if entry.hits > 1 {
				entry.score += e.cfg.MultiIntentBonus * float64(entry.hits-1)
			}
		}
	}

	type ranked struct {
		toolID string
		entry  *combinedEntry
	}
	all := make([]ranked, 0, len(combined))
	for toolID, entry := range combined {
		all = append(all, ranked{toolID, entry})
	}
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].entry.score > all[j].entry.score
	})
	if len(all) > e.cfg.TopK {
		all = all[:e.cfg.TopK]
	}

	suggestions := make([]catalog.Suggestion, 0, len(all))
	for _, r := range all {
		tool, ok := e.catalog[r.toolID]
		label := r.toolID
		var tags []string
		if ok {
			label = tool.Name
			tags = tool.Tags
		}
		suggestions = append(suggestions, catalog.Suggestion{
			ID:                r.toolID,
			Kind:              catalog.KindTool,
			Score:             r.entry.score,
			Label:             label,
			Reason:            formatReason(r.entry.terms),
			ArgumentsTemplate: map[string]any{},
			Metadata:          catalog.Metadata{Tags: tags},
		})
	}
	return suggestions
}

// formatReason renders a term->fields contribution map as
// "term: field1,field2; term2: field3", sorted alphabetically by term and
// by field, matching spec.md's reason-string format.
func formatReason(terms map[string]map[catalog.Field]struct{}) string {
	termNames := make([]string, 0, len(terms))
	for t := range terms {
		termNames = append(termNames, t)
	}
	sort.Strings(termNames)

	parts := make([]string, 0, len(termNames))
	for _, term := range termNames {
		fields := make([]string, 0, len(terms[term]))
		for f := range terms[term] {
			fields = append(fields, string(f))
		}
		sort.Strings(fields)
		parts = append(parts, term+": "+strings.Join(fields, ","))
	}
	return strings.Join(parts, "; ")
}

func toSet(items []string) map[string]struct{} {
	if len(items) == 0 {
		return map[string]struct{}{}
	}
	out := make(map[string]struct{}, len(items))
	for _, i := range items {
		out[i] = struct{}{}
	}
	return out
}

func unionSets(a, b map[string]struct{}) map[string]struct{} {
	out := make(map[string]struct{}, len(a)+len(b))
	for t := range a {
		out[t] = struct{}{}
	}
	for t := range b {
		out[t] = struct{}{}
	}
	return out
}
