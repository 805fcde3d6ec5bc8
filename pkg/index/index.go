/*
Package index implements a field-aware inverted index with TF-IDF scoring
over catalog terms, per spec section 4.3. Postings are
term -> tool -> field -> term_frequency; df counts distinct tools per term;
N is the number of registered tools. Field weights default to
name=3.0, keywords=2.0, aliases=1.8, description=1.0.
*/
package index

import (
	"math"
	"sort"

	"github.com/bastiangx/toolsuggest/pkg/catalog"
)

// idfEpsilon matches the epsilon in spec.md's idf formula exactly.
const idfEpsilon = 1e-9

// DefaultFieldWeights is the field -> weight table used unless overridden
// at construction.
func DefaultFieldWeights() map[catalog.Field]float64 {
	return map[catalog.Field]float64{
		catalog.FieldName:        3.0,
		catalog.FieldKeywords:    2.0,
		catalog.FieldAliases:     1.8,
		catalog.FieldDescription: 1.0,
	}
}

// Index is a field-aware inverted index over tool terms.
type Index struct {
	postings     map[string]map[string]map[catalog.Field]uint32
	df           map[string]int
	tools        map[string]struct{}
	fieldWeights map[catalog.Field]float64
}

// New returns an empty Index. A nil fieldWeights uses DefaultFieldWeights.
func New(fieldWeights map[catalog.Field]float64) *Index {
	if fieldWeights == nil {
		fieldWeights = DefaultFieldWeights()
	}
	return &Index{
		postings:     make(map[string]map[string]map[catalog.Field]uint32),
		df:           make(map[string]int),
		tools:        make(map[string]struct{}),
		fieldWeights: fieldWeights,
	}
}

// AddTool registers a tool's pre-tokenized terms by field, updating
// postings and document frequency. termsByField maps a field to the
// (already normalized) terms observed in it, in occurrence order.
func (ix *Index) AddTool(toolID string, termsByField map[catalog.Field][]string) {
	ix.tools[toolID] = struct{}{}

	seenForDF := make(map[string]struct{})
	for field, terms := range termsByField {
		if len(terms) == 0 {
			continue
		}
		counts := make(map[string]int, len(terms))
		for _, t := range terms {
			if t == "" {
				continue
			}
			counts[t]++
		}
		for term, tf := range counts {
			toolMap, ok := ix.postings[term]
			if !ok {
				toolMap = make(map[string]map[catalog.Field]uint32)
				ix.postings[term] = toolMap
			}
			fieldMap, ok := toolMap[toolID]
			if !ok {
				fieldMap = make(map[catalog.Field]uint32)
				toolMap[toolID] = fieldMap
			}
			fieldMap[field] += uint32(tf)

			if _, dup := seenForDF[term]; !dup {
				ix.df[term]++
				seenForDF[term] = struct{}{}
			}
		}
	}
}

// idf computes 1 + ln((1+N)/(1+df+eps)).
func (ix *Index) idf(term string) float64 {
	n := float64(len(ix.tools))
	df := float64(ix.df[term])
	return 1.0 + math.Log((1.0+n)/(1.0+df+idfEpsilon))
}

// Result is one ranked candidate returned by Query. Contributions maps a
// matched term to the fields it was found in, each listed once; the order
// of those fields follows map iteration and is not defined, so callers that
// display reasons should sort fields alphabetically themselves for a stable
// rendering.
type Result struct {
	ToolID        string
	Score         float64
	Contributions map[string][]catalog.Field
}

// QueryParams configures a single Query call, per spec.md section 4.3.
type QueryParams struct {
	CompleteTerms   map[string]struct{}
	ExpandedTerms   map[string]struct{}
	RequireAnchor   bool
	AnchorFields    []catalog.Field
	Alpha           float64
	MinScore        float64
	TopK            int
	MinCompleteHits *int
	QueryTerms      map[string]struct{}
}

// Query ranks candidate tools against the given query terms. See
// spec.md section 4.3 for the exact scoring and filtering algorithm.
func (ix *Index) Query(p QueryParams) []Result {
	query := p.QueryTerms
	if query == nil {
		query = unionSets(p.CompleteTerms, p.ExpandedTerms)
	}
	if len(query) == 0 {
		return nil
	}

	candidates := make(map[string]struct{})
	for term := range query {
		for toolID := range ix.postings[term] {
			candidates[toolID] = struct{}{}
		}
	}

	var required int
	if p.MinCompleteHits != nil {
		required = *p.MinCompleteHits
		if required < 0 {
			required = 0
		}
	} else {
		alpha := clamp01(p.Alpha)
		required = int(math.Ceil(float64(len(p.CompleteTerms)) * alpha))
	}

	anchorSet := make(map[catalog.Field]struct{}, len(p.AnchorFields))
	for _, f := range p.AnchorFields {
		anchorSet[f] = struct{}{}
	}

	results := make([]Result, 0, len(candidates))
	for toolID := range candidates {
		score := 0.0
		matchedComplete := 0
		anchorHit := false
		contributions := make(map[string][]catalog.Field)

		for term := range query {
			fieldMap, ok := ix.postings[term][toolID]
			if !ok {
				continue
			}
			for field, tf := range fieldMap {
				if _, isAnchor := anchorSet[field]; isAnchor {
					anchorHit = true
				}
				score += float64(tf) * ix.fieldWeights[field] * ix.idf(term)
				if !containsField(contributions[term], field) {
					contributions[term] = append(contributions[term], field)
				}
			}
			if _, isComplete := p.CompleteTerms[term]; isComplete {
				matchedComplete++
			}
		}

		if p.RequireAnchor && !anchorHit {
			continue
		}
		if matchedComplete < required {
			continue
		}
		if score < p.MinScore {
			continue
		}

		results = append(results, Result{ToolID: toolID, Score: score, Contributions: contributions})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	if p.TopK > 0 && len(results) > p.TopK {
		results = results[:p.TopK]
	}
	return results
}

func containsField(fields []catalog.Field, f catalog.Field) bool {
	for _, existing := range fields {
		if existing == f {
			return true
		}
	}
	return false
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
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
