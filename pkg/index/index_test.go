package index

import (
	"testing"

	"github.com/bastiangx/toolsuggest/pkg/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sset(items ...string) map[string]struct{} {
	out := make(map[string]struct{}, len(items))
	for _, i := range items {
		out[i] = struct{}{}
	}
	return out
}

func TestAddToolPostingsSumToOccurrences(t *testing.T) {
	ix := New(nil)
	ix.AddTool("export_csv", map[catalog.Field][]string{
		catalog.FieldKeywords: {"exportar", "csv", "exportar"},
		catalog.FieldName:     {"export", "csv"},
	})

	occurrences := map[string]int{"exportar": 2, "csv": 2, "export": 1}
	for term, want := range occurrences {
		sum := 0
		for _, tf := range ix.postings[term]["export_csv"] {
			sum += int(tf)
		}
		assert.Equal(t, want, sum, "term %q", term)
	}
}

func TestDFCountsDistinctTools(t *testing.T) {
	ix := New(nil)
	ix.AddTool("a", map[catalog.Field][]string{catalog.FieldKeywords: {"csv"}})
	ix.AddTool("b", map[catalog.Field][]string{catalog.FieldKeywords: {"csv", "csv"}})
	assert.Equal(t, 2, ix.df["csv"])
}

func TestDFNeverExceedsN(t *testing.T) {
	ix := New(nil)
	for i := 0; i < 5; i++ {
		ix.AddTool(string(rune('a'+i)), map[catalog.Field][]string{catalog.FieldKeywords: {"csv"}})
	}
	assert.LessOrEqual(t, ix.df["csv"], len(ix.tools))
}

func TestQueryDescriptionOnlyNeverSuffices(t *testing.T) {
	ix := New(nil)
	ix.AddTool("export_csv", map[catalog.Field][]string{
		catalog.FieldDescription: {"exporta", "dados", "para", "csv"},
	})

	results := ix.Query(QueryParams{
		QueryTerms:    sset("dados"),
		CompleteTerms: sset("dados"),
		RequireAnchor: true,
		AnchorFields:  catalog.AnchorFields,
		MinScore:      1.0,
		TopK:          3,
	})
	assert.Empty(t, results)
}

func TestQueryRequiresAnchorField(t *testing.T) {
	ix := New(nil)
	ix.AddTool("export_csv", map[catalog.Field][]string{
		catalog.FieldKeywords: {"exportar", "csv"},
	})
	results := ix.Query(QueryParams{
		QueryTerms:    sset("exportar"),
		CompleteTerms: sset("exportar"),
		RequireAnchor: true,
		AnchorFields:  catalog.AnchorFields,
		MinScore:      0,
		TopK:          3,
	})
	require.Len(t, results, 1)
	assert.Equal(t, "export_csv", results[0].ToolID)
}

func TestQuerySortedDescending(t *testing.T) {
	ix := New(nil)
	ix.AddTool("low", map[catalog.Field][]string{catalog.FieldKeywords: {"csv"}})
	ix.AddTool("high", map[catalog.Field][]string{catalog.FieldKeywords: {"csv", "csv", "csv"}})

	results := ix.Query(QueryParams{
		QueryTerms:    sset("csv"),
		CompleteTerms: sset("csv"),
		RequireAnchor: true,
		AnchorFields:  catalog.AnchorFields,
		MinScore:      0,
		TopK:          5,
	})
	require.Len(t, results, 2)
	assert.Equal(t, "high", results[0].ToolID)
	assert.GreaterOrEqual(t, results[0].Score, results[1].Score)
}

func TestQueryEmptyTermsReturnsEmpty(t *testing.T) {
	ix := New(nil)
	ix.AddTool("a", map[catalog.Field][]string{catalog.FieldKeywords: {"csv"}})
	results := ix.Query(QueryParams{RequireAnchor: true, AnchorFields: catalog.AnchorFields})
	assert.Empty(t, results)
}
