package trie

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrefixTermsFindsAllPrefixesOfInsertedTerm(t *testing.T) {
	tr := New()
	tr.Insert("exportar")

	for i := 1; i <= len("exportar"); i++ {
		prefix := "exportar"[:i]
		got := tr.PrefixTerms(prefix, 0)
		assert.Contains(t, got, "exportar", "prefix %q should discover the term", prefix)
	}
}

func TestPrefixTermsMissingBranch(t *testing.T) {
	tr := New()
	tr.Insert("exportar")
	assert.Empty(t, tr.PrefixTerms("zzz", 0))
}

func TestPrefixTermsLimit(t *testing.T) {
	tr := New()
	for _, term := range []string{"export_a", "export_b", "export_c", "export_d"} {
		tr.Insert(term)
	}
	got := tr.PrefixTerms("export", 2)
	assert.Len(t, got, 2)
}

func TestPrefixTermsExactMatchIncluded(t *testing.T) {
	tr := New()
	tr.Insert("csv")
	tr.Insert("csvfile")
	got := tr.PrefixTerms("csv", 0)
	sort.Strings(got)
	assert.Equal(t, []string{"csv", "csvfile"}, got)
}

func TestInsertEmptyTermIsNoop(t *testing.T) {
	tr := New()
	tr.Insert("")
	assert.Empty(t, tr.PrefixTerms("", 0))
}
