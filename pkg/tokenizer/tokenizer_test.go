package tokenizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeIdempotent(t *testing.T) {
	cases := []string{
		"Café  Exportação",
		"  multiple   spaces  ",
		"São Paulo",
		"already lowercase",
		"",
	}
	for _, c := range cases {
		once := Normalize(c)
		twice := Normalize(once)
		assert.Equal(t, once, twice, "normalize should be idempotent for %q", c)
	}
}

func TestNormalizeStripsDiacritics(t *testing.T) {
	assert.Equal(t, "exportacao", Normalize("Exportação"))
	assert.Equal(t, "sao paulo", Normalize("São Paulo"))
}

func TestTokensWithSpansNonOverlapping(t *testing.T) {
	toks := TokensWithSpans("quero  exportar   dados para CSV", Options{RemoveNoise: true})
	require.NotEmpty(t, toks)
	prevEnd := 0
	for _, tok := range toks {
		assert.GreaterOrEqual(t, tok.Span.Start, prevEnd)
		assert.Less(t, tok.Span.Start, tok.Span.End)
		prevEnd = tok.Span.End
	}
}

func TestNoiseFilter(t *testing.T) {
	assert.Empty(t, Tokens("123 0000 !!!!", Options{RemoveNoise: true}))
	assert.Equal(t, []string{"s3", "bucket"}, Tokens("s3 bucket 0000", Options{RemoveNoise: true}))
}

func TestStopwordDrop(t *testing.T) {
	toks := Tokens("eu quero exportar os dados", Options{
		DropStopwords: true,
		Locales:       []string{"pt"},
		RemoveNoise:   true,
	})
	assert.Equal(t, []string{"exportar", "dados"}, toks)
}

func TestEmptyInput(t *testing.T) {
	assert.Empty(t, TokensWithSpans("", Options{RemoveNoise: true}))
}

func TestStopwordsUnknownLocale(t *testing.T) {
	assert.Empty(t, Stopwords([]string{"xx"}))
}

func TestStopwordsDefaultLocales(t *testing.T) {
	set := Stopwords(nil)
	_, hasPT := set["que"]
	_, hasEN := set["the"]
	assert.True(t, hasPT)
	assert.True(t, hasEN)
}
