package tokenizer

import "strings"

// stopwordTable is the process-wide constant map from language code to its
// stopword set. Only Portuguese and English are pre-populated; the set is
// intentionally small and hand-picked for the connective/filler words that
// show up in typed tool requests rather than an exhaustive linguistic list.
var stopwordTable = map[string]map[string]struct{}{
	"pt": setOf(
		"a", "o", "os", "as", "de", "do", "da", "das", "dos",
		"pra", "para", "por", "que", "com", "e", "eu", "me", "meu",
		"minha", "meus", "minhas", "em", "um", "uma", "uns", "umas",
		"no", "na", "nos", "nas", "ao", "aos",
		"vou", "quero", "preciso", "gostaria", "desejo", "favor",
	),
	"en": setOf(
		"a", "an", "the", "to", "for", "with", "and", "or", "but",
		"i", "me", "my", "you", "want", "would", "like", "need",
		"please", "from", "on", "in", "at", "of",
	),
}

func setOf(words ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

// normalizeLocale reduces a locale string to its leading language code
// ("pt-BR" -> "pt").
func normalizeLocale(locale string) string {
	if locale == "" {
		return ""
	}
	if idx := strings.IndexByte(locale, '-'); idx >= 0 {
		locale = locale[:idx]
	}
	return strings.ToLower(locale)
}

// Stopwords returns the union of stopword sets for the given locales. A nil
// or empty slice defaults to Portuguese and English. Locale codes with no
// registered table contribute nothing.
func Stopwords(locales []string) map[string]struct{} {
	if len(locales) == 0 {
		locales = []string{"pt", "en"}
	}
	acc := make(map[string]struct{})
	for _, loc := range locales {
		bucket, ok := stopwordTable[normalizeLocale(loc)]
		if !ok {
			continue
		}
		for w := range bucket {
			acc[w] = struct{}{}
		}
	}
	return acc
}
