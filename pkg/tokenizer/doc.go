/*
Package tokenizer implements Unicode-aware normalization and tokenization for
the lexical tool-suggestion engine.

# Normalization

Normalize casefolds, applies NFKD compatibility decomposition, strips
combining marks (diacritics), collapses whitespace runs, and trims. It is a
pure function and never fails:

	tokenizer.Normalize("Café  Exportação") // "cafe exportacao"

Diacritic stripping uses golang.org/x/text/unicode/norm together with
golang.org/x/text/runes and golang.org/x/text/transform, the same
combination the wider ecosystem reaches for instead of hand-rolled rune
tables.

# Tokens

TokensWithSpans extracts maximal word-character runs (Unicode letters,
digits, and underscore) from the normalized text and reports each token's
(start, end) span in that normalized string. Spans never overlap and are
monotonically increasing. Noise filtering drops all-digit tokens, lone
non-alphabetic characters, and runs of four or more repeated characters
(e.g. "0000", "!!!!"). Stopword filtering drops tokens found in the
configured locales' stopword sets plus any caller-supplied extras.

# Stopwords

Stopwords is a process-wide constant table keyed by a two-letter language
code (the part of a locale before any "-" region suffix, lowercased).
Portuguese and English are pre-populated; unknown locale codes contribute
nothing.
*/
package tokenizer
