// Package catalog defines the input and output record types shared by the
// tokenizer, trie, inverted index, and suggestion engine.
package catalog

// Field identifies one of the closed set of ToolSpec fields the inverted
// index tracks postings for. The first three are anchor fields.
type Field string

const (
	FieldName        Field = "name"
	FieldKeywords    Field = "keywords"
	FieldAliases     Field = "aliases"
	FieldDescription Field = "description"
)

// AnchorFields is the default set of fields whose matches count toward the
// anchor requirement that gates a suggestion.
var AnchorFields = []Field{FieldName, FieldKeywords, FieldAliases}

// ToolSpec is a catalog entry as ingested by the engine. Name is required;
// every other field is optional and silently tolerated when empty.
type ToolSpec struct {
	Name        string   `toml:"name"`
	Description string   `toml:"description"`
	Keywords    []string `toml:"keywords"`
	Aliases     []string `toml:"aliases"`
	Locales     []string `toml:"locales"`
	Tags        []string `toml:"tags"`
}

// SuggestionKind distinguishes the provenance of a Suggestion. The engine
// only ever emits KindTool today; the type exists so a caller can later
// tell tool-catalog suggestions apart from some other source without a
// breaking change to the Suggestion shape.
type SuggestionKind string

// KindTool is the only kind this engine currently emits.
const KindTool SuggestionKind = "tool"

// Suggestion is a single ranked catalog match returned to the caller.
type Suggestion struct {
	ID                 string
	Kind               SuggestionKind
	Score              float64
	Label              string
	Reason             string
	ArgumentsTemplate  map[string]any
	Metadata           Metadata
}

// Metadata carries tag pass-through metadata on a Suggestion.
type Metadata struct {
	Tags []string
}
