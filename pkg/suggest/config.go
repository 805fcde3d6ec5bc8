package suggest

import (
	"fmt"

	"github.com/bastiangx/toolsuggest/pkg/catalog"
)

// CombineStrategy selects how per-window scores are fused for a tool that
// appears in more than one intent window.
type CombineStrategy string

const (
	CombineMax CombineStrategy = "max"
	CombineSum CombineStrategy = "sum"
)

// DefaultIntentSeparators is the default set of normalized connective
// tokens that split an utterance into segments.
var DefaultIntentSeparators = []string{
	"e", "depois", "entao", "tambem", "and", "then", "after", "also",
}

// Config holds every tunable parameter of the suggestion engine, all with
// the defaults spec.md section 4.4 specifies.
type Config struct {
	Locales             []string
	TopK                int
	MinScore            float64
	RequireAnchor       bool
	AnchorFields        []catalog.Field
	Alpha               float64
	AnchorAlpha         float64
	WindowRadius        int
	DropStopwords       bool
	MaxIntents          int
	IntentSeparatorToks []string
	CombineStrategy     CombineStrategy
	MultiIntentBonus    float64
}

// DefaultConfig returns a Config populated with spec.md's defaults.
func DefaultConfig() Config {
	return Config{
		Locales:             []string{"pt", "en"},
		TopK:                3,
		MinScore:            1.0,
		RequireAnchor:       true,
		AnchorFields:        append([]catalog.Field(nil), catalog.AnchorFields...),
		Alpha:               0.6,
		AnchorAlpha:         0.5,
		WindowRadius:        3,
		DropStopwords:       true,
		MaxIntents:          1,
		IntentSeparatorToks: append([]string(nil), DefaultIntentSeparators...),
		CombineStrategy:     CombineMax,
		MultiIntentBonus:    0.0,
	}
}

// ConfigError reports an invalid construction/configuration parameter. It
// is the only error kind the engine's construction path can return; every
// runtime query path instead returns an empty result (see spec.md
// section 7).
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("suggest: invalid config field %s: %s", e.Field, e.Reason)
}

// Validate checks Config invariants per spec.md section 6: top_k must be
// in [1, 20], max_intents in [1, 10], min_score >= 0, and combine_strategy
// must be "max" or "sum". Callers are expected to start from DefaultConfig
// and override individual fields rather than build a zero-value Config.
// Unset slice fields (Locales, AnchorFields, IntentSeparatorToks) fall back
// to their documented defaults.
func (c *Config) Validate() error {
	if c.CombineStrategy == "" {
		c.CombineStrategy = CombineMax
	}
	if c.CombineStrategy != CombineMax && c.CombineStrategy != CombineSum {
		return &ConfigError{Field: "combine_strategy", Reason: fmt.Sprintf("must be %q or %q, got %q", CombineMax, CombineSum, c.CombineStrategy)}
	}
	if c.TopK < 1 || c.TopK > 20 {
		return &ConfigError{Field: "top_k", Reason: "must be in [1, 20]"}
	}
	if c.MaxIntents < 1 || c.MaxIntents > 10 {
		return &ConfigError{Field: "max_intents", Reason: "must be in [1, 10]"}
	}
	if c.MinScore < 0 {
		return &ConfigError{Field: "min_score", Reason: "must be >= 0"}
	}
	if c.WindowRadius < 0 {
		c.WindowRadius = 0
	}
	if len(c.Locales) == 0 {
		c.Locales = []string{"pt", "en"}
	}
	if len(c.AnchorFields) == 0 {
		c.AnchorFields = append([]catalog.Field(nil), catalog.AnchorFields...)
	}
	if len(c.IntentSeparatorToks) == 0 {
		c.IntentSeparatorToks = append([]string(nil), DefaultIntentSeparators...)
	}
	return nil
}
