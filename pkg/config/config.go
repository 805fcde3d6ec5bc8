/*
Package config manages TOML config for toolsuggest services.

InitConfig handles automatic config file creation and loading with fallback
to defaults. LoadConfig and SaveConfig provide direct fs access for runtime
changes. Update allows targeted parameter changes with persistence.
*/
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/bastiangx/toolsuggest/internal/utils"
	"github.com/bastiangx/toolsuggest/pkg/catalog"
	"github.com/bastiangx/toolsuggest/pkg/suggest"
)

// Config holds the entire config structure.
type Config struct {
	Engine EngineConfig `toml:"engine"`
	Server ServerConfig `toml:"server"`
	CLI    CliConfig    `toml:"cli"`
}

// EngineConfig mirrors suggest.Config 1:1. Comma-separated fields store
// the engine's slice-typed parameters in TOML-friendly scalar form.
type EngineConfig struct {
	Locales             string  `toml:"locales"`
	TopK                int     `toml:"top_k"`
	MinScore            float64 `toml:"min_score"`
	RequireAnchor       bool    `toml:"require_anchor"`
	AnchorFields        string  `toml:"anchor_fields"`
	Alpha               float64 `toml:"alpha"`
	AnchorAlpha         float64 `toml:"anchor_alpha"`
	WindowRadius        int     `toml:"window_radius"`
	DropStopwords       bool    `toml:"drop_stopwords"`
	MaxIntents          int     `toml:"max_intents"`
	IntentSeparatorToks string  `toml:"intent_separator_tokens"`
	CombineStrategy     string  `toml:"combine_strategy"`
	MultiIntentBonus    float64 `toml:"multi_intent_bonus"`
}

// ServerConfig has msgpack IPC server related options.
type ServerConfig struct {
	SocketPath string `toml:"socket_path"`
}

// CliConfig holds cli interface options.
type CliConfig struct {
	DefaultSessionID string `toml:"default_session_id"`
}

// DefaultConfig returns a Config with default values, sourced from
// suggest.DefaultConfig.
func DefaultConfig() *Config {
	return &Config{
		Engine: fromEngineConfig(suggest.DefaultConfig()),
		Server: ServerConfig{
			SocketPath: "",
		},
		CLI: CliConfig{
			DefaultSessionID: "repl",
		},
	}
}

// InitConfig loads config from file or creates default if missing.
func InitConfig(configPath string) (*Config, error) {
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return nil, err
	}
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		cfg := DefaultConfig()
		if err := SaveConfig(cfg, configPath); err != nil {
			return nil, err
		}
		log.Debugf("created default config file at: ( %s )", configPath)
		return cfg, nil
	}
	cfg, err := LoadConfig(configPath)
	if err != nil {
		log.Warnf("failed to load config, using defaults: %v", err)
		return DefaultConfig(), nil
	}
	return cfg, nil
}

// LoadConfig loads from a TOML file. If decoding into Config fails but the
// file still parses as generic TOML, it recovers engine.top_k and
// engine.require_anchor from it; no other field is recovered.
func LoadConfig(configPath string) (*Config, error) {
	var cfg Config
	if err := utils.LoadTOMLFile(configPath, &cfg); err != nil {
		if recovered, recErr := utils.ParseTOMLWithRecovery(configPath); recErr == nil {
			if engineSection, ok := utils.ExtractSection(recovered, "engine"); ok {
				if topK, ok := utils.ExtractInt64(engineSection, "top_k"); ok {
					cfg.Engine.TopK = topK
				}
				if requireAnchor, ok := utils.ExtractBool(engineSection, "require_anchor"); ok {
					cfg.Engine.RequireAnchor = requireAnchor
				}
			}
			return &cfg, nil
		}
		return nil, err
	}
	return &cfg, nil
}

// SaveConfig saves into a TOML file.
func SaveConfig(cfg *Config, configPath string) error {
	return utils.SaveTOMLFile(cfg, configPath)
}

// Update changes engine config values and saves to file. Nil parameters are
// left unchanged.
func (c *Config) Update(configPath string, topK *int, minScore *float64, combineStrategy *string) error {
	if topK != nil {
		c.Engine.TopK = *topK
	}
	if minScore != nil {
		c.Engine.MinScore = *minScore
	}
	if combineStrategy != nil {
		c.Engine.CombineStrategy = *combineStrategy
	}
	return SaveConfig(c, configPath)
}

// EngineConfig converts the TOML-shaped config into a suggest.Config the
// engine can be constructed from.
func (c *Config) EngineConfig() suggest.Config {
	return suggest.Config{
		Locales:             splitCSV(c.Engine.Locales),
		TopK:                c.Engine.TopK,
		MinScore:            c.Engine.MinScore,
		RequireAnchor:       c.Engine.RequireAnchor,
		AnchorFields:        splitFields(c.Engine.AnchorFields),
		Alpha:               c.Engine.Alpha,
		AnchorAlpha:         c.Engine.AnchorAlpha,
		WindowRadius:        c.Engine.WindowRadius,
		DropStopwords:       c.Engine.DropStopwords,
		MaxIntents:          c.Engine.MaxIntents,
		IntentSeparatorToks: splitCSV(c.Engine.IntentSeparatorToks),
		CombineStrategy:     suggest.CombineStrategy(c.Engine.CombineStrategy),
		MultiIntentBonus:    c.Engine.MultiIntentBonus,
	}
}

func fromEngineConfig(ec suggest.Config) EngineConfig {
	fields := make([]string, len(ec.AnchorFields))
	for i, f := range ec.AnchorFields {
		fields[i] = string(f)
	}
	return EngineConfig{
		Locales:             strings.Join(ec.Locales, ","),
		TopK:                ec.TopK,
		MinScore:            ec.MinScore,
		RequireAnchor:       ec.RequireAnchor,
		AnchorFields:        strings.Join(fields, ","),
		Alpha:               ec.Alpha,
		AnchorAlpha:         ec.AnchorAlpha,
		WindowRadius:        ec.WindowRadius,
		DropStopwords:       ec.DropStopwords,
		MaxIntents:          ec.MaxIntents,
		IntentSeparatorToks: strings.Join(ec.IntentSeparatorToks, ","),
		CombineStrategy:     string(ec.CombineStrategy),
		MultiIntentBonus:    ec.MultiIntentBonus,
	}
}

func splitCSV(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func splitFields(s string) []catalog.Field {
	raw := splitCSV(s)
	out := make([]catalog.Field, len(raw))
	for i, r := range raw {
		out[i] = catalog.Field(r)
	}
	return out
}

// Validate checks the engine section against suggest.Config's invariants
// without mutating c, surfacing a config-file error before NewEngine would.
func (c *Config) Validate() error {
	ec := c.EngineConfig()
	if err := ec.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}
