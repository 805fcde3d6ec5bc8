package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigRoundTripsThroughEngineConfig(t *testing.T) {
	cfg := DefaultConfig()
	ec := cfg.EngineConfig()
	require.NoError(t, ec.Validate())
	assert.ElementsMatch(t, []string{"pt", "en"}, ec.Locales)
}

func TestInitConfigCreatesDefaultFileWhenMissing(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "toolsuggest.toml")

	cfg, err := InitConfig(path)
	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, 3, cfg.Engine.TopK)

	loaded, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, cfg.Engine.TopK, loaded.Engine.TopK)
}

func TestUpdatePersistsChangedFields(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "toolsuggest.toml")
	cfg, err := InitConfig(path)
	require.NoError(t, err)

	newTopK := 7
	require.NoError(t, cfg.Update(path, &newTopK, nil, nil))

	loaded, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 7, loaded.Engine.TopK)
}

func TestValidateRejectsBadCombineStrategy(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Engine.CombineStrategy = "avg"
	assert.Error(t, cfg.Validate())
}
