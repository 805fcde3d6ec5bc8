package catalog

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// catalogFile is the on-disk TOML shape: a flat list of [[tool]] tables.
type catalogFile struct {
	Tool []ToolSpec `toml:"tool"`
}

// LoadFile reads a catalog of tools from a TOML file shaped as a list of
// [[tool]] tables, one per ToolSpec.
func LoadFile(path string) ([]ToolSpec, error) {
	var file catalogFile
	if _, err := toml.DecodeFile(path, &file); err != nil {
		return nil, fmt.Errorf("catalog: failed to decode %s: %w", path, err)
	}
	return file.Tool, nil
}
