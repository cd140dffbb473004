package profile

import (
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
)

// ParseTOML decodes a Profiles.toml document and builds its table.
func ParseTOML(data []byte) (*Table, error) {
	var doc map[string]any
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(err, "error decoding TOML")
	}
	return NewTable(doc)
}

// LoadFile reads and parses the Profiles.toml at path.
func LoadFile(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %s", path)
	}

	table, err := ParseTOML(data)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load %s", path)
	}
	return table, nil
}
