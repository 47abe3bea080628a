package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type fileDocument struct {
	Leagues []LeagueDefinition `yaml:"leagues"`
}

// LoadFile reads a YAML catalog of the form `leagues: [{id, name, description, teamsUrl, scoreboardUrl}]`.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes a YAML catalog document.
func Parse(data []byte) (*Catalog, error) {
	var doc fileDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("catalog: decode: %w", err)
	}
	if len(doc.Leagues) == 0 {
		return nil, fmt.Errorf("catalog: no leagues defined")
	}
	return New(doc.Leagues)
}
