package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Marshal encodes cfg as YAML. Preset text is written double-quoted so
// leading and trailing blank lines survive a reload exactly; block scalars
// with keep chomping do not.
func Marshal(cfg *Config) ([]byte, error) {
	var doc yaml.Node
	if err := doc.Encode(cfg); err != nil {
		return nil, fmt.Errorf("encoding config: %w", err)
	}

	if preset := mappingValue(&doc, "preset"); preset != nil {
		for i := 1; i < len(preset.Content); i += 2 {
			if v := preset.Content[i]; v.Kind == yaml.ScalarNode {
				v.Style = yaml.DoubleQuotedStyle
			}
		}
	}

	out, err := yaml.Marshal(&doc)
	if err != nil {
		return nil, fmt.Errorf("encoding config: %w", err)
	}
	return out, nil
}

// mappingValue returns the value node stored under key in a mapping node.
func mappingValue(m *yaml.Node, key string) *yaml.Node {
	if m.Kind == yaml.DocumentNode && len(m.Content) > 0 {
		m = m.Content[0]
	}
	if m.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(m.Content); i += 2 {
		if m.Content[i].Value == key {
			return m.Content[i+1]
		}
	}
	return nil
}
