package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// FactRule asocia un patrón (regex sin anclar, sin distinguir mayúsculas) con una respuesta fija.
type FactRule struct {
	Pattern string `yaml:"pattern"`
	Reply   string `yaml:"reply"`
}

type factsFile struct {
	Facts []FactRule `yaml:"facts"`
}

// LoadFacts lee las reglas de datos fijos en el orden del archivo. Path vacío no es error.
func LoadFacts(path string) ([]FactRule, error) {
	if path == "" {
		return nil, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read facts file: %w", err)
	}
	return ParseFacts(raw)
}

func ParseFacts(raw []byte) ([]FactRule, error) {
	var f factsFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse facts file: %w", err)
	}
	for i, r := range f.Facts {
		if strings.TrimSpace(r.Pattern) == "" || strings.TrimSpace(r.Reply) == "" {
			return nil, fmt.Errorf("fact %d: pattern and reply are required", i)
		}
	}
	return f.Facts, nil
}
