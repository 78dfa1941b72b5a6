package manifest

import (
	"fmt"
	"io"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/harrison/cstexports/internal/models"
)

// YAMLParser parses YAML manifests:
//
//	project: coil
//	exports:
//	  - {field: e-field, frequency: "447", label: AC, index: "1"}
//	sweep:
//	  - {field: h-field, frequency: "447", label: AC, from: 1, to: 4}
//
// Sweep entries expand to one export per index in [from, to] and are
// appended after the explicit exports.
type YAMLParser struct{}

// NewYAMLParser creates a YAML manifest parser
func NewYAMLParser() *YAMLParser {
	return &YAMLParser{}
}

type yamlManifest struct {
	Project string               `yaml:"project"`
	Exports []models.FieldExport `yaml:"exports"`
	Sweep   []yamlSweep          `yaml:"sweep"`
}

type yamlSweep struct {
	Field     string `yaml:"field"`
	Frequency string `yaml:"frequency"`
	Label     string `yaml:"label"`
	From      int    `yaml:"from"`
	To        int    `yaml:"to"`
}

// Parse reads a YAML manifest from r
func (p *YAMLParser) Parse(r io.Reader) (*Manifest, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read content: %w", err)
	}

	var ym yamlManifest
	if err := yaml.Unmarshal(data, &ym); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	m := &Manifest{
		Project: ym.Project,
		Exports: append([]models.FieldExport(nil), ym.Exports...),
	}

	for i, s := range ym.Sweep {
		if s.To < s.From {
			return nil, fmt.Errorf("sweep %d: to (%d) is less than from (%d)", i+1, s.To, s.From)
		}
		for idx := s.From; idx <= s.To; idx++ {
			m.Exports = append(m.Exports, models.FieldExport{
				Field:     s.Field,
				Frequency: s.Frequency,
				Label:     s.Label,
				Index:     strconv.Itoa(idx),
			})
		}
	}

	return m, nil
}
