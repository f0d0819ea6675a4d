package factorset

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Document is the YAML form of a factor set.
type Document struct {
	Columns []ColumnSpec `yaml:"columns"`
	Factors []FactorSpec `yaml:"factors"`
	Filters []FilterSpec `yaml:"filters"`
}

// ColumnSpec declares a loadable input. DType defaults to float64; bool
// columns are filters.
type ColumnSpec struct {
	Name   string `yaml:"name"`
	DType  string `yaml:"dtype,omitempty"`
	Domain string `yaml:"domain,omitempty"`
}

// FactorSpec declares one numeric term. Exactly one of Op, Func and Rank is set.
type FactorSpec struct {
	Name   string `yaml:"name"`
	Op     string `yaml:"op,omitempty"`
	Func   string `yaml:"func,omitempty"`
	Args   []any  `yaml:"args,omitempty"`
	Rank   string `yaml:"rank,omitempty"`
	Method string `yaml:"method,omitempty"`
}

// FilterSpec declares one boolean term: a comparison (Op + Args) or a
// percentile band.
type FilterSpec struct {
	Name              string          `yaml:"name"`
	Op                string          `yaml:"op,omitempty"`
	Args              []any           `yaml:"args,omitempty"`
	PercentileBetween *PercentileSpec `yaml:"percentile_between,omitempty"`
}

// PercentileSpec is the argument of a percentile_between filter.
type PercentileSpec struct {
	Factor string  `yaml:"factor"`
	Min    float64 `yaml:"min"`
	Max    float64 `yaml:"max"`
}

// Load decodes a document. Unknown fields are rejected.
func Load(r io.Reader) (*Document, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		if err == io.EOF {
			return &doc, nil
		}
		return nil, fmt.Errorf("failed to parse factor set: %w", err)
	}

	return &doc, nil
}

// LoadFile reads and decodes the document at path.
func LoadFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read factor set: %w", err)
	}

	return Load(bytes.NewReader(data))
}

// Marshal encodes doc back to YAML.
func Marshal(doc *Document) ([]byte, error) {
	return yaml.Marshal(doc)
}
