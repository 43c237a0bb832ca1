package oas

import (
	"bytes"
	"encoding/json"
	"fmt"

	"go.yaml.in/yaml/v4"
)

// MarshalIndentJSON renders the document as indented JSON.
// encoding/json sorts map keys, so path output is deterministic.
func (d *Document) MarshalIndentJSON() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(d); err != nil {
		return nil, fmt.Errorf("oas: marshal json: %w", err)
	}
	return buf.Bytes(), nil
}

// MarshalIndentYAML renders the document as YAML.
func (d *Document) MarshalIndentYAML() ([]byte, error) {
	data, err := yaml.Marshal(d)
	if err != nil {
		return nil, fmt.Errorf("oas: marshal yaml: %w", err)
	}
	return data, nil
}

// Format selects an output encoding.
type Format string

const (
	// FormatJSON renders JSON.
	FormatJSON Format = "json"
	// FormatYAML renders YAML.
	FormatYAML Format = "yaml"
)

// Marshal renders the document in the requested format.
func (d *Document) Marshal(format Format) ([]byte, error) {
	switch format {
	case FormatJSON, "":
		return d.MarshalIndentJSON()
	case FormatYAML:
		return d.MarshalIndentYAML()
	default:
		return nil, fmt.Errorf("oas: unsupported format %q", format)
	}
}
