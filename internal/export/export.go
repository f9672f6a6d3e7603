// Package export serializes fetched collections to JSON or YAML for use
// outside the dashboard.
package export

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Format selects the output encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat maps a user-supplied string to a Format. Unknown values
// return an error listing the accepted encodings.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json", "":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unknown format %q (accepted: json, yaml)", s)
	}
}

// Document wraps an exported collection with provenance metadata.
type Document struct {
	Entity     string    `json:"entity" yaml:"entity"`
	ExportedAt time.Time `json:"exported_at" yaml:"exported_at"`
	Count      int       `json:"count" yaml:"count"`
	Items      any       `json:"items" yaml:"items"`
}

// Write encodes items for the named entity to w in the given format.
func Write[T any](w io.Writer, format Format, entity string, items []T) error {
	doc := Document{
		Entity:     entity,
		ExportedAt: time.Now().UTC().Truncate(time.Second),
		Count:      len(items),
		Items:      items,
	}

	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("flush yaml: %w", err)
		}
	default:
		return fmt.Errorf("unknown format %q", format)
	}

	return nil
}
