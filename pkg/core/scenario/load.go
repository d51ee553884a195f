package scenario

import (
	"encoding/json"
	"fmt"
	"os"

	jsonrepair "github.com/RealAlexandreAI/json-repair"
	hjson "github.com/hjson/hjson-go/v4"
)

// Parse decodes a scenario document, tolerating hand-edited files. Strategies
// in order: standard JSON, automatic repair of common JSON mistakes, then
// Hjson (comments, unquoted keys, optional commas).
func Parse(data []byte) (*Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err == nil {
		return &doc, nil
	}

	if repaired, err := jsonrepair.RepairJSON(string(data)); err == nil {
		doc = Document{}
		if err := json.Unmarshal([]byte(repaired), &doc); err == nil {
			return &doc, nil
		}
	}

	doc = Document{}
	if err := hjson.Unmarshal(data, &doc); err == nil {
		return &doc, nil
	}

	return nil, fmt.Errorf("scenario file is not valid JSON or Hjson")
}

// LoadFile reads and parses a scenario file.
func LoadFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}
	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return doc, nil
}

// SaveFile writes the document as indented JSON.
func SaveFile(path string, doc *Document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal scenario: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write scenario file: %w", err)
	}
	return nil
}
