package dataset

import (
	"encoding/json"
	"fmt"
	"os"
)

// PersonalDataset is the static factual grounding injected into every system
// prompt. It is loaded once at startup and never mutated afterwards.
type PersonalDataset struct {
	raw  map[string]any
	text string
}

// Load reads the dataset document from disk. A missing or malformed file is a
// fatal startup condition for the caller: the service must not answer without
// grounding data.
func Load(path string) (*PersonalDataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read personal data: %w", err)
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse personal data: %w", err)
	}

	pretty, err := json.MarshalIndent(raw, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("format personal data: %w", err)
	}

	return &PersonalDataset{raw: raw, text: string(pretty)}, nil
}

// Text returns the dataset rendered as indented JSON, ready for prompt
// embedding.
func (d *PersonalDataset) Text() string {
	return d.text
}

// FromMap builds a dataset from an in-memory document. Used by tests.
func FromMap(raw map[string]any) (*PersonalDataset, error) {
	pretty, err := json.MarshalIndent(raw, "", "  ")
	if err != nil {
		return nil, err
	}
	return &PersonalDataset{raw: raw, text: string(pretty)}, nil
}
