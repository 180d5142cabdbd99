package policyfile

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Entry is one named policy string within a policy-set file.
type Entry struct {
	Name   string `yaml:"name"`
	Policy string `yaml:"policy"`
}

// File is a policy-set document: a collection of policy strings that share
// a pair of mode flags.
type File struct {
	// Local selects local-alignment defaults for every entry.
	Local bool `yaml:"local"`
	// NoisyHomopolymer selects relaxed gap defaults for every entry.
	NoisyHomopolymer bool `yaml:"noisy_homopolymer"`
	// Policies are the named policy strings to resolve.
	Policies []Entry `yaml:"policies"`
}

// Load reads and decodes a policy-set file. Unknown YAML fields are
// rejected so typos in the flag names surface instead of silently picking
// the wrong defaults.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read policy-set file: %w", err)
	}
	return Parse(data, path)
}

// Parse decodes a policy-set document from bytes. sourcePath is used in
// error messages only.
func Parse(data []byte, sourcePath string) (*File, error) {
	var f File
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&f); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", sourcePath, err)
	}

	if len(f.Policies) == 0 {
		return nil, fmt.Errorf("%s defines no policies", sourcePath)
	}
	seen := make(map[string]bool, len(f.Policies))
	for i, entry := range f.Policies {
		if entry.Name == "" {
			return nil, fmt.Errorf("%s: policy at index %d has no name", sourcePath, i)
		}
		if seen[entry.Name] {
			return nil, fmt.Errorf("%s: duplicate policy name %q", sourcePath, entry.Name)
		}
		seen[entry.Name] = true
	}

	return &f, nil
}
