package suite

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultPath is where WriteDefault puts the starter file when no path is
// given.
const DefaultPath = "rex-suites.yaml"

// WriteDefault creates a starter suite file demonstrating both a built-in
// pattern and a raw regex.
func WriteDefault(path string) error {
	if path == "" {
		path = DefaultPath
	}

	cfg := Config{
		Name: "example",
		Suites: []Suite{
			{
				Name:    "dna-reads",
				Pattern: "dna",
				Cases: map[string]bool{
					"ACGTACGT": true,
					"hello":    false,
				},
			},
			{
				Name:  "three-digits",
				Regex: `[0-9]{3}`,
				Cases: map[string]bool{
					"abc123": true,
					"ab12":   false,
				},
			},
		},
	}

	d, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := f.Write(d); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	return nil
}
