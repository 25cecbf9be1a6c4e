package cli

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// RunFile is the optional YAML description of a run:
//
//	model: sprinkler
//	steps: 50
//	workers: 2
//	evidence:
//	  wet: "yes"
//
// Command-line flags override the file. An absent steps key means the
// model's default; steps: 0 runs no sweep and reports the priors.
type RunFile struct {
	Model    string            `yaml:"model"`
	Steps    *int              `yaml:"steps"`
	Workers  int               `yaml:"workers"`
	Evidence map[string]string `yaml:"evidence"`
}

// LoadRunFile reads and decodes a run file. Unknown keys are rejected.
func LoadRunFile(path string) (*RunFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open run file: %w", err)
	}
	defer f.Close()

	var rf RunFile
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&rf); err != nil {
		return nil, fmt.Errorf("decode run file %s: %w", path, err)
	}
	if rf.Steps != nil && *rf.Steps < 0 {
		return nil, fmt.Errorf("run file %s: steps must be >= 0", path)
	}
	if rf.Workers < 0 {
		return nil, fmt.Errorf("run file %s: workers must be >= 0", path)
	}

	return &rf, nil
}
