package scenario

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/renato0307/hackcheck/internal/domain"
)

// Expected exit status of a case
const (
	ExpectAny     = "any"
	ExpectFailure = "failure"
	ExpectSuccess = "success"
)

// Scenario is a named group of cases read from a YAML file.
type Scenario struct {
	// Name identifies the scenario in reports.
	Name string `yaml:"name"`

	// Cases run independently and in parallel.
	Cases []Case `yaml:"cases"`
}

// Case is one invocation of the tool under test and its expectations.
type Case struct {
	Name    string   `yaml:"name"`
	Fixture string   `yaml:"fixture"`
	Args    []string `yaml:"args"`

	// Require is the minimum toolchain minor version; 0 means none.
	Require uint32 `yaml:"require,omitempty"`

	// Expect is success, failure or any. Empty means success.
	Expect string `yaml:"expect,omitempty"`

	// Pattern blocks, one substring per non-blank line.
	StdoutContains    string `yaml:"stdout_contains,omitempty"`
	StdoutNotContains string `yaml:"stdout_not_contains,omitempty"`
	StderrContains    string `yaml:"stderr_contains,omitempty"`
	StderrNotContains string `yaml:"stderr_not_contains,omitempty"`
}

// Load reads and validates a scenario file. Unknown fields are rejected.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates scenario YAML.
func Parse(data []byte) (*Scenario, error) {
	var s Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&s); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	for i := range s.Cases {
		if s.Cases[i].Expect == "" {
			s.Cases[i].Expect = ExpectSuccess
		}
	}

	if err := validate(&s); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}
	return &s, nil
}

func validate(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}
	if len(s.Cases) == 0 {
		return fmt.Errorf("cases list is required and must be non-empty")
	}

	seen := make(map[string]bool, len(s.Cases))
	for i, c := range s.Cases {
		if c.Name == "" {
			return fmt.Errorf("cases[%d]: name is required", i)
		}
		if seen[c.Name] {
			return fmt.Errorf("cases[%d]: duplicate name %q", i, c.Name)
		}
		seen[c.Name] = true

		if _, err := domain.ParseFixtureModel(c.Fixture); err != nil {
			return fmt.Errorf("cases[%d] %s: %w", i, c.Name, err)
		}

		switch c.Expect {
		case ExpectAny, ExpectFailure, ExpectSuccess:
		default:
			return fmt.Errorf("cases[%d] %s: expect must be success, failure or any, got %q", i, c.Name, c.Expect)
		}
	}
	return nil
}
