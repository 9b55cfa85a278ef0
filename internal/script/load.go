package script

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v2"
)

// Step is one command invocation in a script.
type Step struct {
	Cmd  string   `yaml:"cmd"`
	Args []string `yaml:"args"`
	Line int      `yaml:"-"` // source line, text scripts only
}

// String formats the step the way it would appear in a text script.
func (s Step) String() string {
	return strings.TrimSpace(s.Cmd + " " + strings.Join(s.Args, " "))
}

// document is the YAML script layout.
type document struct {
	Steps []Step `yaml:"steps"`
}

// LoadFile reads a script, choosing YAML or text by extension.
func LoadFile(path string) ([]Step, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open script: %w", err)
	}
	defer func() { _ = file.Close() }()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return LoadYAML(file)
	default:
		return LoadText(file)
	}
}

// LoadText parses a text script.
func LoadText(r io.Reader) ([]Step, error) {
	var steps []Step
	scanner := bufio.NewScanner(r)
	n := 0
	for scanner.Scan() {
		n++
		line := scanner.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		steps = append(steps, Step{Cmd: fields[0], Args: fields[1:], Line: n})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read script: %w", err)
	}
	return steps, nil
}

// LoadYAML parses a YAML script.
func LoadYAML(r io.Reader) ([]Step, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read script: %w", err)
	}

	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse YAML script: %w", err)
	}

	for i, step := range doc.Steps {
		if step.Cmd == "" {
			return nil, fmt.Errorf("step %d: missing cmd", i+1)
		}
	}
	return doc.Steps, nil
}
