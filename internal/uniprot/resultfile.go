// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package uniprot

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/dictionary-uniprot/pkg/types"
)

// ResultFile is the on-disk record of one dictionary call and its results,
// so a lookup can be inspected or shared without repeating it.
type ResultFile struct {
	Operation string        `yaml:"operation"`
	Query     string        `yaml:"query,omitempty"`
	Options   types.Options `yaml:"options"`
	Items     []types.Entry `yaml:"items"`
	Summary   ResultSummary `yaml:"summary"`
}

// ResultSummary stores the item count and a timestamp.
type ResultSummary struct {
	Total     int       `yaml:"total"`
	Timestamp time.Time `yaml:"timestamp"`
}

// WriteResultFile saves the call and its results to a YAML file.
func WriteResultFile(path, operation, query string, opts types.Options, res types.Result) error {
	rf := ResultFile{
		Operation: operation,
		Query:     query,
		Options:   opts,
		Items:     res.Items,
		Summary: ResultSummary{
			Total:     len(res.Items),
			Timestamp: time.Now(),
		},
	}

	data, err := yaml.Marshal(&rf)
	if err != nil {
		return fmt.Errorf("marshaling result file: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// ReadResultFile loads a previously saved result file.
func ReadResultFile(path string) (*ResultFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading result file: %w", err)
	}
	var rf ResultFile
	if err := yaml.Unmarshal(data, &rf); err != nil {
		return nil, fmt.Errorf("parsing result file: %w", err)
	}
	return &rf, nil
}

// Result returns the saved items as a Result.
func (rf *ResultFile) Result() types.Result {
	items := rf.Items
	if items == nil {
		items = []types.Entry{}
	}
	return types.Result{Items: items}
}
