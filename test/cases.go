// Package test runs end to end GraphQL scenarios described in YAML files.
package test

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/nasdf/blogql/graphql"

	"gopkg.in/yaml.v3"
)

//go:embed cases/*.yaml
var casesFS embed.FS

// TestCase is a sequence of operations run against one fresh store.
type TestCase struct {
	// Name is the file name of the case without its extension.
	Name string `yaml:"-"`
	// Description is a simple description for the test case.
	Description string `yaml:"description"`
	// Seed loads the demo data before running any operations.
	Seed bool `yaml:"seed"`
	// Operations run in order and share the store.
	Operations []Operation `yaml:"operations"`
}

// Operation is a single request and the JSON response it must produce.
type Operation struct {
	Params   graphql.QueryParams `yaml:"params"`
	Response string              `yaml:"response"`
}

// LoadTestCases parses every embedded test case in file name order.
func LoadTestCases() ([]*TestCase, error) {
	entries, err := fs.ReadDir(casesFS, "cases")
	if err != nil {
		return nil, err
	}
	testCases := make([]*TestCase, 0, len(entries))
	for _, entry := range entries {
		testCase, err := loadTestCase(path.Join("cases", entry.Name()))
		if err != nil {
			return nil, err
		}
		testCases = append(testCases, testCase)
	}
	return testCases, nil
}

func loadTestCase(file string) (*TestCase, error) {
	data, err := fs.ReadFile(casesFS, file)
	if err != nil {
		return nil, err
	}
	testCase := &TestCase{
		Name: strings.TrimSuffix(path.Base(file), path.Ext(file)),
	}
	if err := yaml.Unmarshal(data, testCase); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", file, err)
	}
	if len(testCase.Operations) == 0 {
		return nil, fmt.Errorf("%s has no operations", file)
	}
	return testCase, nil
}
