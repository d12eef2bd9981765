// Package checkers provides quicktest checkers shared by the test suites.
package checkers

import (
	"encoding/json"
	"fmt"

	qt "github.com/frankban/quicktest"
	"github.com/yalp/jsonpath"
)

// JSONPathEquals returns a checker that decodes the got value (a string or
// []byte holding JSON), reads path from it and compares the result with the
// wanted value using qt.DeepEquals. JSON numbers decode as float64.
//
//	c.Assert(out, checkers.JSONPathEquals("$.work"), "/home/u/proj")
func JSONPathEquals(path string) qt.Checker {
	return &jsonPathChecker{path: path}
}

type jsonPathChecker struct {
	path string
}

func (*jsonPathChecker) ArgNames() []string {
	return []string{"got", "want"}
}

func (c *jsonPathChecker) Check(got any, args []any, note func(key string, value any)) error {
	var raw []byte
	switch v := got.(type) {
	case string:
		raw = []byte(v)
	case []byte:
		raw = v
	default:
		return qt.BadCheckf("first argument is not a string or []byte: %T", got)
	}

	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("cannot decode JSON: %w", err)
	}

	note("path", c.path)
	val, err := jsonpath.Read(doc, c.path)
	if err != nil {
		return fmt.Errorf("cannot read JSON path: %w", err)
	}
	return qt.DeepEquals.Check(val, args, note)
}
