package checkers_test

import (
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/go-ports/marks/internal/checkers"
)

const doc = `{"name":"work","path":"/home/u/proj","count":2,"tags":["a","b"]}`

func TestJSONPathEquals_HappyPath(t *testing.T) {
	c := qt.New(t)

	c.Assert(doc, checkers.JSONPathEquals("$.name"), "work")
	c.Assert([]byte(doc), checkers.JSONPathEquals("$.path"), "/home/u/proj")
	c.Assert(doc, checkers.JSONPathEquals("$.count"), float64(2))
	c.Assert(doc, checkers.JSONPathEquals("$.tags[1]"), "b")
}

func TestJSONPathEquals_FailurePath(t *testing.T) {
	c := qt.New(t)

	note := func(string, any) {}
	cases := []struct {
		name string
		got  any
		path string
		want any
	}{
		{"value mismatch", doc, "$.name", "home"},
		{"missing key", doc, "$.missing", "x"},
		{"invalid JSON", "{nope", "$.name", "work"},
		{"unsupported got type", 42, "$.name", "work"},
	}

	for _, tc := range cases {
		c.Run(tc.name, func(c *qt.C) {
			err := checkers.JSONPathEquals(tc.path).Check(tc.got, []any{tc.want}, note)
			c.Assert(err, qt.IsNotNil)
		})
	}
}
