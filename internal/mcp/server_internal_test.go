package mcp

// White-box testing: the tool handlers are only reachable through the MCP
// transport otherwise, and calling them directly keeps the error-to-result
// mapping easy to pin down.

import (
	"errors"
	"path/filepath"
	"testing"

	qt "github.com/frankban/quicktest"
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/go-ports/marks/internal/checkers"
	"github.com/go-ports/marks/internal/env"
	"github.com/go-ports/marks/internal/service"
)

func newTestService(c *qt.C, p env.Static) *service.Service {
	c.TB.Helper()
	svc, err := service.New(p, filepath.Join(c.TB.TempDir(), "marks.list"))
	c.Assert(err, qt.IsNil)
	return svc
}

func request(args map[string]any) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Arguments = args
	return req
}

func resultText(c *qt.C, res *mcp.CallToolResult) string {
	c.TB.Helper()
	c.Assert(res.Content, qt.HasLen, 1)
	tc, ok := mcp.AsTextContent(res.Content[0])
	c.Assert(ok, qt.IsTrue)
	return tc.Text
}

// ---------------------------------------------------------------------------
// jsonResult
// ---------------------------------------------------------------------------

func TestJSONResult_HappyPath(t *testing.T) {
	c := qt.New(t)

	res, err := jsonResult(map[string]any{"removed": 2})
	c.Assert(err, qt.IsNil)
	c.Assert(res.IsError, qt.IsFalse)
	c.Assert(resultText(c, res), qt.Equals, `{"removed":2}`)
}

func TestJSONResult_FailurePath(t *testing.T) {
	c := qt.New(t)

	res, err := jsonResult(make(chan int))
	c.Assert(err, qt.IsNil)
	c.Assert(res.IsError, qt.IsTrue)
}

// ---------------------------------------------------------------------------
// handlers
// ---------------------------------------------------------------------------

func TestHandleMark_HappyPath(t *testing.T) {
	c := qt.New(t)

	p := env.Static{Cwd: "/home/u/proj"}
	svc := newTestService(c, p)

	c.Run("explicit path", func(c *qt.C) {
		res, err := handleMark(svc, p, request(map[string]any{"name": "API", "path": "/srv/api"}))
		c.Assert(err, qt.IsNil)
		c.Assert(res.IsError, qt.IsFalse)
		text := resultText(c, res)
		c.Assert(text, checkers.JSONPathEquals("$.name"), "api")
		c.Assert(text, checkers.JSONPathEquals("$.path"), "/srv/api")
	})

	c.Run("path defaults to cwd and name to default", func(c *qt.C) {
		res, err := handleMark(svc, p, request(nil))
		c.Assert(err, qt.IsNil)
		text := resultText(c, res)
		c.Assert(text, checkers.JSONPathEquals("$.name"), "default")
		c.Assert(text, checkers.JSONPathEquals("$.path"), "/home/u/proj")
	})
}

func TestHandleMark_FailurePath(t *testing.T) {
	c := qt.New(t)

	p := env.Static{CwdErr: errors.New("gone")}
	svc := newTestService(c, p)

	res, err := handleMark(svc, p, request(map[string]any{"name": "x"}))
	c.Assert(err, qt.IsNil)
	c.Assert(res.IsError, qt.IsTrue)
	c.Assert(resultText(c, res), qt.Equals, "current directory: gone")
}

func TestHandleRecall(t *testing.T) {
	c := qt.New(t)

	svc := newTestService(c, env.Static{})
	_, err := svc.MarkPath("work", "/home/u/proj")
	c.Assert(err, qt.IsNil)

	c.Run("hit", func(c *qt.C) {
		res, err := handleRecall(svc, request(map[string]any{"name": "WORK"}))
		c.Assert(err, qt.IsNil)
		c.Assert(res.IsError, qt.IsFalse)
		c.Assert(resultText(c, res), checkers.JSONPathEquals("$.path"), "/home/u/proj")
	})

	c.Run("miss", func(c *qt.C) {
		res, err := handleRecall(svc, request(map[string]any{"name": "nope"}))
		c.Assert(err, qt.IsNil)
		c.Assert(res.IsError, qt.IsTrue)
		c.Assert(resultText(c, res), qt.Equals, "No path set for nope.")
	})

	c.Run("default miss", func(c *qt.C) {
		res, err := handleRecall(svc, request(nil))
		c.Assert(err, qt.IsNil)
		c.Assert(res.IsError, qt.IsTrue)
		c.Assert(resultText(c, res), qt.Equals, "No path set for the default path.")
	})
}

func TestHandleClearAndList(t *testing.T) {
	c := qt.New(t)

	svc := newTestService(c, env.Static{})
	for _, n := range []string{"api-v1", "api-v2", "web"} {
		_, err := svc.MarkPath(n, "/"+n)
		c.Assert(err, qt.IsNil)
	}

	res, err := handleList(svc, request(map[string]any{"pattern": "api-*"}))
	c.Assert(err, qt.IsNil)
	text := resultText(c, res)
	c.Assert(text, checkers.JSONPathEquals("$.total"), float64(2))
	c.Assert(text, checkers.JSONPathEquals("$.marks[0].name"), "api-v1")

	res, err = handleClear(svc, request(map[string]any{"name": "web"}))
	c.Assert(err, qt.IsNil)
	c.Assert(resultText(c, res), checkers.JSONPathEquals("$.removed"), float64(1))

	res, err = handleClear(svc, request(map[string]any{"all": true}))
	c.Assert(err, qt.IsNil)
	c.Assert(resultText(c, res), checkers.JSONPathEquals("$.removed"), float64(2))

	res, err = handleList(svc, request(nil))
	c.Assert(err, qt.IsNil)
	c.Assert(resultText(c, res), checkers.JSONPathEquals("$.total"), float64(0))
}

func TestHandleList_FailurePath(t *testing.T) {
	c := qt.New(t)

	svc := newTestService(c, env.Static{})
	res, err := handleList(svc, request(map[string]any{"pattern": "[bad"}))
	c.Assert(err, qt.IsNil)
	c.Assert(res.IsError, qt.IsTrue)
}
