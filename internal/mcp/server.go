// Package mcp provides the stdio MCP server exposing mark tools to coding
// agents.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/go-ports/marks/internal/buildinfo"
	"github.com/go-ports/marks/internal/env"
	"github.com/go-ports/marks/internal/models"
	"github.com/go-ports/marks/internal/service"
)

const markDescription = `Bookmark a directory under a short name so it can be recalled later. Names are case-insensitive. Re-using a name replaces its path. When path is omitted the server's working directory is used.`

const recallDescription = `Return the directory bookmarked under name. Fails when no mark exists for that name.`

const clearDescription = `Remove the mark with the given name, or every mark when all is true. Removing a name that does not exist is not an error.`

const listDescription = `List all bookmarked directories, optionally filtered by a glob pattern on the name (e.g. "api-*").`

// NewServer creates and registers all mark tools on a new MCP server.
// It is separate from Serve so tests can obtain a configured server without
// the stdio transport.
func NewServer(svc *service.Service, p env.Provider) *mcpserver.MCPServer {
	s := mcpserver.NewMCPServer("marks", buildinfo.Version)
	registerTools(s, svc, p)
	return s
}

// Serve starts the stdio MCP server, blocking until stdin closes.
func Serve(_ context.Context, p env.Provider, storeOverride string) error {
	svc, err := service.New(p, storeOverride)
	if err != nil {
		return fmt.Errorf("mcp: init service: %w", err)
	}
	slog.Debug("mcp: serving", "store", svc.StorePath())
	return mcpserver.ServeStdio(NewServer(svc, p))
}

func registerTools(s *mcpserver.MCPServer, svc *service.Service, p env.Provider) {
	s.AddTool(mcp.NewTool("marks_mark",
		mcp.WithDescription(markDescription),
		mcp.WithString("name",
			mcp.Description(`Mark name. Defaults to "default".`),
		),
		mcp.WithString("path",
			mcp.Description("Absolute directory path. Defaults to the server's working directory."),
		),
	), func(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleMark(svc, p, req)
	})

	s.AddTool(mcp.NewTool("marks_recall",
		mcp.WithDescription(recallDescription),
		mcp.WithString("name",
			mcp.Description(`Mark name. Defaults to "default".`),
		),
	), func(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleRecall(svc, req)
	})

	s.AddTool(mcp.NewTool("marks_clear",
		mcp.WithDescription(clearDescription),
		mcp.WithString("name",
			mcp.Description(`Mark name. Defaults to "default".`),
		),
		mcp.WithBoolean("all",
			mcp.Description("Remove every mark."),
		),
	), func(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleClear(svc, req)
	})

	s.AddTool(mcp.NewTool("marks_list",
		mcp.WithDescription(listDescription),
		mcp.WithString("pattern",
			mcp.Description("Glob pattern matched against mark names."),
		),
	), func(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleList(svc, req)
	})
}

// ---------------------------------------------------------------------------
// Tool handlers
// ---------------------------------------------------------------------------

func handleMark(svc *service.Service, p env.Provider, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name := req.GetString("name", models.DefaultName)
	path := req.GetString("path", "")
	if path == "" {
		cwd, err := p.CurrentDir()
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("current directory: %v", err)), nil
		}
		path = cwd
	}

	m, err := svc.MarkPath(name, path)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(m)
}

func handleRecall(svc *service.Service, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name := req.GetString("name", models.DefaultName)

	path, err := svc.Recall(name)
	if err != nil {
		slog.Debug("mcp: recall failed", "name", name, "err", err)
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(models.Mark{Name: models.NormalizeName(name), Path: path})
}

func handleClear(svc *service.Service, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name := req.GetString("name", models.DefaultName)
	all := req.GetBool("all", false)

	removed, err := svc.Clear(name, all)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(map[string]any{"removed": removed})
}

func handleList(svc *service.Service, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	marks, err := svc.List(req.GetString("pattern", ""))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(map[string]any{
		"total": len(marks),
		"marks": marks,
	})
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func jsonResult(v any) (*mcp.CallToolResult, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(string(b)), nil
}
