// Package mcp exposes the api client to AI assistants over the Model Context Protocol.
package mcp

import (
	"context"

	"github.com/leighmacdonald/wgapi/internal/config"
	"github.com/leighmacdonald/wgapi/pkg/wargaming"
	"github.com/mark3labs/mcp-go/server"
)

// ServerName is the name of the MCP server.
const ServerName = "wgapi"

// Server wraps the MCP server with the wargaming tools registered.
type Server struct {
	mcpServer *server.MCPServer
	handlers  *Handlers
}

func NewServer(client *wargaming.Client, version string) *Server {
	mcpServer := server.NewMCPServer(
		ServerName,
		version,
		server.WithToolCapabilities(true),
	)

	s := &Server{
		mcpServer: mcpServer,
		handlers:  NewHandlers(client),
	}

	s.registerTools()

	return s
}

func (s *Server) registerTools() {
	for _, tool := range ToolDefinitions() {
		switch tool.Name {
		case ToolGet:
			s.mcpServer.AddTool(tool, s.handlers.HandleGet)
		case ToolTranslateError:
			s.mcpServer.AddTool(tool, s.handlers.HandleTranslateError)
		case ToolServers:
			s.mcpServer.AddTool(tool, s.handlers.HandleServers)
		case ToolLanguages:
			s.mcpServer.AddTool(tool, s.handlers.HandleLanguages)
		}
	}
}

// Serve starts the MCP server on stdio and blocks until ctx is done or stdin closes.
func (s *Server) Serve(ctx context.Context) error {
	return server.ServeStdio(s.mcpServer, server.WithStdioContextFunc(func(_ context.Context) context.Context {
		return ctx
	}))
}

// Reload swaps the client used by the tools whenever a new config arrives on changes.
func (s *Server) Reload(ctx context.Context, changes <-chan config.Config) {
	s.handlers.Reload(ctx, changes)
}
