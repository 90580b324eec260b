package mcp

import (
	"fmt"
	"sync"

	"toolbox/internal/catalog"
	"toolbox/internal/logging"
	"toolbox/internal/prefs"

	"github.com/mark3labs/mcp-go/server"
)

const (
	ServerName    = "toolbox"
	ServerVersion = "1.0.0"
)

// Server represents an MCP server instance using mcp-go
type Server struct {
	logger  *logging.AppLogger
	catalog *catalog.Catalog

	// mu guards prefs; mcp-go may run handlers concurrently.
	mu    sync.Mutex
	prefs *prefs.Store

	mcpServer *server.MCPServer
}

// NewServer creates a server with its tools registered. Nothing is read from
// stdin until Start.
func NewServer(cat *catalog.Catalog, p *prefs.Store, logger *logging.AppLogger) *Server {
	s := &Server{
		logger:  logger.WithComponent("mcp"),
		catalog: cat,
		prefs:   p,
	}

	s.mcpServer = server.NewMCPServer(ServerName, ServerVersion,
		server.WithToolCapabilities(false),
		server.WithRecovery(),
	)
	s.registerTools()
	return s
}

// Start serves JSON-RPC over stdin/stdout until EOF.
func (s *Server) Start() error {
	s.logger.Info("Starting MCP server", "tools", s.catalog.Len())

	if err := server.ServeStdio(s.mcpServer); err != nil {
		return fmt.Errorf("MCP server failed: %w", err)
	}
	return nil
}

// Stop retries preference writes that failed while serving. The stdio
// transport stops on its own at EOF.
func (s *Server) Stop() error {
	s.logger.Info("Stopping MCP server")

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.prefs.Pending() {
		s.logger.Warn("Retrying preference writes that failed earlier")
	}
	if err := s.prefs.Persist(); err != nil {
		return fmt.Errorf("failed to persist preferences: %w", err)
	}
	return nil
}
