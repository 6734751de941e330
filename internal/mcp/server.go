// ABOUTME: MCP server setup for golf session data.
// ABOUTME: Wraps MCP server with the processor and club metadata store.
package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/harperreed/golf/internal/clubs"
	"github.com/harperreed/golf/internal/processor"
)

// Server wraps the MCP server with processor and store access.
type Server struct {
	mcpServer *mcp.Server
	proc      *processor.Processor
	store     *clubs.Store
}

// NewServer creates a new MCP server over a loaded processor and its
// club metadata store.
func NewServer(proc *processor.Processor, store *clubs.Store) (*Server, error) {
	mcpServer := mcp.NewServer(
		&mcp.Implementation{
			Name:    "golf",
			Version: "1.0.0",
		},
		nil,
	)

	s := &Server{
		mcpServer: mcpServer,
		proc:      proc,
		store:     store,
	}

	s.registerTools()
	s.registerResources()

	return s, nil
}

// Serve starts the MCP server using stdio transport.
func (s *Server) Serve(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcp.StdioTransport{})
}
