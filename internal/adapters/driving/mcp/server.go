// Package mcp provides an MCP (Model Context Protocol) server adapter for
// WorkspaceHub. It exposes the Google service extractors as tools so AI
// assistants can pull workspace data directly.
package mcp

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/veldt-labs/workspacehub/internal/core/ports/driving"
)

// Version is the MCP server version.
const Version = "0.1.0"

// ErrMissingHubService is returned when the hub service is not provided.
var ErrMissingHubService = errors.New("mcp: hub service is required")

// Server is the MCP server for WorkspaceHub.
type Server struct {
	hub    driving.HubService
	server *mcp.Server
}

// NewServer creates a new MCP server around the hub service.
func NewServer(hub driving.HubService) (*Server, error) {
	if hub == nil {
		return nil, ErrMissingHubService
	}

	impl := &mcp.Implementation{
		Name:    "workspacehub",
		Version: Version,
	}

	s := &Server{
		hub:    hub,
		server: mcp.NewServer(impl, nil),
	}

	s.registerTools()

	return s, nil
}

// Run starts the MCP server over stdio.
// It blocks until the context is cancelled or an error occurs.
func (s *Server) Run(ctx context.Context) error {
	return s.server.Run(ctx, &mcp.StdioTransport{})
}

// RunHTTP starts the MCP server over HTTP on the specified address.
// It blocks until the context is cancelled or an error occurs.
func (s *Server) RunHTTP(ctx context.Context, addr string) error {
	handler := mcp.NewStreamableHTTPHandler(func(_ *http.Request) *mcp.Server {
		return s.server
	}, nil)

	httpServer := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown when context is cancelled
	go func() {
		<-ctx.Done()
		httpServer.Shutdown(context.Background()) //nolint:errcheck
	}()

	err := httpServer.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}
