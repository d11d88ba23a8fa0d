// Package driving defines the interfaces through which adapters (HTTP API,
// MCP server, CLI) drive the core services.
package driving
