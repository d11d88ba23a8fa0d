// Package driven defines the interfaces the core depends on: the per-service
// extractors, the credentials and run stores, and the token provider.
// Adapters implement these; the core only sees the interfaces.
package driven
