// Package services implements the driving ports. The hub service owns the
// per-service extractors and records run history; the credentials service
// wraps the credentials store with validation.
package services
