// Package domain contains the core types of the Workspace Hub: the records
// extracted from each Google service, the time range the extraction
// operations accept, stored OAuth credentials, and extraction run history.
//
// The domain layer has no dependencies on adapters or external APIs.
package domain
