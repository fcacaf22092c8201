// Package params defines the core types and contracts for the runtime parameter
// registry: application namespaces declare admin-level and user-level parameter
// definitions with defaults and metadata, and persisted overrides replace those
// defaults when present.
package params
