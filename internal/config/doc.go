// Package config loads and validates the project-level configuration file
// (.defikitconfig, JSON). Validation runs in two layers: structural checks
// against an embedded JSON schema, then semantic checks (semver solver
// version, known default network). A missing or invalid config is fatal
// before any directory work begins.
package config
