// Package cli defines the cobra command tree: init (write a starter config),
// assemble (run the full generation pipeline), protocols (list supported
// protocols), and version.
package cli
