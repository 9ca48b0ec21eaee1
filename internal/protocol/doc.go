// Package protocol defines the closed sets of supported protocol and network
// identifiers, the contract-import request and writer-result types exchanged
// with per-protocol generators, and the enum-keyed registry that routes a
// protocol identifier to its generator.
package protocol
