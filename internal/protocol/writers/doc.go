// Package writers implements the per-protocol generators. Each supported
// protocol is backed by an embedded YAML dataset listing its deployed
// addresses per network, interface ABI fragments, Solidity interface stubs,
// and the npm dependency pack the generated project must install. A catch-all
// error writer handles unrecognized protocol identifiers by logging a warning
// and returning empty output.
package writers
