package engine

import (
	"fmt"
	"strings"

	"github.com/defikit-labs/defikit/internal/protocol"
)

// RenderABIRegistry serializes the accumulated ABI fragments into the ABI
// registry artifact: one named constant per protocol with at least one
// fragment, fragments comma-separated in stored order. Protocols with no
// fragments (and the Error bucket) are omitted. Output is deterministic:
// protocols appear in canonical declaration order.
func RenderABIRegistry(acc *Accumulator) string {
	var blocks []string
	for _, id := range protocol.Supported() {
		fragments := acc.ABIFragments(id)
		if len(fragments) == 0 {
			continue
		}

		var b strings.Builder
		fmt.Fprintf(&b, "%s_ABI = {\n", id)
		for i, frag := range fragments {
			b.WriteString("  ")
			b.WriteString(frag.RawABI)
			if i < len(fragments)-1 {
				b.WriteString(",")
			}
			b.WriteString("\n")
		}
		b.WriteString("}")
		blocks = append(blocks, b.String())
	}
	return strings.TrimSpace(strings.Join(blocks, "\n\n"))
}

// RenderAddressRegistry serializes the accumulated address records into the
// address registry artifact: a single exported object nesting protocol →
// network → contractName: address. Networks without records and protocols
// without records on any network are omitted, as is the Error bucket.
func RenderAddressRegistry(acc *Accumulator) string {
	var b strings.Builder
	b.WriteString("Addresses = {")

	wrote := false
	for _, id := range protocol.Supported() {
		var netBlocks []string
		for _, net := range protocol.Networks() {
			records := acc.AddressRecords(id, net)
			if len(records) == 0 {
				continue
			}
			var nb strings.Builder
			fmt.Fprintf(&nb, "    %s: {\n", net)
			for _, rec := range records {
				fmt.Fprintf(&nb, "      %s: %q,\n", rec.ContractName, rec.Address)
			}
			nb.WriteString("    },")
			netBlocks = append(netBlocks, nb.String())
		}
		if len(netBlocks) == 0 {
			continue
		}

		wrote = true
		fmt.Fprintf(&b, "\n  %s: {\n", id)
		b.WriteString(strings.Join(netBlocks, "\n"))
		b.WriteString("\n  },")
	}

	if wrote {
		b.WriteString("\n")
	}
	b.WriteString("}")
	return strings.TrimSpace(b.String())
}
