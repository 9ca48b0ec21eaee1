package writers

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/defikit-labs/defikit/internal/platform/logger"
	"github.com/defikit-labs/defikit/internal/protocol"
)

// Writer generates scaffolding for a single protocol from its embedded
// dataset.
type Writer struct {
	id  protocol.ID
	ds  *dataset
	fs  afero.Fs
	log *logger.Logger
}

// NewRegistry builds the production dispatch table: one dataset-backed writer
// per supported protocol, with the error writer as the catch-all fallback.
func NewRegistry(fsys afero.Fs, log *logger.Logger) (*protocol.Registry, error) {
	all, err := loadDatasets()
	if err != nil {
		return nil, err
	}
	table := make(map[protocol.ID]protocol.Generator, len(all))
	for _, id := range protocol.Supported() {
		w := &Writer{id: id, ds: all[id], fs: fsys, log: log}
		table[id] = w.Generate
	}
	return protocol.NewRegistry(table, ErrorWriter(log)), nil
}

// Generate implements the generator contract for the writer's protocol. It
// renders the protocol's Solidity interface stubs under targetDir and returns
// the ABI fragments, address records for the requested network, and the
// dependency pack.
func (w *Writer) Generate(ctx context.Context, targetDir, solverVersion string, network protocol.Network, spec protocol.ImportSpec) (*protocol.WriterResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	contracts := w.ds.Contracts
	if spec.ContractName != "" {
		contracts = nil
		for _, c := range w.ds.Contracts {
			if strings.EqualFold(c.Name, spec.ContractName) {
				contracts = append(contracts, c)
			}
		}
	}

	result := &protocol.WriterResult{DependencyPack: w.ds.DependencyPack}
	for _, c := range contracts {
		if c.Interface != "" {
			if err := w.writeInterfaceStub(targetDir, solverVersion, c); err != nil {
				return nil, err
			}
		}
		if c.ABI != "" {
			result.ABIFragments = append(result.ABIFragments, protocol.ABIEntry{RawABI: c.ABI})
		}
		records := c.addressesFor(network)
		// A per-import address overrides the dataset pointer when a single
		// concrete network was requested.
		if spec.Address != "" && network != protocol.AllNetworks {
			for i := range records {
				records[i].Address = spec.Address
			}
		}
		result.AddressRecords = append(result.AddressRecords, records...)
	}

	w.log.Debug("generated protocol scaffolding",
		"protocol", w.id,
		"network", network,
		"abis", len(result.ABIFragments),
		"addresses", len(result.AddressRecords))
	return result, nil
}

// writeInterfaceStub renders one Solidity interface file. The provisioner has
// already created the protocol's interface directory.
func (w *Writer) writeInterfaceStub(targetDir, solverVersion string, c datasetContract) error {
	var b strings.Builder
	b.WriteString("// SPDX-License-Identifier: MIT\n")
	fmt.Fprintf(&b, "pragma solidity ^%s;\n\n", solverVersion)
	b.WriteString(strings.TrimRight(c.Interface, "\n"))
	b.WriteString("\n")

	path := filepath.Join(targetDir, "contracts", "interfaces",
		strings.ToLower(string(w.id)), "I"+c.Name+".sol")
	if err := afero.WriteFile(w.fs, path, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
