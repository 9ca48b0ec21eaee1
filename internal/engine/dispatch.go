package engine

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/defikit-labs/defikit/internal/platform/logger"
	"github.com/defikit-labs/defikit/internal/protocol"
)

// DefaultConcurrency caps in-flight generator calls so a large import list
// cannot exhaust file descriptors. Zero or negative means unbounded fan-out.
const DefaultConcurrency = 16

// DispatchEngine fans a batch of contract-import requests out to the
// protocol registry and folds each result into the accumulator.
type DispatchEngine struct {
	registry *protocol.Registry
	prov     *DirProvisioner
	acc      *Accumulator
	log      *logger.Logger
	limit    int
}

// NewDispatchEngine wires a dispatch engine over shared per-run state.
func NewDispatchEngine(reg *protocol.Registry, prov *DirProvisioner, acc *Accumulator, log *logger.Logger, limit int) *DispatchEngine {
	return &DispatchEngine{registry: reg, prov: prov, acc: acc, log: log, limit: limit}
}

// Dispatch runs every import concurrently and returns the non-empty
// dependency packs (not yet deduplicated). The batch is fail-fast: the first
// generator error cancels the remaining work and is returned as the single
// aggregate failure. Unsupported protocols route to the error writer, which
// never fails.
func (e *DispatchEngine) Dispatch(ctx context.Context, imports []protocol.ImportSpec, solverVersion string, defaultNet protocol.Network) ([]string, error) {
	g, gctx := errgroup.WithContext(ctx)
	if e.limit > 0 {
		g.SetLimit(e.limit)
	}

	var (
		mu    sync.Mutex
		packs []string
	)

	for _, spec := range imports {
		spec := spec
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			id, _ := protocol.ParseID(spec.Protocol)
			net := spec.Network
			if net == "" {
				net = defaultNet
			}

			if err := e.prov.EnsureProtocolDirs(id); err != nil {
				return err
			}

			res, err := e.registry.Lookup(id)(gctx, e.prov.Root(), solverVersion, net, spec)
			if err != nil {
				return fmt.Errorf("generating %s: %w", id, err)
			}

			e.acc.Fold(id, res)
			if res.DependencyPack != "" {
				mu.Lock()
				packs = append(packs, res.DependencyPack)
				mu.Unlock()
			}

			e.log.Debug("import dispatched", "protocol", id, "network", net)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return packs, nil
}
