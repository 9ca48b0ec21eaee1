package engine

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
	"golang.org/x/sync/errgroup"

	"github.com/defikit-labs/defikit/internal/platform/logger"
	"github.com/defikit-labs/defikit/internal/protocol"
)

// Registry artifact paths relative to the project root.
const (
	ABIRegistryFile     = "contracts/abiRegistry.js"
	AddressRegistryFile = "contracts/addressRegistry.js"
)

// Orchestrator sequences a full assembly run: base directories, concurrent
// dispatch, artifact rendering, dependency-pack dedup. All per-run state is
// constructed inside Run, so independent runs can proceed in parallel.
type Orchestrator struct {
	fs          afero.Fs
	registry    *protocol.Registry
	log         *logger.Logger
	concurrency int
}

// Option configures an Orchestrator.
type Option func(*Orchestrator)

// WithConcurrency overrides the dispatch fan-out cap. Zero or negative
// removes the bound entirely.
func WithConcurrency(n int) Option {
	return func(o *Orchestrator) { o.concurrency = n }
}

// New builds an orchestrator over the given filesystem and dispatch table.
func New(fsys afero.Fs, reg *protocol.Registry, log *logger.Logger, opts ...Option) *Orchestrator {
	o := &Orchestrator{fs: fsys, registry: reg, log: log, concurrency: DefaultConcurrency}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Run executes the full sequence against rootDir and returns the
// deduplicated dependency-pack list. Any failure propagates unchanged; the
// registry artifacts are only written after every dispatch has completed.
func (o *Orchestrator) Run(ctx context.Context, rootDir string, imports []protocol.ImportSpec, solverVersion string, defaultNet protocol.Network) ([]string, error) {
	prov := NewDirProvisioner(o.fs, rootDir)
	if err := prov.EnsureBaseDirs(); err != nil {
		return nil, err
	}

	acc := NewAccumulator()
	dispatcher := NewDispatchEngine(o.registry, prov, acc, o.log, o.concurrency)
	packs, err := dispatcher.Dispatch(ctx, imports, solverVersion, defaultNet)
	if err != nil {
		return nil, err
	}

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		return o.writeArtifact(filepath.Join(rootDir, filepath.FromSlash(ABIRegistryFile)), RenderABIRegistry(acc))
	})
	g.Go(func() error {
		return o.writeArtifact(filepath.Join(rootDir, filepath.FromSlash(AddressRegistryFile)), RenderAddressRegistry(acc))
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	unique := uniqueStrings(packs)
	o.log.Info("assembly complete",
		"imports", len(imports),
		"dependencyPacks", len(unique))
	return unique, nil
}

func (o *Orchestrator) writeArtifact(path, contents string) error {
	if err := afero.WriteFile(o.fs, path, []byte(contents+"\n"), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// uniqueStrings deduplicates while keeping first-occurrence order.
func uniqueStrings(in []string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, s := range in {
		if seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}
