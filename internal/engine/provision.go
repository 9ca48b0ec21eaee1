package engine

import (
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/afero"

	"github.com/defikit-labs/defikit/internal/protocol"
)

// Skeleton directories created under the project root.
var baseDirs = []string{
	"contracts",
	filepath.Join("contracts", "interfaces"),
	filepath.Join("contracts", "libraries"),
}

// DirProvisioner creates protocol support directories at most once per
// protocol per run. Directory creation itself is idempotent (MkdirAll), so a
// repeated create is harmless; the flag map just avoids the redundant calls.
type DirProvisioner struct {
	fs   afero.Fs
	root string

	mu   sync.Mutex
	done map[protocol.ID]bool
}

// NewDirProvisioner returns a provisioner rooted at the project directory.
func NewDirProvisioner(fsys afero.Fs, root string) *DirProvisioner {
	return &DirProvisioner{fs: fsys, root: root, done: make(map[protocol.ID]bool)}
}

// Root returns the project root directory.
func (p *DirProvisioner) Root() string { return p.root }

// EnsureBaseDirs unconditionally creates the top-level skeleton directories.
// It runs before any dispatch.
func (p *DirProvisioner) EnsureBaseDirs() error {
	for _, dir := range baseDirs {
		path := filepath.Join(p.root, dir)
		if err := p.fs.MkdirAll(path, 0755); err != nil {
			return fmt.Errorf("creating %s: %w", path, err)
		}
	}
	return nil
}

// EnsureProtocolDirs creates the protocol's support directories the first
// time it is called for that protocol; later calls are no-ops. The Error
// sentinel has no directories.
func (p *DirProvisioner) EnsureProtocolDirs(id protocol.ID) error {
	if id == protocol.Error {
		return nil
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.done[id] {
		return nil
	}

	name := strings.ToLower(string(id))
	for _, dir := range []string{
		filepath.Join("contracts", "interfaces", name),
		filepath.Join("contracts", "libraries", name),
	} {
		path := filepath.Join(p.root, dir)
		if err := p.fs.MkdirAll(path, 0755); err != nil {
			return fmt.Errorf("creating %s: %w", path, err)
		}
	}

	p.done[id] = true
	return nil
}
