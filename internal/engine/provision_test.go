package engine

import (
	"os"
	"sync"
	"testing"

	"github.com/spf13/afero"

	"github.com/defikit-labs/defikit/internal/protocol"
)

// countingFs records MkdirAll calls so tests can observe provisioning work.
type countingFs struct {
	afero.Fs
	mu    sync.Mutex
	calls int
}

func (c *countingFs) MkdirAll(path string, perm os.FileMode) error {
	c.mu.Lock()
	c.calls++
	c.mu.Unlock()
	return c.Fs.MkdirAll(path, perm)
}

func (c *countingFs) count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.calls
}

func TestDirProvisioner(t *testing.T) {
	t.Run("base dirs created", func(t *testing.T) {
		fsys := afero.NewMemMapFs()
		p := NewDirProvisioner(fsys, "proj")
		if err := p.EnsureBaseDirs(); err != nil {
			t.Fatalf("EnsureBaseDirs() error: %v", err)
		}
		for _, dir := range []string{"proj/contracts", "proj/contracts/interfaces", "proj/contracts/libraries"} {
			if ok, _ := afero.DirExists(fsys, dir); !ok {
				t.Errorf("directory %s not created", dir)
			}
		}
	})

	t.Run("protocol dirs memoized", func(t *testing.T) {
		fsys := &countingFs{Fs: afero.NewMemMapFs()}
		p := NewDirProvisioner(fsys, "proj")

		if err := p.EnsureProtocolDirs(protocol.Bancor); err != nil {
			t.Fatalf("first EnsureProtocolDirs() error: %v", err)
		}
		first := fsys.count()
		if first == 0 {
			t.Fatal("first call performed no directory creation")
		}

		if err := p.EnsureProtocolDirs(protocol.Bancor); err != nil {
			t.Fatalf("second EnsureProtocolDirs() error: %v", err)
		}
		if fsys.count() != first {
			t.Errorf("second call performed creation work: %d calls, want %d", fsys.count(), first)
		}

		if ok, _ := afero.DirExists(fsys, "proj/contracts/interfaces/bancor"); !ok {
			t.Error("interfaces/bancor not created")
		}
		if ok, _ := afero.DirExists(fsys, "proj/contracts/libraries/bancor"); !ok {
			t.Error("libraries/bancor not created")
		}
	})

	t.Run("concurrent calls create once", func(t *testing.T) {
		fsys := &countingFs{Fs: afero.NewMemMapFs()}
		p := NewDirProvisioner(fsys, "proj")

		var wg sync.WaitGroup
		for i := 0; i < 20; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				if err := p.EnsureProtocolDirs(protocol.Uniswap); err != nil {
					t.Errorf("EnsureProtocolDirs() error: %v", err)
				}
			}()
		}
		wg.Wait()

		// Two dirs per protocol, created exactly once.
		if got := fsys.count(); got != 2 {
			t.Errorf("MkdirAll called %d times, want 2", got)
		}
	})

	t.Run("error sentinel has no dirs", func(t *testing.T) {
		fsys := &countingFs{Fs: afero.NewMemMapFs()}
		p := NewDirProvisioner(fsys, "proj")
		if err := p.EnsureProtocolDirs(protocol.Error); err != nil {
			t.Fatalf("EnsureProtocolDirs(Error) error: %v", err)
		}
		if got := fsys.count(); got != 0 {
			t.Errorf("MkdirAll called %d times for error sentinel, want 0", got)
		}
	})
}
