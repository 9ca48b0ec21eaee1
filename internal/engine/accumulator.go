package engine

import (
	"sync"

	"github.com/defikit-labs/defikit/internal/protocol"
)

// bucket holds one protocol's accumulated output. Sequences are append-only
// for the lifetime of a run; entries keep the order in which that protocol's
// dispatches completed.
type bucket struct {
	abiFragments []protocol.ABIEntry
	netOrder     []protocol.Network
	addresses    map[protocol.Network][]protocol.AddressRecord
}

// Accumulator is the shared per-run aggregation state, keyed by protocol
// (including the Error sentinel). Folds are mutex-guarded because dispatches
// run on separate goroutines.
type Accumulator struct {
	mu      sync.Mutex
	order   []protocol.ID
	buckets map[protocol.ID]*bucket
}

// NewAccumulator returns empty per-run state.
func NewAccumulator() *Accumulator {
	return &Accumulator{buckets: make(map[protocol.ID]*bucket)}
}

// Fold appends one writer result into the protocol's bucket, creating the
// bucket on first touch. Entries are never removed or reordered.
func (a *Accumulator) Fold(id protocol.ID, res *protocol.WriterResult) {
	a.mu.Lock()
	defer a.mu.Unlock()

	b, ok := a.buckets[id]
	if !ok {
		b = &bucket{addresses: make(map[protocol.Network][]protocol.AddressRecord)}
		a.buckets[id] = b
		a.order = append(a.order, id)
	}

	b.abiFragments = append(b.abiFragments, res.ABIFragments...)
	for _, rec := range res.AddressRecords {
		if _, seen := b.addresses[rec.Network]; !seen {
			b.netOrder = append(b.netOrder, rec.Network)
		}
		b.addresses[rec.Network] = append(b.addresses[rec.Network], rec)
	}
}

// Protocols returns the touched protocol IDs in first-touch order.
func (a *Accumulator) Protocols() []protocol.ID {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]protocol.ID, len(a.order))
	copy(out, a.order)
	return out
}

// ABIFragments returns the protocol's accumulated ABI entries in stored order.
func (a *Accumulator) ABIFragments(id protocol.ID) []protocol.ABIEntry {
	a.mu.Lock()
	defer a.mu.Unlock()
	b, ok := a.buckets[id]
	if !ok {
		return nil
	}
	out := make([]protocol.ABIEntry, len(b.abiFragments))
	copy(out, b.abiFragments)
	return out
}

// AddressRecords returns the protocol's accumulated records for one network
// in stored order.
func (a *Accumulator) AddressRecords(id protocol.ID, net protocol.Network) []protocol.AddressRecord {
	a.mu.Lock()
	defer a.mu.Unlock()
	b, ok := a.buckets[id]
	if !ok {
		return nil
	}
	recs := b.addresses[net]
	out := make([]protocol.AddressRecord, len(recs))
	copy(out, recs)
	return out
}
