package protocol

// Registry is the fixed protocol → generator dispatch table. Lookups never
// miss: unknown IDs (including the Error sentinel) fall through to the
// fallback generator.
type Registry struct {
	table    map[ID]Generator
	fallback Generator
}

// NewRegistry builds a registry from an enum-keyed table and a fallback
// generator for the Error sentinel.
func NewRegistry(table map[ID]Generator, fallback Generator) *Registry {
	t := make(map[ID]Generator, len(table))
	for id, gen := range table {
		t[id] = gen
	}
	return &Registry{table: t, fallback: fallback}
}

// Lookup returns the generator for id, or the fallback when id has no entry.
func (r *Registry) Lookup(id ID) Generator {
	if gen, ok := r.table[id]; ok {
		return gen
	}
	return r.fallback
}
