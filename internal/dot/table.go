package dot

import (
	"sync"
)

type instanceKey struct {
	kind     Kind
	sourceID string
}

// table holds every effect on one target. It is dead once the engine has
// dropped it; callers that find a dead table fetch a fresh one.
type table struct {
	mu        sync.Mutex
	dead      bool
	instances map[instanceKey]*Instance
}

func newTable() *table {
	return &table{instances: make(map[instanceKey]*Instance)}
}

// prune drops expired instances and instances whose source or target is no
// longer valid. Callers hold t.mu.
func (t *table) prune(valid func(*Instance) bool) {
	for key, inst := range t.instances {
		if inst.Remaining <= 0 || !valid(inst) {
			delete(t.instances, key)
		}
	}
}
