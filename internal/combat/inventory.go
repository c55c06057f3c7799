package combat

import "sync"

// Inventory counts held items by item key
type Inventory struct {
	mu     sync.RWMutex
	counts map[string]int
}

// NewInventory creates an empty inventory
func NewInventory() *Inventory {
	return &Inventory{counts: make(map[string]int)}
}

// Give adds count copies of an item
func (i *Inventory) Give(itemKey string, count int) {
	if count <= 0 {
		return
	}
	i.mu.Lock()
	defer i.mu.Unlock()
	i.counts[itemKey] += count
}

// Remove takes away up to count copies of an item
func (i *Inventory) Remove(itemKey string, count int) {
	i.mu.Lock()
	defer i.mu.Unlock()

	left := i.counts[itemKey] - count
	if left <= 0 {
		delete(i.counts, itemKey)
		return
	}
	i.counts[itemKey] = left
}

// Count returns how many of an item are held
func (i *Inventory) Count(itemKey string) int {
	if i == nil {
		return 0
	}
	i.mu.RLock()
	defer i.mu.RUnlock()
	return i.counts[itemKey]
}
