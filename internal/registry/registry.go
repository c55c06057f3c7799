// Package registry holds exactly one live instance per concrete content type
// and binds each instance to its built definition.
package registry

import (
	"iter"
	"log"
	"reflect"
	"sync"

	"github.com/KirkDiggler/thalassophobia/internal/definition"
	dnderr "github.com/KirkDiggler/thalassophobia/internal/errors"
	"github.com/KirkDiggler/thalassophobia/internal/metrics"
)

// TypeKey identifies a concrete content type
type TypeKey string

// KeyOf returns the key of content type T
func KeyOf[T any]() TypeKey {
	return keyOfType(reflect.TypeFor[T]())
}

func keyOfType(t reflect.Type) TypeKey {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.PkgPath() == "" {
		return TypeKey(t.String())
	}
	return TypeKey(t.PkgPath() + "." + t.Name())
}

// Entry binds one live content instance to its definition
type Entry struct {
	key      TypeKey
	instance any

	mu  sync.RWMutex
	def *definition.Definition
}

// Key returns the content type key
func (e *Entry) Key() TypeKey {
	return e.key
}

// Instance returns the live content instance
func (e *Entry) Instance() any {
	return e.instance
}

// Definition returns the bound definition, nil before Bind
func (e *Entry) Definition() *definition.Definition {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.def
}

// Bind attaches the built definition. An entry is bound at most once.
func (e *Entry) Bind(def *definition.Definition) error {
	if def == nil {
		return dnderr.InvalidArgumentf("definition is required")
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.def != nil {
		return dnderr.AlreadyExistsf("%s is already bound to %q", e.key, e.def.Name())
	}
	e.def = def
	return nil
}

// Registry keeps entries in registration order
type Registry struct {
	mu      sync.RWMutex
	entries map[TypeKey]*Entry
	order   []TypeKey
}

// New creates an empty registry
func New() *Registry {
	return &Registry{
		entries: make(map[TypeKey]*Entry),
	}
}

// Register adds the single instance of its concrete type. A second instance
// of the same type fails with a duplicate registration error.
func Register[T any](r *Registry, instance T) (*Entry, error) {
	value := any(instance)
	if value == nil {
		return nil, dnderr.InvalidArgumentf("instance is required")
	}
	return r.add(keyOfType(reflect.TypeOf(value)), value)
}

func (r *Registry) add(key TypeKey, instance any) (*Entry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.entries[key]; exists {
		return nil, dnderr.DuplicateRegistration(string(key))
	}

	entry := &Entry{key: key, instance: instance}
	r.entries[key] = entry
	r.order = append(r.order, key)
	metrics.RegisteredContent.Set(float64(len(r.order)))

	log.Printf("[REGISTRY] Registered %s", key)
	return entry, nil
}

// InstanceOf returns the registered instance of type T
func InstanceOf[T any](r *Registry) (T, error) {
	var zero T

	entry, err := r.Lookup(KeyOf[T]())
	if err != nil {
		return zero, err
	}

	instance, ok := entry.instance.(T)
	if !ok {
		return zero, dnderr.Internalf("entry %s holds %T", entry.key, entry.instance)
	}
	return instance, nil
}

// Lookup returns the entry for a content type
func (r *Registry) Lookup(key TypeKey) (*Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.entries[key]
	if !ok {
		return nil, dnderr.NotFoundf("content type %s is not registered", key)
	}
	return entry, nil
}

// Unregister removes a content type
func (r *Registry) Unregister(key TypeKey) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.entries[key]; !ok {
		return dnderr.NotFoundf("content type %s is not registered", key)
	}

	delete(r.entries, key)
	for i, k := range r.order {
		if k == key {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	metrics.RegisteredContent.Set(float64(len(r.order)))
	return nil
}

// Len returns the number of registered content types
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.order)
}

// All yields entries in registration order. Each iteration starts from the
// entries registered at that moment.
func (r *Registry) All() iter.Seq[*Entry] {
	return func(yield func(*Entry) bool) {
		for _, entry := range r.entriesInOrder() {
			if !yield(entry) {
				return
			}
		}
	}
}

// Snapshot copies the current entries for passes that must not observe
// later registrations
func (r *Registry) Snapshot() *Snapshot {
	return &Snapshot{entries: r.entriesInOrder()}
}

func (r *Registry) entriesInOrder() []*Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]*Entry, 0, len(r.order))
	for _, key := range r.order {
		entries = append(entries, r.entries[key])
	}
	return entries
}

// Snapshot is a read-only view of the registry at one point in time
type Snapshot struct {
	entries []*Entry
}

// All yields the snapshot's entries in registration order
func (s *Snapshot) All() iter.Seq[*Entry] {
	return func(yield func(*Entry) bool) {
		for _, entry := range s.entries {
			if !yield(entry) {
				return
			}
		}
	}
}

// Definitions yields the bound definitions, skipping unbound entries
func (s *Snapshot) Definitions() iter.Seq2[*Entry, *definition.Definition] {
	return func(yield func(*Entry, *definition.Definition) bool) {
		for _, entry := range s.entries {
			def := entry.Definition()
			if def == nil {
				continue
			}
			if !yield(entry, def) {
				return
			}
		}
	}
}

// Len returns the number of entries in the snapshot
func (s *Snapshot) Len() int {
	return len(s.entries)
}
