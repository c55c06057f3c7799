package lang

import (
	"context"
	"sync"

	dnderr "github.com/KirkDiggler/thalassophobia/internal/errors"
	"golang.org/x/text/language"
)

// Table stores localized strings per language
type Table interface {
	Put(ctx context.Context, tag language.Tag, key Key, value string) error
	Get(ctx context.Context, tag language.Tag, key Key) (string, error)
}

type inMemoryTable struct {
	mu      sync.RWMutex
	strings map[language.Tag]map[string]string
}

// NewInMemory creates a table held in process memory
func NewInMemory() Table {
	return &inMemoryTable{
		strings: make(map[language.Tag]map[string]string),
	}
}

func (t *inMemoryTable) Put(_ context.Context, tag language.Tag, key Key, value string) error {
	if err := key.Validate(); err != nil {
		return err
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	byKey, ok := t.strings[tag]
	if !ok {
		byKey = make(map[string]string)
		t.strings[tag] = byKey
	}
	byKey[key.String()] = value
	return nil
}

func (t *inMemoryTable) Get(_ context.Context, tag language.Tag, key Key) (string, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	value, ok := t.strings[tag][key.String()]
	if !ok {
		return "", dnderr.NotFoundf("no %s string for %s", tag, key)
	}
	return value, nil
}
