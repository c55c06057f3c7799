package catalog

import (
	"context"
	"sync"

	"github.com/KirkDiggler/thalassophobia/internal/definition"
	dnderr "github.com/KirkDiggler/thalassophobia/internal/errors"
	"github.com/KirkDiggler/thalassophobia/internal/uuid"
)

type inMemoryService struct {
	mu            sync.RWMutex
	uuidGenerator uuid.Generator
	handles       map[string]definition.Handle
	tiers         map[definition.Handle]definition.Tier
	pairs         []Pair
}

// NewInMemory creates a catalog held in process memory
func NewInMemory(generator uuid.Generator) Service {
	if generator == nil {
		generator = uuid.NewGoogleUUIDGenerator()
	}
	return &inMemoryService{
		uuidGenerator: generator,
		handles:       make(map[string]definition.Handle),
		tiers:         make(map[definition.Handle]definition.Tier),
	}
}

func (s *inMemoryService) CreateHandle(_ context.Context, def *definition.Definition) (definition.Handle, error) {
	if def == nil {
		return "", dnderr.InvalidArgumentf("definition is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id := def.Key().String()
	if handle, ok := s.handles[id]; ok {
		return handle, nil
	}

	handle := definition.Handle(s.uuidGenerator.New())
	s.handles[id] = handle
	s.tiers[handle] = def.Tier()
	return handle, nil
}

func (s *inMemoryService) RegisterRelationship(_ context.Context, pair Pair) error {
	if pair.Replaced == "" || pair.Replacement == "" {
		return dnderr.InvalidArgumentf("relationship %s needs both handles", pair.Type)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range s.pairs {
		if p.Type == pair.Type && p.Replaced == pair.Replaced && p.Replacement == pair.Replacement {
			return nil
		}
	}
	s.pairs = append(s.pairs, pair)
	return nil
}

func (s *inMemoryService) Relationships(_ context.Context, relType RelationshipType) ([]Pair, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	pairs := make([]Pair, 0, len(s.pairs))
	for _, p := range s.pairs {
		if p.Type == relType {
			pairs = append(pairs, p)
		}
	}
	return pairs, nil
}

func (s *inMemoryService) SetTier(_ context.Context, handle definition.Handle, tier definition.Tier) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.tiers[handle]; !ok {
		return dnderr.NotFoundf("handle %s not found", handle)
	}
	s.tiers[handle] = tier
	return nil
}

func (s *inMemoryService) Tier(_ context.Context, handle definition.Handle) (definition.Tier, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tier, ok := s.tiers[handle]
	if !ok {
		return "", dnderr.NotFoundf("handle %s not found", handle)
	}
	return tier, nil
}
