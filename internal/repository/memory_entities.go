package repository

import (
	"sort"
	"strings"
	"sync"

	"healthband-insights/internal/models"
)

// MemoryEntitiesRepo holds world entities (nodes, wearable collectors) in memory.
// NOTE: the store is process-local and empties on restart; callers that need
// durability must push their entities again after reconnecting.
type MemoryEntitiesRepo struct {
	mu       sync.RWMutex
	entities map[string]models.Entity // entityID -> Entity
}

func NewMemoryEntitiesRepo() *MemoryEntitiesRepo {
	return &MemoryEntitiesRepo{
		entities: map[string]models.Entity{},
	}
}

// EntityFilter narrows List results; zero value matches everything.
type EntityFilter struct {
	ID    string // exact match
	Label string // substring match
}

// Matches reports whether the entity passes the filter.
func (f EntityFilter) Matches(e models.Entity) bool {
	if f.ID != "" && f.ID != e.ID {
		return false
	}
	if f.Label != "" && !strings.Contains(e.Label, f.Label) {
		return false
	}
	return true
}

// List returns entities matching the filter, sorted by ID.
func (r *MemoryEntitiesRepo) List(filter EntityFilter) []models.Entity {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Entity, 0, len(r.entities))
	for _, e := range r.entities {
		if filter.Matches(e) {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].ID < out[j].ID
	})
	return out
}

// Get returns a single entity by ID.
func (r *MemoryEntitiesRepo) Get(id string) (models.Entity, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.entities[id]
	return e, ok
}

// Push upserts the given entities and returns the accepted IDs in input order.
// Entities without an ID are skipped.
func (r *MemoryEntitiesRepo) Push(changes []models.Entity) []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	accepted := make([]string, 0, len(changes))
	for _, e := range changes {
		if e.ID == "" {
			continue
		}
		r.entities[e.ID] = e
		accepted = append(accepted, e.ID)
	}
	return accepted
}

// Expire removes an entity by ID; returns false when it was not present.
func (r *MemoryEntitiesRepo) Expire(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.entities[id]; !ok {
		return false
	}
	delete(r.entities, id)
	return true
}

// Len returns the number of stored entities.
func (r *MemoryEntitiesRepo) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entities)
}
