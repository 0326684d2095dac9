package engineer

import (
	"context"
	"log/slog"
	"sync"
)

// MemoryRepository is the in-memory implementation of Repository. One
// mutex guards both the map and the id counter so ids stay unique under
// concurrent Create calls.
type MemoryRepository struct {
	mu        sync.Mutex
	lastID    int
	engineers map[int]Engineer
}

// NewMemoryRepository creates an empty in-memory engineer repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		engineers: make(map[int]Engineer),
	}
}

func (r *MemoryRepository) Create(_ context.Context, name string, techStack []string) Engineer {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.lastID++
	e := Engineer{
		ID:        r.lastID,
		Name:      name,
		TechStack: copyStack(techStack),
	}
	r.engineers[e.ID] = e

	slog.Debug("created engineer", "id", e.ID, "name", e.Name)
	return e.clone()
}

func (r *MemoryRepository) FindByID(_ context.Context, id int) (Engineer, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.engineers[id]
	if !ok {
		return Engineer{}, false
	}
	return e.clone(), true
}

func (r *MemoryRepository) List(_ context.Context) []Engineer {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Engineer, 0, len(r.engineers))
	for _, e := range r.engineers {
		out = append(out, e.clone())
	}
	return out
}

func (r *MemoryRepository) Update(_ context.Context, id int, name string, techStack []string) Engineer {
	r.mu.Lock()
	defer r.mu.Unlock()

	e := Engineer{
		ID:        id,
		Name:      name,
		TechStack: copyStack(techStack),
	}
	r.engineers[id] = e

	slog.Debug("updated engineer", "id", id, "name", name)
	return e.clone()
}

func (r *MemoryRepository) Delete(_ context.Context, id int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.engineers, id)
	slog.Debug("deleted engineer", "id", id)
}

func (r *MemoryRepository) DeleteAll(_ context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()

	clear(r.engineers)
}

// Count reports how many engineers are stored. Used by the health endpoint.
func (r *MemoryRepository) Count(_ context.Context) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.engineers)
}
