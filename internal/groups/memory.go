package groups

import (
	"context"
	"sort"
	"sync"
	"time"

	"groupedit/internal/domain"
)

// MemoryGroupStore is an in-memory implementation of Store
type MemoryGroupStore struct {
	mu     sync.RWMutex
	policy domain.Policy
	nextID int64
	groups map[int64]*domain.GroupRecord
	names  map[string]int64 // name key -> group id
	now    func() time.Time
}

// NewMemoryGroupStore creates a new memory-based group store.
// policy is reported on every record it returns.
func NewMemoryGroupStore(policy domain.Policy) *MemoryGroupStore {
	return &MemoryGroupStore{
		policy: policy,
		groups: make(map[int64]*domain.GroupRecord),
		names:  make(map[string]int64),
		now:    time.Now,
	}
}

func (s *MemoryGroupStore) List(ctx context.Context) ([]*domain.GroupRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*domain.GroupRecord, 0, len(s.groups))
	for _, g := range s.groups {
		result = append(result, s.export(g))
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (s *MemoryGroupStore) Get(ctx context.Context, id int64) (*domain.GroupRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	g, ok := s.groups[id]
	if !ok {
		return nil, ErrGroupNotFound
	}
	return s.export(g), nil
}

func (s *MemoryGroupStore) Create(ctx context.Context, fields domain.GroupFields) (*domain.GroupRecord, error) {
	fields, err := ValidateFields(fields)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.names[nameKey(fields.Name)]; exists {
		return nil, nameTaken()
	}

	s.nextID++
	now := s.now().UTC()
	g := &domain.GroupRecord{ID: s.nextID, CreatedAt: now, UpdatedAt: now}
	fields.Apply(g)

	s.groups[g.ID] = g
	s.names[nameKey(g.Name)] = g.ID
	return s.export(g), nil
}

func (s *MemoryGroupStore) Update(ctx context.Context, record *domain.GroupRecord, fields domain.GroupFields) (*domain.GroupRecord, error) {
	fields, err := ValidateFields(fields)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	g, ok := s.groups[record.ID]
	if !ok {
		return nil, ErrGroupNotFound
	}
	if owner, exists := s.names[nameKey(fields.Name)]; exists && owner != g.ID {
		return nil, nameTaken()
	}

	delete(s.names, nameKey(g.Name))
	fields.Apply(g)
	g.UpdatedAt = s.now().UTC()
	s.names[nameKey(g.Name)] = g.ID
	return s.export(g), nil
}

// export returns a copy stamped with the site policy (must be called with lock held)
func (s *MemoryGroupStore) export(g *domain.GroupRecord) *domain.GroupRecord {
	c := g.Clone()
	c.AddToGroupPolicy = s.policy
	return c
}
