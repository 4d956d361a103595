package catalog

import (
	"fmt"
	"slices"
	"strings"

	"github.com/Lightzzz011/project-showcase-api/internal/projects/domain"
)

// Store is the read-only project catalog. It is built once at startup and
// never mutated afterwards, so it is safe for concurrent use without locking.
type Store struct {
	items []domain.Project
	byID  map[string]int
}

// New builds a Store from records. Ids must be non-empty and unique.
func New(records []domain.Project) (*Store, error) {
	s := &Store{
		items: make([]domain.Project, 0, len(records)),
		byID:  make(map[string]int, len(records)),
	}
	for _, p := range records {
		id := strings.TrimSpace(p.ID)
		if id == "" {
			return nil, fmt.Errorf("catalog: %q: %w", p.Title, domain.ErrMissingID)
		}
		if _, dup := s.byID[id]; dup {
			return nil, fmt.Errorf("catalog: %s: %w", id, domain.ErrDuplicateID)
		}
		p = p.Clone()
		p.ID = id
		s.byID[id] = len(s.items)
		s.items = append(s.items, p)
	}
	return s, nil
}

// MustNew is New for literal record sets.
func MustNew(records []domain.Project) *Store {
	s, err := New(records)
	if err != nil {
		panic(err)
	}
	return s
}

// All returns the records in catalog order. The result is a copy.
func (s *Store) All() []domain.Project {
	out := make([]domain.Project, len(s.items))
	for i, p := range s.items {
		out[i] = p.Clone()
	}
	return out
}

// Get looks a record up by exact id.
func (s *Store) Get(id string) (domain.Project, error) {
	i, ok := s.byID[id]
	if !ok {
		return domain.Project{}, domain.ErrNotFound
	}
	return s.items[i].Clone(), nil
}

func (s *Store) Len() int {
	return len(s.items)
}

// Tags returns the union of all record tags, deduplicated and sorted.
// Distinct casings are kept as distinct entries.
func (s *Store) Tags() []string {
	seen := make(map[string]struct{})
	out := make([]string, 0, len(s.items)*4)
	for _, p := range s.items {
		for _, t := range p.Tags {
			if _, ok := seen[t]; ok {
				continue
			}
			seen[t] = struct{}{}
			out = append(out, t)
		}
	}
	slices.Sort(out)
	return out
}
