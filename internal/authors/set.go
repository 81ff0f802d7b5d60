package authors

import "strings"

// Set holds identities with case-insensitive membership. The casing and order
// of the first occurrence are preserved for rendering.
type Set struct {
	seen  map[string]struct{}
	items []string
}

func NewSet(ids ...string) *Set {
	s := &Set{seen: make(map[string]struct{})}
	for _, id := range ids {
		s.Add(id)
	}
	return s
}

func (s *Set) Add(id string) {
	key := strings.ToLower(id)
	if _, ok := s.seen[key]; ok {
		return
	}
	s.seen[key] = struct{}{}
	s.items = append(s.items, id)
}

// AddAll merges every identity from other into s.
func (s *Set) AddAll(other *Set) {
	for _, id := range other.items {
		s.Add(id)
	}
}

func (s *Set) Contains(id string) bool {
	_, ok := s.seen[strings.ToLower(id)]
	return ok
}

func (s *Set) Len() int {
	return len(s.items)
}

// Values returns the identities in first-insertion order.
func (s *Set) Values() []string {
	out := make([]string, len(s.items))
	copy(out, s.items)
	return out
}

// Diff returns the identities present in s but absent from other.
func (s *Set) Diff(other *Set) *Set {
	out := NewSet()
	for _, id := range s.items {
		if !other.Contains(id) {
			out.Add(id)
		}
	}
	return out
}
