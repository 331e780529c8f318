package set

// Store is an insertion-ordered collection of unique normalized values.
// It is not safe for concurrent use; all mutation happens on the TUI's
// update loop.
type Store struct {
	members map[string]struct{}
	order   []string
}

func NewStore() *Store {
	return &Store{
		members: make(map[string]struct{}),
	}
}

// Add normalizes raw and inserts it if absent. It returns true iff the
// store's membership changed; empty-after-normalization input is rejected
// without mutation.
func (s *Store) Add(raw string) bool {
	value := Normalize(raw)
	if value == "" {
		return false
	}
	if _, ok := s.members[value]; ok {
		return false
	}
	s.members[value] = struct{}{}
	s.order = append(s.order, value)
	return true
}

// Remove deletes an exact stored value (no re-normalization) and reports
// whether an entry existed.
func (s *Store) Remove(value string) bool {
	if _, ok := s.members[value]; !ok {
		return false
	}
	delete(s.members, value)
	for i, v := range s.order {
		if v == value {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return true
}

// Clear empties the store and reports whether it held any values beforehand.
func (s *Store) Clear() bool {
	had := len(s.members) > 0
	s.members = make(map[string]struct{})
	s.order = nil
	return had
}

func (s *Store) Size() int {
	return len(s.members)
}

// Contains reports membership of an exact value.
func (s *Store) Contains(value string) bool {
	_, ok := s.members[value]
	return ok
}

// Values returns a snapshot of the stored values in enumeration (insertion)
// order. The caller owns the returned slice.
func (s *Store) Values() []string {
	values := make([]string, len(s.order))
	copy(values, s.order)
	return values
}
