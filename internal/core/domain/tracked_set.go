package domain

// TrackedIDSet holds the ad IDs already reported for one event kind within
// the current session. It is not safe for concurrent use; owners guard it.
type TrackedIDSet struct {
	ids map[string]struct{}
}

// NewTrackedIDSet returns an empty set.
func NewTrackedIDSet() *TrackedIDSet {
	return &TrackedIDSet{ids: make(map[string]struct{})}
}

// Add records id and reports whether it was not present before.
func (s *TrackedIDSet) Add(id string) bool {
	if _, ok := s.ids[id]; ok {
		return false
	}
	s.ids[id] = struct{}{}
	return true
}

func (s *TrackedIDSet) Has(id string) bool {
	_, ok := s.ids[id]
	return ok
}

func (s *TrackedIDSet) Len() int {
	return len(s.ids)
}

// Clear starts a new session.
func (s *TrackedIDSet) Clear() {
	clear(s.ids)
}
