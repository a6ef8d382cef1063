package effects

// Set holds an actor's active effects keyed by kind, iterated in the order
// kinds were first applied.
type Set struct {
	order  []Kind
	byKind map[Kind]*Effect
}

// NewSet creates an empty effect set.
func NewSet() *Set {
	return &Set{byKind: make(map[Kind]*Effect)}
}

// Apply adds e, or refreshes the existing instance of the same kind.
// Returns true when an existing effect was refreshed.
func (s *Set) Apply(e Effect) bool {
	if existing, ok := s.byKind[e.Kind]; ok {
		existing.Refresh(e)
		return true
	}
	inst := e
	s.byKind[e.Kind] = &inst
	s.order = append(s.order, e.Kind)
	return false
}

// Get returns the live instance of kind k.
func (s *Set) Get(k Kind) (*Effect, bool) {
	e, ok := s.byKind[k]
	return e, ok
}

// Has reports whether kind k is present and not yet expired.
func (s *Set) Has(k Kind) bool {
	e, ok := s.byKind[k]
	return ok && !e.IsExpired()
}

// Len returns the number of effects held, expired or not.
func (s *Set) Len() int {
	return len(s.order)
}

// List returns copies of the effects in insertion order.
func (s *Set) List() []Effect {
	out := make([]Effect, 0, len(s.order))
	for _, k := range s.order {
		out = append(out, *s.byKind[k])
	}
	return out
}

// Tick runs OnTurnStart on every effect in insertion order.
func (s *Set) Tick(t Target) []TickResult {
	kinds := append([]Kind(nil), s.order...)
	results := make([]TickResult, 0, len(kinds))
	for _, k := range kinds {
		e, ok := s.byKind[k]
		if !ok {
			continue
		}
		results = append(results, e.OnTurnStart(t))
	}
	return results
}

// Prune removes expired effects, keeping the order of the rest, and returns
// the kinds removed.
func (s *Set) Prune() []Kind {
	var removed []Kind
	kept := s.order[:0]
	for _, k := range s.order {
		if s.byKind[k].IsExpired() {
			delete(s.byKind, k)
			removed = append(removed, k)
			continue
		}
		kept = append(kept, k)
	}
	s.order = kept
	return removed
}

// Remove drops kind k if present.
func (s *Set) Remove(k Kind) {
	if _, ok := s.byKind[k]; !ok {
		return
	}
	delete(s.byKind, k)
	for i, existing := range s.order {
		if existing == k {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}
