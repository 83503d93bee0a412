package defines

import "strings"

// Scope identifies the (directory, configuration-name) pair a definition
// list is attached to.
type Scope struct {
	Dir    string `json:"dir" yaml:"dir"`
	Config string `json:"config" yaml:"config"`
}

// Store accumulates preprocessor definitions per scope. It is written by a
// single evaluator during one configuration run; the enclosing driver
// guarantees no concurrent access, so the store carries no locking.
type Store struct {
	lists map[Scope][]string
	order []Scope
}

// NewStore creates a new, empty definition store.
func NewStore() *Store {
	return &Store{lists: make(map[Scope][]string)}
}

// Add appends macro tokens to the list scoped to (dir, config). At most one
// leading "-D" prefix is stripped from each token to derive the canonical
// macro name; tokens are otherwise stored verbatim and never deduplicated.
func (s *Store) Add(dir, config string, tokens ...string) {
	scope := Scope{Dir: dir, Config: config}
	if _, ok := s.lists[scope]; !ok {
		s.order = append(s.order, scope)
	}
	for _, tok := range tokens {
		if tok == "" {
			continue
		}
		s.lists[scope] = append(s.lists[scope], strings.TrimPrefix(tok, "-D"))
	}
}

// Definitions returns a copy of the definition list for (dir, config), in
// insertion order. An unknown scope yields nil.
func (s *Store) Definitions(dir, config string) []string {
	list, ok := s.lists[Scope{Dir: dir, Config: config}]
	if !ok {
		return nil
	}
	out := make([]string, len(list))
	copy(out, list)
	return out
}

// Scopes returns every scope that has received at least one Add call, in
// first-touched order.
func (s *Store) Scopes() []Scope {
	out := make([]Scope, len(s.order))
	copy(out, s.order)
	return out
}

// All returns a deep copy of every definition list keyed by scope.
func (s *Store) All() map[Scope][]string {
	out := make(map[Scope][]string, len(s.lists))
	for scope, list := range s.lists {
		cp := make([]string, len(list))
		copy(cp, list)
		out[scope] = cp
	}
	return out
}
