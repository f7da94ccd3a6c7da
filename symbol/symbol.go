package symbol

import (
	"sync"

	"github.com/viant/llmcc/hir"
)

// Dep is one outgoing dependency edge.
type Dep struct {
	To   hir.SymId
	Kind DepKind
}

// Symbol denotes a named definition (spec section 3).
type Symbol struct {
	ID         hir.SymId
	Name       string
	FQN        string
	Kind       Kind
	Visibility Visibility
	OwnerHir   hir.HirId
	Unit       UnitIndex
	IsGlobal   bool
	TypeOf     hir.SymId // declared/inferred type symbol; NoSym if absent

	// Import-only fields; zero-valued for every other Kind.
	ImportKind   ImportKind
	ImportSource string // module path the import resolves against

	// Collision records a later definition that lost to an earlier one at
	// the same (scope, kind, name); it still gets a SymId but IsGlobal is
	// forced false.
	Collision bool

	mu         sync.Mutex
	depends    map[hir.SymId]DepKind
	dependedBy map[hir.SymId]struct{}
}

// Depends returns a snapshot of this symbol's outgoing edges.
func (s *Symbol) Depends() []Dep {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Dep, 0, len(s.depends))
	for to, k := range s.depends {
		out = append(out, Dep{To: to, Kind: k})
	}
	return out
}

// DependedBy returns a snapshot of this symbol's incoming edge sources.
func (s *Symbol) DependedBy() []hir.SymId {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]hir.SymId, 0, len(s.dependedBy))
	for id := range s.dependedBy {
		out = append(out, id)
	}
	return out
}

func (s *Symbol) addDependsLocked(to hir.SymId, kind DepKind) {
	if s.depends == nil {
		s.depends = make(map[hir.SymId]DepKind)
	}
	s.depends[to] = kind
}

func (s *Symbol) addDependedByLocked(from hir.SymId) {
	if s.dependedBy == nil {
		s.dependedBy = make(map[hir.SymId]struct{})
	}
	s.dependedBy[from] = struct{}{}
}
