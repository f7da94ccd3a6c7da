package symbol

import "github.com/viant/llmcc/hir"

// UnitIndex densely identifies a compilation unit within one run.
type UnitIndex int32

// Scope is a lexical region with a parent pointer, a depth (root = 0), and
// a local name->SymId map keyed per symbol kind so a type `Foo` and a
// variable `Foo` don't collide at the same scope.
type Scope struct {
	ID       int
	Kind     string // e.g. "file", "function", "block", "impl", "module"
	Name     string
	Parent   *Scope
	Depth    int
	OwnerHir hir.HirId
	byKind   map[Kind]map[string]hir.SymId
	children []*Scope
}

// NewScope creates a scope under parent (nil for a root/globals scope).
func NewScope(id int, kind, name string, owner hir.HirId, parent *Scope) *Scope {
	s := &Scope{
		ID:       id,
		Kind:     kind,
		Name:     name,
		Parent:   parent,
		OwnerHir: owner,
		byKind:   make(map[Kind]map[string]hir.SymId),
	}
	if parent != nil {
		s.Depth = parent.Depth + 1
		parent.children = append(parent.children, s)
	}
	return s
}

// Children returns the nested scopes pushed under this one.
func (s *Scope) Children() []*Scope {
	return s.children
}

// Insert registers name/kind -> id in this scope. It fails softly on a
// duplicate: the earlier definition wins and Insert reports false so the
// caller can mark the new symbol as a collision rather than erroring.
func (s *Scope) Insert(kind Kind, name string, id hir.SymId) (won bool) {
	m, ok := s.byKind[kind]
	if !ok {
		m = make(map[string]hir.SymId)
		s.byKind[kind] = m
	}
	if _, exists := m[name]; exists {
		return false
	}
	m[name] = id
	return true
}

// Lookup searches this scope then walks parents, returning the nearest
// enclosing definition matching name within kinds. The nearer (deeper)
// definition always wins over a shallower one of the same (kind, name).
func (s *Scope) Lookup(kinds KindSet, name string) (hir.SymId, bool) {
	for cur := s; cur != nil; cur = cur.Parent {
		for k := range kinds {
			if m, ok := cur.byKind[k]; ok {
				if id, ok := m[name]; ok {
					return id, true
				}
			}
		}
	}
	return hir.NoSym, false
}

// ScopeLookupFunc resolves a single segment within a named child scope,
// used by LookupPath to descend into module/type scopes owned by a
// previously resolved symbol. The table implements this since only it
// knows which Scope a given SymId owns.
type ScopeLookupFunc func(owner hir.SymId, part string, kinds KindSet) (hir.SymId, bool)

// LookupPath resolves a multi-segment path: the first segment is resolved
// in this scope (or an ancestor), then each subsequent segment is resolved
// inside the scope owned by the previous segment's symbol via descend.
func (s *Scope) LookupPath(parts []string, kinds KindSet, descend ScopeLookupFunc) (hir.SymId, bool) {
	if len(parts) == 0 {
		return hir.NoSym, false
	}
	id, ok := s.Lookup(NewKindSet(Module, Struct, Class, Enum, Trait, Function, Method, Variable, Constant, Static, Import), parts[0])
	if !ok {
		return hir.NoSym, false
	}
	for _, part := range parts[1:] {
		last := part == parts[len(parts)-1]
		k := KindSet(NewKindSet(Module, Struct, Class, Enum, Trait, Import))
		if last {
			k = kinds
		}
		next, ok := descend(id, part, k)
		if !ok {
			return hir.NoSym, false
		}
		id = next
	}
	return id, true
}

// Ancestor walks up `levels` parents from s, returning nil if levels
// exceeds the available depth.
func (s *Scope) Ancestor(levels int) *Scope {
	cur := s
	for i := 0; i < levels && cur != nil; i++ {
		cur = cur.Parent
	}
	return cur
}
