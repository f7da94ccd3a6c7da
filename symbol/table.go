package symbol

import (
	"strings"
	"sync"
	"sync/atomic"

	"github.com/viant/llmcc/hir"
)

// Table owns every Symbol created during one compilation run plus the
// shared globals scope that parents every unit's file scope. Insert
// registers a symbol only in the scope it is given, so the globals scope
// itself holds no symbols and a Scope.Lookup that reaches it finds nothing
// defined in another unit. SymId assignment is a
// process-wide atomic counter: dense, but not deterministic across
// differently-ordered unit processing (spec section 5) — downstream code
// must sort by FQN wherever a stable order is required.
type Table struct {
	counter int64

	mu         sync.RWMutex
	byID       []*Symbol
	byFQN      map[string][]hir.SymId // global name -> symbols (is_global only)
	byOwner    map[ownerKey]hir.SymId
	scopeByKey map[ownerKey]*Scope // scope pushed at (unit, ownerHir), for Binder's path descent

	Globals *Scope
}

type ownerKey struct {
	unit UnitIndex
	hir  hir.HirId
}

// NewTable creates an empty Table with a fresh globals scope.
func NewTable() *Table {
	return &Table{
		byFQN:      make(map[string][]hir.SymId),
		byOwner:    make(map[ownerKey]hir.SymId),
		scopeByKey: make(map[ownerKey]*Scope),
		Globals:    NewScope(0, "globals", "", hir.NoParent, nil),
	}
}

// nextID does an atomic fetch-add, mirroring the Rust original's
// process-wide counter (monotonic in a single-threaded target, atomic in a
// shared-memory parallel one).
func (t *Table) nextID() hir.SymId {
	return hir.SymId(atomic.AddInt64(&t.counter, 1) - 1)
}

// Insert assigns a new SymId, computes the FQN from the enclosing scope
// stack, registers it in scope, and indexes it globally if isGlobal.
// Returns the assigned id and the computed FQN.
func (t *Table) Insert(owner hir.HirId, unit UnitIndex, scope *Scope, name string, kind Kind, isGlobal bool) (hir.SymId, string) {
	id := t.nextID()
	fqn := fqnOf(scope, name)

	sym := &Symbol{
		ID:       id,
		Name:     name,
		FQN:      fqn,
		Kind:     kind,
		OwnerHir: owner,
		Unit:     unit,
		IsGlobal: isGlobal,
		TypeOf:   hir.NoSym,
	}

	if !scope.Insert(kind, name, id) {
		sym.Collision = true
		sym.IsGlobal = false
	}

	t.mu.Lock()
	for int(id) >= len(t.byID) {
		t.byID = append(t.byID, nil)
	}
	t.byID[id] = sym
	t.byOwner[ownerKey{unit, owner}] = id
	if sym.IsGlobal {
		t.byFQN[fqn] = append(t.byFQN[fqn], id)
	}
	t.mu.Unlock()

	return id, fqn
}

func fqnOf(scope *Scope, name string) string {
	var segs []string
	for cur := scope; cur != nil; cur = cur.Parent {
		if cur.Name != "" {
			segs = append(segs, cur.Name)
		}
	}
	// segs was collected innermost-first; reverse into outermost-first.
	for i, j := 0, len(segs)-1; i < j; i, j = i+1, j-1 {
		segs[i], segs[j] = segs[j], segs[i]
	}
	segs = append(segs, name)
	return strings.Join(segs, "::")
}

// Get returns the symbol for id, or nil if unknown.
func (t *Table) Get(id hir.SymId) *Symbol {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if id < 0 || int(id) >= len(t.byID) {
		return nil
	}
	return t.byID[id]
}

// FindByName returns every globally-indexed symbol with the given FQN.
func (t *Table) FindByName(fqn string) []hir.SymId {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return append([]hir.SymId(nil), t.byFQN[fqn]...)
}

// RegisterScope records the scope pushed at (unit, ownerHir) so Binder can
// later descend into it by owner SymId (via the symbol's OwnerHir) without
// needing its own copy of the scope tree.
func (t *Table) RegisterScope(unit UnitIndex, ownerHir hir.HirId, scope *Scope) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.scopeByKey[ownerKey{unit, ownerHir}] = scope
}

// ScopeFor returns the scope registered at (unit, ownerHir), if any.
func (t *Table) ScopeFor(unit UnitIndex, ownerHir hir.HirId) (*Scope, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	s, ok := t.scopeByKey[ownerKey{unit, ownerHir}]
	return s, ok
}

// FindByOwner returns the symbol defined at (unit, ownerHir), if any.
func (t *Table) FindByOwner(unit UnitIndex, ownerHir hir.HirId) (hir.SymId, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	id, ok := t.byOwner[ownerKey{unit, ownerHir}]
	return id, ok
}

// All returns every symbol created so far, skipping ids whose concurrent
// Insert has not yet stored its symbol; callers should read this after a
// stage barrier.
func (t *Table) All() []*Symbol {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]*Symbol, 0, len(t.byID))
	for _, s := range t.byID {
		if s != nil {
			out = append(out, s)
		}
	}
	return out
}

// AddDependency records a dependency edge from `from` to `to`, updating
// both depends and dependedBy under the two symbols' locks taken in
// (min_id,max_id) order to avoid deadlock (spec section 5).
func (t *Table) AddDependency(from, to hir.SymId, kind DepKind) {
	a, b := t.Get(from), t.Get(to)
	if a == nil || b == nil || a == b {
		if a != nil && a == b {
			a.mu.Lock()
			a.addDependsLocked(to, kind)
			a.addDependedByLocked(from)
			a.mu.Unlock()
		}
		return
	}
	first, second := a, b
	if from > to {
		first, second = b, a
	}
	first.mu.Lock()
	second.mu.Lock()
	a.addDependsLocked(to, kind)
	b.addDependedByLocked(from)
	second.mu.Unlock()
	first.mu.Unlock()
}
