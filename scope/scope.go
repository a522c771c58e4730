/*
File    : lux/scope/scope.go

Package scope implements the lexical environment chain the evaluator
walks to resolve and assign variables (spec.md §3's Environment
model and §4.3's assignment rules).
*/
package scope

import "github.com/luxlang/lux/values"

// Scope is one lexical scope: its own variable bindings plus a link
// to the enclosing scope. A Scope with no parent is a root scope and
// may be backed by a sandbox table (spec.md §6).
type Scope struct {
	vars    map[string]values.Value
	parent  *Scope
	sandbox *values.Table
	isRoot  bool
}

// NewRoot creates the outermost scope of a program, backed by the
// given sandbox table. sandbox may be nil, in which case unresolved
// lookups simply fail and root-level writes are not mirrored anywhere.
func NewRoot(sandbox *values.Table) *Scope {
	return &Scope{
		vars:    make(map[string]values.Value),
		sandbox: sandbox,
		isRoot:  true,
	}
}

// New creates a child scope of parent. Children inherit the sandbox
// reference so lookups can still fall all the way through to it.
func New(parent *Scope) *Scope {
	s := &Scope{
		vars:   make(map[string]values.Value),
		parent: parent,
	}
	if parent != nil {
		s.sandbox = parent.sandbox
	}
	return s
}

// Sandbox returns the root sandbox table backing this scope chain,
// or nil if none was configured.
func (s *Scope) Sandbox() *values.Table { return s.sandbox }

// Lookup searches own slots, then the parent chain, then the sandbox
// (spec.md §3: "own slots → parent chain → sandbox").
func (s *Scope) Lookup(name string) (values.Value, bool) {
	if v, ok := s.vars[name]; ok {
		return v, true
	}
	if s.parent != nil {
		return s.parent.Lookup(name)
	}
	if s.sandbox != nil {
		v := s.sandbox.Get(&values.String{Value: name})
		if _, isNil := v.(*values.Nil); !isNil {
			return v, true
		}
	}
	return values.NilValue, false
}

// Declare creates (or overwrites) a binding in this scope only,
// shadowing any binding of the same name in an ancestor scope. This
// is the semantics of a "local" declaration (spec.md §4.3).
func (s *Scope) Declare(name string, v values.Value) {
	s.vars[name] = v
}

// Assign implements spec.md §4.3's search-then-create rule: overwrite
// the nearest ancestor (including s itself) that already owns name;
// if none does, create a new own slot on s. Whenever the slot written
// is on the program's root scope, the write also mirrors into the
// sandbox table (spec.md §6).
func (s *Scope) Assign(name string, v values.Value) {
	if owner := s.findOwner(name); owner != nil {
		owner.vars[name] = v
		if owner.isRoot && owner.sandbox != nil {
			owner.sandbox.Set(&values.String{Value: name}, v)
		}
		return
	}
	s.vars[name] = v
	if s.isRoot && s.sandbox != nil {
		s.sandbox.Set(&values.String{Value: name}, v)
	}
}

// Bindings returns a snapshot of this scope's own variable slots
// (not its ancestors' or the sandbox's), for introspection tools like
// a REPL "/scope" command.
func (s *Scope) Bindings() map[string]values.Value {
	out := make(map[string]values.Value, len(s.vars))
	for k, v := range s.vars {
		out[k] = v
	}
	return out
}

func (s *Scope) findOwner(name string) *Scope {
	if _, ok := s.vars[name]; ok {
		return s
	}
	if s.parent != nil {
		return s.parent.findOwner(name)
	}
	return nil
}
