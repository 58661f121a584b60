package eval

import (
	"sort"

	"github.com/keyplexex/itmoscript/pkg/eval/errs"
	"github.com/keyplexex/itmoscript/pkg/eval/vals"
)

// Scope maps variable names to values. Lookups that miss fall through to the
// parent scope.
type Scope struct {
	vars   map[string]vals.Value
	parent *Scope
}

// NewScope creates an empty scope whose lookups fall through to parent, which
// may be nil.
func NewScope(parent *Scope) *Scope {
	return &Scope{vars: make(map[string]vals.Value), parent: parent}
}

// Parent returns the enclosing scope, or nil for the root scope.
func (s *Scope) Parent() *Scope { return s.parent }

// Define binds name in this scope, shadowing any binding in enclosing scopes.
func (s *Scope) Define(name string, v vals.Value) {
	s.vars[name] = v
}

// Assign updates the nearest existing binding of name. It returns false if no
// scope in the chain has it.
func (s *Scope) Assign(name string, v vals.Value) bool {
	for sc := s; sc != nil; sc = sc.parent {
		if _, ok := sc.vars[name]; ok {
			sc.vars[name] = v
			return true
		}
	}
	return false
}

// Get looks up name in this scope and then in its ancestors.
func (s *Scope) Get(name string) (vals.Value, error) {
	for sc := s; sc != nil; sc = sc.parent {
		if v, ok := sc.vars[name]; ok {
			return v, nil
		}
	}
	return vals.Nil, errs.NoSuchVariable{Name: name}
}

// Names returns the sorted names visible from this scope.
func (s *Scope) Names() []string {
	seen := make(map[string]bool)
	var names []string
	for sc := s; sc != nil; sc = sc.parent {
		for name := range sc.vars {
			if !seen[name] {
				seen[name] = true
				names = append(names, name)
			}
		}
	}
	sort.Strings(names)
	return names
}
