// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ternary

// Environment is an unbounded chain of frames, each owning a mapping
// from name to V and a parent link (spec.md §3 Environment). This is a
// direct structural port of original_source/hb.py's Env class: lookup
// walks parents, binding always writes the current frame, assignment
// walks up and writes wherever the name is already bound (or locally if
// nowhere).
//
// The evaluator is single-threaded (spec.md §5), so Environment carries
// no synchronization; an implementer adding concurrency must make frames
// the synchronization unit, per spec.md §5's explicit note.
type Environment struct {
	parent *Environment
	vars   map[string]*V
}

// NewEnvironment creates a frame chained to parent. parent may be nil
// for the root frame.
func NewEnvironment(parent *Environment) *Environment {
	return &Environment{parent: parent, vars: make(map[string]*V)}
}

// Lookup walks the parent chain and returns the bound value, or nil if
// name is unbound anywhere in the chain.
func (e *Environment) Lookup(name string) *V {
	for env := e; env != nil; env = env.parent {
		if v, ok := env.vars[name]; ok {
			return v
		}
	}
	return nil
}

// findFrame returns the innermost frame in the chain that already binds
// name, or nil if none does.
func (e *Environment) findFrame(name string) *Environment {
	for env := e; env != nil; env = env.parent {
		if _, ok := env.vars[name]; ok {
			return env
		}
	}
	return nil
}

// Bind writes name into this frame (never a parent), shadowing any
// outer binding of the same name.
func (e *Environment) Bind(name string, v *V) *V {
	e.vars[name] = v
	return v
}

// Assign walks up the chain and writes name wherever it is already
// bound; if the name is unbound anywhere, it is bound locally instead
// (spec.md §4.6).
func (e *Environment) Assign(name string, v *V) *V {
	frame := e.findFrame(name)
	if frame == nil {
		frame = e
	}
	return frame.Bind(name, v)
}

// Parent returns the enclosing frame, or nil for the root.
func (e *Environment) Parent() *Environment { return e.parent }
