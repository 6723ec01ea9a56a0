// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ternary

import (
	"fmt"

	"github.com/emirpasic/gods/stacks/arraystack"
)

// RootTag is the reserved tag of the outermost cactus-stack segment,
// installed once per Execute call (spec.md §3 Cactus Stack: "The
// outermost segment carries a reserved root tag.").
const RootTag = "__root__"

// EmptyError reports that shift (or an internal spop) could not find a
// matching Delim(tag) anywhere on the cactus stack — spec.md §4.5:
// "If no matching Delim(tag) exists in the stack, emit Empty(tag) as an
// unrecoverable error." Name and shape taken from original_source/
// stack.py's Cactus.Empty.
type EmptyError struct {
	Tag string
}

func (e *EmptyError) Error() string {
	return fmt.Sprintf("ternary: no matching reset for tag %q", e.Tag)
}

// Sp satisfies the CLI's diagnostic span lookup; an unbalanced shift has
// no single witness node, so it reports the zero span.
func (e *EmptyError) Sp() Span { return Span{} }

// Stack is one tagged segment of the cactus stack: a plain stack of
// Frame values, labelled with the continuation tag that spush installed
// it under. Backed by gods' arraystack rather than a hand-rolled slice —
// grounded on npillmayer-gorgo's use of the gods package for its LR
// table data structures (see DESIGN.md).
type Stack struct {
	Tag    string
	frames *arraystack.Stack
}

func newStack(tag string) *Stack {
	return &Stack{Tag: tag, frames: arraystack.New()}
}

// Empty reports whether this segment holds no frames.
func (s *Stack) Empty() bool { return s.frames.Empty() }

func (s *Stack) push(f Frame) { s.frames.Push(f) }

func (s *Stack) pop() (Frame, bool) {
	v, ok := s.frames.Pop()
	if !ok {
		return nil, false
	}
	return v.(Frame), true
}

func (s *Stack) peek() (Frame, bool) {
	v, ok := s.frames.Peek()
	if !ok {
		return nil, false
	}
	return v.(Frame), true
}

// frames_ returns the segment's frames in push order (oldest first),
// matching original_source/stack.py's self.s list order, which scopy
// relies on to reproduce identical stack structure in a fresh segment.
func (s *Stack) frames_() []Frame {
	values := s.frames.Values() // arraystack lists the top frame first
	out := make([]Frame, len(values))
	for i, v := range values {
		out[len(values)-1-i] = v.(Frame)
	}
	return out
}

// CactusStack is the stack of labelled segments spec.md §3 names:
// operations spush/spop/push/peek/pop/scopy over a "rope" of Stack
// segments. This is a direct structural port of original_source/
// stack.py's Cactus class.
type CactusStack struct {
	rope []*Stack
}

// NewCactusStack creates a cactus stack with a single segment tagged
// RootTag, ready for one Execute invocation.
func NewCactusStack() *CactusStack {
	cs := &CactusStack{}
	cs.Spush(RootTag)
	return cs
}

// Spush pushes a fresh, empty segment labelled tag onto the rope.
func (cs *CactusStack) Spush(tag string) {
	cs.rope = append(cs.rope, newStack(tag))
}

// Spop pops segments off the rope, discarding any that don't match tag,
// until it pops one that does; that segment is returned. Fails with
// EmptyError if the rope is exhausted first (spec.md §3: "pops
// intermediate unlabelled-match segments until it finds tag; fails if
// none").
func (cs *CactusStack) Spop(tag string) (*Stack, error) {
	for {
		if len(cs.rope) == 0 {
			return nil, &EmptyError{Tag: tag}
		}
		top := cs.rope[len(cs.rope)-1]
		cs.rope = cs.rope[:len(cs.rope)-1]
		if top.Tag == tag {
			return top, nil
		}
	}
}

// Scopy pushes a new segment tagged like st and replays st's frames
// into it in the same order, without sharing st's underlying storage —
// this is what lets a captured Continuation be invoked more than once:
// each invocation calls Scopy on the same saved segment and gets an
// independent copy (spec.md §3 invariant: "A CONTINUATION value is
// single-use *semantically* but may be invoked multiple times; each
// invocation reinstalls a *copy* of its saved segment.").
func (cs *CactusStack) Scopy(st *Stack) {
	cs.Spush(st.Tag)
	top := cs.rope[len(cs.rope)-1]
	for _, f := range st.frames_() {
		top.push(f)
	}
}

// Push pushes a frame onto the topmost segment.
func (cs *CactusStack) Push(f Frame) {
	cs.rope[len(cs.rope)-1].push(f)
}

// Peek returns the topmost frame without removing it. Fails with
// EmptyError("__peek__") if the rope itself is empty, mirroring
// stack.py's Cactus.peek.
func (cs *CactusStack) Peek() (Frame, error) {
	if len(cs.rope) == 0 {
		return nil, &EmptyError{Tag: "__peek__"}
	}
	top := cs.rope[len(cs.rope)-1]
	f, ok := top.peek()
	if !ok {
		return nil, nil
	}
	return f, nil
}

// Pop removes and returns the topmost frame, first discarding any empty
// segments above it (spec.md §3: "pop() (skips empty segments)"). Panics
// if the rope itself runs out — the reducer's own ReturnFrame always
// keeps the rope non-empty during ordinary reduction, so this can only
// happen if a caller pops more than it pushed.
func (cs *CactusStack) Pop() Frame {
	for cs.rope[len(cs.rope)-1].Empty() {
		cs.rope = cs.rope[:len(cs.rope)-1]
	}
	top := cs.rope[len(cs.rope)-1]
	f, _ := top.pop()
	return f
}

