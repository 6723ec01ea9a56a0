// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ternary

import "fmt"

// NoDispatchError reports that Dispatch (dispatch.go) could not resolve
// an operator for the given left operand type (spec.md §4.4).
type NoDispatchError struct {
	Op      string
	LeftTag Tag
}

func (e *NoDispatchError) Error() string {
	return fmt.Sprintf("ternary: can't dispatch %q on %s", e.Op, e.LeftTag)
}

// Sp satisfies the CLI's diagnostic span lookup; NoDispatchError has no
// witness node to hand back a span from, so it reports the zero span.
func (e *NoDispatchError) Sp() Span { return Span{} }

// CantReduceError reports that the reducer reached a head tag with no
// reduction rule (spec.md §4.3, "Otherwise fail with an unrecoverable
// reduce error").
type CantReduceError struct {
	Head *V
}

func (e *CantReduceError) Error() string {
	return fmt.Sprintf("ternary: can't reduce node of tag %s", e.Head.Tag)
}

// Sp returns the offending head's span, for the CLI's diagnostic printer.
func (e *CantReduceError) Sp() Span { return e.Head.Sp }

// TypeError reports an operand of the wrong shape for the operation
// attempting to use it (e.g. an OBJECT head with no "." constructor, or
// wait's right operand not a non-negative NUM). Dispatch does not check
// the tag of the value it resolves; a non-callable head fails later as a
// CantReduceError.
type TypeError struct {
	Context string
	Got     Tag
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("ternary: %s: unexpected type %s", e.Context, e.Got)
}

// Sp satisfies the CLI's diagnostic span lookup; TypeError is raised
// from inside built-ins that don't thread a span to it, so it reports
// the zero span.
func (e *TypeError) Sp() Span { return Span{} }

// Diagnostic pairs an error with the source span where it occurred, for
// the batch-mode CLI to print a source excerpt and caret (spec.md §9).
type Diagnostic struct {
	Err  error
	Span Span
}

func (d *Diagnostic) Error() string {
	return fmt.Sprintf("%d: %s", d.Span.Line, d.Err)
}

func (d *Diagnostic) Unwrap() error { return d.Err }

// NewDiagnostic attaches a span to err, unless err is already a
// *Diagnostic (in which case it passes through unchanged so spans are
// never overwritten by an outer caller that didn't originate the
// failure).
func NewDiagnostic(err error, sp Span) error {
	if err == nil {
		return nil
	}
	if d, ok := err.(*Diagnostic); ok {
		return d
	}
	return &Diagnostic{Err: err, Span: sp}
}
