// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ternary

import (
	"bufio"
	"encoding/json"
	"os"

	"go.uber.org/multierr"
)

// Source reads and parses a file (load/import evaluate the result); the
// lexer/parser packages import
// this package, so the parse step is injected rather than imported
// directly (avoids a lexer/parser -> ternary -> lexer/parser cycle).
var Source func(path string) (*V, error)

// bindFileModule installs load/import/jsoneach (spec.md §6 "Persisted
// state", original_source/hb.py's file-system collaborators). load and
// import require Source to have been set by the cmd/ternary entry point;
// jsoneach reads its file directly.
func bindFileModule(root *Environment) {
	root.Bind("load", Builtin(loadBuiltin, Span{}))
	root.Bind("import", Builtin(importBuiltin, Span{}))
	root.Bind("jsoneach", Builtin(jsonEachBuiltin, Span{}))
}

// loadBuiltin reads path, evaluates it in a fresh child environment, and
// returns that environment wrapped as OBJECT (spec.md §6: "load reads a
// file, evaluates it in a fresh child environment, and returns the
// resulting environment wrapped as OBJECT").
func loadBuiltin(l, _ *V, env *Environment) (*V, error) {
	path := AsString(l)
	if Source == nil {
		return nil, &TypeError{Context: "load", Got: l.Tag}
	}
	body, err := Source(path)
	if err != nil {
		return nil, err
	}
	childEnv := NewEnvironment(env)
	cs := NewCactusStack()
	if _, err := Eval(body, childEnv, cs); err != nil {
		return nil, err
	}
	return ObjectValue(childEnv, l.Sp), nil
}

// importBuiltin evaluates path in the current environment for side
// effects (spec.md §6: "import evaluates in the current environment").
func importBuiltin(l, _ *V, env *Environment) (*V, error) {
	path := AsString(l)
	if Source == nil {
		return nil, &TypeError{Context: "import", Got: l.Tag}
	}
	body, err := Source(path)
	if err != nil {
		return nil, err
	}
	cs := NewCactusStack()
	return Eval(body, env, cs)
}

// jsonEachBuiltin reads path line by line, parses each as a JSON object,
// wraps it NATIVE_OBJECT, and invokes fn on it (spec.md §6: "jsoneach
// reads the file line by line... invokes fn on it").
func jsonEachBuiltin(l, r *V, env *Environment) (*V, error) {
	path := AsString(l)
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	result := Unit
	var errs error
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var obj map[string]any
		if err := json.Unmarshal(line, &obj); err != nil {
			// A malformed line doesn't abort the rest of the file — every
			// bad line's error is collected and reported together once
			// scanning finishes, rather than surfacing only the first.
			errs = multierr.Append(errs, err)
			continue
		}
		native := &V{Tag: TagNativeObject, Payload: obj, Sp: l.Sp}
		invocation := Tree(native, r, Unit, r.Sp)
		cs := NewCactusStack()
		v, err := Eval(invocation, env, cs)
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		result = v
	}
	if err := scanner.Err(); err != nil {
		errs = multierr.Append(errs, err)
	}
	if errs != nil {
		return nil, errs
	}
	return result, nil
}
