// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ternary

import (
	"math/big"
	"strings"

	"github.com/emirpasic/gods/lists/arraylist"
)

// TagMatrix is the matrix module's type tag (original_source/matrix.py).
const TagMatrix Tag = "matrix"

// matrixData is a flat backing array plus its shape, laid out with the
// first dimension varying fastest, the order printDim reads it in
// (original_source/matrix.py's Matrix class).
type matrixData struct {
	shape []int64
	cells []*big.Int
}

// bindMatrixModule installs the matrix type module: elementwise NUM
// arithmetic, reshape, shape, and rank (original_source/matrix.py).
// tomatrix itself is registered on num_vec's module, not matrix's
// (matrix.py: `modules["num_vec"]["tomatrix"]`, see builtins_numvec.go).
func bindMatrixModule(root *Environment) {
	modEnv := NewEnvironment(nil)
	modEnv.Bind("+:NUM", Builtin(matrixAddScalar, Span{}))
	modEnv.Bind("-:NUM", Builtin(matrixSubScalar, Span{}))
	modEnv.Bind("*:NUM", Builtin(matrixMulScalar, Span{}))
	modEnv.Bind("/:NUM", Builtin(matrixDivScalar, Span{}))
	modEnv.Bind("reshape:num_vec", Builtin(matrixReshape, Span{}))
	modEnv.Bind("shape", Builtin(matrixShape, Span{}))
	modEnv.Bind("rank", Builtin(matrixRank, Span{}))
	root.Bind(string(TagMatrix), ObjectValue(modEnv, Span{}))
}

func asMatrix(v *V) *matrixData { return v.Payload.(*matrixData) }

func matrixValue(m *matrixData, sp Span) *V {
	return &V{Tag: TagMatrix, Payload: m, Sp: sp}
}

// toMatrixBuiltin is num_vec's "tomatrix": a rank-1 matrix over the
// num_vec's elements (original_source/matrix.py: `tomatrix`).
func toMatrixBuiltin(l, _ *V, _ *Environment) (*V, error) {
	list := asNumVec(l)
	n := list.Size()
	cells := make([]*big.Int, n)
	for i := 0; i < n; i++ {
		elem, _ := list.Get(i)
		cells[i] = new(big.Int).Set(AsNum(elem.(*V)))
	}
	return matrixValue(&matrixData{shape: []int64{int64(n)}, cells: cells}, l.Sp), nil
}

func matrixApply(l *V, op func(a, b *big.Int) *big.Int, scalar *big.Int) *V {
	m := asMatrix(l)
	cells := make([]*big.Int, len(m.cells))
	for i, c := range m.cells {
		cells[i] = op(c, scalar)
	}
	return matrixValue(&matrixData{shape: m.shape, cells: cells}, l.Sp)
}

func matrixAddScalar(l, r *V, _ *Environment) (*V, error) {
	return matrixApply(l, func(a, b *big.Int) *big.Int { return new(big.Int).Add(a, b) }, AsNum(r)), nil
}

func matrixSubScalar(l, r *V, _ *Environment) (*V, error) {
	return matrixApply(l, func(a, b *big.Int) *big.Int { return new(big.Int).Sub(a, b) }, AsNum(r)), nil
}

func matrixMulScalar(l, r *V, _ *Environment) (*V, error) {
	return matrixApply(l, func(a, b *big.Int) *big.Int { return new(big.Int).Mul(a, b) }, AsNum(r)), nil
}

func matrixDivScalar(l, r *V, _ *Environment) (*V, error) {
	if AsNum(r).Sign() == 0 {
		return nil, &TypeError{Context: "matrix / 0", Got: TagNum}
	}
	return matrixApply(l, func(a, b *big.Int) *big.Int {
		q, _ := new(big.Int).DivMod(a, b, new(big.Int))
		return q
	}, AsNum(r)), nil
}

// matrixReshape is "reshape:num_vec": rebinds the shape to a new
// num_vec of NUM dimensions, keeping the same flat backing array
// (original_source/matrix.py: `Matrix.reshape`, dispatch key
// `("reshape", "num_vec")`).
func matrixReshape(l, r *V, _ *Environment) (*V, error) {
	m := asMatrix(l)
	list := asNumVec(r)
	shape := make([]int64, list.Size())
	for i := 0; i < list.Size(); i++ {
		elem, _ := list.Get(i)
		shape[i] = AsNum(elem.(*V)).Int64()
	}
	return matrixValue(&matrixData{shape: shape, cells: m.cells}, l.Sp), nil
}

// matrixShape returns the matrix's dimensions as a num_vec, matching
// matrix.py's `"shape": lambda a, b: Leaf("num_vec", a.w.shape())` —
// the shape vector is itself a homogeneous list of NUM, not a
// heterogeneous vec.
func matrixShape(l, _ *V, _ *Environment) (*V, error) {
	m := asMatrix(l)
	list := arraylist.New()
	for _, d := range m.shape {
		list.Add(NumInt64(d, l.Sp))
	}
	return Leaf(TagNumVec, list, l.Sp), nil
}

func matrixRank(l, _ *V, _ *Environment) (*V, error) {
	return NumInt64(int64(len(asMatrix(l).shape)), l.Sp), nil
}

// renderMatrix renders a matrix in original_source/matrix.py's
// nested-dimension layout (Matrix.print_dim).
func renderMatrix(m *matrixData) string {
	var b strings.Builder
	printDim(&b, m.shape, m.cells, 0, 1)
	return strings.TrimRight(b.String(), "\n")
}

func printDim(b *strings.Builder, shape []int64, cells []*big.Int, start, stride int64) {
	if len(shape) == 0 {
		b.WriteString(cells[start].String())
		b.WriteByte(' ')
		return
	}
	cur, rest := shape[0], shape[1:]
	for i := int64(0); i < cur; i++ {
		printDim(b, rest, cells, start+i*stride, stride*cur)
	}
	b.WriteByte('\n')
}
