// Package autodiff implements reverse-mode automatic differentiation
// over dense complex matrices using a gradient tape.
//
// Architecture:
//   - Engine: runs linalg primitives and records them on the tape
//   - GradientTape: records operations during the forward pass and
//     walks them in reverse to accumulate cotangents
//   - ops.Operation: each primitive implements its own backward rule
//   - Registry: extension point for opaque primitives with hand-derived
//     rules (the matrix exponentials)
//
// Usage:
//
//	engine := autodiff.New()
//	engine.Tape().StartRecording()
//	e := engine.Expm(m)
//	grads := engine.Tape().Backward(cotangent)
//	gradM := grads[m]
package autodiff

import (
	"fmt"

	"github.com/qoc-ml/qoc/internal/autodiff/ops"
	"github.com/qoc-ml/qoc/internal/linalg"
)

// Engine runs matrix primitives and records them on a gradient tape.
// The arithmetic primitives differentiate by their standard rules; the
// matrix exponentials are opaque primitives with custom rules from the
// registry.
type Engine struct {
	tape     *GradientTape
	registry *Registry
}

// New creates an engine with the builtin primitives registered.
// Registration happens here, explicitly, not at package load time.
func New() *Engine {
	e := &Engine{
		tape:     NewGradientTape(),
		registry: NewRegistry(),
	}
	if err := RegisterBuiltins(e.registry); err != nil {
		panic(err)
	}
	return e
}

// Tape returns the gradient tape for manual control.
func (e *Engine) Tape() *GradientTape {
	return e.tape
}

// Registry returns the primitive registry.
func (e *Engine) Registry() *Registry {
	return e.registry
}

// Add performs element-wise addition and records the operation.
func (e *Engine) Add(a, b *linalg.Matrix) *linalg.Matrix {
	result := linalg.Add(a, b)
	if e.tape.IsRecording() {
		e.tape.Record(ops.NewAddOp(a, b, result))
	}
	return result
}

// Sub performs element-wise subtraction and records the operation.
func (e *Engine) Sub(a, b *linalg.Matrix) *linalg.Matrix {
	result := linalg.Sub(a, b)
	if e.tape.IsRecording() {
		e.tape.Record(ops.NewSubOp(a, b, result))
	}
	return result
}

// Mul performs element-wise multiplication and records the operation.
func (e *Engine) Mul(a, b *linalg.Matrix) *linalg.Matrix {
	result := linalg.Hadamard(a, b)
	if e.tape.IsRecording() {
		e.tape.Record(ops.NewMulOp(a, b, result))
	}
	return result
}

// Scale multiplies by a scalar and records the operation.
func (e *Engine) Scale(alpha complex128, a *linalg.Matrix) *linalg.Matrix {
	result := linalg.Scale(alpha, a)
	if e.tape.IsRecording() {
		e.tape.Record(ops.NewScaleOp(alpha, a, result))
	}
	return result
}

// MatMul performs matrix multiplication and records the operation.
func (e *Engine) MatMul(a, b *linalg.Matrix) *linalg.Matrix {
	result := linalg.MatMul(a, b)
	if e.tape.IsRecording() {
		e.tape.Record(ops.NewMatMulOp(a, b, result))
	}
	return result
}

// Adjoint computes the conjugate transpose and records the operation.
func (e *Engine) Adjoint(a *linalg.Matrix) *linalg.Matrix {
	result := linalg.Adjoint(a)
	if e.tape.IsRecording() {
		e.tape.Record(ops.NewAdjointOp(a, result))
	}
	return result
}

// Kron computes the Kronecker product and records the operation.
func (e *Engine) Kron(a, b *linalg.Matrix) *linalg.Matrix {
	result := linalg.Kron(a, b)
	if e.tape.IsRecording() {
		e.tape.Record(ops.NewKronOp(a, b, result))
	}
	return result
}

// Expm computes the matrix exponential and records it as an opaque
// primitive with the generic first-order Frechet rule.
func (e *Engine) Expm(m *linalg.Matrix) *linalg.Matrix {
	result := linalg.Expm(m)
	if e.tape.IsRecording() {
		e.tape.Record(ops.NewExpmOp(m, result))
	}
	return result
}

// ExpmFastGrad computes the matrix exponential of m = H_0 + Σ u_k H_k,
// recording the control-specialized primitive. The control generators
// travel with the operation so the backward rule can read them; they
// receive exact zero cotangents.
func (e *Engine) ExpmFastGrad(m *linalg.Matrix, controls []*linalg.Matrix) *linalg.Matrix {
	result := linalg.Expm(m)
	if e.tape.IsRecording() {
		e.tape.Record(ops.NewExpmFastGradOp(m, controls, result))
	}
	return result
}

// Apply runs a registered primitive by name, recording it on the tape.
func (e *Engine) Apply(name string, inputs ...*linalg.Matrix) (*linalg.Matrix, error) {
	prim, ok := e.registry.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("autodiff: unknown primitive %q", name)
	}
	output := prim.Forward(inputs...)
	if e.tape.IsRecording() {
		e.tape.Record(&primitiveOp{prim: prim, inputs: inputs, output: output})
	}
	return output, nil
}

// Commutator computes [a, b] = a@b - b@a from recorded primitives. It
// carries no rule of its own: the tape differentiates through the two
// multiplications and the subtraction.
func (e *Engine) Commutator(a, b *linalg.Matrix) *linalg.Matrix {
	return e.Sub(e.MatMul(a, b), e.MatMul(b, a))
}

// Matmuls reduces matrices by multiplication, left to right, from
// recorded primitives.
func (e *Engine) Matmuls(ms ...*linalg.Matrix) *linalg.Matrix {
	if len(ms) == 0 {
		panic("autodiff: Matmuls requires at least one matrix")
	}
	out := ms[0]
	for _, m := range ms[1:] {
		out = e.MatMul(out, m)
	}
	return out
}

// Krons reduces matrices by the Kronecker product, left to right, from
// recorded primitives.
func (e *Engine) Krons(ms ...*linalg.Matrix) *linalg.Matrix {
	if len(ms) == 0 {
		panic("autodiff: Krons requires at least one matrix")
	}
	out := ms[0]
	for _, m := range ms[1:] {
		out = e.Kron(out, m)
	}
	return out
}
