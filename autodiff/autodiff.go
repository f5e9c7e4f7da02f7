// Copyright 2026 QOC-ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package autodiff provides reverse-mode automatic differentiation over
// dense complex matrices.
//
// Operations performed through an Engine are recorded on a gradient
// tape; Tape().Backward walks the tape in reverse and returns the
// cotangent of every matrix that contributed to the output. The matrix
// exponentials are opaque primitives with hand-derived backward rules,
// registered explicitly at engine construction.
//
// Example:
//
//	import (
//	    "github.com/qoc-ml/qoc/autodiff"
//	    "github.com/qoc-ml/qoc/linalg"
//	)
//
//	func main() {
//	    engine := autodiff.New()
//	    engine.Tape().StartRecording()
//
//	    m := linalg.MustFromSlice([]complex128{0, 1i, -1i, 0}, 2, 2)
//	    e := engine.Expm(m)
//
//	    cotangent := linalg.Eye(2)
//	    grads := engine.Tape().Backward(cotangent)
//	    _ = grads[m] // cotangent with respect to m
//	    _ = e
//	}
package autodiff

import (
	"github.com/qoc-ml/qoc/internal/autodiff"
)

// Engine records matrix primitives on a gradient tape.
type Engine = autodiff.Engine

// New creates an engine with the builtin expm primitives registered.
func New() *Engine {
	return autodiff.New()
}

// GradientTape records operations for automatic differentiation.
type GradientTape = autodiff.GradientTape

// NewGradientTape creates a new gradient tape.
func NewGradientTape() *GradientTape {
	return autodiff.NewGradientTape()
}

// DifferentiableOp is the extension point for custom primitives: an
// opaque forward computation plus a backward map from the output
// cotangent to one cotangent per input.
type DifferentiableOp = autodiff.DifferentiableOp

// Registry is a table of custom differentiable primitives.
type Registry = autodiff.Registry

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return autodiff.NewRegistry()
}

// RegisterBuiltins registers the expm primitives into a registry.
func RegisterBuiltins(r *Registry) error {
	return autodiff.RegisterBuiltins(r)
}
