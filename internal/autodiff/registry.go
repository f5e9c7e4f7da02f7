package autodiff

import (
	"fmt"
	"sync"

	"github.com/qoc-ml/qoc/internal/autodiff/ops"
	"github.com/qoc-ml/qoc/internal/linalg"
)

// DifferentiableOp is the extension point for custom primitives: an
// opaque forward computation paired with a hand-supplied backward map.
// The backward contract matches the tape's: one cotangent per forward
// input, in input order.
type DifferentiableOp interface {
	// Name identifies the primitive in the registry.
	Name() string

	// Forward computes the primitive's output from its inputs.
	Forward(inputs ...*linalg.Matrix) *linalg.Matrix

	// Backward maps the output cotangent to one cotangent per input,
	// given the forward output and inputs.
	Backward(output *linalg.Matrix, inputs []*linalg.Matrix, cotangent *linalg.Matrix) []*linalg.Matrix
}

// Registry is a table of custom differentiable primitives. Primitives
// are registered explicitly during engine construction rather than by
// package init side effects.
type Registry struct {
	mu    sync.RWMutex
	prims map[string]DifferentiableOp
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{prims: make(map[string]DifferentiableOp)}
}

// Register adds a primitive to the registry. Registering the same name
// twice is an error.
func (r *Registry) Register(op DifferentiableOp) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.prims[op.Name()]; exists {
		return fmt.Errorf("autodiff: primitive %q already registered", op.Name())
	}
	r.prims[op.Name()] = op
	return nil
}

// Lookup returns the primitive registered under name.
func (r *Registry) Lookup(name string) (DifferentiableOp, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	op, ok := r.prims[name]
	return op, ok
}

// Names returns the registered primitive names.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.prims))
	for name := range r.prims {
		names = append(names, name)
	}
	return names
}

// primitiveOp adapts a registered DifferentiableOp invocation into a
// tape operation.
type primitiveOp struct {
	prim   DifferentiableOp
	inputs []*linalg.Matrix
	output *linalg.Matrix
}

func (op *primitiveOp) Backward(outputGrad *linalg.Matrix) []*linalg.Matrix {
	return op.prim.Backward(op.output, op.inputs, outputGrad)
}

func (op *primitiveOp) Inputs() []*linalg.Matrix { return op.inputs }

func (op *primitiveOp) Output() *linalg.Matrix { return op.output }

var _ ops.Operation = (*primitiveOp)(nil)

// expmPrimitive exposes the generic matrix exponential through the
// registry under the name "expm".
type expmPrimitive struct{}

func (expmPrimitive) Name() string { return "expm" }

func (expmPrimitive) Forward(inputs ...*linalg.Matrix) *linalg.Matrix {
	if len(inputs) != 1 {
		panic(fmt.Sprintf("autodiff: expm takes 1 input, got %d", len(inputs)))
	}
	return linalg.Expm(inputs[0])
}

func (expmPrimitive) Backward(output *linalg.Matrix, inputs []*linalg.Matrix, cotangent *linalg.Matrix) []*linalg.Matrix {
	return []*linalg.Matrix{ops.ExpmVJP(output, cotangent)}
}

// expmFastGradPrimitive exposes the control-specialized exponential
// through the registry under the name "expm_fastgrad". Inputs are
// [m, H_1, ..., H_k]; the control cotangents are exact zeros.
type expmFastGradPrimitive struct{}

func (expmFastGradPrimitive) Name() string { return "expm_fastgrad" }

func (expmFastGradPrimitive) Forward(inputs ...*linalg.Matrix) *linalg.Matrix {
	if len(inputs) < 1 {
		panic("autodiff: expm_fastgrad takes at least 1 input")
	}
	return linalg.Expm(inputs[0])
}

func (expmFastGradPrimitive) Backward(output *linalg.Matrix, inputs []*linalg.Matrix, cotangent *linalg.Matrix) []*linalg.Matrix {
	controls := inputs[1:]
	grads := make([]*linalg.Matrix, len(inputs))
	grads[0] = ops.ExpmFastGradVJP(output, controls, cotangent)
	for i, h := range controls {
		grads[i+1] = linalg.New(h.Rows(), h.Cols())
	}
	return grads
}

// RegisterBuiltins registers the expm primitives. Called once from New;
// exported so a custom engine setup can populate its own registry.
func RegisterBuiltins(r *Registry) error {
	if err := r.Register(expmPrimitive{}); err != nil {
		return err
	}
	return r.Register(expmFastGradPrimitive{})
}
