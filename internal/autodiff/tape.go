package autodiff

import (
	"github.com/qoc-ml/qoc/internal/autodiff/ops"
	"github.com/qoc-ml/qoc/internal/linalg"
)

// GradientTape records operations during the forward pass and computes
// cotangents during the backward pass using reverse-mode automatic
// differentiation.
//
// Usage:
//
//	tape := NewGradientTape()
//	tape.StartRecording()
//	// ... perform operations ...
//	gradients := tape.Backward(outputGrad)
type GradientTape struct {
	operations []ops.Operation // Recorded operations (in execution order)
	recording  bool            // Whether tape is currently recording
}

// NewGradientTape creates a new gradient tape.
func NewGradientTape() *GradientTape {
	return &GradientTape{
		operations: make([]ops.Operation, 0, 64),
		recording:  false,
	}
}

// StartRecording enables operation recording.
func (t *GradientTape) StartRecording() {
	t.recording = true
}

// StopRecording disables operation recording.
func (t *GradientTape) StopRecording() {
	t.recording = false
}

// IsRecording returns true if the tape is currently recording operations.
func (t *GradientTape) IsRecording() bool {
	return t.recording
}

// Record adds an operation to the tape.
// Only records if the tape is currently recording.
func (t *GradientTape) Record(op ops.Operation) {
	if t.recording {
		t.operations = append(t.operations, op)
	}
}

// Clear resets the tape, removing all recorded operations.
// Recording state is preserved.
func (t *GradientTape) Clear() {
	t.operations = t.operations[:0]
}

// NumOps returns the number of recorded operations.
func (t *GradientTape) NumOps() int {
	return len(t.operations)
}

// Backward computes cotangents for all inputs by walking the tape in
// reverse.
//
// Algorithm:
//  1. Seed the final output with outputGrad
//  2. Walk operations in reverse order
//  3. For each operation whose output has a cotangent, apply its
//     backward rule
//  4. Accumulate cotangents when the same matrix feeds several
//     operations
//
// Returns a map from matrix identity to its accumulated cotangent.
func (t *GradientTape) Backward(outputGrad *linalg.Matrix) map[*linalg.Matrix]*linalg.Matrix {
	grads := make(map[*linalg.Matrix]*linalg.Matrix)
	if len(t.operations) == 0 {
		return grads
	}

	// Stop recording during the backward pass so gradient arithmetic is
	// not itself recorded.
	wasRecording := t.recording
	t.recording = false
	defer func() {
		t.recording = wasRecording
	}()

	lastOp := t.operations[len(t.operations)-1]
	grads[lastOp.Output()] = outputGrad

	for i := len(t.operations) - 1; i >= 0; i-- {
		op := t.operations[i]
		opOutputGrad, hasGrad := grads[op.Output()]
		if !hasGrad {
			continue
		}
		inputGrads := op.Backward(opOutputGrad)
		t.accumulateGrads(op, inputGrads, grads)
	}

	return grads
}

// accumulateGrads accumulates cotangents for each input matrix.
func (t *GradientTape) accumulateGrads(
	op ops.Operation,
	inputGrads []*linalg.Matrix,
	grads map[*linalg.Matrix]*linalg.Matrix,
) {
	inputs := op.Inputs()
	for j, input := range inputs {
		if j >= len(inputGrads) {
			break
		}
		inputGrad := inputGrads[j]
		if inputGrad == nil {
			continue
		}
		if existing, ok := grads[input]; ok {
			grads[input] = linalg.Add(existing, inputGrad)
		} else {
			grads[input] = inputGrad
		}
	}
}
