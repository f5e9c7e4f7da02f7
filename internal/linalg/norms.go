package linalg

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// RMSNorm returns the root-mean-square magnitude of a matrix:
// sqrt(sum(real(a * conj(a))) / n) over all n elements.
func RMSNorm(m *Matrix) float64 {
	return RMSNormVec(m.data)
}

// RMSNormVec is RMSNorm over a flat slice of elements.
func RMSNormVec(v []complex128) float64 {
	squares := make([]float64, len(v))
	for i, x := range v {
		squares[i] = real(x)*real(x) + imag(x)*imag(x)
	}
	return math.Sqrt(floats.Sum(squares) / float64(len(v)))
}

// OneNorm returns the maximum absolute column sum of m. Used by the
// matrix exponential to pick the Pade order and scaling.
func OneNorm(m *Matrix) float64 {
	var max float64
	for j := 0; j < m.cols; j++ {
		var s float64
		for i := 0; i < m.rows; i++ {
			v := m.data[i*m.cols+j]
			s += math.Hypot(real(v), imag(v))
		}
		if s > max {
			max = s
		}
	}
	return max
}
