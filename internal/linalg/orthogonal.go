package linalg

import "math"

// vecNorm returns the Euclidean norm of v.
func vecNorm(v []complex128) float64 {
	var s float64
	for _, x := range v {
		s += real(x)*real(x) + imag(x)*imag(x)
	}
	return math.Sqrt(s)
}

// GramSchmidt orthogonalizes the rows of x (or its columns when
// rowVecs is false) using the classical, non-modified Gram-Schmidt
// procedure: rows are processed in index order, every projection
// coefficient is computed from the original row i, and the combined
// projection onto all previously produced rows is subtracted in one
// step. When normalize is true, every output row is scaled to unit
// Euclidean norm.
//
// Inner products do not conjugate, matching the reference computation.
// The input rows are assumed linearly independent; a near-zero row norm
// after projection is not detected and silently yields a degenerate
// (near-zero or NaN-containing) row.
func GramSchmidt(x *Matrix, rowVecs, normalize bool) *Matrix {
	if !rowVecs {
		x = Transpose(x)
	}

	out := New(x.rows, x.cols)
	copy(out.data[:x.cols], x.data[:x.cols])
	for i := 1; i < x.rows; i++ {
		orig := x.Row(i)
		dst := out.data[i*out.cols : (i+1)*out.cols]
		copy(dst, orig)
		// Each coefficient is taken against the original row i, not
		// the partially reduced one.
		for j := 0; j < i; j++ {
			y := out.data[j*out.cols : (j+1)*out.cols]
			n := vecNorm(y)
			coeff := Dot(orig, y) / complex(n*n, 0)
			for k := range dst {
				dst[k] -= coeff * y[k]
			}
		}
	}

	if normalize {
		for i := 0; i < out.rows; i++ {
			y := out.data[i*out.cols : (i+1)*out.cols]
			inv := complex(1/vecNorm(y), 0)
			for k := range y {
				y[k] *= inv
			}
		}
	}

	if !rowVecs {
		return Transpose(out)
	}
	return out
}

// Project returns the component of x lying in the subspace spanned by
// the rows of basis, computed as the sum over basis rows b of
// (x · b) * b with a plain, non-conjugating dot product. The basis is
// assumed orthonormal; this is not verified.
func Project(x []complex128, basis *Matrix) []complex128 {
	y := make([]complex128, len(x))
	for i := 0; i < basis.rows; i++ {
		b := basis.data[i*basis.cols : (i+1)*basis.cols]
		c := Dot(x, b)
		for k := range y {
			y[k] += c * b[k]
		}
	}
	return y
}
