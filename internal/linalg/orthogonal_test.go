package linalg_test

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats/scalar"

	"github.com/qoc-ml/qoc/internal/linalg"
)

func TestGramSchmidt_RowVectors(t *testing.T) {
	x := linalg.MustFromSlice([]complex128{
		1, 0,
		1, 1,
	}, 2, 2)

	y := linalg.GramSchmidt(x, true, true)

	// First row keeps the direction of [1, 0].
	assert.True(t, scalar.EqualWithinAbs(real(y.At(0, 0)), 1, 1e-12))
	assert.True(t, scalar.EqualWithinAbs(real(y.At(0, 1)), 0, 1e-12))

	// Rows are mutually orthogonal and unit norm.
	for i := 0; i < 2; i++ {
		var norm float64
		for j := 0; j < 2; j++ {
			norm += real(y.At(i, j))*real(y.At(i, j)) + imag(y.At(i, j))*imag(y.At(i, j))
		}
		assert.True(t, scalar.EqualWithinAbs(norm, 1, 1e-12), "row %d norm", i)
	}
	dot := linalg.Dot(y.Row(0), y.Row(1))
	assert.True(t, cmplx.Abs(dot) < 1e-12)
}

func TestGramSchmidt_ColumnVectors(t *testing.T) {
	x := linalg.MustFromSlice([]complex128{
		1, 1,
		0, 1,
	}, 2, 2)

	y := linalg.GramSchmidt(x, false, true)

	// Columns are orthonormal.
	col0 := []complex128{y.At(0, 0), y.At(1, 0)}
	col1 := []complex128{y.At(0, 1), y.At(1, 1)}
	assert.True(t, cmplx.Abs(linalg.Dot(col0, col1)) < 1e-12)
	assert.True(t, scalar.EqualWithinAbs(real(linalg.Dot(col0, col0)), 1, 1e-12))
}

func TestGramSchmidt_NoNormalize(t *testing.T) {
	x := linalg.MustFromSlice([]complex128{
		2, 0,
		1, 3,
	}, 2, 2)

	y := linalg.GramSchmidt(x, true, false)

	// First row untouched, second orthogonal but not unit norm.
	assert.Equal(t, complex128(2), y.At(0, 0))
	assert.Equal(t, complex128(0), y.At(0, 1))
	assert.True(t, cmplx.Abs(linalg.Dot(y.Row(0), y.Row(1))) < 1e-12)
	assert.True(t, scalar.EqualWithinAbs(cmplx.Abs(y.At(1, 1)), 3, 1e-12))
}

func TestGramSchmidt_ThreeRows(t *testing.T) {
	x := linalg.MustFromSlice([]complex128{
		1, 0, 0,
		1, 1, 0,
		1, 1, 1,
	}, 3, 3)

	y := linalg.GramSchmidt(x, true, true)
	for i := 0; i < 3; i++ {
		for j := i + 1; j < 3; j++ {
			dot := linalg.Dot(y.Row(i), y.Row(j))
			assert.True(t, cmplx.Abs(dot) < 1e-12, "rows %d,%d", i, j)
		}
	}
}

func TestProject_ReconstructsSpanVector(t *testing.T) {
	// Orthonormal basis of a 2-D subspace of C^3.
	basis := linalg.MustFromSlice([]complex128{
		1, 0, 0,
		0, 1, 0,
	}, 2, 3)

	x := []complex128{0.3, -0.7 + 0.2i, 0}
	y := linalg.Project(x, basis)

	require.Len(t, y, 3)
	for i := range x {
		assert.True(t, cmplx.Abs(y[i]-x[i]) < 1e-12, "component %d", i)
	}
}

func TestProject_DropsOrthogonalComponent(t *testing.T) {
	basis := linalg.MustFromSlice([]complex128{
		1, 0, 0,
	}, 1, 3)

	x := []complex128{2, 5, -3}
	y := linalg.Project(x, basis)

	assert.Equal(t, complex128(2), y[0])
	assert.Equal(t, complex128(0), y[1])
	assert.Equal(t, complex128(0), y[2])
}

func TestGramSchmidt_ClassicalCoefficients(t *testing.T) {
	// Nearly dependent rows separate the classical reduction from the
	// modified one: the classical form takes every projection
	// coefficient from the unreduced input row, and on this input the
	// two variants disagree at the 1e-8 scale.
	eps := complex128(1e-8)
	x := linalg.MustFromSlice([]complex128{
		1, 1, 1,
		1 + eps, 1, 1,
		1, 1 + eps, 1,
	}, 3, 3)

	y := linalg.GramSchmidt(x, true, false)

	classic := func(orig []complex128, prev ...[]complex128) []complex128 {
		dst := make([]complex128, len(orig))
		copy(dst, orig)
		for _, b := range prev {
			n := math.Sqrt(real(linalg.Dot(b, b)))
			c := linalg.Dot(orig, b) / complex(n*n, 0)
			for k := range dst {
				dst[k] -= c * b[k]
			}
		}
		return dst
	}
	y0 := x.Row(0)
	y1 := classic(x.Row(1), y0)
	y2 := classic(x.Row(2), y0, y1)

	want := [][]complex128{y0, y1, y2}
	for i := range want {
		got := y.Row(i)
		for k := range got {
			assert.True(t, cmplx.Abs(got[k]-want[i][k]) < 1e-12, "row %d entry %d", i, k)
		}
	}
}

func TestGramSchmidt_DependentRows(t *testing.T) {
	x := linalg.MustFromSlice([]complex128{
		1, 0,
		2, 0,
	}, 2, 2)

	// Dependent input is not detected. The second row collapses to
	// zero, and normalizing it then produces NaN entries.
	y := linalg.GramSchmidt(x, true, false)
	assert.Equal(t, complex128(0), y.At(1, 0))
	assert.Equal(t, complex128(0), y.At(1, 1))

	yn := linalg.GramSchmidt(x, true, true)
	assert.True(t, math.IsNaN(real(yn.At(1, 0))) || math.IsNaN(imag(yn.At(1, 0))))
}

func TestGramSchmidt_RotatedBasisNorm(t *testing.T) {
	s := complex(1/math.Sqrt2, 0)
	x := linalg.MustFromSlice([]complex128{
		s, s,
		1, 0,
	}, 2, 2)

	y := linalg.GramSchmidt(x, true, true)
	dot := linalg.Dot(y.Row(0), y.Row(1))
	assert.True(t, cmplx.Abs(dot) < 1e-12)
}
