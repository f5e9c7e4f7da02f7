package linalg

import (
	"fmt"
	"math"
	"math/cmplx"
)

// Pade coefficient tables for the [m/m] approximants of exp, and the
// 1-norm thresholds below which each order meets double-precision
// accuracy (Higham, "The scaling and squaring method for the matrix
// exponential revisited", 2005).
var (
	padeCoeffs3 = []float64{120, 60, 12, 1}
	padeCoeffs5 = []float64{30240, 15120, 3360, 420, 30, 1}
	padeCoeffs7 = []float64{17297280, 8648640, 1995840, 277200, 25200, 1512, 56, 1}
	padeCoeffs9 = []float64{
		17643225600, 8821612800, 2075673600, 302702400, 30270240,
		2162160, 110880, 3960, 90, 1,
	}
	padeCoeffs13 = []float64{
		64764752532480000, 32382376266240000, 7771770303897600,
		1187353796428800, 129060195264000, 10559470521600, 670442572800,
		33522128640, 1323241920, 40840800, 960960, 16380, 182, 1,
	}

	padeTheta3  = 1.495585217958292e-2
	padeTheta5  = 2.539398330063230e-1
	padeTheta7  = 9.504178996162932e-1
	padeTheta9  = 2.097847961257068
	padeTheta13 = 5.371920351148152
)

// Expm computes the matrix exponential exp(m) by scaling and squaring
// with Pade approximation. The input must be square.
func Expm(m *Matrix) *Matrix {
	if !m.IsSquare() {
		panic(fmt.Sprintf("linalg: Expm requires a square matrix, got %dx%d", m.rows, m.cols))
	}

	norm := OneNorm(m)
	switch {
	case norm <= padeTheta3:
		return padeApprox(m, padeCoeffs3)
	case norm <= padeTheta5:
		return padeApprox(m, padeCoeffs5)
	case norm <= padeTheta7:
		return padeApprox(m, padeCoeffs7)
	case norm <= padeTheta9:
		return padeApprox(m, padeCoeffs9)
	}

	// Scale so the 1-norm falls under the order-13 threshold, apply the
	// [13/13] approximant, then undo the scaling by repeated squaring.
	s := 0
	if norm > padeTheta13 {
		s = int(math.Ceil(math.Log2(norm / padeTheta13)))
	}
	scaled := Scale(complex(math.Ldexp(1, -s), 0), m)
	e := padeApprox13(scaled)
	for i := 0; i < s; i++ {
		e = MatMul(e, e)
	}
	return e
}

// padeApprox evaluates the [m/m] Pade approximant with the given odd
// length coefficient table (orders 3, 5, 7, 9).
func padeApprox(a *Matrix, b []float64) *Matrix {
	n := a.rows
	a2 := MatMul(a, a)

	// U collects odd powers, V even powers:
	//   U = A (b1 I + b3 A^2 + b5 A^4 + ...)
	//   V = b0 I + b2 A^2 + b4 A^4 + ...
	uInner := Scale(complex(b[1], 0), Eye(n))
	v := Scale(complex(b[0], 0), Eye(n))
	pow := Eye(n)
	for k := 2; k < len(b); k += 2 {
		pow = MatMul(pow, a2)
		v = Add(v, Scale(complex(b[k], 0), pow))
		if k+1 < len(b) {
			uInner = Add(uInner, Scale(complex(b[k+1], 0), pow))
		}
	}
	u := MatMul(a, uInner)

	// r = (V - U)^-1 (V + U)
	return solve(Sub(v, u), Add(v, u))
}

// padeApprox13 evaluates the [13/13] approximant using the factored
// form that needs only A^2, A^4 and A^6.
func padeApprox13(a *Matrix) *Matrix {
	n := a.rows
	b := padeCoeffs13
	a2 := MatMul(a, a)
	a4 := MatMul(a2, a2)
	a6 := MatMul(a4, a2)

	w1 := Add(Scale(complex(b[13], 0), a6), Add(Scale(complex(b[11], 0), a4), Scale(complex(b[9], 0), a2)))
	w2 := Add(Scale(complex(b[7], 0), a6), Add(Scale(complex(b[5], 0), a4),
		Add(Scale(complex(b[3], 0), a2), Scale(complex(b[1], 0), Eye(n)))))
	u := MatMul(a, Add(MatMul(a6, w1), w2))

	z1 := Add(Scale(complex(b[12], 0), a6), Add(Scale(complex(b[10], 0), a4), Scale(complex(b[8], 0), a2)))
	z2 := Add(Scale(complex(b[6], 0), a6), Add(Scale(complex(b[4], 0), a4),
		Add(Scale(complex(b[2], 0), a2), Scale(complex(b[0], 0), Eye(n)))))
	v := Add(MatMul(a6, z1), z2)

	return solve(Sub(v, u), Add(v, u))
}

// solve returns X with A X = B via Gaussian elimination with partial
// (largest modulus) pivoting. A and B are not modified.
func solve(a, b *Matrix) *Matrix {
	n := a.rows
	lu := a.Clone()
	x := b.Clone()

	for col := 0; col < n; col++ {
		// Pivot on the largest modulus in the column.
		pivot := col
		max := cmplx.Abs(lu.data[col*n+col])
		for r := col + 1; r < n; r++ {
			if v := cmplx.Abs(lu.data[r*n+col]); v > max {
				max = v
				pivot = r
			}
		}
		if pivot != col {
			swapRows(lu, col, pivot)
			swapRows(x, col, pivot)
		}

		p := lu.data[col*n+col]
		for r := col + 1; r < n; r++ {
			f := lu.data[r*n+col] / p
			if f == 0 {
				continue
			}
			lu.data[r*n+col] = 0
			for c := col + 1; c < n; c++ {
				lu.data[r*n+c] -= f * lu.data[col*n+c]
			}
			for c := 0; c < x.cols; c++ {
				x.data[r*x.cols+c] -= f * x.data[col*x.cols+c]
			}
		}
	}

	// Back substitution.
	for col := n - 1; col >= 0; col-- {
		p := lu.data[col*n+col]
		for c := 0; c < x.cols; c++ {
			s := x.data[col*x.cols+c]
			for k := col + 1; k < n; k++ {
				s -= lu.data[col*n+k] * x.data[k*x.cols+c]
			}
			x.data[col*x.cols+c] = s / p
		}
	}
	return x
}

func swapRows(m *Matrix, i, j int) {
	ri := m.data[i*m.cols : (i+1)*m.cols]
	rj := m.data[j*m.cols : (j+1)*m.cols]
	for k := range ri {
		ri[k], rj[k] = rj[k], ri[k]
	}
}
