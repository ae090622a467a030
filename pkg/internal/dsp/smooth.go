package dsp

import (
	"gonum.org/v1/gonum/mat"
)

// SavitzkyGolay smooths x with a local least-squares polynomial fit of the given order
// over a centered odd window. Edge samples are filled by evaluating polynomial fits of
// the first and last full windows. The window must be odd, larger than the order, and
// no longer than x; otherwise a copy of x is returned.
func SavitzkyGolay(x []float64, window, order int) []float64 {
	n := len(x)
	out := make([]float64, n)
	if window%2 == 0 || window <= order || window > n {
		copy(out, x)
		return out
	}

	half := window / 2
	weights := savgolWeights(window, order)

	for i := half; i < n-half; i++ {
		sum := 0.0
		for k := 0; k < window; k++ {
			sum += weights[k] * x[i-half+k]
		}
		out[i] = sum
	}

	// Leading edge: evaluate the polynomial fitted to the first window.
	headCoeffs := polyFit(x[:window], order)
	for i := 0; i < half; i++ {
		out[i] = polyEval(headCoeffs, float64(i))
	}
	// Trailing edge: same with the last window.
	tailCoeffs := polyFit(x[n-window:], order)
	for i := n - half; i < n; i++ {
		out[i] = polyEval(tailCoeffs, float64(i-(n-window)))
	}

	return out
}

// savgolWeights returns the convolution weights that evaluate the fitted polynomial at
// the window center: the first row of (A^T A)^-1 A^T for the Vandermonde design matrix A.
func savgolWeights(window, order int) []float64 {
	half := window / 2
	a := mat.NewDense(window, order+1, nil)
	for i := 0; i < window; i++ {
		z := float64(i - half)
		p := 1.0
		for j := 0; j <= order; j++ {
			a.Set(i, j, p)
			p *= z
		}
	}

	var ata mat.Dense
	ata.Mul(a.T(), a)
	var inv mat.Dense
	if err := inv.Inverse(&ata); err != nil {
		// Degenerate design matrix; fall back to a uniform kernel.
		w := make([]float64, window)
		for i := range w {
			w[i] = 1 / float64(window)
		}
		return w
	}
	var pinv mat.Dense
	pinv.Mul(&inv, a.T())
	return mat.Row(nil, 0, &pinv)
}

// polyFit fits a polynomial of the given order to y sampled at t = 0..len(y)-1,
// returning the coefficients in ascending power order.
func polyFit(y []float64, order int) []float64 {
	m := len(y)
	a := mat.NewDense(m, order+1, nil)
	for i := 0; i < m; i++ {
		p := 1.0
		for j := 0; j <= order; j++ {
			a.Set(i, j, p)
			p *= float64(i)
		}
	}
	b := mat.NewVecDense(m, nil)
	for i, v := range y {
		b.SetVec(i, v)
	}

	var coeffs mat.VecDense
	if err := coeffs.SolveVec(a, b); err != nil {
		// Fall back to a constant fit at the window mean.
		out := make([]float64, order+1)
		out[0] = Mean(y)
		return out
	}
	out := make([]float64, order+1)
	for j := 0; j <= order; j++ {
		out[j] = coeffs.AtVec(j)
	}
	return out
}

func polyEval(coeffs []float64, t float64) float64 {
	sum := 0.0
	p := 1.0
	for _, c := range coeffs {
		sum += c * p
		p *= t
	}
	return sum
}
