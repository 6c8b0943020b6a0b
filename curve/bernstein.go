package curve

// binomials holds C(n,k) for all degrees a curve may have.
var binomials = pascal(MaxPoints - 1)

func pascal(n int) [][]float64 {
	rows := make([][]float64, n+1)
	for i := 0; i <= n; i++ {
		rows[i] = make([]float64, i+1)
		rows[i][0], rows[i][i] = 1, 1
		for k := 1; k < i; k++ {
			rows[i][k] = rows[i-1][k-1] + rows[i-1][k]
		}
	}
	return rows
}

// Binomial returns the binomial coefficient C(n,k).
// It is 0 for k outside of [0,n].
func Binomial(n, k int) float64 {
	if k < 0 || n < 0 || k > n {
		return 0
	}
	if n < len(binomials) {
		return binomials[n][k]
	}
	c := 1.0
	for i := 1; i <= k; i++ {
		c = c * float64(n-k+i) / float64(i)
	}
	return c
}

// ipow computes x^e for small non-negative integer exponents.
// ipow(0, 0) is 1, which makes the endpoints of a curve exact.
func ipow(x float64, e int) float64 {
	r := 1.0
	for ; e > 0; e-- {
		r *= x
	}
	return r
}

// bernstein returns the Bernstein basis polynomial b(i,n) at t.
func bernstein(i, n int, t float64) float64 {
	return Binomial(n, i) * ipow(1-t, n-i) * ipow(t, i)
}

// EvaluatePoint computes the point at parameter t of the Bézier curve with
// control points pts. The degree of the curve is len(pts)-1.
//
// At t=0 the result is exactly pts[0], at t=1 it is exactly pts[len(pts)-1].
// An empty point list evaluates to the origin.
func EvaluatePoint(pts []Point, t float64) Point {
	n := len(pts) - 1
	var x, y float64
	for i, p := range pts {
		b := bernstein(i, n, t)
		x += p.X * b
		y += p.Y * b
	}
	return Point{X: x, Y: y}
}

// EvaluateRadius applies the Bernstein sum of EvaluatePoint to a sequence of
// scalar radii.
func EvaluateRadius(radii []float64, t float64) float64 {
	n := len(radii) - 1
	var r float64
	for i, v := range radii {
		r += v * bernstein(i, n, t)
	}
	return r
}
