package curve

import (
	"math"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestBinomial(t *testing.T) {
	expected := [][]float64{
		{1},
		{1, 1},
		{1, 2, 1},
		{1, 3, 3, 1},
		{1, 4, 6, 4, 1},
		{1, 5, 10, 10, 5, 1},
	}
	for n, row := range expected {
		for k, c := range row {
			if Binomial(n, k) != c {
				t.Errorf("expected C(%d,%d) = %g, is %g", n, k, c, Binomial(n, k))
			}
		}
	}
	if Binomial(7, 3) != 35 {
		t.Errorf("expected C(7,3) = 35 beyond the table, is %g", Binomial(7, 3))
	}
	if Binomial(3, 4) != 0 || Binomial(3, -1) != 0 {
		t.Errorf("expected out of range binomials to be 0")
	}
}

func TestEndpointInterpolation(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glyphstroke.curve")
	defer teardown()
	//
	pts := []Point{Pt(-3.7, 11.1), Pt(4, 9), Pt(17.3, -2), Pt(21, 5.5), Pt(0.1, 0.2), Pt(99.9, -42.42)}
	for n := 2; n <= len(pts); n++ {
		p := pts[:n]
		if got := EvaluatePoint(p, 0); got != p[0] {
			t.Errorf("degree %d: expected start point %v, got %v", n-1, p[0], got)
		}
		if got := EvaluatePoint(p, 1); got != p[n-1] {
			t.Errorf("degree %d: expected end point %v, got %v", n-1, p[n-1], got)
		}
	}
}

func TestEvaluateLinear(t *testing.T) {
	p := EvaluatePoint([]Point{Pt(0, 0), Pt(10, 0)}, 0.5)
	assert.InDelta(t, 5.0, p.X, 1e-12)
	assert.InDelta(t, 0.0, p.Y, 1e-12)
	r := EvaluateRadius([]float64{5, 5}, 0.5)
	assert.InDelta(t, 5.0, r, 1e-12)
}

func TestEvaluateQuadratic(t *testing.T) {
	// B(0.5) = 0.25*P0 + 0.5*P1 + 0.25*P2
	pts := []Point{Pt(0, 0), Pt(10, 20), Pt(20, 0)}
	p := EvaluatePoint(pts, 0.5)
	assert.InDelta(t, 10.0, p.X, 1e-12)
	assert.InDelta(t, 10.0, p.Y, 1e-12)
	r := EvaluateRadius([]float64{2, 10, 4}, 0.5)
	assert.InDelta(t, 0.5+5+1, r, 1e-12)
}

func TestRadiusStaysWithinControlRadii(t *testing.T) {
	radii := []float64{1, 20, 3, 17, 8, 2}
	for i := 0; i <= 100; i++ {
		r := EvaluateRadius(radii, float64(i)/100)
		if r < 1-1e-9 || r > 20+1e-9 {
			t.Fatalf("radius %g at t=%g escapes convex hull [1,20]", r, float64(i)/100)
		}
	}
}

func TestCurveAt(t *testing.T) {
	c := Curve{CP(0, 0, 5), CP(10, 0, 5)}
	p, r := c.At(0.5)
	assert.Equal(t, Pt(5, 0), p)
	assert.Equal(t, 5.0, r)
	//
	single := Curve{CP(3, 3, 3)}
	p, r = single.At(0.5)
	assert.Equal(t, Point{}, p, "single point curve is not renderable")
	assert.Zero(t, r)
}

func TestCurveHelpers(t *testing.T) {
	c := Curve{CP(1, 2, 3), CP(4, 5, 6)}
	assert.Equal(t, 1, c.Degree())
	assert.True(t, c.Renderable())
	assert.False(t, c.Full())
	assert.Equal(t, []Point{Pt(1, 2), Pt(4, 5)}, c.Points())
	assert.Equal(t, []float64{3, 6}, c.Radii())
	d := c.Clone()
	d[0].X = 100
	assert.Equal(t, 1.0, c[0].X, "clone must not share storage")
	assert.Nil(t, Curve(nil).Clone())
	assert.Equal(t, "[(1, 2, r=3) (4, 5, r=6)]", c.String())
}

func TestControlPointContains(t *testing.T) {
	cp := CP(10, 10, 5)
	assert.True(t, cp.Contains(10, 10))
	assert.True(t, cp.Contains(15, 10), "boundary counts as inside")
	assert.False(t, cp.Contains(15.01, 10))
	assert.InDelta(t, math.Sqrt2*5, Pt(0, 0).Dist(Pt(5, 5)), 1e-12)
}

func TestConnection(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glyphstroke.curve")
	defer teardown()
	//
	c := Connection(CP(0, 0, 4), CP(10, 20, 8))
	if len(c) != 3 {
		t.Fatalf("expected connection to have 3 points, has %d", len(c))
	}
	assert.Equal(t, CP(0, 0, 4), c[0])
	assert.Equal(t, CP(5, 10, 6), c[1])
	assert.Equal(t, CP(10, 20, 8), c[2])
}
