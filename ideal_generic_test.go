package camera

import (
	"math"
	"testing"

	"github.com/pkg/errors"
	"go.viam.com/test"
)

func TestPixelToRayPerspectiveRoundTrip(t *testing.T) {
	// with epsilon 0 the model reduces to a pure perspective camera, so
	// projecting the back-projected ray must reproduce the pixel
	p := NewParameters[float64](500, 500, 320, 240, 0, 640, 480, 0, 400)
	for y := 1.0; y < 480; y += 59 {
		for x := 1.0; x < 640; x += 79 {
			rx, ry, rz := PixelToRay(p, x, y)
			gotX, gotY := PointToPixel(p, rx, ry, rz)
			test.That(t, gotX, test.ShouldAlmostEqual, x, 1e-5)
			test.That(t, gotY, test.ShouldAlmostEqual, y, 1e-5)
		}
	}
}

func TestPixelToRayUnifiedSphereRoundTrip(t *testing.T) {
	p := NewParameters[float64](285.4, 286.0, 320.1, 240.7, 0.85, 640, 480, 0, 280)
	for _, px := range []struct{ x, y float64 }{
		{320.1, 240.7},
		{400, 300},
		{100, 50},
		{620, 10},
	} {
		rx, ry, rz := PixelToRay(p, px.x, px.y)
		gotX, gotY := PointToPixel(p, rx, ry, rz)
		test.That(t, gotX, test.ShouldAlmostEqual, px.x, 1e-5)
		test.That(t, gotY, test.ShouldAlmostEqual, px.y, 1e-5)
	}
}

func TestPixelToRayCenter(t *testing.T) {
	// the ray through the principal point is the optical axis
	p := NewParameters[float64](500, 500, 320, 240, 0.85, 640, 480, 0, 400)
	rx, ry, rz := PixelToRay(p, 320.0, 240.0)
	test.That(t, rx, test.ShouldAlmostEqual, 0)
	test.That(t, ry, test.ShouldAlmostEqual, 0)
	test.That(t, rz, test.ShouldAlmostEqual, 1)
}

func TestPointToPixelNormalizationInvariance(t *testing.T) {
	p := NewParameters[float64](285.4, 286.0, 320.1, 240.7, 0.85, 640, 480, 0, 280)
	x, y, z := 0.3, -0.2, 0.9
	gotX, gotY := PointToPixel(p, x, y, z)
	for _, k := range []float64{0.001, 2, 3.7, 1500} {
		scaledX, scaledY := PointToPixel(p, k*x, k*y, k*z)
		test.That(t, scaledX, test.ShouldAlmostEqual, gotX, 1e-9)
		test.That(t, scaledY, test.ShouldAlmostEqual, gotY, 1e-9)
	}
}

func TestPixelToRayNaNEdge(t *testing.T) {
	// |epsilon| > 1 makes the radicand negative away from the center; the
	// NaN is documented behavior, not corrected
	p := NewParameters[float64](1, 1, 0, 0, 2, 640, 480, 0, 400)
	rx, ry, rz := PixelToRay(p, 10.0, 0.0)
	test.That(t, math.IsNaN(rx), test.ShouldBeTrue)
	test.That(t, math.IsNaN(ry), test.ShouldBeTrue)
	test.That(t, math.IsNaN(rz), test.ShouldBeTrue)
}

func TestPointToPixelSingularity(t *testing.T) {
	// unit z of -epsilon is the model's blind spot
	p := NewParameters[float64](500, 500, 320, 240, 1, 640, 480, 0, 400)
	gotX, gotY := PointToPixel(p, 0.0, 0.0, -1.0)
	test.That(t, math.IsNaN(gotX), test.ShouldBeTrue)
	test.That(t, math.IsNaN(gotY), test.ShouldBeTrue)

	p.SetEpsilon(math.Sqrt2 / 2)
	gotX, _ = PointToPixel(p, 1.0, 0.0, -1.0)
	test.That(t, math.IsInf(gotX, 1), test.ShouldBeTrue)
}

func TestPixelValidSquare(t *testing.T) {
	p := NewParameters[float64](500, 500, 320, 240, 0, 640, 480, 0, 400)
	test.That(t, PixelValidSquare(p, 0.0, 0.0), test.ShouldBeTrue)
	test.That(t, PixelValidSquare(p, 639.0, 479.0), test.ShouldBeTrue)
	test.That(t, PixelValidSquare(p, 640.0, 0.0), test.ShouldBeFalse)
	test.That(t, PixelValidSquare(p, 0.0, 480.0), test.ShouldBeFalse)
	test.That(t, PixelValidSquare(p, -1.0, 0.0), test.ShouldBeFalse)
}

func TestPixelValidCircularDisk(t *testing.T) {
	p := NewParameters[float64](500, 500, 320, 240, 0, 640, 480, 0, 100)
	test.That(t, PixelValidCircular(p, 320.0, 240.0), test.ShouldBeTrue)
	test.That(t, PixelValidCircular(p, 320.0+99, 240.0), test.ShouldBeTrue)
	// boundary radii are strictly invalid
	test.That(t, PixelValidCircular(p, 320.0+100, 240.0), test.ShouldBeFalse)
	test.That(t, PixelValidCircular(p, 320.0+101, 240.0), test.ShouldBeFalse)
}

func TestPixelValidCircularAnnulus(t *testing.T) {
	p := NewParameters[float64](500, 500, 320, 240, 0, 640, 480, 50, 100)
	test.That(t, PixelValidCircular(p, 320.0, 240.0+30), test.ShouldBeFalse)
	test.That(t, PixelValidCircular(p, 320.0, 240.0+75), test.ShouldBeTrue)
	test.That(t, PixelValidCircular(p, 320.0, 240.0+50), test.ShouldBeFalse)
	test.That(t, PixelValidCircular(p, 320.0, 240.0+100), test.ShouldBeFalse)
}

func TestResizeViewport(t *testing.T) {
	p := NewParameters[float64](500, 500, 320, 240, 0, 640, 480, 0, 200)
	ResizeViewport[float64](p, 320, 240)
	test.That(t, p.Fx(), test.ShouldAlmostEqual, 250)
	test.That(t, p.Fy(), test.ShouldAlmostEqual, 250)
	test.That(t, p.U0(), test.ShouldAlmostEqual, 160)
	test.That(t, p.V0(), test.ShouldAlmostEqual, 120)
	test.That(t, p.R1(), test.ShouldAlmostEqual, 0)
	test.That(t, p.R2(), test.ShouldAlmostEqual, 100)
	test.That(t, p.Width(), test.ShouldAlmostEqual, 320)
	test.That(t, p.Height(), test.ShouldAlmostEqual, 240)
}

func TestResizeViewportAnisotropic(t *testing.T) {
	// the radii follow the smaller of the two axis ratios
	buf := []float64{500, 500, 320, 240, 0, 640, 480, 50, 200}
	v, err := NewView(buf)
	test.That(t, err, test.ShouldBeNil)
	ResizeViewport[float64](v, 1280, 480)
	test.That(t, v.Fx(), test.ShouldAlmostEqual, 1000)
	test.That(t, v.Fy(), test.ShouldAlmostEqual, 500)
	test.That(t, v.U0(), test.ShouldAlmostEqual, 640)
	test.That(t, v.V0(), test.ShouldAlmostEqual, 240)
	test.That(t, v.R1(), test.ShouldAlmostEqual, 50)
	test.That(t, v.R2(), test.ShouldAlmostEqual, 200)
	// the rescale went through to the wrapped buffer
	test.That(t, buf[FieldWidth], test.ShouldAlmostEqual, 1280)
	test.That(t, buf[FieldHeight], test.ShouldAlmostEqual, 480)
}

func TestCastIndependence(t *testing.T) {
	original := NewParameters[float64](500, 505, 320, 240, 0.5, 640, 480, 10, 300)
	cast := Cast[float32, float64](original)
	original.SetFx(1)
	original.SetEpsilon(0)
	test.That(t, cast.Fx(), test.ShouldEqual, float32(500))
	test.That(t, cast.Epsilon(), test.ShouldEqual, float32(0.5))
	test.That(t, cast.R2(), test.ShouldEqual, float32(300))

	back := Cast[float64, float32](cast)
	test.That(t, back.Fy(), test.ShouldEqual, 505.0)
}

func TestCheckValid(t *testing.T) {
	p := NewParameters[float64](500, 505, 320, 240, 0.5, 640, 480, 10, 300)
	test.That(t, CheckValid[float64](p), test.ShouldBeNil)

	p.SetWidth(0)
	err := CheckValid[float64](p)
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, errors.Is(err, ErrInvalidParameters), test.ShouldBeTrue)
	p.SetWidth(640)

	p.SetFx(0)
	test.That(t, CheckValid[float64](p), test.ShouldNotBeNil)
	p.SetFx(500)

	p.SetFy(0)
	test.That(t, CheckValid[float64](p), test.ShouldNotBeNil)
	p.SetFy(505)

	p.SetR1(400)
	test.That(t, CheckValid[float64](p), test.ShouldNotBeNil)
	p.SetR1(0)

	test.That(t, CheckValid[float64](p), test.ShouldBeNil)
}
