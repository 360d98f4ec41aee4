package camera

import (
	"github.com/golang/geo/r2"
	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/mat"
)

// Model couples a float64 parameter reader with the unified sphere
// projection, implementing Projector. It holds no state of its own beyond
// the reader, so views wrapped in a Model follow later writes to their
// underlying buffer.
type Model struct {
	Params Reader[float64]
}

// NewModel returns a Model over the given parameter reader.
func NewModel(params Reader[float64]) *Model {
	return &Model{Params: params}
}

// PointToPixel projects a 3D direction to pixel coordinates.
func (m *Model) PointToPixel(pt r3.Vector) r2.Point {
	x, y := PointToPixel(m.Params, pt.X, pt.Y, pt.Z)
	return r2.Point{X: x, Y: y}
}

// PixelToRay returns the ray through a pixel. The returned vector is not
// necessarily unit length.
func (m *Model) PixelToRay(pt r2.Point) r3.Vector {
	x, y, z := PixelToRay(m.Params, pt.X, pt.Y)
	return r3.Vector{X: x, Y: y, Z: z}
}

// PixelToPointAtDistance returns the point along the ray through a pixel at
// the given distance from the camera center.
func (m *Model) PixelToPointAtDistance(pt r2.Point, distance float64) r3.Vector {
	return m.PixelToRay(pt).Normalize().Mul(distance)
}

// PixelValidSquare reports whether a pixel lies inside the sensor rectangle.
func (m *Model) PixelValidSquare(pt r2.Point) bool {
	return PixelValidSquare(m.Params, pt.X, pt.Y)
}

// PixelValidCircular reports whether a pixel lies inside the validity disk
// or annulus.
func (m *Model) PixelValidCircular(pt r2.Point) bool {
	return PixelValidCircular(m.Params, pt.X, pt.Y)
}

// CameraMatrix creates the 3x3 intrinsic matrix and returns it.
// Camera matrix:
// [[fx 0 u0],
//
//	[0 fy v0],
//	[0 0  1]]
func (m *Model) CameraMatrix() *mat.Dense {
	cameraMatrix := mat.NewDense(3, 3, nil)
	cameraMatrix.Set(0, 0, m.Params.Fx())
	cameraMatrix.Set(1, 1, m.Params.Fy())
	cameraMatrix.Set(0, 2, m.Params.U0())
	cameraMatrix.Set(1, 2, m.Params.V0())
	cameraMatrix.Set(2, 2, 1)
	return cameraMatrix
}

var _ Projector = (*Model)(nil)
