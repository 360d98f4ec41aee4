// Package camera implements interchangeable calibrated camera models.
//
// The model provided here is the ideal generic (Geyer, also called unified
// sphere) projection: a central camera model covering perspective through
// catadioptric/omnidirectional systems with a single shape parameter. A
// model is nine ordered scalars held either in an owning Parameters block or
// in a non-owning view over caller memory; the projection math is written
// once against the accessor interfaces and works with any storage variant.
package camera

import (
	"github.com/golang/geo/r2"
	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

// Scalar is the set of scalar types a parameter block can hold.
type Scalar interface {
	constraints.Float
}

// Field indexes one of the nine camera parameters within a raw block. The
// numeric values fix the in-memory and serialized ordering.
type Field int

// The nine camera parameters, in storage order.
const (
	FieldFx Field = iota
	FieldFy
	FieldU0
	FieldV0
	FieldEpsilon
	FieldWidth
	FieldHeight
	FieldR1
	FieldR2
)

// NumParameters is the fixed size of a parameter block.
const NumParameters = 9

// ParametersToOptimize is how many of the parameters are subject to
// refinement by calibration routines; the remainder are fixed geometry.
const ParametersToOptimize = NumParameters - 4

// CalibrationSupported reports whether this model can be calibrated by
// external estimation routines.
const CalibrationSupported = true

func (f Field) String() string {
	switch f {
	case FieldFx:
		return "fx"
	case FieldFy:
		return "fy"
	case FieldU0:
		return "u0"
	case FieldV0:
		return "v0"
	case FieldEpsilon:
		return "epsilon"
	case FieldWidth:
		return "width"
	case FieldHeight:
		return "height"
	case FieldR1:
		return "r1"
	case FieldR2:
		return "r2"
	default:
		return "unknown"
	}
}

// ModelType is the name of the projection model.
type ModelType string

// IdealGenericModelType is the unified sphere (Geyer) projection model.
const IdealGenericModelType = ModelType("ideal_generic")

// Capabilities describes the parameter layout and calibration support of a
// camera model, for introspection by calling code.
type Capabilities struct {
	ModelType            ModelType
	NumParameters        int
	ParametersToOptimize int
	CalibrationSupported bool
}

// IdealGenericCapabilities returns the fixed capabilities of the ideal
// generic model.
func IdealGenericCapabilities() Capabilities {
	return Capabilities{
		ModelType:            IdealGenericModelType,
		NumParameters:        NumParameters,
		ParametersToOptimize: ParametersToOptimize,
		CalibrationSupported: CalibrationSupported,
	}
}

// Reader provides read access to the nine camera parameters. All projection
// and validity functions take a Reader, so they accept any storage variant.
type Reader[T Scalar] interface {
	Fx() T
	Fy() T
	U0() T
	V0() T
	Epsilon() T
	Width() T
	Height() T
	R1() T
	R2() T
}

// Access adds write access to a Reader. The owning Parameters block and the
// mutable View implement it; ReadOnlyView does not, so a write through a
// read-only view is rejected at compile time.
type Access[T Scalar] interface {
	Reader[T]
	SetFx(T)
	SetFy(T)
	SetU0(T)
	SetV0(T)
	SetEpsilon(T)
	SetWidth(T)
	SetHeight(T)
	SetR1(T)
	SetR2(T)
}

// A Projector maps between 3D points/rays in the camera frame and 2D pixels
// in the image plane.
type Projector interface {
	// PointToPixel projects a 3D direction to pixel coordinates.
	PointToPixel(pt r3.Vector) r2.Point
	// PixelToRay returns the ray through a pixel. The returned vector is not
	// necessarily unit length.
	PixelToRay(pt r2.Point) r3.Vector
	// PixelToPointAtDistance returns the point along the ray through a pixel
	// at the given distance from the camera center.
	PixelToPointAtDistance(pt r2.Point, distance float64) r3.Vector
}

// ErrInvalidParameters is when a parameter block violates the model's
// invariants.
var ErrInvalidParameters = errors.New("camera model parameters are not valid")

// NewInvalidParametersError is used when a parameter invariant is violated.
func NewInvalidParametersError(msg string) error {
	return errors.Wrapf(ErrInvalidParameters, msg)
}
