package camera

import (
	"fmt"

	"github.com/pkg/errors"
)

// Parameters is the owning storage variant: it holds its own block of nine
// scalars. The zero value is a valid all-zero block. Copying a Parameters
// value deep-copies the block.
type Parameters[T Scalar] struct {
	data [NumParameters]T
}

// NewParameters constructs an owning parameter block from all nine values in
// storage order.
func NewParameters[T Scalar](fx, fy, u0, v0, epsilon, width, height, r1, r2 T) *Parameters[T] {
	return &Parameters[T]{data: [NumParameters]T{fx, fy, u0, v0, epsilon, width, height, r1, r2}}
}

// NewIntrinsicParameters constructs an owning parameter block from the four
// intrinsics, leaving the remaining five fields zero.
func NewIntrinsicParameters[T Scalar](fx, fy, u0, v0 T) *Parameters[T] {
	return NewParameters(fx, fy, u0, v0, 0, 0, 0, 0, 0)
}

// CloneParameters returns an independently owned copy of any parameter
// reader. Mutating the source afterward does not affect the copy.
func CloneParameters[T Scalar](m Reader[T]) *Parameters[T] {
	return NewParameters(m.Fx(), m.Fy(), m.U0(), m.V0(), m.Epsilon(), m.Width(), m.Height(), m.R1(), m.R2())
}

// Fx is the horizontal focal length in pixels.
func (p *Parameters[T]) Fx() T { return p.data[FieldFx] }

// Fy is the vertical focal length in pixels.
func (p *Parameters[T]) Fy() T { return p.data[FieldFy] }

// U0 is the principal point x coordinate in pixels.
func (p *Parameters[T]) U0() T { return p.data[FieldU0] }

// V0 is the principal point y coordinate in pixels.
func (p *Parameters[T]) V0() T { return p.data[FieldV0] }

// Epsilon is the unified sphere shape parameter.
func (p *Parameters[T]) Epsilon() T { return p.data[FieldEpsilon] }

// Width is the sensor width in pixels.
func (p *Parameters[T]) Width() T { return p.data[FieldWidth] }

// Height is the sensor height in pixels.
func (p *Parameters[T]) Height() T { return p.data[FieldHeight] }

// R1 is the inner validity radius in pixels, 0 meaning disabled.
func (p *Parameters[T]) R1() T { return p.data[FieldR1] }

// R2 is the outer validity radius in pixels.
func (p *Parameters[T]) R2() T { return p.data[FieldR2] }

// SetFx sets the horizontal focal length.
func (p *Parameters[T]) SetFx(v T) { p.data[FieldFx] = v }

// SetFy sets the vertical focal length.
func (p *Parameters[T]) SetFy(v T) { p.data[FieldFy] = v }

// SetU0 sets the principal point x coordinate.
func (p *Parameters[T]) SetU0(v T) { p.data[FieldU0] = v }

// SetV0 sets the principal point y coordinate.
func (p *Parameters[T]) SetV0(v T) { p.data[FieldV0] = v }

// SetEpsilon sets the unified sphere shape parameter.
func (p *Parameters[T]) SetEpsilon(v T) { p.data[FieldEpsilon] = v }

// SetWidth sets the sensor width.
func (p *Parameters[T]) SetWidth(v T) { p.data[FieldWidth] = v }

// SetHeight sets the sensor height.
func (p *Parameters[T]) SetHeight(v T) { p.data[FieldHeight] = v }

// SetR1 sets the inner validity radius.
func (p *Parameters[T]) SetR1(v T) { p.data[FieldR1] = v }

// SetR2 sets the outer validity radius.
func (p *Parameters[T]) SetR2(v T) { p.data[FieldR2] = v }

// At returns the parameter stored at the given field index.
func (p *Parameters[T]) At(f Field) T { return p.data[f] }

// Set stores a parameter at the given field index.
func (p *Parameters[T]) Set(f Field, v T) { p.data[f] = v }

// RawData returns the underlying block as a mutable slice of nine scalars in
// storage order. Writes through it are visible to all accessors.
func (p *Parameters[T]) RawData() []T { return p.data[:] }

func (p *Parameters[T]) String() string { return FormatParameters[T](p) }

// viewData is the shared read side of the two non-owning view variants.
type viewData[T Scalar] struct {
	data []T
}

// Fx is the horizontal focal length in pixels.
func (v viewData[T]) Fx() T { return v.data[FieldFx] }

// Fy is the vertical focal length in pixels.
func (v viewData[T]) Fy() T { return v.data[FieldFy] }

// U0 is the principal point x coordinate in pixels.
func (v viewData[T]) U0() T { return v.data[FieldU0] }

// V0 is the principal point y coordinate in pixels.
func (v viewData[T]) V0() T { return v.data[FieldV0] }

// Epsilon is the unified sphere shape parameter.
func (v viewData[T]) Epsilon() T { return v.data[FieldEpsilon] }

// Width is the sensor width in pixels.
func (v viewData[T]) Width() T { return v.data[FieldWidth] }

// Height is the sensor height in pixels.
func (v viewData[T]) Height() T { return v.data[FieldHeight] }

// R1 is the inner validity radius in pixels, 0 meaning disabled.
func (v viewData[T]) R1() T { return v.data[FieldR1] }

// R2 is the outer validity radius in pixels.
func (v viewData[T]) R2() T { return v.data[FieldR2] }

// At returns the parameter stored at the given field index.
func (v viewData[T]) At(f Field) T { return v.data[f] }

func (v viewData[T]) String() string { return FormatParameters[T](v) }

// View is a mutable non-owning storage variant over a caller-owned buffer of
// at least nine contiguous scalars in storage order. The buffer must outlive
// the view; reads and writes pass through to it, so two views over the same
// buffer alias each other.
type View[T Scalar] struct {
	viewData[T]
}

// NewView wraps a caller-owned mutable buffer. The buffer must have at least
// NumParameters elements.
func NewView[T Scalar](data []T) (View[T], error) {
	if len(data) < NumParameters {
		return View[T]{}, errors.Errorf("buffer for a parameter view must have at least %d elements, got %d", NumParameters, len(data))
	}
	return View[T]{viewData[T]{data}}, nil
}

// SetFx sets the horizontal focal length.
func (v View[T]) SetFx(val T) { v.data[FieldFx] = val }

// SetFy sets the vertical focal length.
func (v View[T]) SetFy(val T) { v.data[FieldFy] = val }

// SetU0 sets the principal point x coordinate.
func (v View[T]) SetU0(val T) { v.data[FieldU0] = val }

// SetV0 sets the principal point y coordinate.
func (v View[T]) SetV0(val T) { v.data[FieldV0] = val }

// SetEpsilon sets the unified sphere shape parameter.
func (v View[T]) SetEpsilon(val T) { v.data[FieldEpsilon] = val }

// SetWidth sets the sensor width.
func (v View[T]) SetWidth(val T) { v.data[FieldWidth] = val }

// SetHeight sets the sensor height.
func (v View[T]) SetHeight(val T) { v.data[FieldHeight] = val }

// SetR1 sets the inner validity radius.
func (v View[T]) SetR1(val T) { v.data[FieldR1] = val }

// SetR2 sets the outer validity radius.
func (v View[T]) SetR2(val T) { v.data[FieldR2] = val }

// Set stores a parameter at the given field index.
func (v View[T]) Set(f Field, val T) { v.data[f] = val }

// RawData returns the wrapped buffer, truncated to the nine parameters.
func (v View[T]) RawData() []T { return v.data[:NumParameters] }

// ReadOnlyView is a non-owning storage variant over a caller-owned buffer
// that exposes no setters and no raw mutable access; write access is
// intentionally unavailable. The buffer must outlive the view, and writes to
// the buffer by its owner are visible through the view's getters.
type ReadOnlyView[T Scalar] struct {
	viewData[T]
}

// NewReadOnlyView wraps a caller-owned buffer for reading. The buffer must
// have at least NumParameters elements.
func NewReadOnlyView[T Scalar](data []T) (ReadOnlyView[T], error) {
	if len(data) < NumParameters {
		return ReadOnlyView[T]{}, errors.Errorf("buffer for a parameter view must have at least %d elements, got %d", NumParameters, len(data))
	}
	return ReadOnlyView[T]{viewData[T]{data}}, nil
}

// FormatParameters renders all nine fields of a parameter reader in storage
// order. The rendering is informational and not round-trippable by itself.
func FormatParameters[T Scalar](m Reader[T]) string {
	return fmt.Sprintf("IdealGeneric(fx = %v, fy = %v, u0 = %v, v0 = %v, eps = %v, %v x %v, r1 = %v, r2 = %v)",
		m.Fx(), m.Fy(), m.U0(), m.V0(), m.Epsilon(), m.Width(), m.Height(), m.R1(), m.R2())
}

var (
	_ Access[float64] = (*Parameters[float64])(nil)
	_ Access[float32] = View[float32]{}
	_ Reader[float64] = ReadOnlyView[float64]{}
)
