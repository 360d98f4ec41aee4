package camera

import (
	"fmt"
	"math"
)

// sqrtT computes the square root in the block's scalar type. A negative
// radicand yields NaN, which propagates untouched.
func sqrtT[T Scalar](v T) T {
	return T(math.Sqrt(float64(v)))
}

// PixelToRay back-projects pixel coordinates to the ray through them under
// the unified sphere model. The returned direction is not necessarily unit
// length. The radicand 1 + (1-epsilon^2)*(px^2+py^2) can go negative when
// |epsilon| > 1; the resulting NaN is propagated, not corrected.
func PixelToRay[T Scalar](m Reader[T], x, y T) (T, T, T) {
	// undo intrinsics, pixel -> image plane
	px := (x - m.U0()) / m.Fx()
	py := (y - m.V0()) / m.Fy()

	rr := px*px + py*py
	eps := m.Epsilon()
	eps2 := eps * eps

	//         eps + sqrt( 1 + (1-eps^2) * (px^2 + py^2) )
	// term = --------------------------------------------
	//                     px^2 + py^2 + 1
	term := (eps + sqrtT(1+(1-eps2)*rr)) / (rr + 1)

	return term * px, term * py, term - eps
}

// PointToPixel projects a 3D direction of any nonzero length to pixel
// coordinates under the unified sphere model. Only the direction matters:
// the vector is normalized first. A unit z component equal to -epsilon is
// the model's blind spot and divides by zero.
func PointToPixel[T Scalar](m Reader[T], x, y, z T) (T, T) {
	// unit vector
	n := sqrtT(x*x + y*y + z*z)
	ux := x / n
	uy := y / n
	uz := z / n

	// perspective
	d := uz + m.Epsilon()

	// intrinsics
	return m.Fx()*(ux/d) + m.U0(), m.Fy()*(uy/d) + m.V0()
}

// PixelValidSquare reports whether a pixel lies inside the sensor rectangle
// [0,width) x [0,height).
func PixelValidSquare[T Scalar](m Reader[T], x, y T) bool {
	return x >= 0 && x < m.Width() && y >= 0 && y < m.Height()
}

// PixelValidCircular reports whether a pixel lies inside the validity region
// centered on the principal point: a disk of radius r2 when r1 <= 0,
// otherwise the annulus between r1 and r2. Both bounds are strict, so pixels
// exactly on a boundary radius are invalid.
func PixelValidCircular[T Scalar](m Reader[T], x, y T) bool {
	dx := x - m.U0()
	dy := y - m.V0()
	dd := dx*dx + dy*dy
	if m.R1() <= 0 {
		return dd < m.R2()*m.R2()
	}
	return dd > m.R1()*m.R1() && dd < m.R2()*m.R2()
}

// ResizeViewport rescales the model in place for a new sensor size. The
// intrinsics scale by the per-axis ratios and the validity radii by the
// smaller of the two. All new values are computed before any field is
// written, so no partially rescaled state is observable through m afterward.
func ResizeViewport[T Scalar](m Access[T], newWidth, newHeight T) {
	xRatio := newWidth / m.Width()
	yRatio := newHeight / m.Height()
	rRatio := min(xRatio, yRatio)

	fx := m.Fx() * xRatio
	fy := m.Fy() * yRatio
	u0 := m.U0() * xRatio
	v0 := m.V0() * yRatio
	r1 := m.R1() * rRatio
	r2 := m.R2() * rRatio

	m.SetFx(fx)
	m.SetFy(fy)
	m.SetU0(u0)
	m.SetV0(v0)
	m.SetR1(r1)
	m.SetR2(r2)
	m.SetWidth(newWidth)
	m.SetHeight(newHeight)
}

// Cast returns an owning parameter block with every field numerically
// converted to the scalar type To. The result never aliases the source.
func Cast[To, From Scalar](m Reader[From]) *Parameters[To] {
	return NewParameters(
		To(m.Fx()), To(m.Fy()), To(m.U0()), To(m.V0()), To(m.Epsilon()),
		To(m.Width()), To(m.Height()), To(m.R1()), To(m.R2()),
	)
}

// CheckValid checks the invariants a parameter block must satisfy before it
// is used for projection. Projection functions do not call it; a block that
// fails these checks produces NaN/Inf rather than errors.
func CheckValid[T Scalar](m Reader[T]) error {
	if m == nil {
		return NewInvalidParametersError("parameters do not exist")
	}
	if m.Width() <= 0 || m.Height() <= 0 {
		return NewInvalidParametersError(fmt.Sprintf("invalid size (%v, %v)", m.Width(), m.Height()))
	}
	if m.Fx() == 0 {
		return NewInvalidParametersError(fmt.Sprintf("invalid focal length fx = %v", m.Fx()))
	}
	if m.Fy() == 0 {
		return NewInvalidParametersError(fmt.Sprintf("invalid focal length fy = %v", m.Fy()))
	}
	if m.R1() > 0 && m.R1() > m.R2() {
		return NewInvalidParametersError(fmt.Sprintf("invalid validity radii r1 = %v > r2 = %v", m.R1(), m.R2()))
	}
	return nil
}
