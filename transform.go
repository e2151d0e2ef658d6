package imagedit

// identityTransform is the identity affine matrix.
var identityTransform = [6]float64{1, 0, 0, 1, 0, 0}

// IdentityTransform returns the identity viewport transform.
func IdentityTransform() [6]float64 {
	return identityTransform
}

// invertAffine computes the inverse of a 2D affine matrix.
//
//	Matrix layout: [a, b, c, d, tx, ty]
//	| a  c  tx |
//	| b  d  ty |
//	| 0  0   1 |
//
// Returns the identity matrix if the matrix is singular (determinant ~ 0).
func invertAffine(m [6]float64) [6]float64 {
	det := m[0]*m[3] - m[2]*m[1]
	if det > -1e-12 && det < 1e-12 {
		return identityTransform
	}
	invDet := 1.0 / det
	a := m[3] * invDet
	b := -m[1] * invDet
	c := -m[2] * invDet
	d := m[0] * invDet
	return [6]float64{
		a, b, c, d,
		-(a*m[4] + c*m[5]),
		-(b*m[4] + d*m[5]),
	}
}

// transformPoint applies an affine matrix to a point.
func transformPoint(m [6]float64, x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}

// zoomToPoint returns vpt rescaled to zoom so that the point (px, py) keeps
// its on-screen position. The point is interpreted in screen space.
func zoomToPoint(vpt [6]float64, px, py, zoom float64) [6]float64 {
	sx, sy := transformPoint(invertAffine(vpt), px, py)
	out := vpt
	out[0] = zoom
	out[3] = zoom
	ax, ay := transformPoint(out, sx, sy)
	out[4] += px - ax
	out[5] += py - ay
	return out
}

// viewportBottomRight returns the scene-space point shown at the
// bottom-right corner of a w x h viewport.
func viewportBottomRight(vpt [6]float64, w, h float64) (float64, float64) {
	return transformPoint(invertAffine(vpt), w, h)
}
