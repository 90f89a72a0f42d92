package geom

import (
	"errors"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// ErrSingularMatrix is returned by Matrix.Invert when the determinant is
// zero or its reciprocal overflows.
var ErrSingularMatrix = errors.New("geom: singular matrix")

// Matrix is a 2D affine transform.
//
//	Matrix layout: [a, b, c, d, tx, ty]
//	| a  c  tx |
//	| b  d  ty |
//	| 0  0   1 |
type Matrix [6]float64

// Identity is the identity transform.
var Identity = Matrix{1, 0, 0, 1, 0, 0}

// Translation returns a matrix that moves points by (x, y).
func Translation(x, y float64) Matrix {
	return Matrix{1, 0, 0, 1, x, y}
}

// Rotation returns a matrix that rotates points by theta radians about the
// axis perpendicular to the plane. With Y pointing down, positive angles
// turn clockwise on screen.
func Rotation(theta float64) Matrix {
	sin, cos := math.Sincos(theta)
	return Matrix{cos, sin, -sin, cos, 0, 0}
}

// Scaling returns a non-uniform scale matrix.
func Scaling(sx, sy float64) Matrix {
	return Matrix{sx, 0, 0, sy, 0, 0}
}

// Mul multiplies two affine matrices: result = p * c, so c is applied first.
func Mul(p, c Matrix) Matrix {
	return Matrix{
		p[0]*c[0] + p[2]*c[1],
		p[1]*c[0] + p[3]*c[1],
		p[0]*c[2] + p[2]*c[3],
		p[1]*c[2] + p[3]*c[3],
		p[0]*c[4] + p[2]*c[5] + p[4],
		p[1]*c[4] + p[3]*c[5] + p[5],
	}
}

// Then returns the transform that applies m first and next second.
func (m Matrix) Then(next Matrix) Matrix {
	return Mul(next, m)
}

// Det returns the determinant of the linear part.
func (m Matrix) Det() float64 {
	return m[0]*m[3] - m[2]*m[1]
}

// Invert computes the inverse of m. It returns the identity matrix and
// ErrSingularMatrix if m cannot be inverted.
func (m Matrix) Invert() (Matrix, error) {
	det := m.Det()
	if det == 0 {
		return Identity, ErrSingularMatrix
	}
	invDet := 1.0 / det
	if math.IsInf(invDet, 0) || math.IsNaN(invDet) {
		return Identity, ErrSingularMatrix
	}
	a := m[3] * invDet
	b := -m[1] * invDet
	c := -m[2] * invDet
	d := m[0] * invDet
	return Matrix{
		a, b, c, d,
		-(a*m[4] + c*m[5]),
		-(b*m[4] + d*m[5]),
	}, nil
}

// Apply transforms p as a point, so translation is included.
func (m Matrix) Apply(p Vec2) Vec2 {
	return Vec2{
		X: m[0]*p.X + m[2]*p.Y + m[4],
		Y: m[1]*p.X + m[3]*p.Y + m[5],
	}
}

// ApplyVector transforms v as a direction, ignoring translation.
func (m Matrix) ApplyVector(v Vec2) Vec2 {
	return Vec2{
		X: m[0]*v.X + m[2]*v.Y,
		Y: m[1]*v.X + m[3]*v.Y,
	}
}

// TransformRect returns the axis-aligned bounds of r after transformation.
func (m Matrix) TransformRect(r Rect) Rect {
	return boundsOf(
		m.Apply(Vec2{X: r.X, Y: r.Y}),
		m.Apply(Vec2{X: r.Right(), Y: r.Y}),
		m.Apply(Vec2{X: r.Right(), Y: r.Bottom()}),
		m.Apply(Vec2{X: r.X, Y: r.Bottom()}),
	)
}

// GeoM converts m into an ebiten.GeoM for use in draw options.
func (m Matrix) GeoM() ebiten.GeoM {
	var g ebiten.GeoM
	g.SetElement(0, 0, m[0])
	g.SetElement(0, 1, m[2])
	g.SetElement(0, 2, m[4])
	g.SetElement(1, 0, m[1])
	g.SetElement(1, 1, m[3])
	g.SetElement(1, 2, m[5])
	return g
}
