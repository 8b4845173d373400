// core/geom/geom.go
package geom

import "math"

// Vec3 is a Cartesian 3-vector.
type Vec3 struct {
	X, Y, Z float64
}

func (a Vec3) Sub(b Vec3) Vec3 {
	return Vec3{a.X - b.X, a.Y - b.Y, a.Z - b.Z}
}

func (a Vec3) Dot(b Vec3) float64 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

func (a Vec3) Cross(b Vec3) Vec3 {
	return Vec3{
		a.Y*b.Z - a.Z*b.Y,
		a.Z*b.X - a.X*b.Z,
		a.X*b.Y - a.Y*b.X,
	}
}

func (a Vec3) Norm() float64 {
	return math.Sqrt(a.Dot(a))
}

// Dist is the Euclidean distance between two points.
func Dist(a, b Vec3) float64 {
	return a.Sub(b).Norm()
}

// Dihedral returns the torsion angle, in radians in (-pi, pi], defined by
// the four points p1-p2-p3-p4 (IUPAC sign convention).
func Dihedral(p1, p2, p3, p4 Vec3) float64 {
	b1 := p2.Sub(p1)
	b2 := p3.Sub(p2)
	b3 := p4.Sub(p3)

	n1 := b1.Cross(b2)
	n2 := b2.Cross(b3)

	// m1 completes an orthonormal-ish frame so atan2 gets a signed angle.
	norm := b2.Norm()
	unit := Vec3{b2.X / norm, b2.Y / norm, b2.Z / norm}
	m1 := n1.Cross(unit)

	x := n1.Dot(n2)
	y := m1.Dot(n2)
	return math.Atan2(y, x)
}
