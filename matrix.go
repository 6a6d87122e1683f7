package reel

import "math"

// Matrix is a 2D affine transform.
//
//	| A  C  E |
//	| B  D  F |
//	| 0  0  1 |
//
// A matrix is only meaningful while A*D - B*C != 0. Inverting or mapping
// through a singular matrix is not guarded and yields non-finite values.
type Matrix struct {
	A, B, C, D, E, F float64
}

// Identity returns the identity matrix.
func Identity() Matrix {
	return Matrix{A: 1, D: 1}
}

// NewMatrix returns a matrix with the given coefficients.
func NewMatrix(a, b, c, d, e, f float64) Matrix {
	return Matrix{a, b, c, d, e, f}
}

// Multiply composes m = m * M(g, h, i, j, k, l) in place. The translation
// (k, l) is carried through m's prior linear part. Returns m for chaining.
func (m *Matrix) Multiply(g, h, i, j, k, l float64) *Matrix {
	a, b, c, d := m.A, m.B, m.C, m.D
	m.A = a*g + c*h
	m.B = b*g + d*h
	m.C = a*i + c*j
	m.D = b*i + d*j
	m.E += a*k + c*l
	m.F += b*k + d*l
	return m
}

// MultiplyMatrix composes m = m * o in place.
func (m *Matrix) MultiplyMatrix(o Matrix) *Matrix {
	return m.Multiply(o.A, o.B, o.C, o.D, o.E, o.F)
}

// Clone returns a copy of m.
func (m Matrix) Clone() Matrix {
	return m
}

// Reset sets m to the identity.
func (m *Matrix) Reset() *Matrix {
	*m = Identity()
	return m
}

// Determinant returns A*D - B*C.
func (m Matrix) Determinant() float64 {
	return m.A*m.D - m.B*m.C
}

// Inverse returns a new matrix that undoes m. A zero determinant produces
// Inf/NaN coefficients.
func (m Matrix) Inverse() Matrix {
	adbc := m.A*m.D - m.B*m.C
	return Matrix{
		A: m.D / adbc,
		B: m.B / -adbc,
		C: m.C / -adbc,
		D: m.A / adbc,
		E: (m.D*m.E - m.C*m.F) / -adbc,
		F: (m.B*m.E - m.A*m.F) / adbc,
	}
}

// Product returns a new matrix m * o, where o's translation is offset by
// (x, y). Composing a parent's world matrix with a child's local linear part
// and position this way builds the child's world matrix.
func (m Matrix) Product(o Matrix, x, y float64) Matrix {
	r := m
	r.Multiply(o.A, o.B, o.C, o.D, o.E+x, o.F+y)
	return r
}

// ToWorld maps a local point through m.
func (m Matrix) ToWorld(x, y float64) (float64, float64) {
	return m.A*x + m.C*y + m.E, m.B*x + m.D*y + m.F
}

// ToClient maps a point in m's outer space back into local space.
func (m Matrix) ToClient(x, y float64) (float64, float64) {
	adbc := m.A*m.D - m.B*m.C
	return (m.D*x - m.C*y + m.C*m.F - m.D*m.E) / adbc,
		(-m.B*x + m.A*y + m.B*m.E - m.A*m.F) / adbc
}

// IsFinite reports whether every coefficient is a finite number.
func (m Matrix) IsFinite() bool {
	for _, v := range [6]float64{m.A, m.B, m.C, m.D, m.E, m.F} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// MatrixLite holds only the rotation and scale of a node. Sine and cosine are
// recomputed when rotation changes, not every frame.
//
//	| A  C |
//	| B  D |
type MatrixLite struct {
	A, B, C, D float64

	cos, sin       float64
	scaleX, scaleY float64
}

// NewMatrixLite returns an unrotated, unscaled MatrixLite.
func NewMatrixLite() MatrixLite {
	return MatrixLite{A: 1, D: 1, cos: 1, scaleX: 1, scaleY: 1}
}

// SetRotation sets the rotation in radians.
func (l *MatrixLite) SetRotation(r float64) {
	l.sin, l.cos = math.Sincos(r)
	l.calc()
}

// SetScaleX sets the horizontal scale.
func (l *MatrixLite) SetScaleX(sx float64) {
	l.scaleX = sx
	l.calc()
}

// SetScaleY sets the vertical scale.
func (l *MatrixLite) SetScaleY(sy float64) {
	l.scaleY = sy
	l.calc()
}

// Scale sets both scale factors.
func (l *MatrixLite) Scale(sx, sy float64) {
	l.scaleX = sx
	l.scaleY = sy
	l.calc()
}

// ScaleX returns the horizontal scale.
func (l *MatrixLite) ScaleX() float64 { return l.scaleX }

// ScaleY returns the vertical scale.
func (l *MatrixLite) ScaleY() float64 { return l.scaleY }

func (l *MatrixLite) calc() {
	l.A = l.scaleX * l.cos
	l.B = l.scaleX * l.sin
	l.C = -l.scaleY * l.sin
	l.D = l.scaleY * l.cos
}

// ToMatrix returns the full affine form with translation (x, y).
func (l *MatrixLite) ToMatrix(x, y float64) Matrix {
	return Matrix{l.A, l.B, l.C, l.D, x, y}
}
