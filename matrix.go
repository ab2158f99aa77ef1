package slideview

import (
	"math"
	"strconv"
)

// Matrix4 represents a 4x4 matrix for translation, scale, and rotation. A Matrix4 is row-major (i.e. the X axis is matrix[0]),
// and Vectors are multiplied as row vectors, so A.Mult(B) applies A's transformation first, then B's.
type Matrix4 [4][4]float64

// NewMatrix4 returns a new identity Matrix4.
func NewMatrix4() Matrix4 {

	mat := Matrix4{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
	return mat

}

// NewMatrix4FromFloats creates a Matrix4 from 16 floats as stored by glTF (column-major for column vectors, which is the same
// memory layout as a row-major matrix for row vectors).
func NewMatrix4FromFloats(floats [16]float64) Matrix4 {
	mat := Matrix4{}
	for i := 0; i < 16; i++ {
		mat[i/4][i%4] = floats[i]
	}
	return mat
}

// NewMatrix4Translate returns a new identity Matrix4, but with the x, y, and z translation components set as provided.
func NewMatrix4Translate(x, y, z float64) Matrix4 {
	mat := NewMatrix4()
	mat[3][0] = x
	mat[3][1] = y
	mat[3][2] = z
	return mat
}

// NewMatrix4Scale returns a new identity Matrix4, but with the scale components set as provided. 1, 1, 1 is the default.
func NewMatrix4Scale(x, y, z float64) Matrix4 {
	mat := NewMatrix4()
	mat[0][0] = x
	mat[1][1] = y
	mat[2][2] = z
	return mat
}

// NewMatrix4Rotate returns a new Matrix4 designed to rotate by the angle given (in radians) along the axis given [x, y, z].
// This rotation works as though you pierced the object utilizing the matrix through by the axis, and then rotated it
// counter-clockwise by the angle in radians.
func NewMatrix4Rotate(x, y, z, angle float64) Matrix4 {

	// Default to spinning on +Y axis if there is no valid axis
	if x == 0 && y == 0 && z == 0 {
		y = 1
	}

	mat := NewMatrix4()
	vector := Vector{X: x, Y: y, Z: z}.Unit()
	s := math.Sin(angle)
	c := math.Cos(angle)
	m := 1 - c

	mat[0][0] = m*vector.X*vector.X + c
	mat[0][1] = m*vector.X*vector.Y + vector.Z*s
	mat[0][2] = m*vector.Z*vector.X - vector.Y*s

	mat[1][0] = m*vector.X*vector.Y - vector.Z*s
	mat[1][1] = m*vector.Y*vector.Y + c
	mat[1][2] = m*vector.Y*vector.Z + vector.X*s

	mat[2][0] = m*vector.Z*vector.X + vector.Y*s
	mat[2][1] = m*vector.Y*vector.Z - vector.X*s
	mat[2][2] = m*vector.Z*vector.Z + c

	return mat

}

// NewMatrix4FromQuaternion returns a rotation Matrix4 from the unit quaternion (x, y, z, w), as stored in a glTF node's rotation.
func NewMatrix4FromQuaternion(x, y, z, w float64) Matrix4 {

	mat := NewMatrix4()

	mat[0][0] = 1 - 2*(y*y+z*z)
	mat[0][1] = 2 * (x*y + z*w)
	mat[0][2] = 2 * (x*z - y*w)

	mat[1][0] = 2 * (x*y - z*w)
	mat[1][1] = 1 - 2*(x*x+z*z)
	mat[1][2] = 2 * (y*z + x*w)

	mat[2][0] = 2 * (x*z + y*w)
	mat[2][1] = 2 * (y*z - x*w)
	mat[2][2] = 1 - 2*(x*x+y*y)

	return mat

}

// NewMatrix4TRS composes a Matrix4 that scales, then rotates (by the quaternion given), then translates.
func NewMatrix4TRS(translation [3]float64, rotation [4]float64, scale [3]float64) Matrix4 {
	return NewMatrix4Scale(scale[0], scale[1], scale[2]).
		Mult(NewMatrix4FromQuaternion(rotation[0], rotation[1], rotation[2], rotation[3])).
		Mult(NewMatrix4Translate(translation[0], translation[1], translation[2]))
}

// Row returns the indicated row of the Matrix4 as a Vector, ignoring the fourth column.
func (matrix Matrix4) Row(rowIndex int) Vector {
	return Vector{matrix[rowIndex][0], matrix[rowIndex][1], matrix[rowIndex][2]}
}

// SetRow sets the first three values of the indicated row of the Matrix4 to the Vector given.
func (matrix *Matrix4) SetRow(rowIndex int, vec Vector) {
	matrix[rowIndex][0] = vec.X
	matrix[rowIndex][1] = vec.Y
	matrix[rowIndex][2] = vec.Z
}

// Right returns the right-facing rotational component of the Matrix4. For an identity matrix, this would be [1, 0, 0], or +X.
func (matrix Matrix4) Right() Vector {
	return matrix.Row(0).Unit()
}

// Up returns the upward rotational component of the Matrix4. For an identity matrix, this would be [0, 1, 0], or +Y.
func (matrix Matrix4) Up() Vector {
	return matrix.Row(1).Unit()
}

// Forward returns the forward rotational component of the Matrix4. For an identity matrix, this would be [0, 0, 1], or +Z (towards the camera).
func (matrix Matrix4) Forward() Vector {
	return matrix.Row(2).Unit()
}

// Transposed transposes a Matrix4, switching the Matrix from being Row Major to being Column Major. For orthonormalized Matrices (matrices
// that have rows that are normalized (having a length of 1), like rotation matrices), this is equivalent to inverting it.
func (matrix Matrix4) Transposed() Matrix4 {

	new := NewMatrix4()

	for row := range matrix {
		for column := range matrix[row] {
			new[column][row] = matrix[row][column]
		}
	}

	return new

}

// Mult multiplies a Matrix4 by another provided Matrix4 - this effectively combines them.
func (matrix Matrix4) Mult(other Matrix4) Matrix4 {

	newMat := Matrix4{}

	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			newMat[row][col] = matrix[row][0]*other[0][col] + matrix[row][1]*other[1][col] + matrix[row][2]*other[2][col] + matrix[row][3]*other[3][col]
		}
	}

	return newMat

}

// MultVec multiplies the vector provided by the Matrix4, giving a vector that has been rotated, scaled, or translated as desired.
func (matrix Matrix4) MultVec(vect Vector) Vector {

	return Vector{
		X: matrix[0][0]*vect.X + matrix[1][0]*vect.Y + matrix[2][0]*vect.Z + matrix[3][0],
		Y: matrix[0][1]*vect.X + matrix[1][1]*vect.Y + matrix[2][1]*vect.Z + matrix[3][1],
		Z: matrix[0][2]*vect.X + matrix[1][2]*vect.Y + matrix[2][2]*vect.Z + matrix[3][2],
	}

}

// MultVecW multiplies the vector provided by the Matrix4, including the fourth (W) component, which is returned separately.
// This is used to project vertices into clip space.
func (matrix Matrix4) MultVecW(vect Vector) (Vector, float64) {

	return matrix.MultVec(vect),
		matrix[0][3]*vect.X + matrix[1][3]*vect.Y + matrix[2][3]*vect.Z + matrix[3][3]

}

// Equals returns true if the Matrix4 is equal to the other provided Matrix4, within a small tolerance.
func (matrix Matrix4) Equals(other Matrix4) bool {
	eps := 1e-6
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if math.Abs(matrix[y][x]-other[y][x]) > eps {
				return false
			}
		}
	}
	return true
}

// IsIdentity returns true if the matrix is an unmodified identity matrix.
func (matrix Matrix4) IsIdentity() bool {
	return matrix.Equals(NewMatrix4())
}

func (matrix Matrix4) String() string {
	s := "{"
	for i, y := range matrix {
		for _, x := range y {
			s += strconv.FormatFloat(x, 'f', -1, 64) + ", "
		}
		if i < len(matrix)-1 {
			s += "\n"
		}
	}
	s += "}"
	return s
}

// NewLookAtMatrix generates a new Matrix4 to rotate an object to point towards another object. to is the target's world position,
// from is the world position of the object looking towards the target, and up is the upward vector ( usually +Y, or [0, 1, 0] ).
// The resulting matrix's Forward() (+Z) axis points from from towards to.
func NewLookAtMatrix(from, to, up Vector) Matrix4 {

	// If from and to are the same, then an identity Matrix4 should be a sensible default
	if from.Equals(to) {
		return NewMatrix4()
	}

	z := to.Sub(from).Unit()

	up = up.Unit()

	// If z == up, then the matrix will be unusable, so we sub up out with another angle
	if z.Equals(up) || z.Equals(up.Invert()) {
		if !up.Equals(WorldRight) {
			up = WorldRight
		} else {
			up = WorldBackward
		}
	}

	x := up.Cross(z).Unit()
	y := z.Cross(x)
	return Matrix4{
		{x.X, x.Y, x.Z, 0},
		{y.X, y.Y, y.Z, 0},
		{z.X, z.Y, z.Z, 0},
		{0, 0, 0, 1},
	}
}

// NewProjectionPerspective generates a perspective frustum Matrix4 for row vectors. fovy is the vertical field of view in degrees,
// near and far are the near and far clipping plane, while viewWidth and viewHeight is the width and height of the backing texture / camera.
// After projection, W holds the (positive) view-space depth.
func NewProjectionPerspective(fovy, near, far, viewWidth, viewHeight float64) Matrix4 {

	aspect := viewWidth / viewHeight

	f := 1 / math.Tan(fovy*math.Pi/360)

	return Matrix4{
		{f / aspect, 0, 0, 0},
		{0, f, 0, 0},
		{0, 0, (far + near) / (near - far), -1},
		{0, 0, (2 * far * near) / (near - far), 0},
	}

}
