package slideview

import (
	"math"
)

// WorldRight represents a unit vector in the global direction of WorldRight on the right-handed OpenGL coordinate system (+X).
var WorldRight = NewVector(1, 0, 0)

// WorldUp represents a unit vector in the global direction of WorldUp on the right-handed OpenGL coordinate system (+Y).
var WorldUp = NewVector(0, 1, 0)

// WorldBackward represents a unit vector in the global direction of WorldBackward on the right-handed OpenGL coordinate system (+Z, towards the viewer).
var WorldBackward = NewVector(0, 0, 1)

// Vector represents a 3D Vector, used for positions, look-at targets, sizes, and per-axis framing factors.
// Any Vector functions that modify the calling Vector return copies of the modified Vector, meaning you can do method-chaining easily;
// a Vector is never aliased behind the caller's back.
type Vector struct {
	X float64 // The X (1st) component of the Vector
	Y float64 // The Y (2nd) component of the Vector
	Z float64 // The Z (3rd) component of the Vector
}

// NewVector creates a new Vector with the specified x, y, and z components.
func NewVector(x, y, z float64) Vector {
	return Vector{X: x, Y: y, Z: z}
}

// NewVectorZero creates a new "zero-ed out" Vector.
func NewVectorZero() Vector {
	return Vector{}
}

// NewVectorFromArray creates a new Vector from a [3]float64 array, as stored in configuration files.
func NewVectorFromArray(a [3]float64) Vector {
	return Vector{X: a[0], Y: a[1], Z: a[2]}
}

// Add returns a copy of the calling vector, added together with the other Vector provided.
func (vec Vector) Add(other Vector) Vector {
	vec.X += other.X
	vec.Y += other.Y
	vec.Z += other.Z
	return vec
}

// Sub returns a copy of the calling Vector, with the other Vector subtracted from it.
func (vec Vector) Sub(other Vector) Vector {
	vec.X -= other.X
	vec.Y -= other.Y
	vec.Z -= other.Z
	return vec
}

// Cross returns a new Vector, indicating the cross product of the calling Vector and the provided Other Vector.
func (vec Vector) Cross(other Vector) Vector {

	ogVecY := vec.Y
	ogVecZ := vec.Z

	vec.Z = vec.X*other.Y - other.X*vec.Y
	vec.Y = ogVecZ*other.X - other.Z*vec.X
	vec.X = ogVecY*other.Z - other.Y*ogVecZ

	return vec

}

// Invert returns a copy of the Vector with all components negated.
func (vec Vector) Invert() Vector {
	vec.X = -vec.X
	vec.Y = -vec.Y
	vec.Z = -vec.Z
	return vec
}

// Magnitude returns the length of the Vector.
func (vec Vector) Magnitude() float64 {
	return math.Sqrt(vec.X*vec.X + vec.Y*vec.Y + vec.Z*vec.Z)
}

// MagnitudeSquared returns the squared length of the Vector; this is faster than Magnitude() as it avoids using math.Sqrt().
func (vec Vector) MagnitudeSquared() float64 {
	return vec.X*vec.X + vec.Y*vec.Y + vec.Z*vec.Z
}

// Distance returns the distance between the calling Vector and the other Vector.
func (vec Vector) Distance(other Vector) float64 {
	return vec.Sub(other).Magnitude()
}

// MultComp multiplies the calling Vector by the other Vector component-wise (X by X, Y by Y, Z by Z).
func (vec Vector) MultComp(other Vector) Vector {
	vec.X *= other.X
	vec.Y *= other.Y
	vec.Z *= other.Z
	return vec
}

// Unit returns a copy of the Vector, normalized (set to be of unit length).
func (vec Vector) Unit() Vector {
	l := vec.Magnitude()
	if l < 1e-8 {
		// If it's 0, then don't modify the vector
		return vec
	}
	vec.X, vec.Y, vec.Z = vec.X/l, vec.Y/l, vec.Z/l
	return vec
}

// Lerp linearly interpolates from the calling Vector to the other Vector by the percentage given.
// It is computed as vec*(1-percent) + other*percent, so a percent of exactly 0 returns the calling Vector
// and a percent of exactly 1 returns the other Vector, without floating-point drift at either end.
func (vec Vector) Lerp(other Vector, percent float64) Vector {
	inv := 1 - percent
	vec.X = vec.X*inv + other.X*percent
	vec.Y = vec.Y*inv + other.Y*percent
	vec.Z = vec.Z*inv + other.Z*percent
	return vec
}

// Scale scales a Vector by the given scalar.
func (vec Vector) Scale(scalar float64) Vector {
	vec.X *= scalar
	vec.Y *= scalar
	vec.Z *= scalar
	return vec
}

// Dot returns the dot product of a Vector and another Vector.
func (vec Vector) Dot(other Vector) float64 {
	return vec.X*other.X + vec.Y*other.Y + vec.Z*other.Z
}

// Min returns a Vector holding the smaller of each component of the two Vectors.
func (vec Vector) Min(other Vector) Vector {
	vec.X = math.Min(vec.X, other.X)
	vec.Y = math.Min(vec.Y, other.Y)
	vec.Z = math.Min(vec.Z, other.Z)
	return vec
}

// Max returns a Vector holding the larger of each component of the two Vectors.
func (vec Vector) Max(other Vector) Vector {
	vec.X = math.Max(vec.X, other.X)
	vec.Y = math.Max(vec.Y, other.Y)
	vec.Z = math.Max(vec.Z, other.Z)
	return vec
}

// MaxComponent returns the largest of the Vector's three components.
func (vec Vector) MaxComponent() float64 {
	return math.Max(vec.X, math.Max(vec.Y, vec.Z))
}

// Floats returns a [3]float64 array consisting of the Vector's contents.
func (vec Vector) Floats() [3]float64 {
	return [3]float64{vec.X, vec.Y, vec.Z}
}

// Equals returns true if the two Vectors are close enough in all values.
func (vec Vector) Equals(other Vector) bool {

	eps := 1e-8

	if math.Abs(vec.X-other.X) > eps || math.Abs(vec.Y-other.Y) > eps || math.Abs(vec.Z-other.Z) > eps {
		return false
	}

	return true

}

// IsZero returns true if the values in the Vector are extremely close to 0.
func (vec Vector) IsZero() bool {
	return vec.Equals(Vector{})
}

// IsFinite returns true if none of the Vector's components are NaN or infinite.
func (vec Vector) IsFinite() bool {
	for _, v := range [3]float64{vec.X, vec.Y, vec.Z} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
