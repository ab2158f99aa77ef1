package slideview

import (
	"math"
	"testing"
)

func BenchmarkMatrixMult(b *testing.B) {

	b.ReportAllocs()

	mat := NewMatrix4Rotate(0, 1, 0.2, 0.24).Mult(NewMatrix4Translate(1, 4, -12))

	for i := 0; i < b.N; i++ {
		mat = mat.Mult(mat)
	}

}

func TestMatrixQuaternionMatchesAxisAngle(t *testing.T) {

	half := math.Pi / 8

	quat := NewMatrix4FromQuaternion(0, math.Sin(half), 0, math.Cos(half))
	axis := NewMatrix4Rotate(0, 1, 0, math.Pi/4)

	if !quat.Equals(axis) {
		t.Fatalf("quaternion rotation\n%s\ndoesn't match axis-angle rotation\n%s", quat, axis)
	}

}

func TestMatrixTRSOrder(t *testing.T) {

	// Rotate 90 degrees around +Y, scale by 2, and move up by 10.
	half := math.Pi / 4
	mat := NewMatrix4TRS([3]float64{0, 10, 0}, [4]float64{0, math.Sin(half), 0, math.Cos(half)}, [3]float64{2, 2, 2})

	got := mat.MultVec(NewVector(1, 0, 0))
	want := NewVector(0, 10, -2)

	if !got.Equals(want) {
		t.Fatalf("TRS * (1, 0, 0) = %v, want %v", got, want)
	}

}

func TestMatrixFromFloats(t *testing.T) {

	// glTF stores the translation in elements 12 to 14.
	mat := NewMatrix4FromFloats([16]float64{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		5, 6, 7, 1,
	})

	if got := mat.MultVec(NewVectorZero()); !got.Equals(NewVector(5, 6, 7)) {
		t.Fatalf("translation = %v, want (5, 6, 7)", got)
	}

	if mat.IsIdentity() {
		t.Fatal("translated matrix reported as identity")
	}

}

func TestLookAtMatrix(t *testing.T) {

	mat := NewLookAtMatrix(NewVector(0, 0, 0), NewVector(0, 0, -5), WorldUp)

	if !mat.Forward().Equals(NewVector(0, 0, -1)) {
		t.Errorf("Forward() = %v, want -Z", mat.Forward())
	}

	if !mat.Up().Equals(WorldUp) {
		t.Errorf("Up() = %v, want +Y", mat.Up())
	}

	// Looking straight down mustn't produce NaNs.
	down := NewLookAtMatrix(NewVector(0, 5, 0), NewVectorZero(), WorldUp)
	for i := 0; i < 3; i++ {
		if !down.Row(i).IsFinite() || down.Row(i).IsZero() {
			t.Fatalf("straight-down look-at row %d = %v", i, down.Row(i))
		}
	}

	if !NewLookAtMatrix(NewVector(1, 1, 1), NewVector(1, 1, 1), WorldUp).IsIdentity() {
		t.Error("look-at between identical points should be identity")
	}

}

func TestProjectionPerspectiveDepth(t *testing.T) {

	proj := NewProjectionPerspective(60, 0.1, 100, 800, 600)

	// A point 10 units in front of a camera looking down -Z.
	v, w := proj.MultVecW(NewVector(0, 0, -10))

	if math.Abs(w-10) > 1e-9 {
		t.Errorf("W = %v, want the view depth 10", w)
	}

	if ndc := v.Z / w; ndc < -1 || ndc > 1 {
		t.Errorf("NDC depth %v is outside [-1, 1]", ndc)
	}

	if v, w = proj.MultVecW(NewVector(0, 0, -0.1)); math.Abs(v.Z/w+1) > 1e-9 {
		t.Errorf("near plane NDC depth = %v, want -1", v.Z/w)
	}

}
