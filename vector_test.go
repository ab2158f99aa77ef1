package slideview

import (
	"math"
	"math/rand"
	"testing"
)

func BenchmarkAllocateVectorStructs(b *testing.B) {

	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		vecs := make([]Vector, 0, 100)
		vecs = append(vecs, Vector{0, 0, 0})
		_ = vecs
	}

}

func BenchmarkMathVector(b *testing.B) {

	b.StopTimer()

	maxSize := 1200

	vecs := make([]Vector, 0, maxSize)

	for i := 0; i < maxSize; i++ {
		vecs = append(vecs, Vector{X: rand.Float64(), Y: rand.Float64(), Z: rand.Float64()})
	}

	b.ReportAllocs()
	b.StartTimer()

	for z := 0; z < b.N; z++ {
		for i := 0; i < maxSize-1; i++ {
			vecs[i] = vecs[i].Add(vecs[i+1]).Cross(vecs[i]).Unit()
		}
	}

}

func TestVectorLerpEndpoints(t *testing.T) {

	a := NewVector(0.1, -3.7, 1e6)
	b := NewVector(7.3, 0.3, -2.5)

	if got := a.Lerp(b, 0); got != a {
		t.Errorf("Lerp(0) = %v, want %v exactly", got, a)
	}

	if got := a.Lerp(b, 1); got != b {
		t.Errorf("Lerp(1) = %v, want %v exactly", got, b)
	}

	if got := a.Lerp(b, 0.5); !got.Equals(NewVector(3.7, -1.7, (1e6-2.5)/2)) {
		t.Errorf("Lerp(0.5) = %v", got)
	}

}

func TestVectorCross(t *testing.T) {
	if got := WorldRight.Cross(WorldUp); !got.Equals(NewVector(0, 0, 1)) {
		t.Errorf("X cross Y = %v, want +Z", got)
	}
}

func TestVectorUnit(t *testing.T) {

	if got := NewVector(3, 0, 4).Unit(); !got.Equals(NewVector(0.6, 0, 0.8)) {
		t.Errorf("Unit() = %v", got)
	}

	if got := NewVectorZero().Unit(); !got.IsZero() {
		t.Errorf("zero vector's Unit() = %v, want zero", got)
	}

}

func TestVectorIsFinite(t *testing.T) {

	if !NewVector(1, 2, 3).IsFinite() {
		t.Error("finite vector reported as not finite")
	}

	for _, v := range []Vector{
		{math.NaN(), 0, 0},
		{0, math.Inf(1), 0},
		{0, 0, math.Inf(-1)},
	} {
		if v.IsFinite() {
			t.Errorf("%v reported as finite", v)
		}
	}

}

func TestVectorMaxComponent(t *testing.T) {
	if got := NewVector(-5, 2, 1).MaxComponent(); got != 2 {
		t.Errorf("MaxComponent() = %v, want 2", got)
	}
}
