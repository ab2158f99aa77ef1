package slideview

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/tanema/gween/ease"
)

var testEpoch = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func testTable() FramingTable {
	return FramingTable{
		PresetFirstDrop:    NewCameraPose(NewVector(10, 10, 10), NewVector(1, 2, 3)),
		PresetWaterEffects: NewCameraPose(NewVector(-4, 1, 6), NewVector(0, 0.5, 0)),
	}
}

func TestTransitionExample(t *testing.T) {

	start := NewCameraPose(NewVectorZero(), NewVectorZero())

	state, err := StartTransition(start, testTable(), PresetFirstDrop, 2000*time.Millisecond, testEpoch)
	if err != nil {
		t.Fatal(err)
	}

	pose, done := state.Tick(testEpoch.Add(1000 * time.Millisecond))

	if done {
		t.Error("transition reported done halfway through")
	}

	// 1 - (1 - 0.5)^3 = 0.875
	if want := NewVector(8.75, 8.75, 8.75); !pose.Position.Equals(want) {
		t.Errorf("position at 1000ms = %v, want %v", pose.Position, want)
	}

}

func TestTransitionEndpointsExact(t *testing.T) {

	start := NewCameraPose(NewVector(0.1, 0.2, 0.3), NewVector(-0.7, 0.11, 9.9))
	table := testTable()

	state, err := StartTransition(start, table, PresetWaterEffects, 1500*time.Millisecond, testEpoch)
	if err != nil {
		t.Fatal(err)
	}

	if pose, done := state.Tick(testEpoch); pose != start || done {
		t.Errorf("Tick(start) = %v, %v; want %v exactly, not done", pose, done, start)
	}

	for _, after := range []time.Duration{1500 * time.Millisecond, 1501 * time.Millisecond, time.Hour} {
		pose, done := state.Tick(testEpoch.Add(after))
		if pose != table[PresetWaterEffects] || !done {
			t.Errorf("Tick(+%s) = %v, %v; want %v exactly, done", after, pose, done, table[PresetWaterEffects])
		}
	}

	// Before the start time, progress is clamped to 0.
	if pose, _ := state.Tick(testEpoch.Add(-time.Second)); pose != start {
		t.Errorf("Tick(before start) = %v, want %v", pose, start)
	}

}

func TestTransitionMonotonic(t *testing.T) {

	state, err := StartTransition(NewCameraPose(NewVectorZero(), NewVectorZero()), testTable(), PresetFirstDrop, 2*time.Second, testEpoch)
	if err != nil {
		t.Fatal(err)
	}

	last := -1.0

	for ms := 0; ms <= 2000; ms += 7 {
		now := testEpoch.Add(time.Duration(ms) * time.Millisecond)
		eased := Ease(state.Easing, state.Progress(now))
		if eased < last {
			t.Fatalf("eased progress went backwards at %dms: %v < %v", ms, eased, last)
		}
		last = eased
		pose, _ := state.Tick(now)
		if pose.Position.X < 0 || pose.Position.X > 10 {
			t.Fatalf("position %v left the start-end range at %dms", pose.Position, ms)
		}
	}

}

func TestTransitionIdempotent(t *testing.T) {

	state, err := StartTransition(NewCameraPose(NewVector(1, 2, 3), NewVectorZero()), testTable(), PresetFirstDrop, 2*time.Second, testEpoch)
	if err != nil {
		t.Fatal(err)
	}

	now := testEpoch.Add(733 * time.Millisecond)

	a, doneA := state.Tick(now)
	b, doneB := state.Tick(now)

	if a != b || doneA != doneB {
		t.Fatalf("repeated Tick gave %v/%v, then %v/%v", a, doneA, b, doneB)
	}

}

func TestTransitionNotFound(t *testing.T) {

	state, err := StartTransition(NewCameraPose(NewVectorZero(), NewVectorZero()), testTable(), "does-not-exist", 2*time.Second, testEpoch)

	if !errors.Is(err, ErrPresetNotFound) {
		t.Fatalf("err = %v, want ErrPresetNotFound", err)
	}

	if state != nil {
		t.Fatalf("state = %v, want nil", state)
	}

}

func TestTransitionZeroDuration(t *testing.T) {

	end := NewCameraPose(NewVector(5, 5, 5), NewVectorZero())

	state := StartTransitionToPose(NewCameraPose(NewVectorZero(), NewVectorZero()), end, 0, testEpoch)

	if pose, done := state.Tick(testEpoch); pose != end || !done {
		t.Fatalf("zero-duration Tick = %v, %v; want %v, done", pose, done, end)
	}

}

func TestEase(t *testing.T) {

	if got := Ease(nil, 0.5); got != 0.875 {
		t.Errorf("default easing at 0.5 = %v, want 0.875", got)
	}

	for name := range easings {
		fn, _ := EasingByName(name)
		if Ease(fn, 0) != 0 || Ease(fn, 1) != 1 {
			t.Errorf("%s doesn't map the endpoints exactly", name)
		}
	}

	// The default curve is exact in float64, not only at 0.5.
	for _, p := range []float64{0.1, 0.35, 0.7, 0.999} {
		inv := 1 - p
		if got, want := Ease(nil, p), 1-inv*inv*inv; got != want {
			t.Errorf("default easing at %v = %v, want %v", p, got, want)
		}
	}

	if fn, ok := EasingByName(DefaultEasing); !ok || fn != nil {
		t.Errorf("%s should be registered and use the float64 curve", DefaultEasing)
	}

	if got := Ease(ease.Linear, 0.25); got != 0.25 {
		t.Errorf("linear easing at 0.25 = %v", got)
	}

	if got := Ease(ease.Linear, 7); got != 1 {
		t.Errorf("progress above 1 should clamp, got %v", got)
	}

}

func TestTickDefaultEasingPrecision(t *testing.T) {

	start := NewCameraPose(NewVectorZero(), NewVectorZero())
	end := NewCameraPose(NewVector(1000, 0, 0), NewVectorZero())

	state := StartTransitionToPose(start, end, time.Second, testEpoch)

	pose, done := state.Tick(testEpoch.Add(700 * time.Millisecond))
	if done {
		t.Fatal("transition finished early")
	}

	// 1000 * (1 - 0.3^3)
	if math.Abs(pose.Position.X-973) > 1e-9 {
		t.Errorf("x at 700ms = %.9f, want 973", pose.Position.X)
	}

}
