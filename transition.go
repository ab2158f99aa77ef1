package slideview

import (
	"errors"
	"fmt"
	"time"

	"github.com/tanema/gween/ease"
)

// DefaultTransitionDuration is how long a camera transition between presets takes by default.
const DefaultTransitionDuration = 2000 * time.Millisecond

// ErrPresetNotFound is returned when a transition is requested to a preset that isn't in the FramingTable.
// Callers are expected to ignore the request rather than fail.
var ErrPresetNotFound = errors.New("preset not found")

// TransitionState describes one camera move from a starting pose to an ending pose over a fixed duration.
// It's a value: ticking it never changes it, so the same time always yields the same pose.
type TransitionState struct {
	Preset    PresetName // The preset being transitioned to; empty for transitions to arbitrary poses
	Start     CameraPose
	End       CameraPose
	StartTime time.Time
	Duration  time.Duration
	Easing    ease.TweenFunc // Nil uses the default ease-out cubic
}

// StartTransition begins a transition from the current pose to the pose of the named preset in the table, starting at now.
// If the preset isn't in the table, a nil TransitionState and an error wrapping ErrPresetNotFound are returned.
func StartTransition(current CameraPose, table FramingTable, name PresetName, duration time.Duration, now time.Time) (*TransitionState, error) {

	end, ok := table.Pose(name)
	if !ok {
		return nil, fmt.Errorf("slideview: %w: %q", ErrPresetNotFound, name)
	}

	state := StartTransitionToPose(current, end, duration, now)
	state.Preset = name
	return state, nil

}

// StartTransitionToPose begins a transition from the current pose to an arbitrary target pose, starting at now.
// A duration of zero (or less) produces a transition that is finished immediately, snapping to the target pose.
func StartTransitionToPose(current, target CameraPose, duration time.Duration, now time.Time) *TransitionState {
	return &TransitionState{
		Start:     current,
		End:       target,
		StartTime: now,
		Duration:  duration,
	}
}

// Progress returns the linear progress of the transition at the given time, clamped to the range [0, 1].
func (ts TransitionState) Progress(now time.Time) float64 {

	if ts.Duration <= 0 {
		return 1
	}

	progress := float64(now.Sub(ts.StartTime)) / float64(ts.Duration)

	return clamp(progress, 0, 1)

}

// Tick returns the eased, interpolated pose of the transition at the given time, and whether the transition is finished.
// At the start time, it returns the starting pose exactly; at or after the start time plus the duration, it returns the ending pose
// exactly. Calling Tick after the transition is finished is safe.
func (ts TransitionState) Tick(now time.Time) (CameraPose, bool) {

	progress := ts.Progress(now)

	if progress >= 1 {
		return ts.End, true
	}

	return ts.Start.Lerp(ts.End, Ease(ts.Easing, progress)), false

}

// EndTime returns the time at which the transition finishes.
func (ts TransitionState) EndTime() time.Time {
	return ts.StartTime.Add(ts.Duration)
}
