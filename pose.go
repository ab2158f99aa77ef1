package slideview

import "fmt"

// CameraPose represents where a viewer's eye is (Position) and the point it looks at (Target).
type CameraPose struct {
	Position Vector
	Target   Vector
}

// NewCameraPose creates a new CameraPose from a position and look-at target.
func NewCameraPose(position, target Vector) CameraPose {
	return CameraPose{Position: position, Target: target}
}

// Lerp interpolates both the position and target of the CameraPose towards the other pose by the percentage given.
// A percent of 0 returns the calling pose exactly, and 1 returns the other pose exactly.
func (pose CameraPose) Lerp(other CameraPose, percent float64) CameraPose {
	return CameraPose{
		Position: pose.Position.Lerp(other.Position, percent),
		Target:   pose.Target.Lerp(other.Target, percent),
	}
}

// Equals returns true if both the position and target of the two poses are close enough.
func (pose CameraPose) Equals(other CameraPose) bool {
	return pose.Position.Equals(other.Position) && pose.Target.Equals(other.Target)
}

// Distance returns the distance from the pose's position to its target.
func (pose CameraPose) Distance() float64 {
	return pose.Position.Distance(pose.Target)
}

// IsFinite returns true if no component of the pose is NaN or infinite.
func (pose CameraPose) IsFinite() bool {
	return pose.Position.IsFinite() && pose.Target.IsFinite()
}

func (pose CameraPose) String() string {
	return fmt.Sprintf("{pos: (%.3f, %.3f, %.3f), target: (%.3f, %.3f, %.3f)}",
		pose.Position.X, pose.Position.Y, pose.Position.Z,
		pose.Target.X, pose.Target.Y, pose.Target.Z)
}
