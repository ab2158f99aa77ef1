package slideview

import "math"

// OrbitControls constrains camera movement to rotating and zooming around a pose's look-at target.
// Distances are in world units, pitch limits in radians (0 is level with the target, positive looks down from above).
type OrbitControls struct {
	MinDistance float64
	MaxDistance float64
	MinPitch    float64
	MaxPitch    float64
}

// NewOrbitControls returns OrbitControls with limits that keep the camera above the ground plane and away from the poles.
func NewOrbitControls() OrbitControls {
	return OrbitControls{
		MinDistance: 0.1,
		MaxDistance: 1000,
		MinPitch:    -ToRadians(10),
		MaxPitch:    ToRadians(85),
	}
}

// spherical returns the distance, yaw, and pitch of the pose's position relative to its target.
func spherical(pose CameraPose) (dist, yaw, pitch float64) {
	offset := pose.Position.Sub(pose.Target)
	dist = offset.Magnitude()
	if dist == 0 {
		return 0, 0, 0
	}
	yaw = math.Atan2(offset.X, offset.Z)
	pitch = math.Asin(clamp(offset.Y/dist, -1, 1))
	return
}

func fromSpherical(target Vector, dist, yaw, pitch float64) Vector {
	cp := math.Cos(pitch)
	return target.Add(Vector{
		X: dist * cp * math.Sin(yaw),
		Y: dist * math.Sin(pitch),
		Z: dist * cp * math.Cos(yaw),
	})
}

// Rotate returns a copy of the pose orbited around its target by the yaw (around +Y) and pitch angles given (in radians).
// The distance to the target is preserved and the pitch is clamped to the controls' limits. A pose whose position sits on its
// target can't be orbited and is returned unchanged.
func (oc OrbitControls) Rotate(pose CameraPose, yaw, pitch float64) CameraPose {

	dist, curYaw, curPitch := spherical(pose)
	if dist == 0 {
		return pose
	}

	newPitch := clamp(curPitch+pitch, oc.MinPitch, oc.MaxPitch)

	pose.Position = fromSpherical(pose.Target, dist, curYaw+yaw, newPitch)
	return pose

}

// Zoom returns a copy of the pose moved towards (factor < 1) or away from (factor > 1) its target, clamped to the controls'
// distance limits. Non-positive factors and poses sitting on their target are returned unchanged.
func (oc OrbitControls) Zoom(pose CameraPose, factor float64) CameraPose {

	if factor <= 0 {
		return pose
	}

	dist, yaw, pitch := spherical(pose)
	if dist == 0 {
		return pose
	}

	newDist := dist * factor
	if oc.MaxDistance > 0 {
		newDist = clamp(newDist, oc.MinDistance, oc.MaxDistance)
	} else if newDist < oc.MinDistance {
		newDist = oc.MinDistance
	}

	pose.Position = fromSpherical(pose.Target, newDist, yaw, pitch)
	return pose

}
