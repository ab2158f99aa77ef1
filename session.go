package slideview

import (
	"time"
)

// TransitionPhase describes where a Session's camera is in the transition lifecycle.
type TransitionPhase int

const (
	PhaseIdle   TransitionPhase = iota // No transition has run since the last model load or user interaction
	PhaseActive                        // A transition is in progress
	PhaseDone                          // The last transition finished
)

func (phase TransitionPhase) String() string {
	switch phase {
	case PhaseIdle:
		return "idle"
	case PhaseActive:
		return "active"
	case PhaseDone:
		return "done"
	}
	return "unknown"
}

// Session is the viewer context: it owns the FramingTable for the loaded model, the current camera pose, and the single active
// camera transition. A Session is driven from one goroutine (the render loop); it does no locking.
type Session struct {
	config  *Config
	framing FramingConfig
	orbit   OrbitControls

	bounds    BoundingBox
	scale     float64
	hasBounds bool

	table       FramingTable
	defaultPose CameraPose
	pose        CameraPose

	transition *TransitionState
	phase      TransitionPhase
	lastPreset PresetName

	// Clock returns the current time; it defaults to time.Now, and can be swapped out for testing.
	Clock func() time.Time
	// OnTransitionFinish, if set, is called from Advance() when a transition finishes.
	OnTransitionFinish func(state TransitionState)
}

// NewSession creates a new Session using the Config given (or DefaultConfig() if nil). Until LoadBounds() is called, the
// FramingTable is empty and every preset selection returns ErrPresetNotFound.
func NewSession(config *Config) *Session {
	if config == nil {
		config = DefaultConfig()
	}
	session := &Session{
		table: FramingTable{},
		Clock: time.Now,
	}
	session.applyConfig(config)
	return session
}

func (session *Session) applyConfig(config *Config) {
	session.config = config
	session.framing = config.FramingConfig()
	session.orbit = config.OrbitControls()
}

// Config returns the Session's current Config.
func (session *Session) Config() *Config {
	return session.config
}

// SetConfig replaces the Session's configuration (i.e. after a hot reload). If a model is loaded, its FramingTable is rebuilt
// from the new preset factors; any in-flight transition is cancelled, but the current pose is kept.
func (session *Session) SetConfig(config *Config) {
	session.applyConfig(config)
	if session.hasBounds {
		session.Cancel()
		session.table, session.defaultPose = ComputeFramingTable(session.bounds, session.scale, session.framing)
	}
}

// LoadBounds frames a newly loaded model: it cancels any in-flight transition, replaces the FramingTable with one derived from the
// model's bounding box and display scale, and snaps the camera to the default pose through a zero-duration transition.
// It returns the default pose.
func (session *Session) LoadBounds(bbox BoundingBox, scale float64) CameraPose {

	session.Cancel()

	session.bounds = bbox
	session.scale = scale
	session.hasBounds = true
	session.lastPreset = ""

	session.table, session.defaultPose = ComputeFramingTable(bbox, scale, session.framing)

	// The snap is applied directly rather than through Advance(), so OnTransitionFinish isn't called for it.
	now := session.Clock()
	session.pose, _ = StartTransitionToPose(session.pose, session.defaultPose, 0, now).Tick(now)
	session.phase = PhaseIdle

	return session.defaultPose

}

// poseAt returns the camera pose at the given time, taking an in-flight transition into account without advancing it.
func (session *Session) poseAt(now time.Time) CameraPose {
	if session.transition != nil {
		pose, _ := session.transition.Tick(now)
		return pose
	}
	return session.pose
}

func (session *Session) startTransition(state *TransitionState) {
	state.Easing = session.config.TransitionEasing()
	session.transition = state
	session.phase = PhaseActive
}

// SelectPreset starts a transition towards the named preset, using the configured duration. If a transition is already running,
// it's replaced, and the new one starts from the pose the old one had reached at now, keeping the motion continuous.
// An unknown preset returns an error wrapping ErrPresetNotFound and leaves any running transition alone.
func (session *Session) SelectPreset(name PresetName, now time.Time) error {

	state, err := StartTransition(session.poseAt(now), session.table, name, session.config.TransitionDuration(), now)
	if err != nil {
		return err
	}

	session.pose = state.Start
	session.lastPreset = name
	session.startTransition(state)
	return nil

}

// ResetView starts a transition back to the default pose for the loaded model.
func (session *Session) ResetView(now time.Time) {
	start := session.poseAt(now)
	session.pose = start
	session.lastPreset = ""
	session.startTransition(StartTransitionToPose(start, session.defaultPose, session.config.TransitionDuration(), now))
}

// Advance moves any active transition forward to the given time and returns the camera pose to render. It should be called once
// per frame. When the transition finishes, it's discarded and the Session's phase becomes PhaseDone.
func (session *Session) Advance(now time.Time) CameraPose {

	if session.transition == nil {
		return session.pose
	}

	pose, done := session.transition.Tick(now)
	session.pose = pose

	if done {
		finished := *session.transition
		session.transition = nil
		session.phase = PhaseDone
		if session.OnTransitionFinish != nil {
			session.OnTransitionFinish(finished)
		}
	}

	return pose

}

// Cancel stops any active transition where it was last advanced to.
func (session *Session) Cancel() {
	session.transition = nil
	if session.phase == PhaseActive {
		session.phase = PhaseIdle
	}
}

// Orbit rotates the camera around its target by the yaw and pitch given (in radians). User interaction takes over from any
// running transition, which is cancelled at the current pose.
func (session *Session) Orbit(yaw, pitch float64) CameraPose {
	session.interrupt()
	session.pose = session.orbit.Rotate(session.pose, yaw, pitch)
	return session.pose
}

// Zoom moves the camera towards (factor < 1) or away from (factor > 1) its target, cancelling any running transition.
func (session *Session) Zoom(factor float64) CameraPose {
	session.interrupt()
	session.pose = session.orbit.Zoom(session.pose, factor)
	return session.pose
}

func (session *Session) interrupt() {
	if session.transition != nil {
		session.pose = session.poseAt(session.Clock())
	}
	session.Cancel()
	session.lastPreset = ""
}

// Pose returns the camera pose as of the last call to Advance() (or user interaction).
func (session *Session) Pose() CameraPose {
	return session.pose
}

// DefaultPose returns the default (overview) pose for the loaded model.
func (session *Session) DefaultPose() CameraPose {
	return session.defaultPose
}

// Table returns the FramingTable for the loaded model. It must not be modified.
func (session *Session) Table() FramingTable {
	return session.table
}

// Transition returns a copy of the active transition, and whether there is one.
func (session *Session) Transition() (TransitionState, bool) {
	if session.transition == nil {
		return TransitionState{}, false
	}
	return *session.transition, true
}

// Phase returns the Session's position in the transition lifecycle.
func (session *Session) Phase() TransitionPhase {
	return session.phase
}

// ActivePreset returns the name of the last preset selected, or an empty name if the view has been reset, orbited, or reloaded since.
func (session *Session) ActivePreset() PresetName {
	return session.lastPreset
}

// Presets returns the configured presets, in configuration order.
func (session *Session) Presets() []PresetFraming {
	return session.framing.Presets
}

// Bounds returns the bounding box and scale last given to LoadBounds(), and whether a model has been loaded.
func (session *Session) Bounds() (BoundingBox, float64, bool) {
	return session.bounds, session.scale, session.hasBounds
}
