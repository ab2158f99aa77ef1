package slideview

import "math"

// DefaultFramingEpsilon is the smallest largest-dimension a model's size can have when deriving camera framing. Boxes flatter than this
// (including fully degenerate, zero-volume boxes) are framed as though their largest dimension were this value.
const DefaultFramingEpsilon = 1e-6

// PresetName identifies a camera preset (i.e. "first-drop"). The set of names comes from configuration, not from code.
type PresetName string

// Names of the presets shipped in DefaultConfig().
const (
	PresetFirstDrop    PresetName = "first-drop"
	PresetWaterEffects PresetName = "water-effects"
	PresetSoundLight   PresetName = "sound-light"
	PresetExtremeGs    PresetName = "extreme-gs"
)

// PresetFraming is a declarative camera preset. Position holds multipliers applied to the model's largest scaled dimension, while
// Target holds multipliers applied component-wise to the model's scaled size (so Target.Y is a fraction of the model's height).
// This is the only place preset geometry lives.
type PresetFraming struct {
	Name        PresetName
	Label       string
	Description string
	Position    Vector
	Target      Vector
}

// Pose returns the CameraPose this preset produces for a model of the given scaled size and (clamped) largest dimension.
func (preset PresetFraming) Pose(size Vector, maxDim float64) CameraPose {
	return CameraPose{
		Position: preset.Position.Scale(maxDim),
		Target:   preset.Target.MultComp(size),
	}
}

// FramingConfig holds the preset factor table used to frame a model.
type FramingConfig struct {
	Presets []PresetFraming
	Default PresetFraming // The framing used when a model is first loaded
	Epsilon float64       // Minimum value for the largest dimension; values <= 0 use DefaultFramingEpsilon
}

// Preset returns the PresetFraming with the given name, and a boolean indicating if it was found.
func (fc FramingConfig) Preset(name PresetName) (PresetFraming, bool) {
	for _, p := range fc.Presets {
		if p.Name == name {
			return p, true
		}
	}
	return PresetFraming{}, false
}

// FramingTable maps each configured preset to its CameraPose for one loaded model. A FramingTable is built once per model load
// and is replaced as a whole, never edited in place.
type FramingTable map[PresetName]CameraPose

// Pose returns the CameraPose for the given preset name, and whether it exists in the table.
func (table FramingTable) Pose(name PresetName) (CameraPose, bool) {
	pose, ok := table[name]
	return pose, ok
}

// ComputeFramingTable derives a camera pose for every configured preset (and the default pose) from a model's bounding box and the
// uniform scale it is displayed at. Poses are proportional to the model's size, so presets frame any model the same way regardless
// of its authored units. A degenerate box is framed using the configured epsilon rather than dividing by zero, and a non-positive
// (or non-finite) scale is treated as 1. ComputeFramingTable is pure and always succeeds.
func ComputeFramingTable(bbox BoundingBox, scale float64, config FramingConfig) (FramingTable, CameraPose) {

	if !(scale > 0) || math.IsInf(scale, 0) {
		scale = 1
	}

	eps := config.Epsilon
	if eps <= 0 {
		eps = DefaultFramingEpsilon
	}

	size := bbox.Size().Scale(scale)

	// Components that aren't finite, non-negative numbers (from a corrupt box) are treated as zero.
	for _, c := range []*float64{&size.X, &size.Y, &size.Z} {
		if !(*c >= 0) || math.IsInf(*c, 0) {
			*c = 0
		}
	}

	maxDim := size.MaxComponent()
	if !(maxDim >= eps) { // Also catches NaN
		maxDim = eps
	}

	table := make(FramingTable, len(config.Presets))

	for _, preset := range config.Presets {
		table[preset.Name] = preset.Pose(size, maxDim)
	}

	return table, config.Default.Pose(size, maxDim)

}
