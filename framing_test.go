package slideview

import (
	"math"
	"testing"
)

func testFramingConfig() FramingConfig {
	return DefaultConfig().FramingConfig()
}

func TestComputeFramingTablePopulatesEveryPreset(t *testing.T) {

	config := testFramingConfig()

	table, _ := ComputeFramingTable(NewBoundingBoxFromPoints(NewVector(-1, 0, -2), NewVector(1, 3, 2)), 1, config)

	if len(table) != len(config.Presets) {
		t.Fatalf("table has %d poses, want %d", len(table), len(config.Presets))
	}

	for _, p := range config.Presets {
		if _, ok := table.Pose(p.Name); !ok {
			t.Errorf("preset %q missing from table", p.Name)
		}
	}

}

func TestComputeFramingTableFactors(t *testing.T) {

	config := FramingConfig{
		Presets: []PresetFraming{
			{Name: "test", Position: NewVector(1, 2, 3), Target: NewVector(0.5, 0.25, 0)},
		},
		Default: PresetFraming{Position: NewVector(1, 1, 1)},
	}

	// Size (2, 4, 8) * scale 0.5 = (1, 2, 4), so maxDim is 4.
	bbox := NewBoundingBoxFromPoints(NewVector(10, 10, 10), NewVector(12, 14, 18))

	table, defaultPose := ComputeFramingTable(bbox, 0.5, config)

	pose := table["test"]

	if want := NewVector(4, 8, 12); !pose.Position.Equals(want) {
		t.Errorf("position = %v, want %v", pose.Position, want)
	}

	if want := NewVector(0.5, 0.5, 0); !pose.Target.Equals(want) {
		t.Errorf("target = %v, want %v", pose.Target, want)
	}

	if want := NewVector(4, 4, 4); !defaultPose.Position.Equals(want) {
		t.Errorf("default position = %v, want %v", defaultPose.Position, want)
	}

}

func TestComputeFramingTableDegenerate(t *testing.T) {

	config := testFramingConfig()

	boxes := map[string]BoundingBox{
		"point":   NewBoundingBoxFromPoints(NewVector(3, 3, 3)),
		"flat":    NewBoundingBoxFromPoints(NewVector(0, 0, 0), NewVector(5, 0, 5)),
		"line":    NewBoundingBoxFromPoints(NewVector(0, 0, 0), NewVector(0, 2, 0)),
		"empty":   NewBoundingBox(),
		"tiny":    NewBoundingBoxFromPoints(NewVector(0, 0, 0), NewVector(1e-12, 1e-12, 1e-12)),
		"nan":     {Min: NewVector(math.NaN(), 0, 0), Max: NewVector(1, 1, 1)},
		"inf":     {Min: NewVector(0, math.Inf(-1), 0), Max: NewVector(1, math.Inf(1), 1)},
		"origin":  NewBoundingBoxFromPoints(NewVectorZero()),
		"regular": NewBoundingBoxFromPoints(NewVector(-1, -1, -1), NewVector(1, 1, 1)),
	}

	for name, box := range boxes {

		for _, scale := range []float64{1e-9, 0.5, 1, 1000} {

			table, defaultPose := ComputeFramingTable(box, scale, config)

			if !defaultPose.IsFinite() {
				t.Errorf("%s @ %v: default pose %v isn't finite", name, scale, defaultPose)
			}

			for presetName, pose := range table {
				if !pose.IsFinite() {
					t.Errorf("%s @ %v: preset %q pose %v isn't finite", name, scale, presetName, pose)
				}
			}

		}

	}

}

func TestComputeFramingTableScaleInvariance(t *testing.T) {

	config := testFramingConfig()

	bbox := NewBoundingBoxFromPoints(NewVector(-1.3, 0, -0.7), NewVector(2.1, 5.9, 3.3))

	table1, default1 := ComputeFramingTable(bbox, 0.37, config)
	table2, default2 := ComputeFramingTable(bbox, 0.74, config)

	double := func(p CameraPose) CameraPose {
		return CameraPose{Position: p.Position.Scale(2), Target: p.Target.Scale(2)}
	}

	if double(default1) != default2 {
		t.Errorf("default pose at 2x scale = %v, want %v", default2, double(default1))
	}

	for name, pose := range table1 {
		if double(pose) != table2[name] {
			t.Errorf("preset %q at 2x scale = %v, want %v", name, table2[name], double(pose))
		}
	}

}

func TestComputeFramingTableNonPositiveScale(t *testing.T) {

	config := testFramingConfig()
	bbox := NewBoundingBoxFromPoints(NewVector(0, 0, 0), NewVector(1, 2, 3))

	want, wantDefault := ComputeFramingTable(bbox, 1, config)

	for _, scale := range []float64{0, -2} {
		got, gotDefault := ComputeFramingTable(bbox, scale, config)
		if gotDefault != wantDefault {
			t.Errorf("scale %v: default pose = %v, want %v", scale, gotDefault, wantDefault)
		}
		for name := range want {
			if got[name] != want[name] {
				t.Errorf("scale %v: preset %q = %v, want %v", scale, name, got[name], want[name])
			}
		}
	}

}

func TestFramingConfigPreset(t *testing.T) {

	config := testFramingConfig()

	if _, ok := config.Preset(PresetExtremeGs); !ok {
		t.Errorf("default config is missing %q", PresetExtremeGs)
	}

	if _, ok := config.Preset("does-not-exist"); ok {
		t.Error("found a preset that doesn't exist")
	}

}
