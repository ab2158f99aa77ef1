package slideview

import (
	"testing"

	"github.com/quasilyte/gdata/v2"
)

func openTestGdata(t *testing.T, appName string) *gdata.Manager {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("XDG_DATA_HOME", "")
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		t.Fatalf("failed to open gdata: %v", err)
	}
	return m
}

func TestSettingsManagerDefaults(t *testing.T) {

	sm, err := NewSettingsManager(openTestGdata(t, "slideview_test_defaults"))
	if err != nil {
		t.Fatal(err)
	}

	settings := sm.Settings()

	if !settings.HUDVisible || settings.Fullscreen || settings.LastPreset != "" || settings.Easing != "" {
		t.Errorf("defaults = %+v", settings)
	}

	if !sm.Persistent() {
		t.Error("manager backed by gdata reports it isn't persistent")
	}

}

func TestSettingsManagerSaveLoad(t *testing.T) {

	m := openTestGdata(t, "slideview_test_save_load")

	sm1, err := NewSettingsManager(m)
	if err != nil {
		t.Fatal(err)
	}

	sm1.SetLastPreset(PresetSoundLight)
	sm1.SetEasing("out-bounce")
	sm1.SetFullscreen(true)
	sm1.SetHUDVisible(false)

	if err := sm1.Save(); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	sm2, err := NewSettingsManager(m)
	if err != nil {
		t.Fatal(err)
	}

	want := ViewerSettings{LastPreset: PresetSoundLight, Easing: "out-bounce", Fullscreen: true, HUDVisible: false}
	if got := *sm2.Settings(); got != want {
		t.Errorf("loaded settings = %+v, want %+v", got, want)
	}

}

func TestSettingsManagerCorruptData(t *testing.T) {

	m := openTestGdata(t, "slideview_test_corrupt")

	if err := m.SaveObjectProp(settingsObject, settingsProperty, []byte("last_preset: [unterminated")); err != nil {
		t.Fatal(err)
	}

	sm, err := NewSettingsManager(m)
	if err != nil {
		t.Fatal(err)
	}

	if *sm.Settings() != *DefaultViewerSettings() {
		t.Errorf("settings after corrupt load = %+v, want defaults", sm.Settings())
	}

	if err := sm.Load(); err == nil {
		t.Error("Load() of corrupt data returned no error")
	}

}

func TestSettingsManagerMemoryOnly(t *testing.T) {

	sm, err := NewSettingsManager(nil)
	if err != nil {
		t.Fatal(err)
	}

	sm.SetLastPreset(PresetFirstDrop)

	if err := sm.Save(); err != nil {
		t.Errorf("Save() in memory-only mode returned %v", err)
	}

	if sm.Persistent() {
		t.Error("memory-only manager reports it's persistent")
	}

	if err := sm.Load(); err != nil {
		t.Fatal(err)
	}

	if sm.Settings().LastPreset != "" {
		t.Errorf("memory-only Load() kept %q", sm.Settings().LastPreset)
	}

}

func TestSettingsApplyEasing(t *testing.T) {

	cfg := DefaultConfig()

	settings := DefaultViewerSettings()
	if got := settings.Apply(cfg); got.Transition.Easing != cfg.Transition.Easing {
		t.Errorf("empty override changed easing to %q", got.Transition.Easing)
	}

	settings.Easing = "linear"
	got := settings.Apply(cfg)

	if got.Transition.Easing != "linear" {
		t.Errorf("easing = %q, want linear", got.Transition.Easing)
	}

	if cfg.Transition.Easing != DefaultEasing {
		t.Error("Apply() modified the original config")
	}

	sm, _ := NewSettingsManager(nil)
	sm.SetEasing("not-a-curve")
	if sm.Settings().Easing != "" {
		t.Errorf("unknown easing was stored as %q", sm.Settings().Easing)
	}

}
