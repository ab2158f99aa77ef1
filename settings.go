package slideview

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// ViewerSettings are the user's choices that persist between runs of the viewer. Unlike Config, they're written by the viewer itself.
type ViewerSettings struct {
	LastPreset PresetName `yaml:"last_preset"` // Preset to frame on startup; empty for the default view
	Easing     string     `yaml:"easing"`      // Overrides the config's transition easing when set
	Fullscreen bool       `yaml:"fullscreen"`
	HUDVisible bool       `yaml:"hud_visible"`
}

// DefaultViewerSettings returns the settings used when nothing has been saved yet.
func DefaultViewerSettings() *ViewerSettings {
	return &ViewerSettings{
		HUDVisible: true,
	}
}

const (
	settingsObject   = "settings"
	settingsProperty = "viewer"
)

// SettingsManager loads and saves ViewerSettings through gdata's per-user data directory.
// With a nil gdata manager it runs in memory only: Load() gives defaults and Save() does nothing.
type SettingsManager struct {
	data     *gdata.Manager
	settings *ViewerSettings
}

// OpenSettingsManager opens the gdata store for the application name given. If the store can't be opened, the error is returned
// along with an in-memory SettingsManager, so callers can carry on.
func OpenSettingsManager(appName string) (*SettingsManager, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		sm, _ := NewSettingsManager(nil)
		return sm, fmt.Errorf("slideview: open settings store: %w", err)
	}
	return NewSettingsManager(m)
}

// NewSettingsManager creates a SettingsManager and loads any saved settings. A failed load isn't fatal; defaults are used
// and the failure is logged.
func NewSettingsManager(data *gdata.Manager) (*SettingsManager, error) {
	sm := &SettingsManager{
		data:     data,
		settings: DefaultViewerSettings(),
	}
	if err := sm.Load(); err != nil {
		log.Printf("[settings] failed to load settings: %v (using defaults)", err)
	}
	return sm, nil
}

// Persistent returns if the SettingsManager actually stores settings on disk.
func (sm *SettingsManager) Persistent() bool {
	return sm.data != nil
}

// Load reads saved settings, falling back to defaults if there are none or they can't be read.
func (sm *SettingsManager) Load() error {

	if sm.data == nil || !sm.data.ObjectPropExists(settingsObject, settingsProperty) {
		sm.settings = DefaultViewerSettings()
		return nil
	}

	data, err := sm.data.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		sm.settings = DefaultViewerSettings()
		return fmt.Errorf("load settings: %w", err)
	}

	loaded := DefaultViewerSettings()
	if err := yaml.Unmarshal(data, loaded); err != nil {
		sm.settings = DefaultViewerSettings()
		return fmt.Errorf("unmarshal settings: %w", err)
	}

	if _, ok := EasingByName(loaded.Easing); loaded.Easing != "" && !ok {
		log.Printf("[settings] ignoring unknown easing %q", loaded.Easing)
		loaded.Easing = ""
	}

	sm.settings = loaded
	return nil

}

// Save writes the current settings. In memory-only mode it does nothing.
func (sm *SettingsManager) Save() error {

	if sm.data == nil {
		return nil
	}

	data, err := yaml.Marshal(sm.settings)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}

	if err := sm.data.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}

	return nil

}

// Settings returns the current settings.
func (sm *SettingsManager) Settings() *ViewerSettings {
	return sm.settings
}

// SetLastPreset records the preset the user last chose. Call Save() to persist it.
func (sm *SettingsManager) SetLastPreset(name PresetName) {
	sm.settings.LastPreset = name
}

// SetEasing sets the easing override; an unknown name clears it.
func (sm *SettingsManager) SetEasing(name string) {
	if _, ok := EasingByName(name); !ok {
		name = ""
	}
	sm.settings.Easing = name
}

func (sm *SettingsManager) SetFullscreen(fullscreen bool) {
	sm.settings.Fullscreen = fullscreen
}

func (sm *SettingsManager) SetHUDVisible(visible bool) {
	sm.settings.HUDVisible = visible
}

// Apply copies the settings that override the Config (currently only the easing) onto a copy of the Config given.
func (settings *ViewerSettings) Apply(cfg *Config) *Config {
	out := *cfg
	out.Framing.Presets = append([]PresetSpec(nil), cfg.Framing.Presets...)
	if settings.Easing != "" {
		out.Transition.Easing = settings.Easing
	}
	return &out
}
