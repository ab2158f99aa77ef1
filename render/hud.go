package render

import (
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/solarlune/slideview"
	"github.com/solarlune/slideview/colors"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"golang.org/x/image/font/basicfont"
)

const lineHeight = 16

// HUD draws the list of camera presets, the active preset's description, and some status text over the view.
type HUD struct {
	Visible bool
	Status  string // Extra line shown at the bottom, i.e. the AR hand-off result

	caption     string
	captionFade *gween.Tween
	alpha       float32
}

// NewHUD creates a new, visible HUD.
func NewHUD() *HUD {
	return &HUD{Visible: true}
}

// ShowCaption displays the text given, fading it out over the number of seconds given.
func (hud *HUD) ShowCaption(caption string, seconds float32) {
	hud.caption = caption
	hud.alpha = 1
	// Fades from 2 with an ease-in, so the caption stays fully opaque for about 70% of the time given.
	hud.captionFade = gween.New(2, 0, seconds, ease.InQuad)
}

// Update advances the caption fade by dt seconds.
func (hud *HUD) Update(dt float32) {
	if hud.captionFade == nil {
		return
	}
	value, finished := hud.captionFade.Update(dt)
	hud.alpha = clamp(value, 0, 1)
	if finished {
		hud.captionFade = nil
		hud.caption = ""
		hud.alpha = 0
	}
}

// CaptionAlpha returns the current opacity of the caption, from 0 to 1.
func (hud *HUD) CaptionAlpha() float32 {
	return hud.alpha
}

// Lines returns the preset list as displayed, one line per preset, with the active one marked.
func (hud *HUD) Lines(session *slideview.Session) []string {

	lines := []string{}

	for i, p := range session.Presets() {
		marker := " "
		if p.Name == session.ActivePreset() {
			marker = ">"
		}
		label := p.Label
		if label == "" {
			label = string(p.Name)
		}
		lines = append(lines, fmt.Sprintf("%s %d: %s", marker, i+1, label))
	}

	return lines

}

// Draw draws the HUD to the screen.
func (hud *HUD) Draw(screen *ebiten.Image, session *slideview.Session, renderer *Renderer) {

	if !hud.Visible {
		return
	}

	y := 20

	for _, line := range hud.Lines(session) {
		c := colors.HUDText()
		if strings.HasPrefix(line, ">") {
			c = colors.HUDHighlight()
		}
		drawShadowedText(screen, line, 8, y, c)
		y += lineHeight
	}

	y += lineHeight / 2
	drawShadowedText(screen, "R: Reset view  A: View in AR  Drag: Orbit  Wheel: Zoom", 8, y, colors.HUDText())
	y += lineHeight
	drawShadowedText(screen, "F1: HUD  F4: Fullscreen  F12: Screenshot  Esc: Quit", 8, y, colors.HUDText())

	h := screen.Bounds().Dy()

	if hud.caption != "" && hud.alpha > 0 {
		c := colors.HUDText()
		c.A = hud.alpha
		drawShadowedText(screen, hud.caption, 8, h-3*lineHeight, c)
	}

	status := fmt.Sprintf("Camera: %s  Triangles: %d/%d  TPS: %.0f",
		session.Phase(), renderer.DebugInfo.DrawnTris, renderer.DebugInfo.TotalTris, ebiten.ActualTPS())
	if hud.Status != "" {
		status = hud.Status + "  " + status
	}
	drawShadowedText(screen, status, 8, h-lineHeight, colors.HUDText())

}

func drawShadowedText(screen *ebiten.Image, txt string, x, y int, c slideview.Color) {
	shadow := colors.HUDShadow()
	shadow.A *= c.A
	text.Draw(screen, txt, basicfont.Face7x13, x+1, y+1, shadow.ToNRGBA64())
	text.Draw(screen, txt, basicfont.Face7x13, x, y, c.ToNRGBA64())
}
