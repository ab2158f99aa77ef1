package slideview

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// ErrARAssetMissing is returned when the chosen AR delivery path needs an asset URI that wasn't provided.
var ErrARAssetMissing = errors.New("AR asset URI missing")

// ARKind identifies one of the mutually exclusive ways a model can be handed to a platform AR viewer.
type ARKind int

const (
	ARUnsupported ARKind = iota // No AR viewer is available; show a fallback message
	ARQuickLook                 // iOS / iPadOS AR Quick Look, opened through a link to a USDZ file
	ARSceneViewer               // Android Scene Viewer, opened through an intent URI to a GLB file
	ARWebXR                     // An immersive-ar WebXR session
)

func (kind ARKind) String() string {
	switch kind {
	case ARQuickLook:
		return "quick-look"
	case ARSceneViewer:
		return "scene-viewer"
	case ARWebXR:
		return "webxr"
	}
	return "unsupported"
}

// PlatformCapabilities describes which AR viewers the current platform offers.
type PlatformCapabilities struct {
	QuickLook        bool
	SceneViewer      bool
	WebXRImmersiveAR bool
}

// CapabilitiesFromUserAgent guesses the platform's AR capabilities from a browser user agent string. Whether an immersive-ar
// WebXR session is supported can't be read from the user agent, so it's passed in.
func CapabilitiesFromUserAgent(userAgent string, webXRImmersiveAR bool) PlatformCapabilities {

	ua := strings.ToLower(userAgent)

	caps := PlatformCapabilities{WebXRImmersiveAR: webXRImmersiveAR}

	// iPadOS reports itself as a Mac, but only touch devices support Quick Look AR.
	if strings.Contains(ua, "iphone") || strings.Contains(ua, "ipad") || strings.Contains(ua, "ipod") ||
		(strings.Contains(ua, "macintosh") && strings.Contains(ua, "mobile")) {
		caps.QuickLook = true
	}

	if strings.Contains(ua, "android") && !strings.Contains(ua, "firefox") && !strings.Contains(ua, "oculus") {
		caps.SceneViewer = true
	}

	return caps

}

// ARAsset holds what an AR viewer needs to display the model: only file locations and a title, never any camera state.
type ARAsset struct {
	GLBURI      string
	USDZURI     string
	Title       string
	FallbackURL string
}

// ARHandOff is the result of handing a model to an AR viewer: a link to open, or a WebXR session request to make.
type ARHandOff struct {
	Kind             ARKind
	URI              string   // Link (Quick Look, Scene Viewer) or model to place (WebXR)
	SessionMode      string   // WebXR session mode
	RequiredFeatures []string // WebXR features that must be granted
	OptionalFeatures []string // WebXR features to request if available
	Message          string   // Human-readable explanation, shown for the unsupported fallback
}

// ARDelivery is one way of handing a model to an AR viewer.
type ARDelivery interface {
	Kind() ARKind
	HandOff(asset ARAsset) (ARHandOff, error)
}

// SelectARDelivery picks exactly one AR delivery path for the platform. It should be called once at startup. Native viewers are preferred
// over WebXR: Quick Look, then Scene Viewer, then an immersive WebXR session, and finally the unsupported fallback.
func SelectARDelivery(caps PlatformCapabilities) ARDelivery {
	switch {
	case caps.QuickLook:
		return QuickLookLink{}
	case caps.SceneViewer:
		return SceneViewerIntent{}
	case caps.WebXRImmersiveAR:
		return ImmersiveWebXRSession{}
	}
	return UnsupportedFallback{}
}

// QuickLookLink hands a USDZ model to AR Quick Look.
type QuickLookLink struct{}

func (QuickLookLink) Kind() ARKind { return ARQuickLook }

// HandOff returns the USDZ link, with content scaling disabled so the model appears at real-world size.
func (QuickLookLink) HandOff(asset ARAsset) (ARHandOff, error) {
	if asset.USDZURI == "" {
		return ARHandOff{}, fmt.Errorf("slideview: quick look: %w (usdz)", ErrARAssetMissing)
	}
	return ARHandOff{
		Kind: ARQuickLook,
		URI:  asset.USDZURI + "#allowsContentScaling=0",
	}, nil
}

// SceneViewerIntent hands a GLB model to Android's Scene Viewer through an intent URI.
type SceneViewerIntent struct{}

func (SceneViewerIntent) Kind() ARKind { return ARSceneViewer }

// HandOff returns the Scene Viewer intent URI. The GLB URI should be absolute, as Scene Viewer fetches it itself.
func (SceneViewerIntent) HandOff(asset ARAsset) (ARHandOff, error) {

	if asset.GLBURI == "" {
		return ARHandOff{}, fmt.Errorf("slideview: scene viewer: %w (glb)", ErrARAssetMissing)
	}

	query := url.Values{}
	query.Set("file", asset.GLBURI)
	query.Set("mode", "ar_preferred")
	if asset.Title != "" {
		query.Set("title", asset.Title)
	}

	intent := "intent://arvr.google.com/scene-viewer/1.0?" + query.Encode() +
		"#Intent;scheme=https;package=com.google.ar.core;action=android.intent.action.VIEW;"

	if asset.FallbackURL != "" {
		intent += "S.browser_fallback_url=" + url.QueryEscape(asset.FallbackURL) + ";"
	}

	intent += "end;"

	return ARHandOff{Kind: ARSceneViewer, URI: intent}, nil

}

// ImmersiveWebXRSession places a GLB model through an immersive-ar WebXR session.
type ImmersiveWebXRSession struct{}

func (ImmersiveWebXRSession) Kind() ARKind { return ARWebXR }

// HandOff returns the session request: the immersive-ar mode with hit testing (to place the model on a surface).
func (ImmersiveWebXRSession) HandOff(asset ARAsset) (ARHandOff, error) {
	if asset.GLBURI == "" {
		return ARHandOff{}, fmt.Errorf("slideview: webxr: %w (glb)", ErrARAssetMissing)
	}
	return ARHandOff{
		Kind:             ARWebXR,
		URI:              asset.GLBURI,
		SessionMode:      "immersive-ar",
		RequiredFeatures: []string{"hit-test"},
		OptionalFeatures: []string{"dom-overlay", "local-floor"},
	}, nil
}

// UnsupportedFallback is used when no AR viewer is available.
type UnsupportedFallback struct{}

func (UnsupportedFallback) Kind() ARKind { return ARUnsupported }

// HandOff returns a message explaining AR isn't available; it never fails.
func (UnsupportedFallback) HandOff(asset ARAsset) (ARHandOff, error) {
	return ARHandOff{
		Kind:    ARUnsupported,
		URI:     asset.FallbackURL,
		Message: "AR isn't supported on this device; open this page on a phone or tablet to view the model in your space.",
	}, nil
}
