// Package render draws a slideview.Asset with Ebitengine from a slideview.CameraPose.
package render

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/solarlune/slideview"
)

// Camera views the scene from a CameraPose. It looks down its local -Z axis, from the pose's Position towards its Target.
type Camera struct {
	pose     slideview.CameraPose
	rotation slideview.Matrix4

	width, height int
	near, far     float64
	fieldOfView   float64 // Vertical field of view in degrees

	updateProjectionMatrix bool
	cachedProjectionMatrix slideview.Matrix4

	resultColorTexture *ebiten.Image
}

// NewCamera creates a new Camera with a backing texture of the specified width and height. The texture itself isn't created until
// it's first needed.
func NewCamera(w, h int) *Camera {
	cam := &Camera{
		near:        0.05,
		far:         200,
		fieldOfView: 60,
		rotation:    slideview.NewMatrix4(),
	}
	cam.Resize(w, h)
	return cam
}

// Resize resizes the backing texture for the Camera to the specified width and height. If the sizes are unchanged, the function does nothing.
func (camera *Camera) Resize(w, h int) {

	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}

	if w == camera.width && h == camera.height {
		return
	}

	camera.width = w
	camera.height = h

	if camera.resultColorTexture != nil {
		camera.resultColorTexture.Deallocate()
		camera.resultColorTexture = nil
	}

	camera.updateProjectionMatrix = true

}

// Size returns the width and height of the camera's backing color texture.
func (camera *Camera) Size() (w, h int) {
	return camera.width, camera.height
}

// AspectRatio returns the camera's aspect ratio (width / height).
func (camera *Camera) AspectRatio() float64 {
	return float64(camera.width) / float64(camera.height)
}

// SetPose places the Camera at the pose's Position, looking at its Target.
func (camera *Camera) SetPose(pose slideview.CameraPose) {
	camera.pose = pose
	// The camera's +Z points away from the target, as it looks down -Z.
	camera.rotation = slideview.NewLookAtMatrix(pose.Target, pose.Position, slideview.WorldUp)
}

// Pose returns the Camera's current pose.
func (camera *Camera) Pose() slideview.CameraPose {
	return camera.pose
}

// Rotation returns the Camera's world rotation matrix.
func (camera *Camera) Rotation() slideview.Matrix4 {
	return camera.rotation
}

// ViewMatrix returns the Camera's view matrix.
func (camera *Camera) ViewMatrix() slideview.Matrix4 {

	camPos := camera.pose.Position.Invert()
	transform := slideview.NewMatrix4Translate(camPos.X, camPos.Y, camPos.Z)

	// We invert the rotation because the Camera is looking down -Z
	transform = transform.Mult(camera.rotation.Transposed())

	return transform

}

// Projection returns the Camera's perspective projection matrix.
func (camera *Camera) Projection() slideview.Matrix4 {

	if !camera.updateProjectionMatrix {
		return camera.cachedProjectionMatrix
	}

	camera.updateProjectionMatrix = false

	camera.cachedProjectionMatrix = slideview.NewProjectionPerspective(camera.fieldOfView, camera.near, camera.far, float64(camera.width), float64(camera.height))

	return camera.cachedProjectionMatrix

}

// SetFieldOfView sets the vertical field of the view of the camera in degrees.
func (camera *Camera) SetFieldOfView(fovY float64) {
	if camera.fieldOfView == fovY {
		return
	}
	camera.fieldOfView = fovY
	camera.updateProjectionMatrix = true
}

// FieldOfView returns the vertical field of view in degrees.
func (camera *Camera) FieldOfView() float64 {
	return camera.fieldOfView
}

// Near returns the near plane of a camera.
func (camera *Camera) Near() float64 {
	return camera.near
}

// Far returns the far plane of a camera.
func (camera *Camera) Far() float64 {
	return camera.far
}

// SetClipPlanes sets the near and far clipping planes.
func (camera *Camera) SetClipPlanes(near, far float64) {
	if camera.near == near && camera.far == far {
		return
	}
	camera.near = near
	camera.far = far
	camera.updateProjectionMatrix = true
}

// clipToScreen turns a projected vertex and its W component into pixel coordinates; Z holds the view depth.
func (camera *Camera) clipToScreen(vert slideview.Vector, w float64) slideview.Vector {

	width := float64(camera.width)
	height := float64(camera.height)

	return slideview.Vector{
		X: (vert.X/w*0.5 + 0.5) * width,
		Y: (1 - (vert.Y/w*0.5 + 0.5)) * height,
		Z: w,
	}

}

// WorldToScreenPixels transforms a 3D position in the world to a position onscreen, with X and Y representing the pixels.
// The Z coordinate indicates depth away from the camera in 3D world units; the boolean is false if the position is behind the near plane.
func (camera *Camera) WorldToScreenPixels(vert slideview.Vector) (slideview.Vector, bool) {
	v, w := camera.ViewMatrix().Mult(camera.Projection()).MultVecW(vert)
	if w < camera.near {
		return slideview.Vector{Z: w}, false
	}
	return camera.clipToScreen(v, w), true
}

// WorldToScreen transforms a 3D position in the world to a 2D vector, with X and Y ranging from -1 to 1 (and Y pointing up).
func (camera *Camera) WorldToScreen(vert slideview.Vector) (slideview.Vector, bool) {
	v, ok := camera.WorldToScreenPixels(vert)
	if !ok {
		return v, false
	}
	v.X = v.X/(float64(camera.width)/2) - 1
	v.Y = 1 - v.Y/(float64(camera.height)/2)
	return v, true
}

// ColorTexture returns the camera's color texture, creating it if necessary.
func (camera *Camera) ColorTexture() *ebiten.Image {
	if camera.resultColorTexture == nil {
		camera.resultColorTexture = ebiten.NewImageWithOptions(image.Rect(0, 0, camera.width, camera.height), &ebiten.NewImageOptions{
			Unmanaged: true,
		})
	}
	return camera.resultColorTexture
}

// Clear fills the camera's color texture with the color provided.
func (camera *Camera) Clear(clear slideview.Color) {
	camera.ColorTexture().Fill(clear.ToNRGBA64())
}
