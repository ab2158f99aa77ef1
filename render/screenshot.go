package render

import (
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/HugoSmits86/nativewebp"
	"github.com/hajimehoshi/ebiten/v2"
)

// Snapshot copies the pixels of an ebiten Image into an image.RGBA. It has to be called while the game is running (i.e. from Draw()).
func Snapshot(img *ebiten.Image) *image.RGBA {
	bounds := img.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	img.ReadPixels(out.Pix)
	return out
}

// EncodeWebP writes the image given to w as a lossless WebP.
func EncodeWebP(w io.Writer, img image.Image) error {
	if err := nativewebp.Encode(w, img, nil); err != nil {
		return fmt.Errorf("render: encode webp: %w", err)
	}
	return nil
}

// ScreenshotName returns a timestamped screenshot file name inside dir.
func ScreenshotName(dir string, now time.Time) string {
	return filepath.Join(dir, "screenshot_"+now.Format("20060102_150405")+".webp")
}

// SaveScreenshot writes the ebiten Image given to path as a WebP file.
func SaveScreenshot(img *ebiten.Image, path string) error {

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("render: create screenshot: %w", err)
	}

	if err := EncodeWebP(f, Snapshot(img)); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()

}
