package ui

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/user-none/vitalink/ui/storage"
)

// ScreenshotManager saves PNG captures of the display and surfaces the
// result as a notification.
type ScreenshotManager struct {
	notification *Notification
}

// NewScreenshotManager creates a screenshot manager
func NewScreenshotManager(notification *Notification) *ScreenshotManager {
	return &ScreenshotManager{notification: notification}
}

// TakeScreenshot writes the current frame to the screenshot directory.
// Called from Draw after everything has been rendered.
func (s *ScreenshotManager) TakeScreenshot(screen *ebiten.Image) error {
	dir, err := storage.GetScreenshotDir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create screenshot dir: %w", err)
	}

	bounds := screen.Bounds()
	img := image.NewRGBA(bounds)
	screen.ReadPixels(img.Pix)

	path := filepath.Join(dir, screenshotFilename(time.Now()))
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("failed to encode screenshot: %w", err)
	}

	if s.notification != nil {
		s.notification.ShowDefault(fmt.Sprintf("Saved %s", filepath.Base(path)))
	}
	return nil
}

// screenshotFilename builds a sortable, collision-resistant name.
func screenshotFilename(t time.Time) string {
	return fmt.Sprintf("vitalink-%s.png", t.Format("20060102-150405"))
}
