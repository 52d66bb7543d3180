package ebitengine

import (
	"fmt"
	"image"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/wilhelmgfx/wilhelm"
)

// Screenshot queues a labeled capture of the next rendered frame. The PNG is
// written to the configured ScreenshotDir with a timestamped, numbered file
// name.
func (w *Window) Screenshot(label string) {
	w.screenshotQueue = append(w.screenshotQueue, label)
}

// flushScreenshots captures the rendered frame for every queued label.
// Called at the end of Draw.
func (w *Window) flushScreenshots(screen *ebiten.Image) {
	if len(w.screenshotQueue) == 0 {
		return
	}
	defer func() { w.screenshotQueue = w.screenshotQueue[:0] }()

	dir := w.cfg.ScreenshotDir
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		wilhelm.Logger().Warn("screenshot", slog.String("dir", dir), slog.Any("err", err))
		return
	}

	bounds := screen.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	pixels := make([]byte, 4*width*height)
	screen.ReadPixels(pixels)
	img := unpremultiply(pixels, width, height)

	stamp := time.Now().Format("20060102_150405")
	for _, label := range w.screenshotQueue {
		path := filepath.Join(dir, w.screenshotName(stamp, label))
		if err := writePNG(path, img); err != nil {
			wilhelm.Logger().Warn("screenshot", slog.Any("err", err))
			continue
		}
		wilhelm.Logger().Info("screenshot saved", slog.String("path", path))
	}
}

// screenshotName returns "<stamp>_<seq>_<label>.png". The sequence number
// grows per window so captures within the same second never collide.
func (w *Window) screenshotName(stamp, label string) string {
	w.screenshotSeq++
	return fmt.Sprintf("%s_%03d_%s.png", stamp, w.screenshotSeq, sanitizeLabel(label))
}

// unpremultiply converts premultiplied RGBA pixels to straight-alpha NRGBA.
func unpremultiply(pixels []byte, width, height int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for i := 0; i+3 < len(pixels) && i+3 < len(img.Pix); i += 4 {
		r, g, b, a := pixels[i], pixels[i+1], pixels[i+2], pixels[i+3]
		if a > 0 && a < 255 {
			r = uint8(min(int(r)*255/int(a), 255))
			g = uint8(min(int(g)*255/int(a), 255))
			b = uint8(min(int(b)*255/int(a), 255))
		}
		img.Pix[i] = r
		img.Pix[i+1] = g
		img.Pix[i+2] = b
		img.Pix[i+3] = a
	}
	return img
}

// writePNG encodes an image to a PNG file at the given path.
func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

// sanitizeLabel replaces characters that are unsafe in file names with
// underscores and falls back to "unlabeled" for empty strings.
func sanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	var b strings.Builder
	b.Grow(len(label))
	for _, r := range label {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9', r == '-', r == '.':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}
