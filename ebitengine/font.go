package ebitengine

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/wilhelmgfx/wilhelm"
)

// fontCache holds one parsed face source per font path. Faces are cheap
// wrappers over a source and are created per draw size.
type fontCache struct {
	sources  map[string]*text.GoTextFaceSource
	fallback *text.GoTextFaceSource
	load     func(path string) ([]byte, error)
}

func newFontCache() *fontCache {
	return &fontCache{
		sources: make(map[string]*text.GoTextFaceSource),
		load:    os.ReadFile,
	}
}

// face returns a face for path at size. A path that cannot be read or parsed
// falls back to Go Regular; the failure is logged once per path.
func (fc *fontCache) face(path string, size float64) *text.GoTextFace {
	return &text.GoTextFace{Source: fc.source(path), Size: size}
}

func (fc *fontCache) source(path string) *text.GoTextFaceSource {
	if src, ok := fc.sources[path]; ok {
		return src
	}
	src, err := fc.parse(path)
	if err != nil {
		wilhelm.Logger().Warn("font fallback", slog.String("path", path), slog.Any("err", err))
		src = fc.fallbackSource()
	}
	fc.sources[path] = src
	return src
}

func (fc *fontCache) parse(path string) (*text.GoTextFaceSource, error) {
	if path == "" {
		return nil, fmt.Errorf("no font path")
	}
	data, err := fc.load(path)
	if err != nil {
		return nil, err
	}
	src, err := text.NewGoTextFaceSource(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return src, nil
}

func (fc *fontCache) fallbackSource() *text.GoTextFaceSource {
	if fc.fallback == nil {
		src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
		if err != nil {
			// goregular.TTF is embedded and known good.
			panic(fmt.Sprintf("ebitengine: parse fallback font: %v", err))
		}
		fc.fallback = src
	}
	return fc.fallback
}
