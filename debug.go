package wilhelm

import (
	"log/slog"
	"time"
)

// frameStats holds per-frame timing and draw metrics.
// Only populated when App.debug is true.
type frameStats struct {
	clearTime    time.Duration
	callbackTime time.Duration
	renderTime   time.Duration
	shapeCount   int
	drawCalls    int
}

func (st frameStats) total() time.Duration {
	return st.clearTime + st.callbackTime + st.renderTime
}

// debugLog reports frame stats at debug level.
func (a *App) debugLog(st frameStats) {
	if !a.debug {
		return
	}
	Logger().Debug("frame",
		slog.Uint64("frame", a.frame),
		slog.Duration("clear", st.clearTime),
		slog.Duration("callback", st.callbackTime),
		slog.Duration("render", st.renderTime),
		slog.Duration("total", st.total()),
		slog.Int("shapes", st.shapeCount),
		slog.Int("draw_calls", st.drawCalls),
	)
}

// countDrawCalls counts the shapes that will reach a renderer primitive.
func countDrawCalls(shapes []ShapeRenderable) int {
	n := 0
	for i := range shapes {
		if shapes[i].kind != nil {
			n++
		}
	}
	return n
}
