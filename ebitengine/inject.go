package ebitengine

type injectedKind uint8

const (
	injectCursor injectedKind = iota
	injectScroll
)

// injectedEvent is a synthetic input event in screen coordinates. For
// scroll events x and y are the wheel offsets.
type injectedEvent struct {
	kind injectedKind
	x, y float64
}

// InjectCursor queues a cursor move to (x, y). Injected events are consumed
// one per tick, ahead of real input.
func (w *Window) InjectCursor(x, y float64) {
	w.injectQueue = append(w.injectQueue, injectedEvent{kind: injectCursor, x: x, y: y})
}

// InjectScroll queues a wheel event with the given offsets.
func (w *Window) InjectScroll(dx, dy float64) {
	w.injectQueue = append(w.injectQueue, injectedEvent{kind: injectScroll, x: dx, y: dy})
}

// InjectZoomAt is a convenience that moves the cursor to (x, y) and then
// scrolls by notches (positive zooms in). Consumes 1+|notches| ticks.
func (w *Window) InjectZoomAt(x, y float64, notches int) {
	w.InjectCursor(x, y)
	dy := 1.0
	if notches < 0 {
		dy = -1
		notches = -notches
	}
	for range notches {
		w.InjectScroll(0, dy)
	}
}

// pendingInjected reports how many injected events are still queued.
func (w *Window) pendingInjected() int {
	return len(w.injectQueue)
}

// processInjectedInput pops one injected event and fires the matching
// callback. Returns true if an event was consumed.
func (w *Window) processInjectedInput() bool {
	if len(w.injectQueue) == 0 {
		return false
	}
	evt := w.injectQueue[0]
	copy(w.injectQueue, w.injectQueue[1:])
	w.injectQueue = w.injectQueue[:len(w.injectQueue)-1]

	switch evt.kind {
	case injectCursor:
		w.moveCursor(evt.x, evt.y)
	case injectScroll:
		w.scroll(evt.x, evt.y)
	}
	return true
}
