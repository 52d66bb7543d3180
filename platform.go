package wilhelm

// Window is the platform window the App drives. Construction (title, size,
// clear color) is backend specific; see the ebitengine package.
type Window interface {
	// Clear fills the frame buffer with the clear color chosen at
	// construction.
	Clear()
	ShouldClose() bool
	SwapBuffers()
	// PollEvents processes pending platform events, synchronously invoking
	// registered input callbacks.
	PollEvents()
	OnScroll(fn func(dx, dy float64))
	OnCursorPosition(fn func(x, y float64))
	Size() (width, height int)
}

// FrameDriver is implemented by windows whose platform owns the main loop
// (Ebitengine calls back into the program instead of being polled).
//
// RunFrames must call frame exactly once per displayed frame, present the
// result, and process input events (the equivalent of PollEvents) between
// consecutive frames. It returns once the window requested close.
type FrameDriver interface {
	RunFrames(frame func()) error
}

// Renderer draws shapes into the window it was created for. There is one
// draw primitive per ShapeKind variant.
type Renderer interface {
	// Time returns monotonic seconds since the renderer was created.
	Time() float64
	SetPointSize(size float64)
	WindowSize() (width, height int)

	DrawCircle(pos Vec2, c Circle, style ShapeStyle)
	DrawRectangle(pos Vec2, r Rectangle, style ShapeStyle)
	DrawTriangle(pos Vec2, t Triangle, style ShapeStyle)
	DrawText(pos Vec2, t Text, style ShapeStyle)
}
