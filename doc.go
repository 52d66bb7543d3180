// Package wilhelm is a minimal 2D scene-rendering engine.
//
// An [App] owns a [Window], a [Renderer] and an ordered set of
// [ShapeRenderable] values. Every frame it clears the window, calls the
// pre-render callback so the program can move its shapes, draws the shapes in
// insertion order, presents the frame and processes input.
//
// The window and renderer are a contract, not an implementation. The
// ebitengine subpackage provides both on top of [Ebitengine]:
//
//	win, err := ebitengine.NewWindow(wilhelm.DefaultWindowConfig())
//	if err != nil {
//		log.Fatal(err)
//	}
//	r, err := ebitengine.NewRenderer(win)
//	if err != nil {
//		log.Fatal(err)
//	}
//	app, _ := wilhelm.NewApp(win, r)
//	app.AddShapes(shapes)
//	app.OnPreRender(func(shapes []wilhelm.ShapeRenderable, r wilhelm.Renderer) {
//		// move shapes
//	})
//	if err := app.Run(); err != nil {
//		log.Fatal(err)
//	}
//
// # Shapes
//
// [ShapeKind] is a closed set: [Circle], [Rectangle], [Triangle] and [Text].
// Each shape carries a [ShapeStyle] with optional fill and stroke. Only the
// position of a [ShapeRenderable] changes after construction.
//
// # Cameras and maps
//
// [Camera2D] maps world coordinates to screen pixels and supports
// zoom-toward-cursor via [Camera2D.ZoomAt]. [WGS84ToMercator] projects
// longitude/latitude into a planar world space for map-like scenes.
// [CameraController] bundles a camera with the cursor tracking, zoom limits
// and animations an interactive program needs, and is shared explicitly
// between input handlers and the pre-render callback.
//
// [Ebitengine]: https://ebitengine.org
package wilhelm
