// Package uik is the rendering core of the uik UI framework.
//
// It owns the renderer lifecycle: the graphics context, the drawable
// surface, the transform stack, and the message protocol that drives
// frames across a thread boundary. Widget and layout code produces an
// immutable [Node] tree; a [Renderer] turns that tree into pixels on a
// drawable surface. The framework never touches the graphics context
// directly.
//
// Two renderer backends are built in:
//
//   - [WGPURenderer]: GPU-accelerated rendering via gogpu/wgpu
//   - [SoftwareRenderer]: CPU rasterization, always available
//
// Renderers are selected through the registry:
//
//	r := uik.NewRenderer()            // best available backend
//	r := uik.NewRendererByName("software")
//
// A renderer is NOT safe for concurrent use. To drive it from multiple
// goroutines, hand it to a [RenderLoop] and communicate through
// [RendererMessage] values; the loop goroutine is then the only owner
// of the renderer and its GPU resources.
package uik

// Version is the uik library version.
// Informational only; no compatibility contract is attached to it.
const Version = "0.1.0"
