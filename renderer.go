package uik

import (
	"errors"
	"sync"
)

// Default surface dimensions used when a renderer is initialized
// without explicit dimensions (including lazy initialization from
// Render).
const (
	DefaultWidth  = 800
	DefaultHeight = 600
)

// ErrRendererNotAvailable is returned when no renderer backend is available.
var ErrRendererNotAvailable = errors.New("uik: no renderer available")

// Renderer is the capability contract every rendering backend
// implements. It is the polymorphism boundary between the framework
// and concrete GPU backends: the framework holds "some implementation
// of Renderer", selected at construction time, and never touches the
// graphics context directly.
//
// Renderers are NOT safe for concurrent use. Drive a renderer from a
// single goroutine, or hand it to a [RenderLoop].
type Renderer interface {
	// Init allocates the graphics context and drawable surface using
	// default dimensions. Calling Init on an already-initialized
	// renderer is a no-op, not an error. On failure the renderer's
	// state remains absent; no partially-constructed state is ever
	// observable.
	Init() error

	// Render draws the given node tree into the current surface.
	// If the renderer is not yet initialized it initializes itself
	// lazily with default dimensions. A nil node is a no-op draw,
	// never a panic.
	Render(node *Node, ctx *RenderContext) error

	// Flush finalizes any pending drawing operations on the active
	// surface so subsequent presentation is consistent. Flushing an
	// uninitialized renderer is a no-op, not an error.
	Flush() error

	// Cleanup releases all GPU-side resources by discarding the
	// renderer state. It always succeeds; afterwards the renderer
	// behaves as freshly constructed.
	Cleanup() error

	// Name returns the stable backend identifier, used for
	// diagnostics and logging only.
	Name() string
}

// SizedRenderer is an optional interface for renderers that can be
// initialized with explicit dimensions. The render loop uses it to
// honor Init messages carrying a width and height.
type SizedRenderer interface {
	Renderer

	// InitSize initializes the renderer with the given dimensions.
	// Like Init, it is a no-op if the renderer is already initialized.
	InitSize(width, height int) error
}

// FrameRenderer is an optional interface for renderers with explicit
// frame delimiters. BeginFrame prepares the surface for a new frame
// (clearing it to the background color); EndFrame finalizes it.
// The render loop falls back to Flush for EndFrame when a renderer
// does not implement this interface.
type FrameRenderer interface {
	Renderer

	// BeginFrame prepares the surface for a new frame.
	BeginFrame() error

	// EndFrame finalizes the frame.
	EndFrame() error
}

// Built-in renderer backend names.
const (
	// RendererWGPU is the GPU-accelerated backend.
	RendererWGPU = "wgpu"

	// RendererSoftware is the CPU rasterization backend.
	RendererSoftware = "software"
)

// RendererFactory creates a new renderer instance.
type RendererFactory func(opts ...RendererOption) Renderer

var (
	rendererMu sync.RWMutex
	renderers  = make(map[string]RendererFactory)
	// Priority order for backend selection (first registered wins).
	rendererPriority = []string{RendererWGPU, RendererSoftware}
)

// RegisterRenderer registers a renderer factory with the given name.
// This is typically called from init functions in backend files.
// Registering a name that already exists replaces the previous entry.
func RegisterRenderer(name string, factory RendererFactory) {
	rendererMu.Lock()
	defer rendererMu.Unlock()
	renderers[name] = factory
}

// AvailableRenderers returns the names of all registered backends.
func AvailableRenderers() []string {
	rendererMu.RLock()
	defer rendererMu.RUnlock()

	names := make([]string, 0, len(renderers))
	for name := range renderers {
		names = append(names, name)
	}
	return names
}

// NewRenderer creates a renderer using the best available backend
// (wgpu preferred, software as fallback). Returns nil if no backend
// is registered. Construction is cheap; GPU resources are allocated
// on Init.
func NewRenderer(opts ...RendererOption) Renderer {
	rendererMu.RLock()
	defer rendererMu.RUnlock()

	for _, name := range rendererPriority {
		if factory, ok := renderers[name]; ok {
			if r := factory(opts...); r != nil {
				return r
			}
		}
	}
	for _, factory := range renderers {
		if r := factory(opts...); r != nil {
			return r
		}
	}
	return nil
}

// NewRendererByName creates a renderer using a specific named backend.
// Returns nil if the backend is not registered.
func NewRendererByName(name string, opts ...RendererOption) Renderer {
	rendererMu.RLock()
	factory, ok := renderers[name]
	rendererMu.RUnlock()

	if !ok {
		return nil
	}
	return factory(opts...)
}

// RendererOption configures a renderer during creation.
type RendererOption func(*rendererOptions)

// rendererOptions holds optional configuration for renderer creation.
type rendererOptions struct {
	width, height  int
	background     RGBA
	surfaceBackend string
}

// defaultRendererOptions returns the default renderer options.
func defaultRendererOptions() rendererOptions {
	return rendererOptions{
		width:      DefaultWidth,
		height:     DefaultHeight,
		background: White,
	}
}

// WithSize sets the surface dimensions used by Init.
// Render's lazy initialization also uses these dimensions.
func WithSize(width, height int) RendererOption {
	return func(o *rendererOptions) {
		o.width = width
		o.height = height
	}
}

// WithBackground sets the background color frames are cleared to.
func WithBackground(c RGBA) RendererOption {
	return func(o *rendererOptions) {
		o.background = c
	}
}

// WithSurfaceBackend pins the surface backend by name instead of
// letting the surface registry pick the best available one.
func WithSurfaceBackend(name string) RendererOption {
	return func(o *rendererOptions) {
		o.surfaceBackend = name
	}
}
