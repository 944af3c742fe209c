package uik

import (
	"github.com/gogpu/uik/surface"
)

// SoftwareRenderer is the CPU rasterization backend. It draws into an
// image-backed surface and needs no GPU; it is the fallback when the
// wgpu backend is unavailable and the reference implementation for
// renderer semantics.
type SoftwareRenderer struct {
	state *rendererState
	opts  rendererOptions
}

// NewSoftwareRenderer creates a software renderer. Construction is
// cheap; the surface is allocated on Init.
func NewSoftwareRenderer(opts ...RendererOption) *SoftwareRenderer {
	o := defaultRendererOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &SoftwareRenderer{opts: o}
}

// Init initializes the renderer with the configured dimensions.
// A no-op if already initialized.
func (r *SoftwareRenderer) Init() error {
	return r.InitSize(r.opts.width, r.opts.height)
}

// InitSize initializes the renderer with explicit dimensions.
// A no-op if already initialized; on failure no state is installed.
func (r *SoftwareRenderer) InitSize(width, height int) error {
	if r.state != nil {
		return nil
	}
	if width <= 0 || height <= 0 {
		return InitError("invalid surface dimensions")
	}

	backend := r.opts.surfaceBackend
	if backend == "" {
		backend = surface.BackendImage
	}
	surf, err := surface.NewByName(backend, surface.Options{
		Width:  width,
		Height: height,
	})
	if err != nil {
		return InitError("surface creation failed: " + err.Error())
	}

	r.state = &rendererState{
		surface:    surf,
		transforms: NewTransformStack(),
		width:      width,
		height:     height,
	}

	Logger().Info("renderer: initialized",
		"backend", r.Name(),
		"width", width,
		"height", height)
	return nil
}

// Render draws the given node tree, initializing lazily with default
// dimensions if needed. A nil node is a no-op draw.
func (r *SoftwareRenderer) Render(node *Node, ctx *RenderContext) error {
	if r.state == nil {
		if err := r.InitSize(r.opts.width, r.opts.height); err != nil {
			return wrapRenderer(err)
		}
	}

	if node == nil {
		return nil
	}

	Logger().Debug("renderer: render",
		"backend", r.Name(),
		"nodes", node.Count())

	r.state.drawTestCircle()
	return nil
}

// Flush finalizes pending drawing operations. A no-op when the
// renderer is not initialized.
func (r *SoftwareRenderer) Flush() error {
	if r.state == nil {
		return nil
	}
	if err := r.state.surface.Flush(); err != nil {
		return wrapRenderer(err)
	}
	// Snapshot finalizes the surface contents for presentation.
	_ = r.state.surface.Snapshot()
	return nil
}

// Cleanup releases all resources. It always succeeds; afterwards the
// renderer behaves as freshly constructed.
func (r *SoftwareRenderer) Cleanup() error {
	if r.state != nil {
		r.state.close()
		r.state = nil
		Logger().Info("renderer: cleaned up", "backend", r.Name())
	}
	return nil
}

// Name returns the backend identifier.
func (r *SoftwareRenderer) Name() string {
	return RendererSoftware
}

// BeginFrame clears the surface to the configured background color.
func (r *SoftwareRenderer) BeginFrame() error {
	if r.state == nil {
		return nil
	}
	r.state.surface.Clear(r.opts.background.Color())
	return nil
}

// EndFrame finalizes the frame.
func (r *SoftwareRenderer) EndFrame() error {
	return r.Flush()
}

// DrawTestCircle draws the diagnostic circle: centered on the surface
// with a radius of a quarter of the smaller dimension. Returns an
// error if the renderer is not initialized.
func (r *SoftwareRenderer) DrawTestCircle() error {
	if r.state == nil {
		return GeneralError("renderer not initialized")
	}
	r.state.drawTestCircle()
	return nil
}

// DrawAnimatedCircle draws the time-animated circle. A no-op when the
// renderer is not initialized.
func (r *SoftwareRenderer) DrawAnimatedCircle(time float64) {
	if r.state == nil {
		return
	}
	r.state.drawAnimatedCircle(time)
}

// PushTransform composes t onto the current transform and pushes the
// result. A no-op when the renderer is not initialized.
func (r *SoftwareRenderer) PushTransform(t Mat4) {
	if r.state == nil {
		return
	}
	r.state.transforms.Push(t)
}

// PopTransform removes the top transform. The base identity transform
// is never popped.
func (r *SoftwareRenderer) PopTransform() {
	if r.state == nil {
		return
	}
	r.state.transforms.Pop()
}

// CurrentTransform returns the active composite transform, identity
// when the renderer is not initialized.
func (r *SoftwareRenderer) CurrentTransform() Mat4 {
	if r.state == nil {
		return IdentityTransform()
	}
	return r.state.transforms.Current()
}

// Surface returns the active surface, or nil when not initialized.
// Intended for tests and snapshot consumers.
func (r *SoftwareRenderer) Surface() surface.Surface {
	if r.state == nil {
		return nil
	}
	return r.state.surface
}

var (
	_ Renderer      = (*SoftwareRenderer)(nil)
	_ SizedRenderer = (*SoftwareRenderer)(nil)
	_ FrameRenderer = (*SoftwareRenderer)(nil)
)

func init() {
	RegisterRenderer(RendererSoftware, func(opts ...RendererOption) Renderer {
		return NewSoftwareRenderer(opts...)
	})
}
