package uik

import (
	"errors"

	"github.com/gogpu/uik/internal/gpu"
	"github.com/gogpu/uik/surface"
)

// WGPURenderer is the GPU-accelerated backend. It owns a wgpu context
// (instance, adapter, device, queue) and a texture-backed surface.
//
// Initialization is strictly ordered; a failure at any step tears down
// what was already acquired and surfaces a classified error, so no
// partially-constructed state is ever observable.
type WGPURenderer struct {
	state *rendererState
	opts  rendererOptions
}

// NewWGPURenderer creates a wgpu renderer. Construction is cheap; GPU
// resources are allocated on Init.
func NewWGPURenderer(opts ...RendererOption) *WGPURenderer {
	o := defaultRendererOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &WGPURenderer{opts: o}
}

// Init initializes the renderer with the configured dimensions.
// A no-op if already initialized.
func (r *WGPURenderer) Init() error {
	return r.InitSize(r.opts.width, r.opts.height)
}

// InitSize initializes the renderer with explicit dimensions.
// A no-op if already initialized; on failure no state is installed.
func (r *WGPURenderer) InitSize(width, height int) error {
	if r.state != nil {
		return nil
	}
	if width <= 0 || height <= 0 {
		return InitError("invalid surface dimensions")
	}

	state, err := r.initState(width, height)
	if err != nil {
		return err
	}
	r.state = state

	Logger().Info("renderer: initialized",
		"backend", r.Name(),
		"width", width,
		"height", height)
	return nil
}

// initState runs the ordered GPU setup: context (instance, adapter,
// device, queue), then the texture-backed surface. GPU sentinel errors
// are classified onto the renderer error taxonomy.
func (r *WGPURenderer) initState(width, height int) (*rendererState, error) {
	ctx, err := gpu.NewContext()
	if err != nil {
		return nil, classifyGPUError(err)
	}

	backend := r.opts.surfaceBackend
	if backend == "" {
		backend = gpu.BackendWGPU
	}
	surf, err := surface.NewByName(backend, surface.Options{
		Width:  width,
		Height: height,
	})
	if err != nil {
		ctx.Close()
		return nil, classifyGPUError(err)
	}

	return &rendererState{
		ctx:        ctx,
		surface:    surf,
		transforms: NewTransformStack(),
		width:      width,
		height:     height,
	}, nil
}

// classifyGPUError maps gpu package sentinels onto the renderer error
// taxonomy. Interface failures are binding errors; context and surface
// failures are graphics API errors; anything else is general.
func classifyGPUError(err error) *RendererError {
	switch {
	case errors.Is(err, gpu.ErrInterfaceCreation):
		return BindingError(err.Error())
	case errors.Is(err, gpu.ErrContextCreation),
		errors.Is(err, gpu.ErrSurfaceCreation):
		return GraphicsAPIError(err.Error())
	default:
		return WrapError(err)
	}
}

// Render draws the given node tree, initializing lazily with default
// dimensions if needed. A nil node is a no-op draw.
func (r *WGPURenderer) Render(node *Node, ctx *RenderContext) error {
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

// Flush finalizes pending drawing operations, uploading surface
// contents to the GPU texture. A no-op when not initialized.
func (r *WGPURenderer) Flush() error {
	if r.state == nil {
		return nil
	}
	if err := r.state.surface.Flush(); err != nil {
		return wrapRenderer(err)
	}
	_ = r.state.surface.Snapshot()
	return nil
}

// Cleanup releases the surface and GPU context. It always succeeds;
// afterwards the renderer behaves as freshly constructed.
func (r *WGPURenderer) Cleanup() error {
	if r.state != nil {
		r.state.close()
		r.state = nil
		Logger().Info("renderer: cleaned up", "backend", r.Name())
	}
	return nil
}

// Name returns the backend identifier.
func (r *WGPURenderer) Name() string {
	return RendererWGPU
}

// BeginFrame clears the surface to the configured background color.
func (r *WGPURenderer) BeginFrame() error {
	if r.state == nil {
		return nil
	}
	r.state.surface.Clear(r.opts.background.Color())
	return nil
}

// EndFrame finalizes the frame.
func (r *WGPURenderer) EndFrame() error {
	return r.Flush()
}

// DrawTestCircle draws the diagnostic circle. Returns an error if the
// renderer is not initialized.
func (r *WGPURenderer) DrawTestCircle() error {
	if r.state == nil {
		return GeneralError("renderer not initialized")
	}
	r.state.drawTestCircle()
	return nil
}

// DrawAnimatedCircle draws the time-animated circle. A no-op when the
// renderer is not initialized.
func (r *WGPURenderer) DrawAnimatedCircle(time float64) {
	if r.state == nil {
		return
	}
	r.state.drawAnimatedCircle(time)
}

// PushTransform composes t onto the current transform and pushes the
// result. A no-op when the renderer is not initialized.
func (r *WGPURenderer) PushTransform(t Mat4) {
	if r.state == nil {
		return
	}
	r.state.transforms.Push(t)
}

// PopTransform removes the top transform. The base identity transform
// is never popped.
func (r *WGPURenderer) PopTransform() {
	if r.state == nil {
		return
	}
	r.state.transforms.Pop()
}

// CurrentTransform returns the active composite transform, identity
// when the renderer is not initialized.
func (r *WGPURenderer) CurrentTransform() Mat4 {
	if r.state == nil {
		return IdentityTransform()
	}
	return r.state.transforms.Current()
}

// GPUInfo returns information about the GPU in use, or nil when the
// renderer is not initialized.
func (r *WGPURenderer) GPUInfo() *gpu.GPUInfo {
	if r.state == nil || r.state.ctx == nil {
		return nil
	}
	return r.state.ctx.Info()
}

var (
	_ Renderer      = (*WGPURenderer)(nil)
	_ SizedRenderer = (*WGPURenderer)(nil)
	_ FrameRenderer = (*WGPURenderer)(nil)
)

func init() {
	RegisterRenderer(RendererWGPU, func(opts ...RendererOption) Renderer {
		return NewWGPURenderer(opts...)
	})
}
