package uik

import (
	"errors"
	"sync"
	"time"
)

// ErrLoopClosed is returned by Send after the loop has shut down.
var ErrLoopClosed = errors.New("uik: render loop closed")

// defaultLoopBuffer is the message channel capacity. Senders block
// only when the renderer falls this far behind.
const defaultLoopBuffer = 64

// RenderLoop drives a Renderer from a dedicated goroutine. All
// renderer calls happen on that goroutine, so the renderer itself
// needs no synchronization. Messages are processed strictly in send
// order; MessageShutdown cleans up the renderer, closes the loop, and
// discards anything still queued behind it.
type RenderLoop struct {
	renderer Renderer
	msgs     chan RendererMessage
	done     chan struct{}

	frame uint64
	start time.Time

	startOnce sync.Once
	stopOnce  sync.Once
}

// NewRenderLoop creates a render loop for the given renderer. The loop
// does not run until Start is called.
func NewRenderLoop(r Renderer) *RenderLoop {
	return &RenderLoop{
		renderer: r,
		msgs:     make(chan RendererMessage, defaultLoopBuffer),
		done:     make(chan struct{}),
	}
}

// Start launches the loop goroutine. Subsequent calls are no-ops.
func (l *RenderLoop) Start() {
	l.startOnce.Do(func() {
		l.start = time.Now()
		go l.run()
	})
}

// Send queues a message for processing. It blocks when the queue is
// full and returns ErrLoopClosed once the loop has shut down.
func (l *RenderLoop) Send(msg RendererMessage) error {
	select {
	case <-l.done:
		return ErrLoopClosed
	default:
	}

	select {
	case l.msgs <- msg:
		return nil
	case <-l.done:
		return ErrLoopClosed
	}
}

// Done returns a channel that is closed when the loop has shut down.
func (l *RenderLoop) Done() <-chan struct{} {
	return l.done
}

// Shutdown sends a shutdown message and waits for the loop to finish.
// Safe to call multiple times and after the loop has already stopped.
// The loop must have been started, or Shutdown blocks forever.
func (l *RenderLoop) Shutdown() {
	_ = l.Send(ShutdownMessage())
	<-l.done
}

func (l *RenderLoop) run() {
	for msg := range l.msgs {
		if msg.Kind == MessageShutdown {
			if err := l.renderer.Cleanup(); err != nil {
				Logger().Warn("loop: cleanup failed", "error", err)
			}
			l.stopOnce.Do(func() { close(l.done) })
			return
		}
		l.handle(msg)
	}
}

func (l *RenderLoop) handle(msg RendererMessage) {
	var err error

	switch msg.Kind {
	case MessageInit:
		if sr, ok := l.renderer.(SizedRenderer); ok && msg.Width > 0 && msg.Height > 0 {
			err = sr.InitSize(msg.Width, msg.Height)
		} else {
			err = l.renderer.Init()
		}

	case MessageBeginFrame:
		if fr, ok := l.renderer.(FrameRenderer); ok {
			err = fr.BeginFrame()
		}

	case MessageEndFrame:
		l.frame++
		if fr, ok := l.renderer.(FrameRenderer); ok {
			err = fr.EndFrame()
		} else {
			err = l.renderer.Flush()
		}

	case MessageRender:
		ctx := &RenderContext{
			Frame: l.frame,
			Time:  time.Since(l.start).Seconds(),
		}
		err = l.renderer.Render(msg.Node, ctx)
	}

	if err != nil {
		Logger().Warn("loop: message failed",
			"kind", msg.Kind.String(),
			"error", err)
	}
}
