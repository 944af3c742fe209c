package uik

import "github.com/go-gl/mathgl/mgl32"

// Mat4 is the 4x4 transform matrix type used throughout the renderer,
// an alias for mgl32.Mat4 so callers can use mathgl constructors
// directly.
type Mat4 = mgl32.Mat4

// IdentityTransform returns the identity transform.
func IdentityTransform() Mat4 {
	return mgl32.Ident4()
}

// TransformStack is a stack of 4x4 transform matrices representing
// nested coordinate spaces during a render pass.
//
// Once seeded (by a renderer's initialization or the first Push), the
// stack never shrinks below one element: the base identity frame cannot
// be popped. Depth is unbounded and caller-controlled; every Push must
// be matched by a later Pop for correct nesting — the stack does not
// auto-balance.
//
// The zero value is usable: Current returns identity and Pop is a no-op
// until something is pushed.
type TransformStack struct {
	stack []mgl32.Mat4
}

// NewTransformStack creates a transform stack seeded with the identity
// transform.
func NewTransformStack() *TransformStack {
	return &TransformStack{stack: []mgl32.Mat4{mgl32.Ident4()}}
}

// Push composes t onto the current transform and pushes the result.
// The current top-of-stack is the target space; t is applied in that
// space (pre-multiplication). If the stack is empty, the current
// transform is treated as identity.
func (s *TransformStack) Push(t mgl32.Mat4) {
	current := s.Current()
	s.stack = append(s.stack, current.Mul4(t))
}

// Pop removes the top of the stack. The base frame is never removed:
// Pop at depth 1 (or on an empty stack) is a no-op.
func (s *TransformStack) Pop() {
	if len(s.stack) > 1 {
		s.stack = s.stack[:len(s.stack)-1]
	}
}

// Current returns the top of the stack, or identity if the stack has
// never been initialized.
func (s *TransformStack) Current() mgl32.Mat4 {
	if len(s.stack) == 0 {
		return mgl32.Ident4()
	}
	return s.stack[len(s.stack)-1]
}

// Depth returns the number of transforms on the stack.
func (s *TransformStack) Depth() int {
	return len(s.stack)
}
