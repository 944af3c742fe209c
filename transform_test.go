package uik

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestTransformStackStartsAtIdentity(t *testing.T) {
	s := NewTransformStack()

	if got := s.Depth(); got != 1 {
		t.Fatalf("Depth() = %d, want 1", got)
	}
	if got := s.Current(); got != mgl32.Ident4() {
		t.Errorf("Current() = %v, want identity", got)
	}
}

func TestTransformStackZeroValue(t *testing.T) {
	var s TransformStack

	if got := s.Current(); got != mgl32.Ident4() {
		t.Errorf("Current() on zero value = %v, want identity", got)
	}

	// Pop on an empty stack must not panic.
	s.Pop()

	s.Push(mgl32.Translate3D(1, 2, 3))
	if got, want := s.Current(), mgl32.Translate3D(1, 2, 3); got != want {
		t.Errorf("Current() after push = %v, want %v", got, want)
	}
}

func TestTransformStackPushComposes(t *testing.T) {
	s := NewTransformStack()

	a := mgl32.Translate3D(10, 20, 0)
	b := mgl32.Scale3D(2, 2, 1)

	s.Push(a)
	s.Push(b)

	if got := s.Depth(); got != 3 {
		t.Fatalf("Depth() = %d, want 3", got)
	}

	// Pushing b under a yields a*b: scale applied in the translated space.
	want := a.Mul4(b)
	if got := s.Current(); got != want {
		t.Errorf("Current() = %v, want %v", got, want)
	}
}

func TestTransformStackPopRestores(t *testing.T) {
	s := NewTransformStack()

	a := mgl32.Translate3D(5, 0, 0)
	s.Push(a)
	s.Push(mgl32.Scale3D(3, 3, 1))
	s.Pop()

	if got := s.Current(); got != a {
		t.Errorf("Current() after pop = %v, want %v", got, a)
	}
}

func TestTransformStackPopAtBaseIsNoop(t *testing.T) {
	s := NewTransformStack()

	s.Pop()
	s.Pop()

	if got := s.Depth(); got != 1 {
		t.Errorf("Depth() after popping base = %d, want 1", got)
	}
	if got := s.Current(); got != mgl32.Ident4() {
		t.Errorf("Current() = %v, want identity", got)
	}
}

func TestTransformStackDeepNesting(t *testing.T) {
	s := NewTransformStack()

	const depth = 100
	step := mgl32.Translate3D(1, 0, 0)
	for i := 0; i < depth; i++ {
		s.Push(step)
	}

	if got := s.Depth(); got != depth+1 {
		t.Fatalf("Depth() = %d, want %d", got, depth+1)
	}

	// Composite of 100 unit translations is a translation by 100.
	want := mgl32.Translate3D(depth, 0, 0)
	if got := s.Current(); got != want {
		t.Errorf("Current() = %v, want %v", got, want)
	}

	for i := 0; i < depth; i++ {
		s.Pop()
	}
	if got := s.Current(); got != mgl32.Ident4() {
		t.Errorf("Current() after unwinding = %v, want identity", got)
	}
}
