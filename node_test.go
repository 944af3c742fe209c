package uik

import "testing"

func TestNodeCount(t *testing.T) {
	tests := []struct {
		name string
		node *Node
		want int
	}{
		{"nil node", nil, 0},
		{"leaf", NewNode("label"), 1},
		{"one child", NewNode("card", NewNode("label")), 2},
		{
			"tree",
			NewNode("root",
				NewNode("card", NewNode("label"), NewNode("button")),
				NewNode("image"),
			),
			5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.node.Count(); got != tt.want {
				t.Errorf("Count() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestNodeChildren(t *testing.T) {
	a := NewNode("a")
	b := NewNode("b")
	n := NewNode("root", a, b)

	if got := n.Kind(); got != "root" {
		t.Errorf("Kind() = %q, want %q", got, "root")
	}
	if got := n.ChildCount(); got != 2 {
		t.Fatalf("ChildCount() = %d, want 2", got)
	}
	if n.Child(0) != a || n.Child(1) != b {
		t.Error("Child() returned wrong nodes")
	}
	if n.Child(-1) != nil || n.Child(2) != nil {
		t.Error("Child() out of range should return nil")
	}
}

func TestNewNodeCopiesChildren(t *testing.T) {
	children := []*Node{NewNode("a"), NewNode("b")}
	n := NewNode("root", children...)

	children[0] = NewNode("mutated")
	if got := n.Child(0).Kind(); got != "a" {
		t.Errorf("Child(0).Kind() = %q after caller mutation, want %q", got, "a")
	}
}
