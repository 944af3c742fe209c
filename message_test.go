package uik

import "testing"

func TestMessageKindString(t *testing.T) {
	tests := []struct {
		kind MessageKind
		want string
	}{
		{MessageInit, "init"},
		{MessageBeginFrame, "begin-frame"},
		{MessageEndFrame, "end-frame"},
		{MessageRender, "render"},
		{MessageShutdown, "shutdown"},
		{MessageKind(99), "unknown(99)"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("MessageKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestMessageConstructors(t *testing.T) {
	if m := InitMessage(800, 600); m.Kind != MessageInit || m.Width != 800 || m.Height != 600 {
		t.Errorf("InitMessage = %+v", m)
	}

	node := NewNode("root")
	if m := RenderMessage(node); m.Kind != MessageRender || m.Node != node {
		t.Errorf("RenderMessage = %+v", m)
	}

	if m := BeginFrameMessage(); m.Kind != MessageBeginFrame {
		t.Errorf("BeginFrameMessage kind = %v", m.Kind)
	}
	if m := EndFrameMessage(); m.Kind != MessageEndFrame {
		t.Errorf("EndFrameMessage kind = %v", m.Kind)
	}
	if m := ShutdownMessage(); m.Kind != MessageShutdown {
		t.Errorf("ShutdownMessage kind = %v", m.Kind)
	}
}
