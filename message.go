package uik

import "fmt"

// MessageKind identifies a renderer message.
type MessageKind uint8

const (
	// MessageInit requests renderer initialization with explicit
	// dimensions.
	MessageInit MessageKind = iota

	// MessageBeginFrame marks the start of a frame.
	MessageBeginFrame

	// MessageEndFrame marks the end of a frame.
	MessageEndFrame

	// MessageRender requests a draw of a node tree.
	MessageRender

	// MessageShutdown requests cleanup and loop termination. It is
	// terminal: the loop processes no messages after it.
	MessageShutdown
)

// String returns a human-readable message kind name.
func (k MessageKind) String() string {
	switch k {
	case MessageInit:
		return "init"
	case MessageBeginFrame:
		return "begin-frame"
	case MessageEndFrame:
		return "end-frame"
	case MessageRender:
		return "render"
	case MessageShutdown:
		return "shutdown"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(k))
	}
}

// RendererMessage is a command sent to a RenderLoop. Messages are
// processed strictly in the order they were sent.
type RendererMessage struct {
	// Kind identifies the command.
	Kind MessageKind

	// Width and Height carry dimensions for MessageInit.
	Width  int
	Height int

	// Node is the tree to draw for MessageRender.
	Node *Node
}

// InitMessage creates an init message with explicit dimensions.
func InitMessage(width, height int) RendererMessage {
	return RendererMessage{Kind: MessageInit, Width: width, Height: height}
}

// BeginFrameMessage creates a begin-frame message.
func BeginFrameMessage() RendererMessage {
	return RendererMessage{Kind: MessageBeginFrame}
}

// EndFrameMessage creates an end-frame message.
func EndFrameMessage() RendererMessage {
	return RendererMessage{Kind: MessageEndFrame}
}

// RenderMessage creates a render message for the given node tree.
func RenderMessage(node *Node) RendererMessage {
	return RendererMessage{Kind: MessageRender, Node: node}
}

// ShutdownMessage creates a shutdown message.
func ShutdownMessage() RendererMessage {
	return RendererMessage{Kind: MessageShutdown}
}
