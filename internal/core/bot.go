package core

import "context"

// MessageType mirrors the wire message types of the chat platform.
type MessageType int

const (
	MessageTypeText      MessageType = 1
	MessageTypeKMarkdown MessageType = 9
	MessageTypeCard      MessageType = 10
)

// Sender is the single outbound primitive this system needs from a transport.
type Sender interface {
	SendMessage(ctx context.Context, channelID, content string, opts ...SendOption) error
}

type SendOptions struct {
	Quote string // message id to quote-reply to
	Type  MessageType
}

type SendOption func(*SendOptions)

// WithQuote makes the outgoing message a quote-reply to msgID.
func WithQuote(msgID string) SendOption {
	return func(o *SendOptions) { o.Quote = msgID }
}

// AsCard marks the content as a serialized card payload.
func AsCard() SendOption {
	return func(o *SendOptions) { o.Type = MessageTypeCard }
}

func BuildSendOptions(opts ...SendOption) SendOptions {
	o := SendOptions{Type: MessageTypeKMarkdown}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// HandlerFunc is one stage of the inbound message pipeline.
type HandlerFunc func(ctx context.Context, bot Sender, s *Session) error

// Middleware wraps a pipeline stage. A stage that fully handles a message
// simply does not call next.
type Middleware func(next HandlerFunc) HandlerFunc
