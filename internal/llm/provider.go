package llm

import (
	"context"

	"github.com/NurM0hammad/FoxMind-AI/internal/model"
)

// SessionConfig carries the settings an upstream chat session is opened with.
// Decoding parameters other than temperature are fixed (see gemini.go).
type SessionConfig struct {
	Model             string
	SystemInstruction string
	Temperature       float64
}

// Reply is the materialized result of a non-streaming completion.
type Reply struct {
	Text  string
	Usage model.Usage
}

// StreamChunk is one item produced by a streaming completion. Text chunks
// arrive first; the stream ends with either a Done chunk or an Error chunk.
type StreamChunk struct {
	Text  string
	Done  bool
	Error string
}

// Provider defines the interface for the upstream model capability.
type Provider interface {
	// Configured reports whether an API credential is available.
	Configured() bool
	// ListModels queries the upstream catalog of generation-capable models.
	ListModels(ctx context.Context) ([]model.Descriptor, error)
	// StartSession opens a stateful chat session seeded with the given
	// history. The returned session carries upstream conversation context
	// across messages.
	StartSession(ctx context.Context, cfg SessionConfig, history []model.Message) (Session, error)
}

// Session is a live upstream chat session.
type Session interface {
	Send(ctx context.Context, text string) (*Reply, error)
	// SendStream writes chunks to ch as they arrive and closes ch when the
	// stream ends, whether by completion, error or context cancellation.
	SendStream(ctx context.Context, text string, ch chan<- StreamChunk)
	// SetTemperature overrides the sampling temperature for subsequent sends.
	SetTemperature(t float64)
}
