package interfaces

import (
	"context"

	"github.com/NurM0hammad/FoxMind-AI/internal/model"
	"github.com/NurM0hammad/FoxMind-AI/internal/service"
)

// This file defines the interface for the core service. The API layer
// depends on it instead of the concrete implementation, which keeps the
// layers decoupled and makes handler tests a matter of mocking.

// ChatService defines the contract for chat orchestration and conversation
// management.
type ChatService interface {
	Configured() bool
	Respond(ctx context.Context, req *service.RespondRequest) (*service.RespondResult, error)
	RespondStream(ctx context.Context, req *service.RespondRequest, ch chan<- model.StreamEvent)
	Reset(ctx context.Context, conversationID string) error
	History(conversationID string) *service.History
	ListConversations() []model.ConversationSummary
	Export(conversationID string) (*model.Conversation, error)
	Delete(conversationID string) error
	Exists(conversationID string) bool
}
