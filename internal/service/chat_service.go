package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/NurM0hammad/FoxMind-AI/internal/catalog"
	app_errors "github.com/NurM0hammad/FoxMind-AI/internal/errors"
	"github.com/NurM0hammad/FoxMind-AI/internal/llm"
	"github.com/NurM0hammad/FoxMind-AI/internal/model"
	"github.com/NurM0hammad/FoxMind-AI/internal/store"
)

// DefaultTemperature is used when the caller does not override sampling.
const DefaultTemperature = 0.7

// sessionState is the lifecycle of one conversation's upstream session.
type sessionState int

const (
	sessionUninitialized sessionState = iota
	sessionActive
	sessionInvalid
)

// convState is the transient per-conversation runtime state: the upstream
// session handle, its lifecycle state, and the lock serializing exchanges
// on one conversation id.
type convState struct {
	mu      sync.Mutex
	state   sessionState
	session llm.Session
}

// ChatService orchestrates a chat exchange: it resolves the conversation,
// keeps the upstream session alive, records both sides of the exchange and
// persists the transcript.
type ChatService struct {
	store    *store.Store
	provider llm.Provider
	catalog  *catalog.Catalog

	mu     sync.Mutex
	states map[string]*convState
}

// RespondRequest carries one user message plus its generation parameters.
// A nil Temperature means the caller did not override sampling; an explicit
// zero is honored as-is.
type RespondRequest struct {
	Message        string
	ConversationID string
	Model          string
	Personality    string
	Temperature    *float64
}

// RespondResult is the materialized outcome of a non-streaming exchange.
type RespondResult struct {
	Response string      `json:"response"`
	Usage    model.Usage `json:"usage"`
	Model    string      `json:"model"`
	Status   string      `json:"status"`
}

// History is the view of a conversation's transcript returned to the client.
type History struct {
	Messages    []model.Message `json:"history"`
	Model       string          `json:"model"`
	Personality string          `json:"personality"`
}

func NewChatService(st *store.Store, provider llm.Provider, cat *catalog.Catalog) *ChatService {
	return &ChatService{
		store:    st,
		provider: provider,
		catalog:  cat,
		states:   make(map[string]*convState),
	}
}

// Configured reports whether the upstream credential is available.
func (s *ChatService) Configured() bool {
	return s.provider.Configured()
}

// Respond handles a non-streaming exchange. The user message is appended
// before the upstream call and kept even when that call fails; the
// assistant message is appended only on success.
func (s *ChatService) Respond(ctx context.Context, req *RespondRequest) (*RespondResult, error) {
	message := strings.TrimSpace(req.Message)
	if message == "" {
		return nil, fmt.Errorf("%w: empty message", app_errors.ErrInvalidInput)
	}
	if !s.provider.Configured() {
		return nil, app_errors.ErrUnconfigured
	}

	modelName := s.resolveModel(req.Model)
	personality := ValidPersonality(req.Personality)

	st := s.state(req.ConversationID)
	st.mu.Lock()
	defer st.mu.Unlock()

	conv, _ := s.store.GetOrCreate(req.ConversationID, modelName, personality)
	s.rebind(st, conv, modelName, personality)
	sess, err := s.ensureSession(ctx, st, conv, req.Temperature)
	if err != nil {
		return nil, err
	}

	s.appendMessage(conv, model.RoleUser, message)

	reply, err := sess.Send(ctx, message)
	if err != nil {
		// No rollback: the user message stays recorded as an audit trail.
		slog.Error("Upstream call failed", "conversation", conv.ID, "error", err)
		return nil, fmt.Errorf("%w: %v", app_errors.ErrUpstream, err)
	}

	s.appendMessage(conv, model.RoleAssistant, reply.Text)
	if err := s.store.Save(conv.ID); err != nil {
		slog.Warn("Conversation not persisted, in-memory state remains authoritative.", "conversation", conv.ID)
	}

	return &RespondResult{
		Response: reply.Text,
		Usage:    reply.Usage,
		Model:    modelName,
		Status:   "success",
	}, nil
}

// RespondStream handles a streaming exchange. It forwards one chunk event
// per upstream fragment, then a single done event carrying the accumulated
// text. The assistant message is appended and persisted only on the
// completion path; a mid-stream failure or client disconnect discards the
// partial text. The channel is closed when the stream ends.
func (s *ChatService) RespondStream(ctx context.Context, req *RespondRequest, ch chan<- model.StreamEvent) {
	defer close(ch)

	message := strings.TrimSpace(req.Message)
	if message == "" {
		s.emit(ctx, ch, model.StreamEvent{Error: "Empty message"})
		return
	}
	if !s.provider.Configured() {
		s.emit(ctx, ch, model.StreamEvent{Error: app_errors.ErrUnconfigured.Error()})
		return
	}

	modelName := s.resolveModel(req.Model)
	personality := ValidPersonality(req.Personality)

	st := s.state(req.ConversationID)
	st.mu.Lock()
	defer st.mu.Unlock()

	conv, _ := s.store.GetOrCreate(req.ConversationID, modelName, personality)
	s.rebind(st, conv, modelName, personality)
	sess, err := s.ensureSession(ctx, st, conv, req.Temperature)
	if err != nil {
		s.emit(ctx, ch, model.StreamEvent{Error: err.Error()})
		return
	}

	s.appendMessage(conv, model.RoleUser, message)

	chunks := make(chan llm.StreamChunk)
	go sess.SendStream(ctx, message, chunks)

	var full strings.Builder
	for chunk := range chunks {
		if ctx.Err() != nil {
			slog.Info("Client disconnected mid-stream, discarding partial reply.", "conversation", conv.ID)
			return
		}
		switch {
		case chunk.Error != "":
			slog.Error("Upstream stream failed", "conversation", conv.ID, "error", chunk.Error)
			s.emit(ctx, ch, model.StreamEvent{Error: chunk.Error})
			return
		case chunk.Done:
			text := full.String()
			s.appendMessage(conv, model.RoleAssistant, text)
			if err := s.store.Save(conv.ID); err != nil {
				slog.Warn("Conversation not persisted, in-memory state remains authoritative.", "conversation", conv.ID)
			}
			s.emit(ctx, ch, model.StreamEvent{Done: true, FullResponse: &text})
			return
		default:
			full.WriteString(chunk.Text)
			s.emit(ctx, ch, model.StreamEvent{Chunk: chunk.Text})
		}
	}
}

// Reset clears a conversation's messages, drops its upstream session and
// immediately attempts to open a fresh one. Id, creation time, model and
// personality are preserved.
func (s *ChatService) Reset(ctx context.Context, conversationID string) error {
	st := s.state(conversationID)
	st.mu.Lock()
	defer st.mu.Unlock()

	conv, ok := s.store.Get(conversationID)
	if !ok {
		return fmt.Errorf("%w: conversation %s", app_errors.ErrNotFound, conversationID)
	}

	s.store.Clear(conversationID)
	st.state = sessionUninitialized
	st.session = nil

	if s.provider.Configured() {
		if _, err := s.ensureSession(ctx, st, conv, nil); err != nil {
			slog.Warn("Failed to reopen upstream session after reset", "conversation", conversationID, "error", err)
		}
	}

	if err := s.store.Save(conversationID); err != nil {
		slog.Warn("Conversation not persisted after reset.", "conversation", conversationID)
	}
	return nil
}

// History returns the transcript view for a conversation, or empty defaults
// when the conversation does not exist. The view is a snapshot, detached
// from any exchange still in flight.
func (s *ChatService) History(conversationID string) *History {
	conv, ok := s.store.Snapshot(conversationID)
	if !ok {
		return &History{
			Messages:    []model.Message{},
			Model:       s.resolveModel(""),
			Personality: DefaultPersonality,
		}
	}
	return &History{
		Messages:    conv.Messages,
		Model:       conv.Model,
		Personality: conv.Personality,
	}
}

// ListConversations returns summaries sorted by updated_at descending.
func (s *ChatService) ListConversations() []model.ConversationSummary {
	return s.store.List()
}

// Export returns a snapshot of the full conversation record.
func (s *ChatService) Export(conversationID string) (*model.Conversation, error) {
	conv, ok := s.store.Snapshot(conversationID)
	if !ok {
		return nil, fmt.Errorf("%w: conversation %s", app_errors.ErrNotFound, conversationID)
	}
	return conv, nil
}

// Delete removes a conversation from the store and drops its runtime state.
func (s *ChatService) Delete(conversationID string) error {
	if err := s.store.Delete(conversationID); err != nil {
		return err
	}
	s.mu.Lock()
	delete(s.states, conversationID)
	s.mu.Unlock()
	return nil
}

// Exists reports whether a conversation id is known.
func (s *ChatService) Exists(conversationID string) bool {
	_, ok := s.store.Get(conversationID)
	return ok
}

// state returns the runtime state entry for a conversation id, creating it
// on first use.
func (s *ChatService) state(conversationID string) *convState {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, ok := s.states[conversationID]
	if !ok {
		st = &convState{}
		s.states[conversationID] = st
	}
	return st
}

// rebind applies a model or personality switch to the conversation and
// invalidates the session so the next use recreates it with the new
// settings and a replay of the existing history. Callers hold st.mu.
func (s *ChatService) rebind(st *convState, conv *model.Conversation, modelName, personality string) {
	if conv.Model == modelName && conv.Personality == personality {
		return
	}
	s.store.SetSettings(conv.ID, modelName, personality)
	if st.state == sessionActive {
		st.state = sessionInvalid
		st.session = nil
	}
}

// ensureSession returns the conversation's active upstream session, lazily
// (re)creating it with a replay of the stored history when it is
// uninitialized or invalid. Callers hold st.mu.
func (s *ChatService) ensureSession(ctx context.Context, st *convState, conv *model.Conversation, temperature *float64) (llm.Session, error) {
	temp := DefaultTemperature
	if temperature != nil {
		temp = *temperature
	}
	if st.state == sessionActive && st.session != nil {
		st.session.SetTemperature(temp)
		return st.session, nil
	}

	sess, err := s.provider.StartSession(ctx, llm.SessionConfig{
		Model:             conv.Model,
		SystemInstruction: SystemPrompt(conv.Personality),
		Temperature:       temp,
	}, conv.Messages)
	if err != nil {
		st.state = sessionInvalid
		st.session = nil
		return nil, fmt.Errorf("%w: failed to initialize upstream session: %v", app_errors.ErrUpstream, err)
	}

	st.state = sessionActive
	st.session = sess
	slog.Info("Opened upstream session", "conversation", conv.ID, "model", conv.Model, "history", len(conv.Messages))
	return sess, nil
}

func (s *ChatService) appendMessage(conv *model.Conversation, role, content string) {
	s.store.Append(conv.ID, model.Message{
		Role:      role,
		Content:   content,
		Timestamp: time.Now(),
	})
}

// resolveModel substitutes the catalog default for an empty model name.
func (s *ChatService) resolveModel(name string) string {
	if name != "" {
		return name
	}
	if def := s.catalog.Default(); def != "" {
		return def
	}
	return "unknown"
}

// emit forwards a stream event unless the consumer is gone.
func (s *ChatService) emit(ctx context.Context, ch chan<- model.StreamEvent, ev model.StreamEvent) {
	select {
	case ch <- ev:
	case <-ctx.Done():
	}
}
