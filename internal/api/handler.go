package api

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/NurM0hammad/FoxMind-AI/internal/catalog"
	app_errors "github.com/NurM0hammad/FoxMind-AI/internal/errors"
	"github.com/NurM0hammad/FoxMind-AI/internal/interfaces"
	"github.com/NurM0hammad/FoxMind-AI/internal/model"
	"github.com/NurM0hammad/FoxMind-AI/internal/service"
)

// ChatHandler handles all HTTP requests of the chat surface.
type ChatHandler struct {
	service  interfaces.ChatService
	catalog  *catalog.Catalog
	sessions *SessionManager
}

func NewChatHandler(svc interfaces.ChatService, cat *catalog.Catalog, sessions *SessionManager) *ChatHandler {
	return &ChatHandler{service: svc, catalog: cat, sessions: sessions}
}

// ChatRequest is the body of /api/chat and /api/chat/stream.
type ChatRequest struct {
	Message     string   `json:"message" validate:"required"`
	Model       string   `json:"model"`
	Personality string   `json:"personality"`
	Temperature *float64 `json:"temperature" validate:"omitempty,gte=0,lte=2"`
	Stream      bool     `json:"stream"`
}

// StatusView is the body of /api/status.
type StatusView struct {
	APIConfigured          bool     `json:"api_configured"`
	ModelsAvailable        []string `json:"models_available"`
	PersonalitiesAvailable []string `json:"personalities_available"`
	ActiveSession          bool     `json:"active_session"`
}

// ConversationsView is the body of /api/conversations.
type ConversationsView struct {
	Conversations []model.ConversationSummary `json:"conversations"`
}

// respondRequest resolves the DTO into a service request bound to the
// session's conversation. Temperature passes through as a pointer so the
// orchestrator can tell an omitted value from an explicit zero.
func (h *ChatHandler) respondRequest(w http.ResponseWriter, r *http.Request, req *ChatRequest) *service.RespondRequest {
	return &service.RespondRequest{
		Message:        req.Message,
		ConversationID: h.sessions.Ensure(w, r),
		Model:          req.Model,
		Personality:    req.Personality,
		Temperature:    req.Temperature,
	}
}

// decodeChatRequest parses and validates a chat body, writing the error
// response itself on failure.
func (h *ChatHandler) decodeChatRequest(w http.ResponseWriter, r *http.Request) (*ChatRequest, bool) {
	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, fmt.Errorf("%w: invalid request payload", app_errors.ErrInvalidInput))
		return nil, false
	}
	if err := validateRequest(&req); err != nil {
		respondWithError(w, err)
		return nil, false
	}
	if strings.TrimSpace(req.Message) == "" {
		respondWithError(w, fmt.Errorf("%w: empty message", app_errors.ErrInvalidInput))
		return nil, false
	}
	if !h.service.Configured() {
		respondWithError(w, app_errors.ErrUnconfigured)
		return nil, false
	}
	return &req, true
}

// HandleChat godoc
// @Summary      Send a chat message
// @Description  Forwards a message to the upstream model and records the exchange. With "stream": true the response is served as a server-sent event stream instead.
// @Tags         Chat
// @Accept       json
// @Produce      json
// @Param        chatRequest  body      ChatRequest  true  "Message and generation parameters"
// @Success      200          {object}  service.RespondResult
// @Failure      400          {object}  ErrorResponse "Empty message"
// @Failure      503          {object}  ErrorResponse "API key not configured"
// @Failure      500          {object}  ErrorResponse "Upstream failure"
// @Router       /api/chat [post]
func (h *ChatHandler) HandleChat(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeChatRequest(w, r)
	if !ok {
		return
	}

	rr := h.respondRequest(w, r, req)
	if req.Stream {
		h.stream(w, r, rr)
		return
	}

	result, err := h.service.Respond(r.Context(), rr)
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, result)
}

// HandleChatStream godoc
// @Summary      Send a chat message, streaming the reply
// @Description  Emits "data:" framed JSON events: {"chunk": text} per fragment, one {"done": true, "full_response": text} on completion, or {"error": text} on failure.
// @Tags         Chat
// @Accept       json
// @Produce      text/event-stream
// @Param        chatRequest  body      ChatRequest  true  "Message and generation parameters"
// @Success      200          {object}  model.StreamEvent "Event stream"
// @Failure      400          {object}  ErrorResponse
// @Failure      503          {object}  ErrorResponse
// @Router       /api/chat/stream [post]
func (h *ChatHandler) HandleChatStream(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeChatRequest(w, r)
	if !ok {
		return
	}
	h.stream(w, r, h.respondRequest(w, r, req))
}

// stream bridges the orchestrator's event channel onto the SSE transport.
// It forwards events as they arrive and stops on client disconnect.
func (h *ChatHandler) stream(w http.ResponseWriter, r *http.Request, rr *service.RespondRequest) {
	streamHeaders(w)

	events := make(chan model.StreamEvent)
	go h.service.RespondStream(r.Context(), rr, events)

	for ev := range events {
		if r.Context().Err() != nil {
			slog.Info("Client disconnected.", "conversation", rr.ConversationID)
			break
		}
		if err := writeStreamEvent(w, ev); err != nil {
			slog.Warn("Could not write to stream, client likely disconnected.", "error", err)
			break
		}
	}

	slog.Info("Finished streaming response.", "conversation", rr.ConversationID)
}

// HandleReset godoc
// @Summary      Reset the active conversation
// @Tags         Conversations
// @Produce      json
// @Success      200  {object}  StatusResponse
// @Failure      404  {object}  ErrorResponse "No active conversation"
// @Router       /api/reset [post]
func (h *ChatHandler) HandleReset(w http.ResponseWriter, r *http.Request) {
	id, ok := h.sessions.ConversationID(r)
	if !ok {
		respondWithError(w, fmt.Errorf("%w: no active conversation", app_errors.ErrNotFound))
		return
	}
	if err := h.service.Reset(r.Context(), id); err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, StatusResponse{Status: "success"})
}

// HandleHistory godoc
// @Summary      Get the active conversation's transcript
// @Tags         Conversations
// @Produce      json
// @Success      200  {object}  service.History
// @Router       /api/history [get]
func (h *ChatHandler) HandleHistory(w http.ResponseWriter, r *http.Request) {
	id, _ := h.sessions.ConversationID(r)
	respondWithJSON(w, http.StatusOK, h.service.History(id))
}

// HandleListConversations godoc
// @Summary      List all conversations
// @Description  Summaries sorted by last update, most recent first.
// @Tags         Conversations
// @Produce      json
// @Success      200  {object}  ConversationsView
// @Router       /api/conversations [get]
func (h *ChatHandler) HandleListConversations(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, ConversationsView{Conversations: h.service.ListConversations()})
}

// HandleLoadConversation godoc
// @Summary      Switch the active session to an existing conversation
// @Tags         Conversations
// @Produce      json
// @Param        conversationID  path      string  true  "Conversation id"
// @Success      200             {object}  StatusResponse
// @Failure      404             {object}  ErrorResponse
// @Router       /api/load/{conversationID} [post]
func (h *ChatHandler) HandleLoadConversation(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "conversationID")
	if !h.service.Exists(id) {
		respondWithError(w, fmt.Errorf("%w: conversation %s", app_errors.ErrNotFound, id))
		return
	}
	if err := h.sessions.Bind(w, r, id); err != nil {
		slog.Error("Failed to rebind session", "conversation", id, "error", err)
		respondWithError(w, app_errors.ErrInternal)
		return
	}
	respondWithJSON(w, http.StatusOK, StatusResponse{Status: "success"})
}

// HandleDeleteConversation godoc
// @Summary      Delete a conversation
// @Description  Removes the conversation from memory and disk. A session bound to it is rebound to a fresh id.
// @Tags         Conversations
// @Produce      json
// @Param        conversationID  path      string  true  "Conversation id"
// @Success      200             {object}  StatusResponse
// @Failure      404             {object}  ErrorResponse
// @Router       /api/delete/{conversationID} [delete]
func (h *ChatHandler) HandleDeleteConversation(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "conversationID")
	if err := h.service.Delete(id); err != nil {
		respondWithError(w, err)
		return
	}
	if current, ok := h.sessions.ConversationID(r); ok && current == id {
		if err := h.sessions.Bind(w, r, uuid.NewString()); err != nil {
			slog.Warn("Failed to rebind session after delete", "error", err)
		}
	}
	respondWithJSON(w, http.StatusOK, StatusResponse{Status: "success"})
}

// HandleModels returns the model catalog.
func (h *ChatHandler) HandleModels(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, h.catalog.Descriptors())
}

// HandlePersonalities returns the available personality presets.
func (h *ChatHandler) HandlePersonalities(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, service.Personalities())
}

// HandleStatus godoc
// @Summary      API status
// @Tags         Status
// @Produce      json
// @Success      200  {object}  StatusView
// @Router       /api/status [get]
func (h *ChatHandler) HandleStatus(w http.ResponseWriter, r *http.Request) {
	models := []string{}
	if h.service.Configured() {
		models = h.catalog.Names()
	}
	_, active := h.sessions.ConversationID(r)
	respondWithJSON(w, http.StatusOK, StatusView{
		APIConfigured:          h.service.Configured(),
		ModelsAvailable:        models,
		PersonalitiesAvailable: service.Personalities(),
		ActiveSession:          active,
	})
}

// HandleExport godoc
// @Summary      Export the active conversation as JSON
// @Tags         Conversations
// @Produce      json
// @Success      200  {object}  model.Conversation
// @Failure      404  {object}  ErrorResponse
// @Router       /api/export [get]
func (h *ChatHandler) HandleExport(w http.ResponseWriter, r *http.Request) {
	id, ok := h.sessions.ConversationID(r)
	if !ok {
		respondWithError(w, fmt.Errorf("%w: no conversation found", app_errors.ErrNotFound))
		return
	}
	conv, err := h.service.Export(id)
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, conv)
}
