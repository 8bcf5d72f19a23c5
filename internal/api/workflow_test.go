package api_test

import (
	"bufio"
	"encoding/json"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/NurM0hammad/FoxMind-AI/internal/api"
	"github.com/NurM0hammad/FoxMind-AI/internal/catalog"
	"github.com/NurM0hammad/FoxMind-AI/internal/llm"
	llmmocks "github.com/NurM0hammad/FoxMind-AI/internal/llm/mocks"
	"github.com/NurM0hammad/FoxMind-AI/internal/model"
	"github.com/NurM0hammad/FoxMind-AI/internal/service"
	"github.com/NurM0hammad/FoxMind-AI/internal/store"
)

// TestFullChatWorkflow drives the real router, orchestrator and store
// through a complete conversation lifecycle over HTTP. Only the upstream
// provider is mocked.
func TestFullChatWorkflow(t *testing.T) {
	provider := llmmocks.NewMockProvider(t)
	session := llmmocks.NewMockSession(t)

	provider.On("Configured").Return(true)
	provider.On("StartSession", mock.Anything, mock.Anything, mock.Anything).Return(session, nil)
	session.On("Send", mock.Anything, "What is 2+2?").Return(&llm.Reply{
		Text:  "4",
		Usage: model.Usage{PromptTokens: 5, CompletionTokens: 1, TotalTokens: 6},
	}, nil).Once()
	session.On("SetTemperature", service.DefaultTemperature).Once()
	session.On("SendStream", mock.Anything, "And 3+3?", mock.Anything).Run(func(args mock.Arguments) {
		ch := args.Get(2).(chan<- llm.StreamChunk)
		ch <- llm.StreamChunk{Text: "It is "}
		ch <- llm.StreamChunk{Text: "6"}
		ch <- llm.StreamChunk{Done: true}
		close(ch)
	}).Once()

	st, err := store.New(t.TempDir())
	require.NoError(t, err)
	svc := service.NewChatService(st, provider, catalog.Fallback())
	sessions := api.NewSessionManager([]byte("0123456789abcdef0123456789abcdef"))
	handler := api.NewChatHandler(svc, catalog.Fallback(), sessions)

	server := httptest.NewServer(api.NewRouter(handler))
	defer server.Close()

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	client := &http.Client{Jar: jar}

	var conversationID string

	t.Run("SendFirstMessage", func(t *testing.T) {
		resp, err := client.Post(server.URL+"/api/chat", "application/json",
			strings.NewReader(`{"message":"What is 2+2?"}`))
		require.NoError(t, err)
		defer resp.Body.Close()

		require.Equal(t, http.StatusOK, resp.StatusCode)

		var result service.RespondResult
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
		assert.Equal(t, "4", result.Response)
		assert.Equal(t, 6, result.Usage.TotalTokens)
	})

	t.Run("HistoryHasBothSides", func(t *testing.T) {
		resp, err := client.Get(server.URL + "/api/history")
		require.NoError(t, err)
		defer resp.Body.Close()

		var h service.History
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&h))
		require.Len(t, h.Messages, 2)
		assert.Equal(t, model.RoleUser, h.Messages[0].Role)
		assert.Equal(t, "4", h.Messages[1].Content)
	})

	t.Run("StreamSecondMessage", func(t *testing.T) {
		resp, err := client.Post(server.URL+"/api/chat/stream", "application/json",
			strings.NewReader(`{"message":"And 3+3?"}`))
		require.NoError(t, err)
		defer resp.Body.Close()

		require.Equal(t, http.StatusOK, resp.StatusCode)
		require.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

		var foundDone bool
		scanner := bufio.NewScanner(resp.Body)
		for scanner.Scan() {
			line := scanner.Text()
			if strings.HasPrefix(line, "data:") && strings.Contains(line, `"done":true`) {
				assert.Contains(t, line, `"full_response":"It is 6"`)
				foundDone = true
				break
			}
		}
		require.NoError(t, scanner.Err())
		require.True(t, foundDone, "stream finished without a done event")
	})

	t.Run("ListConversations", func(t *testing.T) {
		resp, err := client.Get(server.URL + "/api/conversations")
		require.NoError(t, err)
		defer resp.Body.Close()

		var view api.ConversationsView
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&view))
		require.Len(t, view.Conversations, 1)
		assert.Equal(t, 4, view.Conversations[0].MessageCount)
		assert.Equal(t, "What is 2+2?", view.Conversations[0].Preview)
		conversationID = view.Conversations[0].ID
	})

	t.Run("ExportConversation", func(t *testing.T) {
		resp, err := client.Get(server.URL + "/api/export")
		require.NoError(t, err)
		defer resp.Body.Close()

		var conv model.Conversation
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&conv))
		assert.Equal(t, conversationID, conv.ID)
		assert.Len(t, conv.Messages, 4)
	})

	t.Run("ResetConversation", func(t *testing.T) {
		resp, err := client.Post(server.URL+"/api/reset", "application/json", nil)
		require.NoError(t, err)
		resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		histResp, err := client.Get(server.URL + "/api/history")
		require.NoError(t, err)
		defer histResp.Body.Close()

		var h service.History
		require.NoError(t, json.NewDecoder(histResp.Body).Decode(&h))
		assert.Empty(t, h.Messages)
	})

	t.Run("DeleteConversation", func(t *testing.T) {
		require.NotEmpty(t, conversationID)

		req, err := http.NewRequest(http.MethodDelete, server.URL+"/api/delete/"+conversationID, nil)
		require.NoError(t, err)
		resp, err := client.Do(req)
		require.NoError(t, err)
		resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		listResp, err := client.Get(server.URL + "/api/conversations")
		require.NoError(t, err)
		defer listResp.Body.Close()

		var view api.ConversationsView
		require.NoError(t, json.NewDecoder(listResp.Body).Decode(&view))
		assert.Empty(t, view.Conversations)
	})
}
