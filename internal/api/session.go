package api

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"
)

const (
	sessionName            = "foxmind_session"
	sessionKeyConversation = "conversation_id"
)

// SessionManager binds a browser's signed session cookie to a conversation
// id. The binding is ephemeral: created on first contact, replaceable on
// conversation switch or delete.
type SessionManager struct {
	store *sessions.CookieStore
}

// NewSessionManager creates a manager whose cookies are signed with secret.
func NewSessionManager(secret []byte) *SessionManager {
	store := sessions.NewCookieStore(secret)
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 30,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	return &SessionManager{store: store}
}

// ConversationID returns the conversation bound to the request's session.
func (m *SessionManager) ConversationID(r *http.Request) (string, bool) {
	// A decode error (tampered or stale cookie) yields a fresh session.
	sess, _ := m.store.Get(r, sessionName)
	id, ok := sess.Values[sessionKeyConversation].(string)
	return id, ok && id != ""
}

// Ensure returns the bound conversation id, minting and persisting a fresh
// opaque one when the session has none.
func (m *SessionManager) Ensure(w http.ResponseWriter, r *http.Request) string {
	sess, _ := m.store.Get(r, sessionName)
	if id, ok := sess.Values[sessionKeyConversation].(string); ok && id != "" {
		return id
	}
	id := uuid.NewString()
	sess.Values[sessionKeyConversation] = id
	if err := sess.Save(r, w); err != nil {
		slog.Warn("Failed to save session cookie", "error", err)
	}
	slog.Info("New session created", "conversation", id)
	return id
}

// Bind points the request's session at a conversation id.
func (m *SessionManager) Bind(w http.ResponseWriter, r *http.Request, id string) error {
	sess, _ := m.store.Get(r, sessionName)
	sess.Values[sessionKeyConversation] = id
	return sess.Save(r, w)
}
