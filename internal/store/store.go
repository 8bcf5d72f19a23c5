package store

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	app_errors "github.com/NurM0hammad/FoxMind-AI/internal/errors"
	"github.com/NurM0hammad/FoxMind-AI/internal/model"
)

// Store keeps all conversations in memory, mirrored to one JSON file per
// conversation on disk. The in-memory map stays authoritative for the life
// of the process: disk failures are logged, never surfaced.
//
// The RWMutex guards the map and every record field: all mutations go
// through Append/SetSettings/Clear under the write lock, so List and
// Snapshot can read any record under the read lock. Ordering of mutations
// on a single conversation across concurrent requests is the orchestrator's
// job (it holds a per-conversation lock for the whole exchange).
type Store struct {
	dir           string
	mu            sync.RWMutex
	conversations map[string]*model.Conversation
}

// New creates a store rooted at dir. The directory is created if missing.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("could not create conversations directory: %w", err)
	}
	return &Store{
		dir:           dir,
		conversations: make(map[string]*model.Conversation),
	}, nil
}

// LoadAll scans the persistence directory and deserializes every valid
// record into memory. A record that fails to parse is logged and skipped;
// it never aborts startup.
func (s *Store) LoadAll() error {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return fmt.Errorf("could not read conversations directory: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		path := filepath.Join(s.dir, entry.Name())
		data, err := os.ReadFile(path) // #nosec G304 -- path is confined to the store directory
		if err != nil {
			slog.Error("Failed to read conversation file, skipping.", "file", entry.Name(), "error", err)
			continue
		}
		var conv model.Conversation
		if err := json.Unmarshal(data, &conv); err != nil {
			slog.Error("Failed to parse conversation file, skipping.", "file", entry.Name(), "error", err)
			continue
		}
		id := strings.TrimSuffix(entry.Name(), ".json")
		if conv.ID == "" {
			conv.ID = id
		}
		s.conversations[id] = &conv
		slog.Info("Loaded conversation", "id", id, "messages", len(conv.Messages))
	}
	return nil
}

// Get returns the conversation for id, if present.
func (s *Store) Get(id string) (*model.Conversation, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	conv, ok := s.conversations[id]
	return conv, ok
}

// GetOrCreate returns the existing conversation for id, or constructs a new
// one with the given defaults and an empty message list. It reports whether
// the record was created, so the caller can eagerly open an upstream session.
func (s *Store) GetOrCreate(id, modelName, personality string) (*model.Conversation, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if conv, ok := s.conversations[id]; ok {
		return conv, false
	}
	now := time.Now()
	conv := &model.Conversation{
		ID:          id,
		CreatedAt:   now,
		UpdatedAt:   now,
		Model:       modelName,
		Personality: personality,
		Messages:    []model.Message{},
	}
	s.conversations[id] = conv
	return conv, true
}

// Append records one message on a conversation and moves its UpdatedAt to
// the message timestamp. Unknown ids are ignored.
func (s *Store) Append(id string, msg model.Message) {
	s.mu.Lock()
	defer s.mu.Unlock()
	conv, ok := s.conversations[id]
	if !ok {
		return
	}
	conv.Messages = append(conv.Messages, msg)
	conv.UpdatedAt = msg.Timestamp
}

// SetSettings points a conversation at a model and personality.
func (s *Store) SetSettings(id, modelName, personality string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if conv, ok := s.conversations[id]; ok {
		conv.Model = modelName
		conv.Personality = personality
	}
}

// Clear drops all messages of a conversation, keeping its identity,
// creation time and settings.
func (s *Store) Clear(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if conv, ok := s.conversations[id]; ok {
		conv.Messages = []model.Message{}
		conv.UpdatedAt = time.Now()
	}
}

// Snapshot returns a copy of the record, with its own message slice, safe
// to read while exchanges on the same conversation continue.
func (s *Store) Snapshot(id string) (*model.Conversation, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	conv, ok := s.conversations[id]
	if !ok {
		return nil, false
	}
	out := *conv
	out.Messages = make([]model.Message, len(conv.Messages))
	copy(out.Messages, conv.Messages)
	return &out, true
}

// Save serializes the full record to its file, overwriting in place. The
// transient upstream session handle is not part of the record and is never
// written. Failure is logged and returned; callers treat it as non-fatal.
func (s *Store) Save(id string) error {
	s.mu.RLock()
	conv, ok := s.conversations[id]
	if !ok {
		s.mu.RUnlock()
		return fmt.Errorf("%w: conversation %s", app_errors.ErrNotFound, id)
	}
	data, err := json.MarshalIndent(conv, "", "  ")
	s.mu.RUnlock()
	if err != nil {
		slog.Error("Failed to serialize conversation", "id", id, "error", err)
		return err
	}
	if err := os.WriteFile(s.path(id), data, 0600); err != nil {
		slog.Error("Failed to save conversation", "id", id, "error", err)
		return err
	}
	slog.Debug("Saved conversation", "id", id)
	return nil
}

// Delete removes the conversation from memory and from disk.
func (s *Store) Delete(id string) error {
	s.mu.Lock()
	_, ok := s.conversations[id]
	if ok {
		delete(s.conversations, id)
	}
	s.mu.Unlock()
	if !ok {
		return fmt.Errorf("%w: conversation %s", app_errors.ErrNotFound, id)
	}

	if err := os.Remove(s.path(id)); err != nil && !os.IsNotExist(err) {
		// The in-memory removal already happened; disk cleanup is best-effort.
		slog.Error("Failed to delete conversation file", "id", id, "error", err)
	} else {
		slog.Info("Deleted conversation", "id", id)
	}
	return nil
}

// List returns summaries of all conversations, sorted by updated_at
// descending.
func (s *Store) List() []model.ConversationSummary {
	s.mu.RLock()
	defer s.mu.RUnlock()

	summaries := make([]model.ConversationSummary, 0, len(s.conversations))
	for id, conv := range s.conversations {
		summaries = append(summaries, model.ConversationSummary{
			ID:           id,
			CreatedAt:    conv.CreatedAt,
			UpdatedAt:    conv.UpdatedAt,
			MessageCount: len(conv.Messages),
			Preview:      preview(conv.Messages),
			Model:        conv.Model,
			Personality:  conv.Personality,
		})
	}
	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].UpdatedAt.After(summaries[j].UpdatedAt)
	})
	return summaries
}

func (s *Store) path(id string) string {
	return filepath.Join(s.dir, id+".json")
}

// preview returns the first 50 runes of the first message.
func preview(messages []model.Message) string {
	if len(messages) == 0 {
		return "Empty conversation"
	}
	runes := []rune(messages[0].Content)
	if len(runes) > 50 {
		runes = runes[:50]
	}
	return string(runes)
}
