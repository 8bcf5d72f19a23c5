package api

import (
	"embed"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/NurM0hammad/FoxMind-AI/internal/model"
	"github.com/NurM0hammad/FoxMind-AI/internal/service"
)

//go:embed templates/index.html
var templateFS embed.FS

var indexTemplate = template.Must(template.ParseFS(templateFS, "templates/index.html"))

type indexData struct {
	Models        map[string]model.Descriptor
	ModelNames    []string
	Personalities []string
	Configured    bool
}

// Home serves the chat UI, injecting the model catalog, the personality
// list and the configured flag. A session is created on first visit.
func (h *ChatHandler) Home(w http.ResponseWriter, r *http.Request) {
	h.sessions.Ensure(w, r)

	data := indexData{
		Models:        h.catalog.Descriptors(),
		ModelNames:    h.catalog.Names(),
		Personalities: service.Personalities(),
		Configured:    h.service.Configured(),
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := indexTemplate.Execute(w, data); err != nil {
		slog.Error("Failed to render index template", "error", err)
	}
}
