package catalog

import (
	"context"
	"log/slog"

	"github.com/NurM0hammad/FoxMind-AI/internal/llm"
	"github.com/NurM0hammad/FoxMind-AI/internal/model"
)

// Catalog is the read-only registry of available upstream models. It is
// populated once at startup and never mutated afterwards. Iteration order is
// insertion order, which makes Default deterministic.
type Catalog struct {
	names  []string
	models map[string]model.Descriptor
}

// Build queries the provider's model listing and, on any failure or an
// unconfigured provider, substitutes the fixed fallback table. The fallback
// names are placeholders that track the upstream offering, not a
// guaranteed-valid default.
func Build(ctx context.Context, provider llm.Provider) *Catalog {
	if !provider.Configured() {
		slog.Warn("No API credential configured, using fallback model catalog.")
		return Fallback()
	}

	descriptors, err := provider.ListModels(ctx)
	if err != nil {
		slog.Error("Failed to list upstream models, using fallback catalog.", "error", err)
		return Fallback()
	}
	if len(descriptors) == 0 {
		slog.Warn("Upstream model listing was empty, using fallback catalog.")
		return Fallback()
	}

	c := newCatalog(descriptors)
	slog.Info("Built model catalog from upstream listing", "models", c.names)
	return c
}

// Fallback returns the hardcoded default catalog.
func Fallback() *Catalog {
	return newCatalog([]model.Descriptor{
		{
			Name:              "gemini-1.5-pro",
			Description:       "Best for complex reasoning, coding, and analysis",
			ContextWindow:     1000000,
			SupportsStreaming: true,
			SupportsVision:    true,
		},
		{
			Name:              "gemini-1.5-flash",
			Description:       "Fast, efficient, good for everyday conversations",
			ContextWindow:     1000000,
			SupportsStreaming: true,
			SupportsVision:    true,
		},
		{
			Name:              "gemini-pro",
			Description:       "Legacy pro model",
			ContextWindow:     30000,
			SupportsStreaming: true,
			SupportsVision:    false,
		},
	})
}

func newCatalog(descriptors []model.Descriptor) *Catalog {
	c := &Catalog{models: make(map[string]model.Descriptor, len(descriptors))}
	for _, d := range descriptors {
		if _, ok := c.models[d.Name]; ok {
			continue
		}
		c.names = append(c.names, d.Name)
		c.models[d.Name] = d
	}
	return c
}

// Get returns the descriptor for name.
func (c *Catalog) Get(name string) (model.Descriptor, bool) {
	d, ok := c.models[name]
	return d, ok
}

// Default returns the first model of the catalog.
func (c *Catalog) Default() string {
	if len(c.names) == 0 {
		return ""
	}
	return c.names[0]
}

// Names returns the model names in catalog order.
func (c *Catalog) Names() []string {
	out := make([]string, len(c.names))
	copy(out, c.names)
	return out
}

// Descriptors returns all descriptors keyed by name.
func (c *Catalog) Descriptors() map[string]model.Descriptor {
	out := make(map[string]model.Descriptor, len(c.models))
	for k, v := range c.models {
		out[k] = v
	}
	return out
}

// Len reports the number of models in the catalog.
func (c *Catalog) Len() int {
	return len(c.names)
}
