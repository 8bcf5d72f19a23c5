package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/NurM0hammad/FoxMind-AI/internal/service"
)

func TestPersonalities_StableOrder(t *testing.T) {
	names := service.Personalities()
	assert.Equal(t, []string{"default", "coding", "creative", "academic", "concise", "gemini"}, names)
}

func TestValidPersonality(t *testing.T) {
	assert.Equal(t, "coding", service.ValidPersonality("coding"))
	assert.Equal(t, service.DefaultPersonality, service.ValidPersonality(""))
	assert.Equal(t, service.DefaultPersonality, service.ValidPersonality("no-such-preset"))
}

func TestSystemPrompt(t *testing.T) {
	for _, name := range service.Personalities() {
		assert.NotEmpty(t, service.SystemPrompt(name), name)
	}
	// Unknown presets fall back to the default prompt.
	assert.Equal(t, service.SystemPrompt("default"), service.SystemPrompt("bogus"))
}
