package catalog_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NurM0hammad/FoxMind-AI/internal/catalog"
	"github.com/NurM0hammad/FoxMind-AI/internal/llm/mocks"
	"github.com/NurM0hammad/FoxMind-AI/internal/model"
)

func TestBuild_FromUpstreamListing(t *testing.T) {
	provider := mocks.NewMockProvider(t)
	provider.On("Configured").Return(true).Once()
	provider.On("ListModels", context.Background()).Return([]model.Descriptor{
		{Name: "gemini-2.0-flash", Description: "fast", ContextWindow: 1000000, SupportsStreaming: true},
		{Name: "gemini-2.0-pro", Description: "smart", ContextWindow: 2000000, SupportsStreaming: true},
	}, nil).Once()

	cat := catalog.Build(context.Background(), provider)

	assert.Equal(t, 2, cat.Len())
	assert.Equal(t, []string{"gemini-2.0-flash", "gemini-2.0-pro"}, cat.Names())
	// The default model is the first catalog entry, deterministically.
	assert.Equal(t, "gemini-2.0-flash", cat.Default())

	d, ok := cat.Get("gemini-2.0-pro")
	require.True(t, ok)
	assert.Equal(t, 2000000, d.ContextWindow)
}

func TestBuild_FallbackWhenUnconfigured(t *testing.T) {
	provider := mocks.NewMockProvider(t)
	provider.On("Configured").Return(false).Once()

	cat := catalog.Build(context.Background(), provider)

	assert.Equal(t, 3, cat.Len())
	assert.Equal(t, "gemini-1.5-pro", cat.Default())
}

func TestBuild_FallbackOnListingError(t *testing.T) {
	provider := mocks.NewMockProvider(t)
	provider.On("Configured").Return(true).Once()
	provider.On("ListModels", context.Background()).Return(nil, errors.New("api down")).Once()

	cat := catalog.Build(context.Background(), provider)

	assert.Equal(t, catalog.Fallback().Names(), cat.Names())
}

func TestBuild_FallbackOnEmptyListing(t *testing.T) {
	provider := mocks.NewMockProvider(t)
	provider.On("Configured").Return(true).Once()
	provider.On("ListModels", context.Background()).Return([]model.Descriptor{}, nil).Once()

	cat := catalog.Build(context.Background(), provider)

	assert.Equal(t, 3, cat.Len())
}

func TestCatalog_DuplicatesKeepFirst(t *testing.T) {
	provider := mocks.NewMockProvider(t)
	provider.On("Configured").Return(true).Once()
	provider.On("ListModels", context.Background()).Return([]model.Descriptor{
		{Name: "gemini-pro", Description: "first"},
		{Name: "gemini-pro", Description: "second"},
	}, nil).Once()

	cat := catalog.Build(context.Background(), provider)

	assert.Equal(t, 1, cat.Len())
	d, _ := cat.Get("gemini-pro")
	assert.Equal(t, "first", d.Description)
}
