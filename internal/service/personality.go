package service

// Personality presets select the fixed system instruction a conversation's
// upstream session is opened with. The set is static; unknown names fall
// back to the default preset.

const DefaultPersonality = "default"

var personalityOrder = []string{"default", "coding", "creative", "academic", "concise", "gemini"}

var systemPrompts = map[string]string{
	"default": "You are a helpful, friendly AI assistant. Be conversational, informative, and engaging.",

	"coding": `You are an expert programming assistant. Help users write clean, efficient code.
Provide examples, explain concepts, and follow best practices. Use markdown for code blocks.
Be detailed in your explanations and suggest best practices.`,

	"creative": "You are a creative assistant. Help with writing, brainstorming, and creative projects. Be imaginative, inspiring, and think outside the box.",

	"academic": "You are an academic tutor. Provide thorough explanations, cite sources when possible, and help with learning complex topics. Be patient and educational.",

	"concise": "You are a concise assistant. Give brief, direct answers. Avoid unnecessary details unless specifically asked for more information.",

	"gemini": "You are Google's Gemini AI assistant. Be helpful, harmless, and honest. Provide accurate, up-to-date information.",
}

// Personalities returns the preset names in a stable order.
func Personalities() []string {
	out := make([]string, len(personalityOrder))
	copy(out, personalityOrder)
	return out
}

// SystemPrompt returns the system instruction for a personality, falling
// back to the default preset for unknown names.
func SystemPrompt(name string) string {
	if prompt, ok := systemPrompts[name]; ok {
		return prompt
	}
	return systemPrompts[DefaultPersonality]
}

// ValidPersonality normalizes a personality name: empty or unknown names
// become the default preset.
func ValidPersonality(name string) string {
	if _, ok := systemPrompts[name]; ok {
		return name
	}
	return DefaultPersonality
}
