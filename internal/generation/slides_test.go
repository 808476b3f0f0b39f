package generation_test

import (
	"strings"
	"testing"

	"github.com/Chirag-wamanacharya12/media-maven-pro-sub000/internal/generation"
	"github.com/stretchr/testify/assert"
)

func TestCleanSlidePrompt(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"emoji and spaces", "Buy   now! 😀🔥", "Buy now!"},
		{"transport and flags", "🚀 Launch day 🇺🇸 is here", "Launch day is here"},
		{"keeps other symbols", "Coffee ☕ time", "Coffee ☕ time"},
		{"newlines collapse", "  line one\n\tline two  ", "line one line two"},
		{"only emoji", "😀😃🚗", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, generation.CleanSlidePrompt(tc.in))
		})
	}
}

func TestIsDegenerateSlidePrompt(t *testing.T) {
	t.Parallel()

	assert.True(t, generation.IsDegenerateSlidePrompt(""))
	assert.True(t, generation.IsDegenerateSlidePrompt("Hello"))
	assert.True(t, generation.IsDegenerateSlidePrompt("héllo"))
	assert.False(t, generation.IsDegenerateSlidePrompt("Hello!"))
}

func TestSlidePrompts(t *testing.T) {
	t.Parallel()

	content := "**Slide 1:** Sunrise over a quiet kitchen 🌅\n" +
		"Some body text\n\n" +
		"**Slide 3:**   Glass of water on a desk"

	prompts := generation.SlidePrompts(content, "tips for morning routines", 3)

	assert.Equal(t, []string{
		"Sunrise over a quiet kitchen 🌅",
		"Slide 2 visual for topic: tips for morning routines...",
		"Glass of water on a desk",
	}, prompts)
}

func TestSlidePrompts_FallbackTruncatesTopic(t *testing.T) {
	t.Parallel()

	long := strings.Repeat("é", 60)

	prompts := generation.SlidePrompts("", long, 2)

	assert.Len(t, prompts, 2)
	assert.Equal(t, "Slide 1 visual for topic: "+strings.Repeat("é", 50)+"...", prompts[0])
	assert.Equal(t, "Slide 2 visual for topic: "+strings.Repeat("é", 50)+"...", prompts[1])
}

func TestSlidePrompts_DoesNotConfuseTwoDigitSlides(t *testing.T) {
	t.Parallel()

	prompts := generation.SlidePrompts("**Slide 10:** Tenth slide", "topic", 1)

	assert.Equal(t, []string{"Slide 1 visual for topic: topic..."}, prompts)
}

func TestSlidePrompts_OutOfOrderAndRepeatedMarkers(t *testing.T) {
	t.Parallel()

	content := "**slide 2:** Second visual\n" +
		"**Slide 1:** First visual\n" +
		"**Slide 2:** Ignored repeat"

	prompts := generation.SlidePrompts(content, "anything", 2)

	assert.Equal(t, []string{"First visual", "Second visual"}, prompts)
}
