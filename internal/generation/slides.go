package generation

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

// MinSlidePromptLength is the longest cleaned slide prompt that is still
// considered degenerate. Such prompts get a placeholder image instead of a
// remote call.
const MinSlidePromptLength = 5

const fallbackTopicRunes = 50

var slideLinePattern = regexp.MustCompile(`(?mi)\*\*Slide\s*(\d+):\*\*[ \t]*(.*)$`)

type runeRange struct {
	lo, hi rune
}

// emojiRanges are stripped from slide prompts. Bounds are inclusive.
var emojiRanges = []runeRange{
	{0x1F600, 0x1F64F}, // emoticons
	{0x1F300, 0x1F5FF}, // symbols and pictographs
	{0x1F680, 0x1F6FF}, // transport and map
	{0x1F1E0, 0x1F1FF}, // regional indicators
}

func isStrippedEmoji(r rune) bool {
	for _, rr := range emojiRanges {
		if r >= rr.lo && r <= rr.hi {
			return true
		}
	}
	return false
}

// CleanSlidePrompt removes emoji in the stripped ranges, collapses runs of
// whitespace and trims the result.
func CleanSlidePrompt(s string) string {
	stripped := strings.Map(func(r rune) rune {
		if isStrippedEmoji(r) {
			return -1
		}
		return r
	}, s)
	return strings.Join(strings.Fields(stripped), " ")
}

// IsDegenerateSlidePrompt reports whether a cleaned prompt is too short to
// send to the image service.
func IsDegenerateSlidePrompt(cleaned string) bool {
	return utf8.RuneCountInString(cleaned) <= MinSlidePromptLength
}

// SlidePrompts derives one image prompt per slide from carousel content.
// Slide i uses the text after its "**Slide i+1:**" marker; a slide without
// a marker line falls back to a prompt built from originalPrompt. The
// returned prompts are not cleaned.
func SlidePrompts(content, originalPrompt string, slideCount int) []string {
	byNumber := make(map[int]string)
	for _, m := range slideLinePattern.FindAllStringSubmatch(content, -1) {
		n, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		if _, seen := byNumber[n]; !seen {
			byNumber[n] = strings.TrimSpace(m[2])
		}
	}

	prompts := make([]string, 0, slideCount)
	for i := 0; i < slideCount; i++ {
		if text, ok := byNumber[i+1]; ok {
			prompts = append(prompts, text)
			continue
		}
		prompts = append(prompts, fallbackSlidePrompt(i, originalPrompt))
	}
	return prompts
}

func fallbackSlidePrompt(index int, originalPrompt string) string {
	topic := originalPrompt
	if utf8.RuneCountInString(topic) > fallbackTopicRunes {
		topic = string([]rune(topic)[:fallbackTopicRunes])
	}
	return fmt.Sprintf("Slide %d visual for topic: %s...", index+1, topic)
}
