package generation

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/Chirag-wamanacharya12/media-maven-pro-sub000/internal/domain"
)

var hashtagPattern = regexp.MustCompile(`#\w+`)

const slideMarker = "**slide"

// ExtractHashtags returns every hashtag in raw in order of appearance,
// duplicates included. The result is never nil.
func ExtractHashtags(raw string) []string {
	tags := hashtagPattern.FindAllString(raw, -1)
	if tags == nil {
		return []string{}
	}
	return tags
}

// Parse turns raw model output into GeneratedContent. Malformed output never
// fails: the worst case is empty content with no hashtags.
//
// For carousels the output is cut into slide blocks and only the first
// SlideCount blocks are kept. Fewer blocks than requested are returned as is;
// missing slides are not synthesized.
func Parse(raw string, req domain.GenerationRequest) *domain.GeneratedContent {
	content := strings.TrimSpace(raw)

	if req.ContentType.IsCarousel() {
		blocks := SplitSlideBlocks(content)
		if req.SlideCount > 0 && len(blocks) > req.SlideCount {
			blocks = blocks[:req.SlideCount]
		}
		content = strings.TrimSpace(strings.Join(blocks, "\n\n"))
	}

	return &domain.GeneratedContent{
		Content:        content,
		Hashtags:       ExtractHashtags(raw),
		CharacterCount: utf8.RuneCountInString(content),
		Platform:       req.Platform,
		ContentType:    req.ContentType,
	}
}

// SplitSlideBlocks cuts text into slide blocks. A block starts at every line
// whose trimmed, lower-cased form begins with "**slide"; text before the
// first marker forms its own block. Blank blocks are dropped.
func SplitSlideBlocks(text string) []string {
	var (
		blocks  []string
		current []string
	)

	flush := func() {
		if block := strings.TrimSpace(strings.Join(current, "\n")); block != "" {
			blocks = append(blocks, block)
		}
		current = current[:0]
	}

	for _, line := range strings.Split(text, "\n") {
		if strings.HasPrefix(strings.ToLower(strings.TrimSpace(line)), slideMarker) {
			flush()
		}
		current = append(current, line)
	}
	flush()

	return blocks
}
