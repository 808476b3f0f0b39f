package generation

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/Chirag-wamanacharya12/media-maven-pro-sub000/internal/domain"
)

// DefaultPromptSlideCount is used when a carousel request carries no slide
// count.
const DefaultPromptSlideCount = 4

var carouselTemplate = template.Must(template.New("carousel").Parse(
	`Create a {{.Platform}} carousel in a {{.Tone}} tone with exactly {{.Slides}} slides.
Start each slide on its own line with the prefix **Slide N:** where N is the slide number, beginning at 1.
Keep every slide short and emoji-rich, and end the last slide with a clear call-to-action.

Topic: {{.Topic}}`))

var singleShotTemplate = template.Must(template.New("single").Parse(
	`Write a {{.Label}} for {{.Platform}} in a {{.Tone}} voice, under {{.MaxLength}} characters.
{{- if .Hint}}
{{.Hint}}
{{- end}}

Topic: {{.Topic}}`))

type promptData struct {
	Topic     string
	Label     string
	Platform  string
	Tone      string
	MaxLength int
	Slides    int
	Hint      string
}

// promptStyle renders the model instruction for one family of content types.
type promptStyle interface {
	render(data promptData) string
}

type carouselStyle struct{}

func (carouselStyle) render(data promptData) string {
	if data.Slides <= 0 {
		data.Slides = DefaultPromptSlideCount
	}
	return execute(carouselTemplate, data)
}

type singleShotStyle struct {
	hint string
}

func (s singleShotStyle) render(data promptData) string {
	data.Hint = s.hint
	return execute(singleShotTemplate, data)
}

func styleFor(ct domain.ContentType) promptStyle {
	switch ct {
	case domain.ContentTypeCarousel:
		return carouselStyle{}
	case domain.ContentTypePost:
		return singleShotStyle{hint: "Open with a strong hook and close with a few relevant hashtags."}
	case domain.ContentTypeReel:
		return singleShotStyle{hint: "Write it as a short spoken script with an on-screen text cue and relevant hashtags."}
	case domain.ContentTypeStory:
		return singleShotStyle{hint: "Keep it to one or two punchy lines that fit a full-screen story frame."}
	case domain.ContentTypeCaption:
		return singleShotStyle{hint: "Make it scroll-stopping and finish with a few relevant hashtags."}
	case domain.ContentTypeHashtags:
		return singleShotStyle{hint: "Return only a space-separated list of relevant hashtags."}
	case domain.ContentTypeAdCopy:
		return singleShotStyle{hint: "Lead with the main benefit and finish with a direct call-to-action."}
	case domain.ContentTypeBio:
		return singleShotStyle{hint: "Keep it to a single concise profile bio."}
	default:
		return singleShotStyle{}
	}
}

var platformNames = map[domain.Platform]string{
	domain.PlatformInstagram: "Instagram",
	domain.PlatformTikTok:    "TikTok",
	domain.PlatformYouTube:   "YouTube",
	domain.PlatformTwitter:   "Twitter",
	domain.PlatformFacebook:  "Facebook",
	domain.PlatformLinkedIn:  "LinkedIn",
}

func platformName(p domain.Platform) string {
	if name, ok := platformNames[p]; ok {
		return name
	}
	return string(p)
}

// BuildPrompt renders the complete instruction text sent to the model for
// topic. The result is the entire request body; there is no separate system
// prompt.
func BuildPrompt(topic string, req domain.GenerationRequest) string {
	data := promptData{
		Topic:     topic,
		Label:     req.ContentType.Label(),
		Platform:  platformName(req.Platform),
		Tone:      req.Tone,
		MaxLength: req.MaxLength,
		Slides:    req.SlideCount,
	}
	return styleFor(req.ContentType).render(data)
}

// execute panics on failure. The templates are fixed at init and the data
// holds only strings and ints, so an error here is a programming mistake.
func execute(tmpl *template.Template, data promptData) string {
	var b strings.Builder
	if err := tmpl.Execute(&b, data); err != nil {
		panic(fmt.Sprintf("generation: render %s prompt: %v", tmpl.Name(), err))
	}
	return b.String()
}
