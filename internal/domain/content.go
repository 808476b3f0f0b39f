package domain

import (
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// ContentType identifies the kind of copy being generated.
type ContentType string

// Supported content types
const (
	ContentTypePost     ContentType = "post"
	ContentTypeReel     ContentType = "reel"
	ContentTypeCarousel ContentType = "carousel"
	ContentTypeStory    ContentType = "story"
	ContentTypeCaption  ContentType = "caption"
	ContentTypeHashtags ContentType = "hashtags"
	ContentTypeAdCopy   ContentType = "ad-copy"
	ContentTypeBio      ContentType = "bio"
)

// IsCarousel reports whether the content type is split into slides.
func (c ContentType) IsCarousel() bool {
	return c == ContentTypeCarousel
}

// Label returns the human readable name used inside model prompts.
func (c ContentType) Label() string {
	return strings.ReplaceAll(string(c), "-", " ")
}

// Platform identifies the social network the copy is written for.
type Platform string

// Supported platforms
const (
	PlatformInstagram Platform = "instagram"
	PlatformTikTok    Platform = "tiktok"
	PlatformYouTube   Platform = "youtube"
	PlatformTwitter   Platform = "twitter"
	PlatformFacebook  Platform = "facebook"
	PlatformLinkedIn  Platform = "linkedin"
)

// Slide count bounds for carousel requests. DefaultSlideCount is what
// clients use when the user does not pick one.
const (
	MinSlideCount     = 2
	MaxSlideCount     = 10
	DefaultSlideCount = 5
)

// GenerationRequest carries a user prompt and the options that shape the
// generated copy. SlideCount is zero unless ContentType is carousel.
type GenerationRequest struct {
	Prompt      string      `json:"prompt"               validate:"required"`
	ContentType ContentType `json:"contentType"          validate:"required,oneof=post reel carousel story caption hashtags ad-copy bio"`
	Platform    Platform    `json:"platform"             validate:"required,oneof=instagram tiktok youtube twitter facebook linkedin"`
	Tone        string      `json:"tone"                 validate:"required,max=40"`
	Creativity  float64     `json:"creativity"           validate:"gte=0,lte=1"`
	MaxLength   int         `json:"maxLength"            validate:"gte=50,lte=2000"`
	SlideCount  int         `json:"slideCount,omitempty" validate:"omitempty,gte=2,lte=10"`
}

var (
	requestValidator     *validator.Validate
	requestValidatorOnce sync.Once
)

func getRequestValidator() *validator.Validate {
	requestValidatorOnce.Do(func() {
		requestValidator = validator.New()
		requestValidator.RegisterStructValidation(validateGenerationRequest, GenerationRequest{})
	})
	return requestValidator
}

// validateGenerationRequest enforces the cross-field rules the tags cannot
// express.
func validateGenerationRequest(sl validator.StructLevel) {
	req := sl.Current().Interface().(GenerationRequest)

	if req.Prompt != "" && strings.TrimSpace(req.Prompt) == "" {
		sl.ReportError(req.Prompt, "Prompt", "prompt", "notblank", "")
	}

	if req.ContentType.IsCarousel() && req.SlideCount == 0 {
		sl.ReportError(req.SlideCount, "SlideCount", "slideCount", "required_for_carousel", "")
	}
	if !req.ContentType.IsCarousel() && req.SlideCount != 0 {
		sl.ReportError(req.SlideCount, "SlideCount", "slideCount", "carousel_only", "")
	}
}

// Validate checks the request against the field rules and returns the first
// violation as a *ValidationError wrapping ErrValidation.
func (r GenerationRequest) Validate() error {
	err := getRequestValidator().Struct(r)
	if err == nil {
		return nil
	}

	if fieldErrs, ok := err.(validator.ValidationErrors); ok && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return NewValidationError(fe.Field(), "failed on the '"+fe.Tag()+"' rule", ErrValidation)
	}
	return NewValidationError("", err.Error(), ErrValidation)
}

// GeneratedContent is the parsed, platform-ready result of one generation
// request. It is built once and not mutated afterwards.
type GeneratedContent struct {
	Content        string      `json:"content"`
	Hashtags       []string    `json:"hashtags"`
	CharacterCount int         `json:"characterCount"`
	Platform       Platform    `json:"platform"`
	ContentType    ContentType `json:"contentType"`
}
