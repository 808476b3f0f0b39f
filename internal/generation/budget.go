package generation

import "github.com/Chirag-wamanacharya12/media-maven-pro-sub000/internal/domain"

// Token budget heuristics. Output is assumed to average four characters per
// token, and a carousel slide to need about 80 tokens.
const (
	CharsPerToken           = 4
	TokensPerSlide          = 80
	DefaultBudgetSlideCount = 6
)

// TokenBudget returns the maxOutputTokens value requested for req.
func TokenBudget(req domain.GenerationRequest) int {
	if req.ContentType.IsCarousel() {
		slides := req.SlideCount
		if slides <= 0 {
			slides = DefaultBudgetSlideCount
		}
		return slides * TokensPerSlide
	}
	return req.MaxLength / CharsPerToken
}
