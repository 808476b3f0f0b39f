package mocks

import (
	"context"
	"sync"

	"github.com/Chirag-wamanacharya12/media-maven-pro-sub000/internal/generation"
)

// pngSignature is the 8-byte PNG header, enough for content sniffing.
var pngSignature = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

// MockImageGenerator implements generation.ImageGenerator for testing
type MockImageGenerator struct {
	// GenerateImageFn allows test cases to mock the GenerateImage behavior
	GenerateImageFn func(ctx context.Context, prompt string) ([]byte, string, error)

	// Default response values
	Data        []byte
	ContentType string
	Err         error

	// FailOnCall makes the Nth call (1-based) return Err; 0 means every call
	// uses Err as-is.
	FailOnCall int

	// Call tracking for verification
	GenerateImageCalls struct {
		mu sync.Mutex

		// Count tracks how many times GenerateImage was called
		Count int

		// Prompts contains all prompts passed to GenerateImage calls
		Prompts []string
	}
}

var _ generation.ImageGenerator = (*MockImageGenerator)(nil)

// GenerateImage implements the generation.ImageGenerator interface
func (m *MockImageGenerator) GenerateImage(ctx context.Context, prompt string) ([]byte, string, error) {
	m.GenerateImageCalls.mu.Lock()
	m.GenerateImageCalls.Count++
	call := m.GenerateImageCalls.Count
	m.GenerateImageCalls.Prompts = append(m.GenerateImageCalls.Prompts, prompt)
	m.GenerateImageCalls.mu.Unlock()

	if m.GenerateImageFn != nil {
		return m.GenerateImageFn(ctx, prompt)
	}

	if m.FailOnCall > 0 {
		if call == m.FailOnCall {
			return nil, "", m.Err
		}
		return m.Data, m.ContentType, nil
	}
	if m.Err != nil {
		return nil, "", m.Err
	}
	return m.Data, m.ContentType, nil
}

// Calls returns the number of GenerateImage calls so far.
func (m *MockImageGenerator) Calls() int {
	m.GenerateImageCalls.mu.Lock()
	defer m.GenerateImageCalls.mu.Unlock()
	return m.GenerateImageCalls.Count
}

// Prompts returns a copy of the prompts received so far.
func (m *MockImageGenerator) Prompts() []string {
	m.GenerateImageCalls.mu.Lock()
	defer m.GenerateImageCalls.mu.Unlock()
	return append([]string(nil), m.GenerateImageCalls.Prompts...)
}

// NewMockImageGenerator creates a MockImageGenerator that returns a small PNG
func NewMockImageGenerator() *MockImageGenerator {
	return &MockImageGenerator{
		Data:        append([]byte(nil), pngSignature...),
		ContentType: "image/png",
	}
}

// NewMockImageGeneratorFailingOn creates a MockImageGenerator whose Nth call fails
func NewMockImageGeneratorFailingOn(call int) *MockImageGenerator {
	m := NewMockImageGenerator()
	m.FailOnCall = call
	m.Err = &generation.ImageGenerationError{StatusCode: 500, Body: "upstream error"}
	return m
}
