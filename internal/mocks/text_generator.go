package mocks

import (
	"context"
	"sync"

	"github.com/Chirag-wamanacharya12/media-maven-pro-sub000/internal/generation"
)

// MockTextGenerator implements generation.TextGenerator for testing
type MockTextGenerator struct {
	// GenerateFn allows test cases to mock the Generate behavior
	GenerateFn func(ctx context.Context, prompt string, creativity float64, tokenBudget int) (string, error)

	// Default response values
	Response string
	Err      error

	// Call tracking for verification
	GenerateCalls struct {
		// mu protects the call tracking state for concurrent test cases
		mu sync.Mutex

		// Count tracks how many times Generate was called
		Count int

		// Prompts contains all prompts passed to Generate calls
		Prompts []string

		// Creativities contains all creativity values passed to Generate calls
		Creativities []float64

		// TokenBudgets contains all token budgets passed to Generate calls
		TokenBudgets []int
	}
}

var _ generation.TextGenerator = (*MockTextGenerator)(nil)

// Generate implements the generation.TextGenerator interface
func (m *MockTextGenerator) Generate(
	ctx context.Context,
	prompt string,
	creativity float64,
	tokenBudget int,
) (string, error) {
	m.GenerateCalls.mu.Lock()
	m.GenerateCalls.Count++
	m.GenerateCalls.Prompts = append(m.GenerateCalls.Prompts, prompt)
	m.GenerateCalls.Creativities = append(m.GenerateCalls.Creativities, creativity)
	m.GenerateCalls.TokenBudgets = append(m.GenerateCalls.TokenBudgets, tokenBudget)
	m.GenerateCalls.mu.Unlock()

	if m.GenerateFn != nil {
		return m.GenerateFn(ctx, prompt, creativity, tokenBudget)
	}

	return m.Response, m.Err
}

// Calls returns the number of Generate calls so far.
func (m *MockTextGenerator) Calls() int {
	m.GenerateCalls.mu.Lock()
	defer m.GenerateCalls.mu.Unlock()
	return m.GenerateCalls.Count
}

// LastPrompt returns the prompt of the most recent call, or "" if none.
func (m *MockTextGenerator) LastPrompt() string {
	m.GenerateCalls.mu.Lock()
	defer m.GenerateCalls.mu.Unlock()
	if len(m.GenerateCalls.Prompts) == 0 {
		return ""
	}
	return m.GenerateCalls.Prompts[len(m.GenerateCalls.Prompts)-1]
}

// LastTokenBudget returns the token budget of the most recent call, or 0.
func (m *MockTextGenerator) LastTokenBudget() int {
	m.GenerateCalls.mu.Lock()
	defer m.GenerateCalls.mu.Unlock()
	if len(m.GenerateCalls.TokenBudgets) == 0 {
		return 0
	}
	return m.GenerateCalls.TokenBudgets[len(m.GenerateCalls.TokenBudgets)-1]
}

// NewMockTextGeneratorWithResponse creates a MockTextGenerator that returns the given text
func NewMockTextGeneratorWithResponse(response string) *MockTextGenerator {
	return &MockTextGenerator{Response: response}
}

// NewMockTextGeneratorWithError creates a MockTextGenerator that returns the given error
func NewMockTextGeneratorWithError(err error) *MockTextGenerator {
	return &MockTextGenerator{Err: err}
}

// MockTextGeneratorThatFails creates a MockTextGenerator that simulates a remote failure
func MockTextGeneratorThatFails() *MockTextGenerator {
	return &MockTextGenerator{
		Err: &generation.GenerationError{StatusCode: 500, StatusText: "Internal Server Error"},
	}
}

// Reset resets the call tracking state
func (m *MockTextGenerator) Reset() {
	m.GenerateCalls.mu.Lock()
	defer m.GenerateCalls.mu.Unlock()

	m.GenerateCalls.Count = 0
	m.GenerateCalls.Prompts = nil
	m.GenerateCalls.Creativities = nil
	m.GenerateCalls.TokenBudgets = nil
}
