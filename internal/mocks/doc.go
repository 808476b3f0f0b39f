// Package mocks provides centralized mock implementations for testing.
//
// Each mock has function fields that override its behavior, default return
// values used when no function is set, and mutex-guarded call tracking for
// assertions:
//
//	text := mocks.NewMockTextGeneratorWithResponse("**Slide 1:** Hello")
//	studio, _ := service.NewStudio(text, mocks.NewMockImageGenerator(), memstore.NewImageStore(), nil)
//	// ...
//	assert.Equal(t, 1, text.Calls())
//
// When adding a new mock, name the file after the interface being mocked.
package mocks
