// Package generation holds the provider-independent half of the content
// studio pipeline. It normalizes a raw user prompt into a topic, renders the
// single text prompt sent to the language model, estimates the output token
// budget and parses the raw model text into platform-ready content. For
// carousels it also derives and cleans the per-slide image prompts.
//
// Remote model access sits behind the TextGenerator and ImageGenerator
// interfaces defined here; the Gemini and image service clients live under
// internal/platform.
package generation
