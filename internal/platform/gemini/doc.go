// Package gemini implements generation.TextGenerator against Google's Gemini
// generateContent API.
//
// Two clients share the same contract. RESTGenerator posts the JSON body
// directly with resty and passes the API key as a query parameter, reading
// the text from candidates[0].content.parts. SDKGenerator goes through the
// google.golang.org/genai client. Neither retries, and a response without
// text is returned as an empty string rather than an error.
package gemini
