package generation

import (
	"regexp"
	"strings"
)

// FallbackTopic is returned when nothing meaningful survives normalization.
const FallbackTopic = "general topic"

type replacement struct {
	pattern *regexp.Regexp
	with    string
}

func word(w string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)\b(?:` + w + `)\b`)
}

// slangTable is applied in order. Filler words map to the empty string.
var slangTable = []replacement{
	{word("gonna"), "going to"},
	{word("wanna"), "want to"},
	{word("gotta"), "got to"},
	{word("u"), "you"},
	{word("ur"), "your"},
	{word("pls|plz"), "please"},
	{word("thx"), "thanks"},
	{word("um"), ""},
	{word("uh"), ""},
	{word("hmm"), ""},
	{word("lol"), ""},
	{word("kinda"), ""},
	{word("sorta"), ""},
	{word("basically"), ""},
	{word("literally"), ""},
}

var requestPhrases = compilePrefixes(
	"can you",
	"could you",
	"would you",
	"please",
	"i want to",
	"i want",
	"i need",
	"i'd like to",
	"help me",
	"give me",
	"generate",
	"write",
	"create",
	"make",
)

var (
	contentNouns = regexp.MustCompile(
		`\b(?:(?:a|an|some)\s+)?(?:post|reel|caption|carousel|story|stories|bio|hashtag|ad copy|ad|content|tweet|thread)s?\b(?:\s+(?:on|about|around|for)\b)?`,
	)
	punctuation = regexp.MustCompile(`[^\p{L}\p{N}_\s]+`)
	whitespace  = regexp.MustCompile(`\s+`)
)

func compilePrefixes(phrases ...string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, 0, len(phrases))
	for _, p := range phrases {
		out = append(out, regexp.MustCompile(`^`+regexp.QuoteMeta(p)+`\b\s*`))
	}
	return out
}

// ExtractTopic normalizes a raw user prompt into a short lower-case topic
// phrase. It never returns an empty string.
func ExtractTopic(raw string) string {
	topic := strings.TrimSpace(strings.ToLower(raw))

	for _, r := range slangTable {
		topic = r.pattern.ReplaceAllString(topic, r.with)
	}
	topic = collapseSpaces(topic)

	for _, p := range requestPhrases {
		topic = p.ReplaceAllString(topic, "")
	}

	topic = contentNouns.ReplaceAllString(topic, " ")
	topic = punctuation.ReplaceAllString(topic, "")
	topic = collapseSpaces(topic)

	if topic == "" {
		return FallbackTopic
	}
	return topic
}

func collapseSpaces(s string) string {
	return strings.TrimSpace(whitespace.ReplaceAllString(s, " "))
}
