package provider

import (
	"regexp"
	"strings"
)

var jsonBlockRegex = regexp.MustCompile("```(?:json)?\\s*\\n([\\s\\S]*?)```")

// ExtractJSON attempts to pull a JSON object out of a model completion.
// Models are instructed to return bare JSON but occasionally wrap it in
// markdown code fences or surrounding prose despite the response-format hint.
// Returns the empty string when no object can be located.
func ExtractJSON(content string) string {
	if matches := jsonBlockRegex.FindStringSubmatch(content); len(matches) > 1 {
		return strings.TrimSpace(matches[1])
	}

	start := strings.Index(content, "{")
	if start == -1 {
		return ""
	}

	// Walk to the matching closing brace
	braceCount := 0
	for i := start; i < len(content); i++ {
		switch content[i] {
		case '{':
			braceCount++
		case '}':
			braceCount--
			if braceCount == 0 {
				return content[start : i+1]
			}
		}
	}

	return ""
}
