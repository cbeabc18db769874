package util

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/oliveagle/jsonpath"
)

var tokenPattern = regexp.MustCompile("{(.*?)}")

// ResolveText replaces every {$.path} token in text with the value found at path
// in data. Tokens that do not resolve are replaced by an empty string, other
// braces are left alone.
func ResolveText(data map[string]any, text string) string {
	if !strings.Contains(text, "{$") {
		return text
	}
	tokenMap := make(map[string]string)
	tokens := tokenPattern.FindAllString(text, -1)
	for i := range tokens {
		token := tokens[i]
		tmatch := strings.ReplaceAll(token, "{", "")
		tmatch = strings.ReplaceAll(tmatch, "}", "")
		if !strings.HasPrefix(tmatch, "$") {
			continue
		}
		value, err := jsonpath.JsonPathLookup(data, tmatch)
		if err != nil || value == nil {
			tokenMap[token] = ""
			continue
		}
		tokenMap[token] = format(value)
	}
	out := text
	for t, tv := range tokenMap {
		out = strings.ReplaceAll(out, t, tv)
	}
	return out
}

func format(value any) string {
	switch v := value.(type) {
	case []any:
		parts := make([]string, 0, len(v))
		for _, p := range v {
			parts = append(parts, fmt.Sprintf("%v", p))
		}
		return strings.Join(parts, ", ")
	default:
		return fmt.Sprintf("%v", v)
	}
}
