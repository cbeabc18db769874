package catalog

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/mohitkumar/fotoflow/model"
	"golang.org/x/text/cases"
)

var exampleClause = regexp.MustCompile(`(?i)\s*\(z\.\s*B\..*?\)\s*$`)

type eventRule struct {
	key   string
	match []string
}

// EventNormalizer maps decorated event labels ("💍 Hochzeit", "Messe (z. B.
// Recruitingday)") onto the canonical keys of the catalog. It is a best effort
// classifier: a label no rule matches is its own key.
type EventNormalizer struct {
	rules []eventRule
}

func NewEventNormalizer(rules []model.EventKeyRule) *EventNormalizer {
	n := &EventNormalizer{}
	for _, r := range rules {
		rule := eventRule{key: r.Key}
		for _, m := range r.Match {
			if m = strings.TrimSpace(m); m != "" {
				rule.match = append(rule.match, cases.Fold().String(m))
			}
		}
		n.rules = append(n.rules, rule)
	}
	return n
}

// Normalize returns the canonical key for label. Rules are tried in catalog
// order, the first rule with a matching fragment wins.
func (n *EventNormalizer) Normalize(label string) string {
	s := strings.TrimSpace(label)
	if s == "" {
		return ""
	}
	s = exampleClause.ReplaceAllString(s, "")
	s = strings.TrimFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	folded := cases.Fold().String(s)
	for _, rule := range n.rules {
		for _, m := range rule.match {
			if strings.Contains(folded, m) {
				return rule.key
			}
		}
	}
	return s
}
