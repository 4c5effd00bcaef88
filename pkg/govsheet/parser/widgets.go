package parser

import (
	"regexp"
	"strings"
)

var wholeWordIsHas = regexp.MustCompile(`\b(is|has)\b`)

// widgetRules map label keywords to widget type tags. Rules are evaluated
// in order against the lower-cased label; the first match wins, so a label
// containing both "date" and "status" infers as date.
var widgetRules = []struct {
	match func(label string) bool
	tag   string
}{
	{containsAny("date"), "date"},
	{containsAny("count", "number", "num", "%", "ratio"), "number"},
	{func(label string) bool {
		return wholeWordIsHas.MatchString(label) || strings.Contains(label, "flag")
	}, "checkbox"},
	{containsAny("type", "status", "method"), "single_select"},
	{containsAny("tags", "labels", "stakeholder"), "multi_select"},
	{containsAny("description", "objective"), "textarea"},
}

// InferWidgetType infers the input widget type for a field label based on
// naming conventions. Returns "text" when no rule matches.
func InferWidgetType(label string) string {
	text := strings.ToLower(label)
	for _, rule := range widgetRules {
		if rule.match(text) {
			return rule.tag
		}
	}
	return "text"
}

func containsAny(keywords ...string) func(string) bool {
	return func(label string) bool {
		for _, keyword := range keywords {
			if strings.Contains(label, keyword) {
				return true
			}
		}
		return false
	}
}
