package handlers

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// textPolicy strips every tag from user supplied text
var textPolicy = bluemonday.StrictPolicy()

// sanitizeText removes markup from free text. Entities escaped by the policy
// are decoded again so that "Food & Dining" survives unchanged.
func sanitizeText(s string) string {
	return strings.TrimSpace(html.UnescapeString(textPolicy.Sanitize(s)))
}

// trimOptional trims an optional filter value, returning nil when nothing is
// left. Filter values are matched exactly, so they are validated rather than
// rewritten.
func trimOptional(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
