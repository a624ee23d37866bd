// Package sanitize is the single trust boundary for server-delivered rich
// text. Message bodies, notification text and comments arrive as HTML and are
// never stored or exposed without passing through here first.
package sanitize

import "github.com/microcosm-cc/bluemonday"

type Sanitizer struct {
	policy *bluemonday.Policy
}

func New() *Sanitizer {
	policy := bluemonday.UGCPolicy()
	policy.RequireNoFollowOnLinks(true)
	policy.AllowAttrs("class").OnElements("span", "p")

	return &Sanitizer{policy: policy}
}

func (s *Sanitizer) HTML(raw string) string {
	return s.policy.Sanitize(raw)
}
