package model

import "time"

const (
	ConversationThreadType = "conversation"
	GroupThreadType        = "group"
	SupportThreadType      = "support"
)

type Thread struct {
	ID            string
	Type          string
	Members       []string
	UnreadCount   int
	Connected     bool
	ActiveMembers []string
	TypingUsers   []string
}

// TypingState is an inbound typing indicator with its expiry deadline.
// Indicators that never receive an explicit stop are dropped once the
// deadline passes.
type TypingState struct {
	UserID    string
	ExpiresAt time.Time
}

type ThreadSnapshot struct {
	Thread   Thread      `json:"thread"`
	Messages MessageList `json:"messages"`
	HasMore  bool        `json:"has_more"`
}
