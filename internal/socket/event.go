package socket

import "encoding/json"

// Event is the wire envelope shared with the backend gateway. Seq is the
// server-assigned sequence number on outbound-from-server events; client
// emits leave it zero.
type Event struct {
	Op   string          `json:"op"`
	Data json.RawMessage `json:"d,omitempty"`
	Seq  int64           `json:"seq,omitempty"`
}

// Client-emitted ops.
const (
	OpSupportStart   = "support:start"
	OpSupportMessage = "support:message"
	OpSupportTyping  = "support:typing"
	OpSupportEnd     = "support:end"
	OpSupportReview  = "support:review"

	OpGroupJoin    = "group:join"
	OpGroupLeave   = "group:leave"
	OpGroupMessage = "group:message"
	OpGroupTyping  = "group:typing"
	OpGroupSeen    = "group:seen"
)

// Server-emitted ops.
const (
	OpSupportSessionStarted  = "support:session-started"
	OpSupportMessageHistory  = "support:message-history"
	OpSupportAgentJoined     = "support:agent-joined"
	OpSupportAgentLeft       = "support:agent-left"
	OpSupportAgentTyping     = "support:agent-typing"
	OpSupportSessionEnded    = "support:session-ended"
	OpSupportReviewSubmitted = "support:review-submitted"
	OpSupportError           = "support:error"

	OpGroupMemberState = "group:member-state"
)

// Local synthetic ops, dispatched by the router itself. They never cross the
// wire; subscribers use them to observe connection state.
const (
	OpConnected    = "connected"
	OpDisconnected = "disconnected"
	OpError        = "error"
)

type RoomRef struct {
	RoomID string `json:"room_id"`
}

type ErrorData struct {
	Message string `json:"message"`
}

type TypingData struct {
	RoomID string `json:"room_id"`
	UserID string `json:"user_id,omitempty"`
	Typing bool   `json:"typing"`
}

type SeenData struct {
	RoomID    string `json:"room_id"`
	MessageID string `json:"message_id"`
}

type MemberStateData struct {
	RoomID        string   `json:"room_id"`
	ActiveMembers []string `json:"active_members"`
}

type OutgoingMessage struct {
	RoomID      string `json:"room_id"`
	Content     string `json:"content"`
	Attachments []any  `json:"attachments,omitempty"`
	ReplyToID   string `json:"reply_to_id,omitempty"`
	ClientRef   string `json:"client_ref,omitempty"`
}
