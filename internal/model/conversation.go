package model

type Receiver struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Avatar   string `json:"avatar,omitempty"`
}

type BlockStatus struct {
	IsBlocked bool `json:"isBlocked"`
}

// FreeMessageStatus reports the mutual opt-in state for free messaging.
// BothEnabled transitions server-side; this client only reports it.
type FreeMessageStatus struct {
	UserEnabled bool `json:"userEnabled"`
	BothEnabled bool `json:"bothEnabled"`
}

type ConversationSettings struct {
	Receiver    Receiver
	Blocked     bool
	FreeMessage FreeMessageStatus
}
