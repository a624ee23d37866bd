package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	TextMessageType = "text"
)

type MessageList []Message

type Message struct {
	ID          uuid.UUID    `db:"id" json:"id"`
	ThreadID    uuid.UUID    `db:"thread_id" json:"thread_id"`
	SenderID    uuid.UUID    `db:"sender_id" json:"sender_id"`
	Type        string       `db:"type" json:"type"`
	Content     string       `db:"content" json:"content"`
	Attachments []Attachment `db:"-" json:"attachments,omitempty"`
	ReplyToID   *uuid.UUID   `db:"reply_to_id" json:"reply_to_id,omitempty"`
	CreatedAt   time.Time    `db:"created_at" json:"created_at"`
	Seen        bool         `db:"seen" json:"seen"`
}

type Attachment struct {
	ID   string `json:"id"`
	URL  string `json:"url"`
	Name string `json:"name,omitempty"`
	Mime string `json:"mime,omitempty"`
	Size int64  `json:"size,omitempty"`
}
