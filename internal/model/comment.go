package model

import "time"

type CommentList []Comment

type Comment struct {
	ID           string       `json:"comment_id"`
	PostID       string       `json:"post_id"`
	ParentID     *string      `json:"parent_id,omitempty"`
	AuthorID     string       `json:"author_id"`
	Content      string       `json:"comment"`
	Attachments  []Attachment `json:"attachments,omitempty"`
	Likes        int          `json:"likes"`
	TotalReplies int          `json:"total_replies"`
	LikedByMe    bool         `json:"liked_by_me"`
	CreatedAt    time.Time    `json:"created_at"`

	// Children holds lazily fetched replies, merged page by page.
	Children CommentList `json:"children,omitempty"`
}
