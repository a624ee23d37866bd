package api

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/http"

	"github.com/lumeapp/sync-client/internal/model"
)

type NewCommentRequest struct {
	PostID    string
	Content   string
	ReplyTo   string
	ParentID  string
	FileNames []string
	Files     [][]byte
}

// PostComment submits a new comment or reply as multipart form data. The
// backend expects both post_id and postId (a legacy duplication it still
// requires), the comment text, reply_to and an optional parentId, plus any
// attachments under files[].
func (c *Client) PostComment(ctx context.Context, req *NewCommentRequest) (*model.Comment, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	fields := map[string]string{
		"post_id":  req.PostID,
		"postId":   req.PostID,
		"comment":  req.Content,
		"reply_to": req.ReplyTo,
	}
	if req.ParentID != "" {
		fields["parentId"] = req.ParentID
	}

	for name, value := range fields {
		if err := writer.WriteField(name, value); err != nil {
			return nil, fmt.Errorf("failed to write form field %s: %w", name, err)
		}
	}

	for i, file := range req.Files {
		name := fmt.Sprintf("file-%d", i)
		if i < len(req.FileNames) {
			name = req.FileNames[i]
		}

		part, err := writer.CreateFormFile("files[]", name)
		if err != nil {
			return nil, fmt.Errorf("failed to create form file: %w", err)
		}
		if _, err := part.Write(file); err != nil {
			return nil, fmt.Errorf("failed to write form file: %w", err)
		}
	}

	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize multipart body: %w", err)
	}

	var comment model.Comment
	err := c.doJSON(ctx, http.MethodPost, "/comments/new", &buf, writer.FormDataContentType(), &comment)
	if err != nil {
		return nil, fmt.Errorf("failed to post comment: %w", err)
	}

	return &comment, nil
}

func (c *Client) GetCommentReplies(ctx context.Context, commentID string, page int) (*model.Page[model.Comment], error) {
	path := fmt.Sprintf("/comments/replies/%s?page=%d", pathEscape(commentID), page)

	var result model.Page[model.Comment]
	err := c.doJSON(ctx, http.MethodGet, path, nil, "", &result)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch comment replies: %w", err)
	}

	return &result, nil
}

func (c *Client) ToggleCommentLike(ctx context.Context, commentID string) error {
	req := map[string]string{"comment_id": commentID}

	err := c.doJSON(ctx, http.MethodPost, "/comments/toggle-like", req, "", nil)
	if err != nil {
		return fmt.Errorf("failed to toggle comment like: %w", err)
	}

	return nil
}
