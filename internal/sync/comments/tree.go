// Package comments maintains a post's comment tree: top-level entries with
// lazily paged reply children, an optimistic like toggle and a guarded
// submit path.
package comments

import (
	"context"
	"fmt"
	"sync"

	"github.com/lumeapp/sync-client/internal/client/api"
	"github.com/lumeapp/sync-client/internal/model"
	"github.com/lumeapp/sync-client/internal/pkg/validator"
)

type Tree struct {
	api       API
	sanitizer Sanitizer
	valid     *validator.Validator
	postID    string

	mu           sync.Mutex
	comments     model.CommentList
	known        map[string]struct{}
	replyPage    map[string]int
	repliesDone  map[string]bool
	replyLoading map[string]struct{}
	posting      bool
	liking       map[string]struct{}
}

func NewTree(apiClient API, sanitizer Sanitizer, postID string) *Tree {
	return &Tree{
		api:          apiClient,
		sanitizer:    sanitizer,
		valid:        validator.New(),
		postID:       postID,
		known:        make(map[string]struct{}),
		replyPage:    make(map[string]int),
		repliesDone:  make(map[string]bool),
		replyLoading: make(map[string]struct{}),
		liking:       make(map[string]struct{}),
	}
}

// Merge seeds or extends the top-level list, deduplicating against both
// earlier pages and any comment already delivered as a reply echo.
func (t *Tree) Merge(incoming model.CommentList) int {
	t.mu.Lock()
	defer t.mu.Unlock()

	added := 0
	for _, c := range incoming {
		if _, dup := t.known[c.ID]; dup {
			continue
		}
		c.Content = t.sanitizer.HTML(c.Content)
		t.known[c.ID] = struct{}{}
		t.comments = append(t.comments, c)
		added++
	}

	return added
}

func (t *Tree) Comments() model.CommentList {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := make(model.CommentList, len(t.comments))
	copy(out, t.comments)
	return out
}

// LoadReplies fetches the next page of children for a comment and merges
// them into its Children slice. A per-comment loading flag makes the busy
// window a semaphore of cardinality one. An exhausted comment is
// remembered; further calls are no-ops.
func (t *Tree) LoadReplies(ctx context.Context, commentID string) (int, error) {
	t.mu.Lock()
	if t.repliesDone[commentID] {
		t.mu.Unlock()
		return 0, nil
	}
	if _, busy := t.replyLoading[commentID]; busy {
		t.mu.Unlock()
		return 0, nil
	}
	t.replyLoading[commentID] = struct{}{}
	page := t.replyPage[commentID] + 1
	t.mu.Unlock()

	defer func() {
		t.mu.Lock()
		delete(t.replyLoading, commentID)
		t.mu.Unlock()
	}()

	result, err := t.api.GetCommentReplies(ctx, commentID, page)
	if err != nil {
		return 0, fmt.Errorf("failed to load replies: %w", err)
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	t.replyPage[commentID] = page
	if !result.HasMore || len(result.Items) == 0 {
		t.repliesDone[commentID] = true
	}

	parent := t.findLocked(commentID)
	if parent == nil {
		return 0, nil
	}

	existing := make(map[string]struct{}, len(parent.Children))
	for _, child := range parent.Children {
		existing[child.ID] = struct{}{}
	}

	added := 0
	for _, child := range result.Items {
		if _, dup := existing[child.ID]; dup {
			continue
		}
		child.Content = t.sanitizer.HTML(child.Content)
		parent.Children = append(parent.Children, child)
		added++
	}

	return added, nil
}

// Post validates locally first: a validation failure never reaches the
// network. The posting flag stops idempotent double submits; the created
// comment comes back from the server, there is no optimistic insert.
func (t *Tree) Post(ctx context.Context, content, replyTo, parentID string, fileNames []string, files [][]byte) (*model.Comment, error) {
	if err := t.valid.ValidateComment(content); err != nil {
		return nil, err
	}

	t.mu.Lock()
	if t.posting {
		t.mu.Unlock()
		return nil, nil
	}
	t.posting = true
	t.mu.Unlock()

	defer func() {
		t.mu.Lock()
		t.posting = false
		t.mu.Unlock()
	}()

	created, err := t.api.PostComment(ctx, &api.NewCommentRequest{
		PostID:    t.postID,
		Content:   content,
		ReplyTo:   replyTo,
		ParentID:  parentID,
		FileNames: fileNames,
		Files:     files,
	})
	if err != nil {
		return nil, err
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	created.Content = t.sanitizer.HTML(created.Content)

	if parentID == "" {
		if _, dup := t.known[created.ID]; !dup {
			t.known[created.ID] = struct{}{}
			t.comments = append(t.comments, *created)
		}
		return created, nil
	}

	if parent := t.findLocked(parentID); parent != nil {
		parent.Children = append(parent.Children, *created)
		parent.TotalReplies++
	}

	return created, nil
}

// ToggleLike patches likes and likedByMe before the call and restores the
// exact pre-mutation values if the call fails.
func (t *Tree) ToggleLike(ctx context.Context, commentID string) error {
	t.mu.Lock()
	if _, busy := t.liking[commentID]; busy {
		t.mu.Unlock()
		return nil
	}

	target := t.findLocked(commentID)
	if target == nil {
		t.mu.Unlock()
		return fmt.Errorf("comment %s is not loaded", commentID)
	}

	t.liking[commentID] = struct{}{}
	prevLikes := target.Likes
	prevLiked := target.LikedByMe

	if target.LikedByMe {
		target.Likes--
	} else {
		target.Likes++
	}
	target.LikedByMe = !target.LikedByMe
	t.mu.Unlock()

	defer func() {
		t.mu.Lock()
		delete(t.liking, commentID)
		t.mu.Unlock()
	}()

	if err := t.api.ToggleCommentLike(ctx, commentID); err != nil {
		t.mu.Lock()
		if target := t.findLocked(commentID); target != nil {
			target.Likes = prevLikes
			target.LikedByMe = prevLiked
		}
		t.mu.Unlock()

		return fmt.Errorf("failed to toggle like: %w", err)
	}

	return nil
}

func (t *Tree) findLocked(commentID string) *model.Comment {
	for i := range t.comments {
		if t.comments[i].ID == commentID {
			return &t.comments[i]
		}
		for j := range t.comments[i].Children {
			if t.comments[i].Children[j].ID == commentID {
				return &t.comments[i].Children[j]
			}
		}
	}

	return nil
}
