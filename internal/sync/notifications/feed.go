// Package notifications keeps the paginated notification feed and applies
// read-state mutations optimistically: patch first, roll back on failure,
// reconcile the canonical unread count on settle.
package notifications

import (
	"context"
	"fmt"
	"sync"

	"github.com/lumeapp/sync-client/internal/model"
	"github.com/lumeapp/sync-client/internal/pager"
)

const pageSize = 20

type Feed struct {
	api       API
	sanitizer Sanitizer
	cache     Cache
	pager     *pager.Pager[model.Notification]

	mu         sync.Mutex
	unread     int
	inflight   map[string]struct{}
	markingAll bool
	synced     bool
	warm       model.NotificationList
}

// NewFeed builds the feed. cache may be nil; when set, fetched pages are
// persisted and Warm serves them after a restart until the first sync.
func NewFeed(api API, sanitizer Sanitizer, cache Cache) *Feed {
	f := &Feed{
		api:       api,
		sanitizer: sanitizer,
		cache:     cache,
		inflight:  make(map[string]struct{}),
	}

	f.pager = pager.New(f.fetchPage, func(n model.Notification) string { return n.ID })

	return f
}

// Warm loads the persisted feed so a restarted process serves state before
// the first network sync. The warm list is dropped as soon as a live page
// lands.
func (f *Feed) Warm(ctx context.Context) error {
	if f.cache == nil {
		return nil
	}

	cached, err := f.cache.LoadNotifications(ctx, pageSize)
	if err != nil {
		return fmt.Errorf("failed to load cached notifications: %w", err)
	}

	unread := 0
	for _, n := range cached {
		if !n.Read {
			unread++
		}
	}

	f.mu.Lock()
	if !f.synced {
		f.warm = cached
		f.unread = unread
	}
	f.mu.Unlock()

	return nil
}

func (f *Feed) fetchPage(ctx context.Context, cursor string) (*model.Page[model.Notification], error) {
	page, err := f.api.GetNotifications(ctx, cursor, pageSize)
	if err != nil {
		return nil, err
	}

	for i := range page.Items {
		page.Items[i].Message = f.sanitizer.HTML(page.Items[i].Message)
	}

	if f.cache != nil {
		_ = f.cache.SaveNotifications(ctx, page.Items)
	}

	f.mu.Lock()
	f.synced = true
	f.warm = nil
	f.mu.Unlock()

	return page, nil
}

func (f *Feed) LoadMore(ctx context.Context) (int, error) {
	return f.pager.Next(ctx)
}

func (f *Feed) Items() model.NotificationList {
	f.mu.Lock()
	if !f.synced && len(f.warm) > 0 {
		out := make(model.NotificationList, len(f.warm))
		copy(out, f.warm)
		f.mu.Unlock()
		return out
	}
	f.mu.Unlock()

	return f.pager.Items()
}

func (f *Feed) HasMore() bool {
	return f.pager.HasMore()
}

func (f *Feed) Empty() bool {
	return f.pager.Empty()
}

func (f *Feed) Reset() {
	f.pager.Reset()
}

func (f *Feed) Unread() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.unread
}

func (f *Feed) SyncUnread(ctx context.Context) error {
	count, err := f.api.GetUnreadNotificationCount(ctx)
	if err != nil {
		return fmt.Errorf("failed to sync unread count: %w", err)
	}

	f.mu.Lock()
	f.unread = count
	f.mu.Unlock()

	return nil
}

// MarkRead flips the cached notification to read before the request
// resolves. On failure the pre-mutation value is restored; either way the
// canonical unread count is refetched afterwards to absorb drift.
func (f *Feed) MarkRead(ctx context.Context, notificationID string) error {
	f.mu.Lock()
	if _, busy := f.inflight[notificationID]; busy {
		f.mu.Unlock()
		return nil
	}
	f.inflight[notificationID] = struct{}{}
	f.mu.Unlock()

	defer func() {
		f.mu.Lock()
		delete(f.inflight, notificationID)
		f.mu.Unlock()
	}()

	var prev *bool
	f.pager.Patch(func(n *model.Notification) {
		if n.ID == notificationID && prev == nil {
			wasRead := n.Read
			prev = &wasRead
			n.Read = true
		}
	})

	patched := prev != nil && !*prev
	if patched {
		f.mu.Lock()
		if f.unread > 0 {
			f.unread--
		}
		f.mu.Unlock()
	}

	err := f.api.MarkNotificationRead(ctx, notificationID)
	if err != nil && patched {
		f.pager.Patch(func(n *model.Notification) {
			if n.ID == notificationID {
				n.Read = *prev
			}
		})

		f.mu.Lock()
		f.unread++
		f.mu.Unlock()
	}

	f.settle(ctx)

	if err != nil {
		return fmt.Errorf("failed to mark notification read: %w", err)
	}

	return nil
}

// MarkAllRead applies the same optimistic pattern across the whole cached
// feed, remembering exactly which entries it flipped. A second call while
// one is in flight is a no-op.
func (f *Feed) MarkAllRead(ctx context.Context) error {
	f.mu.Lock()
	if f.markingAll {
		f.mu.Unlock()
		return nil
	}
	f.markingAll = true
	f.mu.Unlock()

	defer func() {
		f.mu.Lock()
		f.markingAll = false
		f.mu.Unlock()
	}()

	flipped := make(map[string]struct{})
	f.pager.Patch(func(n *model.Notification) {
		if !n.Read {
			flipped[n.ID] = struct{}{}
			n.Read = true
		}
	})

	f.mu.Lock()
	prevUnread := f.unread
	f.unread = 0
	f.mu.Unlock()

	err := f.api.MarkAllNotificationsRead(ctx)
	if err != nil {
		f.pager.Patch(func(n *model.Notification) {
			if _, was := flipped[n.ID]; was {
				n.Read = false
			}
		})

		f.mu.Lock()
		f.unread = prevUnread
		f.mu.Unlock()
	}

	f.settle(ctx)

	if err != nil {
		return fmt.Errorf("failed to mark all notifications read: %w", err)
	}

	return nil
}

// settle refetches the canonical unread count after a mutation, success or
// not. A failed settle keeps the optimistic value; the next sync corrects
// it.
func (f *Feed) settle(ctx context.Context) {
	count, err := f.api.GetUnreadNotificationCount(ctx)
	if err != nil {
		return
	}

	f.mu.Lock()
	f.unread = count
	f.mu.Unlock()
}
