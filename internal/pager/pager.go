// Package pager implements the cursor-based load-more controller shared by
// the notification feed, comment replies, thread history and referral lists.
package pager

import (
	"context"
	"sync"

	"github.com/lumeapp/sync-client/internal/model"
)

type Fetch[T any] func(ctx context.Context, cursor string) (*model.Page[T], error)

type Pager[T any] struct {
	fetch Fetch[T]
	keyOf func(T) string

	mu         sync.Mutex
	items      []T
	seen       map[string]struct{}
	cursor     string
	hasMore    bool
	loading    bool
	loadedOnce bool
}

func New[T any](fetch Fetch[T], keyOf func(T) string) *Pager[T] {
	return &Pager[T]{
		fetch:   fetch,
		keyOf:   keyOf,
		seen:    make(map[string]struct{}),
		hasMore: true,
	}
}

// Next loads one more page. It is a no-op while a fetch is in flight or
// after the final page: the loading flag is a semaphore of cardinality one,
// and hasMore=false is terminal until Reset.
func (p *Pager[T]) Next(ctx context.Context) (int, error) {
	p.mu.Lock()
	if p.loading || !p.hasMore {
		p.mu.Unlock()
		return 0, nil
	}
	p.loading = true
	cursor := p.cursor
	p.mu.Unlock()

	page, err := p.fetch(ctx, cursor)

	p.mu.Lock()
	defer p.mu.Unlock()
	p.loading = false

	if err != nil {
		return 0, err
	}

	p.loadedOnce = true
	p.cursor = page.NextCursor
	p.hasMore = page.HasMore

	// An empty page terminates the list regardless of the server flag.
	if len(page.Items) == 0 {
		p.hasMore = false
		return 0, nil
	}

	added := 0
	for _, item := range page.Items {
		key := p.keyOf(item)
		if _, dup := p.seen[key]; dup {
			continue
		}
		p.seen[key] = struct{}{}
		p.items = append(p.items, item)
		added++
	}

	return added, nil
}

func (p *Pager[T]) Items() []T {
	p.mu.Lock()
	defer p.mu.Unlock()

	out := make([]T, len(p.items))
	copy(out, p.items)
	return out
}

func (p *Pager[T]) HasMore() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.hasMore
}

func (p *Pager[T]) Loading() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.loading
}

// Empty distinguishes a confirmed empty list from one not yet loaded.
func (p *Pager[T]) Empty() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.loadedOnce && len(p.items) == 0
}

func (p *Pager[T]) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.items = nil
	p.seen = make(map[string]struct{})
	p.cursor = ""
	p.hasMore = true
	p.loadedOnce = false
}

// Patch applies fn to every held item in place, under the pager lock. The
// optimistic mutation services use it for forward patches and rollbacks.
func (p *Pager[T]) Patch(fn func(*T)) {
	p.mu.Lock()
	defer p.mu.Unlock()

	for i := range p.items {
		fn(&p.items[i])
	}
}
