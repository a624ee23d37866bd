// Package referrals keeps the paginated referral list and the cached points
// balance for the signed-in creator.
package referrals

import (
	"context"
	"fmt"
	"sync"

	"github.com/lumeapp/sync-client/internal/model"
	"github.com/lumeapp/sync-client/internal/pager"
)

const pageSize = 25

type List struct {
	api   API
	pager *pager.Pager[model.Referral]

	mu      sync.Mutex
	balance *model.PointsBalance
}

func NewList(api API) *List {
	l := &List{api: api}

	l.pager = pager.New(
		func(ctx context.Context, cursor string) (*model.Page[model.Referral], error) {
			return api.GetReferrals(ctx, cursor, pageSize)
		},
		func(r model.Referral) string { return r.ID },
	)

	return l
}

func (l *List) LoadMore(ctx context.Context) (int, error) {
	return l.pager.Next(ctx)
}

func (l *List) Items() []model.Referral {
	return l.pager.Items()
}

func (l *List) HasMore() bool {
	return l.pager.HasMore()
}

func (l *List) Empty() bool {
	return l.pager.Empty()
}

func (l *List) Reset() {
	l.pager.Reset()
}

// SyncBalance refetches the points balance. The previous value is kept when
// the request fails.
func (l *List) SyncBalance(ctx context.Context) error {
	balance, err := l.api.GetPointsBalance(ctx)
	if err != nil {
		return fmt.Errorf("failed to sync points balance: %w", err)
	}

	l.mu.Lock()
	l.balance = balance
	l.mu.Unlock()

	return nil
}

func (l *List) Balance() *model.PointsBalance {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.balance
}
