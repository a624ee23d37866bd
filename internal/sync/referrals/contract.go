//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go
package referrals

import (
	"context"

	"github.com/lumeapp/sync-client/internal/model"
)

type API interface {
	GetReferrals(ctx context.Context, cursor string, limit int) (*model.Page[model.Referral], error)
	GetPointsBalance(ctx context.Context) (*model.PointsBalance, error)
}
