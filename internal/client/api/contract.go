//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go
package api

import "context"

// TokenStore is the persisted credential state shared with the local cache.
type TokenStore interface {
	Tokens(ctx context.Context) (access string, refresh string, err error)
	SaveTokens(ctx context.Context, access, refresh string) error
}
