//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go
package support

import (
	"github.com/lumeapp/sync-client/internal/socket"
)

type EventRouter interface {
	Subscribe(op string, h socket.Handler) func()
	Emit(op string, data any) error
}

type Sanitizer interface {
	HTML(raw string) string
}
