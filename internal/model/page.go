package model

// Page wraps one cursor-paginated result. NextCursor is opaque to the
// client (an id or a timestamp, the server decides); once HasMore is false
// no further page exists until the list is reset.
type Page[T any] struct {
	Items      []T    `json:"items"`
	NextCursor string `json:"next_cursor"`
	HasMore    bool   `json:"has_more"`
}

type Referral struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Earnings string `json:"earnings"`
	JoinedAt string `json:"joined_at"`
}

type PointsBalance struct {
	Points         int64  `json:"points"`
	ConversionRate string `json:"conversion_rate"`
	WalletCurrency string `json:"wallet_currency"`
}
