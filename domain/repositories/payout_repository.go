package repositories

import (
	"context"

	"payout-gateway/domain/entities/payout"
)

// PayoutRepository moves wire documents to and from the payout gateway.
// Implementations report only transport failures; gateway status codes are
// left in the returned document for the validators.
type PayoutRepository interface {
	Transfer(ctx context.Context, body payout.TransferReqInner) (payout.TransferResInner, error)
	Query(ctx context.Context, body payout.QueryReq) (payout.QueryResInner, error)
}

type INotifier interface {
	Send(ctx context.Context, message string) error
}
