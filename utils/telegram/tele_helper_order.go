package telegram

import (
	"fmt"
	"time"

	"payout-gateway/domain/entities/payout"
	"payout-gateway/utils/helpers"
)

func SendPayoutInfo(req payout.TransferReq, res payout.TransferRes, now time.Time) string {
	return fmt.Sprintf(`
PAYOUT SUCCESS
Payout ref: %v
Transaction: %v
Bank: %v (%v)
Account name: %v
Mobile: %v
Amount: %v
Ref1: %v
By: %v
Time: %v
`,
		res.PayoutRef,
		res.TransactionID,
		req.Bank.Acronym(),
		req.BankAcc,
		req.AccName,
		req.MobileNo,
		helpers.FormatTHB(req.Amount),
		req.Ref1,
		req.TransactionBy,
		helpers.FormatTime(res.TransactionDateTime, now),
	)
}
