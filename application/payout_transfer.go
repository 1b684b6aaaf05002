package application

import (
	"context"

	"go.uber.org/zap"

	"payout-gateway/domain/entities/payout"
	errs "payout-gateway/errors"
)

// Transfer sends one payout. Input is validated before anything goes over
// the wire; a refused payout comes back as *errors.GatewayError.
func (us *PayoutApplication) Transfer(ctx context.Context, req payout.TransferReq) (payout.TransferRes, error) {
	body, err := req.Normalize()
	if err != nil {
		return payout.TransferRes{}, err
	}

	logs := us.Logger.With(zap.String("ref1", body.Ref1), zap.String("bankcode", body.BankCode))

	inner, err := us.PayoutRepository.Transfer(ctx, body)
	if err != nil {
		logs.With(zap.Error(err)).Error("payout transfer failed")
		return payout.TransferRes{}, err
	}

	res, err := inner.Validate()
	if err != nil {
		if status, ok := errs.IsGatewayStatus(err); ok {
			logs.Warn("payout refused", zap.Int32("status", status.Code()), zap.String("reason", status.Describe()))
		} else {
			logs.With(zap.Error(err)).Error("payout response malformed")
		}
		return payout.TransferRes{}, err
	}

	logs.Info("payout success", zap.String("payout_ref", res.PayoutRef), zap.String("transaction_id", res.TransactionID))
	us.notifyTransfer(req, res)
	return res, nil
}
