package application

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"payout-gateway/domain/entities/payout"
	errs "payout-gateway/errors"
)

// QueryOutcome is the result of one inquiry in a batch.
type QueryOutcome struct {
	Ref1   string
	Result payout.QueryRes
	Err    error
}

func (us *PayoutApplication) Query(ctx context.Context, req payout.QueryReq) (payout.QueryRes, error) {
	body, err := req.Normalize()
	if err != nil {
		return payout.QueryRes{}, err
	}

	logs := us.Logger.With(zap.String("ref1", body.Ref1))

	inner, err := us.PayoutRepository.Query(ctx, body)
	if err != nil {
		logs.With(zap.Error(err)).Error("payout inquiry failed")
		return payout.QueryRes{}, err
	}

	res, err := inner.Validate()
	if err != nil {
		if status, ok := errs.IsGatewayStatus(err); ok {
			logs.Info("payout inquiry status", zap.Int32("status", status.Code()), zap.String("reason", status.Describe()))
		} else {
			logs.With(zap.Error(err)).Error("payout inquiry response malformed")
		}
		return payout.QueryRes{}, err
	}
	return res, nil
}

// QueryMany runs the inquiries on the goroutine pool. Outcomes keep the
// order of reqs; one failing inquiry does not stop the others.
func (us *PayoutApplication) QueryMany(ctx context.Context, reqs []payout.QueryReq) []QueryOutcome {
	outcomes := make([]QueryOutcome, len(reqs))
	var wg sync.WaitGroup

	for i, req := range reqs {
		i, req := i, req
		outcomes[i].Ref1 = req.Ref1

		task := func() {
			defer wg.Done()
			outcomes[i].Result, outcomes[i].Err = us.Query(ctx, req)
		}

		wg.Add(1)
		if us.IPool == nil {
			go task()
			continue
		}
		if err := us.IPool.Submit(task); err != nil {
			wg.Done()
			outcomes[i].Err = err
		}
	}

	wg.Wait()
	return outcomes
}
