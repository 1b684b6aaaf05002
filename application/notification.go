package application

import (
	"context"
	"time"

	"go.uber.org/zap"

	"payout-gateway/domain/entities/payout"
	"payout-gateway/utils/telegram"
)

const notifyTimeout = 30 * time.Second

// notifyTransfer reports a successful payout to the configured channel on the
// pool, so Transfer returns without waiting for Telegram. Failures are logged
// only; the payout itself already went through.
func (us *PayoutApplication) notifyTransfer(req payout.TransferReq, res payout.TransferRes) {
	if us.INotifier == nil {
		return
	}
	now := time.Now
	if us.Now != nil {
		now = us.Now
	}
	message := telegram.SendPayoutInfo(req, res, now())
	logs := us.Logger.With(zap.String("payout_ref", res.PayoutRef))

	task := func() {
		defer us.notifications.Done()
		// the caller's context may end as soon as Transfer returns
		ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
		defer cancel()
		if err := us.INotifier.Send(ctx, message); err != nil {
			logs.With(zap.Error(err)).Warn("payout notification failed")
		}
	}

	us.notifications.Add(1)
	if us.IPool == nil {
		go task()
		return
	}
	if err := us.IPool.Submit(task); err != nil {
		us.notifications.Done()
		logs.With(zap.Error(err)).Warn("payout notification not scheduled")
	}
}

// WaitNotifications blocks until every scheduled notification has finished.
// Call it before releasing the pool or exiting.
func (us *PayoutApplication) WaitNotifications() {
	us.notifications.Wait()
}
