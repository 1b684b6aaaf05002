package application

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"payout-gateway/domain/repositories"
	"payout-gateway/infrastructure/service/payout_service"
	"payout-gateway/utils/configs"
	"payout-gateway/utils/gpooling"
	"payout-gateway/utils/telegram"
)

type PayoutApplication struct {
	Config           *configs.Config
	Logger           *zap.Logger
	PayoutRepository repositories.PayoutRepository
	IPool            gpooling.IPool
	// INotifier is nil when no Telegram channel is configured.
	INotifier repositories.INotifier
	Now       func() time.Time

	notifications sync.WaitGroup
}

func NewPayoutApplication(config *configs.Config, logger *zap.Logger, pool gpooling.IPool) (*PayoutApplication, error) {
	repo, err := payout_service.NewRepoImpl(config, logger)
	if err != nil {
		return nil, err
	}

	application := &PayoutApplication{
		Config:           config,
		Logger:           logger,
		PayoutRepository: repo,
		IPool:            pool,
		Now:              time.Now,
	}
	if config.TelegramEnabled() {
		application.INotifier = telegram.NewChannel(config.Telegram.Token, config.Telegram.ChannelID)
	}
	return application, nil
}
