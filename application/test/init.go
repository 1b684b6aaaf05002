package test

import (
	"time"

	"go.uber.org/zap"

	"payout-gateway/application"
	"payout-gateway/domain/repositories/mocks"
	"payout-gateway/utils/configs"
	"payout-gateway/utils/gpooling"
)

var fixedNow = time.Date(2022, 3, 2, 14, 0, 0, 0, time.UTC)

type MockService struct {
	PayoutApplication *application.PayoutApplication
	PayoutRepository  *mocks.PayoutRepository
	Notifier          *mocks.INotifier
	Pool              *gpooling.Pool
}

func NewTestPayoutApplication() *MockService {
	config := &configs.Config{
		ENV:         "DEV",
		BaseURL:     "http://payout.test/",
		APIKey:      "key",
		PartnerCode: "P01",
		Channel:     "WEB",
		MaxPoolSize: 4,
	}

	pool, err := gpooling.NewPooling(config.PoolSize(), nil)
	if err != nil {
		panic(err)
	}

	repo := &mocks.PayoutRepository{}
	notifier := &mocks.INotifier{}

	return &MockService{
		PayoutApplication: &application.PayoutApplication{
			Config:           config,
			Logger:           zap.NewNop(),
			PayoutRepository: repo,
			IPool:            pool,
			INotifier:        notifier,
			Now:              func() time.Time { return fixedNow },
		},
		PayoutRepository: repo,
		Notifier:         notifier,
		Pool:             pool,
	}
}
