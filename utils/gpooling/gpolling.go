package gpooling

import (
	"github.com/panjf2000/ants/v2"
	"go.uber.org/zap"
)

// Pool - pooling struct
type Pool struct {
	antsPool *ants.Pool
}

// IPool - pooling interface
type IPool interface {
	Submit(task func()) error
	Release()
	Running() int
}

// NewPooling - init a blocking pool; panics inside tasks are logged, not propagated
func NewPooling(maxPoolSize int, lg *zap.Logger) (*Pool, error) {
	if lg == nil {
		lg = zap.NewNop()
	}
	pool, err := ants.NewPool(maxPoolSize, ants.WithNonblocking(false), ants.WithPanicHandler(func(data interface{}) {
		lg.With(zap.Any("err-data-pool", data)).Error("err pool")
	}))
	if err != nil {
		return nil, err
	}
	return &Pool{
		antsPool: pool,
	}, nil
}

// Release - release all gorotine
func (p *Pool) Release() {
	p.antsPool.Release()
}

// Running - returns the number of the currently running goroutines.
func (p *Pool) Running() int {
	return p.antsPool.Running()
}

// Submit - submit a task to this pool
func (p *Pool) Submit(task func()) error {
	return p.antsPool.Submit(task)
}
