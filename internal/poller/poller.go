package poller

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
)

// DataSync определяет один шаг синхронизации с удаленным API
type DataSync interface {
	PollTick(ctx context.Context) (int, error)
}

// Poller - периодическая фоновая задача, подтягивающая новые записи.
// Тики идут строго последовательно в одной горутине; остановка - через
// отмену контекста, переданного в Start.
type Poller struct {
	sync     DataSync
	interval time.Duration
	logger   *logrus.Logger
}

// New создает poller с заданным интервалом опроса
func New(sync DataSync, interval time.Duration, logger *logrus.Logger) *Poller {
	return &Poller{
		sync:     sync,
		interval: interval,
		logger:   logger,
	}
}

// Start запускает горутину опроса. Ошибки тика только логируются:
// следующий тик придет по расписанию, отдельных повторов и backoff нет.
func (p *Poller) Start(ctx context.Context) {
	p.logger.WithField("interval", p.interval.String()).Info("Starting crime data poller...")
	go func() {
		ticker := time.NewTicker(p.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				p.logger.Info("Stopping crime data poller.")
				return
			case <-ticker.C:
				added, err := p.sync.PollTick(ctx)
				if err != nil {
					p.logger.WithError(err).Error("Poll tick failed")
					continue
				}
				if added > 0 {
					p.logger.WithField("count", added).Info("Poll tick merged new records")
				} else {
					p.logger.Debug("Poll tick returned no new records")
				}
			}
		}
	}()
}
