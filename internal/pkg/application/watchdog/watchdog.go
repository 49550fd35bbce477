package watchdog

import (
	"context"
	"time"

	"github.com/dotmac-isp/noc-alarm-mgmt/internal/pkg/application/alarms"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
)

// Watchdog periodically reactivates alarms whose suppression has expired.
// Suppression never ends on its own otherwise; this sweep is the only path
// back from suppressed to active.
type Watchdog interface {
	Start(ctx context.Context)
	Stop(ctx context.Context)
}

type watchdogImpl struct {
	alarmSvc alarms.AlarmService
	interval time.Duration
	done     chan bool
}

func New(svc alarms.AlarmService, interval time.Duration) Watchdog {
	if interval <= 0 {
		interval = time.Minute
	}

	return &watchdogImpl{
		alarmSvc: svc,
		interval: interval,
		done:     make(chan bool),
	}
}

func (w *watchdogImpl) Start(ctx context.Context) {
	go w.run(ctx)
}

func (w *watchdogImpl) Stop(ctx context.Context) {
	w.done <- true
}

func (w *watchdogImpl) run(ctx context.Context) {
	log := logging.GetFromContext(ctx)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.done:
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
			count, err := w.alarmSvc.ReactivateExpired(ctx)
			if err != nil {
				log.Error("suppression sweep failed", "err", err.Error())
				continue
			}
			if count > 0 {
				log.Info("reactivated alarms with expired suppression", "count", count)
			}
		}
	}
}
