package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/viney-shih/goroutines"

	"github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/base/log"
	"github.com/x-xyz/goauction/base/metrics"
	"github.com/x-xyz/goauction/domain/auction"
)

const scheduleTimeout = time.Second

var met = metrics.New("event")

// Handler consumes committed auction events.
type Handler interface {
	Name() string
	Handle(c ctx.Ctx, ev auction.Event) error
}

// Dispatcher fans events out to handlers on a worker pool so slow handlers
// never hold the auction lock.
type Dispatcher struct {
	handlers []Handler
	pool     *goroutines.Pool
}

func NewDispatcher(workers int, handlers ...Handler) *Dispatcher {
	return &Dispatcher{
		handlers: handlers,
		pool:     goroutines.NewPool(workers, goroutines.WithTaskQueueLength(1024)),
	}
}

func (d *Dispatcher) Emit(c ctx.Ctx, ev auction.Event) {
	if ev.Id == "" {
		ev.Id = uuid.NewString()
	}
	// handlers outlive the request
	dc := ctx.From(c, context.Background())
	for _, h := range d.handlers {
		h := h
		err := d.pool.ScheduleWithTimeout(scheduleTimeout, func() {
			defer met.BumpTime("handle.time", "handler", h.Name()).End()
			if err := h.Handle(dc, ev); err != nil {
				met.BumpSum("handle.err", 1, "handler", h.Name())
				dc.WithFields(log.Fields{
					"err":     err,
					"handler": h.Name(),
					"event":   ev.Type,
				}).Error("event handler failed")
			}
		})
		if err != nil {
			met.BumpSum("schedule.err", 1, "handler", h.Name())
			c.WithFields(log.Fields{
				"err":     err,
				"handler": h.Name(),
				"event":   ev.Type,
			}).Warn("event dropped")
		}
	}
}

// Close waits for queued events and stops the workers.
func (d *Dispatcher) Close() {
	d.pool.Release()
}
