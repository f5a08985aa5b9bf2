package rating

import (
	"context"

	"github.com/bookmyconsultation/consult-scheduler/internal/logger"
)

// Dispatcher turns rating writes into recompute events. A single worker
// drains the queue, which serializes recomputes and keeps two of them from
// racing to write a stale mean. Dispatch never blocks the caller's rating
// response: when the buffer is full the recompute runs inline instead, so
// every write still gets at least one attempt.
type Dispatcher struct {
	aggregator *Aggregator
	queue      chan uint
}

func NewDispatcher(aggregator *Aggregator, queueSize int) *Dispatcher {
	d := &Dispatcher{
		aggregator: aggregator,
		queue:      make(chan uint, queueSize),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for doctorID := range d.queue {
		if _, err := d.aggregator.Recompute(context.Background(), doctorID); err != nil {
			logger.Log.Error().
				Err(err).
				Uint("doctor_id", doctorID).
				Msg("rating recompute failed")
		}
	}
}

func (d *Dispatcher) Dispatch(doctorID uint) {
	select {
	case d.queue <- doctorID:
	default:
		// queue full: recompute synchronously rather than drop the event
		if _, err := d.aggregator.Recompute(context.Background(), doctorID); err != nil {
			logger.Log.Error().
				Err(err).
				Uint("doctor_id", doctorID).
				Msg("rating recompute failed")
		}
	}
}

func (d *Dispatcher) Close() {
	close(d.queue)
}
