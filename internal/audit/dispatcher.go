package audit

import (
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Event struct {
	OwnerID  uuid.UUID
	Action   string
	Entity   string
	EntityID string
	Metadata any
}

// Sink receives audit events; *Logger is the database-backed one.
type Sink interface {
	Log(ownerID uuid.UUID, action, entity, entityID string, metadata any) error
}

// Dispatcher writes audit events off the request path through a buffered
// channel. A full queue drops the event: audit must never break the API.
type Dispatcher struct {
	sink  Sink
	log   *zap.Logger
	queue chan Event
}

func NewDispatcher(sink Sink, log *zap.Logger) *Dispatcher {
	d := &Dispatcher{
		sink:  sink,
		log:   log,
		queue: make(chan Event, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		if err := d.sink.Log(
			ev.OwnerID,
			ev.Action,
			ev.Entity,
			ev.EntityID,
			ev.Metadata,
		); err != nil {
			d.log.Warn("audit write failed",
				zap.String("action", ev.Action),
				zap.Error(err),
			)
		}
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
	default:
		d.log.Warn("audit queue full, dropping event",
			zap.String("action", ev.Action),
		)
	}
}
