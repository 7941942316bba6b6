package audit

import "go.uber.org/zap"

type Event struct {
	WorkspaceID string
	UserID      string
	Action      string
	Entity      string
	EntityID    string
	Details     any
}

// Sink receives the events the dispatcher drains. The gorm-backed Logger is
// the production sink.
type Sink interface {
	Log(workspaceID, userID, action, entity, entityID string, details any) error
}

// Dispatcher writes audit events off the request path. Events are dropped
// when the queue is full; audit must never break an API action.
type Dispatcher struct {
	logger Sink
	log    *zap.Logger
	queue  chan Event
}

func NewDispatcher(logger Sink, log *zap.Logger) *Dispatcher {
	d := &Dispatcher{
		logger: logger,
		log:    log,
		queue:  make(chan Event, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		if err := d.logger.Log(
			ev.WorkspaceID,
			ev.UserID,
			ev.Action,
			ev.Entity,
			ev.EntityID,
			ev.Details,
		); err != nil {
			d.log.Error("audit write failed",
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
