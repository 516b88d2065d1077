package audit

import (
	"context"
	"sync"

	"github.com/rs/zerolog/log"
)

const (
	ActionCreate = "create"
	ActionUpdate = "update"
	ActionDelete = "delete"
	ActionUpload = "upload"
	ActionLogin  = "login"
)

type Event struct {
	UserID   *uint
	Username string
	Action   string
	Entity   string
	EntityID *uint
	Metadata any
}

type Recorder interface {
	Dispatch(ev Event)
}

type Dispatcher struct {
	logger *Logger
	queue  chan Event
	wg     sync.WaitGroup
	once   sync.Once
}

func NewDispatcher(logger *Logger) *Dispatcher {
	d := &Dispatcher{
		logger: logger,
		queue:  make(chan Event, 100),
	}

	d.wg.Add(1)
	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer d.wg.Done()
	for ev := range d.queue {
		if err := d.logger.Log(context.Background(), ev); err != nil {
			log.Error().Err(err).Str("action", ev.Action).Str("entity", ev.Entity).Msg("audit write failed")
		}
	}
}

// Dispatch never blocks the request; a full queue drops the event.
func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
	default:
		log.Warn().Str("action", ev.Action).Str("entity", ev.Entity).Msg("audit queue full, dropping event")
	}
}

// Close stops accepting events and waits until queued ones are written.
func (d *Dispatcher) Close() {
	d.once.Do(func() {
		close(d.queue)
	})
	d.wg.Wait()
}

// Discard is a Recorder that drops every event.
type Discard struct{}

func (Discard) Dispatch(Event) {}
