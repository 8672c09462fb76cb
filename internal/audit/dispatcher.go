package audit

import (
	"context"
	"sync"

	"github.com/rs/zerolog/log"
)

type Event struct {
	BarbeariaID *int64
	UserID      int64
	Action      string
	Entity      string
	EntityID    *int64
	Metadata    any
	RequestID   string
}

// Writer persiste um evento
type Writer interface {
	Log(ctx context.Context, ev Event) error
}

type Dispatcher struct {
	writer Writer
	queue  chan Event
	wg     sync.WaitGroup
	once   sync.Once

	// mu protege closed; Dispatch segura a leitura enquanto envia
	mu     sync.RWMutex
	closed bool
}

func NewDispatcher(writer Writer) *Dispatcher {
	d := &Dispatcher{
		writer: writer,
		queue:  make(chan Event, 100), // buffer seguro
	}

	d.wg.Add(1)
	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer d.wg.Done()
	for ev := range d.queue {
		if err := d.writer.Log(context.Background(), ev); err != nil {
			log.Warn().Err(err).Str("action", ev.Action).Msg("audit error")
		}
	}
}

// Dispatch nunca bloqueia; nil desativa a auditoria.
// Após Close o evento é descartado.
func (d *Dispatcher) Dispatch(ev Event) {
	if d == nil {
		return
	}

	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.closed {
		log.Warn().Str("action", ev.Action).Msg("audit dispatcher closed, dropping event")
		return
	}

	select {
	case d.queue <- ev:
		// enviado
	default:
		// fila cheia → descartamos audit (nunca quebrar API)
		log.Warn().Str("action", ev.Action).Msg("audit queue full, dropping event")
	}
}

// Close drena a fila e espera o worker
func (d *Dispatcher) Close() {
	if d == nil {
		return
	}
	d.once.Do(func() {
		d.mu.Lock()
		d.closed = true
		close(d.queue)
		d.mu.Unlock()

		d.wg.Wait()
	})
}
