package runtime

import (
	"context"
	"errors"
	"log"
	"os"
	"sync"

	"mindcraftce.ai/internal/envelope"
	"mindcraftce.ai/internal/plan"
)

// Client submits envelopes to an execution runtime.
type Client interface {
	Submit(ctx context.Context, env envelope.Envelope) error
	Close() error
}

// Dispatcher owns the submit path. Every envelope handed to the client is
// observed first; frames coming back off the stream are decoded, enriched
// from the observation table, and fanned out as typed events. A terminal
// event retires its observation.
type Dispatcher struct {
	client Client
	table  *Table
	events *Emitter
	logger *log.Logger

	planMu   sync.Mutex
	planSubs []func(plan.Plan)
}

func NewDispatcher(client Client, logger *log.Logger) *Dispatcher {
	if logger == nil {
		logger = log.New(os.Stdout, "[runtime] ", log.LstdFlags|log.Lmicroseconds)
	}
	return &Dispatcher{
		client: client,
		table:  NewTable(),
		events: NewEmitter(),
		logger: logger,
	}
}

// Events exposes the emitter for subscriptions.
func (d *Dispatcher) Events() *Emitter { return d.events }

// Observations exposes the in-flight table.
func (d *Dispatcher) Observations() *Table { return d.table }

// OnPlan subscribes h to plan frames pushed by the runtime.
func (d *Dispatcher) OnPlan(h func(plan.Plan)) {
	if h == nil {
		return
	}
	d.planMu.Lock()
	d.planSubs = append(d.planSubs, h)
	d.planMu.Unlock()
}

// Submit observes env and hands it to the client. A client failure retires
// the observation and surfaces as the returned error.
func (d *Dispatcher) Submit(ctx context.Context, env envelope.Envelope) error {
	if d.client == nil {
		return errors.New("no runtime client configured")
	}
	d.table.Observe(env)
	if err := d.client.Submit(ctx, env); err != nil {
		d.table.Drop(env.ID())
		return err
	}
	d.logger.Printf("submitted envelope %s action=%s", env.ID(), env.Action)
	return nil
}

// Ingest decodes one stream payload, which may hold several newline-split
// chunks, and routes everything it recognizes.
func (d *Dispatcher) Ingest(data []byte) {
	for _, f := range DecodeFrames(data) {
		for _, ev := range f.Events {
			d.dispatch(ev)
		}
		if f.Plan != nil {
			d.planMu.Lock()
			subs := d.planSubs
			d.planMu.Unlock()
			for _, h := range subs {
				h(*f.Plan)
			}
		}
	}
}

func (d *Dispatcher) dispatch(ev Event) {
	ev = d.table.Enrich(ev)
	d.events.Emit(ev)
	if ev.Type.Terminal() && ev.EnvelopeID != "" {
		d.table.Drop(ev.EnvelopeID)
	}
}

// ReportError surfaces a transport failure as an error event.
func (d *Dispatcher) ReportError(err error) {
	if err == nil {
		return
	}
	d.events.Emit(Event{Type: EventError, Error: err.Error()})
}

func (d *Dispatcher) Close() error {
	if d.client == nil {
		return nil
	}
	return d.client.Close()
}
