package runtime

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"sync"
	"time"

	"mindcraftce.ai/internal/envelope"
)

// Simulator stands in for a live runtime when none is configured. Every
// envelope replays the standard lifecycle as stream payloads: accepted, a
// fixed number of progress events, then complete. Cancelling the submit
// context or closing the simulator turns the tail into task_cancelled.
type Simulator struct {
	sink  func([]byte)
	steps int
	delay time.Duration

	wg        sync.WaitGroup
	closeOnce sync.Once
	stop      chan struct{}
}

// SimulatorConfig tunes the replayed lifecycle.
type SimulatorConfig struct {
	// Steps is the number of progress events per envelope. Zero means 3.
	Steps int
	// Delay is the pause before each event after task_accepted.
	Delay time.Duration
}

// NewSimulator feeds lifecycle payloads to sink, one JSON event per call.
// Wiring sink to a Dispatcher's Ingest exercises the whole receive path.
func NewSimulator(cfg SimulatorConfig, sink func([]byte)) *Simulator {
	if cfg.Steps <= 0 {
		cfg.Steps = 3
	}
	return &Simulator{
		sink:  sink,
		steps: cfg.Steps,
		delay: cfg.Delay,
		stop:  make(chan struct{}),
	}
}

// NewSimulated wires a dispatcher to an in-process simulator. The returned
// dispatcher owns the simulator; Close cancels whatever is still running.
func NewSimulated(cfg SimulatorConfig, logger *log.Logger) *Dispatcher {
	d := NewDispatcher(nil, logger)
	d.client = NewSimulator(cfg, d.Ingest)
	return d
}

// Submit starts the lifecycle for env and returns immediately.
func (s *Simulator) Submit(ctx context.Context, env envelope.Envelope) error {
	select {
	case <-s.stop:
		return errors.New("simulator closed")
	default:
	}
	id := env.ID()
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.emit(Event{Type: EventAccepted, EnvelopeID: id})
		for i := 1; i <= s.steps; i++ {
			if !s.pause(ctx) {
				s.emit(Event{Type: EventCancelled, EnvelopeID: id})
				return
			}
			s.emit(Event{Type: EventProgress, EnvelopeID: id, Progress: float64(i) / float64(s.steps)})
		}
		if !s.pause(ctx) {
			s.emit(Event{Type: EventCancelled, EnvelopeID: id})
			return
		}
		s.emit(Event{Type: EventComplete, EnvelopeID: id})
	}()
	return nil
}

// Wait blocks until every in-flight envelope has finished its lifecycle.
func (s *Simulator) Wait() { s.wg.Wait() }

// Close cancels in-flight envelopes and waits them out.
func (s *Simulator) Close() error {
	s.closeOnce.Do(func() {
		close(s.stop)
		s.wg.Wait()
	})
	return nil
}

func (s *Simulator) pause(ctx context.Context) bool {
	if s.delay <= 0 {
		select {
		case <-ctx.Done():
			return false
		case <-s.stop:
			return false
		default:
			return true
		}
	}
	t := time.NewTimer(s.delay)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-s.stop:
		return false
	case <-t.C:
		return true
	}
}

func (s *Simulator) emit(ev Event) {
	if s.sink == nil {
		return
	}
	b, err := json.Marshal(ev)
	if err != nil {
		return
	}
	s.sink(b)
}
