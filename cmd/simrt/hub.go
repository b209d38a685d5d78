package main

import (
	"context"
	"log"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"mindcraftce.ai/internal/envelope"
	"mindcraftce.ai/internal/runtime"
)

// hub fans event frames out to every connected watcher. Each client gets a
// writer goroutine fed by a buffered channel; a client that cannot keep up
// loses frames rather than stalling the simulator.
type hub struct {
	log      *log.Logger
	upgrader websocket.Upgrader

	mu      sync.Mutex
	clients map[string]chan []byte
	closed  bool
}

func newHub(logger *log.Logger) *hub {
	return &hub{
		log: logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  64 * 1024,
			WriteBufferSize: 64 * 1024,
			CheckOrigin:     func(r *http.Request) bool { return true }, // dev default
		},
		clients: make(map[string]chan []byte),
	}
}

// broadcastEvent wraps one serialized event into a batch frame and queues
// it on every client. Called from simulator goroutines; the mutex keeps the
// per-envelope ordering those goroutines produce.
func (h *hub) broadcastEvent(ev []byte) {
	frame := append([]byte(`{"events":[`), ev...)
	frame = append(frame, ']', '}', '\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	for id, ch := range h.clients {
		select {
		case ch <- frame:
		default:
			h.log.Printf("client %s lagging, dropping frame", id)
		}
	}
}

func (h *hub) add(id string) chan []byte {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return nil
	}
	ch := make(chan []byte, 64)
	h.clients[id] = ch
	return ch
}

func (h *hub) remove(id string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if ch, ok := h.clients[id]; ok {
		delete(h.clients, id)
		close(ch)
	}
}

func (h *hub) close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.closed = true
	for id, ch := range h.clients {
		delete(h.clients, id)
		close(ch)
	}
}

// handleEvents upgrades the connection, streams frames out, and accepts
// wire commands sent over the socket as an alternative intake.
func (h *hub) handleEvents(sim *runtime.Simulator) http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		conn, err := h.upgrader.Upgrade(rw, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()

		id := uuid.NewString()
		out := h.add(id)
		if out == nil {
			return
		}
		defer h.remove(id)
		h.log.Printf("client %s connected from %s", id, r.RemoteAddr)

		ctx, cancel := context.WithCancel(r.Context())
		defer cancel()

		// Writer goroutine.
		go func() {
			for {
				select {
				case <-ctx.Done():
					return
				case b, ok := <-out:
					if !ok {
						return
					}
					_ = conn.SetWriteDeadline(time.Now().Add(5 * time.Second))
					if err := conn.WriteMessage(websocket.TextMessage, b); err != nil {
						cancel()
						return
					}
				}
			}
		}()

		// Reader loop: wire commands in, anything else ignored.
		for {
			_, msg, err := conn.ReadMessage()
			if err != nil {
				cancel()
				return
			}
			text := strings.TrimSpace(string(msg))
			if text == "" {
				continue
			}
			env, err := envelope.ParseWireCommand(text)
			if err != nil || strings.TrimSpace(env.Action) == "" {
				continue
			}
			if err := sim.Submit(ctx, env); err != nil {
				h.log.Printf("client %s submit: %v", id, err)
				continue
			}
			h.log.Printf("client %s submitted envelope %s action=%s", id, env.ID(), env.Action)
		}
	}
}
