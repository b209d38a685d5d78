// Command simrt is the simulated execution runtime. It accepts envelopes
// over HTTP or the event socket, replays the standard task lifecycle for
// each one, and pushes NDJSON event frames to every connected watcher.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"mindcraftce.ai/internal/envelope"
	"mindcraftce.ai/internal/runtime"
)

func main() {
	var (
		addr    = flag.String("addr", ":9300", "http listen address")
		steps   = flag.Int("steps", 3, "progress events per envelope")
		delayMs = flag.Int("delay_ms", 250, "delay before each lifecycle event (ms)")
	)
	flag.Parse()

	logger := log.New(os.Stdout, "[simrt] ", log.LstdFlags|log.Lmicroseconds)

	hub := newHub(logger)
	sim := runtime.NewSimulator(runtime.SimulatorConfig{
		Steps: *steps,
		Delay: time.Duration(*delayMs) * time.Millisecond,
	}, hub.broadcastEvent)

	mux := http.NewServeMux()
	mux.HandleFunc("/v1/events", hub.handleEvents(sim))
	mux.HandleFunc("/v1/submit", handleSubmit(sim, logger))
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	srv := &http.Server{Addr: *addr, Handler: mux}
	go func() {
		logger.Printf("listening on %s", *addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("listen: %v", err)
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	logger.Printf("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctx)
	_ = sim.Close()
	hub.close()
}

// handleSubmit accepts either the textual wire command or bare envelope
// JSON and starts the simulated lifecycle.
func handleSubmit(sim *runtime.Simulator, logger *log.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "POST only", http.StatusMethodNotAllowed)
			return
		}
		body, err := io.ReadAll(io.LimitReader(r.Body, 1<<20))
		if err != nil {
			http.Error(w, "read body", http.StatusBadRequest)
			return
		}
		env, err := envelope.ParseWireCommand(string(body))
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if strings.TrimSpace(env.Action) == "" {
			http.Error(w, "envelope has no action", http.StatusBadRequest)
			return
		}
		if err := sim.Submit(r.Context(), env); err != nil {
			http.Error(w, err.Error(), http.StatusServiceUnavailable)
			return
		}
		logger.Printf("accepted envelope %s action=%s", env.ID(), env.Action)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{"ok": true, "envelopeId": env.ID()})
	}
}
