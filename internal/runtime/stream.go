package runtime

import (
	"errors"
	"log"
	"os"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// EnvEventsURL points the stream at the runtime's event socket.
const EnvEventsURL = "MINDCRAFT_CE_EVENTS_URL"

// DefaultReconnect is the fixed delay between dial attempts.
const DefaultReconnect = 5 * time.Second

// StreamConfig configures the event stream consumer.
type StreamConfig struct {
	// URL of the event socket. Empty falls back to MINDCRAFT_CE_EVENTS_URL.
	URL string
	// Reconnect is the fixed delay between dial attempts. Zero means
	// DefaultReconnect.
	Reconnect time.Duration
}

// StreamStatus is a point-in-time snapshot of the consumer.
type StreamStatus struct {
	URL       string
	Connected bool
	LastError string
}

// Stream consumes the runtime's event socket and feeds every payload to
// the dispatcher. It reconnects forever on a fixed delay until closed.
type Stream struct {
	cfg StreamConfig
	d   *Dispatcher
	log *log.Logger

	startOnce sync.Once
	closeOnce sync.Once
	stop      chan struct{}
	done      chan struct{}

	mu        sync.Mutex
	started   bool
	conn      *websocket.Conn
	connected bool
	lastErr   string
}

func NewStream(cfg StreamConfig, d *Dispatcher, logger *log.Logger) *Stream {
	if cfg.URL == "" {
		cfg.URL = os.Getenv(EnvEventsURL)
	}
	if cfg.Reconnect <= 0 {
		cfg.Reconnect = DefaultReconnect
	}
	if logger == nil {
		logger = log.New(os.Stdout, "[events] ", log.LstdFlags|log.Lmicroseconds)
	}
	return &Stream{
		cfg:  cfg,
		d:    d,
		log:  logger,
		stop: make(chan struct{}),
		done: make(chan struct{}),
	}
}

// Start launches the read loop. Calling it twice is a no-op.
func (s *Stream) Start() error {
	if s.cfg.URL == "" {
		return errors.New("no event stream url configured")
	}
	s.startOnce.Do(func() {
		s.mu.Lock()
		s.started = true
		s.mu.Unlock()
		go s.run()
	})
	return nil
}

// Close stops reconnecting and tears down any live connection.
func (s *Stream) Close() {
	s.closeOnce.Do(func() {
		close(s.stop)
		// Wake a blocking ReadMessage promptly.
		s.disconnect()
		s.mu.Lock()
		started := s.started
		s.mu.Unlock()
		if started {
			<-s.done
		}
	})
}

func (s *Stream) disconnect() {
	s.mu.Lock()
	c := s.conn
	s.conn = nil
	s.connected = false
	s.mu.Unlock()
	if c != nil {
		_ = c.Close()
	}
}

// Status reports the consumer's connection state.
func (s *Stream) Status() StreamStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	return StreamStatus{URL: s.cfg.URL, Connected: s.connected, LastError: s.lastErr}
}

func (s *Stream) run() {
	defer close(s.done)
	for {
		select {
		case <-s.stop:
			s.disconnect()
			return
		default:
		}

		if err := s.connectAndRead(); err != nil {
			s.mu.Lock()
			s.connected = false
			s.lastErr = err.Error()
			s.mu.Unlock()
			s.d.ReportError(err)
			select {
			case <-s.stop:
				s.disconnect()
				return
			case <-time.After(s.cfg.Reconnect):
			}
			continue
		}
		// Clean exit.
		return
	}
}

func (s *Stream) connectAndRead() error {
	d := websocket.Dialer{HandshakeTimeout: 5 * time.Second}
	conn, resp, err := d.Dial(s.cfg.URL, nil)
	if err != nil {
		return err
	}
	if resp != nil && resp.Body != nil {
		_ = resp.Body.Close()
	}

	s.mu.Lock()
	s.conn = conn
	s.connected = true
	s.lastErr = ""
	s.mu.Unlock()
	s.log.Printf("connected to %s", s.cfg.URL)

	for {
		select {
		case <-s.stop:
			_ = conn.Close()
			return nil
		default:
		}

		_, msg, err := conn.ReadMessage()
		if err != nil {
			_ = conn.Close()
			select {
			case <-s.stop:
				return nil
			default:
			}
			return err
		}
		s.d.Ingest(msg)
	}
}
