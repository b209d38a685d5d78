// Package journal records planning activity on disk: compressed JSONL
// streams for plans, envelopes, and runtime events, plus a SQLite index
// for queries. Everything here is advisory; the planning core never reads
// it back.
package journal

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/klauspost/compress/zstd"

	"mindcraftce.ai/internal/envelope"
	"mindcraftce.ai/internal/plan"
	"mindcraftce.ai/internal/runtime"
)

// jsonlWriter appends JSON lines to an hour-rotated zstd stream.
type jsonlWriter struct {
	baseDir string
	prefix  string

	mu      sync.Mutex
	curHour string
	f       *os.File
	enc     *zstd.Encoder
	w       *bufio.Writer
}

func newJSONLWriter(baseDir, prefix string) *jsonlWriter {
	return &jsonlWriter{baseDir: baseDir, prefix: prefix}
}

func (w *jsonlWriter) write(v any) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	hour := time.Now().UTC().Format("2006-01-02-15")
	if hour != w.curHour {
		if err := w.rotateLocked(hour); err != nil {
			return err
		}
	}

	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	if _, err := w.w.Write(b); err != nil {
		return err
	}
	if err := w.w.WriteByte('\n'); err != nil {
		return err
	}
	return w.w.Flush()
}

func (w *jsonlWriter) rotateLocked(hour string) error {
	if err := w.closeLocked(); err != nil {
		return err
	}
	path := filepath.Join(w.baseDir, fmt.Sprintf("%s-%s.jsonl.zst", w.prefix, hour))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}
	enc, err := zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedFastest))
	if err != nil {
		_ = f.Close()
		return err
	}
	w.f = f
	w.enc = enc
	w.w = bufio.NewWriterSize(enc, 128*1024)
	w.curHour = hour
	return nil
}

func (w *jsonlWriter) close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.closeLocked()
}

func (w *jsonlWriter) closeLocked() error {
	var err error
	if w.w != nil {
		_ = w.w.Flush()
	}
	if w.enc != nil {
		err = w.enc.Close()
		w.enc = nil
	}
	if w.f != nil {
		_ = w.f.Close()
		w.f = nil
	}
	w.w = nil
	return err
}

type planRecord struct {
	At   string    `json:"at"`
	Plan plan.Plan `json:"plan"`
}

type envelopeRecord struct {
	At       string            `json:"at"`
	ID       string            `json:"id"`
	Wire     string            `json:"wire,omitempty"`
	Envelope envelope.Envelope `json:"envelope"`
}

type eventRecord struct {
	At    string        `json:"at"`
	Event runtime.Event `json:"event"`
}

// Journal owns one writer per record family and the index. A nil Journal
// is a valid no-op, so callers can leave journaling unconfigured.
type Journal struct {
	plans     *jsonlWriter
	envelopes *jsonlWriter
	events    *jsonlWriter
	index     *Index
	now       func() time.Time
}

// Open creates the journal layout under dir.
func Open(dir string) (*Journal, error) {
	idx, err := OpenIndex(filepath.Join(dir, "index.db"))
	if err != nil {
		return nil, err
	}
	return &Journal{
		plans:     newJSONLWriter(filepath.Join(dir, "plans"), "plans"),
		envelopes: newJSONLWriter(filepath.Join(dir, "envelopes"), "envelopes"),
		events:    newJSONLWriter(filepath.Join(dir, "events"), "events"),
		index:     idx,
		now:       time.Now,
	}, nil
}

// Index exposes the SQLite index for queries.
func (j *Journal) Index() *Index {
	if j == nil {
		return nil
	}
	return j.index
}

// RecordPlan appends p to the plan stream and index.
func (j *Journal) RecordPlan(p plan.Plan) error {
	if j == nil {
		return nil
	}
	at := j.stamp()
	if err := j.plans.write(planRecord{At: at, Plan: p}); err != nil {
		return err
	}
	j.index.PutPlan(at, p)
	return nil
}

// RecordEnvelope appends env and its wire command to the envelope stream
// and index.
func (j *Journal) RecordEnvelope(env envelope.Envelope, wire string) error {
	if j == nil {
		return nil
	}
	at := j.stamp()
	if err := j.envelopes.write(envelopeRecord{At: at, ID: env.ID(), Wire: wire, Envelope: env}); err != nil {
		return err
	}
	j.index.PutEnvelope(at, env)
	return nil
}

// RecordEvent appends ev to the event stream and index.
func (j *Journal) RecordEvent(ev runtime.Event) error {
	if j == nil {
		return nil
	}
	at := j.stamp()
	if err := j.events.write(eventRecord{At: at, Event: ev}); err != nil {
		return err
	}
	j.index.PutEvent(at, ev)
	return nil
}

func (j *Journal) stamp() string {
	return j.now().UTC().Format(time.RFC3339Nano)
}

// Close flushes the streams and drains the index writer.
func (j *Journal) Close() error {
	if j == nil {
		return nil
	}
	var first error
	for _, w := range []*jsonlWriter{j.plans, j.envelopes, j.events} {
		if err := w.close(); err != nil && first == nil {
			first = err
		}
	}
	if err := j.index.Close(); err != nil && first == nil {
		first = err
	}
	return first
}
