package journal

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"mindcraftce.ai/internal/envelope"
	"mindcraftce.ai/internal/plan"
	"mindcraftce.ai/internal/runtime"
)

// Index is the queryable side of the journal: a SQLite database fed by a
// background writer. Writes never block the planning path; if the writer
// falls behind, rows are dropped and the JSONL streams remain the source
// of truth.
type Index struct {
	db      *sql.DB
	session string

	ch   chan idxReq
	wg   sync.WaitGroup
	once sync.Once

	closed atomic.Bool
}

type idxKind int

const (
	idxPlan idxKind = iota + 1
	idxEnvelope
	idxEvent
	idxSync
)

type idxReq struct {
	kind idxKind

	at   string
	plan plan.Plan
	env  envelope.Envelope
	ev   runtime.Event

	ack chan struct{}
}

// PlanRow is one indexed plan, newest first in query results.
type PlanRow struct {
	At       string
	Session  string
	Action   string
	NPC      string
	Status   string
	Summary  string
	Duration int
	Steps    int
}

// EnvelopeRow is one indexed envelope.
type EnvelopeRow struct {
	At       string
	Session  string
	ID       string
	Action   string
	NPC      string
	Priority string
	IssuedAt int64
}

// EventRow is one indexed runtime event.
type EventRow struct {
	At         string
	Session    string
	Type       string
	EnvelopeID string
	NPC        string
	Error      string
}

// OpenIndex opens (or creates) the index at path and starts the writer.
// Every open gets a fresh session id so overlapping runs stay separable.
func OpenIndex(path string) (*Index, error) {
	if path == "" {
		return nil, fmt.Errorf("empty index path")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := indexPragmas(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	if err := indexSchema(db); err != nil {
		_ = db.Close()
		return nil, err
	}

	idx := &Index{
		db:      db,
		session: uuid.NewString(),
		ch:      make(chan idxReq, 4096),
	}
	idx.wg.Add(1)
	go func() {
		defer idx.wg.Done()
		idx.loop()
	}()
	return idx, nil
}

func indexPragmas(db *sql.DB) error {
	// WAL suits the append-only workload; NORMAL is enough durability for
	// a secondary index.
	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA busy_timeout=5000;",
		"PRAGMA temp_store=MEMORY;",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return err
		}
	}
	return nil
}

func indexSchema(db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS meta (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS plans (
			at TEXT NOT NULL,
			session TEXT NOT NULL,
			action TEXT NOT NULL,
			npc TEXT,
			status TEXT,
			summary TEXT NOT NULL,
			duration INTEGER NOT NULL,
			steps INTEGER NOT NULL,
			raw_json TEXT NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_plans_at ON plans(at);`,
		`CREATE INDEX IF NOT EXISTS idx_plans_action_at ON plans(action, at);`,
		`CREATE TABLE IF NOT EXISTS envelopes (
			at TEXT NOT NULL,
			session TEXT NOT NULL,
			id TEXT NOT NULL,
			action TEXT NOT NULL,
			npc TEXT,
			priority TEXT NOT NULL,
			issued_at INTEGER NOT NULL,
			raw_json TEXT NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_envelopes_id ON envelopes(id);`,
		`CREATE INDEX IF NOT EXISTS idx_envelopes_at ON envelopes(at);`,
		`CREATE TABLE IF NOT EXISTS events (
			at TEXT NOT NULL,
			session TEXT NOT NULL,
			type TEXT NOT NULL,
			envelope_id TEXT,
			npc TEXT,
			error TEXT,
			raw_json TEXT NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_events_envelope_at ON events(envelope_id, at);`,
	}
	for _, s := range stmts {
		if _, err := db.Exec(s); err != nil {
			return err
		}
	}
	if _, err := db.Exec(`INSERT OR REPLACE INTO meta(key,value) VALUES('schema_version','1')`); err != nil {
		return err
	}
	return nil
}

// Session is the id stamped on every row written by this open.
func (x *Index) Session() string {
	if x == nil {
		return ""
	}
	return x.session
}

// PutPlan enqueues p. Drops when the writer is behind.
func (x *Index) PutPlan(at string, p plan.Plan) {
	if x == nil || x.closed.Load() {
		return
	}
	select {
	case x.ch <- idxReq{kind: idxPlan, at: at, plan: p}:
	default:
	}
}

// PutEnvelope enqueues env. Drops when the writer is behind.
func (x *Index) PutEnvelope(at string, env envelope.Envelope) {
	if x == nil || x.closed.Load() {
		return
	}
	select {
	case x.ch <- idxReq{kind: idxEnvelope, at: at, env: env}:
	default:
	}
}

// PutEvent enqueues ev. Drops when the writer is behind.
func (x *Index) PutEvent(at string, ev runtime.Event) {
	if x == nil || x.closed.Load() {
		return
	}
	select {
	case x.ch <- idxReq{kind: idxEvent, at: at, ev: ev}:
	default:
	}
}

// Sync waits until everything enqueued before the call is committed.
// Best effort: a saturated writer returns immediately, matching the
// journal's drop-over-stall policy.
func (x *Index) Sync() {
	if x == nil || x.closed.Load() {
		return
	}
	ack := make(chan struct{})
	select {
	case x.ch <- idxReq{kind: idxSync, ack: ack}:
		<-ack
	default:
	}
}

// Close drains the writer and closes the database.
func (x *Index) Close() error {
	if x == nil {
		return nil
	}
	var err error
	x.once.Do(func() {
		x.closed.Store(true)
		close(x.ch)
		x.wg.Wait()
		err = x.db.Close()
	})
	return err
}

func (x *Index) loop() {
	insertPlan, _ := x.db.Prepare(`INSERT INTO plans(at,session,action,npc,status,summary,duration,steps,raw_json) VALUES(?,?,?,?,?,?,?,?,?)`)
	insertEnvelope, _ := x.db.Prepare(`INSERT INTO envelopes(at,session,id,action,npc,priority,issued_at,raw_json) VALUES(?,?,?,?,?,?,?,?)`)
	insertEvent, _ := x.db.Prepare(`INSERT INTO events(at,session,type,envelope_id,npc,error,raw_json) VALUES(?,?,?,?,?,?,?)`)
	defer func() {
		for _, s := range []*sql.Stmt{insertPlan, insertEnvelope, insertEvent} {
			if s != nil {
				_ = s.Close()
			}
		}
	}()

	var (
		tx            *sql.Tx
		opCount       int
		lastCommit    = time.Now()
		commitEvery   = 256
		commitMaxWait = time.Second
	)

	begin := func() {
		if tx != nil {
			return
		}
		txx, err := x.db.Begin()
		if err != nil {
			time.Sleep(50 * time.Millisecond)
			return
		}
		tx = txx
		opCount = 0
		lastCommit = time.Now()
	}
	commit := func() {
		if tx == nil {
			return
		}
		_ = tx.Commit()
		tx = nil
		opCount = 0
		lastCommit = time.Now()
	}
	rollback := func() {
		if tx == nil {
			return
		}
		_ = tx.Rollback()
		tx = nil
		opCount = 0
		lastCommit = time.Now()
	}

	for r := range x.ch {
		if r.kind == idxSync {
			commit()
			close(r.ack)
			continue
		}

		begin()
		if tx == nil {
			continue
		}
		switch r.kind {
		case idxPlan:
			p := r.plan
			action, npc := "", ""
			if p.Task != nil {
				action = p.Task.Action
				npc = p.Task.NPCID
			}
			raw, _ := json.Marshal(p)
			if insertPlan != nil {
				if _, err := tx.Stmt(insertPlan).Exec(
					r.at, x.session, action, npc, string(p.Status),
					p.Summary, p.EstimatedDuration, len(p.Steps), string(raw),
				); err != nil {
					rollback()
					continue
				}
				opCount++
			}

		case idxEnvelope:
			e := r.env
			raw, _ := json.Marshal(e)
			if insertEnvelope != nil {
				if _, err := tx.Stmt(insertEnvelope).Exec(
					r.at, x.session, e.ID(), e.Action, e.NPC, e.Priority, e.IssuedAt, string(raw),
				); err != nil {
					rollback()
					continue
				}
				opCount++
			}

		case idxEvent:
			ev := r.ev
			raw, _ := json.Marshal(ev)
			if insertEvent != nil {
				if _, err := tx.Stmt(insertEvent).Exec(
					r.at, x.session, string(ev.Type), ev.EnvelopeID, ev.NPCID, ev.Error, string(raw),
				); err != nil {
					rollback()
					continue
				}
				opCount++
			}
		}

		if opCount >= commitEvery || time.Since(lastCommit) >= commitMaxWait {
			commit()
		}
	}

	commit()
}

// RecentPlans returns the newest plans, up to limit.
func (x *Index) RecentPlans(limit int) ([]PlanRow, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := x.db.Query(
		`SELECT at, session, action, npc, status, summary, duration, steps
		 FROM plans ORDER BY at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []PlanRow
	for rows.Next() {
		var r PlanRow
		var npc, status sql.NullString
		if err := rows.Scan(&r.At, &r.Session, &r.Action, &npc, &status, &r.Summary, &r.Duration, &r.Steps); err != nil {
			return nil, err
		}
		r.NPC = npc.String
		r.Status = status.String
		out = append(out, r)
	}
	return out, rows.Err()
}

// RecentEnvelopes returns the newest envelopes, up to limit.
func (x *Index) RecentEnvelopes(limit int) ([]EnvelopeRow, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := x.db.Query(
		`SELECT at, session, id, action, npc, priority, issued_at
		 FROM envelopes ORDER BY issued_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []EnvelopeRow
	for rows.Next() {
		var r EnvelopeRow
		var npc sql.NullString
		if err := rows.Scan(&r.At, &r.Session, &r.ID, &r.Action, &npc, &r.Priority, &r.IssuedAt); err != nil {
			return nil, err
		}
		r.NPC = npc.String
		out = append(out, r)
	}
	return out, rows.Err()
}

// EventsFor returns the events recorded for one envelope, oldest first.
func (x *Index) EventsFor(envelopeID string, limit int) ([]EventRow, error) {
	if limit <= 0 {
		limit = 100
	}
	rows, err := x.db.Query(
		`SELECT at, session, type, envelope_id, npc, error
		 FROM events WHERE envelope_id = ? ORDER BY at ASC LIMIT ?`, envelopeID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []EventRow
	for rows.Next() {
		var r EventRow
		var envID, npc, errStr sql.NullString
		if err := rows.Scan(&r.At, &r.Session, &r.Type, &envID, &npc, &errStr); err != nil {
			return nil, err
		}
		r.EnvelopeID = envID.String
		r.NPC = npc.String
		r.Error = errStr.String
		out = append(out, r)
	}
	return out, rows.Err()
}
