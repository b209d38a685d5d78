package journal

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/klauspost/compress/zstd"

	"mindcraftce.ai/internal/envelope"
	"mindcraftce.ai/internal/plan"
	"mindcraftce.ai/internal/runtime"
	"mindcraftce.ai/internal/task"
)

func openTestJournal(t *testing.T) (*Journal, string) {
	t.Helper()
	dir := t.TempDir()
	j, err := Open(dir)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	return j, dir
}

func testEnvelope(t *testing.T) envelope.Envelope {
	t.Helper()
	at := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	a := envelope.NewAdapter(envelope.WithClock(func() time.Time { return at }))
	return a.Build(&task.Request{Action: task.ActionMine, NPCID: "miner-1"})
}

func TestJournalRoundTrip(t *testing.T) {
	j, dir := openTestJournal(t)

	p := plan.New(plan.Plan{
		Task:              &task.Request{Action: task.ActionMine, NPCID: "miner-1"},
		Summary:           "Mine diamond",
		Steps:             []plan.Step{{Title: "Extract", Type: plan.StepAction, Description: "dig"}},
		EstimatedDuration: 9000,
	})
	if err := j.RecordPlan(*p); err != nil {
		t.Fatalf("RecordPlan: %v", err)
	}

	env := testEnvelope(t)
	if err := j.RecordEnvelope(env, "mindcraftce run {}"); err != nil {
		t.Fatalf("RecordEnvelope: %v", err)
	}

	ev := runtime.Event{Type: runtime.EventComplete, EnvelopeID: env.ID(), NPCID: "miner-1"}
	if err := j.RecordEvent(ev); err != nil {
		t.Fatalf("RecordEvent: %v", err)
	}

	j.Index().Sync()

	plans, err := j.Index().RecentPlans(10)
	if err != nil {
		t.Fatalf("RecentPlans: %v", err)
	}
	if len(plans) != 1 {
		t.Fatalf("plans: got %d want 1", len(plans))
	}
	if plans[0].Action != "mine" || plans[0].NPC != "miner-1" || plans[0].Duration != 9000 || plans[0].Steps != 1 {
		t.Fatalf("plan row: %+v", plans[0])
	}
	if plans[0].Session != j.Index().Session() {
		t.Fatalf("session: got %q want %q", plans[0].Session, j.Index().Session())
	}

	envs, err := j.Index().RecentEnvelopes(10)
	if err != nil {
		t.Fatalf("RecentEnvelopes: %v", err)
	}
	if len(envs) != 1 || envs[0].ID != env.ID() || envs[0].Action != "mine" {
		t.Fatalf("envelope rows: %+v", envs)
	}

	events, err := j.Index().EventsFor(env.ID(), 10)
	if err != nil {
		t.Fatalf("EventsFor: %v", err)
	}
	if len(events) != 1 || events[0].Type != "task_complete" || events[0].NPC != "miner-1" {
		t.Fatalf("event rows: %+v", events)
	}

	if err := j.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	// The JSONL stream is the durable record; it must decode back.
	recs := readStream(t, filepath.Join(dir, "plans"))
	if len(recs) != 1 {
		t.Fatalf("stream records: got %d want 1", len(recs))
	}
	var rec planRecord
	if err := json.Unmarshal([]byte(recs[0]), &rec); err != nil {
		t.Fatalf("decode record: %v", err)
	}
	if rec.Plan.Summary != "Mine diamond" {
		t.Fatalf("summary: got %q", rec.Plan.Summary)
	}
}

func TestJournalNilIsNoOp(t *testing.T) {
	var j *Journal
	if err := j.RecordPlan(plan.Plan{}); err != nil {
		t.Fatalf("nil RecordPlan: %v", err)
	}
	if err := j.RecordEvent(runtime.Event{}); err != nil {
		t.Fatalf("nil RecordEvent: %v", err)
	}
	if j.Index() != nil {
		t.Fatal("nil journal should expose a nil index")
	}
	if err := j.Close(); err != nil {
		t.Fatalf("nil Close: %v", err)
	}
}

func TestIndexPutAfterCloseIsSafe(t *testing.T) {
	j, _ := openTestJournal(t)
	idx := j.Index()
	if err := j.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	// Must not panic or block.
	idx.PutEvent("2026-03-01T10:00:00Z", runtime.Event{Type: runtime.EventError})
	idx.Sync()
}

func readStream(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	var lines []string
	for _, e := range entries {
		if !strings.HasSuffix(e.Name(), ".jsonl.zst") {
			continue
		}
		f, err := os.Open(filepath.Join(dir, e.Name()))
		if err != nil {
			t.Fatalf("open %s: %v", e.Name(), err)
		}
		dec, err := zstd.NewReader(f)
		if err != nil {
			t.Fatalf("zstd: %v", err)
		}
		sc := bufio.NewScanner(dec)
		sc.Buffer(make([]byte, 0, 1<<20), 1<<20)
		for sc.Scan() {
			if line := strings.TrimSpace(sc.Text()); line != "" {
				lines = append(lines, line)
			}
		}
		dec.Close()
		_ = f.Close()
	}
	return lines
}
