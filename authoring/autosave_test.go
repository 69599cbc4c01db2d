package authoring

import (
	"sync"
	"testing"
	"time"
)

// commitLog records commits so tests can assert on order and timing.
type commitLog struct {
	mu      sync.Mutex
	entries []string
}

func (l *commitLog) record(entry string) func() {
	return func() {
		l.mu.Lock()
		defer l.mu.Unlock()
		l.entries = append(l.entries, entry)
	}
}

func (l *commitLog) snapshot() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.entries...)
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("condition never became true")
}

func TestAutosaver_CommitsAfterQuietWindow(t *testing.T) {
	a := NewAutosaver(20 * time.Millisecond)
	var log commitLog

	a.Schedule("lesson_1", log.record("edit"))
	if got := log.snapshot(); len(got) != 0 {
		t.Fatalf("commit must wait for the quiet window, got %v", got)
	}
	waitFor(t, func() bool { return len(log.snapshot()) == 1 })
}

func TestAutosaver_RapidEditsApplyInOrder(t *testing.T) {
	a := NewAutosaver(30 * time.Millisecond)
	var log commitLog

	a.Schedule("lesson_1", log.record("first"))
	a.Schedule("lesson_1", log.record("second"))
	a.Schedule("lesson_1", log.record("third"))

	waitFor(t, func() bool { return len(log.snapshot()) == 3 })
	got := log.snapshot()
	if got[0] != "first" || got[1] != "second" || got[2] != "third" {
		t.Fatalf("edits must apply in schedule order, got %v", got)
	}
}

func TestAutosaver_IndependentItemsDoNotCoalesce(t *testing.T) {
	a := NewAutosaver(20 * time.Millisecond)
	var log commitLog

	a.Schedule("lesson_1", log.record("lesson"))
	a.Schedule("quiz_1", log.record("quiz"))

	waitFor(t, func() bool { return len(log.snapshot()) == 2 })
}

func TestAutosaver_CancelDropsPendingCommit(t *testing.T) {
	a := NewAutosaver(20 * time.Millisecond)
	var log commitLog

	a.Schedule("lesson_1", log.record("edit"))
	a.Cancel("lesson_1")

	time.Sleep(60 * time.Millisecond)
	if got := log.snapshot(); len(got) != 0 {
		t.Fatalf("cancelled edit must never commit, got %v", got)
	}
}

func TestAutosaver_FlushCommitsImmediately(t *testing.T) {
	a := NewAutosaver(time.Hour)
	var log commitLog

	a.Schedule("lesson_1", log.record("lesson"))
	a.Schedule("quiz_1", log.record("quiz"))
	a.Flush()

	if got := log.snapshot(); len(got) != 2 {
		t.Fatalf("flush must commit everything pending, got %v", got)
	}
}

func TestAutosaver_ClearKeepsBufferUsable(t *testing.T) {
	a := NewAutosaver(20 * time.Millisecond)
	var log commitLog

	a.Schedule("lesson_1", log.record("dropped"))
	a.Clear()
	a.Schedule("lesson_1", log.record("kept"))

	waitFor(t, func() bool { return len(log.snapshot()) == 1 })
	if got := log.snapshot(); got[0] != "kept" {
		t.Fatalf("cleared edit leaked through, got %v", got)
	}
}

func TestAutosaver_StopRejectsFurtherScheduling(t *testing.T) {
	a := NewAutosaver(10 * time.Millisecond)
	var log commitLog

	a.Schedule("lesson_1", log.record("before stop"))
	a.Stop()
	a.Schedule("lesson_1", log.record("after stop"))

	time.Sleep(50 * time.Millisecond)
	if got := log.snapshot(); len(got) != 0 {
		t.Fatalf("stopped autosaver must not commit, got %v", got)
	}
}
