package authoring

import (
	"sync"
	"time"
)

// DefaultAutosaveDelay is the quiet window edits must survive before they
// are committed into the aggregate.
const DefaultAutosaveDelay = time.Second

// Autosaver coalesces rapid edits to one item into a single commit. Each
// Schedule for an item restarts its quiet window and chains onto any commit
// already pending, so every buffered edit still applies, in order, when the
// window finally elapses. Deleting an item cancels its pending commit.
type Autosaver struct {
	mu      sync.Mutex
	delay   time.Duration
	pending map[string]*pendingEdit
	stopped bool
}

type pendingEdit struct {
	timer  *time.Timer
	commit func()
}

func NewAutosaver(delay time.Duration) *Autosaver {
	if delay <= 0 {
		delay = DefaultAutosaveDelay
	}
	return &Autosaver{
		delay:   delay,
		pending: map[string]*pendingEdit{},
	}
}

// Schedule queues a commit for the item, restarting its quiet window.
func (a *Autosaver) Schedule(itemID string, commit func()) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.stopped {
		return
	}
	if edit, ok := a.pending[itemID]; ok {
		edit.timer.Stop()
		prev := edit.commit
		commitBoth := commit
		commit = func() {
			prev()
			commitBoth()
		}
	}
	edit := &pendingEdit{commit: commit}
	edit.timer = time.AfterFunc(a.delay, func() {
		a.fire(itemID, edit)
	})
	a.pending[itemID] = edit
}

// Cancel drops any pending commit for the item without running it.
func (a *Autosaver) Cancel(itemID string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if edit, ok := a.pending[itemID]; ok {
		edit.timer.Stop()
		delete(a.pending, itemID)
	}
}

// Flush commits everything still pending, immediately.
func (a *Autosaver) Flush() {
	a.mu.Lock()
	edits := make([]*pendingEdit, 0, len(a.pending))
	for id, edit := range a.pending {
		edit.timer.Stop()
		edits = append(edits, edit)
		delete(a.pending, id)
	}
	a.mu.Unlock()
	for _, edit := range edits {
		edit.commit()
	}
}

// Clear cancels all pending commits but keeps the buffer usable.
func (a *Autosaver) Clear() {
	a.mu.Lock()
	defer a.mu.Unlock()
	for id, edit := range a.pending {
		edit.timer.Stop()
		delete(a.pending, id)
	}
}

// Stop cancels all pending commits and rejects further scheduling.
func (a *Autosaver) Stop() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.stopped = true
	for id, edit := range a.pending {
		edit.timer.Stop()
		delete(a.pending, id)
	}
}

func (a *Autosaver) fire(itemID string, edit *pendingEdit) {
	a.mu.Lock()
	current, ok := a.pending[itemID]
	if !ok || current != edit {
		// Cancelled or superseded while the timer was firing.
		a.mu.Unlock()
		return
	}
	delete(a.pending, itemID)
	a.mu.Unlock()
	edit.commit()
}
