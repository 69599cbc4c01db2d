package authoring

import "sync"

// Workspace bundles the per-creator editing state: the course session, the
// wizard position, the review checklist and the autosave buffer.
type Workspace struct {
	Session   *Session
	Wizard    *Wizard
	Autosaver *Autosaver

	mu        sync.Mutex
	checklist Checklist
}

func (w *Workspace) Checklist() Checklist {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.checklist
}

func (w *Workspace) SetChecklist(cl Checklist) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.checklist = cl
}

// Reset discards everything back to a fresh wizard over an empty draft.
func (w *Workspace) Reset() {
	w.Autosaver.Clear()
	w.Session.Reset()
	w.Wizard.Restart()
	w.SetChecklist(Checklist{})
}

// StoreFactory builds the creator-scoped course store a session persists
// through.
type StoreFactory func(creatorID string) CourseStore

// Registry hands out one workspace per creator. Exactly one editing context
// exists per creator at any time.
type Registry struct {
	mu         sync.Mutex
	stores     StoreFactory
	workspaces map[string]*Workspace
}

func NewRegistry(stores StoreFactory) *Registry {
	return &Registry{
		stores:     stores,
		workspaces: map[string]*Workspace{},
	}
}

// Get returns the creator's workspace, creating it on first use.
func (r *Registry) Get(creatorID string) *Workspace {
	r.mu.Lock()
	defer r.mu.Unlock()
	if w, ok := r.workspaces[creatorID]; ok {
		return w
	}
	w := &Workspace{
		Session:   NewSession(r.stores(creatorID)),
		Wizard:    &Wizard{},
		Autosaver: NewAutosaver(DefaultAutosaveDelay),
	}
	r.workspaces[creatorID] = w
	return w
}

// Drop destroys the creator's workspace. The next Get starts fresh.
func (r *Registry) Drop(creatorID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if w, ok := r.workspaces[creatorID]; ok {
		w.Autosaver.Stop()
		delete(r.workspaces, creatorID)
	}
}
