package dashboard

import (
	"sync"
	"time"
)

// Workspace holds the pages of one signed-in browser session
type Workspace struct {
	Summary          Page[SummaryData]
	Products         Page[ProductsData]
	Suppliers        Page[SuppliersScreen]
	SupplierProducts Page[SupplierProductsData]
	Recipes          Page[RecipesData]
	Transaction      Page[TransactionData]

	lastUsed time.Time
}

// Workspaces keeps one Workspace per session key. Idle ones are dropped by
// Sweep.
type Workspaces struct {
	mu    sync.Mutex
	items map[string]*Workspace
	idle  time.Duration
	now   func() time.Time
}

// NewWorkspaces returns a registry that forgets sessions idle for longer
// than idle
func NewWorkspaces(idle time.Duration) *Workspaces {
	return &Workspaces{items: map[string]*Workspace{}, idle: idle, now: time.Now}
}

// Get returns the workspace of key, creating it on first use
func (w *Workspaces) Get(key string) *Workspace {
	w.mu.Lock()
	defer w.mu.Unlock()

	ws, ok := w.items[key]
	if !ok {
		ws = &Workspace{}
		w.items[key] = ws
	}
	ws.lastUsed = w.now()
	return ws
}

// Drop forgets the workspace of key, e.g. on logout
func (w *Workspaces) Drop(key string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	delete(w.items, key)
}

// Sweep drops idle workspaces and returns how many went
func (w *Workspaces) Sweep() int {
	w.mu.Lock()
	defer w.mu.Unlock()

	cutoff := w.now().Add(-w.idle)
	dropped := 0
	for key, ws := range w.items {
		if ws.lastUsed.Before(cutoff) {
			delete(w.items, key)
			dropped++
		}
	}
	return dropped
}

// Len is the number of live workspaces
func (w *Workspaces) Len() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.items)
}
