package session

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/lastcentaur/engine/game/engine"
	"github.com/lastcentaur/engine/game/leaderboard"
)

// Manager owns the in-memory table of live game instances and, if
// configured, a backing Store for cross-restart durability. Every game
// instance runs on a single logical executor per the design's concurrency
// model; Manager itself is safe for concurrent use across instances.
type Manager struct {
	mu        sync.Mutex
	instances map[string]*engine.GameEngine
	store     Store
	board     *leaderboard.Board
}

// NewManager returns a Manager with no backing store: sessions live only
// in memory for the life of the process.
func NewManager(board *leaderboard.Board) *Manager {
	return &Manager{instances: map[string]*engine.GameEngine{}, board: board}
}

// NewManagerWithStore returns a Manager that also persists snapshots to
// store, loading on demand and saving on Save/SaveAll.
func NewManagerWithStore(board *leaderboard.Board, store Store) *Manager {
	return &Manager{instances: map[string]*engine.GameEngine{}, board: board, store: store}
}

// Create starts a brand-new instance under instanceID, failing if one
// already exists in memory or in the backing store. An empty instanceID
// is replaced with a fresh UUID, since a deployment expects far more
// concurrent instances than a single toy session.
func (m *Manager) Create(instanceID, playerName string) (*engine.GameEngine, error) {
	if instanceID == "" {
		instanceID = uuid.NewString()
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.instances[instanceID]; ok {
		return nil, ErrAlreadyExists
	}
	if m.store != nil {
		if _, found, err := m.store.Get(instanceID); err == nil && found {
			return nil, ErrAlreadyExists
		}
	}

	e := engine.New(instanceID, playerName, m.board)
	m.instances[instanceID] = e
	return e, nil
}

// Get returns the live instance for instanceID, loading it from the
// backing store on a cache miss. A Store failure during that load is
// non-fatal to the caller's wider request; it surfaces as ErrUnavailable.
func (m *Manager) Get(instanceID string) (*engine.GameEngine, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.getLocked(instanceID)
}

func (m *Manager) getLocked(instanceID string) (*engine.GameEngine, error) {
	if e, ok := m.instances[instanceID]; ok {
		return e, nil
	}
	if m.store == nil {
		return nil, ErrNotFound
	}

	data, found, err := m.store.Get(instanceID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if !found {
		return nil, ErrNotFound
	}

	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("%w: decoding snapshot: %v", ErrUnavailable, err)
	}
	e, err := FromSnapshot(snap, m.board)
	if err != nil {
		return nil, err
	}
	m.instances[instanceID] = e
	return e, nil
}

// GetOrCreate returns the existing instance for instanceID, or creates one
// if none exists anywhere.
func (m *Manager) GetOrCreate(instanceID, playerName string) (*engine.GameEngine, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, err := m.getLocked(instanceID)
	if err == nil {
		return e, nil
	}
	if err != ErrNotFound {
		return nil, err
	}

	e = engine.New(instanceID, playerName, m.board)
	m.instances[instanceID] = e
	return e, nil
}

// Save writes instanceID's current state to the backing store. A nil
// store makes this a no-op, matching the design's treatment of a handler
// that runs with persistence disabled.
func (m *Manager) Save(instanceID string) error {
	m.mu.Lock()
	e, ok := m.instances[instanceID]
	m.mu.Unlock()
	if !ok {
		return ErrNotFound
	}
	if m.store == nil {
		return nil
	}

	snap := ToSnapshot(e)
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("%w: encoding snapshot: %v", ErrUnavailable, err)
	}
	if err := m.store.Put(instanceID, data); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}

// SaveAll persists every live instance, fanning the per-instance
// serialize-and-store work out across an errgroup so N instances cost one
// instance's latency instead of N — a direct generalization of the
// teacher's sequential SaveAllSessions loop.
func (m *Manager) SaveAll() error {
	m.mu.Lock()
	ids := make([]string, 0, len(m.instances))
	for id := range m.instances {
		ids = append(ids, id)
	}
	m.mu.Unlock()

	var g errgroup.Group
	for _, id := range ids {
		id := id
		g.Go(func() error {
			return m.Save(id)
		})
	}
	return g.Wait()
}

// LoadAllFromStore loads every persisted instance id into memory that
// isn't already held, fanning the per-instance fetch-and-decode work out
// across an errgroup.
func (m *Manager) LoadAllFromStore() error {
	if m.store == nil {
		return nil
	}
	ids, err := m.store.ListAll()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	var g errgroup.Group
	for _, id := range ids {
		id := id
		m.mu.Lock()
		_, already := m.instances[id]
		m.mu.Unlock()
		if already {
			continue
		}
		g.Go(func() error {
			_, err := m.Get(id)
			return err
		})
	}
	return g.Wait()
}

// Delete removes instanceID from memory and, if configured, from the
// backing store.
func (m *Manager) Delete(instanceID string) error {
	m.mu.Lock()
	_, inMemory := m.instances[instanceID]
	delete(m.instances, instanceID)
	m.mu.Unlock()

	if m.store != nil {
		if err := m.store.Delete(instanceID); err != nil {
			return fmt.Errorf("%w: %v", ErrUnavailable, err)
		}
		return nil
	}
	if !inMemory {
		return ErrNotFound
	}
	return nil
}

// Count returns the number of instances currently held in memory.
func (m *Manager) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.instances)
}
