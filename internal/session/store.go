package session

import (
	"sync"
	"time"

	"expensehero/internal/auth"
)

type entry struct {
	session   *Session
	expiresAt time.Time
}

// Store is an in-memory registry of live sessions keyed by opaque token.
// Entries expire after the configured TTL; a background janitor sweeps
// expired entries so abandoned sessions do not accumulate.
type Store struct {
	mu    sync.Mutex
	items map[string]*entry
	ttl   time.Duration

	stopCleanup    chan struct{}
	cleanupDone    chan struct{}
	cleanupStarted bool
	shutdownOnce   sync.Once
}

// NewStore creates a session store with the given TTL.
func NewStore(ttl time.Duration) *Store {
	return &Store{
		items:       make(map[string]*entry),
		ttl:         ttl,
		stopCleanup: make(chan struct{}),
		cleanupDone: make(chan struct{}),
	}
}

// Create registers a fresh anonymous session and returns its token.
func (st *Store) Create() (string, *Session) {
	token := auth.NewSessionToken()
	sess := New()

	st.mu.Lock()
	st.items[token] = &entry{session: sess, expiresAt: time.Now().Add(st.ttl)}
	st.mu.Unlock()

	return token, sess
}

// Get returns the live session for a token. Expired entries are removed
// on access and reported as a miss. A hit slides the expiry forward.
func (st *Store) Get(token string) (*Session, bool) {
	st.mu.Lock()
	defer st.mu.Unlock()

	e, ok := st.items[token]
	if !ok {
		return nil, false
	}
	if time.Now().After(e.expiresAt) {
		delete(st.items, token)
		return nil, false
	}
	e.expiresAt = time.Now().Add(st.ttl)
	return e.session, true
}

// Delete drops a session, ending it immediately.
func (st *Store) Delete(token string) {
	st.mu.Lock()
	defer st.mu.Unlock()
	delete(st.items, token)
}

// Len returns the number of tracked sessions, expired or not.
func (st *Store) Len() int {
	st.mu.Lock()
	defer st.mu.Unlock()
	return len(st.items)
}

// CleanExpired removes all expired entries and returns how many went.
func (st *Store) CleanExpired() int {
	st.mu.Lock()
	defer st.mu.Unlock()

	now := time.Now()
	removed := 0
	for token, e := range st.items {
		if now.After(e.expiresAt) {
			delete(st.items, token)
			removed++
		}
	}
	return removed
}

// StartCleanup begins the periodic janitor sweep.
func (st *Store) StartCleanup(interval time.Duration) {
	st.mu.Lock()
	st.cleanupStarted = true
	st.mu.Unlock()
	go st.cleanup(interval)
}

func (st *Store) cleanup(interval time.Duration) {
	defer close(st.cleanupDone)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			st.CleanExpired()
		case <-st.stopCleanup:
			return
		}
	}
}

// Stop gracefully stops the janitor.
func (st *Store) Stop() {
	st.shutdownOnce.Do(func() {
		close(st.stopCleanup)
		st.mu.Lock()
		started := st.cleanupStarted
		st.mu.Unlock()
		if started {
			<-st.cleanupDone
		}
	})
}
