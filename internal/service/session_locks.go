package service

import "sync"

// SessionLocks serializes state-mutating operations per interview identity.
// There is no global lock: distinct sessions proceed concurrently. Holders
// must release the lock before any collaborator call and re-validate
// preconditions after re-acquiring it.
type SessionLocks struct {
	mu    sync.Mutex
	locks map[uint]*sync.Mutex
}

func NewSessionLocks() *SessionLocks {
	return &SessionLocks{locks: make(map[uint]*sync.Mutex)}
}

// Get returns the mutex for an interview identity, creating it on first use.
// Entries live for the process lifetime; the map is bounded by the number of
// sessions touched by this instance.
func (s *SessionLocks) Get(interviewID uint) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	lock, ok := s.locks[interviewID]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[interviewID] = lock
	}
	return lock
}
