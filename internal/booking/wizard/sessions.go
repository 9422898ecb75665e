package wizard

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// session состояние wizard, привязанное к пользователю, с моментом
// последнего обращения для TTL
type session struct {
	ownerID    int64
	state      *State
	lastActive time.Time
}

// Sessions in-memory хранилище сессий wizard с ленивой очисткой по TTL.
// Сессии намеренно не персистятся: истечение или рестарт процесса
// эквивалентны брошенному wizard.
type Sessions struct {
	mu       sync.Mutex
	sessions map[string]*session
	ttl      time.Duration
	now      func() time.Time
}

// NewSessions создает хранилище сессий с указанным TTL
func NewSessions(ttl time.Duration) *Sessions {
	return &Sessions{
		sessions: make(map[string]*session),
		ttl:      ttl,
		now:      time.Now,
	}
}

// Start создает новую сессию для пользователя и возвращает ее ID
func (s *Sessions) Start(ownerID int64) (string, *State) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.evictExpired()

	id := uuid.NewString()
	state := NewState()
	s.sessions[id] = &session{
		ownerID:    ownerID,
		state:      state,
		lastActive: s.now(),
	}
	return id, state
}

// Get возвращает состояние сессии и продлевает ее TTL. Чужая или истекшая
// сессия неотличимы от несуществующей.
func (s *Sessions) Get(id string, ownerID int64) (*State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.evictExpired()

	sess, ok := s.sessions[id]
	if !ok || sess.ownerID != ownerID {
		return nil, ErrSessionNotFound
	}
	sess.lastActive = s.now()
	return sess.state, nil
}

// Delete удаляет сессию (после успешной отправки)
func (s *Sessions) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
}

// Active возвращает число живых сессий
func (s *Sessions) Active() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.evictExpired()
	return len(s.sessions)
}

// evictExpired удаляет истекшие сессии; вызывать под mu
func (s *Sessions) evictExpired() {
	deadline := s.now().Add(-s.ttl)
	for id, sess := range s.sessions {
		if sess.lastActive.Before(deadline) {
			delete(s.sessions, id)
		}
	}
}
