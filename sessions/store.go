package sessions

import (
	"encoding/json"
	"sync"
)

// DefaultKey is used when a request carries no session id.
const DefaultKey = "default"

// MaxHistory is the number of turns kept per session.
const MaxHistory = 20

type Role string

const (
	RoleUser  Role = "user"
	RoleModel Role = "model"
)

type Turn struct {
	Role Role   `json:"role"`
	Text string `json:"text"`
}

// Preferences accumulate across a session's messages.
// Empty strings mean "not set yet".
type Preferences struct {
	PreferredDestinations []string `json:"preferred_destinations"`
	TravelInterests       []string `json:"travel_interests"`
	BudgetLevel           string   `json:"budget_level"`
	TravelType            string   `json:"travel_type"`
	TravelDuration        string   `json:"travel_duration"`
}

func NewPreferences() *Preferences {
	return &Preferences{
		PreferredDestinations: []string{},
		TravelInterests:       []string{},
	}
}

// Clone returns a deep copy safe to hand out after the session lock is released.
func (p *Preferences) Clone() Preferences {
	out := *p
	out.PreferredDestinations = append([]string{}, p.PreferredDestinations...)
	out.TravelInterests = append([]string{}, p.TravelInterests...)
	return out
}

func (p Preferences) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		PreferredDestinations []string `json:"preferred_destinations"`
		TravelInterests       []string `json:"travel_interests"`
		BudgetLevel           *string  `json:"budget_level"`
		TravelType            *string  `json:"travel_type"`
		TravelDuration        *string  `json:"travel_duration"`
	}{
		PreferredDestinations: nonNil(p.PreferredDestinations),
		TravelInterests:       nonNil(p.TravelInterests),
		BudgetLevel:           nullable(p.BudgetLevel),
		TravelType:            nullable(p.TravelType),
		TravelDuration:        nullable(p.TravelDuration),
	})
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

type Session struct {
	History     []Turn
	Preferences *Preferences
}

func newSession() *Session {
	return &Session{Preferences: NewPreferences()}
}

// Append adds turns and drops the oldest ones beyond MaxHistory.
func (s *Session) Append(turns ...Turn) {
	s.History = append(s.History, turns...)
	if over := len(s.History) - MaxHistory; over > 0 {
		s.History = append([]Turn(nil), s.History[over:]...)
	}
}

// Snapshot is a copy of a session's state.
type Snapshot struct {
	History     []Turn
	Preferences Preferences
}

// Store keeps per-key sessions. Calls to With for the same key are
// serialized; different keys do not block each other.
type Store interface {
	// With runs fn on the session for key, creating it if needed.
	With(key string, fn func(*Session) error) error
	// Peek returns a copy of the session without creating it.
	Peek(key string) (Snapshot, bool)
	Evict(key string)
}

type entry struct {
	mu   sync.Mutex
	sess *Session
}

type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]*entry
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string]*entry)}
}

func (m *MemoryStore) get(key string, create bool) *entry {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.entries[key]
	if !ok && create {
		e = &entry{sess: newSession()}
		m.entries[key] = e
	}
	return e
}

func (m *MemoryStore) With(key string, fn func(*Session) error) error {
	e := m.get(key, true)
	e.mu.Lock()
	defer e.mu.Unlock()
	return fn(e.sess)
}

func (m *MemoryStore) Peek(key string) (Snapshot, bool) {
	e := m.get(key, false)
	if e == nil {
		return Snapshot{}, false
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return Snapshot{
		History:     append([]Turn(nil), e.sess.History...),
		Preferences: e.sess.Preferences.Clone(),
	}, true
}

func (m *MemoryStore) Evict(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, key)
}

// Len reports how many sessions are held.
func (m *MemoryStore) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}
