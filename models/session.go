package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/mmdatafocus/pizza_sales/config"
	"github.com/sirupsen/logrus"
)

// Session is one uploaded (or default) dataset and its Row Store.
type Session struct {
	ID        string    `json:"session_id"`
	Source    string    `json:"source"`
	CreatedAt time.Time `json:"created_at"`
	// schema problems reported once when the store was built
	Warnings []string  `json:"warnings"`
	Store    *RowStore `json:"-"`
}

// SessionRegistry keeps sessions isolated from each other. Least recently
// used sessions are evicted when the registry is full or the TTL expires.
type SessionRegistry struct {
	sessions *expirable.LRU[string, *Session]
}

func NewSessionRegistry(size int, ttl time.Duration) *SessionRegistry {
	logger := config.GetLogger()
	onEvict := func(id string, s *Session) {
		logger.WithFields(logrus.Fields{
			"field":      "SessionRegistry",
			"session_id": id,
			"rows":       s.Store.Len(),
		}).Debug("session evicted")
	}
	return &SessionRegistry{sessions: expirable.NewLRU[string, *Session](size, onEvict, ttl)}
}

// Create registers a new session around store. schemaErr, when set, is kept as a warning.
func (r *SessionRegistry) Create(source string, store *RowStore, schemaErr error) *Session {
	if store == nil {
		store = EmptyRowStore()
	}
	s := &Session{
		ID:        uuid.NewString(),
		Source:    source,
		CreatedAt: time.Now().UTC(),
		Warnings:  []string{},
		Store:     store,
	}
	if schemaErr != nil {
		s.Warnings = append(s.Warnings, schemaErr.Error())
	}
	r.sessions.Add(s.ID, s)
	return s
}

func (r *SessionRegistry) Get(id string) (*Session, bool) {
	return r.sessions.Get(id)
}

func (r *SessionRegistry) Delete(id string) bool {
	return r.sessions.Remove(id)
}

func (r *SessionRegistry) Len() int {
	return r.sessions.Len()
}
