// ABOUTME: Pager sessions held by the MCP server between tool calls
// ABOUTME: Each session is a paginate.Pager keyed by a random UUID

package mcp

import (
	"errors"
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/harper/datepage/internal/paginate"
)

// MaxSessions bounds how many pagers one server keeps open.
const MaxSessions = 64

var (
	// ErrSessionNotFound is returned for an unknown or closed session id.
	ErrSessionNotFound = errors.New("session not found")

	// ErrTooManySessions is returned when MaxSessions pagers are already open.
	ErrTooManySessions = errors.New("too many open sessions")
)

func (s *Server) openSession(opts ...paginate.Option) (string, *paginate.Pager, error) {
	p, err := paginate.New(opts...)
	if err != nil {
		return "", nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.sessions) >= MaxSessions {
		return "", nil, fmt.Errorf("%w (max %d): close one with page_close", ErrTooManySessions, MaxSessions)
	}
	id := uuid.New().String()
	s.sessions[id] = p
	s.log.Debug("pager session opened", "session_id", id, "open", len(s.sessions))
	return id, p, nil
}

// withSession runs fn against the session's pager while holding the lock.
func (s *Server) withSession(id string, fn func(*paginate.Pager) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.sessions[id]
	if !ok {
		return fmt.Errorf("%w: %q", ErrSessionNotFound, id)
	}
	return fn(p)
}

func (s *Server) closeSession(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[id]; !ok {
		return fmt.Errorf("%w: %q", ErrSessionNotFound, id)
	}
	delete(s.sessions, id)
	s.log.Debug("pager session closed", "session_id", id, "open", len(s.sessions))
	return nil
}

// sessionIDs returns the open session ids in sorted order.
func (s *Server) sessionIDs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := make([]string, 0, len(s.sessions))
	for id := range s.sessions {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
