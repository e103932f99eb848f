package handlers

import (
	"context"
	"log"
	"sync"
	"time"

	"pokeplot/models"
)

const minSweepInterval = time.Second

// session is the chart state of one client. Its lock is held for a whole update so a client's filter and tooltip
// events are applied one at a time.
type session struct {
	mu      sync.Mutex
	filters *models.Filters
	tooltip models.Tooltip
	// tooltipSeq is the highest hover sequence number seen, tooltip requests below it arrived late and are dropped.
	tooltipSeq int64
	lastSeen   time.Time
}

type sessions struct {
	mu       sync.Mutex
	byClient map[string]*session
	newState func() *models.Filters
	now      func() time.Time
}

func newSessions(newState func() *models.Filters) *sessions {
	return &sessions{
		byClient: make(map[string]*session),
		newState: newState,
		now:      time.Now,
	}
}

func (s *sessions) get(clientID string) *session {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.byClient[clientID]
	if !ok {
		sess = &session{filters: s.newState()}
		s.byClient[clientID] = sess
	}
	sess.lastSeen = s.now()
	return sess
}

func (s *sessions) len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.byClient)
}

// evictIdle forgets every session not used within ttl and returns how many went.
func (s *sessions) evictIdle(ttl time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	cutoff := s.now().Add(-ttl)
	evicted := 0
	for clientID, sess := range s.byClient {
		if sess.lastSeen.Before(cutoff) {
			delete(s.byClient, clientID)
			evicted++
		}
	}
	return evicted
}

// SweepSessions evicts sessions idle for longer than ttl until ctx is cancelled.
func (s *Scatter) SweepSessions(ctx context.Context, ttl time.Duration) error {
	if s.sessions == nil || ttl <= 0 {
		return nil
	}
	interval := max(ttl/2, minSweepInterval)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if n := s.sessions.evictIdle(ttl); n > 0 {
				log.Printf("evicted %d idle sessions", n)
			}
		}
	}
}
