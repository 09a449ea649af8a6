package convo

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// store is the in-memory conversation repository. Handling reads a copy,
// mutates it and writes it back as a full replace; if the transport ever
// delivers two events for one id concurrently, the later Upsert wins
// wholesale. That read-modify-write race is accepted here rather than
// hidden behind per-id locking.
type store struct {
	mu    sync.RWMutex
	convs map[string]Conversation
}

func NewStore() Repo {
	return &store{convs: make(map[string]Conversation)}
}

func (s *store) Get(id string) (Conversation, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	conv, ok := s.convs[id]
	if !ok {
		return Conversation{}, false
	}
	// copy the log so the caller can mutate freely
	conv.Messages = append([]Message(nil), conv.Messages...)
	return conv, true
}

func (s *store) Upsert(conv Conversation) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.convs[conv.ID] = conv
}

// EvictOlderThan drops conversations whose last activity is before the
// cutoff and returns how many were removed. The timestamp check is the
// only guard: an id being handled right now has a fresh LastActivityAt by
// the time its Upsert lands, so eviction cannot interrupt it.
func (s *store) EvictOlderThan(cutoff time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for id, conv := range s.convs {
		if conv.LastActivityAt.Before(cutoff) {
			delete(s.convs, id)
			n++
		}
	}
	return n
}

// RunSweeper periodically evicts conversations idle past the session
// timeout. Blocks until the context is done.
func RunSweeper(ctx context.Context, repo Repo, interval, sessionTimeout time.Duration, log *zap.Logger) error {
	log = log.Named("sweeper")
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now := <-ticker.C:
			if n := repo.EvictOlderThan(now.Add(-sessionTimeout)); n > 0 {
				log.Info("evicted idle conversations", zap.Int("count", n))
			}
		}
	}
}
