package client

import (
	"context"
	"log"
	"sync"
	"sync/atomic"
)

// SyncResult reports one replayed order back to the caller so the UI
// can swap the provisional entry for the real order number.
type SyncResult struct {
	Local        PendingOrder
	Confirmation *OrderConfirmation
}

// Syncer replays the pending queue against the API. Only one sync pass
// runs at a time; a pass triggered while another is in flight is a
// no-op rather than a queued duplicate.
type Syncer struct {
	api    *API
	queue  *Queue
	mu     sync.Mutex
	online atomic.Bool

	// OnSynced, when set, is called for every order the server accepts.
	OnSynced func(SyncResult)
}

func NewSyncer(api *API, queue *Queue) *Syncer {
	return &Syncer{api: api, queue: queue}
}

func (s *Syncer) Online() bool {
	return s.online.Load()
}

// SetOnline records the connectivity signal; a transition to online
// kicks a sync pass.
func (s *Syncer) SetOnline(ctx context.Context, online bool) {
	was := s.online.Swap(online)
	if online && !was {
		s.Sync(ctx)
	}
}

// Start replays anything left over from a previous run.
func (s *Syncer) Start(ctx context.Context) {
	s.online.Store(true)
	s.Sync(ctx)
}

// Sync pushes pending orders in insertion order. An acknowledged row is
// deleted from the local store; a failed row stays in the queue and the
// pass moves on to the next one, retrying it on the next pass. Returns
// the number of orders accepted.
func (s *Syncer) Sync(ctx context.Context) int {
	if !s.online.Load() {
		return 0
	}
	if !s.mu.TryLock() {
		return 0
	}
	defer s.mu.Unlock()

	rows, err := s.queue.Pending()
	if err != nil {
		log.Printf("failed to read pending orders: %v", err)
		return 0
	}

	synced := 0
	for _, row := range rows {
		if ctx.Err() != nil {
			return synced
		}

		req, err := s.queue.Request(&row)
		if err != nil {
			log.Printf("pending order %s has unreadable payload: %v", row.ClientID, err)
			continue
		}

		conf, err := s.api.CreateOrder(ctx, req)
		if err != nil {
			log.Printf("failed to sync order %s: %v", row.ClientID, err)
			continue
		}

		// The server owns the order now; the local row is gone for good.
		if err := s.queue.Remove(row.ID); err != nil {
			log.Printf("failed to remove synced order %s: %v", row.ClientID, err)
			continue
		}
		synced++
		if s.OnSynced != nil {
			s.OnSynced(SyncResult{Local: row, Confirmation: conf})
		}
	}
	return synced
}
