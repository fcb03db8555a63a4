package engine

import (
	"context"
	"sync"

	"github.com/genricoloni/vudia/internal/domain"
)

type subscriber struct {
	id int
	fn func(domain.PlaybackSnapshot)

	mu   sync.Mutex // Held across the Seq check and fn so deliveries never overlap
	next uint64     // One past the highest sequence number delivered
}

// deliver hands snap to the subscriber unless a newer snapshot already went out
func (s *subscriber) deliver(snap domain.PlaybackSnapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if snap.Seq < s.next {
		return
	}
	s.next = snap.Seq + 1
	s.fn(snap)
}

// Subscribe registers fn for state changes. fn receives the current snapshot
// immediately, then every later change synchronously on the goroutine that made it.
// Snapshots arrive in increasing Seq order, one call at a time; fn must not block
// or call back into the engine.
func (e *Engine) Subscribe(fn func(domain.PlaybackSnapshot)) (unsubscribe func()) {
	e.mu.Lock()
	snap := e.snapshotLocked()

	e.subsMu.Lock()
	e.nextSub++
	sub := &subscriber{id: e.nextSub, fn: fn}
	e.subs = append(e.subs, sub)
	e.subsMu.Unlock()
	e.mu.Unlock()

	sub.deliver(snap)

	var once sync.Once
	return func() {
		once.Do(func() { e.unsubscribe(sub.id) })
	}
}

func (e *Engine) unsubscribe(id int) {
	e.subsMu.Lock()
	defer e.subsMu.Unlock()
	for i, s := range e.subs {
		if s.id == id {
			e.subs = append(e.subs[:i:i], e.subs[i+1:]...)
			return
		}
	}
}

func (e *Engine) publish(snap domain.PlaybackSnapshot) {
	e.subsMu.RLock()
	subs := make([]*subscriber, len(e.subs))
	copy(subs, e.subs)
	e.subsMu.RUnlock()

	for _, s := range subs {
		s.deliver(snap)
	}
}

// Watch returns a channel of snapshots for consumers running their own loop.
// When the consumer lags, older pending snapshots are dropped so the latest
// state always gets through. The channel is closed when ctx is done.
func (e *Engine) Watch(ctx context.Context, buffer int) <-chan domain.PlaybackSnapshot {
	if buffer < 1 {
		buffer = 1
	}
	ch := make(chan domain.PlaybackSnapshot, buffer)

	var mu sync.Mutex
	closed := false

	unsubscribe := e.Subscribe(func(snap domain.PlaybackSnapshot) {
		mu.Lock()
		defer mu.Unlock()
		if closed {
			return
		}
		for {
			select {
			case ch <- snap:
				return
			default:
				// Drop the oldest pending snapshot
				select {
				case <-ch:
				default:
				}
			}
		}
	})

	go func() {
		<-ctx.Done()
		unsubscribe()
		mu.Lock()
		closed = true
		close(ch)
		mu.Unlock()
	}()

	return ch
}
