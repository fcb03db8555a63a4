package engine

import (
	"context"
	"runtime"
	"sync"
	"testing"
	"time"

	"github.com/genricoloni/vudia/internal/domain"
)

func TestSubscribe_InitialAndChanges(t *testing.T) {
	eng, out := newTestEngine(t, 3)
	startEngine(t, eng, out)
	allowTransport(out)

	var got []domain.PlaybackSnapshot
	unsubscribe := eng.Subscribe(func(s domain.PlaybackSnapshot) {
		got = append(got, s)
	})

	if len(got) != 1 {
		t.Fatalf("expected initial snapshot, got %d", len(got))
	}
	if got[0].Index != 0 || got[0].IsPlaying {
		t.Errorf("unexpected initial snapshot: %+v", got[0])
	}

	eng.TogglePlayback()
	eng.Advance()
	eng.SelectTrack(42) // unknown, no change

	if len(got) != 3 {
		t.Fatalf("expected 3 snapshots, got %d", len(got))
	}
	for i := 1; i < len(got); i++ {
		if got[i].Seq <= got[i-1].Seq {
			t.Errorf("snapshots out of order: %d after %d", got[i].Seq, got[i-1].Seq)
		}
	}
	if !got[2].TrackChanged(got[1]) {
		t.Error("expected advance to report a track change")
	}

	unsubscribe()
	unsubscribe()
	eng.Advance()
	if len(got) != 3 {
		t.Errorf("expected no deliveries after unsubscribe, got %d", len(got))
	}
}

func TestSubscribe_NoChangeNoNotification(t *testing.T) {
	eng, out := newTestEngine(t, 2)
	startEngine(t, eng, out)
	allowTransport(out)

	count := 0
	eng.Subscribe(func(domain.PlaybackSnapshot) { count++ })

	// Seeking leaves the transport state untouched
	eng.Seek(time.Second)
	if count != 1 {
		t.Errorf("expected only the initial snapshot, got %d", count)
	}
}

func TestSubscribe_MultipleObservers(t *testing.T) {
	eng, out := newTestEngine(t, 2)
	startEngine(t, eng, out)
	allowTransport(out)

	var a, b []domain.PlaybackSnapshot
	eng.Subscribe(func(s domain.PlaybackSnapshot) { a = append(a, s) })
	eng.Subscribe(func(s domain.PlaybackSnapshot) { b = append(b, s) })

	eng.ToggleShuffle()

	if len(a) != 2 || len(b) != 2 {
		t.Fatalf("expected both observers notified, got %d and %d", len(a), len(b))
	}
	if a[1] != b[1] {
		t.Errorf("observers disagree: %+v vs %+v", a[1], b[1])
	}
}

func TestSubscriber_DropsStale(t *testing.T) {
	var seen []uint64
	sub := &subscriber{fn: func(s domain.PlaybackSnapshot) { seen = append(seen, s.Seq) }}

	sub.deliver(domain.PlaybackSnapshot{Seq: 3})
	sub.deliver(domain.PlaybackSnapshot{Seq: 2})
	sub.deliver(domain.PlaybackSnapshot{Seq: 3})
	sub.deliver(domain.PlaybackSnapshot{Seq: 4})

	if len(seen) != 2 || seen[0] != 3 || seen[1] != 4 {
		t.Errorf("unexpected deliveries: %v", seen)
	}
}

func TestSubscribe_ConcurrentMutationsEndOnLatest(t *testing.T) {
	eng, out := newTestEngine(t, 3)
	startEngine(t, eng, out)

	for trial := 0; trial < 200; trial++ {
		var (
			mu   sync.Mutex
			seen []uint64
		)
		unsubscribe := eng.Subscribe(func(s domain.PlaybackSnapshot) {
			// Widen the window between receiving and recording
			runtime.Gosched()
			mu.Lock()
			seen = append(seen, s.Seq)
			mu.Unlock()
		})

		var wg sync.WaitGroup
		wg.Add(2)
		go func() { defer wg.Done(); eng.ToggleShuffle() }()
		go func() { defer wg.Done(); eng.CycleRepeatMode() }()
		wg.Wait()
		unsubscribe()

		mu.Lock()
		for i := 1; i < len(seen); i++ {
			if seen[i] <= seen[i-1] {
				t.Fatalf("trial %d: out of order deliveries %v", trial, seen)
			}
		}
		if last := seen[len(seen)-1]; last != eng.Snapshot().Seq {
			t.Fatalf("trial %d: observer ended on seq %d, engine is at %d", trial, last, eng.Snapshot().Seq)
		}
		mu.Unlock()
	}
}

func TestWatch_CoalescesAndCloses(t *testing.T) {
	eng, out := newTestEngine(t, 3)
	startEngine(t, eng, out)
	allowTransport(out)

	ctx, cancel := context.WithCancel(context.Background())
	ch := eng.Watch(ctx, 1)

	// Nobody reads while the state changes several times
	eng.TogglePlayback()
	eng.Advance()
	eng.Advance()

	select {
	case snap := <-ch:
		if snap.Index != 2 || !snap.IsPlaying {
			t.Errorf("expected latest state, got %+v", snap)
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for snapshot")
	}

	cancel()
	select {
	case _, ok := <-ch:
		if ok {
			t.Error("expected channel to be closed")
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for close")
	}
}
