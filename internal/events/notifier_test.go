package events

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNotifier_BroadcastWakesAllWaiters(t *testing.T) {
	n := NewNotifier()
	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		ch := n.Wait()
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-ch
		}()
	}
	n.Broadcast()

	done := make(chan struct{})
	go func() { wg.Wait(); close(done) }()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("waiters not woken")
	}
}

func TestNotifier_NewChannelAfterBroadcast(t *testing.T) {
	n := NewNotifier()
	before := n.Wait()
	n.Broadcast()
	after := n.Wait()

	select {
	case <-before:
	default:
		t.Fatal("old channel must be closed")
	}
	select {
	case <-after:
		t.Fatal("new channel must be open")
	default:
	}
	require.NotEqual(t, before, after)
}
