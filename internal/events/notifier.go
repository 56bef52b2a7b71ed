// Package events wakes event stream subscribers after a state change commits.
package events

import "sync"

// Notifier is a level-triggered broadcast. Subscribers take the current wait
// channel, re-read the event log, and block on the channel until Broadcast
// closes it. A Broadcast between the read and the wait is never lost because
// the channel taken before the read is the one that gets closed.
type Notifier struct {
	mu sync.Mutex
	ch chan struct{}
}

// NewNotifier constructs a notifier.
func NewNotifier() *Notifier {
	return &Notifier{ch: make(chan struct{})}
}

// Wait returns a channel closed by the next Broadcast.
func (n *Notifier) Wait() <-chan struct{} {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.ch
}

// Broadcast wakes every current waiter.
func (n *Notifier) Broadcast() {
	n.mu.Lock()
	defer n.mu.Unlock()
	close(n.ch)
	n.ch = make(chan struct{})
}
