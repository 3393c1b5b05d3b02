package engine

import (
	"sync"
	"time"
)

const (
	// LevelUpShowDelay lets the completion feedback finish before the banner appears.
	LevelUpShowDelay = 200 * time.Millisecond

	// LevelUpAutoDismiss hides a visible banner that was not dismissed by hand.
	LevelUpAutoDismiss = 3500 * time.Millisecond
)

// Notification is a snapshot of the level-up banner. Gen is the generation
// it was produced in; OnChange may deliver snapshots out of order, so a
// receiver keeps the one with the highest Gen.
type Notification struct {
	Visible bool
	Level   int
	Gen     uint64
}

// Notifier drives the transient level-up banner: hidden -> visible after
// LevelUpShowDelay, visible -> hidden on Dismiss or after LevelUpAutoDismiss.
//
// Every Trigger, Dismiss and Close bumps a generation counter and stops the
// pending timer; a timer that fires for an older generation does nothing.
type Notifier struct {
	mu          sync.Mutex
	showDelay   time.Duration
	autoDismiss time.Duration
	onChange    func(Notification)

	gen    uint64
	timer  *time.Timer
	state  Notification
	closed bool
}

type NotifierOption func(*Notifier)

// WithDelays overrides the show delay and auto-dismiss timeout.
func WithDelays(show, dismiss time.Duration) NotifierOption {
	return func(n *Notifier) {
		n.showDelay = show
		n.autoDismiss = dismiss
	}
}

// WithOnChange registers fn to run after every visibility change.
// fn runs outside the Notifier's lock, possibly on a timer goroutine.
func WithOnChange(fn func(Notification)) NotifierOption {
	return func(n *Notifier) { n.onChange = fn }
}

func NewNotifier(opts ...NotifierOption) *Notifier {
	n := &Notifier{
		showDelay:   LevelUpShowDelay,
		autoDismiss: LevelUpAutoDismiss,
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Trigger schedules the banner for level. Any pending show or dismiss from an
// earlier trigger is cancelled.
func (n *Notifier) Trigger(level int) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.closed {
		return
	}
	gen := n.bumpLocked()
	n.timer = time.AfterFunc(n.showDelay, func() { n.show(gen, level) })
}

// Dismiss hides the banner now and cancels any pending timer.
func (n *Notifier) Dismiss() {
	n.mu.Lock()
	if n.closed {
		n.mu.Unlock()
		return
	}
	gen := n.bumpLocked()
	changed := n.state.Visible
	n.state = Notification{Gen: gen}
	snap := n.state
	n.mu.Unlock()

	if changed {
		n.emit(snap)
	}
}

// Close cancels pending timers. The Notifier ignores all calls afterwards.
func (n *Notifier) Close() {
	n.mu.Lock()
	defer n.mu.Unlock()
	gen := n.bumpLocked()
	n.closed = true
	n.state = Notification{Gen: gen}
}

// State returns the current banner state.
func (n *Notifier) State() Notification {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.state
}

func (n *Notifier) show(gen uint64, level int) {
	n.mu.Lock()
	if n.closed || gen != n.gen {
		n.mu.Unlock()
		return
	}
	n.state = Notification{Visible: true, Level: level, Gen: gen}
	snap := n.state
	n.timer = time.AfterFunc(n.autoDismiss, func() { n.hide(gen) })
	n.mu.Unlock()

	n.emit(snap)
}

func (n *Notifier) hide(gen uint64) {
	n.mu.Lock()
	if n.closed || gen != n.gen || !n.state.Visible {
		n.mu.Unlock()
		return
	}
	n.gen++
	n.timer = nil
	n.state = Notification{Gen: n.gen}
	snap := n.state
	n.mu.Unlock()

	n.emit(snap)
}

func (n *Notifier) bumpLocked() uint64 {
	if n.timer != nil {
		n.timer.Stop()
		n.timer = nil
	}
	n.gen++
	return n.gen
}

func (n *Notifier) emit(s Notification) {
	if n.onChange != nil {
		n.onChange(s)
	}
}
