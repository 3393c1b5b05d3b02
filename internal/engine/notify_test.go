package engine

import (
	"testing"
	"time"

	"go.uber.org/goleak"
)

func waitFor(t *testing.T, ch <-chan Notification, want Notification) {
	t.Helper()
	select {
	case got := <-ch:
		if got.Visible != want.Visible || got.Level != want.Level {
			t.Fatalf("notification=%+v, want %+v", got, want)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for %+v", want)
	}
}

func expectQuiet(t *testing.T, ch <-chan Notification, d time.Duration) {
	t.Helper()
	select {
	case got := <-ch:
		t.Fatalf("unexpected notification %+v", got)
	case <-time.After(d):
	}
}

func TestNotifierShowsThenAutoDismisses(t *testing.T) {
	defer goleak.VerifyNone(t)

	ch := make(chan Notification, 4)
	n := NewNotifier(WithDelays(10*time.Millisecond, 40*time.Millisecond), WithOnChange(func(s Notification) { ch <- s }))
	defer n.Close()

	n.Trigger(3)
	if n.State().Visible {
		t.Fatalf("banner visible before show delay")
	}
	waitFor(t, ch, Notification{Visible: true, Level: 3})
	waitFor(t, ch, Notification{})
	if n.State().Visible {
		t.Fatalf("banner still visible after auto dismiss")
	}
}

func TestNotifierDismissCancelsAutoDismiss(t *testing.T) {
	defer goleak.VerifyNone(t)

	ch := make(chan Notification, 4)
	n := NewNotifier(WithDelays(5*time.Millisecond, 60*time.Millisecond), WithOnChange(func(s Notification) { ch <- s }))
	defer n.Close()

	n.Trigger(2)
	waitFor(t, ch, Notification{Visible: true, Level: 2})
	n.Dismiss()
	waitFor(t, ch, Notification{})

	// Second cycle: the first cycle's dismiss timer must not hide it early.
	n.Trigger(3)
	waitFor(t, ch, Notification{Visible: true, Level: 3})
	expectQuiet(t, ch, 30*time.Millisecond)
	if s := n.State(); !s.Visible || s.Level != 3 {
		t.Fatalf("state=%+v, want visible level 3", s)
	}
	waitFor(t, ch, Notification{})
}

func TestNotifierDismissBeforeShow(t *testing.T) {
	defer goleak.VerifyNone(t)

	ch := make(chan Notification, 4)
	n := NewNotifier(WithDelays(20*time.Millisecond, 20*time.Millisecond), WithOnChange(func(s Notification) { ch <- s }))
	defer n.Close()

	n.Trigger(4)
	n.Dismiss()
	expectQuiet(t, ch, 60*time.Millisecond)
	if n.State().Visible {
		t.Fatalf("banner shown after early dismiss")
	}
}

func TestNotifierCloseCancelsPending(t *testing.T) {
	defer goleak.VerifyNone(t)

	ch := make(chan Notification, 4)
	n := NewNotifier(WithDelays(20*time.Millisecond, 20*time.Millisecond), WithOnChange(func(s Notification) { ch <- s }))

	n.Trigger(5)
	n.Close()
	n.Trigger(6)
	expectQuiet(t, ch, 60*time.Millisecond)
	if n.State().Visible {
		t.Fatalf("banner visible after close")
	}
}

func TestNotifierGenerationsIncrease(t *testing.T) {
	defer goleak.VerifyNone(t)

	ch := make(chan Notification, 4)
	n := NewNotifier(WithDelays(5*time.Millisecond, time.Hour), WithOnChange(func(s Notification) { ch <- s }))
	defer n.Close()

	n.Trigger(4)
	var shown Notification
	select {
	case shown = <-ch:
	case <-time.After(2 * time.Second):
		t.Fatalf("banner never shown")
	}
	n.Dismiss()
	hidden := <-ch
	if hidden.Visible {
		t.Fatalf("dismiss emitted %+v", hidden)
	}
	if hidden.Gen <= shown.Gen {
		t.Fatalf("hidden gen %d not after shown gen %d", hidden.Gen, shown.Gen)
	}
	if got := n.State().Gen; got != hidden.Gen {
		t.Fatalf("State().Gen=%d, want %d", got, hidden.Gen)
	}
}
