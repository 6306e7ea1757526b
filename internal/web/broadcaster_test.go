package web

import (
	"encoding/json"
	"testing"
	"time"
)

func TestBroadcaster_SubscribeReceivesMessages(t *testing.T) {
	b := NewStatusBroadcaster()
	ch, unsub := b.Subscribe()
	defer unsub()

	b.Broadcast("info", "wheel rendered")

	select {
	case payload := <-ch:
		var evt StatusEvent
		if err := json.Unmarshal([]byte(payload), &evt); err != nil {
			t.Fatalf("payload is not JSON: %v", err)
		}
		if evt.Msg != "wheel rendered" || evt.Level != "info" {
			t.Errorf("event = %+v, want info/wheel rendered", evt)
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for broadcast")
	}
}

func TestBroadcaster_UnsubscribeStopsDelivery(t *testing.T) {
	b := NewStatusBroadcaster()
	_, unsub := b.Subscribe()
	unsub()

	if n := b.ClientCount(); n != 0 {
		t.Errorf("ClientCount = %d after unsubscribe, want 0", n)
	}
	// Broadcasting with no clients must not panic or block.
	b.Broadcast("info", "nobody listening")
}

func TestBroadcaster_SlowClientDoesNotBlock(t *testing.T) {
	b := NewStatusBroadcaster()
	_, unsub := b.Subscribe() // never read
	defer unsub()

	done := make(chan struct{})
	go func() {
		for i := 0; i < 200; i++ { // more than the channel buffer
			b.Broadcast("info", "burst")
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("broadcast blocked on a slow client")
	}
}

func TestBroadcastWriter_ForwardsLines(t *testing.T) {
	b := NewStatusBroadcaster()
	ch, unsub := b.Subscribe()
	defer unsub()

	w := BroadcastWriter(b)
	if _, err := w.Write([]byte("  solver pass complete \n")); err != nil {
		t.Fatal(err)
	}

	select {
	case payload := <-ch:
		var evt StatusEvent
		if err := json.Unmarshal([]byte(payload), &evt); err != nil {
			t.Fatal(err)
		}
		if evt.Msg != "solver pass complete" {
			t.Errorf("msg = %q, want trimmed line", evt.Msg)
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for forwarded write")
	}

	// Whitespace-only writes are dropped.
	if _, err := w.Write([]byte("   \n")); err != nil {
		t.Fatal(err)
	}
	select {
	case payload := <-ch:
		t.Errorf("unexpected broadcast for blank write: %q", payload)
	case <-time.After(100 * time.Millisecond):
	}
}
