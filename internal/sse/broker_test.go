package sse

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestSubscribeUnsubscribe(t *testing.T) {
	b := NewBroker(100 * time.Millisecond)
	defer b.Close()
	if b.ClientCount() != 0 {
		t.Fatalf("expected 0 clients")
	}
	ch := b.Subscribe()
	if b.ClientCount() != 1 {
		t.Fatalf("expected 1 client")
	}
	b.Unsubscribe(ch)
	if b.ClientCount() != 0 {
		t.Fatalf("expected 0 clients after unsub")
	}
}

func TestPublishDelivery(t *testing.T) {
	b := NewBroker(100 * time.Millisecond)
	defer b.Close()
	ch := b.Subscribe()
	defer b.Unsubscribe(ch)

	b.Publish(Event{Type: "affirmation.saved", Data: map[string]string{"text": "You are enough."}})

	select {
	case msg := <-ch:
		s := string(msg)
		if !strings.Contains(s, "event: affirmation.saved") {
			t.Errorf("missing event type in %q", s)
		}
		if !strings.Contains(s, `"text":"You are enough."`) {
			t.Errorf("missing data in %q", s)
		}
	case <-time.After(time.Second):
		t.Fatal("timeout waiting for message")
	}
}

func TestPublishJournalEvent_TimelineThrottle(t *testing.T) {
	b := NewBroker(500 * time.Millisecond)
	defer b.Close()
	ch := b.Subscribe()
	defer b.Unsubscribe(ch)

	// First event should trigger timeline.updated.
	b.PublishJournalEvent("updated", "journals_a.json")
	// Second event immediately should NOT trigger another timeline.updated.
	b.PublishJournalEvent("deleted", "journals_b.json")

	// Drain and count events.
	time.Sleep(50 * time.Millisecond)
	timelineCount := 0
	journalCount := 0
loop:
	for {
		select {
		case msg := <-ch:
			s := string(msg)
			if strings.Contains(s, "timeline.updated") {
				timelineCount++
			} else {
				journalCount++
			}
		default:
			break loop
		}
	}

	if journalCount != 2 {
		t.Errorf("journal events = %d, want 2", journalCount)
	}
	if timelineCount != 1 {
		t.Errorf("timeline events = %d, want 1 (throttled)", timelineCount)
	}
}

func TestJournalEventKinds(t *testing.T) {
	b := NewBroker(time.Hour) // suppress timeline noise after the first
	defer b.Close()
	ch := b.Subscribe()
	defer b.Unsubscribe(ch)

	b.PublishJournalEvent("updated", "journals_a.json")
	b.PublishJournalEvent("deleted", "journals_a.json")

	sawUpdated, sawDeleted := false, false
	deadline := time.After(time.Second)
	for !(sawUpdated && sawDeleted) {
		select {
		case msg := <-ch:
			s := string(msg)
			if strings.Contains(s, "journal.updated") {
				sawUpdated = true
			}
			if strings.Contains(s, "journal.deleted") {
				sawDeleted = true
			}
		case <-deadline:
			t.Fatalf("missing events: updated=%v deleted=%v", sawUpdated, sawDeleted)
		}
	}
}

func TestCloseClosesClients(t *testing.T) {
	b := NewBroker(100 * time.Millisecond)
	ch := b.Subscribe()
	b.Close()

	select {
	case _, ok := <-ch:
		if ok {
			t.Error("expected closed channel")
		}
	case <-time.After(time.Second):
		t.Fatal("client channel not closed")
	}

	// Operations after close must not panic or block.
	b.Publish(Event{Type: "x"})
	b.PublishJournalEvent("updated", "y")
	if b.ClientCount() != 0 {
		t.Error("expected 0 clients after close")
	}
}

func TestServeHTTPStreams(t *testing.T) {
	b := NewBroker(100 * time.Millisecond)
	defer b.Close()

	ctx, cancel := context.WithCancel(context.Background())
	req := httptest.NewRequest(http.MethodGet, "/api/events", nil).WithContext(ctx)
	rec := httptest.NewRecorder()

	done := make(chan struct{})
	go func() {
		b.ServeHTTP(rec, req)
		close(done)
	}()

	// Wait for the subscription to land, then publish.
	deadline := time.Now().Add(time.Second)
	for b.ClientCount() == 0 && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}
	b.Publish(Event{Type: "mood.recorded", Data: map[string]int{"score": 5}})

	time.Sleep(100 * time.Millisecond)
	cancel()
	<-done

	body := rec.Body.String()
	if !strings.Contains(body, "event: mood.recorded") {
		t.Errorf("stream missing event, got %q", body)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "text/event-stream" {
		t.Errorf("content type = %q", ct)
	}
}
