package stack

import (
	"testing"
	"time"
)

func TestPushPopOrder(t *testing.T) {
	s := New()
	for _, kind := range []string{"a", "b", "c"} {
		s.Push(Action{Kind: kind, At: time.Now()})
	}

	want := []string{"c", "b", "a"}
	for _, w := range want {
		a, ok := s.Pop()
		if !ok {
			t.Fatalf("Pop returned empty, want %q", w)
		}
		if a.Kind != w {
			t.Errorf("popped %q, want %q", a.Kind, w)
		}
	}
	if _, ok := s.Pop(); ok {
		t.Error("Pop on empty stack must report ok=false")
	}
}

func TestPeekDoesNotRemove(t *testing.T) {
	s := New()
	s.Push(Action{Kind: KindMood})
	a, ok := s.Peek()
	if !ok || a.Kind != KindMood {
		t.Fatalf("Peek = %+v, %v", a, ok)
	}
	if s.Len() != 1 {
		t.Errorf("len = %d after Peek, want 1", s.Len())
	}
}

func TestAllMostRecentFirst(t *testing.T) {
	s := New()
	s.Push(Action{Kind: "old"})
	s.Push(Action{Kind: "new"})
	all := s.All()
	if len(all) != 2 || all[0].Kind != "new" || all[1].Kind != "old" {
		t.Errorf("All() = %+v", all)
	}
	if s.Len() != 2 {
		t.Error("All must not drain the stack")
	}
}

func TestEmpty(t *testing.T) {
	s := New()
	if s.Len() != 0 {
		t.Errorf("len = %d", s.Len())
	}
	if _, ok := s.Peek(); ok {
		t.Error("Peek on empty stack must report ok=false")
	}
	if got := s.All(); len(got) != 0 {
		t.Errorf("All() = %+v", got)
	}
}
