package mood

import (
	"errors"
	"strings"
	"testing"

	"github.com/minebloom/bloom/internal/apperr"
)

func TestValid(t *testing.T) {
	for score, want := range map[int]bool{0: false, 1: true, 11: true, 12: false, -3: false} {
		if got := Valid(score); got != want {
			t.Errorf("Valid(%d) = %v, want %v", score, got, want)
		}
	}
}

func TestContent(t *testing.T) {
	got, err := Content(5, "")
	if err != nil {
		t.Fatalf("Content: %v", err)
	}
	if got != "Mood: 😄 (5)" {
		t.Errorf("content = %q", got)
	}

	withNote, err := Content(5, "  long day  ")
	if err != nil {
		t.Fatal(err)
	}
	if withNote != "Mood: 😄 (5)\nlong day" {
		t.Errorf("content = %q", withNote)
	}
}

func TestContentOutOfRange(t *testing.T) {
	for _, score := range []int{0, 12, -1} {
		if _, err := Content(score, ""); !errors.Is(err, apperr.ErrInvalidAnswers) {
			t.Errorf("Content(%d) err = %v, want ErrInvalidAnswers", score, err)
		}
	}
}

func TestDisplayContentStripsScore(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Mood: 😄 (5)", "Mood: 😄"},
		{"Mood: 😄 (5)\nnote text", "Mood: 😄\nnote text"},
		{"Mood: 😄 (5)\nnote with (7) inside", "Mood: 😄\nnote with (7) inside"},
		{"plain entry (5)", "plain entry (5)"},
	}
	for _, c := range cases {
		if got := DisplayContent(c.in); got != c.want {
			t.Errorf("DisplayContent(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestResponseTiers(t *testing.T) {
	high := Response(4)
	mid := Response(3)
	low := Response(1)
	if high == mid || mid == low || high == low {
		t.Error("tiers must produce distinct messages")
	}
	if Response(11) != high {
		t.Error("all scores >= 4 share the high-tier message")
	}
	if Response(2) != low {
		t.Error("all scores <= 2 share the low-tier message")
	}
}

func TestScaleMatchesEmojis(t *testing.T) {
	if Scale() != len(Emojis) {
		t.Errorf("Scale() = %d, want %d", Scale(), len(Emojis))
	}
	for score := 1; score <= Scale(); score++ {
		content, err := Content(score, "")
		if err != nil {
			t.Fatalf("Content(%d): %v", score, err)
		}
		if !strings.Contains(content, Emojis[score-1]) {
			t.Errorf("Content(%d) = %q missing emoji", score, content)
		}
	}
}
