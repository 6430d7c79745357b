package scan

import (
	"errors"
	"strings"
	"testing"

	"github.com/minebloom/bloom/internal/apperr"
)

func TestScoreRedFlagsTiers(t *testing.T) {
	cases := []struct {
		answers []bool
		count   int
		tier    string
	}{
		{[]bool{false, false, false, false, false}, 0, TierSafe},
		{[]bool{true, false, false, false, false}, 1, TierCaution},
		{[]bool{true, true, false, false, false}, 2, TierCaution},
		{[]bool{true, true, true, false, false}, 3, TierRisk},
		{[]bool{true, true, true, true, true}, 5, TierRisk},
	}
	for _, c := range cases {
		res, err := ScoreRedFlags(c.answers)
		if err != nil {
			t.Fatalf("ScoreRedFlags(%v): %v", c.answers, err)
		}
		if res.Count != c.count || res.Tier != c.tier {
			t.Errorf("ScoreRedFlags(%v) = %d/%s, want %d/%s",
				c.answers, res.Count, res.Tier, c.count, c.tier)
		}
		if res.Advice == "" {
			t.Errorf("tier %s has no advice", res.Tier)
		}
	}
}

func TestScoreRedFlagsWrongLength(t *testing.T) {
	for _, answers := range [][]bool{nil, {true}, {true, true, true, true, true, true}} {
		if _, err := ScoreRedFlags(answers); !errors.Is(err, apperr.ErrInvalidAnswers) {
			t.Errorf("ScoreRedFlags(len %d) err = %v, want ErrInvalidAnswers", len(answers), err)
		}
	}
}

func TestRedFlagQuestionsSubstitution(t *testing.T) {
	generic := RedFlagQuestions("")
	named := RedFlagQuestions("Alex")
	if len(generic) != len(named) {
		t.Fatalf("question counts differ: %d, %d", len(generic), len(named))
	}
	for i := range named {
		if strings.Contains(named[i], "your partner") {
			t.Errorf("question %d not substituted: %q", i, named[i])
		}
	}
	if !strings.Contains(named[0], "'Alex'") {
		t.Errorf("question 0 = %q, want quoted name", named[0])
	}
	if strings.Contains(generic[0], "Alex") {
		t.Errorf("generic question mentions a name: %q", generic[0])
	}
}

func TestSubstitute(t *testing.T) {
	q := "Does your partner listen?"
	if got := Substitute(q, "  "); got != q {
		t.Errorf("blank partner changed question: %q", got)
	}
	if got := Substitute(q, "Alex"); got != "Does 'Alex' listen?" {
		t.Errorf("got %q", got)
	}
}

func TestQuestionsBatching(t *testing.T) {
	if Batches() != 5 {
		t.Fatalf("Batches() = %d, want 5", Batches())
	}
	total := 0
	for b := 0; b < Batches(); b++ {
		qs, err := Questions(b, "")
		if err != nil {
			t.Fatalf("Questions(%d): %v", b, err)
		}
		if len(qs) != BatchSize {
			t.Errorf("batch %d has %d questions, want %d", b, len(qs), BatchSize)
		}
		total += len(qs)
	}
	if total != TotalQuestions {
		t.Errorf("total = %d, want %d", total, TotalQuestions)
	}
}

func TestQuestionsCycleBeyondBase(t *testing.T) {
	// The base list is one short of the total, so the last slot repeats
	// the first question.
	first, _ := Questions(0, "")
	last, _ := Questions(Batches()-1, "")
	if last[BatchSize-1] != first[0] {
		t.Errorf("question 50 = %q, want repeat of question 1 %q", last[BatchSize-1], first[0])
	}
}

func TestQuestionsOutOfRange(t *testing.T) {
	for _, b := range []int{-1, Batches(), 100} {
		if _, err := Questions(b, ""); !errors.Is(err, apperr.ErrNotFound) {
			t.Errorf("Questions(%d) err = %v, want ErrNotFound", b, err)
		}
	}
}

func TestScoreBatch(t *testing.T) {
	answers := make([]bool, BatchSize)
	answers[0], answers[3], answers[7] = true, true, true
	score, err := ScoreBatch(answers)
	if err != nil {
		t.Fatalf("ScoreBatch: %v", err)
	}
	if score != 3 {
		t.Errorf("score = %d, want 3", score)
	}

	if _, err := ScoreBatch(answers[:5]); !errors.Is(err, apperr.ErrInvalidAnswers) {
		t.Errorf("short batch err = %v, want ErrInvalidAnswers", err)
	}
}

func TestBatchSummary(t *testing.T) {
	questions := []string{"Q one?", "Q two?"}
	answers := []bool{true, false}
	got := BatchSummary(questions, answers, 1)

	if !strings.HasPrefix(got, "Relationship Scan - Score 1/2") {
		t.Errorf("summary header = %q", got)
	}
	if !strings.Contains(got, "1. Q one? - Yes") {
		t.Errorf("missing yes line in %q", got)
	}
	if !strings.Contains(got, "2. Q two? - No") {
		t.Errorf("missing no line in %q", got)
	}
}
