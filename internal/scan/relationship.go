package scan

import (
	"fmt"
	"strings"

	"github.com/minebloom/bloom/internal/apperr"
)

// Relationship scan shape: TotalQuestions are served in batches of
// BatchSize. The base list is shorter than the total, so questions cycle
// and repeat across later batches. The repetition matches the original
// questionnaire design and is kept as-is; see DESIGN.md.
const (
	BatchSize      = 10
	TotalQuestions = 50
)

// baseQuestions is the fixed relationship question list, cycled to fill
// TotalQuestions.
var baseQuestions = []string{
	"Does your partner support your dreams?",
	"Does your partner respect your feelings?",
	"Is your communication open?",
	"Is there excessive control from your partner?",
	"Is your partner willing to apologize when wrong?",
	"Can the two of you share responsibilities?",
	"Does your partner listen when you need to talk?",
	"Do you feel appreciated?",
	"Do you feel safe with your partner?",
	"Does your partner support your personal time?",
	"Does your partner respect your boundaries?",
	"Can conflicts be resolved in a healthy way?",
	"Does your partner show empathy?",
	"Does your partner give you room to grow?",
	"Is your partner open about their feelings?",
	"Does your partner appreciate your efforts?",
	"Does your relationship give you a sense of calm?",
	"Are important decisions discussed together?",
	"Does your partner give emotional support?",
	"Is there honesty in the relationship?",
	"Does your partner respect your family?",
	"Is there tolerance for differences?",
	"Does your partner keep commitments?",
	"Does your partner encourage your independence?",
	"Is your partner there when you need them?",
	"Does non-verbal communication feel comfortable?",
	"Does your partner accept your flaws?",
	"Does your partner cheer for your dreams?",
	"Does your partner support your mental health?",
	"Do you share moments of joy?",
	"Does your partner avoid belittling behavior?",
	"Does your partner leave room for your hobbies?",
	"Is there mutual trust?",
	"Is your partner financially responsible together with you?",
	"Does your partner respect your privacy?",
	"Does your partner help when you are tired?",
	"Does your partner show gratitude?",
	"Does your partner avoid emotional manipulation?",
	"Is there effort to make amends after mistakes?",
	"Does the relationship give you positive energy?",
	"Does your partner give constructive feedback?",
	"Does your partner respect your opinions?",
	"Do you feel safe sharing secrets?",
	"Does your partner keep promises?",
	"Do you enjoy quality time together?",
	"Is your partner sensitive to your needs?",
	"Is there a willingness to grow together?",
	"Does your partner support your career decisions?",
	"Does communication stay warm even when busy?",
}

// Batches returns the number of batches in one full scan.
func Batches() int {
	return TotalQuestions / BatchSize
}

// Questions returns the questions for a zero-based batch, partner name
// substituted. Batches past the end of the scan yield apperr.ErrNotFound.
func Questions(batch int, partner string) ([]string, error) {
	start := batch * BatchSize
	if batch < 0 || start >= TotalQuestions {
		return nil, fmt.Errorf("scan: batch %d out of range: %w", batch, apperr.ErrNotFound)
	}
	out := make([]string, 0, BatchSize)
	for i := start; i < start+BatchSize && i < TotalQuestions; i++ {
		out = append(out, Substitute(baseQuestions[i%len(baseQuestions)], partner))
	}
	return out, nil
}

// ScoreBatch counts yes answers for one complete batch.
func ScoreBatch(answers []bool) (int, error) {
	if len(answers) != BatchSize {
		return 0, fmt.Errorf("scan: want %d answers, got %d: %w",
			BatchSize, len(answers), apperr.ErrInvalidAnswers)
	}
	count := 0
	for _, yes := range answers {
		if yes {
			count++
		}
	}
	return count, nil
}

// BatchSummary renders a completed batch as journal entry text: a score
// line followed by each question with its answer.
func BatchSummary(questions []string, answers []bool, score int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Relationship Scan - Score %d/%d", score, len(answers))
	for i, q := range questions {
		if i >= len(answers) {
			break
		}
		ans := "No"
		if answers[i] {
			ans = "Yes"
		}
		fmt.Fprintf(&b, "\n%d. %s - %s", i+1, q, ans)
	}
	return b.String()
}
