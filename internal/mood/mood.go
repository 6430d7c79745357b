// Package mood implements mood check-ins: a bounded emoji scale, a tiered
// supportive response, and the journal content format mood entries use.
package mood

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/minebloom/bloom/internal/apperr"
)

// Emojis labels the mood scale; score n maps to Emojis[n-1].
var Emojis = []string{"😢", "😕", "😐", "🙂", "😄", "😂", "🥰", "😇", "✨", "🫶🏻", "💸"}

// Scale returns the highest valid score.
func Scale() int {
	return len(Emojis)
}

// Valid reports whether score is on the scale.
func Valid(score int) bool {
	return score >= 1 && score <= len(Emojis)
}

// Response returns the supportive message for a submitted score.
func Response(score int) string {
	switch {
	case score >= 4:
		return "You did really well today. Rest up for a brighter tomorrow."
	case score == 3:
		return "You did your best today. Give yourself a break."
	default:
		return "Thank you for holding on today. Rest first, try again tomorrow."
	}
}

// Content renders a check-in as journal entry text. The numeric score is
// kept next to the emoji so the entry stays unambiguous in the raw file.
func Content(score int, note string) (string, error) {
	if !Valid(score) {
		return "", fmt.Errorf("mood: score %d outside 1..%d: %w", score, len(Emojis), apperr.ErrInvalidAnswers)
	}
	content := fmt.Sprintf("Mood: %s (%d)", Emojis[score-1], score)
	if note = strings.TrimSpace(note); note != "" {
		content += "\n" + note
	}
	return content, nil
}

var scoreAnnotation = regexp.MustCompile(`\s*\(\d+\)`)

// DisplayContent strips the numeric score annotation from the first line
// of a mood entry for timeline display. Other entries pass through.
func DisplayContent(content string) string {
	if !strings.HasPrefix(content, "Mood:") {
		return content
	}
	first, rest, found := strings.Cut(content, "\n")
	first = scoreAnnotation.ReplaceAllString(first, "")
	if !found {
		return first
	}
	return first + "\n" + rest
}
