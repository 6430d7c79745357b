// Package scan implements the scripted questionnaires: the 5-item
// red-flag check and the batched relationship scan. Both reduce a
// sequence of yes/no answers to a count and map it to a tiered label.
package scan

import (
	"fmt"
	"strings"

	"github.com/minebloom/bloom/internal/apperr"
)

// Red-flag tiers.
const (
	TierSafe    = "safe"
	TierCaution = "caution"
	TierRisk    = "risk"
)

// redFlagItems is the fixed checklist. "your partner" is substituted with
// the partner's name when known.
var redFlagItems = []string{
	"Does your partner often control what you do?",
	"Does your partner often blame you for everything?",
	"Does your partner ask you to isolate from friends or family?",
	"Does your partner never take responsibility for bad behavior?",
	"Are there threats or intimidation?",
}

// RedFlagResult is the outcome of a completed red-flag check.
type RedFlagResult struct {
	Count  int    `json:"count"`
	Tier   string `json:"tier"`
	Advice string `json:"advice"`
}

// RedFlagQuestions returns the checklist with the partner name
// substituted in.
func RedFlagQuestions(partner string) []string {
	out := make([]string, len(redFlagItems))
	for i, q := range redFlagItems {
		out[i] = Substitute(q, partner)
	}
	return out
}

// ScoreRedFlags counts yes answers and maps the count to a tier:
// 0 is safe, 1-2 caution, 3 or more risk. The answer set must cover
// every checklist item.
func ScoreRedFlags(answers []bool) (RedFlagResult, error) {
	if len(answers) != len(redFlagItems) {
		return RedFlagResult{}, fmt.Errorf("scan: want %d answers, got %d: %w",
			len(redFlagItems), len(answers), apperr.ErrInvalidAnswers)
	}
	count := 0
	for _, yes := range answers {
		if yes {
			count++
		}
	}
	res := RedFlagResult{Count: count}
	switch {
	case count == 0:
		res.Tier = TierSafe
		res.Advice = "Keep maintaining healthy boundaries."
	case count <= 2:
		res.Tier = TierCaution
		res.Advice = "Stay alert and talk it over with someone you trust."
	default:
		res.Tier = TierRisk
		res.Advice = "Consider professional support and a safety plan."
	}
	return res, nil
}

// Substitute replaces the phrase "your partner" with the quoted partner
// name when one is known.
func Substitute(q, partner string) string {
	partner = strings.TrimSpace(partner)
	if partner == "" {
		return q
	}
	return strings.ReplaceAll(q, "your partner", "'"+partner+"'")
}
