// Package affirmation selects short supportive messages from a fixed set,
// either deterministically per calendar day or uniformly at random.
package affirmation

import (
	"fmt"
	"math/rand/v2"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Provider exposes the single selection capability shared by all variants.
type Provider interface {
	Affirmation() string
}

// Set is an ordered, never-mutated list of affirmation texts.
type Set []string

// DefaultSet is the built-in affirmation list, used when no set file is
// configured.
var DefaultSet = Set{
	"You are beautiful, inside and out.",
	"You are great in your own way.",
	"You are stronger than you think.",
	"You are kind and full of care.",
	"You deserve to be loved and treated well.",
	"You deserve calm.",
	"You are enough as you are.",
	"You are precious.",
	"You are not alone.",
	"You are allowed to rest today.",
	"You have a right to healthy boundaries.",
	"You are allowed to choose yourself.",
	"You do not have to be perfect to be loved.",
	"You are brave because you keep trying.",
	"There is strength in your gentleness.",
	"You are allowed to set limits.",
	"You deserve to feel safe.",
	"You have a right to feel at peace.",
	"You can get through this, one step at a time.",
	"You deserve support.",
}

// LoadSet reads an affirmation set from a YAML file containing a sequence
// of strings. An empty file yields an error rather than an empty set.
func LoadSet(path string) (Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("affirmation: read set file: %w", err)
	}
	var set Set
	if err := yaml.Unmarshal(data, &set); err != nil {
		return nil, fmt.Errorf("affirmation: parse set file %s: %w", path, err)
	}
	if len(set) == 0 {
		return nil, fmt.Errorf("affirmation: set file %s contains no affirmations", path)
	}
	return set, nil
}

// Daily selects deterministically by calendar day: the same local date
// always yields the same message, changing only at date rollover.
type Daily struct {
	set Set
	now func() time.Time
}

// NewDaily creates a daily provider. An empty set falls back to DefaultSet
// so selection never divides by zero.
func NewDaily(set Set) *Daily {
	if len(set) == 0 {
		set = DefaultSet
	}
	return &Daily{set: set, now: time.Now}
}

// Affirmation returns the message for the current local date.
func (d *Daily) Affirmation() string {
	return d.set[dayOrdinal(d.now())%len(d.set)]
}

// dayOrdinal numbers local calendar days consecutively. The result is
// non-negative for any date from year 1 on, so a plain modulus stays in
// range.
func dayOrdinal(t time.Time) int {
	y, m, day := t.Date()
	u := time.Date(y, m, day, 0, 0, 0, 0, time.UTC).Unix()
	days := u / 86400
	if u%86400 != 0 && u < 0 {
		days--
	}
	// Shift so that 0001-01-01 maps to a positive ordinal.
	const shift = 719162 // days from 0001-01-01 to 1970-01-01
	return int(days) + shift
}

// Random selects uniformly at random on every call.
type Random struct {
	set Set
}

// NewRandom creates a random provider. An empty set falls back to
// DefaultSet.
func NewRandom(set Set) *Random {
	if len(set) == 0 {
		set = DefaultSet
	}
	return &Random{set: set}
}

// Affirmation returns a uniformly random message.
func (r *Random) Affirmation() string {
	return r.set[rand.IntN(len(r.set))]
}
