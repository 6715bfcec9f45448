// Package analytics computes dashboard statistics over a snapshot of one
// user's entries. Every function is pure: the caller fetches the entries and
// passes "now" in explicitly, so a computation sees a single fixed clock
// reading even across a midnight boundary.
package analytics

import (
	"math"
	"sort"
	"time"

	"github.com/jlin/moodtrack-api/internal/models"
)

// AnalyzableEntry is the shared view of mood and journal entries that the
// engine operates on. HasMood distinguishes "no usable mood" from mood zero.
type AnalyzableEntry struct {
	OccurredAt time.Time
	Mood       float64
	HasMood    bool
	Activities []string
}

// emoji five-point scale used by journal entries
var moodEmojiValues = map[string]float64{
	"😊": 5,
	"😌": 4,
	"😐": 3,
	"😔": 2,
	"😣": 1,
}

// MoodValue maps a journal mood emoji to its numeric value. Unknown or empty
// moods report ok=false and are excluded from averages.
func MoodValue(mood string) (float64, bool) {
	v, ok := moodEmojiValues[mood]
	return v, ok
}

func FromMoodEntry(e models.MoodEntry) AnalyzableEntry {
	return AnalyzableEntry{
		OccurredAt: e.OccurredAt,
		Mood:       float64(e.Mood),
		HasMood:    e.Mood >= 1 && e.Mood <= 10,
		Activities: e.Activities,
	}
}

func FromJournalEntry(e models.JournalEntry) AnalyzableEntry {
	a := AnalyzableEntry{
		OccurredAt: e.CreatedAt,
		Activities: e.Tags,
	}
	if e.Mood != nil {
		a.Mood, a.HasMood = MoodValue(*e.Mood)
	}
	return a
}

// DayKey returns the canonical calendar-day key for t.
func DayKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// SameDay reports whether a and b fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}

// Streak returns the number of consecutive calendar days with at least one
// entry, counting backward from now. A day without an entry today means the
// streak is 0 no matter how many prior days are filled. Multiple entries on
// one day count once.
func Streak(entries []AnalyzableEntry, now time.Time) int {
	if len(entries) == 0 {
		return 0
	}

	days := make(map[string]bool, len(entries))
	for _, e := range entries {
		days[DayKey(e.OccurredAt)] = true
	}

	if !days[DayKey(now)] {
		return 0
	}

	streak := 0
	check := now
	for days[DayKey(check)] {
		streak++
		check = check.AddDate(0, 0, -1)
	}
	return streak
}

// MonthlyProgress returns the percentage of the monthly entry goal reached in
// the calendar month of now, clamped to 100. monthlyGoal must be positive.
func MonthlyProgress(entries []AnalyzableEntry, monthlyGoal int, now time.Time) int {
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	monthEnd := monthStart.AddDate(0, 1, 0)

	count := 0
	for _, e := range entries {
		if !e.OccurredAt.Before(monthStart) && e.OccurredAt.Before(monthEnd) {
			count++
		}
	}

	progress := int(math.Round(float64(count) / float64(monthlyGoal) * 100))
	if progress > 100 {
		progress = 100
	}
	return progress
}

// AverageMood returns the arithmetic mean of the valid mood values, or 0 when
// none exist. Entries without a usable mood are excluded from the denominator.
func AverageMood(entries []AnalyzableEntry) float64 {
	sum := 0.0
	n := 0
	for _, e := range entries {
		if e.HasMood {
			sum += e.Mood
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

// ActivityCount pairs an activity label with its occurrence count.
type ActivityCount struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// TopActivities returns up to k activities ordered by descending count.
// Labels are compared case-sensitively; ties keep first-encountered order.
func TopActivities(entries []AnalyzableEntry, k int) []ActivityCount {
	counts := map[string]int{}
	var order []string
	for _, e := range entries {
		for _, a := range e.Activities {
			if a == "" {
				continue
			}
			if _, seen := counts[a]; !seen {
				order = append(order, a)
			}
			counts[a]++
		}
	}

	result := make([]ActivityCount, 0, len(order))
	for _, label := range order {
		result = append(result, ActivityCount{Label: label, Count: counts[label]})
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Count > result[j].Count
	})

	if k >= 0 && len(result) > k {
		result = result[:k]
	}
	return result
}

// HasEntryOn reports whether any entry falls on the same calendar day as t.
// The dashboard uses it for the "logged today" flag.
func HasEntryOn(entries []AnalyzableEntry, t time.Time) bool {
	for _, e := range entries {
		if SameDay(e.OccurredAt, t) {
			return true
		}
	}
	return false
}
