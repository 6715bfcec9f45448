package analytics

import (
	"math"
	"testing"
	"time"
)

func entryOn(t time.Time, activities ...string) AnalyzableEntry {
	return AnalyzableEntry{OccurredAt: t, Mood: 5, HasMood: true, Activities: activities}
}

func TestStreakRequiresToday(t *testing.T) {
	now := time.Date(2025, 6, 15, 14, 30, 0, 0, time.UTC)

	// Entries for yesterday and the day before, nothing today.
	entries := []AnalyzableEntry{
		entryOn(now.AddDate(0, 0, -1)),
		entryOn(now.AddDate(0, 0, -2)),
	}
	if got := Streak(entries, now); got != 0 {
		t.Errorf("streak without a today entry should be 0, got %d", got)
	}

	entries = append(entries, entryOn(now))
	if got := Streak(entries, now); got != 3 {
		t.Errorf("expected streak 3, got %d", got)
	}
}

func TestStreakStopsAtGap(t *testing.T) {
	now := time.Date(2025, 6, 15, 9, 0, 0, 0, time.UTC)

	// today, today-1, today-2, then a gap at today-3, then today-4.
	entries := []AnalyzableEntry{
		entryOn(now),
		entryOn(now.AddDate(0, 0, -1)),
		entryOn(now.AddDate(0, 0, -2)),
		entryOn(now.AddDate(0, 0, -4)),
	}
	if got := Streak(entries, now); got != 3 {
		t.Errorf("expected streak 3 across the gap, got %d", got)
	}
}

func TestStreakIgnoresDuplicateDays(t *testing.T) {
	now := time.Date(2025, 6, 15, 22, 0, 0, 0, time.UTC)

	entries := []AnalyzableEntry{
		entryOn(now),
		entryOn(now.AddDate(0, 0, -1)),
	}
	before := Streak(entries, now)

	// A second entry on an already-counted day changes nothing.
	morning := time.Date(2025, 6, 14, 7, 0, 0, 0, time.UTC)
	entries = append(entries, entryOn(morning))
	if got := Streak(entries, now); got != before {
		t.Errorf("duplicate day changed streak: %d -> %d", before, got)
	}
}

func TestStreakEmpty(t *testing.T) {
	if got := Streak(nil, time.Now()); got != 0 {
		t.Errorf("empty input should give 0, got %d", got)
	}
}

func TestMonthlyProgressClampsAt100(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	var entries []AnalyzableEntry
	for i := 0; i < 12; i++ {
		entries = append(entries, entryOn(time.Date(2025, 6, 1+i, 10, 0, 0, 0, time.UTC)))
	}
	if got := MonthlyProgress(entries, 10, now); got != 100 {
		t.Errorf("12 entries against goal 10 should clamp to 100, got %d", got)
	}
}

func TestMonthlyProgressCountsOnlyCurrentMonth(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	entries := []AnalyzableEntry{
		entryOn(time.Date(2025, 6, 3, 8, 0, 0, 0, time.UTC)),
		entryOn(time.Date(2025, 6, 10, 8, 0, 0, 0, time.UTC)),
		entryOn(time.Date(2025, 5, 31, 8, 0, 0, 0, time.UTC)), // previous month
		entryOn(time.Date(2025, 7, 1, 8, 0, 0, 0, time.UTC)),  // next month
	}
	if got := MonthlyProgress(entries, 10, now); got != 20 {
		t.Errorf("expected 20%% for 2 of 10, got %d", got)
	}
}

func TestMonthlyProgressMonotonic(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	var entries []AnalyzableEntry
	prev := 0
	for i := 0; i < 15; i++ {
		entries = append(entries, entryOn(time.Date(2025, 6, 1+i, 10, 0, 0, 0, time.UTC)))
		got := MonthlyProgress(entries, 10, now)
		if got < prev {
			t.Fatalf("progress decreased from %d to %d at %d entries", prev, got, i+1)
		}
		prev = got
	}
}

func TestAverageMoodExcludesMissing(t *testing.T) {
	entries := []AnalyzableEntry{
		{OccurredAt: time.Now(), Mood: 8, HasMood: true},
		{OccurredAt: time.Now(), HasMood: false},
	}
	if got := AverageMood(entries); got != 8 {
		t.Errorf("entry without mood must not dilute the average, got %v", got)
	}
}

func TestAverageMoodEmpty(t *testing.T) {
	if got := AverageMood(nil); got != 0 {
		t.Errorf("empty input should give 0, got %v", got)
	}
}

func TestAverageMoodMean(t *testing.T) {
	entries := []AnalyzableEntry{
		{OccurredAt: time.Now(), Mood: 7, HasMood: true},
		{OccurredAt: time.Now(), Mood: 4, HasMood: true},
	}
	if got := AverageMood(entries); math.Abs(got-5.5) > 1e-9 {
		t.Errorf("expected 5.5, got %v", got)
	}
}

func TestTopActivitiesFirstSeenTieBreak(t *testing.T) {
	now := time.Now()
	entries := []AnalyzableEntry{
		entryOn(now, "Work", "Work", "Exercise", "Family"),
	}

	got := TopActivities(entries, 2)
	if len(got) != 2 {
		t.Fatalf("expected 2 results, got %d", len(got))
	}
	if got[0].Label != "Work" || got[0].Count != 2 {
		t.Errorf("expected (Work, 2) first, got (%s, %d)", got[0].Label, got[0].Count)
	}
	// Exercise and Family both count 1; Exercise was seen first.
	if got[1].Label != "Exercise" || got[1].Count != 1 {
		t.Errorf("expected (Exercise, 1) second, got (%s, %d)", got[1].Label, got[1].Count)
	}
}

func TestTopActivitiesCaseSensitive(t *testing.T) {
	entries := []AnalyzableEntry{
		entryOn(time.Now(), "work", "Work", "work"),
	}
	got := TopActivities(entries, 10)
	if len(got) != 2 {
		t.Fatalf("case variants should count separately, got %v", got)
	}
	if got[0].Label != "work" || got[0].Count != 2 {
		t.Errorf("expected (work, 2) first, got (%s, %d)", got[0].Label, got[0].Count)
	}
}

func TestMoodValueMapping(t *testing.T) {
	if v, ok := MoodValue("😊"); !ok || v != 5 {
		t.Errorf("😊 should map to 5, got %v ok=%v", v, ok)
	}
	if v, ok := MoodValue("😣"); !ok || v != 1 {
		t.Errorf("😣 should map to 1, got %v ok=%v", v, ok)
	}
	if _, ok := MoodValue("🤖"); ok {
		t.Error("unknown emoji should not map to a mood")
	}
	if _, ok := MoodValue(""); ok {
		t.Error("empty mood should not map to a mood")
	}
}

func TestSameDayIgnoresTimeOfDay(t *testing.T) {
	a := time.Date(2025, 6, 15, 0, 0, 1, 0, time.UTC)
	b := time.Date(2025, 6, 15, 23, 59, 59, 0, time.UTC)
	if !SameDay(a, b) {
		t.Error("same calendar day with different times should match")
	}
	if SameDay(a, a.AddDate(0, 0, 1)) {
		t.Error("adjacent days should not match")
	}
}
