package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jlin/moodtrack-api/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	err = db.AutoMigrate(
		&models.User{},
		&models.MoodEntry{},
		&models.JournalEntry{},
		&models.Goal{},
		&models.Milestone{},
		&models.UserSettings{},
	)
	if err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return New(db)
}

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }
func strPtr(v string) *string     { return &v }

func moodRequest(day time.Time) models.CreateMoodEntryRequest {
	return models.CreateMoodEntryRequest{
		Date:       &day,
		Mood:       intPtr(7),
		Emotions:   []string{"calm"},
		Activities: []string{"Work", "Exercise"},
		Energy:     intPtr(4),
		Sleep:      floatPtr(7.5),
	}
}

func TestCreateMoodEntryRejectsSecondForSameDay(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	userID := uuid.New()
	day := time.Date(2025, 6, 15, 9, 0, 0, 0, time.UTC)

	if _, err := s.CreateMoodEntry(ctx, userID, moodRequest(day)); err != nil {
		t.Fatalf("first create failed: %v", err)
	}

	// Same calendar day, different time of day.
	evening := day.Add(10 * time.Hour)
	_, err := s.CreateMoodEntry(ctx, userID, moodRequest(evening))
	if !errors.Is(err, ErrDuplicateEntry) {
		t.Fatalf("expected ErrDuplicateEntry, got %v", err)
	}

	// A different user is unaffected.
	if _, err := s.CreateMoodEntry(ctx, uuid.New(), moodRequest(day)); err != nil {
		t.Fatalf("other user's create failed: %v", err)
	}
}

func TestUpdateMoodEntryKeepsOneRowPerDay(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	userID := uuid.New()
	day := time.Date(2025, 6, 15, 9, 0, 0, 0, time.UTC)

	created, err := s.CreateMoodEntry(ctx, userID, moodRequest(day))
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	updated, err := s.UpdateMoodEntry(ctx, userID, day, models.UpdateMoodEntryRequest{
		Mood:       intPtr(3),
		Emotions:   []string{"tired"},
		Activities: []string{"Family"},
		Energy:     intPtr(2),
		Sleep:      floatPtr(5),
		Notes:      strPtr("rough day"),
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.ID != created.ID {
		t.Error("update must keep the entry's identity")
	}
	if updated.Mood != 3 {
		t.Errorf("expected mood 3, got %d", updated.Mood)
	}

	entries, err := s.ListMoodEntries(ctx, userID, 0)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("expected exactly 1 entry for the day, got %d", len(entries))
	}
}

func TestUpdateMoodEntryMissingDay(t *testing.T) {
	s := newTestStore(t)

	_, err := s.UpdateMoodEntry(context.Background(), uuid.New(), time.Now(), models.UpdateMoodEntryRequest{
		Mood:   intPtr(5),
		Energy: intPtr(3),
		Sleep:  floatPtr(8),
	})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCreateMoodEntryValidation(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	userID := uuid.New()
	day := time.Now()

	cases := []models.CreateMoodEntryRequest{
		{Date: &day, Emotions: []string{}, Activities: []string{}, Energy: intPtr(3), Sleep: floatPtr(8)},                  // missing mood
		{Date: &day, Mood: intPtr(11), Emotions: []string{}, Activities: []string{}, Energy: intPtr(3), Sleep: floatPtr(8)}, // mood out of range
		{Date: &day, Mood: intPtr(5), Emotions: []string{}, Activities: []string{}, Energy: intPtr(0), Sleep: floatPtr(8)},  // energy out of range
		{Date: &day, Mood: intPtr(5), Emotions: []string{}, Activities: []string{}, Energy: intPtr(3), Sleep: floatPtr(-1)}, // negative sleep
		{Date: &day, Mood: intPtr(5), Energy: intPtr(3), Sleep: floatPtr(8)},                                                // nil arrays
	}
	for i, req := range cases {
		if _, err := s.CreateMoodEntry(ctx, userID, req); !errors.Is(err, ErrValidation) {
			t.Errorf("case %d: expected ErrValidation, got %v", i, err)
		}
	}
}

func TestListMoodEntriesNewestCreatedFirst(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	userID := uuid.New()

	today := time.Date(2025, 6, 15, 9, 0, 0, 0, time.UTC)
	if _, err := s.CreateMoodEntry(ctx, userID, moodRequest(today)); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	// Back-dated entry logged after the today entry: created later, occurred
	// earlier. The recent view orders by creation recency, so it leads.
	lastWeek := today.AddDate(0, 0, -7)
	backdated, err := s.CreateMoodEntry(ctx, userID, moodRequest(lastWeek))
	if err != nil {
		t.Fatalf("back-dated create failed: %v", err)
	}

	entries, err := s.ListMoodEntries(ctx, userID, 0)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].ID != backdated.ID {
		t.Errorf("most recently created entry must lead, got the one occurred on %s",
			entries[0].OccurredAt.Format("2006-01-02"))
	}
}

func TestCreateMoodEntrySurfacesQueryFailure(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	// With the table gone, the duplicate pre-check must fail loudly rather
	// than read as "no existing entry".
	if err := s.db.Migrator().DropTable(&models.MoodEntry{}); err != nil {
		t.Fatalf("drop failed: %v", err)
	}

	_, err := s.CreateMoodEntry(ctx, uuid.New(), moodRequest(time.Now()))
	if err == nil {
		t.Fatal("expected an error when the store is unreachable")
	}
	if errors.Is(err, ErrDuplicateEntry) || errors.Is(err, ErrValidation) {
		t.Errorf("query failure must not masquerade as a domain error, got %v", err)
	}
}

func TestListMoodEntriesBetweenAscending(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	userID := uuid.New()

	for _, d := range []int{20, 5, 12} {
		day := time.Date(2025, 6, d, 10, 0, 0, 0, time.UTC)
		if _, err := s.CreateMoodEntry(ctx, userID, moodRequest(day)); err != nil {
			t.Fatalf("create failed: %v", err)
		}
	}
	// Outside the window.
	july := time.Date(2025, 7, 1, 10, 0, 0, 0, time.UTC)
	if _, err := s.CreateMoodEntry(ctx, userID, moodRequest(july)); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	from := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 6, 30, 23, 59, 59, 0, time.UTC)
	entries, err := s.ListMoodEntriesBetween(ctx, userID, from, to)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries in June, got %d", len(entries))
	}
	for i := 1; i < len(entries); i++ {
		if entries[i].OccurredAt.Before(entries[i-1].OccurredAt) {
			t.Error("entries must be ascending by occurrence")
		}
	}
}

func TestJournalEntryCrossUserAccess(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	owner := uuid.New()
	stranger := uuid.New()

	entry, err := s.CreateJournalEntry(ctx, owner, models.CreateJournalEntryRequest{
		Title:   "Morning pages",
		Content: "Slept well, feeling fine.",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	_, err = s.UpdateJournalEntry(ctx, stranger, entry.ID, models.UpdateJournalEntryRequest{
		Title: strPtr("hijacked"),
	})
	if !errors.Is(err, ErrNotAuthorized) {
		t.Fatalf("expected ErrNotAuthorized, got %v", err)
	}

	if err := s.DeleteJournalEntry(ctx, stranger, entry.ID); !errors.Is(err, ErrNotAuthorized) {
		t.Fatalf("expected ErrNotAuthorized on delete, got %v", err)
	}
}

func TestJournalAllowsMultiplePerDay(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	userID := uuid.New()

	for i := 0; i < 3; i++ {
		_, err := s.CreateJournalEntry(ctx, userID, models.CreateJournalEntryRequest{
			Title:   "Entry",
			Content: "Same day, no uniqueness constraint.",
		})
		if err != nil {
			t.Fatalf("create %d failed: %v", i, err)
		}
	}

	entries, err := s.ListJournalEntries(ctx, userID, models.JournalListFilter{})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(entries) != 3 {
		t.Errorf("expected 3 entries, got %d", len(entries))
	}
}

func TestJournalFilterAndSort(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	userID := uuid.New()

	mustCreate := func(title, content, category string, tags []string) {
		t.Helper()
		_, err := s.CreateJournalEntry(ctx, userID, models.CreateJournalEntryRequest{
			Title: title, Content: content, Category: category, Tags: tags,
		})
		if err != nil {
			t.Fatalf("create failed: %v", err)
		}
	}

	mustCreate("Gym notes", "leg day", "Health", []string{"fitness"})
	mustCreate("Standup", "sprint planning", "Work", nil)
	mustCreate("Dinner", "cooked pasta", "Personal", []string{"cooking"})

	work, err := s.ListJournalEntries(ctx, userID, models.JournalListFilter{Category: "Work"})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(work) != 1 || work[0].Title != "Standup" {
		t.Errorf("category filter failed: %+v", work)
	}

	// Search is case-insensitive and matches title, content, or tags.
	found, err := s.ListJournalEntries(ctx, userID, models.JournalListFilter{Search: "PASTA"})
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(found) != 1 || found[0].Title != "Dinner" {
		t.Errorf("content search failed: %+v", found)
	}

	byTag, err := s.ListJournalEntries(ctx, userID, models.JournalListFilter{Search: "fitness"})
	if err != nil {
		t.Fatalf("tag search failed: %v", err)
	}
	if len(byTag) != 1 || byTag[0].Title != "Gym notes" {
		t.Errorf("tag search failed: %+v", byTag)
	}

	oldest, err := s.ListJournalEntries(ctx, userID, models.JournalListFilter{Sort: "oldest"})
	if err != nil {
		t.Fatalf("sort failed: %v", err)
	}
	if len(oldest) != 3 || oldest[0].Title != "Gym notes" {
		t.Errorf("oldest sort failed: %+v", oldest)
	}
}

func TestSettingsLazyDefault(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	userID := uuid.New()

	settings, err := s.GetSettings(ctx, userID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if settings.MonthlyGoal != 10 {
		t.Errorf("expected default monthly goal 10, got %d", settings.MonthlyGoal)
	}

	updated, err := s.UpdateSettings(ctx, userID, models.UpdateSettingsRequest{MonthlyGoal: intPtr(20)})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.MonthlyGoal != 20 {
		t.Errorf("expected 20, got %d", updated.MonthlyGoal)
	}

	again, err := s.GetSettings(ctx, userID)
	if err != nil {
		t.Fatalf("re-read failed: %v", err)
	}
	if again.ID != settings.ID {
		t.Error("upsert must not create a second settings row")
	}
	if again.MonthlyGoal != 20 {
		t.Errorf("expected persisted 20, got %d", again.MonthlyGoal)
	}

	if _, err := s.UpdateSettings(ctx, userID, models.UpdateSettingsRequest{MonthlyGoal: intPtr(0)}); !errors.Is(err, ErrValidation) {
		t.Errorf("expected ErrValidation for zero goal, got %v", err)
	}
}

func TestMilestoneToggleRecomputesProgress(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	userID := uuid.New()

	goal, err := s.CreateGoal(ctx, userID, models.CreateGoalRequest{
		Title: "Run a marathon",
		Milestones: []models.MilestoneInput{
			{Title: "5k"},
			{Title: "Half marathon"},
			{Title: "Full marathon"},
		},
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if len(goal.Milestones) != 3 {
		t.Fatalf("expected 3 milestones, got %d", len(goal.Milestones))
	}

	expected := []int{33, 67, 100}
	for i, m := range goal.Milestones {
		if _, err := s.ToggleMilestone(ctx, userID, goal.ID, m.ID); err != nil {
			t.Fatalf("toggle %d failed: %v", i, err)
		}
		g, err := s.GetGoal(ctx, userID, goal.ID)
		if err != nil {
			t.Fatalf("get failed: %v", err)
		}
		if g.Progress != expected[i] {
			t.Errorf("after %d completions expected progress %d, got %d", i+1, expected[i], g.Progress)
		}
	}

	g, _ := s.GetGoal(ctx, userID, goal.ID)
	if g.Status != models.GoalStatusCompleted {
		t.Errorf("all milestones complete should mark goal %q, got %q", models.GoalStatusCompleted, g.Status)
	}

	// Untoggle one: back below 100, back in progress.
	if _, err := s.ToggleMilestone(ctx, userID, goal.ID, goal.Milestones[0].ID); err != nil {
		t.Fatalf("untoggle failed: %v", err)
	}
	g, _ = s.GetGoal(ctx, userID, goal.ID)
	if g.Progress != 67 || g.Status != models.GoalStatusInProgress {
		t.Errorf("expected 67/In Progress, got %d/%q", g.Progress, g.Status)
	}
}

func TestManualProgressOnlyWithoutMilestones(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	userID := uuid.New()

	plain, err := s.CreateGoal(ctx, userID, models.CreateGoalRequest{Title: "Read more"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	updated, err := s.UpdateGoal(ctx, userID, plain.ID, models.UpdateGoalRequest{Progress: intPtr(40)})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Progress != 40 {
		t.Errorf("manual progress should apply to milestone-less goal, got %d", updated.Progress)
	}

	withMs, err := s.CreateGoal(ctx, userID, models.CreateGoalRequest{
		Title:      "Ship project",
		Milestones: []models.MilestoneInput{{Title: "Design"}, {Title: "Build"}},
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	after, err := s.UpdateGoal(ctx, userID, withMs.ID, models.UpdateGoalRequest{Progress: intPtr(90)})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if after.Progress != 0 {
		t.Errorf("manual progress must be ignored when milestones exist, got %d", after.Progress)
	}
}

func TestGoalCrossUserAccess(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	owner := uuid.New()
	stranger := uuid.New()

	goal, err := s.CreateGoal(ctx, owner, models.CreateGoalRequest{Title: "Private goal"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if _, err := s.GetGoal(ctx, stranger, goal.ID); !errors.Is(err, ErrNotAuthorized) {
		t.Errorf("expected ErrNotAuthorized, got %v", err)
	}
	if err := s.DeleteGoal(ctx, stranger, goal.ID); !errors.Is(err, ErrNotAuthorized) {
		t.Errorf("expected ErrNotAuthorized on delete, got %v", err)
	}
	if _, err := s.GetGoal(ctx, stranger, uuid.New()); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound for absent goal, got %v", err)
	}
}
