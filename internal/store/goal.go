package store

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/google/uuid"
	"github.com/jlin/moodtrack-api/internal/models"
)

func (s *Store) CreateGoal(ctx context.Context, userID uuid.UUID, req models.CreateGoalRequest) (*models.Goal, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, fmt.Errorf("%w: title is required", ErrValidation)
	}

	priority := req.Priority
	if priority == "" {
		priority = models.PriorityMedium
	}

	goal := models.Goal{
		UserID:      userID,
		Title:       title,
		Description: req.Description,
		Category:    req.Category,
		Status:      models.GoalStatusInProgress,
		Priority:    priority,
		Progress:    0,
		DueDate:     req.DueDate,
	}
	for _, m := range req.Milestones {
		mt := strings.TrimSpace(m.Title)
		if mt == "" {
			return nil, fmt.Errorf("%w: milestone title is required", ErrValidation)
		}
		goal.Milestones = append(goal.Milestones, models.Milestone{
			Title:   mt,
			DueDate: m.DueDate,
		})
	}

	if err := s.db.WithContext(ctx).Create(&goal).Error; err != nil {
		return nil, fmt.Errorf("create goal: %w", err)
	}
	return &goal, nil
}

func (s *Store) ListGoals(ctx context.Context, userID uuid.UUID, category, status string) ([]models.Goal, error) {
	q := s.db.WithContext(ctx).Preload("Milestones").Where("user_id = ?", userID)
	if category != "" {
		q = q.Where("category = ?", category)
	}
	if status != "" {
		q = q.Where("status = ?", status)
	}

	var goals []models.Goal
	if err := q.Order("created_at DESC").Find(&goals).Error; err != nil {
		return nil, fmt.Errorf("list goals: %w", err)
	}
	return goals, nil
}

func (s *Store) getGoal(ctx context.Context, userID, goalID uuid.UUID) (*models.Goal, error) {
	var goal models.Goal
	if err := s.db.WithContext(ctx).Preload("Milestones").First(&goal, "id = ?", goalID).Error; err != nil {
		return nil, ErrNotFound
	}
	if goal.UserID != userID {
		return nil, ErrNotAuthorized
	}
	return &goal, nil
}

func (s *Store) GetGoal(ctx context.Context, userID, goalID uuid.UUID) (*models.Goal, error) {
	return s.getGoal(ctx, userID, goalID)
}

// UpdateGoal edits goal fields. Progress is derived from milestones whenever
// any exist; the manual progress field only applies to milestone-less goals.
func (s *Store) UpdateGoal(ctx context.Context, userID, goalID uuid.UUID, req models.UpdateGoalRequest) (*models.Goal, error) {
	goal, err := s.getGoal(ctx, userID, goalID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		if strings.TrimSpace(*req.Title) == "" {
			return nil, fmt.Errorf("%w: title cannot be empty", ErrValidation)
		}
		goal.Title = strings.TrimSpace(*req.Title)
	}
	if req.Description != nil {
		goal.Description = req.Description
	}
	if req.Category != nil {
		goal.Category = *req.Category
	}
	if req.Status != nil {
		switch *req.Status {
		case models.GoalStatusInProgress, models.GoalStatusCompleted, models.GoalStatusOnHold:
			goal.Status = *req.Status
		default:
			return nil, fmt.Errorf("%w: unknown status %q", ErrValidation, *req.Status)
		}
	}
	if req.Priority != nil {
		goal.Priority = *req.Priority
	}
	if req.Progress != nil && len(goal.Milestones) == 0 {
		if *req.Progress < 0 || *req.Progress > 100 {
			return nil, fmt.Errorf("%w: progress must be between 0 and 100", ErrValidation)
		}
		goal.Progress = *req.Progress
	}
	if req.DueDate != nil {
		goal.DueDate = req.DueDate
	}

	if err := s.db.WithContext(ctx).Omit("Milestones").Save(goal).Error; err != nil {
		return nil, fmt.Errorf("update goal: %w", err)
	}
	return goal, nil
}

func (s *Store) DeleteGoal(ctx context.Context, userID, goalID uuid.UUID) error {
	goal, err := s.getGoal(ctx, userID, goalID)
	if err != nil {
		return err
	}

	if err := s.db.WithContext(ctx).Where("goal_id = ?", goal.ID).Delete(&models.Milestone{}).Error; err != nil {
		return fmt.Errorf("delete milestones: %w", err)
	}
	if err := s.db.WithContext(ctx).Delete(goal).Error; err != nil {
		return fmt.Errorf("delete goal: %w", err)
	}
	return nil
}

func (s *Store) AddMilestone(ctx context.Context, userID, goalID uuid.UUID, req models.CreateMilestoneRequest) (*models.Milestone, error) {
	goal, err := s.getGoal(ctx, userID, goalID)
	if err != nil {
		return nil, err
	}

	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, fmt.Errorf("%w: title is required", ErrValidation)
	}

	milestone := models.Milestone{
		GoalID:  goal.ID,
		Title:   title,
		DueDate: req.DueDate,
	}
	if err := s.db.WithContext(ctx).Create(&milestone).Error; err != nil {
		return nil, fmt.Errorf("create milestone: %w", err)
	}
	if err := s.recalcGoalProgress(ctx, goal.ID); err != nil {
		return nil, err
	}
	return &milestone, nil
}

func (s *Store) getMilestone(ctx context.Context, userID, goalID, milestoneID uuid.UUID) (*models.Milestone, error) {
	if _, err := s.getGoal(ctx, userID, goalID); err != nil {
		return nil, err
	}
	var milestone models.Milestone
	err := s.db.WithContext(ctx).
		Where("id = ? AND goal_id = ?", milestoneID, goalID).
		First(&milestone).Error
	if err != nil {
		return nil, ErrNotFound
	}
	return &milestone, nil
}

func (s *Store) UpdateMilestone(ctx context.Context, userID, goalID, milestoneID uuid.UUID, req models.UpdateMilestoneRequest) (*models.Milestone, error) {
	milestone, err := s.getMilestone(ctx, userID, goalID, milestoneID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		if strings.TrimSpace(*req.Title) == "" {
			return nil, fmt.Errorf("%w: title cannot be empty", ErrValidation)
		}
		milestone.Title = strings.TrimSpace(*req.Title)
	}
	if req.DueDate != nil {
		milestone.DueDate = req.DueDate
	}

	if err := s.db.WithContext(ctx).Save(milestone).Error; err != nil {
		return nil, fmt.Errorf("update milestone: %w", err)
	}
	return milestone, nil
}

// ToggleMilestone flips completion and recomputes the goal's progress.
func (s *Store) ToggleMilestone(ctx context.Context, userID, goalID, milestoneID uuid.UUID) (*models.Milestone, error) {
	milestone, err := s.getMilestone(ctx, userID, goalID, milestoneID)
	if err != nil {
		return nil, err
	}

	milestone.IsCompleted = !milestone.IsCompleted
	if err := s.db.WithContext(ctx).Save(milestone).Error; err != nil {
		return nil, fmt.Errorf("toggle milestone: %w", err)
	}
	if err := s.recalcGoalProgress(ctx, goalID); err != nil {
		return nil, err
	}
	return milestone, nil
}

func (s *Store) DeleteMilestone(ctx context.Context, userID, goalID, milestoneID uuid.UUID) error {
	milestone, err := s.getMilestone(ctx, userID, goalID, milestoneID)
	if err != nil {
		return err
	}
	if err := s.db.WithContext(ctx).Delete(milestone).Error; err != nil {
		return fmt.Errorf("delete milestone: %w", err)
	}
	return s.recalcGoalProgress(ctx, goalID)
}

// recalcGoalProgress derives progress from the milestone completion ratio and
// moves status across the 0/100 boundaries. Goals without milestones keep
// their manually set progress.
func (s *Store) recalcGoalProgress(ctx context.Context, goalID uuid.UUID) error {
	var milestones []models.Milestone
	if err := s.db.WithContext(ctx).Where("goal_id = ?", goalID).Find(&milestones).Error; err != nil {
		return fmt.Errorf("load milestones: %w", err)
	}
	if len(milestones) == 0 {
		return nil
	}

	completed := 0
	for _, m := range milestones {
		if m.IsCompleted {
			completed++
		}
	}
	progress := int(math.Round(float64(completed) / float64(len(milestones)) * 100))

	updates := map[string]interface{}{"progress": progress}
	if progress >= 100 {
		updates["status"] = models.GoalStatusCompleted
	} else {
		updates["status"] = models.GoalStatusInProgress
	}

	return s.db.WithContext(ctx).Model(&models.Goal{}).Where("id = ?", goalID).Updates(updates).Error
}
