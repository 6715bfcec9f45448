package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Goal statuses and priorities.
const (
	GoalStatusInProgress = "In Progress"
	GoalStatusCompleted  = "Completed"
	GoalStatusOnHold     = "On Hold"

	PriorityHigh   = "High"
	PriorityMedium = "Medium"
	PriorityLow    = "Low"
)

type Goal struct {
	ID          uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID      `json:"userId" gorm:"type:uuid;index;not null"`
	Title       string         `json:"title" gorm:"not null"`
	Description *string        `json:"description"`
	Category    string         `json:"category"`
	Status      string         `json:"status" gorm:"not null;default:'In Progress'"`
	Priority    string         `json:"priority" gorm:"default:Medium"`
	Progress    int            `json:"progress" gorm:"default:0"` // 0-100
	DueDate     *time.Time     `json:"dueDate"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`
	Milestones  []Milestone    `json:"milestones" gorm:"foreignKey:GoalID"`
}

func (g *Goal) BeforeCreate(tx *gorm.DB) error {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	return nil
}

// Goal DTOs
type MilestoneInput struct {
	Title   string     `json:"title" validate:"required"`
	DueDate *time.Time `json:"dueDate"`
}

type CreateGoalRequest struct {
	Title       string           `json:"title" validate:"required"`
	Description *string          `json:"description"`
	Category    string           `json:"category"`
	Priority    string           `json:"priority"`
	DueDate     *time.Time       `json:"dueDate"`
	Milestones  []MilestoneInput `json:"milestones"`
}

type UpdateGoalRequest struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	Category    *string    `json:"category"`
	Status      *string    `json:"status"`
	Priority    *string    `json:"priority"`
	Progress    *int       `json:"progress"`
	DueDate     *time.Time `json:"dueDate"`
}
