package domain

import (
	"time"

	"gorm.io/datatypes"
)

const (
	IdeaStatusOpen     = "open"
	IdeaStatusLaunched = "launched"

	ProjectStatusActive = "active"

	TaskStatusTodo = "todo"
	PriorityHigh   = "high"
)

type Idea struct {
	ID        string `gorm:"primaryKey"`
	CreatorID string `gorm:"index"`
	Title     string
	Problem   string
	Solution  string
	Status    string `gorm:"index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Project struct {
	ID            string `gorm:"primaryKey"`
	OwnerID       string `gorm:"index"`
	Name          string
	Description   string
	Status        string `gorm:"index"`
	FundingGoal   float64
	EquityOffered float64
	IsPublic      bool `gorm:"index"`
	Industry      string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type Task struct {
	ID          string `gorm:"primaryKey"`
	ProjectID   string `gorm:"index"`
	Title       string
	Description string
	Status      string
	Priority    string
	AssigneeID  string
	Position    int32
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type Notification struct {
	ID        string `gorm:"primaryKey"`
	UserID    string `gorm:"index"`
	Type      string
	Content   string
	Payload   datatypes.JSON
	Read      bool
	CreatedAt time.Time
}
