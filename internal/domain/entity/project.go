package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de proyecto.
const (
	ProjectStatusPlanning  = "planning"
	ProjectStatusActive    = "active"
	ProjectStatusOnHold    = "on_hold"
	ProjectStatusCompleted = "completed"
	ProjectStatusCancelled = "cancelled"
)

// Prioridades (compartidas por proyectos y órdenes de compra).
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
	PriorityUrgent = "urgent"
)

// Project representa una obra o proyecto de construcción.
// JobNumber se genera secuencialmente (PRJ-0001, PRJ-0002, ...).
type Project struct {
	ID          string
	JobNumber   string
	Name        string
	Description string
	Status      string
	Priority    string
	StartDate   *time.Time
	EndDate     *time.Time
	Budget      decimal.Decimal
	ActualCost  decimal.Decimal
	Progress    decimal.Decimal // porcentaje 0..100
	Manager     string
	Client      string
	Location    string
	CreatedBy   string
	CreatedByID string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Estados de tarea.
const (
	TaskStatusTodo       = "todo"
	TaskStatusInProgress = "in_progress"
	TaskStatusDone       = "done"
)

// Task es una tarea hija de un proyecto.
type Task struct {
	ID        string
	ProjectID string
	Title     string
	Status    string
	Assignee  string
	DueDate   *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}
