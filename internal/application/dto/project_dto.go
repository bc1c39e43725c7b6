package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProjectRequest entrada para crear un proyecto. JobNumber se genera
// en el servidor.
type CreateProjectRequest struct {
	Name        string          `json:"name" validate:"required,min=1,max=200"`
	Description string          `json:"description"`
	Priority    string          `json:"priority"`
	StartDate   *time.Time      `json:"start_date"`
	EndDate     *time.Time      `json:"end_date"`
	Budget      decimal.Decimal `json:"budget"`
	Manager     string          `json:"manager"`
	Client      string          `json:"client"`
	Location    string          `json:"location"`
}

// UpdateProjectRequest actualización parcial (PATCH) de un proyecto.
type UpdateProjectRequest struct {
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	Status      *string          `json:"status"`
	Priority    *string          `json:"priority"`
	StartDate   *time.Time       `json:"start_date"`
	EndDate     *time.Time       `json:"end_date"`
	Budget      *decimal.Decimal `json:"budget"`
	ActualCost  *decimal.Decimal `json:"actual_cost"`
	Progress    *decimal.Decimal `json:"progress"`
	Manager     *string          `json:"manager"`
	Client      *string          `json:"client"`
	Location    *string          `json:"location"`
}

// ProjectResponse salida de un proyecto.
type ProjectResponse struct {
	ID          string          `json:"id"`
	JobNumber   string          `json:"job_number"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Status      string          `json:"status"`
	Priority    string          `json:"priority"`
	StartDate   *time.Time      `json:"start_date,omitempty"`
	EndDate     *time.Time      `json:"end_date,omitempty"`
	Budget      decimal.Decimal `json:"budget"`
	ActualCost  decimal.Decimal `json:"actual_cost"`
	Progress    decimal.Decimal `json:"progress"`
	Manager     string          `json:"manager,omitempty"`
	Client      string          `json:"client,omitempty"`
	Location    string          `json:"location,omitempty"`
	CreatedBy   string          `json:"created_by"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ProjectStats agregados de proyectos para el dashboard.
type ProjectStats struct {
	Total       int             `json:"total"`
	Planning    int             `json:"planning"`
	Active      int             `json:"active"`
	OnHold      int             `json:"on_hold"`
	Completed   int             `json:"completed"`
	Cancelled   int             `json:"cancelled"`
	TotalBudget decimal.Decimal `json:"total_budget"`
	TotalSpent  decimal.Decimal `json:"total_spent"`
	AvgProgress decimal.Decimal `json:"avg_progress"`
}

// ProjectListResponse listado filtrado más agregados.
type ProjectListResponse struct {
	Projects []ProjectResponse `json:"projects"`
	Stats    ProjectStats      `json:"stats"`
}

// CreateTaskRequest alta de tarea en un proyecto.
type CreateTaskRequest struct {
	Title    string     `json:"title" validate:"required,min=1,max=300"`
	Assignee string     `json:"assignee"`
	DueDate  *time.Time `json:"due_date"`
}

// UpdateTaskRequest actualización parcial de una tarea.
type UpdateTaskRequest struct {
	Title    *string    `json:"title"`
	Status   *string    `json:"status"`
	Assignee *string    `json:"assignee"`
	DueDate  *time.Time `json:"due_date"`
}

// TaskResponse salida de una tarea.
type TaskResponse struct {
	ID        string     `json:"id"`
	ProjectID string     `json:"project_id"`
	Title     string     `json:"title"`
	Status    string     `json:"status"`
	Assignee  string     `json:"assignee,omitempty"`
	DueDate   *time.Time `json:"due_date,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}
