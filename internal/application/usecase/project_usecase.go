package usecase

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/ObraCore-api/internal/application/dto"
	"github.com/jhoicas/ObraCore-api/internal/application/filter"
	"github.com/jhoicas/ObraCore-api/internal/application/stats"
	"github.com/jhoicas/ObraCore-api/internal/domain"
	"github.com/jhoicas/ObraCore-api/internal/domain/entity"
	"github.com/jhoicas/ObraCore-api/internal/domain/repository"
)

// ProjectUseCase gestión de proyectos de obra y sus tareas.
type ProjectUseCase struct {
	repo     repository.ProjectRepository
	taskRepo repository.TaskRepository
}

// NewProjectUseCase construye el caso de uso.
func NewProjectUseCase(repo repository.ProjectRepository, taskRepo repository.TaskRepository) *ProjectUseCase {
	return &ProjectUseCase{repo: repo, taskRepo: taskRepo}
}

var validProjectStatuses = map[string]bool{
	entity.ProjectStatusPlanning:  true,
	entity.ProjectStatusActive:    true,
	entity.ProjectStatusOnHold:    true,
	entity.ProjectStatusCompleted: true,
	entity.ProjectStatusCancelled: true,
}

var validPriorities = map[string]bool{
	entity.PriorityLow:    true,
	entity.PriorityMedium: true,
	entity.PriorityHigh:   true,
	entity.PriorityUrgent: true,
}

var validTaskStatuses = map[string]bool{
	entity.TaskStatusTodo:       true,
	entity.TaskStatusInProgress: true,
	entity.TaskStatusDone:       true,
}

// nextJobNumber deriva el siguiente número de obra a partir del último
// asignado: "" -> PRJ-0001, "PRJ-0041" -> PRJ-0042.
func nextJobNumber(last string) string {
	seq := 0
	if n, ok := strings.CutPrefix(last, "PRJ-"); ok {
		if v, err := strconv.Atoi(n); err == nil {
			seq = v
		}
	}
	return fmt.Sprintf("PRJ-%04d", seq+1)
}

// Create da de alta un proyecto en estado planning con número de obra
// generado por el servidor.
func (uc *ProjectUseCase) Create(actor entity.Actor, in dto.CreateProjectRequest) (*dto.ProjectResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	priority := in.Priority
	if priority == "" {
		priority = entity.PriorityMedium
	}
	if !validPriorities[priority] {
		return nil, domain.ErrInvalidInput
	}
	if in.StartDate != nil && in.EndDate != nil && in.EndDate.Before(*in.StartDate) {
		return nil, domain.ErrInvalidInput
	}
	if in.Budget.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}

	last, err := uc.repo.LastJobNumber()
	if err != nil {
		return nil, err
	}
	now := time.Now()
	project := &entity.Project{
		ID:          uuid.New().String(),
		JobNumber:   nextJobNumber(last),
		Name:        name,
		Description: in.Description,
		Status:      entity.ProjectStatusPlanning,
		Priority:    priority,
		StartDate:   in.StartDate,
		EndDate:     in.EndDate,
		Budget:      in.Budget,
		Manager:     strings.TrimSpace(in.Manager),
		Client:      strings.TrimSpace(in.Client),
		Location:    strings.TrimSpace(in.Location),
		CreatedBy:   actor.Name,
		CreatedByID: actor.ID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(project); err != nil {
		return nil, err
	}
	return toProjectResponse(project), nil
}

// GetByID obtiene un proyecto.
func (uc *ProjectUseCase) GetByID(id string) (*dto.ProjectResponse, error) {
	project, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, nil
	}
	return toProjectResponse(project), nil
}

// Update aplica una edición parcial. JobNumber no se edita nunca.
func (uc *ProjectUseCase) Update(id string, in dto.UpdateProjectRequest) (*dto.ProjectResponse, error) {
	project, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, nil
	}
	if in.Name != nil {
		if strings.TrimSpace(*in.Name) == "" {
			return nil, domain.ErrInvalidInput
		}
		project.Name = strings.TrimSpace(*in.Name)
	}
	if in.Status != nil {
		if !validProjectStatuses[*in.Status] {
			return nil, domain.ErrInvalidInput
		}
		project.Status = *in.Status
	}
	if in.Priority != nil {
		if !validPriorities[*in.Priority] {
			return nil, domain.ErrInvalidInput
		}
		project.Priority = *in.Priority
	}
	if in.Progress != nil {
		if in.Progress.LessThan(decimal.Zero) || in.Progress.GreaterThan(decimal.NewFromInt(100)) {
			return nil, domain.ErrInvalidInput
		}
		project.Progress = *in.Progress
	}
	if in.Description != nil {
		project.Description = *in.Description
	}
	if in.StartDate != nil {
		project.StartDate = in.StartDate
	}
	if in.EndDate != nil {
		project.EndDate = in.EndDate
	}
	if project.StartDate != nil && project.EndDate != nil && project.EndDate.Before(*project.StartDate) {
		return nil, domain.ErrInvalidInput
	}
	if in.Budget != nil {
		project.Budget = *in.Budget
	}
	if in.ActualCost != nil {
		project.ActualCost = *in.ActualCost
	}
	if in.Manager != nil {
		project.Manager = *in.Manager
	}
	if in.Client != nil {
		project.Client = *in.Client
	}
	if in.Location != nil {
		project.Location = *in.Location
	}
	project.UpdatedAt = time.Now()
	if err := uc.repo.Update(project); err != nil {
		return nil, err
	}
	return toProjectResponse(project), nil
}

// List trae los proyectos filtrados con sus agregados.
func (uc *ProjectUseCase) List(f filter.ProjectFilter) (*dto.ProjectListResponse, error) {
	projects, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	filtered := filter.Apply(projects, f.Matches)
	resp := &dto.ProjectListResponse{
		Projects: make([]dto.ProjectResponse, 0, len(filtered)),
		Stats:    stats.ComputeProjectStats(filtered),
	}
	for _, p := range filtered {
		resp.Projects = append(resp.Projects, *toProjectResponse(p))
	}
	return resp, nil
}

// CreateTask agrega una tarea al proyecto en estado todo.
func (uc *ProjectUseCase) CreateTask(projectID string, in dto.CreateTaskRequest) (*dto.TaskResponse, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, domain.ErrInvalidInput
	}
	project, err := uc.repo.GetByID(projectID)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, domain.ErrNotFound
	}
	now := time.Now()
	task := &entity.Task{
		ID:        uuid.New().String(),
		ProjectID: projectID,
		Title:     title,
		Status:    entity.TaskStatusTodo,
		Assignee:  strings.TrimSpace(in.Assignee),
		DueDate:   in.DueDate,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.taskRepo.Create(task); err != nil {
		return nil, err
	}
	return toTaskResponse(task), nil
}

// UpdateTask edición parcial de una tarea (título, estado, asignado, fecha).
func (uc *ProjectUseCase) UpdateTask(taskID string, in dto.UpdateTaskRequest) (*dto.TaskResponse, error) {
	task, err := uc.taskRepo.GetByID(taskID)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, nil
	}
	if in.Title != nil {
		if strings.TrimSpace(*in.Title) == "" {
			return nil, domain.ErrInvalidInput
		}
		task.Title = strings.TrimSpace(*in.Title)
	}
	if in.Status != nil {
		if !validTaskStatuses[*in.Status] {
			return nil, domain.ErrInvalidInput
		}
		task.Status = *in.Status
	}
	if in.Assignee != nil {
		task.Assignee = *in.Assignee
	}
	if in.DueDate != nil {
		task.DueDate = in.DueDate
	}
	task.UpdatedAt = time.Now()
	if err := uc.taskRepo.Update(task); err != nil {
		return nil, err
	}
	return toTaskResponse(task), nil
}

// ListTasks tareas de un proyecto.
func (uc *ProjectUseCase) ListTasks(projectID string) ([]dto.TaskResponse, error) {
	project, err := uc.repo.GetByID(projectID)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, domain.ErrNotFound
	}
	tasks, err := uc.taskRepo.ListByProject(projectID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.TaskResponse, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, *toTaskResponse(t))
	}
	return out, nil
}

func toProjectResponse(p *entity.Project) *dto.ProjectResponse {
	return &dto.ProjectResponse{
		ID:          p.ID,
		JobNumber:   p.JobNumber,
		Name:        p.Name,
		Description: p.Description,
		Status:      p.Status,
		Priority:    p.Priority,
		StartDate:   p.StartDate,
		EndDate:     p.EndDate,
		Budget:      p.Budget,
		ActualCost:  p.ActualCost,
		Progress:    p.Progress,
		Manager:     p.Manager,
		Client:      p.Client,
		Location:    p.Location,
		CreatedBy:   p.CreatedBy,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func toTaskResponse(t *entity.Task) *dto.TaskResponse {
	return &dto.TaskResponse{
		ID:        t.ID,
		ProjectID: t.ProjectID,
		Title:     t.Title,
		Status:    t.Status,
		Assignee:  t.Assignee,
		DueDate:   t.DueDate,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}
