package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/ObraCore-api/internal/domain"
	"github.com/jhoicas/ObraCore-api/internal/domain/entity"
	"github.com/jhoicas/ObraCore-api/internal/domain/repository"
)

var _ repository.ProjectRepository = (*ProjectRepo)(nil)
var _ repository.TaskRepository = (*TaskRepo)(nil)

const projectColumns = `id, job_number, name, description, status, priority, start_date, end_date,
	budget, actual_cost, progress, manager, client, location, created_by, created_by_id,
	created_at, updated_at`

// ProjectRepo implementación del puerto ProjectRepository sobre PostgreSQL (usable con pool o tx).
type ProjectRepo struct {
	q Querier
}

// NewProjectRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProjectRepository(q Querier) *ProjectRepo {
	return &ProjectRepo{q: q}
}

// Create persiste un proyecto.
func (r *ProjectRepo) Create(project *entity.Project) error {
	query := `
		INSERT INTO projects (` + projectColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)`
	_, err := r.q.Exec(context.Background(), query,
		project.ID, project.JobNumber, project.Name, project.Description, project.Status,
		project.Priority, project.StartDate, project.EndDate, project.Budget, project.ActualCost,
		project.Progress, project.Manager, project.Client, project.Location,
		project.CreatedBy, project.CreatedByID, project.CreatedAt, project.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert project: %w", err)
	}
	return nil
}

// GetByID obtiene un proyecto por ID.
func (r *ProjectRepo) GetByID(id string) (*entity.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE id = $1`
	p, err := scanProject(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get project: %w", err)
	}
	return p, nil
}

// Update actualiza un proyecto existente. job_number nunca cambia.
func (r *ProjectRepo) Update(project *entity.Project) error {
	query := `
		UPDATE projects SET name = $2, description = $3, status = $4, priority = $5,
			start_date = $6, end_date = $7, budget = $8, actual_cost = $9, progress = $10,
			manager = $11, client = $12, location = $13, updated_at = $14
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		project.ID, project.Name, project.Description, project.Status, project.Priority,
		project.StartDate, project.EndDate, project.Budget, project.ActualCost, project.Progress,
		project.Manager, project.Client, project.Location, project.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update project: %w", err)
	}
	return nil
}

// List lista todos los proyectos, más reciente primero.
func (r *ProjectRepo) List() ([]*entity.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()
	var list []*entity.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("scan project: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// LastJobNumber último número de obra asignado ("" si no hay proyectos).
func (r *ProjectRepo) LastJobNumber() (string, error) {
	var jobNumber string
	err := r.q.QueryRow(context.Background(),
		`SELECT job_number FROM projects ORDER BY job_number DESC LIMIT 1`,
	).Scan(&jobNumber)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("last job number: %w", err)
	}
	return jobNumber, nil
}

func scanProject(row rowScanner) (*entity.Project, error) {
	var p entity.Project
	err := row.Scan(
		&p.ID, &p.JobNumber, &p.Name, &p.Description, &p.Status, &p.Priority,
		&p.StartDate, &p.EndDate, &p.Budget, &p.ActualCost, &p.Progress,
		&p.Manager, &p.Client, &p.Location, &p.CreatedBy, &p.CreatedByID,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// TaskRepo tareas de proyecto sobre PostgreSQL.
type TaskRepo struct {
	q Querier
}

// NewTaskRepository construye el adaptador. Pasar pool o tx (Querier).
func NewTaskRepository(q Querier) *TaskRepo {
	return &TaskRepo{q: q}
}

// Create persiste una tarea.
func (r *TaskRepo) Create(task *entity.Task) error {
	query := `
		INSERT INTO project_tasks (id, project_id, title, status, assignee, due_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		task.ID, task.ProjectID, task.Title, task.Status, task.Assignee, task.DueDate,
		task.CreatedAt, task.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert task: %w", err)
	}
	return nil
}

// GetByID obtiene una tarea por ID.
func (r *TaskRepo) GetByID(id string) (*entity.Task, error) {
	query := `
		SELECT id, project_id, title, status, assignee, due_date, created_at, updated_at
		FROM project_tasks WHERE id = $1`
	var t entity.Task
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&t.ID, &t.ProjectID, &t.Title, &t.Status, &t.Assignee, &t.DueDate, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get task: %w", err)
	}
	return &t, nil
}

// Update actualiza una tarea existente.
func (r *TaskRepo) Update(task *entity.Task) error {
	query := `
		UPDATE project_tasks SET title = $2, status = $3, assignee = $4, due_date = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		task.ID, task.Title, task.Status, task.Assignee, task.DueDate, task.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update task: %w", err)
	}
	return nil
}

// ListByProject tareas de un proyecto en orden de creación.
func (r *TaskRepo) ListByProject(projectID string) ([]*entity.Task, error) {
	query := `
		SELECT id, project_id, title, status, assignee, due_date, created_at, updated_at
		FROM project_tasks WHERE project_id = $1 ORDER BY created_at`
	rows, err := r.q.Query(context.Background(), query, projectID)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer rows.Close()
	var list []*entity.Task
	for rows.Next() {
		var t entity.Task
		if err := rows.Scan(&t.ID, &t.ProjectID, &t.Title, &t.Status, &t.Assignee, &t.DueDate,
			&t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan task: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}
