package repository

import "github.com/jhoicas/ObraCore-api/internal/domain/entity"

// ProjectRepository puerto de persistencia para proyectos.
type ProjectRepository interface {
	Create(project *entity.Project) error
	GetByID(id string) (*entity.Project, error)
	Update(project *entity.Project) error
	List() ([]*entity.Project, error)
	// LastJobNumber último número de obra asignado ("" si no hay proyectos).
	LastJobNumber() (string, error)
}

// TaskRepository puerto de persistencia para tareas de proyecto.
type TaskRepository interface {
	Create(task *entity.Task) error
	GetByID(id string) (*entity.Task, error)
	Update(task *entity.Task) error
	ListByProject(projectID string) ([]*entity.Task, error)
}
