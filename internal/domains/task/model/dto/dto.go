package dto

import (
	"tasker/internal/domains/task/model"
)

// CreateTaskRequest carries the create payload. Title is a pointer so that
// presence is enforced while an empty string is still accepted.
type CreateTaskRequest struct {
	Title *string `json:"title" validate:"required"`
}

func (c *CreateTaskRequest) ToModel(owner string) model.Task {
	return model.Task{
		Title:     *c.Title,
		Completed: false,
		Owner:     owner,
	}
}

// UpdateTaskRequest overwrites the mutable columns. Both fields are required;
// the owner column is deliberately absent so ownership can never change.
type UpdateTaskRequest struct {
	Title     *string `db:"title" json:"title" validate:"required"`
	Completed *bool   `db:"completed" json:"completed" validate:"required"`
}

type TaskResponse struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
	Owner     string `json:"owner"`
}

func (r *TaskResponse) FromModel(model model.Task) {
	r.ID = model.ID
	r.Title = model.Title
	r.Completed = model.Completed
	r.Owner = model.Owner
}

func TasksFromModels(models []model.Task) []TaskResponse {
	tasks := make([]TaskResponse, len(models))
	for i, mod := range models {
		tasks[i].FromModel(mod)
	}

	return tasks
}
