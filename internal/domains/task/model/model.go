package model

const (
	TableName  = "tasks"
	EntityName = "task"

	FieldID        = "id"
	FieldTitle     = "title"
	FieldCompleted = "completed"
	FieldOwner     = "owner"
)

type Task struct {
	ID        int64  `db:"id"`
	Title     string `db:"title"`
	Completed bool   `db:"completed"`
	Owner     string `db:"owner"`
}
