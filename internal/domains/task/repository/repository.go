package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"tasker/infras/otel"
	"tasker/infras/postgres"
	"tasker/internal/domains/task/model"
	gDto "tasker/shared/dto"
	gRepo "tasker/shared/repository"

	"github.com/jmoiron/sqlx"
)

type Task interface {
	Insert(ctx context.Context, task model.Task) (model.Task, error)
	Get(ctx context.Context, filter gDto.FilterGroup) (model.Task, error)
	GetAll(ctx context.Context, filter gDto.FilterGroup) ([]model.Task, error)
	WithTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error
	GetForUpdateTx(ctx context.Context, tx *sqlx.Tx, filter gDto.FilterGroup) (model.Task, error)
	UpdateTx(ctx context.Context, tx *sqlx.Tx, req map[string]any, filter gDto.FilterGroup) error
	DeleteTx(ctx context.Context, tx *sqlx.Tx, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Task]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Task {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Task](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
