package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Task=MockTaskService

import (
	"context"
	"fmt"
	"tasker/config"
	"tasker/infras/otel"
	"tasker/internal/domains/task/model"
	"tasker/internal/domains/task/model/dto"
	"tasker/internal/domains/task/repository"
	"tasker/shared"
	"tasker/shared/constant"
	"tasker/shared/failure"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

const (
	msgNotAuthorizedAccess = "Not authorized to access this task"
	msgNotAuthorizedUpdate = "Not authorized to update this task"
	msgNotAuthorizedDelete = "Not authorized to delete this task"
)

type Task interface {
	Create(ctx context.Context, req dto.CreateTaskRequest) (dto.TaskResponse, error)
	GetAll(ctx context.Context) ([]dto.TaskResponse, error)
	Get(ctx context.Context, id int64) (dto.TaskResponse, error)
	Update(ctx context.Context, req dto.UpdateTaskRequest, id int64) (dto.TaskResponse, error)
	Delete(ctx context.Context, id int64) error
}

type serviceImpl struct {
	repo repository.Task
	cfg  *config.Config
	otel otel.Otel
}

func New(repo repository.Task, cfg *config.Config, otel otel.Otel) Task {
	return &serviceImpl{
		repo: repo,
		cfg:  cfg,
		otel: otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateTaskRequest) (res dto.TaskResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	owner := subjectFromContext(ctx)

	task, err := s.repo.Insert(ctx, req.ToModel(owner))
	if err != nil {
		log.Error().Err(err).Msg("failed to create task")

		return res, fmt.Errorf("failed to create task: %w", err)
	}

	res.FromModel(task)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context) ([]dto.TaskResponse, error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()

	owner := subjectFromContext(ctx)

	tasks, err := s.repo.GetAll(ctx, shared.FilterByOwner(owner, model.FieldOwner, model.TableName))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get tasks")

		return nil, fmt.Errorf("failed to get tasks: %w", err)
	}

	return dto.TasksFromModels(tasks), nil
}

func (s *serviceImpl) Get(ctx context.Context, id int64) (res dto.TaskResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	task, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get task")

		return res, fmt.Errorf("failed to get task: %w", err)
	}

	if err := authorize(task, subjectFromContext(ctx), msgNotAuthorizedAccess); err != nil {
		return res, err
	}

	res.FromModel(task)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateTaskRequest, id int64) (res dto.TaskResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	owner := subjectFromContext(ctx)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	err = s.repo.WithTx(ctx, func(tx *sqlx.Tx) error {
		task, err := s.repo.GetForUpdateTx(ctx, tx, filter)
		if err != nil {
			log.Error().Err(err).Msg("failed to get task for update")

			return fmt.Errorf("failed to get task for update: %w", err)
		}

		if err := authorize(task, owner, msgNotAuthorizedUpdate); err != nil {
			return err
		}

		if err := s.repo.UpdateTx(ctx, tx, shared.TransformFields(req), filter); err != nil {
			log.Error().Err(err).Msg("failed to update task")

			return fmt.Errorf("failed to update task: %w", err)
		}

		res = dto.TaskResponse{
			ID:        task.ID,
			Title:     *req.Title,
			Completed: *req.Completed,
			Owner:     task.Owner,
		}

		return nil
	})
	if err != nil {
		return dto.TaskResponse{}, err
	}

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id int64) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	owner := subjectFromContext(ctx)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	return s.repo.WithTx(ctx, func(tx *sqlx.Tx) error {
		task, err := s.repo.GetForUpdateTx(ctx, tx, filter)
		if err != nil {
			log.Error().Err(err).Msg("failed to get task for delete")

			return fmt.Errorf("failed to get task for delete: %w", err)
		}

		if err := authorize(task, owner, msgNotAuthorizedDelete); err != nil {
			return err
		}

		if err := s.repo.DeleteTx(ctx, tx, filter); err != nil {
			log.Error().Err(err).Msg("failed to delete task")

			return fmt.Errorf("failed to delete task: %w", err)
		}

		return nil
	})
}

// authorize checks existence before ownership: a caller probing somebody
// else's id space learns only that a task does not exist, never that it
// belongs to someone else.
func authorize(task model.Task, subject, forbiddenMsg string) error {
	if task.ID == 0 {
		return failure.TaskNotFoundError //nolint:wrapcheck
	}

	if task.Owner != subject {
		return failure.Forbidden(forbiddenMsg) //nolint:wrapcheck
	}

	return nil
}

func subjectFromContext(ctx context.Context) string {
	subject, _ := ctx.Value(constant.ContextKeyUsername).(string)

	return subject
}
