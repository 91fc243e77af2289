package task

import (
	"net/http"
	"strconv"
	"tasker/infras/otel"
	"tasker/internal/domains/task/model/dto"
	"tasker/internal/domains/task/service"
	"tasker/shared/constant"
	"tasker/shared/failure"
	"tasker/shared/validator"
	"tasker/transport/http/middleware"
	"tasker/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service    service.Task
	middleware middleware.Auth
	otel       otel.Otel
}

func New(service service.Task, middleware middleware.Auth, otel otel.Otel) Handler {
	return Handler{
		service:    service,
		middleware: middleware,
		otel:       otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/tasks", func(routerGroup chi.Router) {
		routerGroup.Use(handler.middleware.Auth)
		routerGroup.Post("/", handler.CreateTask)
		routerGroup.Get("/", handler.GetTasks)
		routerGroup.Get("/{id}", handler.GetTaskByID)
		routerGroup.Put("/{id}", handler.UpdateTask)
		routerGroup.Delete("/{id}", handler.DeleteTask)
	})
}

// CreateTask handles the creation of a new task.
// @Summary Create a new task
// @Description Create a task owned by the authenticated user; completed always starts false.
// @Tags Task
// @Accept json
// @Produce json
// @Param request body dto.CreateTaskRequest true "Create Task Request"
// @Success 201 {object} dto.TaskResponse "Created task"
// @Failure 400 {object} response.Detail
// @Failure 401 {object} response.Detail
// @Router /tasks [post]
// @Security BearerAuth
func (handler *Handler) CreateTask(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateTask")
	defer scope.End()

	req := dto.CreateTaskRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	task, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create task")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Task created by " + task.Owner)

	response.WithJSON(writer, http.StatusCreated, task)
}

// GetTasks lists the authenticated user's tasks.
// @Summary List tasks
// @Description Return every task owned by the authenticated user.
// @Tags Task
// @Accept json
// @Produce json
// @Success 200 {array} dto.TaskResponse "Tasks owned by the caller"
// @Failure 401 {object} response.Detail
// @Router /tasks [get]
// @Security BearerAuth
func (handler *Handler) GetTasks(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTasks")
	defer scope.End()

	tasks, err := handler.service.GetAll(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get tasks")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, tasks)
}

// GetTaskByID retrieves a task by its ID.
// @Summary Get a task by ID
// @Description Retrieve one of the authenticated user's tasks.
// @Tags Task
// @Accept json
// @Produce json
// @Param id path int true "Task ID"
// @Success 200 {object} dto.TaskResponse "Task details"
// @Failure 401 {object} response.Detail
// @Failure 403 {object} response.Detail
// @Failure 404 {object} response.Detail
// @Router /tasks/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetTaskByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTaskByID")
	defer scope.End()

	id, err := taskID(r)
	if err != nil {
		response.WithError(w, err)

		return
	}

	task, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get task by ID")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, task)
}

// UpdateTask overwrites a task's title and completed flag.
// @Summary Update a task by ID
// @Description Overwrite title and completed of one of the authenticated user's tasks; ownership never changes.
// @Tags Task
// @Accept json
// @Produce json
// @Param id path int true "Task ID"
// @Param request body dto.UpdateTaskRequest true "Update Task Request"
// @Success 200 {object} dto.TaskResponse "Updated task"
// @Failure 400 {object} response.Detail
// @Failure 401 {object} response.Detail
// @Failure 403 {object} response.Detail
// @Failure 404 {object} response.Detail
// @Router /tasks/{id} [put]
// @Security BearerAuth
func (handler *Handler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateTask")
	defer scope.End()

	id, err := taskID(r)
	if err != nil {
		response.WithError(w, err)

		return
	}

	req := dto.UpdateTaskRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	task, err := handler.service.Update(ctx, req, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update task")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Task updated by " + task.Owner)

	response.WithJSON(w, http.StatusOK, task)
}

// DeleteTask deletes a task by its ID.
// @Summary Delete a task by ID
// @Description Delete one of the authenticated user's tasks.
// @Tags Task
// @Accept json
// @Produce json
// @Param id path int true "Task ID"
// @Success 204 "Task deleted"
// @Failure 401 {object} response.Detail
// @Failure 403 {object} response.Detail
// @Failure 404 {object} response.Detail
// @Router /tasks/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteTask")
	defer scope.End()

	id, err := taskID(r)
	if err != nil {
		response.WithError(w, err)

		return
	}

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete task")

		response.WithError(w, err)

		return
	}

	response.WithNoContent(w)
}

// taskID parses the id path parameter. A non-numeric id can match no row, so
// it reads as not found rather than as a malformed request.
func taskID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, constant.RequestParamID), 10, 64)
	if err != nil {
		return 0, failure.TaskNotFoundError //nolint:wrapcheck
	}

	return id, nil
}
