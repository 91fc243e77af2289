package router

import (
	"tasker/internal/handlers/task"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Task task.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	r.DomainHandlers.Task.Router(router)
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
