package api

import (
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/go-chi/chi/v5"

	"github.com/daap14/staffdir/internal/api/handler"
	"github.com/daap14/staffdir/internal/api/middleware"
	"github.com/daap14/staffdir/internal/assignment"
	"github.com/daap14/staffdir/internal/employee"
	"github.com/daap14/staffdir/internal/team"
)

// RouterDeps holds all dependencies needed by the router.
type RouterDeps struct {
	DBPinger       handler.DBPinger
	Version        string
	OpenAPISpec    []byte
	EmployeeRepo   employee.Repository
	TeamRepo       team.Repository
	AssignmentRepo assignment.Repository
}

// NewRouter creates and configures a Chi router with all middleware and routes.
func NewRouter(deps RouterDeps) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recovery)
	r.Use(chimiddleware.Logger)

	healthHandler := handler.NewHealthHandler(deps.DBPinger, deps.Version)
	r.Get("/health", healthHandler.ServeHTTP)

	if len(deps.OpenAPISpec) > 0 {
		openapiHandler := handler.NewOpenAPIHandler(deps.OpenAPISpec)
		r.Get("/openapi.json", openapiHandler.ServeHTTP)
	}

	if deps.EmployeeRepo != nil && deps.TeamRepo != nil {
		employeeHandler := handler.NewEmployeeHandler(deps.EmployeeRepo, deps.TeamRepo)
		r.Post("/employee", employeeHandler.Create)
		r.Put("/employee/{id}", employeeHandler.Update)
		r.Delete("/employee/{id}", employeeHandler.Delete)
		r.Get("/employees", employeeHandler.List)
		r.Get("/employees/{id}", employeeHandler.GetByID)

		teamHandler := handler.NewTeamHandler(deps.TeamRepo, deps.EmployeeRepo)
		r.Post("/team", teamHandler.Create)
		r.Put("/team/{id}", teamHandler.Update)
		r.Delete("/team/{id}", teamHandler.Delete)
		r.Get("/teams", teamHandler.List)
		r.Get("/teams/{id}", teamHandler.GetByID)
	}

	if deps.AssignmentRepo != nil {
		assignmentHandler := handler.NewAssignmentHandler(deps.AssignmentRepo)
		r.Post("/employeeassignment", assignmentHandler.Create)
		r.Delete("/employeeassignment", assignmentHandler.DeleteByPair)
		r.Delete("/employeeassignment/{id}", assignmentHandler.DeleteByID)
		r.Get("/employeeassignments", assignmentHandler.List)
	}

	return r
}
