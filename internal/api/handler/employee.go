package handler

import (
	"errors"
	"net/http"

	"github.com/jackc/pgx/v5/pgtype"

	"github.com/daap14/staffdir/internal/api/response"
	"github.com/daap14/staffdir/internal/employee"
	"github.com/daap14/staffdir/internal/team"
)

// employeeRequest is the request body for POST /employee and PUT /employee/{id}.
// Absent fields are stored as NULL.
type employeeRequest struct {
	Name          jsonText `json:"name"`
	DateOfJoining jsonText `json:"date_of_joining"`
	Designation   jsonText `json:"designation"`
	Gender        jsonText `json:"gender"`
	Email         jsonText `json:"email"`
	Bio           jsonText `json:"bio"`
}

func (req employeeRequest) fields() employee.Fields {
	return employee.Fields{
		Name:          req.Name.Ptr(),
		DateOfJoining: req.DateOfJoining.Ptr(),
		Designation:   req.Designation.Ptr(),
		Gender:        req.Gender.Ptr(),
		Email:         req.Email.Ptr(),
		Bio:           req.Bio.Ptr(),
	}
}

// employeeResponse is an employee row as returned to clients.
type employeeResponse struct {
	ID            int64       `json:"id"`
	Name          *string     `json:"name"`
	DateOfJoining pgtype.Date `json:"date_of_joining"`
	Designation   *string     `json:"designation"`
	Gender        *string     `json:"gender"`
	Email         *string     `json:"email"`
	Bio           *string     `json:"bio"`
}

type employeeWithTeamsResponse struct {
	employeeResponse
	Teams []teamResponse `json:"teams"`
}

type deletedEmployeeResponse struct {
	employeeResponse
	Assignments []assignmentResponse `json:"assignments"`
}

func toEmployeeResponse(e *employee.Employee) employeeResponse {
	return employeeResponse{
		ID:            e.ID,
		Name:          e.Name,
		DateOfJoining: e.DateOfJoining,
		Designation:   e.Designation,
		Gender:        e.Gender,
		Email:         e.Email,
		Bio:           e.Bio,
	}
}

func toEmployeeResponses(employees []employee.Employee) []employeeResponse {
	items := make([]employeeResponse, 0, len(employees))
	for i := range employees {
		items = append(items, toEmployeeResponse(&employees[i]))
	}
	return items
}

// EmployeeHandler handles employee CRUD endpoints.
type EmployeeHandler struct {
	employees employee.Repository
	teams     team.Repository
}

// NewEmployeeHandler creates a new EmployeeHandler.
func NewEmployeeHandler(employees employee.Repository, teams team.Repository) *EmployeeHandler {
	return &EmployeeHandler{employees: employees, teams: teams}
}

// Create handles POST /employee.
func (h *EmployeeHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req employeeRequest
	if !decodeBody(w, r, &req) {
		return
	}

	created, err := h.employees.Create(r.Context(), req.fields())
	if err != nil {
		fail(w, r, "failed to create employee", err)
		return
	}

	response.OK(w, toEmployeeResponse(created))
}

// List handles GET /employees.
func (h *EmployeeHandler) List(w http.ResponseWriter, r *http.Request) {
	employees, err := h.employees.List(r.Context())
	if err != nil {
		fail(w, r, "failed to list employees", err)
		return
	}

	response.OK(w, toEmployeeResponses(employees))
}

// GetByID handles GET /employees/{id}. The employee is returned together with
// the teams it is assigned to.
func (h *EmployeeHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		fail(w, r, "invalid employee id", err)
		return
	}

	e, err := h.employees.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			response.NotFound(w, response.InfoNoData)
			return
		}
		fail(w, r, "failed to get employee", err, "id", id)
		return
	}

	teams, err := h.teams.ListByEmployee(r.Context(), id)
	if err != nil {
		fail(w, r, "failed to list teams of employee", err, "id", id)
		return
	}

	response.OK(w, employeeWithTeamsResponse{
		employeeResponse: toEmployeeResponse(e),
		Teams:            toTeamResponses(teams),
	})
}

// Update handles PUT /employee/{id}. Every field is overwritten; an unknown
// id yields a null body.
func (h *EmployeeHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		fail(w, r, "invalid employee id", err)
		return
	}

	var req employeeRequest
	if !decodeBody(w, r, &req) {
		return
	}

	updated, err := h.employees.Update(r.Context(), id, req.fields())
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			response.OK(w, nil)
			return
		}
		fail(w, r, "failed to update employee", err, "id", id)
		return
	}

	response.OK(w, toEmployeeResponse(updated))
}

// Delete handles DELETE /employee/{id}, removing the employee's assignments
// along with it.
func (h *EmployeeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		fail(w, r, "invalid employee id", err)
		return
	}

	deleted, err := h.employees.Delete(r.Context(), id)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			response.NotFound(w, response.InfoNoEmployee)
			return
		}
		fail(w, r, "failed to delete employee", err, "id", id)
		return
	}

	response.OK(w, deletedEmployeeResponse{
		employeeResponse: toEmployeeResponse(&deleted.Employee),
		Assignments:      toAssignmentResponses(deleted.Assignments),
	})
}
