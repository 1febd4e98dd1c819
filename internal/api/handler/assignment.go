package handler

import (
	"net/http"

	"github.com/daap14/staffdir/internal/api/response"
	"github.com/daap14/staffdir/internal/assignment"
)

// assignmentRequest identifies an employee/team pair, both for creating an
// assignment and for deleting the assignments linking them.
type assignmentRequest struct {
	EmployeeID jsonText `json:"employee_id"`
	TeamID     jsonText `json:"team_id"`
}

func (req assignmentRequest) pair() assignment.Pair {
	return assignment.Pair{EmployeeID: req.EmployeeID.Ptr(), TeamID: req.TeamID.Ptr()}
}

type assignmentResponse struct {
	ID         int64  `json:"id"`
	EmployeeID *int64 `json:"employee_id"`
	TeamID     *int64 `json:"team_id"`
}

func toAssignmentResponse(a *assignment.Assignment) assignmentResponse {
	return assignmentResponse{
		ID:         a.ID,
		EmployeeID: a.EmployeeID,
		TeamID:     a.TeamID,
	}
}

func toAssignmentResponses(assignments []assignment.Assignment) []assignmentResponse {
	items := make([]assignmentResponse, 0, len(assignments))
	for i := range assignments {
		items = append(items, toAssignmentResponse(&assignments[i]))
	}
	return items
}

// AssignmentHandler handles employee-team assignment endpoints.
type AssignmentHandler struct {
	repo assignment.Repository
}

// NewAssignmentHandler creates a new AssignmentHandler.
func NewAssignmentHandler(repo assignment.Repository) *AssignmentHandler {
	return &AssignmentHandler{repo: repo}
}

// Create handles POST /employeeassignment.
func (h *AssignmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req assignmentRequest
	if !decodeBody(w, r, &req) {
		return
	}

	created, err := h.repo.Create(r.Context(), req.pair())
	if err != nil {
		fail(w, r, "failed to create assignment", err)
		return
	}

	response.OK(w, toAssignmentResponse(created))
}

// List handles GET /employeeassignments with optional employee_id and
// team_id query filters.
func (h *AssignmentHandler) List(w http.ResponseWriter, r *http.Request) {
	employeeID, err := queryID(r, "employee_id")
	if err != nil {
		fail(w, r, "invalid employee_id filter", err)
		return
	}
	teamID, err := queryID(r, "team_id")
	if err != nil {
		fail(w, r, "invalid team_id filter", err)
		return
	}

	assignments, err := h.repo.List(r.Context(), assignment.ListFilter{
		EmployeeID: employeeID,
		TeamID:     teamID,
	})
	if err != nil {
		fail(w, r, "failed to list assignments", err)
		return
	}

	response.OK(w, toAssignmentResponses(assignments))
}

// DeleteByPair handles DELETE /employeeassignment with an
// {employee_id, team_id} body.
func (h *AssignmentHandler) DeleteByPair(w http.ResponseWriter, r *http.Request) {
	var req assignmentRequest
	if !decodeBody(w, r, &req) {
		return
	}

	removed, err := h.repo.DeleteByPair(r.Context(), req.pair())
	if err != nil {
		fail(w, r, "failed to delete assignments", err)
		return
	}

	response.OK(w, toAssignmentResponses(removed))
}

// DeleteByID handles DELETE /employeeassignment/{id}.
func (h *AssignmentHandler) DeleteByID(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		fail(w, r, "invalid assignment id", err)
		return
	}

	removed, err := h.repo.DeleteByID(r.Context(), id)
	if err != nil {
		fail(w, r, "failed to delete assignment", err, "id", id)
		return
	}

	response.OK(w, toAssignmentResponses(removed))
}
