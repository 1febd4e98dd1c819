package handler

import (
	"errors"
	"net/http"

	"github.com/daap14/staffdir/internal/api/response"
	"github.com/daap14/staffdir/internal/employee"
	"github.com/daap14/staffdir/internal/team"
)

type teamRequest struct {
	Name        jsonText `json:"name"`
	Email       jsonText `json:"email"`
	Description jsonText `json:"description"`
}

func (req teamRequest) toModel() *team.Team {
	return &team.Team{
		Name:        req.Name.Ptr(),
		Email:       req.Email.Ptr(),
		Description: req.Description.Ptr(),
	}
}

type teamResponse struct {
	ID          int64   `json:"id"`
	Name        *string `json:"name"`
	Email       *string `json:"email"`
	Description *string `json:"description"`
}

type teamWithEmployeesResponse struct {
	teamResponse
	Employees []employeeResponse `json:"employees"`
}

type deletedTeamResponse struct {
	teamResponse
	Assignments []assignmentResponse `json:"assignments"`
}

func toTeamResponse(t *team.Team) teamResponse {
	return teamResponse{
		ID:          t.ID,
		Name:        t.Name,
		Email:       t.Email,
		Description: t.Description,
	}
}

func toTeamResponses(teams []team.Team) []teamResponse {
	items := make([]teamResponse, 0, len(teams))
	for i := range teams {
		items = append(items, toTeamResponse(&teams[i]))
	}
	return items
}

// TeamHandler handles team CRUD endpoints.
type TeamHandler struct {
	teams     team.Repository
	employees employee.Repository
}

// NewTeamHandler creates a new TeamHandler.
func NewTeamHandler(teams team.Repository, employees employee.Repository) *TeamHandler {
	return &TeamHandler{teams: teams, employees: employees}
}

// Create handles POST /team.
func (h *TeamHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req teamRequest
	if !decodeBody(w, r, &req) {
		return
	}

	t := req.toModel()
	if err := h.teams.Create(r.Context(), t); err != nil {
		fail(w, r, "failed to create team", err)
		return
	}

	response.OK(w, toTeamResponse(t))
}

// List handles GET /teams.
func (h *TeamHandler) List(w http.ResponseWriter, r *http.Request) {
	teams, err := h.teams.List(r.Context())
	if err != nil {
		fail(w, r, "failed to list teams", err)
		return
	}

	response.OK(w, toTeamResponses(teams))
}

// GetByID handles GET /teams/{id}.
func (h *TeamHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		fail(w, r, "invalid team id", err)
		return
	}

	t, err := h.teams.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, team.ErrTeamNotFound) {
			response.NotFound(w, response.InfoNoData)
			return
		}
		fail(w, r, "failed to get team", err, "id", id)
		return
	}

	members, err := h.employees.ListByTeam(r.Context(), id)
	if err != nil {
		fail(w, r, "failed to list employees of team", err, "id", id)
		return
	}

	response.OK(w, teamWithEmployeesResponse{
		teamResponse: toTeamResponse(t),
		Employees:    toEmployeeResponses(members),
	})
}

// Update handles PUT /team/{id}.
func (h *TeamHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		fail(w, r, "invalid team id", err)
		return
	}

	var req teamRequest
	if !decodeBody(w, r, &req) {
		return
	}

	updated, err := h.teams.Update(r.Context(), id, req.toModel())
	if err != nil {
		if errors.Is(err, team.ErrTeamNotFound) {
			response.OK(w, nil)
			return
		}
		fail(w, r, "failed to update team", err, "id", id)
		return
	}

	response.OK(w, toTeamResponse(updated))
}

// Delete handles DELETE /team/{id}.
func (h *TeamHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		fail(w, r, "invalid team id", err)
		return
	}

	deleted, err := h.teams.Delete(r.Context(), id)
	if err != nil {
		if errors.Is(err, team.ErrTeamNotFound) {
			response.NotFound(w, response.InfoNoTeam)
			return
		}
		fail(w, r, "failed to delete team", err, "id", id)
		return
	}

	response.OK(w, deletedTeamResponse{
		teamResponse: toTeamResponse(&deleted.Team),
		Assignments:  toAssignmentResponses(deleted.Assignments),
	})
}
