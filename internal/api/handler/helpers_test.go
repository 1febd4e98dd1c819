package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/require"

	"github.com/daap14/staffdir/internal/assignment"
	"github.com/daap14/staffdir/internal/employee"
	"github.com/daap14/staffdir/internal/team"
)

// --- Mock Employee Repository ---

type mockEmployeeRepo struct {
	createFn     func(ctx context.Context, f employee.Fields) (*employee.Employee, error)
	getByIDFn    func(ctx context.Context, id int64) (*employee.Employee, error)
	listFn       func(ctx context.Context) ([]employee.Employee, error)
	listByTeamFn func(ctx context.Context, teamID int64) ([]employee.Employee, error)
	updateFn     func(ctx context.Context, id int64, f employee.Fields) (*employee.Employee, error)
	deleteFn     func(ctx context.Context, id int64) (*employee.DeleteResult, error)
}

func (m *mockEmployeeRepo) Create(ctx context.Context, f employee.Fields) (*employee.Employee, error) {
	if m.createFn != nil {
		return m.createFn(ctx, f)
	}
	return &employee.Employee{ID: 1, Name: f.Name}, nil
}

func (m *mockEmployeeRepo) GetByID(ctx context.Context, id int64) (*employee.Employee, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, employee.ErrEmployeeNotFound
}

func (m *mockEmployeeRepo) List(ctx context.Context) ([]employee.Employee, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return []employee.Employee{}, nil
}

func (m *mockEmployeeRepo) ListByTeam(ctx context.Context, teamID int64) ([]employee.Employee, error) {
	if m.listByTeamFn != nil {
		return m.listByTeamFn(ctx, teamID)
	}
	return []employee.Employee{}, nil
}

func (m *mockEmployeeRepo) Update(ctx context.Context, id int64, f employee.Fields) (*employee.Employee, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, id, f)
	}
	return nil, employee.ErrEmployeeNotFound
}

func (m *mockEmployeeRepo) Delete(ctx context.Context, id int64) (*employee.DeleteResult, error) {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil, employee.ErrEmployeeNotFound
}

// --- Mock Team Repository ---

type mockTeamRepo struct {
	createFn         func(ctx context.Context, t *team.Team) error
	getByIDFn        func(ctx context.Context, id int64) (*team.Team, error)
	listFn           func(ctx context.Context) ([]team.Team, error)
	listByEmployeeFn func(ctx context.Context, employeeID int64) ([]team.Team, error)
	updateFn         func(ctx context.Context, id int64, t *team.Team) (*team.Team, error)
	deleteFn         func(ctx context.Context, id int64) (*team.DeleteResult, error)
}

func (m *mockTeamRepo) Create(ctx context.Context, t *team.Team) error {
	if m.createFn != nil {
		return m.createFn(ctx, t)
	}
	t.ID = 1
	return nil
}

func (m *mockTeamRepo) GetByID(ctx context.Context, id int64) (*team.Team, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, team.ErrTeamNotFound
}

func (m *mockTeamRepo) List(ctx context.Context) ([]team.Team, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return []team.Team{}, nil
}

func (m *mockTeamRepo) ListByEmployee(ctx context.Context, employeeID int64) ([]team.Team, error) {
	if m.listByEmployeeFn != nil {
		return m.listByEmployeeFn(ctx, employeeID)
	}
	return []team.Team{}, nil
}

func (m *mockTeamRepo) Update(ctx context.Context, id int64, t *team.Team) (*team.Team, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, id, t)
	}
	return nil, team.ErrTeamNotFound
}

func (m *mockTeamRepo) Delete(ctx context.Context, id int64) (*team.DeleteResult, error) {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil, team.ErrTeamNotFound
}

// --- Mock Assignment Repository ---

type mockAssignmentRepo struct {
	createFn       func(ctx context.Context, pair assignment.Pair) (*assignment.Assignment, error)
	listFn         func(ctx context.Context, filter assignment.ListFilter) ([]assignment.Assignment, error)
	deleteByPairFn func(ctx context.Context, pair assignment.Pair) ([]assignment.Assignment, error)
	deleteByIDFn   func(ctx context.Context, id int64) ([]assignment.Assignment, error)
}

func (m *mockAssignmentRepo) Create(ctx context.Context, pair assignment.Pair) (*assignment.Assignment, error) {
	if m.createFn != nil {
		return m.createFn(ctx, pair)
	}
	return &assignment.Assignment{ID: 1}, nil
}

func (m *mockAssignmentRepo) List(ctx context.Context, filter assignment.ListFilter) ([]assignment.Assignment, error) {
	if m.listFn != nil {
		return m.listFn(ctx, filter)
	}
	return []assignment.Assignment{}, nil
}

func (m *mockAssignmentRepo) DeleteByPair(ctx context.Context, pair assignment.Pair) ([]assignment.Assignment, error) {
	if m.deleteByPairFn != nil {
		return m.deleteByPairFn(ctx, pair)
	}
	return []assignment.Assignment{}, nil
}

func (m *mockAssignmentRepo) DeleteByID(ctx context.Context, id int64) ([]assignment.Assignment, error) {
	if m.deleteByIDFn != nil {
		return m.deleteByIDFn(ctx, id)
	}
	return []assignment.Assignment{}, nil
}

// --- Helpers ---

func makeChiRequest(method, path string, body []byte, params map[string]string) (*http.Request, *httptest.ResponseRecorder) {
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, path, bytes.NewReader(body))
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()

	if len(params) > 0 {
		rctx := chi.NewRouteContext()
		for k, v := range params {
			rctx.URLParams.Add(k, v)
		}
		req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
	}

	return req, w
}

func parseObject(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &body)
	require.NoError(t, err, "failed to parse response body")
	return body
}

func parseArray(t *testing.T, w *httptest.ResponseRecorder) []interface{} {
	t.Helper()
	var body []interface{}
	err := json.Unmarshal(w.Body.Bytes(), &body)
	require.NoError(t, err, "failed to parse response body")
	return body
}

func strPtr(s string) *string { return &s }

func int64Ptr(n int64) *int64 { return &n }

// storedDate mimics PostgreSQL's parse of a date written as text.
func storedDate(t *testing.T, raw *string) pgtype.Date {
	t.Helper()
	if raw == nil {
		return pgtype.Date{}
	}
	return date(t, (*raw)[:10])
}

func date(t *testing.T, s string) pgtype.Date {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	require.NoError(t, err)
	return pgtype.Date{Time: d, Valid: true}
}

func sampleEmployee(t *testing.T, id int64) *employee.Employee {
	return &employee.Employee{
		ID:            id,
		Name:          strPtr("Ada"),
		DateOfJoining: date(t, "2021-03-15"),
		Designation:   strPtr("engineer"),
		Gender:        strPtr("female"),
		Email:         strPtr("ada@example.com"),
		Bio:           strPtr("writes compilers"),
	}
}

func sampleTeam(id int64) *team.Team {
	return &team.Team{
		ID:          id,
		Name:        strPtr("backend"),
		Email:       strPtr("b@x.com"),
		Description: strPtr("api team"),
	}
}
