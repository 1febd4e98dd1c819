package assignment

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/daap14/staffdir/internal/database"
)

// columns is the ordered list of columns scanned from employee_assignment.
const columns = `id, employee_id, team_id`

// PostgresRepository implements Repository using pgxpool.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewRepository creates a new Repository backed by the given connection pool.
func NewRepository(pool *pgxpool.Pool) Repository {
	return &PostgresRepository{pool: pool}
}

// Create inserts an assignment linking the pair and returns the stored row.
func (r *PostgresRepository) Create(ctx context.Context, pair Pair) (*Assignment, error) {
	query := `
		INSERT INTO employee_assignment (employee_id, team_id)
		VALUES ($1::text::integer, $2::text::integer)
		RETURNING ` + columns

	var a Assignment
	err := r.pool.QueryRow(ctx, query, pair.EmployeeID, pair.TeamID).Scan(&a.ID, &a.EmployeeID, &a.TeamID)
	if err != nil {
		return nil, fmt.Errorf("inserting assignment: %w", err)
	}

	return &a, nil
}

// List retrieves assignments matching the filter, ordered by id.
func (r *PostgresRepository) List(ctx context.Context, filter ListFilter) ([]Assignment, error) {
	var conditions []string
	var args []any
	argIdx := 1

	if filter.EmployeeID != nil {
		conditions = append(conditions, fmt.Sprintf("employee_id = $%d", argIdx))
		args = append(args, *filter.EmployeeID)
		argIdx++
	}
	if filter.TeamID != nil {
		conditions = append(conditions, fmt.Sprintf("team_id = $%d", argIdx))
		args = append(args, *filter.TeamID)
	}

	var whereClause string
	if len(conditions) > 0 {
		whereClause = "WHERE " + strings.Join(conditions, " AND ")
	}

	query := fmt.Sprintf(`SELECT %s FROM employee_assignment %s ORDER BY id ASC`, columns, whereClause)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing assignments: %w", err)
	}
	return collect(rows)
}

// DeleteByPair removes every assignment linking the given employee and team
// and returns the removed rows.
func (r *PostgresRepository) DeleteByPair(ctx context.Context, pair Pair) ([]Assignment, error) {
	query := `
		DELETE FROM employee_assignment
		WHERE employee_id = $1::text::integer AND team_id = $2::text::integer
		RETURNING ` + columns

	rows, err := r.pool.Query(ctx, query, pair.EmployeeID, pair.TeamID)
	if err != nil {
		return nil, fmt.Errorf("deleting assignments by pair: %w", err)
	}
	return collect(rows)
}

// DeleteByID removes the assignment with the given id. The result holds
// zero or one rows.
func (r *PostgresRepository) DeleteByID(ctx context.Context, id int64) ([]Assignment, error) {
	query := `DELETE FROM employee_assignment WHERE id = $1 RETURNING ` + columns

	rows, err := r.pool.Query(ctx, query, id)
	if err != nil {
		return nil, fmt.Errorf("deleting assignment: %w", err)
	}
	return collect(rows)
}

// DeleteByEmployee removes all assignments of an employee using q, which may
// be a transaction owned by the caller.
func DeleteByEmployee(ctx context.Context, q database.Querier, employeeID int64) ([]Assignment, error) {
	query := `DELETE FROM employee_assignment WHERE employee_id = $1 RETURNING ` + columns

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("deleting assignments of employee: %w", err)
	}
	return collect(rows)
}

// DeleteByTeam removes all assignments of a team using q.
func DeleteByTeam(ctx context.Context, q database.Querier, teamID int64) ([]Assignment, error) {
	query := `DELETE FROM employee_assignment WHERE team_id = $1 RETURNING ` + columns

	rows, err := q.Query(ctx, query, teamID)
	if err != nil {
		return nil, fmt.Errorf("deleting assignments of team: %w", err)
	}
	return collect(rows)
}

// collect drains rows into a non-nil slice and closes them.
func collect(rows pgx.Rows) ([]Assignment, error) {
	defer rows.Close()

	assignments := []Assignment{}
	for rows.Next() {
		var a Assignment
		if err := rows.Scan(&a.ID, &a.EmployeeID, &a.TeamID); err != nil {
			return nil, fmt.Errorf("scanning assignment row: %w", err)
		}
		assignments = append(assignments, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating assignment rows: %w", err)
	}

	return assignments, nil
}
