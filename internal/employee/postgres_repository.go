package employee

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/daap14/staffdir/internal/assignment"
)

// PostgresRepository implements Repository using pgxpool.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewRepository creates a new Repository backed by the given connection pool.
func NewRepository(pool *pgxpool.Pool) Repository {
	return &PostgresRepository{pool: pool}
}

// allColumns is the ordered list of columns scanned from the employee table.
const allColumns = `id, name, date_of_joining, designation, gender, email, bio`

// scanEmployee scans a single Employee from a row.
func scanEmployee(row pgx.Row) (*Employee, error) {
	var e Employee
	err := row.Scan(
		&e.ID, &e.Name, &e.DateOfJoining,
		&e.Designation, &e.Gender, &e.Email, &e.Bio,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("scanning employee row: %w", err)
	}
	return &e, nil
}

// Create inserts a new employee record and returns the stored row.
func (r *PostgresRepository) Create(ctx context.Context, f Fields) (*Employee, error) {
	query := `
		INSERT INTO employee (name, date_of_joining, designation, gender, email, bio)
		VALUES ($1, $2::text::date, $3, $4, $5, $6)
		RETURNING ` + allColumns

	created, err := scanEmployee(r.pool.QueryRow(ctx, query,
		f.Name, f.DateOfJoining, f.Designation, f.Gender, f.Email, f.Bio,
	))
	if err != nil {
		return nil, fmt.Errorf("inserting employee: %w", err)
	}

	return created, nil
}

// GetByID retrieves a single employee by id.
func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (*Employee, error) {
	query := `SELECT ` + allColumns + ` FROM employee WHERE id = $1`
	return scanEmployee(r.pool.QueryRow(ctx, query, id))
}

// List retrieves all employees ordered by id.
func (r *PostgresRepository) List(ctx context.Context) ([]Employee, error) {
	query := `SELECT ` + allColumns + ` FROM employee ORDER BY id ASC`
	return r.queryAll(ctx, "listing employees", query)
}

// ListByTeam retrieves the employees that hold an assignment to teamID.
func (r *PostgresRepository) ListByTeam(ctx context.Context, teamID int64) ([]Employee, error) {
	query := `
		SELECT ` + allColumns + `
		FROM employee
		WHERE id IN (SELECT employee_id FROM employee_assignment WHERE team_id = $1)
		ORDER BY id ASC`
	return r.queryAll(ctx, "listing employees of team", query, teamID)
}

// Update overwrites all columns of the employee identified by id.
func (r *PostgresRepository) Update(ctx context.Context, id int64, f Fields) (*Employee, error) {
	query := `
		UPDATE employee
		SET name = $1, date_of_joining = $2::text::date, designation = $3, gender = $4, email = $5, bio = $6
		WHERE id = $7
		RETURNING ` + allColumns

	updated, err := scanEmployee(r.pool.QueryRow(ctx, query,
		f.Name, f.DateOfJoining, f.Designation, f.Gender, f.Email, f.Bio, id,
	))
	if err != nil {
		if errors.Is(err, ErrEmployeeNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("updating employee: %w", err)
	}

	return updated, nil
}

// Delete removes the employee's assignments and then the employee in a single
// transaction. Returns ErrEmployeeNotFound, with nothing removed, if no
// employee has the given id.
func (r *PostgresRepository) Delete(ctx context.Context, id int64) (*DeleteResult, error) {
	var result *DeleteResult

	err := pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		removed, err := assignment.DeleteByEmployee(ctx, tx, id)
		if err != nil {
			return err
		}

		deleted, err := scanEmployee(tx.QueryRow(ctx,
			`DELETE FROM employee WHERE id = $1 RETURNING `+allColumns, id))
		if err != nil {
			return err
		}

		result = &DeleteResult{Employee: *deleted, Assignments: removed}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrEmployeeNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("deleting employee: %w", err)
	}

	return result, nil
}

func (r *PostgresRepository) queryAll(ctx context.Context, op, query string, args ...any) ([]Employee, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	employees := []Employee{}
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating employee rows: %w", err)
	}

	return employees, nil
}
