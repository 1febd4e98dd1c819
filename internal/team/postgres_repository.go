package team

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

// allColumns is the ordered list of columns scanned from the team table.
const allColumns = `id, name, email, description`

// scanTeam scans a single Team from a row.
func scanTeam(row pgx.Row) (*Team, error) {
	var t Team
	err := row.Scan(&t.ID, &t.Name, &t.Email, &t.Description)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrTeamNotFound
		}
		return nil, fmt.Errorf("scanning team row: %w", err)
	}
	return &t, nil
}

// Create inserts a new team record.
func (r *PostgresRepository) Create(ctx context.Context, t *Team) error {
	query := `
		INSERT INTO team (name, email, description)
		VALUES ($1, $2, $3)
		RETURNING ` + allColumns

	created, err := scanTeam(r.pool.QueryRow(ctx, query, t.Name, t.Email, t.Description))
	if err != nil {
		return fmt.Errorf("inserting team: %w", err)
	}

	*t = *created
	return nil
}

// GetByID retrieves a single team by id.
func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (*Team, error) {
	query := `SELECT ` + allColumns + ` FROM team WHERE id = $1`
	return scanTeam(r.pool.QueryRow(ctx, query, id))
}

// List retrieves all teams ordered by id.
func (r *PostgresRepository) List(ctx context.Context) ([]Team, error) {
	query := `SELECT ` + allColumns + ` FROM team ORDER BY id ASC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing teams: %w", err)
	}
	return collect(rows)
}

// ListByEmployee retrieves the teams the employee is assigned to.
func (r *PostgresRepository) ListByEmployee(ctx context.Context, employeeID int64) ([]Team, error) {
	query := `
		SELECT ` + allColumns + `
		FROM team
		WHERE id IN (SELECT team_id FROM employee_assignment WHERE employee_id = $1)
		ORDER BY id ASC`

	rows, err := r.pool.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("listing teams of employee: %w", err)
	}
	return collect(rows)
}

// Update overwrites name, email and description of the team.
func (r *PostgresRepository) Update(ctx context.Context, id int64, t *Team) (*Team, error) {
	query := `
		UPDATE team
		SET name = $1, email = $2, description = $3
		WHERE id = $4
		RETURNING ` + allColumns

	updated, err := scanTeam(r.pool.QueryRow(ctx, query, t.Name, t.Email, t.Description, id))
	if err != nil {
		if errors.Is(err, ErrTeamNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("updating team: %w", err)
	}

	return updated, nil
}

// Delete removes the team's assignments and then the team in one transaction.
// Returns ErrTeamNotFound if no team has the given id.
func (r *PostgresRepository) Delete(ctx context.Context, id int64) (*DeleteResult, error) {
	var result *DeleteResult

	err := pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		removed, err := assignment.DeleteByTeam(ctx, tx, id)
		if err != nil {
			return err
		}

		deleted, err := scanTeam(tx.QueryRow(ctx, `DELETE FROM team WHERE id = $1 RETURNING `+allColumns, id))
		if err != nil {
			return err
		}

		result = &DeleteResult{Team: *deleted, Assignments: removed}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrTeamNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("deleting team: %w", err)
	}

	return result, nil
}

// collect drains rows into a non-nil slice and closes them.
func collect(rows pgx.Rows) ([]Team, error) {
	defer rows.Close()

	teams := []Team{}
	for rows.Next() {
		t, err := scanTeam(rows)
		if err != nil {
			return nil, err
		}
		teams = append(teams, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating team rows: %w", err)
	}

	return teams, nil
}
