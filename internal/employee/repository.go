package employee

import (
	"context"
	"errors"
)

// ErrEmployeeNotFound is returned when an employee record is not found.
var ErrEmployeeNotFound = errors.New("employee not found")

// Repository provides CRUD operations on the employee table.
type Repository interface {
	Create(ctx context.Context, f Fields) (*Employee, error)
	GetByID(ctx context.Context, id int64) (*Employee, error)
	List(ctx context.Context) ([]Employee, error)
	// ListByTeam returns the employees assigned to the given team.
	ListByTeam(ctx context.Context, teamID int64) ([]Employee, error)
	// Update overwrites every column of the employee with the values in f.
	Update(ctx context.Context, id int64, f Fields) (*Employee, error)
	// Delete removes the employee and all of its assignments atomically.
	Delete(ctx context.Context, id int64) (*DeleteResult, error)
}
