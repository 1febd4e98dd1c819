package team

import (
	"context"
	"errors"
)

// ErrTeamNotFound is returned when a team record is not found.
var ErrTeamNotFound = errors.New("team not found")

// Repository provides CRUD operations on the team table.
type Repository interface {
	Create(ctx context.Context, team *Team) error
	GetByID(ctx context.Context, id int64) (*Team, error)
	List(ctx context.Context) ([]Team, error)
	ListByEmployee(ctx context.Context, employeeID int64) ([]Team, error)
	Update(ctx context.Context, id int64, team *Team) (*Team, error)
	Delete(ctx context.Context, id int64) (*DeleteResult, error)
}
