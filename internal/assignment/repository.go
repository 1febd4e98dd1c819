package assignment

import "context"

// Repository provides operations on the employee_assignment table.
type Repository interface {
	Create(ctx context.Context, pair Pair) (*Assignment, error)
	List(ctx context.Context, filter ListFilter) ([]Assignment, error)
	DeleteByPair(ctx context.Context, pair Pair) ([]Assignment, error)
	DeleteByID(ctx context.Context, id int64) ([]Assignment, error)
}
