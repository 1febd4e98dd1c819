package employee

import (
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/daap14/staffdir/internal/assignment"
)

// Employee represents a row in the employee table. Every column except ID is
// nullable and written exactly as supplied.
type Employee struct {
	ID            int64
	Name          *string
	DateOfJoining pgtype.Date
	Designation   *string
	Gender        *string
	Email         *string
	Bio           *string
}

// Fields are the column values written by Create and Update, as text.
// PostgreSQL parses each one into its column type, so a malformed
// DateOfJoining fails in the database. Nil stores NULL.
type Fields struct {
	Name          *string
	DateOfJoining *string
	Designation   *string
	Gender        *string
	Email         *string
	Bio           *string
}

// DeleteResult is an employee removed together with its assignments.
type DeleteResult struct {
	Employee    Employee
	Assignments []assignment.Assignment
}
