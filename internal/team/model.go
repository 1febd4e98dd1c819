package team

import "github.com/daap14/staffdir/internal/assignment"

// Team represents a row in the team table.
type Team struct {
	ID          int64
	Name        *string
	Email       *string
	Description *string
}

// DeleteResult is a team removed together with its assignments.
type DeleteResult struct {
	Team        Team
	Assignments []assignment.Assignment
}
