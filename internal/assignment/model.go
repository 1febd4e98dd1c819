package assignment

// Assignment represents a row in the employee_assignment table: one
// employee's membership in one team.
type Assignment struct {
	ID         int64
	EmployeeID *int64
	TeamID     *int64
}

// ListFilter holds optional filters for listing assignments.
// Nil fields do not constrain the result.
type ListFilter struct {
	EmployeeID *int64
	TeamID     *int64
}

// Pair names an employee and a team by id. The ids are text, converted to
// integers by PostgreSQL, so a malformed id fails in the database. Nil is NULL.
type Pair struct {
	EmployeeID *string
	TeamID     *string
}
