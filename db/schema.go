// Package db holds the PostgreSQL schema the record service runs against.
package db

import _ "embed"

// Schema creates the employee, team and employee_assignment tables. Every
// statement is idempotent.
//
//go:embed schema.sql
var Schema string
