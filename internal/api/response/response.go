package response

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/jackc/pgx/v5/pgconn"
)

// Sentinel payload messages for absent records.
const (
	InfoNoData     = "No data found"
	InfoNoEmployee = "no employee"
	InfoNoTeam     = "no team"
)

// Info is the body returned with 200 when a record does not exist.
type Info struct {
	Info string `json:"info"`
}

// Failure is the raw error object reported to the client. For PostgreSQL
// errors it carries the server's diagnostic fields under the names
// node-postgres uses.
type Failure struct {
	Name             string `json:"name,omitempty"`
	Message          string `json:"message"`
	Severity         string `json:"severity,omitempty"`
	Code             string `json:"code,omitempty"`
	Detail           string `json:"detail,omitempty"`
	Hint             string `json:"hint,omitempty"`
	Position         string `json:"position,omitempty"`
	InternalPosition string `json:"internalPosition,omitempty"`
	InternalQuery    string `json:"internalQuery,omitempty"`
	Where            string `json:"where,omitempty"`
	Schema           string `json:"schema,omitempty"`
	Table            string `json:"table,omitempty"`
	Column           string `json:"column,omitempty"`
	DataType         string `json:"dataType,omitempty"`
	Constraint       string `json:"constraint,omitempty"`
	File             string `json:"file,omitempty"`
	Line             string `json:"line,omitempty"`
	Routine          string `json:"routine,omitempty"`
}

// NewFailure converts err into its client-facing form.
func NewFailure(err error) Failure {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return Failure{
			Name:             "error",
			Message:          pgErr.Message,
			Severity:         pgErr.Severity,
			Code:             pgErr.Code,
			Detail:           pgErr.Detail,
			Hint:             pgErr.Hint,
			Position:         itoa(pgErr.Position),
			InternalPosition: itoa(pgErr.InternalPosition),
			InternalQuery:    pgErr.InternalQuery,
			Where:            pgErr.Where,
			Schema:           pgErr.SchemaName,
			Table:            pgErr.TableName,
			Column:           pgErr.ColumnName,
			DataType:         pgErr.DataTypeName,
			Constraint:       pgErr.ConstraintName,
			File:             pgErr.File,
			Line:             itoa(pgErr.Line),
			Routine:          pgErr.Routine,
		}
	}
	return Failure{Message: err.Error()}
}

func itoa(n int32) string {
	if n == 0 {
		return ""
	}
	return strconv.Itoa(int(n))
}

// JSON writes v as a JSON response with the given status code.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

// OK writes v with status 200.
func OK(w http.ResponseWriter, v any) {
	JSON(w, http.StatusOK, v)
}

// NotFound writes a 200 sentinel payload signalling an absent record.
func NotFound(w http.ResponseWriter, info string) {
	JSON(w, http.StatusOK, Info{Info: info})
}

// OperationFailed writes a 500 response carrying the raw error.
func OperationFailed(w http.ResponseWriter, err error) {
	JSON(w, http.StatusInternalServerError, NewFailure(err))
}

// MalformedBody writes a 400 response for a request body that could not be decoded.
func MalformedBody(w http.ResponseWriter, err error) {
	JSON(w, http.StatusBadRequest, Failure{Name: "SyntaxError", Message: err.Error()})
}
