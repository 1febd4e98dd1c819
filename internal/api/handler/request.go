package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/daap14/staffdir/internal/api/middleware"
	"github.com/daap14/staffdir/internal/api/response"
)

// maxBodyBytes caps request bodies at 1MB.
const maxBodyBytes = 1 << 20

// parseInt64 parses a record id. The error text matches what PostgreSQL
// reports for the same input.
func parseInt64(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid input syntax for type integer: %q", raw)
	}
	return id, nil
}

// pathID extracts the {id} URL parameter.
func pathID(r *http.Request) (int64, error) {
	return parseInt64(chi.URLParam(r, "id"))
}

// queryID extracts an optional integer query parameter. A missing parameter
// yields nil.
func queryID(r *http.Request, name string) (*int64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	id, err := parseInt64(raw)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

// decodeBody decodes a JSON request body into dst, writing a 400 response and
// returning false if it cannot. An empty body leaves dst untouched, the same
// as {}.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil && !errors.Is(err, io.EOF) {
		response.MalformedBody(w, err)
		return false
	}
	return true
}

// jsonText is a request field forwarded to PostgreSQL as text, leaving type
// conversion to the column it is written to. Strings are unquoted; numbers,
// booleans, objects and arrays keep their JSON spelling. null and an absent
// field are both NULL.
type jsonText struct {
	value *string
}

func (t *jsonText) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		t.value = nil
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		t.value = &s
		return nil
	}
	s := string(b)
	t.value = &s
	return nil
}

// Ptr returns the text, or nil for NULL.
func (t jsonText) Ptr() *string {
	return t.value
}

// fail logs err and reports it to the client as a failed operation.
func fail(w http.ResponseWriter, r *http.Request, msg string, err error, args ...any) {
	args = append(args, "error", err, "requestId", middleware.GetRequestID(r.Context()))
	slog.Error(msg, args...)
	response.OperationFailed(w, err)
}
