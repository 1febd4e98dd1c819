package handler

import (
	"fmt"
	"log/slog"
	"net/http"
	"sync"

	"sigs.k8s.io/yaml"
)

// OpenAPIHandler serves GET /openapi.json from the embedded YAML document.
type OpenAPIHandler struct {
	document func() ([]byte, error)
}

// NewOpenAPIHandler returns a handler that renders yamlSpec as JSON. The
// conversion runs once, on the first request.
func NewOpenAPIHandler(yamlSpec []byte) *OpenAPIHandler {
	return &OpenAPIHandler{
		document: sync.OnceValues(func() ([]byte, error) {
			doc, err := yaml.YAMLToJSON(yamlSpec)
			if err != nil {
				return nil, fmt.Errorf("converting OpenAPI spec: %w", err)
			}
			return doc, nil
		}),
	}
}

func (h *OpenAPIHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	doc, err := h.document()
	if err != nil {
		fail(w, r, "openapi document unavailable", err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if _, err := w.Write(doc); err != nil {
		slog.Debug("writing openapi document", "error", err)
	}
}
