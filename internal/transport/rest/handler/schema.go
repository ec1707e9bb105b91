package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"scopeforge/internal/model"
	"scopeforge/internal/service"
	"scopeforge/internal/transport/rest/middleware"
)

// SchemaHandler handles questionnaire schema endpoints
type SchemaHandler struct {
	schemaSvc *service.SchemaService
}

// NewSchemaHandler creates a new schema handler
func NewSchemaHandler(schemaSvc *service.SchemaService) *SchemaHandler {
	return &SchemaHandler{schemaSvc: schemaSvc}
}

// Create handles POST /v1/schemas
func (h *SchemaHandler) Create(w http.ResponseWriter, r *http.Request) {
	hostID := middleware.GetHostID(r.Context())
	if hostID == "" {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var sch model.Schema
	if err := json.NewDecoder(r.Body).Decode(&sch); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.schemaSvc.Create(r.Context(), hostID, &sch)
	if err != nil {
		if strings.HasPrefix(err.Error(), "invalid schema") {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

// List handles GET /v1/schemas
func (h *SchemaHandler) List(w http.ResponseWriter, r *http.Request) {
	hostID := middleware.GetHostID(r.Context())
	if hostID == "" {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	schemas, err := h.schemaSvc.ListByHost(r.Context(), hostID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"schemas": schemas})
}

// Get handles GET /v1/schemas/{schemaId}
func (h *SchemaHandler) Get(w http.ResponseWriter, r *http.Request) {
	sch, err := h.schemaSvc.Get(r.Context(), mux.Vars(r)["schemaId"])
	if err != nil {
		if errors.Is(err, service.ErrSchemaNotFound) {
			writeError(w, http.StatusNotFound, "schema not found")
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, sch)
}

// Update handles PUT /v1/schemas/{schemaId}
func (h *SchemaHandler) Update(w http.ResponseWriter, r *http.Request) {
	hostID := middleware.GetHostID(r.Context())
	if hostID == "" {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var sch model.Schema
	if err := json.NewDecoder(r.Body).Decode(&sch); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	sch.ID = mux.Vars(r)["schemaId"]

	updated, err := h.schemaSvc.Update(r.Context(), hostID, &sch)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSchemaNotFound):
			writeError(w, http.StatusNotFound, "schema not found")
		case errors.Is(err, service.ErrSchemaReserved):
			writeError(w, http.StatusForbidden, err.Error())
		case strings.HasPrefix(err.Error(), "invalid schema"):
			writeError(w, http.StatusBadRequest, err.Error())
		default:
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	writeJSON(w, http.StatusOK, updated)
}

// Delete handles DELETE /v1/schemas/{schemaId}
func (h *SchemaHandler) Delete(w http.ResponseWriter, r *http.Request) {
	hostID := middleware.GetHostID(r.Context())
	if hostID == "" {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	err := h.schemaSvc.Delete(r.Context(), hostID, mux.Vars(r)["schemaId"])
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSchemaNotFound):
			writeError(w, http.StatusNotFound, "schema not found")
		case errors.Is(err, service.ErrSchemaReserved):
			writeError(w, http.StatusForbidden, err.Error())
		default:
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
