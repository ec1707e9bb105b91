package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"scopeforge/internal/model"
	"scopeforge/internal/service"
	"scopeforge/internal/transport/rest/middleware"
)

// SessionHandler handles questionnaire session endpoints
type SessionHandler struct {
	sessionSvc *service.SessionService
	authSvc    *service.AuthService
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(sessionSvc *service.SessionService, authSvc *service.AuthService) *SessionHandler {
	return &SessionHandler{
		sessionSvc: sessionSvc,
		authSvc:    authSvc,
	}
}

// StartSessionRequest is the request body for starting a session
type StartSessionRequest struct {
	SchemaID string `json:"schemaId"`
}

// StartSessionResponse carries the initial view and the session-scoped token
type StartSessionResponse struct {
	Token   string             `json:"token"`
	Session *model.SessionView `json:"session"`
}

// Start handles POST /v1/sessions
func (h *SessionHandler) Start(w http.ResponseWriter, r *http.Request) {
	var req StartSessionRequest
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
	}

	view, err := h.sessionSvc.Start(r.Context(), req.SchemaID)
	if err != nil {
		if errors.Is(err, service.ErrSchemaNotFound) {
			writeError(w, http.StatusNotFound, "schema not found")
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	token, err := h.authSvc.GenerateParticipantToken(view.SessionID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, &StartSessionResponse{
		Token:   token,
		Session: view,
	})
}

// sessionID checks the path id against the token's session scope
func (h *SessionHandler) sessionID(w http.ResponseWriter, r *http.Request) (string, bool) {
	id := mux.Vars(r)["id"]
	if middleware.GetSessionID(r.Context()) != id {
		writeError(w, http.StatusForbidden, "token not valid for this session")
		return "", false
	}
	return id, true
}

// Get handles GET /v1/sessions/{id}
func (h *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := h.sessionID(w, r)
	if !ok {
		return
	}
	view, err := h.sessionSvc.Get(r.Context(), id)
	if err != nil {
		writeSessionError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// SaveAnswerRequest is the request body for saving an answer
type SaveAnswerRequest struct {
	Value model.Value `json:"value"`
}

// SaveAnswer handles PUT /v1/sessions/{id}/answers/{questionId}
func (h *SessionHandler) SaveAnswer(w http.ResponseWriter, r *http.Request) {
	id, ok := h.sessionID(w, r)
	if !ok {
		return
	}

	var req SaveAnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	view, err := h.sessionSvc.SetAnswer(r.Context(), id, mux.Vars(r)["questionId"], req.Value)
	if err != nil {
		if errors.Is(err, service.ErrUnknownQuestion) {
			writeError(w, http.StatusNotFound, "question not found")
			return
		}
		writeSessionError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// Next handles POST /v1/sessions/{id}/next
func (h *SessionHandler) Next(w http.ResponseWriter, r *http.Request) {
	id, ok := h.sessionID(w, r)
	if !ok {
		return
	}
	view, err := h.sessionSvc.Next(r.Context(), id)
	if err != nil {
		writeSessionError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// Back handles POST /v1/sessions/{id}/back
func (h *SessionHandler) Back(w http.ResponseWriter, r *http.Request) {
	id, ok := h.sessionID(w, r)
	if !ok {
		return
	}
	view, err := h.sessionSvc.Back(r.Context(), id)
	if err != nil {
		writeSessionError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// GoToRequest is the request body for jumping to a step
type GoToRequest struct {
	StepIndex int `json:"stepIndex"`
}

// GoTo handles POST /v1/sessions/{id}/goto
func (h *SessionHandler) GoTo(w http.ResponseWriter, r *http.Request) {
	id, ok := h.sessionID(w, r)
	if !ok {
		return
	}

	var req GoToRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	view, err := h.sessionSvc.GoTo(r.Context(), id, req.StepIndex)
	if err != nil {
		writeSessionError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// Reset handles POST /v1/sessions/{id}/reset
func (h *SessionHandler) Reset(w http.ResponseWriter, r *http.Request) {
	id, ok := h.sessionID(w, r)
	if !ok {
		return
	}
	view, err := h.sessionSvc.Reset(r.Context(), id)
	if err != nil {
		writeSessionError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// Export handles GET /v1/sessions/{id}/export
func (h *SessionHandler) Export(w http.ResponseWriter, r *http.Request) {
	id, ok := h.sessionID(w, r)
	if !ok {
		return
	}
	doc, err := h.sessionSvc.Export(r.Context(), id)
	if err != nil {
		writeSessionError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

// ExportMarkdown handles GET /v1/sessions/{id}/export/markdown
func (h *SessionHandler) ExportMarkdown(w http.ResponseWriter, r *http.Request) {
	id, ok := h.sessionID(w, r)
	if !ok {
		return
	}
	doc, err := h.sessionSvc.ExportMarkdown(r.Context(), id)
	if err != nil {
		writeSessionError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(doc))
}

func writeSessionError(w http.ResponseWriter, err error) {
	if errors.Is(err, service.ErrSessionNotFound) {
		writeError(w, http.StatusNotFound, "session not found")
		return
	}
	writeError(w, http.StatusInternalServerError, err.Error())
}
