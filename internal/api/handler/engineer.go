package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/engreg/engreg/internal/api/middleware"
	"github.com/engreg/engreg/internal/api/response"
	"github.com/engreg/engreg/internal/api/validation"
	"github.com/engreg/engreg/internal/engineer"
)

type engineerRequest struct {
	Name      string   `json:"name"`
	TechStack []string `json:"techStack"`
}

type engineerResponse struct {
	ID        int      `json:"id"`
	Name      string   `json:"name"`
	TechStack []string `json:"techStack"`
}

func toEngineerResponse(e engineer.Engineer) engineerResponse {
	return engineerResponse{
		ID:        e.ID,
		Name:      e.Name,
		TechStack: e.TechStack,
	}
}

// EngineerHandler handles the software-engineer CRUD endpoints.
type EngineerHandler struct {
	query    *engineer.QueryService
	cmd      *engineer.CommandService
	basePath string
}

// NewEngineerHandler creates a new EngineerHandler. basePath is the mount
// point of the resource and is used to build Location headers.
func NewEngineerHandler(query *engineer.QueryService, cmd *engineer.CommandService, basePath string) *EngineerHandler {
	return &EngineerHandler{query: query, cmd: cmd, basePath: basePath}
}

// Create handles POST /api/v1/software-engineers.
func (h *EngineerHandler) Create(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	req, ok := h.decodeAndValidate(w, r, requestID)
	if !ok {
		return
	}

	created := h.cmd.Create(r.Context(), req.Name, req.TechStack)

	w.Header().Set("Location", fmt.Sprintf("%s/%d", h.basePath, created.ID))
	response.JSON(w, http.StatusCreated, toEngineerResponse(created))
}

// List handles GET /api/v1/software-engineers.
func (h *EngineerHandler) List(w http.ResponseWriter, r *http.Request) {
	engineers := h.query.GetAll(r.Context())

	items := make([]engineerResponse, 0, len(engineers))
	for _, e := range engineers {
		items = append(items, toEngineerResponse(e))
	}

	response.JSON(w, http.StatusOK, items)
}

// GetByID handles GET /api/v1/software-engineers/{id}.
func (h *EngineerHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	id, ok := h.parseID(w, r, requestID)
	if !ok {
		return
	}

	e, err := h.query.GetByID(r.Context(), id)
	if err != nil {
		h.writeLookupError(w, r, err, requestID)
		return
	}

	response.JSON(w, http.StatusOK, toEngineerResponse(e))
}

// Update handles PUT /api/v1/software-engineers/{id}. The id comes from
// the path; the body carries the full replacement state.
func (h *EngineerHandler) Update(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	id, ok := h.parseID(w, r, requestID)
	if !ok {
		return
	}

	req, ok := h.decodeAndValidate(w, r, requestID)
	if !ok {
		return
	}

	if err := h.cmd.Update(r.Context(), id, req.Name, req.TechStack); err != nil {
		h.writeLookupError(w, r, err, requestID)
		return
	}

	response.NoContent(w)
}

// Delete handles DELETE /api/v1/software-engineers/{id}.
func (h *EngineerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	id, ok := h.parseID(w, r, requestID)
	if !ok {
		return
	}

	if err := h.cmd.Delete(r.Context(), id); err != nil {
		h.writeLookupError(w, r, err, requestID)
		return
	}

	response.NoContent(w)
}

func (h *EngineerHandler) parseID(w http.ResponseWriter, r *http.Request, requestID string) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		response.Err(w, http.StatusBadRequest, response.CodeInvalidID,
			"Invalid Identifier", "id must be an integer", r.URL.Path, requestID)
		return 0, false
	}
	return id, true
}

func (h *EngineerHandler) decodeAndValidate(w http.ResponseWriter, r *http.Request, requestID string) (engineerRequest, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
	var req engineerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Err(w, http.StatusBadRequest, response.CodeInvalidJSON,
			"Invalid Request Body", "Request body must be valid JSON", r.URL.Path, requestID)
		return engineerRequest{}, false
	}

	fieldErrors := validation.ValidateEngineerRequest(validation.EngineerRequest{Name: req.Name})
	if len(fieldErrors) > 0 {
		response.ErrWithDetails(w, http.StatusBadRequest, response.CodeValidation,
			"Validation Failed", "Input validation failed", r.URL.Path, requestID, fieldErrors)
		return engineerRequest{}, false
	}

	return req, true
}

func (h *EngineerHandler) writeLookupError(w http.ResponseWriter, r *http.Request, err error, requestID string) {
	if errors.Is(err, engineer.ErrEngineerNotFound) {
		response.Err(w, http.StatusNotFound, response.CodeNotFound,
			"Entity Not Found", err.Error(), r.URL.Path, requestID)
		return
	}
	slog.Error("unexpected lookup failure", "error", err, "path", r.URL.Path, "requestId", requestID)
	response.Err(w, http.StatusInternalServerError, response.CodeInternal,
		"Internal Server Error", "Unexpected error occurred", r.URL.Path, requestID)
}
