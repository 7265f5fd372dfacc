package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"PassKeeper/internal/desktop"
	"PassKeeper/internal/model"
	"PassKeeper/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type CredentialHandler struct {
	Service *service.CredentialService
	Desktop desktop.Desktop
	Logger  *zap.SugaredLogger
}

func NewCredentialHandler(svc *service.CredentialService, d desktop.Desktop, logger *zap.SugaredLogger) *CredentialHandler {
	return &CredentialHandler{Service: svc, Desktop: d, Logger: logger}
}

type saveResponse struct {
	ID int64 `json:"id"`
}

// List — GET /api/passwords
func (h *CredentialHandler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.Service.List(r.Context())
	if err != nil {
		writeStorageError(w, err)
		return
	}
	if list == nil {
		list = []model.Credential{}
	}
	writeJSON(w, http.StatusOK, list)
}

// Save — POST /api/passwords
func (h *CredentialHandler) Save(w http.ResponseWriter, r *http.Request) {
	var in service.SaveInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	id, err := h.Service.Save(r.Context(), in)
	switch {
	case err == nil:
		writeJSON(w, http.StatusCreated, saveResponse{ID: id})
	case errors.Is(err, service.ErrNameRequired), errors.Is(err, service.ErrPasswordRequired):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		writeStorageError(w, err)
	}
}

// Delete — DELETE /api/passwords/{id}; отсутствующий id тоже 204.
func (h *CredentialHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	if err := h.Service.Delete(r.Context(), id); err != nil {
		writeStorageError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Open — POST /api/passwords/{id}/open: открыть сайт и скопировать логин/пароль.
func (h *CredentialHandler) Open(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	_, err := h.Service.Open(r.Context(), id, h.Desktop)
	switch {
	case err == nil:
		w.WriteHeader(http.StatusNoContent)
	case errors.Is(err, service.ErrNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	default:
		writeStorageError(w, err)
	}
}

func parseID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return 0, false
	}
	return id, true
}
