package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"PassKeeper/internal/repo"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// writeStorageError отвечает 500; детали сбоя остаются в логе.
func writeStorageError(w http.ResponseWriter, err error) {
	var se *repo.StorageError
	if errors.As(err, &se) {
		writeError(w, http.StatusInternalServerError, "storage unavailable")
		return
	}
	writeError(w, http.StatusInternalServerError, "internal error")
}
