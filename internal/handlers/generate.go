package handlers

import (
	"encoding/json"
	"net/http"

	"PassKeeper/internal/config"
	"PassKeeper/internal/desktop"
	"PassKeeper/internal/generator"

	"go.uber.org/zap"
)

type GenerateHandler struct {
	Generator *generator.Generator
	Desktop   desktop.Desktop
	Logger    *zap.SugaredLogger
	Config    *config.Config
}

func NewGenerateHandler(gen *generator.Generator, d desktop.Desktop, logger *zap.SugaredLogger, cfg *config.Config) *GenerateHandler {
	return &GenerateHandler{Generator: gen, Desktop: d, Logger: logger, Config: cfg}
}

type generateResponse struct {
	Passwords []string `json:"passwords"`
}

type clipboardRequest struct {
	Text string `json:"text"`
}

// Generate — POST /api/generate. Пропущенные длина и количество берутся из конфигурации.
func (h *GenerateHandler) Generate(w http.ResponseWriter, r *http.Request) {
	opts := h.Config.GeneratorDefaults()
	if r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&opts); err != nil {
			writeError(w, http.StatusBadRequest, "invalid JSON")
			return
		}
	}
	if err := opts.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	list, err := h.Generator.Generate(opts)
	if err != nil {
		h.Logger.Errorw("generate passwords failed", "error", err)
		writeError(w, http.StatusInternalServerError, "random source unavailable")
		return
	}
	writeJSON(w, http.StatusOK, generateResponse{Passwords: list})
}

// Copy — POST /api/clipboard, копирует выбранный сгенерированный пароль.
func (h *GenerateHandler) Copy(w http.ResponseWriter, r *http.Request) {
	var req clipboardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if req.Text == "" {
		writeError(w, http.StatusBadRequest, "text is required")
		return
	}
	if err := h.Desktop.CopyToClipboard(req.Text); err != nil {
		h.Logger.Warnw("clipboard write failed", "error", err)
		writeError(w, http.StatusInternalServerError, "clipboard unavailable")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
