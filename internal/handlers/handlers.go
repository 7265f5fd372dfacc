package handlers

import (
	_ "embed"
	"net/http"

	"PassKeeper/internal/config"
	"PassKeeper/internal/desktop"
	"PassKeeper/internal/generator"
	"PassKeeper/internal/middleware"
	"PassKeeper/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

//go:embed static/index.html
var indexHTML []byte

type Handler struct {
	Router chi.Router
}

// NewHandler разводящий для хендлеров
func NewHandler(
	credService *service.CredentialService,
	gen *generator.Generator,
	d desktop.Desktop,
	logger *zap.SugaredLogger,
	cfg *config.Config,
) *Handler {
	r := chi.NewRouter()

	r.Use(middleware.WithRequestID)
	r.Use(middleware.WithGzip)
	r.Use(middleware.WithLogging)
	// сервер локальный: только свой Host/Origin и только JSON на изменяющих запросах
	r.Use(middleware.WithLocalOnly(cfg.BaseURL))
	r.Use(middleware.WithJSONContentType)

	genHandler := NewGenerateHandler(gen, d, logger, cfg)
	credHandler := NewCredentialHandler(credService, d, logger)

	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write(indexHTML)
	})

	// Generator routes (never touch the store)
	r.Post("/api/generate", genHandler.Generate)
	r.Post("/api/clipboard", genHandler.Copy)

	// Saved password routes
	r.Get("/api/passwords", credHandler.List)
	r.Post("/api/passwords", credHandler.Save)
	r.Delete("/api/passwords/{id}", credHandler.Delete)
	r.Post("/api/passwords/{id}/open", credHandler.Open)

	return &Handler{Router: r}
}
