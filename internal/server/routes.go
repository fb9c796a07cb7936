package server

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"

	"github.com/watchingglass/fortune/internal/fortune"
)

func addRoutes(r chi.Router, logger *slog.Logger, attempts *Attempts, staticDir string) {
	p := mustParsePages()

	r.Get("/openapi.json", handleOpenAPI())
	r.Get("/docs", handleSwaggerUI())
	r.Get("/docs/*", handleSwaggerUI())

	// Pages.
	r.Get("/", handleHome(logger, p))
	r.Get("/quiz", handleStartQuiz(logger, attempts))
	r.Route("/quiz/{attemptID}", func(r chi.Router) {
		r.Use(attemptMiddleware(logger, attempts, http.NotFound))
		r.Get("/", handleQuizPage(logger, p, attempts))
		r.Post("/action", handleQuizAction(logger, attempts))
		r.Post("/exit", handleQuizExit(logger, attempts))
	})

	// JSON API.
	r.Get("/api/catalog", handleCatalog(attempts.Quiz()))
	r.Post("/api/attempts", handleCreateAttempt(logger, attempts))
	r.Route("/api/attempts/{attemptID}", func(r chi.Router) {
		r.Use(attemptMiddleware(logger, attempts, apiNotFound))
		r.Get("/", handleGetAttempt(attempts))
		r.Delete("/", handleDeleteAttempt(logger, attempts))
		r.Post("/answer", handleAction(logger, attempts, decodeAnswer))
		r.Post("/continue", handleAction(logger, attempts, bare(fortune.ActionContinue)))
		r.Post("/restart", handleAction(logger, attempts, bare(fortune.ActionRestart)))
		r.Post("/color/palette", handleAction(logger, attempts, bare(fortune.ActionPalette)))
		r.Post("/color/select", handleAction(logger, attempts, decodeColor(fortune.ActionSelectColor)))
		r.Post("/color/custom", handleAction(logger, attempts, decodeColor(fortune.ActionCustomColor)))
		r.Post("/color/submit", handleAction(logger, attempts, bare(fortune.ActionSubmitColor)))
		r.Get("/ws", handleAttemptSocket(logger, attempts))
		r.Get("/events", handleEvents(attempts.Events()))
	})

	if staticDir != "" {
		if info, err := os.Stat(staticDir); err == nil && info.IsDir() {
			logger.Info("serving static assets", "dir", staticDir)
			r.NotFound(handleStatic(staticDir))
		}
	}
}
