package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
)

type ctxKey int

const ctxKeyAttempt ctxKey = iota

// attemptMiddleware loads the {attemptID} attempt into the request context.
// Unknown attempts are answered by notFound.
func attemptMiddleware(logger *slog.Logger, attempts *Attempts, notFound http.HandlerFunc) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := chi.URLParam(r, "attemptID")

			a, err := attempts.Get(r.Context(), id)
			if errors.Is(err, ErrNotFound) {
				notFound(w, r)
				return
			}
			if err != nil {
				logger.Error("loading attempt failed", "attempt", id, "error", err)
				http.Error(w, "internal error", http.StatusInternalServerError)
				return
			}

			ctx := context.WithValue(r.Context(), ctxKeyAttempt, a)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func attemptFrom(r *http.Request) Attempt {
	return r.Context().Value(ctxKeyAttempt).(Attempt)
}

func apiNotFound(w http.ResponseWriter, _ *http.Request) {
	writeError(w, http.StatusNotFound, "attempt not found")
}
