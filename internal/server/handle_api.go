package server

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/watchingglass/fortune/internal/fortune"
)

type CatalogResponse struct {
	Questions []fortune.Question `json:"questions"`
}

// AnswerRequest is the body of POST /api/attempts/{id}/answer.
type AnswerRequest struct {
	Value string `json:"value"`
}

// ColorRequest is the body of the color select and custom actions.
type ColorRequest struct {
	Color string `json:"color"`
}

func handleCatalog(quiz *fortune.Quiz) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, CatalogResponse{Questions: quiz.Catalog()})
	}
}

func handleCreateAttempt(logger *slog.Logger, attempts *Attempts) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		a, err := attempts.Start(r.Context())
		if err != nil {
			logger.Error("starting attempt failed", "error", err)
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}
		writeJSON(w, http.StatusCreated, newAttemptView(attempts.Quiz(), a))
	}
}

func handleGetAttempt(attempts *Attempts) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, newAttemptView(attempts.Quiz(), attemptFrom(r)))
	}
}

func handleDeleteAttempt(logger *slog.Logger, attempts *Attempts) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := attempts.Discard(r.Context(), attemptFrom(r).ID)
		if errors.Is(err, ErrNotFound) {
			writeError(w, http.StatusNotFound, "attempt not found")
			return
		}
		if err != nil {
			logger.Error("discarding attempt failed", "error", err)
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// actionDecoder builds the action for a request, or fails with a message
// suitable for a 400 response.
type actionDecoder func(r *http.Request) (fortune.Action, error)

func bare(t fortune.ActionType) actionDecoder {
	return func(*http.Request) (fortune.Action, error) {
		return fortune.Action{Type: t}, nil
	}
}

func decodeAnswer(r *http.Request) (fortune.Action, error) {
	var req AnswerRequest
	if err := readJSON(r, &req); err != nil {
		return fortune.Action{}, errors.New("invalid request body")
	}
	value := strings.TrimSpace(req.Value)
	if value == "" {
		return fortune.Action{}, errors.New("value is required")
	}
	return fortune.Action{Type: fortune.ActionChoose, Value: value}, nil
}

func decodeColor(t fortune.ActionType) actionDecoder {
	return func(r *http.Request) (fortune.Action, error) {
		var req ColorRequest
		if err := readJSON(r, &req); err != nil {
			return fortune.Action{}, errors.New("invalid request body")
		}
		color := strings.TrimSpace(req.Color)
		if color == "" {
			return fortune.Action{}, errors.New("color is required")
		}
		return fortune.Action{Type: t, Value: color}, nil
	}
}

func handleAction(logger *slog.Logger, attempts *Attempts, decode actionDecoder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		action, err := decode(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		a, err := attempts.Apply(r.Context(), attemptFrom(r), action)
		if err != nil {
			status, msg := actionErrorStatus(err)
			if status == http.StatusInternalServerError {
				logger.Error("applying action failed", "action", action.Type, "error", err)
			}
			writeError(w, status, msg)
			return
		}
		writeJSON(w, http.StatusOK, newAttemptView(attempts.Quiz(), a))
	}
}

func actionErrorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, fortune.ErrUnknownAction), errors.Is(err, fortune.ErrNotAnOption):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, fortune.ErrNoPicker), errors.Is(err, fortune.ErrNoOptions):
		return http.StatusConflict, err.Error()
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound, "attempt not found"
	default:
		return http.StatusInternalServerError, "internal error"
	}
}
