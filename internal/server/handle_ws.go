package server

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"nhooyr.io/websocket"
	"nhooyr.io/websocket/wsjson"

	"github.com/watchingglass/fortune/internal/fortune"
)

// handleAttemptSocket drives an attempt over a WebSocket: the client sends
// fortune.Action messages and gets the attempt view back after each one.
// The current view is sent once on connect.
func handleAttemptSocket(logger *slog.Logger, attempts *Attempts) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		a := attemptFrom(r)

		conn, err := websocket.Accept(w, r, nil)
		if err != nil {
			logger.Error("websocket accept failed", "error", err)
			return
		}
		defer conn.CloseNow()

		ctx, cancel := context.WithTimeout(r.Context(), 30*time.Minute)
		defer cancel()

		if err := wsjson.Write(ctx, conn, newAttemptView(attempts.Quiz(), a)); err != nil {
			logger.Debug("websocket write failed", "error", err)
			return
		}

		for {
			var action fortune.Action
			if err := wsjson.Read(ctx, conn, &action); err != nil {
				logger.Debug("websocket read ended", "error", err)
				return
			}

			next, err := attempts.Get(ctx, a.ID)
			if err == nil {
				next, err = attempts.Apply(ctx, next, action)
			}
			var msg any
			if err != nil {
				status, text := actionErrorStatus(err)
				if status == http.StatusInternalServerError {
					logger.Error("applying action failed", "action", action.Type, "error", err)
				}
				if status == http.StatusNotFound {
					conn.Close(websocket.StatusPolicyViolation, text)
					return
				}
				msg = ErrorResponse{Error: text}
			} else {
				a = next
				msg = newAttemptView(attempts.Quiz(), a)
			}

			if err := wsjson.Write(ctx, conn, msg); err != nil {
				logger.Debug("websocket write failed", "error", err)
				return
			}
		}
	}
}
