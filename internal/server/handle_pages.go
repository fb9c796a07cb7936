package server

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"strings"

	"github.com/watchingglass/fortune/internal/fortune"
)

//go:embed templates/*.html
var templateFS embed.FS

var templateFuncs = template.FuncMap{
	"letter":  func(i int) string { return string(rune('A' + i)) },
	"inc":     func(i int) int { return i + 1 },
	"percent": func(p float64) string { return fmt.Sprintf("%.0f%%", p) },
}

type pages struct {
	home    *template.Template
	quiz    *template.Template
	results *template.Template
}

func parsePages() (*pages, error) {
	parse := func(name string) (*template.Template, error) {
		t, err := template.New(name).Funcs(templateFuncs).ParseFS(templateFS,
			"templates/layout.html", "templates/"+name)
		if err != nil {
			return nil, fmt.Errorf("parsing %s: %w", name, err)
		}
		return t, nil
	}

	var p pages
	var err error
	if p.home, err = parse("home.html"); err != nil {
		return nil, err
	}
	if p.quiz, err = parse("quiz.html"); err != nil {
		return nil, err
	}
	if p.results, err = parse("results.html"); err != nil {
		return nil, err
	}
	return &p, nil
}

func mustParsePages() *pages {
	p, err := parsePages()
	if err != nil {
		panic(err)
	}
	return p
}

// render buffers the page so a template error never leaves a half-written
// response behind.
func render(w http.ResponseWriter, logger *slog.Logger, t *template.Template, data any) {
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", data); err != nil {
		logger.Error("rendering page failed", "template", t.Name(), "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}

func handleHome(logger *slog.Logger, p *pages) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render(w, logger, p.home, nil)
	}
}

// handleStartQuiz always begins a new attempt; there is no resuming.
func handleStartQuiz(logger *slog.Logger, attempts *Attempts) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		a, err := attempts.Start(r.Context())
		if err != nil {
			logger.Error("starting attempt failed", "error", err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		http.Redirect(w, r, "/quiz/"+a.ID, http.StatusSeeOther)
	}
}

func handleQuizPage(logger *slog.Logger, p *pages, attempts *Attempts) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		a := attemptFrom(r)
		view := newAttemptView(attempts.Quiz(), a)
		if view.Complete {
			render(w, logger, p.results, view)
			return
		}
		render(w, logger, p.quiz, view)
	}
}

// handleQuizAction applies a form-posted action and redirects back to the
// attempt page.
func handleQuizAction(logger *slog.Logger, attempts *Attempts) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "invalid form", http.StatusBadRequest)
			return
		}
		action := fortune.Action{
			Type:  fortune.ActionType(r.PostForm.Get("type")),
			Value: strings.TrimSpace(r.PostForm.Get("value")),
		}

		a, err := attempts.Apply(r.Context(), attemptFrom(r), action)
		if err != nil {
			status, msg := actionErrorStatus(err)
			switch status {
			case http.StatusNotFound:
				http.NotFound(w, r)
			case http.StatusInternalServerError:
				logger.Error("applying action failed", "attempt", a.ID, "action", action.Type, "error", err)
				http.Error(w, msg, status)
			default:
				http.Error(w, msg, status)
			}
			return
		}
		http.Redirect(w, r, "/quiz/"+a.ID, http.StatusSeeOther)
	}
}

// handleQuizExit discards the attempt and goes home.
func handleQuizExit(logger *slog.Logger, attempts *Attempts) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		a := attemptFrom(r)
		if err := attempts.Discard(r.Context(), a.ID); err != nil && !errors.Is(err, ErrNotFound) {
			logger.Error("discarding attempt failed", "attempt", a.ID, "error", err)
		}
		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}
