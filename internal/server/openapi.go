package server

import (
	"encoding/json"
	"net/http"

	openapi "github.com/swaggest/openapi-go"
	"github.com/swaggest/openapi-go/openapi3"
	"github.com/swaggest/swgui/v5emb"
)

// ErrorResponse is returned for all error responses.
type ErrorResponse struct {
	Error string `json:"error"`
}

// HealthResponse documents /healthz, served by the health package.
type HealthResponse map[string]struct {
	Status string `json:"status"`
}

type attemptPath struct {
	AttemptID string `path:"attemptID" format:"uuid"`
}

type answerBody struct {
	attemptPath
	AnswerRequest
}

type colorBody struct {
	attemptPath
	ColorRequest
}

func newOpenAPISpec() *openapi3.Spec {
	r := openapi3.NewReflector()
	r.Spec.Info.Title = "Fortune Quiz API"
	r.Spec.Info.Version = "0.1.0"
	r.Spec.Info.WithDescription("Drives fortune quiz attempts: answers, the color picker and the readings.")

	getCatalog, _ := r.NewOperationContext(http.MethodGet, "/api/catalog")
	getCatalog.SetSummary("Question catalog")
	getCatalog.AddRespStructure(CatalogResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(getCatalog)

	createAttempt, _ := r.NewOperationContext(http.MethodPost, "/api/attempts")
	createAttempt.SetSummary("Start attempt")
	createAttempt.SetDescription("Starts a fresh attempt at the first question.")
	createAttempt.AddRespStructure(AttemptView{}, openapi.WithHTTPStatus(http.StatusCreated))
	_ = r.AddOperation(createAttempt)

	getAttempt, _ := r.NewOperationContext(http.MethodGet, "/api/attempts/{attemptID}")
	getAttempt.SetSummary("Get attempt")
	getAttempt.AddReqStructure(attemptPath{})
	getAttempt.AddRespStructure(AttemptView{}, openapi.WithHTTPStatus(http.StatusOK))
	getAttempt.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	_ = r.AddOperation(getAttempt)

	deleteAttempt, _ := r.NewOperationContext(http.MethodDelete, "/api/attempts/{attemptID}")
	deleteAttempt.SetSummary("Exit attempt")
	deleteAttempt.SetDescription("Discards the attempt, as when the visitor goes back home.")
	deleteAttempt.AddReqStructure(attemptPath{})
	deleteAttempt.AddRespStructure(nil, openapi.WithHTTPStatus(http.StatusNoContent))
	deleteAttempt.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	_ = r.AddOperation(deleteAttempt)

	postAnswer, _ := r.NewOperationContext(http.MethodPost, "/api/attempts/{attemptID}/answer")
	postAnswer.SetSummary("Choose answer")
	postAnswer.SetDescription("Sets the pending answer to one of the current question's options. Does not advance. " +
		"The color question is answered through the color picker and answers 409 here.")
	postAnswer.AddReqStructure(answerBody{})
	addActionResponses(postAnswer)
	_ = r.AddOperation(postAnswer)

	for _, op := range []struct {
		path, summary, description string
	}{
		{"/continue", "Continue", "Commits the pending answer and advances. No-op without a pending answer."},
		{"/restart", "Restart", "Clears all answers and returns to the first question."},
		{"/color/palette", "Toggle palette", "Shows or hides the preset palette of the color picker."},
		{"/color/submit", "Submit color", "Hands the picker's current color to the quiz as the pending answer."},
	} {
		oc, _ := r.NewOperationContext(http.MethodPost, "/api/attempts/{attemptID}"+op.path)
		oc.SetSummary(op.summary)
		oc.SetDescription(op.description)
		oc.AddReqStructure(attemptPath{})
		addActionResponses(oc)
		_ = r.AddOperation(oc)
	}

	for _, op := range []struct {
		path, summary string
	}{
		{"/color/select", "Select palette color"},
		{"/color/custom", "Set custom color"},
	} {
		oc, _ := r.NewOperationContext(http.MethodPost, "/api/attempts/{attemptID}"+op.path)
		oc.SetSummary(op.summary)
		oc.SetDescription("Previews a color in the picker. Does not answer the question.")
		oc.AddReqStructure(colorBody{})
		addActionResponses(oc)
		_ = r.AddOperation(oc)
	}

	getSocket, _ := r.NewOperationContext(http.MethodGet, "/api/attempts/{attemptID}/ws")
	getSocket.SetSummary("Attempt WebSocket")
	getSocket.SetDescription("Upgrades to a WebSocket. Send {type, value} actions, receive the attempt after each.")
	getSocket.AddReqStructure(attemptPath{})
	getSocket.AddRespStructure(nil, openapi.WithHTTPStatus(http.StatusSwitchingProtocols),
		openapi.WithContentType("text/plain"))
	_ = r.AddOperation(getSocket)

	getEvents, _ := r.NewOperationContext(http.MethodGet, "/api/attempts/{attemptID}/events")
	getEvents.SetSummary("Attempt event stream")
	getEvents.SetDescription("Server-Sent Events carrying the attempt after every change.")
	getEvents.AddReqStructure(attemptPath{})
	getEvents.AddRespStructure(nil, openapi.WithHTTPStatus(http.StatusOK),
		openapi.WithContentType("text/event-stream"))
	_ = r.AddOperation(getEvents)

	getHealthz, _ := r.NewOperationContext(http.MethodGet, "/healthz")
	getHealthz.SetSummary("Health check")
	getHealthz.SetDescription("Returns the health status of the attempt store.")
	getHealthz.AddRespStructure(HealthResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	getHealthz.AddRespStructure(HealthResponse{}, openapi.WithHTTPStatus(http.StatusServiceUnavailable))
	_ = r.AddOperation(getHealthz)

	return r.Spec
}

func addActionResponses(oc openapi.OperationContext) {
	oc.AddRespStructure(AttemptView{}, openapi.WithHTTPStatus(http.StatusOK))
	oc.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	oc.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	oc.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusConflict))
}

func handleOpenAPI() http.HandlerFunc {
	spec := newOpenAPISpec()
	data, _ := json.MarshalIndent(spec, "", "  ")

	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
	}
}

func handleSwaggerUI() http.HandlerFunc {
	return v5emb.New("Fortune Quiz API", "/openapi.json", "/docs").ServeHTTP
}
