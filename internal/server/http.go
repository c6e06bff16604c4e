// Package server exposes the expression pipeline over a small JSON API.
package server

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"

	"github.com/goccy/go-json"

	"github.com/exprlab/expression-interpreter/internal/expression"
)

type evaluateRequest struct {
	Expression string `json:"expression"`
}

type evaluateResponse struct {
	Expression string           `json:"expression"`
	Result     expression.Value `json:"result"`
	Type       string           `json:"type"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type httpHandler struct{}

func (h *httpHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/evaluate" {
		http.Error(w, "Not Found", http.StatusNotFound)
		return
	}
	if r.Method != http.MethodPost {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}
	defer r.Body.Close()

	var req evaluateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("failed to decode request body: %v", err)
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	value, err := expression.Run(req.Expression)
	if err != nil {
		resJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	resJSON(w, http.StatusOK, evaluateResponse{
		Expression: req.Expression,
		Result:     value,
		Type:       value.Type(),
	})
}

// NewHTTPHandler returns the evaluation API handler. Evaluation is
// stateless, so the handler carries nothing and is safe for concurrent
// requests.
func NewHTTPHandler() http.Handler {
	return &httpHandler{}
}

func resJSON(w http.ResponseWriter, status int, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("json.MarshalIndent: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Length", strconv.Itoa(len(b)+1))
	w.WriteHeader(status)

	if _, err = w.Write(b); err != nil {
		return fmt.Errorf("w.Write: %w", err)
	}
	if _, err = io.WriteString(w, "\n"); err != nil {
		return fmt.Errorf("io.WriteString: %w", err)
	}
	return nil
}
