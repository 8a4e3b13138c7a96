package main

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"time"

	readability "github.com/baditaflorin/go_readability"
	"github.com/baditaflorin/go_readability/internal/ports"
	"github.com/baditaflorin/l"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/valyala/fasthttp"
)

// AnalyzeRequest is the body of POST /readability.
type AnalyzeRequest struct {
	Text     string   `json:"text" validate:"required"`
	Audience string   `json:"audience,omitempty" validate:"omitempty,oneof=general professional academic"`
	Keywords []string `json:"keywords,omitempty" validate:"max=50,dive,max=200"`
}

// HTMLRequest is the body of POST /readability/html.
type HTMLRequest struct {
	HTML     string   `json:"html" validate:"required"`
	Audience string   `json:"audience,omitempty" validate:"omitempty,oneof=general professional academic"`
	Keywords []string `json:"keywords,omitempty" validate:"max=50,dive,max=200"`
}

// AudienceResponse describes one threshold profile.
type AudienceResponse struct {
	Name       readability.Audience   `json:"name"`
	Thresholds readability.Thresholds `json:"thresholds"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

type server struct {
	analyzer  *readability.Analyzer
	extractor ports.TextExtractor
	logger    l.Logger
	validate  *validator.Validate
	timeout   time.Duration
}

func newServer(analyzer *readability.Analyzer, extractor ports.TextExtractor, logger l.Logger, timeout time.Duration) *server {
	return &server{
		analyzer:  analyzer,
		extractor: extractor,
		logger:    logger,
		validate:  validator.New(),
		timeout:   timeout,
	}
}

// handle is the main fasthttp request handler
func (s *server) handle(ctx *fasthttp.RequestCtx) {
	startTime := time.Now()
	requestID := uuid.NewString()

	ctx.Response.Header.Set("Content-Type", "application/json")
	ctx.Response.Header.Set("X-Request-Id", requestID)

	switch string(ctx.Path()) {
	case "/health":
		s.handleHealthCheck(ctx)
	case "/audiences":
		s.handleAudiences(ctx)
	case "/readability":
		s.handleReadability(ctx)
	case "/readability/html":
		s.handleHTML(ctx)
	default:
		ctx.SetStatusCode(fasthttp.StatusNotFound)
		s.writeJSONError(ctx, "Not found")
	}

	s.logger.Info("Request processed",
		"request_id", requestID,
		"method", string(ctx.Method()),
		"path", string(ctx.Path()),
		"status", ctx.Response.StatusCode(),
		"ip", ctx.RemoteIP().String(),
		"duration", time.Since(startTime),
	)
}

func (s *server) handleHealthCheck(ctx *fasthttp.RequestCtx) {
	ctx.SetStatusCode(fasthttp.StatusOK)
	s.writeJSONResponse(ctx, map[string]interface{}{
		"status": "ok",
		"time":   time.Now().Format(time.RFC3339),
	})
}

func (s *server) handleAudiences(ctx *fasthttp.RequestCtx) {
	if !ctx.IsGet() {
		ctx.SetStatusCode(fasthttp.StatusMethodNotAllowed)
		s.writeJSONError(ctx, "Method not allowed")
		return
	}

	audiences := readability.Audiences()
	response := make([]AudienceResponse, 0, len(audiences))
	for _, a := range audiences {
		response = append(response, AudienceResponse{Name: a, Thresholds: readability.GetThresholds(a)})
	}
	ctx.SetStatusCode(fasthttp.StatusOK)
	s.writeJSONResponse(ctx, response)
}

func (s *server) handleReadability(ctx *fasthttp.RequestCtx) {
	var req AnalyzeRequest
	if !s.decode(ctx, &req) {
		return
	}

	c, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	report := s.analyzer.Analyze(c, req.Text, readability.Audience(req.Audience), req.Keywords...)
	ctx.SetStatusCode(fasthttp.StatusOK)
	s.writeJSONResponse(ctx, report)
}

func (s *server) handleHTML(ctx *fasthttp.RequestCtx) {
	var req HTMLRequest
	if !s.decode(ctx, &req) {
		return
	}

	text, err := s.extractor.Extract(strings.NewReader(req.HTML))
	if err != nil {
		ctx.SetStatusCode(fasthttp.StatusBadRequest)
		s.writeJSONError(ctx, "Invalid HTML: "+err.Error())
		return
	}

	c, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	report := s.analyzer.Analyze(c, text, readability.Audience(req.Audience), req.Keywords...)
	ctx.SetStatusCode(fasthttp.StatusOK)
	s.writeJSONResponse(ctx, report)
}

// decode enforces POST, parses the JSON body into v and validates it. It
// writes the error response itself and reports whether handling can go on.
func (s *server) decode(ctx *fasthttp.RequestCtx, v interface{}) bool {
	if !ctx.IsPost() {
		ctx.SetStatusCode(fasthttp.StatusMethodNotAllowed)
		s.writeJSONError(ctx, "Method not allowed")
		return false
	}

	dec := json.NewDecoder(bytes.NewReader(ctx.PostBody()))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		ctx.SetStatusCode(fasthttp.StatusBadRequest)
		s.writeJSONError(ctx, "Invalid request: "+err.Error())
		return false
	}
	if err := s.validate.Struct(v); err != nil {
		ctx.SetStatusCode(fasthttp.StatusBadRequest)
		s.writeJSONError(ctx, "Invalid request: "+err.Error())
		return false
	}
	return true
}

// writeJSONResponse writes a JSON response to the context
func (s *server) writeJSONResponse(ctx *fasthttp.RequestCtx, data interface{}) {
	response, err := json.Marshal(data)
	if err != nil {
		ctx.SetStatusCode(fasthttp.StatusInternalServerError)
		s.logger.Error("Error marshaling JSON response", "error", err)
		s.writeJSONError(ctx, "Internal server error")
		return
	}
	ctx.SetBody(response)
}

// writeJSONError writes a JSON error response to the context
func (s *server) writeJSONError(ctx *fasthttp.RequestCtx, message string) {
	response, err := json.Marshal(ErrorResponse{Error: message})
	if err != nil {
		s.logger.Error("Error marshaling JSON error response", "error", err)
		ctx.SetBodyString(`{"error":"Internal server error"}`)
		return
	}
	ctx.SetBody(response)
}
