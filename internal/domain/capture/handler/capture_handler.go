// Package handler exposes the quick-capture parsers over HTTP.
package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/contaclara/quickcapture/internal/domain/capture"
	"github.com/contaclara/quickcapture/internal/domain/capture/service"
)

// CaptureHandler serves the parse endpoints consumed by the voice/free-text
// entry form.
type CaptureHandler struct {
	svc    *service.Service
	logger *slog.Logger
}

// NewCaptureHandler constructs a new handler.
func NewCaptureHandler(svc *service.Service, logger *slog.Logger) *CaptureHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &CaptureHandler{svc: svc, logger: logger}
}

// Register mounts the capture routes on the given group.
func (h *CaptureHandler) Register(g *echo.Group) {
	g.POST("/capture/date", h.ParseDate)
	g.POST("/capture/amount", h.ParseAmount)
	g.POST("/capture/draft", h.BuildDraft)
}

type parseRequest struct {
	Text string `json:"text"`
}

type dateResponse struct {
	Date string `json:"date"`
	Time string `json:"time"`
}

type draftRequest struct {
	Text       string `json:"text"`
	Title      string `json:"title"`
	CategoryID string `json:"category_id"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// ParseDate resolves a spoken date/time phrase.
// POST /api/v1/capture/date
func (h *CaptureHandler) ParseDate(c echo.Context) error {
	var req parseRequest
	if err := c.Bind(&req); err != nil || req.Text == "" {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "text is required"})
	}

	result := capture.ParseSpokenDate(req.Text)
	if !result.OK() {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: string(result.Failure)})
	}

	return c.JSON(http.StatusOK, dateResponse{
		Date: result.Date.Format("2006-01-02"),
		Time: result.Time,
	})
}

// ParseAmount resolves a spoken or typed amount phrase.
// POST /api/v1/capture/amount
func (h *CaptureHandler) ParseAmount(c echo.Context) error {
	var req parseRequest
	if err := c.Bind(&req); err != nil || req.Text == "" {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "text is required"})
	}

	amount, ok := capture.ParseSpokenAmount(req.Text)
	if !ok {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid amount"})
	}

	return c.JSON(http.StatusOK, map[string]string{"amount": amount.StringFixed(2)})
}

// BuildDraft parses a transcript into a full transaction draft.
// POST /api/v1/capture/draft
func (h *CaptureHandler) BuildDraft(c echo.Context) error {
	var req draftRequest
	if err := c.Bind(&req); err != nil || req.Text == "" {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "text is required"})
	}

	input := service.DraftInput{Transcript: req.Text, Title: req.Title}
	if req.CategoryID != "" {
		id, err := uuid.Parse(req.CategoryID)
		if err != nil {
			return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid category_id"})
		}
		input.CategoryID = &id
	}

	draft, err := h.svc.BuildDraft(c.Request().Context(), input)
	if err != nil {
		var parseErr *service.ParseError
		if errors.As(err, &parseErr) {
			return c.JSON(http.StatusBadRequest, errorResponse{Error: string(parseErr.Reason)})
		}
		if errors.Is(err, service.ErrInvalidAmount) {
			return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid amount"})
		}
		h.logger.Error("draft build failed", "error", err)
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}

	return c.JSON(http.StatusOK, draft)
}
