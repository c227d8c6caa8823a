// Package service assembles parsed quick-capture fragments into a
// transaction draft ready for the creation form.
package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/contaclara/quickcapture/internal/domain/capture"
	"github.com/contaclara/quickcapture/pkg/money"
)

// ErrInvalidAmount is returned when neither amount path recognizes the
// transcript. The amount parser carries no reason string; callers show a
// generic invalid-amount message.
var ErrInvalidAmount = errors.New("invalid amount")

// ParseError wraps the stable failure reason produced by the date parser so
// transports can surface it verbatim.
type ParseError struct {
	Reason capture.FailureReason
}

func (e *ParseError) Error() string {
	return string(e.Reason)
}

// DraftInput is a raw transcript plus the fields supplied independently of
// the parsers by the transaction form.
type DraftInput struct {
	Transcript string
	Title      string
	CategoryID *uuid.UUID
}

// TransactionDraft is the typed output consumed by the transaction-creation
// flow. Date and Time stay split because the form edits them separately.
type TransactionDraft struct {
	Title      string       `json:"title"`
	CategoryID *uuid.UUID   `json:"category_id,omitempty"`
	Date       string       `json:"date"` // YYYY-MM-DD
	Time       string       `json:"time"` // HH:MM
	Amount     *money.Money `json:"amount"`
}

// Service runs the spoken-date and spoken-amount parsers over a transcript
// and builds a draft from the results.
type Service struct {
	logger *slog.Logger
}

// NewService constructs a capture service.
func NewService(logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{logger: logger}
}

// BuildDraft parses the transcript's date/time and amount and combines them
// with the supplied title and category. Date failures return a *ParseError
// carrying the parser's reason; an unrecognized amount returns
// ErrInvalidAmount.
func (s *Service) BuildDraft(ctx context.Context, in DraftInput) (*TransactionDraft, error) {
	dateResult := capture.ParseSpokenDate(in.Transcript)
	if !dateResult.OK() {
		s.logger.DebugContext(ctx, "spoken date rejected", "reason", dateResult.Failure)
		return nil, &ParseError{Reason: dateResult.Failure}
	}

	amount, ok := capture.ParseSpokenAmount(in.Transcript)
	if !ok {
		s.logger.DebugContext(ctx, "spoken amount rejected")
		return nil, ErrInvalidAmount
	}

	title := strings.TrimSpace(in.Title)
	if title == "" {
		title = cleanTitle(in.Transcript)
	}

	return &TransactionDraft{
		Title:      title,
		CategoryID: in.CategoryID,
		Date:       dateResult.Date.Format("2006-01-02"),
		Time:       dateResult.Time,
		Amount:     money.FromDecimal(amount, money.BRL),
	}, nil
}

// cleanTitle tidies the transcript for use as a fallback title.
func cleanTitle(raw string) string {
	title := strings.Join(strings.Fields(raw), " ")
	if len(title) > 0 {
		title = strings.ToUpper(title[:1]) + title[1:]
	}
	return title
}
