// Package capture parses spoken-style Brazilian-Portuguese phrases from the
// Quick Capture flow into structured transaction fields: a date plus time of
// day ("ontem às 14h30", "há 3 dias de manhã") or a decimal monetary amount
// ("trinta e cinco reais", "r$ 1.500,00").
//
// All parsing functions are pure and safe for concurrent use. Relative dates
// are resolved against the caller's local clock at the instant of the call,
// so the same phrase can legitimately parse differently across a midnight
// boundary.
//
// Known limitations:
//
//   - Only Brazilian Portuguese is supported.
//   - The word grammar does not decompose "reais" and "centavos" into
//     integer and fractional parts; "trinta e cinco reais e vinte centavos"
//     folds to 55, not 35.20. Currency words are stripped textually only.
//   - Future dates are rejected: a captured transaction cannot be recorded
//     for a moment that has not happened yet.
//   - Durations and recurring-schedule expressions are not recognized.
package capture

import (
	"fmt"
	"time"
)

// Period qualifies a spoken 12-hour value into 24-hour form.
type Period int

const (
	// PeriodNone means no qualifier was present; the hour is used as-is.
	PeriodNone Period = iota
	// PeriodMorning covers "manhã" and "madrugada".
	PeriodMorning
	// PeriodAfternoon covers "tarde".
	PeriodAfternoon
	// PeriodNight covers "noite".
	PeriodNight
	// PeriodMidnight is the literal "meia-noite"; it forces hour zero.
	PeriodMidnight
)

// ClockTime is a valid 24-hour wall-clock time.
type ClockTime struct {
	Hour   int // 0-23
	Minute int // 0-59
}

// String renders the time as zero-padded "HH:MM".
func (t ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// DateComponents is a candidate calendar date produced by a date strategy,
// before structural validation. Month follows time.Month (January = 1).
type DateComponents struct {
	Day   int
	Month time.Month
	Year  int
}

// FailureReason identifies why a spoken date could not be parsed. The values
// are stable identifiers suitable for localized display by the caller.
type FailureReason string

const (
	// FailureUnrecognizedFormat means no date strategy matched the phrase.
	FailureUnrecognizedFormat FailureReason = "unrecognized format"
	// FailureInvalidDate means the phrase named a structurally impossible
	// calendar date, e.g. day 31 of a 30-day month.
	FailureInvalidDate FailureReason = "invalid date"
	// FailureTimeNotFound means no time phrase was found; a date without a
	// time is a parse failure because captured transactions always carry a
	// timestamp.
	FailureTimeNotFound FailureReason = "time not recognized"
	// FailureFutureDate means the parsed moment lies after the current one.
	FailureFutureDate FailureReason = "date/time cannot be in the future"
)

// DateResult is the outcome of ParseSpokenDate. On success Date holds the
// calendar day (midnight, local time) and Time the "HH:MM" rendering; the two
// are consumed separately by the transaction form. On failure only Failure is
// set.
type DateResult struct {
	Date    time.Time
	Time    string
	Failure FailureReason
}

// OK reports whether the parse succeeded.
func (r DateResult) OK() bool {
	return r.Failure == ""
}
