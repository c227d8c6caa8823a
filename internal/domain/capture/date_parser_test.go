package capture

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 2024-03-15 was a Friday; 10:00 leaves room for earlier same-day times.
var testNow = time.Date(2024, time.March, 15, 10, 0, 0, 0, time.Local)

func TestParseSpokenDateAt_Relative(t *testing.T) {
	tests := []struct {
		input    string
		wantDate string
		wantTime string
	}{
		{"ontem às 14h30", "2024-03-14", "14:30"},
		{"anteontem às 8h", "2024-03-13", "08:00"},
		{"hoje às 9h15", "2024-03-15", "09:15"},
		{"há 3 dias às 3 da tarde", "2024-03-12", "15:00"},
		{"há 1 dia às 20h", "2024-03-14", "20:00"},
		{"há 2 semanas ao meio-dia", "2024-03-01", "12:00"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := ParseSpokenDateAt(tt.input, testNow)
			require.True(t, result.OK(), "failure: %s", result.Failure)
			assert.Equal(t, tt.wantDate, result.Date.Format("2006-01-02"))
			assert.Equal(t, tt.wantTime, result.Time)
		})
	}
}

func TestParseSpokenDateAt_Absolute(t *testing.T) {
	tests := []struct {
		input    string
		wantDate string
		wantTime string
	}{
		{"10 de março às 14h", "2024-03-10", "14:00"},
		{"10 de janeiro de 2023 às 7h05", "2023-01-10", "07:05"},
		{"5 mar às 9h", "2024-03-05", "09:00"},
		{"10/03/2024 às 14h", "2024-03-10", "14:00"},
		{"10-03-2024 às 14h", "2024-03-10", "14:00"},
		// Same minute as "now" is allowed; only strictly-later is rejected.
		{"15/03/2024 às 10h", "2024-03-15", "10:00"},
		// Two-digit years: current century, rolled back past the +20 cutoff.
		{"10/03/24 às 14h", "2024-03-10", "14:00"},
		{"10/03/98 às 14h", "1998-03-10", "14:00"},
		{"10 de março de 98 às 14h", "1998-03-10", "14:00"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := ParseSpokenDateAt(tt.input, testNow)
			require.True(t, result.OK(), "failure: %s", result.Failure)
			assert.Equal(t, tt.wantDate, result.Date.Format("2006-01-02"))
			assert.Equal(t, tt.wantTime, result.Time)
		})
	}
}

func TestParseSpokenDateAt_Weekday(t *testing.T) {
	tests := []struct {
		input    string
		wantDate string
	}{
		{"terça às 15h", "2024-03-12"},
		{"terça-feira às 15h", "2024-03-12"},
		{"segunda-feira às 15h", "2024-03-11"},
		{"sábado às 15h", "2024-03-09"},
		{"domingo às 15h", "2024-03-10"},
		// Today is Friday: naming it resolves a full week back, never today.
		{"sexta às 9h", "2024-03-08"},
		{"sexta-feira às 9h", "2024-03-08"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := ParseSpokenDateAt(tt.input, testNow)
			require.True(t, result.OK(), "failure: %s", result.Failure)
			assert.Equal(t, tt.wantDate, result.Date.Format("2006-01-02"))
		})
	}
}

// Every successful weekday parse must land on that weekday, strictly before
// today.
func TestParseSpokenDateAt_WeekdayInvariant(t *testing.T) {
	weekdays := map[string]time.Weekday{
		"domingo": time.Sunday,
		"segunda": time.Monday,
		"terça":   time.Tuesday,
		"quarta":  time.Wednesday,
		"quinta":  time.Thursday,
		"sexta":   time.Friday,
		"sábado":  time.Saturday,
	}

	for name, want := range weekdays {
		t.Run(name, func(t *testing.T) {
			result := ParseSpokenDateAt(name+" às 10h", testNow)
			require.True(t, result.OK(), "failure: %s", result.Failure)
			assert.Equal(t, want, result.Date.Weekday())

			today := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.Local)
			assert.True(t, result.Date.Before(today), "resolved date %s must be strictly before today", result.Date)
		})
	}
}

func TestParseSpokenDateAt_Failures(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  FailureReason
	}{
		{"no time phrase", "ontem", FailureTimeNotFound},
		{"no date phrase", "lanche às 14h30", FailureUnrecognizedFormat},
		{"empty", "", FailureTimeNotFound},
		{"impossible date", "31/02/2024 às 10h", FailureInvalidDate},
		{"month out of range", "10/13/2024 às 10h", FailureInvalidDate},
		{"tomorrow", "16/03/2024 às 10h", FailureFutureDate},
		{"later today", "hoje às 11h", FailureFutureDate},
		{"one minute ahead", "hoje às 10h01", FailureFutureDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ParseSpokenDateAt(tt.input, testNow)
			require.False(t, result.OK())
			assert.Equal(t, tt.want, result.Failure)
		})
	}
}

// Absolute beats relative when a phrase matches both grammars.
func TestParseSpokenDateAt_StrategyPrecedence(t *testing.T) {
	result := ParseSpokenDateAt("ontem 10/03/2024 às 9h", testNow)
	require.True(t, result.OK(), "failure: %s", result.Failure)
	assert.Equal(t, "2024-03-10", result.Date.Format("2006-01-02"))
}

func TestParseSpokenDate_UsesCurrentClock(t *testing.T) {
	result := ParseSpokenDate("ontem às 14h30")
	require.True(t, result.OK(), "failure: %s", result.Failure)

	wantDate := time.Now().AddDate(0, 0, -1).Format("2006-01-02")
	assert.Equal(t, wantDate, result.Date.Format("2006-01-02"))
	assert.Equal(t, "14:30", result.Time)
}
