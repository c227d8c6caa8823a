package capture

import (
	"regexp"
	"strconv"
	"strings"
)

// The three recognized time shapes, tried in order. All patterns run against
// normalized text, so period words carry no accents.
var (
	// Digit clock form: "14:30", "14h30", "14h", optionally "da tarde".
	digitClockPattern = regexp.MustCompile(`\b(\d{1,2})(?:h(\d{2})?|:(\d{2}))(?:\s+d[aeo]\s+(manha|madrugada|tarde|noite))?\b`)
	// Spoken hour plus period: "3 da tarde", "3 horas da manha".
	spokenHourPattern = regexp.MustCompile(`\b(\d{1,2})\s+(?:horas?\s+)?d[aeo]\s+(manha|madrugada|tarde|noite)\b`)
	// Spoken hour plus fractional minutes: "2 e meia da tarde", "2 e 15 da tarde".
	fractionalHourPattern = regexp.MustCompile(`\b(\d{1,2})\s+e\s+(meia|\d{2})\s+(?:horas?\s+)?d[aeo]\s+(manha|madrugada|tarde|noite)\b`)
)

// ExtractClockTime finds an hour and minute inside a phrase, applying the
// day-period adjustment when a qualifier is present. The second return is
// false when no time shape matches; that is an expected outcome, not an
// error.
func ExtractClockTime(text string) (ClockTime, bool) {
	return extractClock(Normalize(text))
}

// extractClock expects already-normalized text.
func extractClock(text string) (ClockTime, bool) {
	// Literal phrases sit outside the digit patterns.
	if strings.Contains(text, "meio-dia") || strings.Contains(text, "meio dia") {
		return ClockTime{Hour: 12}, true
	}
	if strings.Contains(text, "meia-noite") || strings.Contains(text, "meia noite") {
		return ClockTime{Hour: adjustHourByPeriod(12, PeriodMidnight)}, true
	}

	if m := digitClockPattern.FindStringSubmatch(text); m != nil {
		hour, _ := strconv.Atoi(m[1])
		minute := 0
		if m[2] != "" {
			minute, _ = strconv.Atoi(m[2])
		} else if m[3] != "" {
			minute, _ = strconv.Atoi(m[3])
		}
		if hour <= 23 && minute <= 59 {
			return ClockTime{Hour: adjustHourByPeriod(hour, periodsByName[m[4]]), Minute: minute}, true
		}
	}

	if m := spokenHourPattern.FindStringSubmatchIndex(text); m != nil && !precededByConnector(text, m[0]) {
		hour, _ := strconv.Atoi(text[m[2]:m[3]])
		if hour <= 23 {
			period := periodsByName[text[m[4]:m[5]]]
			return ClockTime{Hour: adjustHourByPeriod(hour, period)}, true
		}
	}

	if m := fractionalHourPattern.FindStringSubmatch(text); m != nil {
		hour, _ := strconv.Atoi(m[1])
		minute := 30 // "meia"
		if m[2] != "meia" {
			minute, _ = strconv.Atoi(m[2])
		}
		if hour <= 23 && minute <= 59 {
			return ClockTime{Hour: adjustHourByPeriod(hour, periodsByName[m[3]]), Minute: minute}, true
		}
	}

	return ClockTime{}, false
}

// precededByConnector reports whether the text just before position pos ends
// with the connector "e", which means the digit belongs to the fractional
// shape ("2 e 15 da tarde") rather than the plain spoken-hour shape.
func precededByConnector(text string, pos int) bool {
	before := strings.TrimRight(text[:pos], " ")
	return before == "e" || strings.HasSuffix(before, " e")
}

// adjustHourByPeriod disambiguates a spoken 12-hour value into 24-hour form.
// Afternoon and night add 12 to hours 1-11 and leave 12 unchanged; morning
// maps 12 to 0 and leaves the rest alone; midnight forces 0. Without a
// qualifier the hour is assumed already unambiguous.
func adjustHourByPeriod(hour int, period Period) int {
	switch period {
	case PeriodAfternoon, PeriodNight:
		if hour >= 1 && hour <= 11 {
			return hour + 12
		}
		return hour
	case PeriodMorning:
		if hour == 12 {
			return 0
		}
		return hour
	case PeriodMidnight:
		return 0
	default:
		return hour
	}
}
