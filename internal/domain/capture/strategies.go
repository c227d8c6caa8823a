package capture

import (
	"regexp"
	"strconv"
	"time"
)

// dateStrategy attempts to resolve a calendar date from normalized text.
// The boolean is false when the strategy's grammar does not match; returned
// components are not yet validated against the real calendar.
type dateStrategy func(text string, now time.Time) (DateComponents, bool)

// dateStrategies is the fixed precedence list: absolute, then relative, then
// weekday-relative. The grammars are not mutually exclusive; when a phrase
// matches more than one, the earlier strategy wins. Keep the order — it is a
// documented tie-break, not an accident.
var dateStrategies = []dateStrategy{
	parseAbsoluteDate,
	parseRelativeDate,
	parseWeekdayDate,
}

var (
	// "15 de marco", "15 marco de 2024", "3 abr 24".
	namedDatePattern = regexp.MustCompile(`\b(\d{1,2})\s+(?:de\s+)?([a-z]{3,9})(?:\s+de\s+(\d{2}|\d{4}))?\b`)
	// "15/03/2024", "15-03-24".
	numericDatePattern = regexp.MustCompile(`\b(\d{1,2})[/-](\d{1,2})[/-](\d{2}|\d{4})\b`)
	// "ha 3 dias", "ha 2 semanas" ("há" loses its accent in Normalize).
	daysAgoPattern = regexp.MustCompile(`\bha\s+(\d+)\s+(dias?|semanas?)\b`)
	// Weekday names, with or without the "-feira" suffix.
	weekdayPattern = regexp.MustCompile(`\b(domingo|segunda|terca|quarta|quinta|sexta|sabado)(?:-feira)?\b`)

	hojePattern      = regexp.MustCompile(`\bhoje\b`)
	ontemPattern     = regexp.MustCompile(`\bontem\b`)
	anteontemPattern = regexp.MustCompile(`\banteontem\b`)
)

// parseAbsoluteDate matches "DD [de] <month> [de YYYY]" and "DD/MM/YYYY"
// (slash or dash). A missing year defaults to the current year. Two-digit
// years get the current century, rolled back 100 years when the result lands
// more than 20 years in the future.
func parseAbsoluteDate(text string, now time.Time) (DateComponents, bool) {
	if m := namedDatePattern.FindStringSubmatch(text); m != nil {
		if month, ok := monthsByName[m[2]]; ok {
			day, _ := strconv.Atoi(m[1])
			year := now.Year()
			if m[3] != "" {
				year = windowYear(m[3], now)
			}
			return DateComponents{Day: day, Month: month, Year: year}, true
		}
	}

	if m := numericDatePattern.FindStringSubmatch(text); m != nil {
		day, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		return DateComponents{
			Day:   day,
			Month: time.Month(month),
			Year:  windowYear(m[3], now),
		}, true
	}

	return DateComponents{}, false
}

// windowYear expands a 2-digit year into the current century, subtracting
// 100 when the result exceeds the current year plus 20. The +20 cutoff is
// load-bearing: "24" near 2024 stays 2024 while "98" rolls back to 1998.
func windowYear(s string, now time.Time) int {
	year, _ := strconv.Atoi(s)
	if len(s) == 4 {
		return year
	}
	year += (now.Year() / 100) * 100
	if year > now.Year()+20 {
		year -= 100
	}
	return year
}

// parseRelativeDate recognizes "hoje", "ontem", "anteontem" and
// "ha N dia(s)/semana(s)". Only past offsets exist; there is no
// "daqui a N dias" form.
func parseRelativeDate(text string, now time.Time) (DateComponents, bool) {
	// "anteontem" contains "ontem", so it must be checked first.
	switch {
	case anteontemPattern.MatchString(text):
		return componentsOf(now.AddDate(0, 0, -2)), true
	case ontemPattern.MatchString(text):
		return componentsOf(now.AddDate(0, 0, -1)), true
	case hojePattern.MatchString(text):
		return componentsOf(now), true
	}

	if m := daysAgoPattern.FindStringSubmatch(text); m != nil {
		n, err := strconv.Atoi(m[1])
		if err != nil {
			return DateComponents{}, false
		}
		if m[2] == "semana" || m[2] == "semanas" {
			n *= 7
		}
		return componentsOf(now.AddDate(0, 0, -n)), true
	}

	return DateComponents{}, false
}

// parseWeekdayDate resolves a named weekday to its most recent occurrence
// strictly before today: naming today's weekday means one week ago, never
// today.
func parseWeekdayDate(text string, now time.Time) (DateComponents, bool) {
	m := weekdayPattern.FindStringSubmatch(text)
	if m == nil {
		return DateComponents{}, false
	}

	target, ok := weekdaysByName[m[1]]
	if !ok {
		return DateComponents{}, false
	}

	back := (int(now.Weekday()) - int(target) + 7) % 7
	if back == 0 {
		back = 7
	}
	return componentsOf(now.AddDate(0, 0, -back)), true
}

func componentsOf(t time.Time) DateComponents {
	return DateComponents{Day: t.Day(), Month: t.Month(), Year: t.Year()}
}
