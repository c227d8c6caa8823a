package capture

import "time"

// ParseSpokenDate resolves a free-text phrase into a calendar date plus an
// "HH:MM" time string, evaluated against the local clock at the moment of the
// call. A phrase must carry a recognizable time; the date strategies are only
// consulted once one is found.
func ParseSpokenDate(text string) DateResult {
	return ParseSpokenDateAt(text, time.Now())
}

// ParseSpokenDateAt is ParseSpokenDate with an explicit "now", used to pin
// relative dates and the non-future check in tests.
func ParseSpokenDateAt(text string, now time.Time) DateResult {
	normalized := Normalize(text)

	clock, ok := extractClock(normalized)
	if !ok {
		return DateResult{Failure: FailureTimeNotFound}
	}

	for _, strategy := range dateStrategies {
		comps, ok := strategy(normalized, now)
		if !ok {
			continue
		}

		candidate := time.Date(comps.Year, comps.Month, comps.Day, clock.Hour, clock.Minute, 0, 0, now.Location())

		// time.Date normalizes out-of-range components (Feb 30 becomes
		// Mar 1/2), so a changed day/month/year means the phrase named an
		// impossible date.
		if candidate.Day() != comps.Day || candidate.Month() != comps.Month || candidate.Year() != comps.Year {
			return DateResult{Failure: FailureInvalidDate}
		}

		// Compared at minute granularity on both sides: a transaction
		// cannot be recorded for a moment that hasn't happened yet.
		if candidate.Truncate(time.Minute).After(now.Truncate(time.Minute)) {
			return DateResult{Failure: FailureFutureDate}
		}

		date := time.Date(comps.Year, comps.Month, comps.Day, 0, 0, 0, 0, now.Location())
		return DateResult{Date: date, Time: clock.String()}
	}

	return DateResult{Failure: FailureUnrecognizedFormat}
}
