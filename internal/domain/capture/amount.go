package capture

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// Amounts outside [0.01, 1 000 000.00] are rejected, never clamped.
var (
	amountMin = decimal.New(1, -2)
	amountMax = decimal.NewFromInt(1_000_000)
)

var currencyWordPattern = regexp.MustCompile(`\b(?:reais|centavos)\b`)

// ParseSpokenAmount converts a spoken or typed quantity phrase into a decimal
// amount. It first tries a direct numeric parse ("r$ 1.500,00", "35,90") and
// falls back to the spoken word grammar ("trinta e cinco reais", "dois mil e
// quinhentos"). The second return is false when neither path recognizes the
// phrase or the value falls outside the accepted bound.
func ParseSpokenAmount(text string) (decimal.Decimal, bool) {
	normalized := Normalize(text)

	if amount, ok := parseNumericAmount(normalized); ok {
		return amount, true
	}
	return parseWordAmount(normalized)
}

// parseNumericAmount strips currency markers and converts the pt-BR decimal
// comma before attempting a direct parse. Thousands dots are only dropped
// when a comma is present, so a typed "14.50" still reads as fourteen-fifty.
func parseNumericAmount(text string) (decimal.Decimal, bool) {
	s := strings.ReplaceAll(text, "r$", "")
	s = currencyWordPattern.ReplaceAllString(s, "")
	s = strings.TrimSpace(s)

	if strings.Contains(s, ",") {
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	}

	amount, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}
	return amount, withinBound(amount)
}

// parseWordAmount folds whitespace tokens left to right through a running
// total using spoken-number composition: units, teens and tens add into the
// current hundred-group; a hundreds word sets the group; "mil" multiplies the
// group (an empty group counts as 1) into the total and resets it. Tokens
// outside the lexicon are skipped, which is how "reais" and connector words
// fall away.
func parseWordAmount(text string) (decimal.Decimal, bool) {
	total := 0
	group := 0
	matched := false

	for _, token := range strings.Fields(text) {
		if token == scaleWordThousand {
			if group == 0 {
				group = 1
			}
			total += group * 1000
			group = 0
			matched = true
			continue
		}

		value, ok := numberWords[token]
		if !ok {
			continue
		}
		matched = true
		if value >= 100 {
			group = value
		} else {
			group += value
		}
	}

	if !matched {
		return decimal.Zero, false
	}

	amount := decimal.NewFromInt(int64(total + group))
	return amount, withinBound(amount)
}

func withinBound(amount decimal.Decimal) bool {
	return amount.GreaterThanOrEqual(amountMin) && amount.LessThanOrEqual(amountMax)
}
