package capture

import "time"

// Lexicons are fixed at build time and never mutated, so lookups are safe
// from any goroutine. All keys are in normalized form (lowercase, no
// diacritics); callers must Normalize input before lookup.

// monthsByName maps Portuguese month names and their 3-letter abbreviations
// to time.Month.
var monthsByName = map[string]time.Month{
	"janeiro":   time.January,
	"jan":       time.January,
	"fevereiro": time.February,
	"fev":       time.February,
	"marco":     time.March,
	"mar":       time.March,
	"abril":     time.April,
	"abr":       time.April,
	"maio":      time.May,
	"mai":       time.May,
	"junho":     time.June,
	"jun":       time.June,
	"julho":     time.July,
	"jul":       time.July,
	"agosto":    time.August,
	"ago":       time.August,
	"setembro":  time.September,
	"set":       time.September,
	"outubro":   time.October,
	"out":       time.October,
	"novembro":  time.November,
	"nov":       time.November,
	"dezembro":  time.December,
	"dez":       time.December,
}

// weekdaysByName maps weekday names to time.Weekday. The "-feira" suffixed
// forms are handled by the weekday strategy's pattern, so only the bare names
// appear here. "terça" and "sábado" arrive without accents after Normalize.
var weekdaysByName = map[string]time.Weekday{
	"domingo": time.Sunday,
	"segunda": time.Monday,
	"terca":   time.Tuesday,
	"quarta":  time.Wednesday,
	"quinta":  time.Thursday,
	"sexta":   time.Friday,
	"sabado":  time.Saturday,
}

// periodsByName maps day-period fragments to their Period tag. "madrugada"
// folds into morning: both leave an already-small hour alone.
var periodsByName = map[string]Period{
	"manha":     PeriodMorning,
	"madrugada": PeriodMorning,
	"tarde":     PeriodAfternoon,
	"noite":     PeriodNight,
}

// numberWords maps spoken Portuguese number words to their magnitude: units,
// teens, tens and hundreds. The scale word "mil" is handled separately by the
// word-grammar accumulator because it multiplies instead of adding.
var numberWords = map[string]int{
	"zero":   0,
	"um":     1,
	"uma":    1,
	"dois":   2,
	"duas":   2,
	"tres":   3,
	"quatro": 4,
	"cinco":  5,
	"seis":   6,
	"sete":   7,
	"oito":   8,
	"nove":   9,

	"dez":       10,
	"onze":      11,
	"doze":      12,
	"treze":     13,
	"catorze":   14,
	"quatorze":  14,
	"quinze":    15,
	"dezesseis": 16,
	"dezessete": 17,
	"dezoito":   18,
	"dezenove":  19,

	"vinte":     20,
	"trinta":    30,
	"quarenta":  40,
	"cinquenta": 50,
	"sessenta":  60,
	"setenta":   70,
	"oitenta":   80,
	"noventa":   90,

	"cem":          100,
	"cento":        100,
	"duzentos":     200,
	"trezentos":    300,
	"quatrocentos": 400,
	"quinhentos":   500,
	"seiscentos":   600,
	"setecentos":   700,
	"oitocentos":   800,
	"novecentos":   900,
}

// scaleWordThousand multiplies the accumulated hundred-group by 1000.
const scaleWordThousand = "mil"
