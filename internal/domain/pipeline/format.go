package pipeline

import (
	"math"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/rpggio/wirecrm/internal/domain/account"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Severity classifies how stale an account is.
type Severity string

const (
	SeverityGood Severity = "good"
	SeverityWarn Severity = "warn"
	SeverityBad  Severity = "bad"
)

// Formatter renders US dollar amounts for one locale. The zero value formats
// with the plain "$1,234" fallback.
type Formatter struct {
	printer     *message.Printer
	symbol      string
	symbolFirst bool
}

// prefixLanguages are the languages whose CLDR currency pattern puts the
// symbol before the number. Everything else gets "1.234 $".
var prefixLanguages = map[string]bool{
	"en": true, "ja": true, "ko": true, "zh": true,
	"th": true, "hi": true, "ms": true, "fil": true,
}

// NewFormatter returns a formatter for the given locale tag, e.g. "en-US".
// An unparseable tag yields the fallback formatter.
func NewFormatter(locale string) Formatter {
	tag, err := language.Parse(locale)
	if err != nil {
		return Formatter{}
	}
	p := message.NewPrinter(tag)
	base, _ := tag.Base()
	return Formatter{
		printer:     p,
		symbol:      p.Sprint(currency.Symbol(currency.USD)),
		symbolFirst: prefixLanguages[base.String()],
	}
}

// Money formats n as whole dollars using the locale's separators and USD
// symbol. NaN and infinities format as zero.
func (f Formatter) Money(n float64) string {
	if math.IsNaN(n) || math.IsInf(n, 0) {
		n = 0
	}
	rounded := math.Round(n)
	if f.printer == nil {
		return fallbackMoney(rounded)
	}
	digits := f.printer.Sprint(number.Decimal(rounded, number.MaxFractionDigits(0)))
	if f.symbolFirst {
		return f.symbol + digits
	}
	return digits + "\u00a0" + f.symbol
}

func fallbackMoney(n float64) string {
	if n > math.MaxInt64 || n < math.MinInt64 {
		return "$" + strconv.FormatFloat(n, 'f', 0, 64)
	}
	return "$" + humanize.Comma(int64(n))
}

// RiskLabel is the display label for a risk level. Unknown levels read "Cool".
func RiskLabel(risk account.Risk) string {
	switch (Record{Risk: risk}).RiskLevel() {
	case account.RiskHot:
		return "Hot"
	case account.RiskWarm:
		return "Warm"
	default:
		return "Cool"
	}
}

// StaleSeverity buckets a day count.
func StaleSeverity(days int) Severity {
	switch {
	case days >= StaleDays:
		return SeverityBad
	case days >= WarnDays:
		return SeverityWarn
	default:
		return SeverityGood
	}
}

// StaleLabel is the raw day count, e.g. "24d".
func StaleLabel(days int) string {
	return strconv.Itoa(days) + "d"
}
