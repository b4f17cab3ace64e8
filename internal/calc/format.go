package calc

import (
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const (
	// ErrorText is the sentinel shown while the calculator is in the error state
	ErrorText = "Error"

	epsilon          = 1e-12
	fractionDigits   = 12
	scientificDigits = 6
	scientificAbove  = 1e12
	scientificBelow  = 1e-8
	defaultLocaleTag = "en-US"
)

// DefaultLocale is the locale used for digit grouping when none is configured
var DefaultLocale = language.MustParse(defaultLocaleTag)

// Formatter renders numbers as internal numeral text and as display text
type Formatter struct {
	printer    *message.Printer
	decimalSep string
}

// NewFormatter creates a formatter grouping digits per the given locale
func NewFormatter(locale language.Tag) *Formatter {
	printer := message.NewPrinter(locale)

	// Locales differ on the decimal separator; in-progress entry text needs it.
	sample := printer.Sprint(number.Decimal(1.5, number.MinFractionDigits(1)))
	sep := strings.TrimSuffix(strings.TrimPrefix(sample, "1"), "5")
	if sep == "" || strings.ContainsAny(sep, "0123456789") {
		sep = "."
	}

	return &Formatter{
		printer:    printer,
		decimalSep: sep,
	}
}

// normalize snaps values within epsilon of zero to exactly zero
func normalize(value float64) float64 {
	if math.Abs(value) < epsilon {
		return 0
	}
	return value
}

func finite(value float64) bool {
	return !math.IsNaN(value) && !math.IsInf(value, 0)
}

func scientific(value float64) bool {
	abs := math.Abs(value)
	return abs >= scientificAbove || (abs > 0 && abs < scientificBelow)
}

// Raw returns the shortest plain decimal text of value rounded to 12
// fractional digits. The text parses back to the rounded value.
func (f *Formatter) Raw(value float64) string {
	if !finite(value) {
		return ErrorText
	}
	return decimal.NewFromFloat(normalize(value)).Round(fractionDigits).String()
}

// Display renders value for humans: scientific notation for very large or
// very small magnitudes, otherwise the Raw text with locale grouping.
func (f *Formatter) Display(value float64) string {
	if !finite(value) {
		return ErrorText
	}
	if scientific(value) {
		return exponential(value)
	}
	return f.group(f.Raw(value))
}

// Entry renders numeral text that may still be under construction, keeping
// a trailing decimal point, typed fractional zeros and a negative zero.
func (f *Formatter) Entry(text string) string {
	if text == ErrorText {
		return ErrorText
	}

	value := parseNumeral(text)
	if scientific(value) {
		return f.Display(value)
	}
	return f.group(text)
}

// group applies locale digit grouping to the integer part of plain numeral
// text and appends the fraction unchanged.
func (f *Formatter) group(text string) string {
	negative := strings.HasPrefix(text, "-")
	intText, fracText, hasPoint := strings.Cut(strings.TrimPrefix(text, "-"), ".")

	out := f.printer.Sprint(number.Decimal(parseNumeral(intText), number.MaxFractionDigits(0)))
	if hasPoint {
		out += f.decimalSep + fracText
	}
	if negative {
		out = "-" + out
	}
	return out
}

// exponential formats value with six fractional mantissa digits and an
// unpadded exponent, e.g. 5.000000e-9
func exponential(value float64) string {
	text := strconv.FormatFloat(value, 'e', scientificDigits, 64)
	mantissa, exp, _ := strings.Cut(text, "e")
	sign, digits := exp[:1], strings.TrimLeft(exp[1:], "0")
	if digits == "" {
		digits = "0"
	}
	return mantissa + "e" + sign + digits
}

// parseNumeral parses numeral text, treating unparsable text as zero
func parseNumeral(text string) float64 {
	if text == "" || text == "-" {
		return 0
	}
	value, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0
	}
	return value
}

// validNumeral reports whether text is a non-empty partial numeral
// of the form -?\d*\.?\d*
func validNumeral(text string) bool {
	if text == "" {
		return false
	}
	rest := strings.TrimPrefix(text, "-")
	seenPoint := false
	for _, r := range rest {
		switch {
		case r >= '0' && r <= '9':
		case r == '.' && !seenPoint:
			seenPoint = true
		default:
			return false
		}
	}
	return true
}
