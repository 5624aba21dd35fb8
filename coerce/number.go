package coerce

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const maxPrecision = 20

// ParseNumber reads a cell as a number after discarding every character
// other than digits, '.' and '-'. The second result is false when nothing
// numeric remains.
func ParseNumber(raw string) (float64, bool) {
	var b strings.Builder
	for _, r := range raw {
		if (r >= '0' && r <= '9') || r == '.' || r == '-' {
			b.WriteRune(r)
		}
	}
	s := b.String()
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) {
		return 0, false
	}
	return v, true
}

// NumberKey is the sort key of a cell in a number column. Cells that are not
// numbers sort as negative infinity.
func NumberKey(raw string) float64 {
	if v, ok := ParseNumber(raw); ok {
		return v
	}
	return math.Inf(-1)
}

var numberSpec = regexp.MustCompile(`^([A-Za-z])(\d*)$`)

// FormatNumber renders raw according to spec (see the package documentation)
// using the conventions of locale. Text that is not a number is returned
// unchanged; an unknown spec or locale yields the plain numeric string.
func FormatNumber(raw, spec, locale string) string {
	v, ok := ParseNumber(raw)
	if !ok {
		return raw
	}
	plain := strconv.FormatFloat(v, 'f', -1, 64)

	m := numberSpec.FindStringSubmatch(spec)
	if m == nil {
		return plain
	}
	precision := -1
	if m[2] != "" {
		p, err := strconv.Atoi(m[2])
		if err != nil || p > maxPrecision {
			return plain
		}
		precision = p
	}

	tag, err := parseLocale(locale)
	if err != nil {
		return plain
	}
	p := message.NewPrinter(tag)

	switch unicode.ToUpper(rune(m[1][0])) {
	case 'D':
		return formatInteger(v, precision)
	case 'G':
		return formatGeneral(p, v, precision)
	case 'N':
		if precision < 0 {
			precision = 2
		}
		return fixed(p, roundHalfUp(v, precision), precision)
	case 'C':
		return formatCurrency(p, tag, v, precision)
	case 'P':
		if precision < 0 {
			precision = 2
		}
		return fixed(p, roundHalfUp(v*100, precision), precision) + "%"
	default:
		return plain
	}
}

func fixed(p *message.Printer, v float64, decimals int) string {
	return p.Sprint(number.Decimal(v,
		number.MinFractionDigits(decimals),
		number.MaxFractionDigits(decimals),
	))
}

// formatInteger rounds v and zero-pads its magnitude to width digits.
func formatInteger(v float64, width int) string {
	n := math.Round(v)
	sign := ""
	if n < 0 {
		sign = "-"
		n = -n
	}
	digits := strconv.FormatFloat(n, 'f', 0, 64)
	if width > len(digits) {
		digits = strings.Repeat("0", width-len(digits)) + digits
	}
	return sign + digits
}

func formatGeneral(p *message.Printer, v float64, significant int) string {
	if significant <= 0 {
		return p.Sprint(number.Decimal(roundHalfUp(v, 3), number.MaxFractionDigits(3)))
	}
	r := roundSignificant(v, significant)
	decimals := 0
	if r != 0 {
		exp := int(math.Floor(math.Log10(math.Abs(r))))
		decimals = significant - 1 - exp
	}
	decimals = min(max(decimals, 0), maxPrecision)
	return p.Sprint(number.Decimal(r, number.MaxFractionDigits(decimals)))
}

func formatCurrency(p *message.Printer, tag language.Tag, v float64, decimals int) string {
	cur := currencyFor(tag)
	if decimals < 0 {
		decimals, _ = currency.Standard.Rounding(cur)
	}
	r := roundHalfUp(math.Abs(v), decimals)
	sign := ""
	if v < 0 && r != 0 {
		sign = "-"
	}
	amount := fixed(p, r, decimals)
	symbol := currencySymbol(cur, tag)
	if base, _ := tag.Base(); symbolAfterAmount[base.String()] {
		return sign + amount + "\u00a0" + strings.TrimSpace(symbol)
	}
	return sign + symbol + amount
}

// symbolAfterAmount lists the languages that write the currency symbol
// after the amount, separated by a no-break space.
var symbolAfterAmount = map[string]bool{
	"cs": true,
	"da": true,
	"de": true,
	"es": true,
	"fi": true,
	"fr": true,
	"it": true,
	"nb": true,
	"pl": true,
	"ru": true,
	"sv": true,
}

func currencyFor(tag language.Tag) currency.Unit {
	if base, _ := tag.Base(); base.String() == "ja" {
		return currency.JPY
	}
	return currency.USD
}

func currencySymbol(cur currency.Unit, tag language.Tag) string {
	switch cur {
	case currency.USD:
		return "$"
	case currency.JPY:
		if base, _ := tag.Base(); base.String() == "ja" {
			return "￥"
		}
		return "¥"
	default:
		return cur.String() + " "
	}
}

// roundHalfUp rounds v to the given number of decimals, halves away from
// zero.
func roundHalfUp(v float64, decimals int) float64 {
	pow := math.Pow10(decimals)
	return math.Round(v*pow) / pow
}

func roundSignificant(v float64, digits int) float64 {
	if v == 0 {
		return 0
	}
	shift := digits - 1 - int(math.Floor(math.Log10(math.Abs(v))))
	if shift >= 0 {
		pow := math.Pow10(shift)
		return math.Round(v*pow) / pow
	}
	pow := math.Pow10(-shift)
	return math.Round(v/pow) * pow
}
