package chart

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Mode selects a number rendering style.
type Mode string

const (
	// Currency renders US-dollar text with grouping and 2 fraction digits.
	Currency Mode = "currency"
	// Percentage treats the input as percentage points (50 means 50%) and
	// renders with 1 fraction digit and a trailing %.
	Percentage Mode = "percentage"
	// Decimal renders grouped digits with 0–2 fraction digits, trailing
	// zeros trimmed. The default mode.
	Decimal Mode = "decimal"
	// Integer renders grouped digits rounded to the nearest integer.
	Integer Mode = "integer"
)

// FormattingError reports a non-finite input, the one case FormatNumber
// refuses to render.
type FormattingError struct {
	Value float64
}

func (e *FormattingError) Error() string {
	return fmt.Sprintf("cannot format non-finite number %v", e.Value)
}

// FormatNumber renders v under the given mode; an empty mode means Decimal.
// Grouping and rounding are explicit rather than locale-driven: thousands
// separate with commas and ties round half away from zero. NaN and ±Inf fail
// with *FormattingError.
func FormatNumber(v float64, mode Mode) (string, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "", &FormattingError{Value: v}
	}
	switch mode {
	case Currency:
		s := formatGrouped(v, 2, 2)
		if strings.HasPrefix(s, "-") {
			return "-$" + s[1:], nil
		}
		return "$" + s, nil
	case Percentage:
		// Input is already in percentage points; dividing by 100 and
		// rendering as a percent cancel out.
		return formatGrouped(v, 1, 1) + "%", nil
	case Integer:
		return formatGrouped(v, 0, 0), nil
	case Decimal, "":
		return formatGrouped(v, 0, 2), nil
	default:
		return formatGrouped(v, 0, 2), nil
	}
}

// roundTo rounds half away from zero at the given number of fraction digits.
func roundTo(v float64, digits int) float64 {
	pow := math.Pow(10, float64(digits))
	if v < 0 {
		return -math.Floor(-v*pow+0.5) / pow
	}
	return math.Floor(v*pow+0.5) / pow
}

// formatGrouped renders v with comma-grouped integer digits and between
// minFrac and maxFrac fraction digits, trimming trailing zeros down to
// minFrac.
func formatGrouped(v float64, minFrac, maxFrac int) string {
	s := strconv.FormatFloat(roundTo(v, maxFrac), 'f', maxFrac, 64)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	intPart, fracPart, _ := strings.Cut(s, ".")
	for len(fracPart) > minFrac && strings.HasSuffix(fracPart, "0") {
		fracPart = fracPart[:len(fracPart)-1]
	}
	out := groupThousands(intPart)
	if len(fracPart) > 0 {
		out += "." + fracPart
	}
	if neg && out != "0" {
		out = "-" + out
	}
	return out
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
