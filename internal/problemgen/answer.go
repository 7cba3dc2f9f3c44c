package problemgen

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// answerTolerance absorbs float noise in model answers such as 0.30000000000000004.
const answerTolerance = 1e-9

// ErrNotANumber is returned by ParseNumber for input that is not a number.
var ErrNotANumber = errors.New("not a number")

// CheckAnswer compares the learner's input against p.Answer.
//
// Normalization rules:
//   - Whitespace is trimmed
//   - "," is accepted as the decimal separator ("2,5" matches 2.5)
//   - With both "." and "," present, "." groups thousands ("1.250,5")
//   - Fractions are accepted ("1/2" matches 0.5)
//
// Unparseable input returns ErrNotANumber so the UI can ask again instead
// of counting a wrong answer.
func CheckAnswer(input string, p *MathProblem) (bool, error) {
	got, err := ParseNumber(input)
	if err != nil {
		return false, err
	}
	return math.Abs(got-p.Answer) <= answerTolerance*math.Max(1, math.Abs(p.Answer)), nil
}

// ParseNumber parses a learner-typed number using the rules of CheckAnswer.
func ParseNumber(s string) (float64, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), " ", "")
	if s == "" {
		return 0, ErrNotANumber
	}

	if num, den, ok := strings.Cut(s, "/"); ok {
		n, err := parseDecimal(num)
		if err != nil {
			return 0, err
		}
		d, err := parseDecimal(den)
		if err != nil {
			return 0, err
		}
		if d == 0 {
			return 0, fmt.Errorf("%w: zero denominator", ErrNotANumber)
		}
		return n / d, nil
	}
	return parseDecimal(s)
}

func parseDecimal(s string) (float64, error) {
	if strings.Contains(s, ".") && strings.Contains(s, ",") {
		s = strings.ReplaceAll(s, ".", "")
	}
	s = strings.Replace(s, ",", ".", 1)

	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, fmt.Errorf("%w: %q", ErrNotANumber, s)
	}
	return f, nil
}

// FormatAnswer renders n the way Vietnamese learners write it: no trailing
// zeros and "," as the decimal separator.
func FormatAnswer(n float64) string {
	return strings.Replace(strconv.FormatFloat(n, 'f', -1, 64), ".", ",", 1)
}
