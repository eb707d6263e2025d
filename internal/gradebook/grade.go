package gradebook

import (
	"errors"
	"math"
	"strconv"
	"strings"

	apperrors "github.com/agbru/gradebook/internal/errors"
)

// Accepted grade bounds, inclusive.
const (
	MinGrade = 0.0
	MaxGrade = 100.0
)

// ParseGrade converts raw text into a validated grade.
//
// It returns an apperrors.InvalidFormatError when raw is not a number and an
// apperrors.OutOfRangeError when the number falls outside [MinGrade, MaxGrade].
// NaN parses but fails the range check, as do the infinities. Only decimal
// notation is a grade: hexadecimal floats such as "0x1p4" are rejected.
func ParseGrade(raw string) (float64, error) {
	trimmed := strings.TrimSpace(raw)
	if isHexFloat(trimmed) {
		return 0, apperrors.InvalidFormatError{
			Input: raw,
			Cause: &strconv.NumError{Func: "ParseFloat", Num: trimmed, Err: strconv.ErrSyntax},
		}
	}
	value, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		// Overflow still yields ±Inf: a number, just not a grade.
		if errors.Is(err, strconv.ErrRange) {
			return 0, apperrors.OutOfRangeError{Value: value, Min: MinGrade, Max: MaxGrade}
		}
		return 0, apperrors.InvalidFormatError{Input: raw, Cause: err}
	}
	if err := ValidateGrade(value); err != nil {
		return 0, err
	}
	return value, nil
}

func isHexFloat(s string) bool {
	s = strings.TrimLeft(s, "+-")
	return len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X')
}

// ValidateGrade checks an already numeric grade against the accepted bounds.
func ValidateGrade(value float64) error {
	if math.IsNaN(value) || value < MinGrade || value > MaxGrade {
		return apperrors.OutOfRangeError{Value: value, Min: MinGrade, Max: MaxGrade}
	}
	return nil
}
