package countdown

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
)

var digitsPattern = regexp.MustCompile(`^[0-9]+$`)

// Rule names a single validation rule applied by Start.
type Rule string

const (
	RuleRequired Rule = "required"
	RuleNumber   Rule = "number"
	RuleWhole    Rule = "whole"
	RulePositive Rule = "positive"
	RuleMaximum  Rule = "maximum"
)

// ValidationError describes the first rule a start attempt failed.
type ValidationError struct {
	Rule    Rule
	Message string
}

func (err *ValidationError) Error() string {
	return err.Message
}

// IsDigits reports whether value is a non-empty run of ASCII digits.
func IsDigits(value string) bool {
	return digitsPattern.MatchString(value)
}

// AcceptsInput reports whether value may be stored as input text.
func AcceptsInput(value string) bool {
	return value == "" || IsDigits(value)
}

// Validate parses raw as a countdown length in seconds. Rules are checked in
// order: required, number, whole number, greater than zero, at most maxSeconds.
func Validate(raw string, maxSeconds int) (int, error) {
	if raw == "" {
		return 0, &ValidationError{Rule: RuleRequired, Message: "Time is required"}
	}

	value, err := strconv.ParseFloat(raw, 64)
	if !isNumber(value, err) {
		return 0, &ValidationError{Rule: RuleNumber, Message: "Time must be a number"}
	}
	if !math.IsInf(value, 0) && value != math.Trunc(value) {
		return 0, &ValidationError{Rule: RuleWhole, Message: "Time must be a whole number"}
	}
	if value <= 0 {
		return 0, &ValidationError{Rule: RulePositive, Message: "Time must be greater than 0"}
	}
	if value > float64(maxSeconds) {
		return 0, &ValidationError{Rule: RuleMaximum, Message: maximumMessage(maxSeconds)}
	}
	return int(value), nil
}

func maximumMessage(maxSeconds int) string {
	return fmt.Sprintf("Maximum time is %s (%d seconds)", FormatDisplay(maxSeconds), maxSeconds)
}

// isNumber accepts finite values and values too large to represent, but not
// NaN or spelled-out infinities.
func isNumber(value float64, err error) bool {
	if err != nil {
		return errors.Is(err, strconv.ErrRange)
	}
	return !math.IsNaN(value) && !math.IsInf(value, 0)
}
