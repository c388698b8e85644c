package validation

import (
	"fmt"
	"math"
	"strconv"
)

// ValidatePositive checks that value is a finite number above zero.
func ValidatePositive(field string, value float64) []string {
	if math.IsNaN(value) || math.IsInf(value, 0) || value <= 0 {
		return []string{fmt.Sprintf("%s must be greater than 0 (got: %v)", field, value)}
	}
	return nil
}

// ValidateIntRange checks min <= value <= max.
func ValidateIntRange(field string, value, minValue, maxValue int) []string {
	if value < minValue || value > maxValue {
		return []string{fmt.Sprintf("%s must be between %d and %d (got: %d)", field, minValue, maxValue, value)}
	}
	return nil
}

func itoa(i int) string {
	return strconv.Itoa(i)
}
