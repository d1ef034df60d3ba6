package model

import (
	"math"
	"strconv"
	"strings"
)

// ParseDimension converts a user-entered numeric string to a float64.
// Both comma and dot are accepted as the decimal separator, surrounding
// whitespace is ignored, and anything unparseable (including the empty
// string) yields zero. Negative and non-finite inputs also yield zero:
// ParseFloat accepts "nan" and "inf", and either would poison every
// area computed from it.
func ParseDimension(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	s = strings.ReplaceAll(s, ",", ".")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// ParseCount converts a user-entered count string to an int.
// Unparseable or negative input yields zero, so an element with a bad
// count simply contributes nothing rather than failing the calculation.
func ParseCount(s string) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	// Tolerate "2.0" style input from numeric keyboards.
	v := ParseDimension(s)
	n := int(v)
	if float64(n) != v {
		return 0
	}
	return n
}

// Param reads a named parameter from a SavedMaterial-style params map
// with lenient numeric parsing. A missing key yields zero.
func Param(params map[string]string, key string) float64 {
	if params == nil {
		return 0
	}
	return ParseDimension(params[key])
}

// ParamOr reads a named parameter, falling back to def when the key is
// missing or unparseable (zero).
func ParamOr(params map[string]string, key string, def float64) float64 {
	v := Param(params, key)
	if v == 0 {
		return def
	}
	return v
}
