// Package validation gates every mutable entity before it participates
// in calculation. Checks are schema driven: a schema maps field names to
// ordered rule lists, every rule for every field runs (no short-circuit),
// and failures come back as structured results instead of errors so the
// caller sees all violations at once and decides what to block.
package validation

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/renocalc/renocalc/internal/model"
)

// Context carries cross-field and cross-entity state into rules.
type Context struct {
	// Room is the enclosing room for opening/exclusion/element rules.
	Room *model.RoomData
	// Categories lists the registered material calculator categories.
	Categories []string
}

// Rule checks one field value and returns an error message, or "" when
// the value passes.
type Rule func(value string, ctx Context) string

// Schema maps a field name to its ordered list of rules.
type Schema map[string][]Rule

// Result is the outcome of validating one entity or a whole project.
type Result struct {
	Valid  bool                `json:"valid"`
	Errors map[string][]string `json:"errors"`
}

func newResult() Result {
	return Result{Valid: true, Errors: map[string][]string{}}
}

func (r *Result) add(field, message string) {
	r.Valid = false
	r.Errors[field] = append(r.Errors[field], message)
}

// merge folds other into r, prefixing every field key.
func (r *Result) merge(prefix string, other Result) {
	for field, messages := range other.Errors {
		key := prefix + "." + field
		r.Errors[key] = append(r.Errors[key], messages...)
	}
	if !other.Valid {
		r.Valid = false
	}
}

// Fields returns the failing field names in sorted order.
func (r Result) Fields() []string {
	fields := make([]string, 0, len(r.Errors))
	for f := range r.Errors {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return fields
}

// Validate runs every rule of the schema against the given field values.
// Missing fields validate as the empty string. All rules run; the result
// collects every violation.
func Validate(schema Schema, fields map[string]string, ctx Context) Result {
	result := newResult()
	names := make([]string, 0, len(schema))
	for name := range schema {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		for _, rule := range schema[name] {
			if msg := rule(fields[name], ctx); msg != "" {
				result.add(name, msg)
			}
		}
	}
	return result
}

// maxDimension is the sane upper bound for any single room dimension.
const maxDimension = 100 // meters

// Generic rules.

func required(value string, _ Context) string {
	if value == "" {
		return "value is required"
	}
	return ""
}

func numeric(value string, _ Context) string {
	if value == "" {
		return ""
	}
	normalized := strings.ReplaceAll(strings.TrimSpace(value), ",", ".")
	v, err := strconv.ParseFloat(normalized, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Sprintf("%q is not a valid number", value)
	}
	return ""
}

func positive(value string, _ Context) string {
	if model.ParseDimension(value) <= 0 {
		return "must be greater than zero"
	}
	return ""
}

func withinMax(value string, _ Context) string {
	if model.ParseDimension(value) > maxDimension {
		return fmt.Sprintf("must be at most %d m", maxDimension)
	}
	return ""
}

func countAtLeastOne(value string, _ Context) string {
	if model.ParseCount(value) < 1 {
		return "count must be at least 1"
	}
	return ""
}
