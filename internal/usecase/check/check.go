// Package check evaluates JSONPath expectations against the JSON form of a report.
package check

import (
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/aalvaropc/drills/internal/domain"
)

const defaultTolerance = 1e-9

// Evaluate marshals v to JSON and applies every spec to it.
// Results are ordered by expression.
func Evaluate(specs map[string]domain.CheckSpec, v any) []domain.CheckResult {
	if len(specs) == 0 {
		return nil
	}

	exprs := make([]string, 0, len(specs))
	for expr := range specs {
		exprs = append(exprs, expr)
	}
	sort.Strings(exprs)

	doc, err := toDocument(v)
	var out []domain.CheckResult
	for _, expr := range exprs {
		if err != nil {
			out = append(out, checks(expr, specs[expr], nil, fmt.Errorf("report is not valid JSON: %w", err))...)
			continue
		}
		val, getErr := jsonpath.Get(expr, doc)
		out = append(out, checks(expr, specs[expr], val, getErr)...)
	}
	return out
}

// Compile reports whether expr is a valid JSONPath expression.
func Compile(expr string) error {
	if _, err := jsonpath.New(expr); err != nil {
		return &domain.OpError{
			Op:   "check.compile",
			Kind: domain.KindInvalidConfig,
			Err:  fmt.Errorf("jsonpath %q: %v: %w", expr, err, domain.ErrInvalidConfig),
		}
	}
	return nil
}

// Validate compiles every expression and pattern in specs.
func Validate(specs map[string]domain.CheckSpec) error {
	exprs := make([]string, 0, len(specs))
	for expr := range specs {
		exprs = append(exprs, expr)
	}
	sort.Strings(exprs)

	for _, expr := range exprs {
		if err := Compile(expr); err != nil {
			return err
		}
		if m := specs[expr].Matches; m != nil {
			if _, err := regexp.Compile(*m); err != nil {
				return &domain.OpError{
					Op:   "check.compile",
					Kind: domain.KindInvalidConfig,
					Err:  fmt.Errorf("jsonpath %q: invalid regex %q: %v: %w", expr, *m, err, domain.ErrInvalidConfig),
				}
			}
		}
	}
	return nil
}

func checks(expr string, s domain.CheckSpec, val any, getErr error) []domain.CheckResult {
	var out []domain.CheckResult
	if s.Exists {
		out = append(out, checkExists(expr, val, getErr))
	}
	if s.Eq != nil {
		out = append(out, checkString("eq", expr, val, getErr, *s.Eq, func(got string) bool { return got == *s.Eq }))
	}
	if s.Contains != nil {
		out = append(out, checkString("contains", expr, val, getErr, *s.Contains, func(got string) bool { return strings.Contains(got, *s.Contains) }))
	}
	if s.Matches != nil {
		out = append(out, checkMatches(expr, val, getErr, *s.Matches))
	}
	if s.Approx != nil {
		tol := defaultTolerance
		if s.Tolerance != nil {
			tol = math.Abs(*s.Tolerance)
		}
		want := *s.Approx
		out = append(out, checkNumber("approx", expr, val, getErr, fmt.Sprintf("≈ %v ± %v", want, tol), func(f float64) bool {
			return math.Abs(f-want) <= tol
		}))
	}
	if s.Gt != nil {
		out = append(out, checkNumber("gt", expr, val, getErr, fmt.Sprintf("> %v", *s.Gt), func(f float64) bool { return f > *s.Gt }))
	}
	if s.Lt != nil {
		out = append(out, checkNumber("lt", expr, val, getErr, fmt.Sprintf("< %v", *s.Lt), func(f float64) bool { return f < *s.Lt }))
	}
	return out
}

func result(kind, expr string, passed bool, format string, args ...any) domain.CheckResult {
	return domain.CheckResult{
		Name:    "jsonpath." + kind,
		Expr:    expr,
		Passed:  passed,
		Message: fmt.Sprintf("jsonpath %q: ", expr) + fmt.Sprintf(format, args...),
	}
}

func checkExists(expr string, val any, getErr error) domain.CheckResult {
	if getErr != nil {
		return result("exists", expr, false, "%v", getErr)
	}
	if isEmptyValue(val) {
		return result("exists", expr, false, "expected value to exist, got empty")
	}
	return result("exists", expr, true, "exists")
}

func checkString(kind, expr string, val any, getErr error, want string, ok func(string) bool) domain.CheckResult {
	if getErr != nil {
		return result(kind, expr, false, "%v", getErr)
	}
	got, err := toString(val)
	if err != nil {
		return result(kind, expr, false, "%v", err)
	}
	if ok(got) {
		return result(kind, expr, true, "%s %q", kind, want)
	}
	return result(kind, expr, false, "expected %s %q, got %q", kind, want, got)
}

func checkMatches(expr string, val any, getErr error, pattern string) domain.CheckResult {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return result("matches", expr, false, "invalid regex %q: %v", pattern, err)
	}
	return checkString("matches", expr, val, getErr, pattern, re.MatchString)
}

func checkNumber(kind, expr string, val any, getErr error, want string, ok func(float64) bool) domain.CheckResult {
	if getErr != nil {
		return result(kind, expr, false, "%v", getErr)
	}
	f, err := toFloat64(val)
	if err != nil {
		return result(kind, expr, false, "%v", err)
	}
	if ok(f) {
		return result(kind, expr, true, "%v %s", f, want)
	}
	return result(kind, expr, false, "expected %s, got %v", want, f)
}

func toDocument(v any) (any, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var doc any
	if err := json.Unmarshal(b, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func toString(val any) (string, error) {
	switch v := val.(type) {
	case string:
		return v, nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	case bool:
		return strconv.FormatBool(v), nil
	case nil:
		return "", fmt.Errorf("value is null")
	default:
		b, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprint(v), nil
		}
		return string(b), nil
	}
}

func toFloat64(val any) (float64, error) {
	switch v := val.(type) {
	case float64:
		return v, nil
	case string:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0, fmt.Errorf("value %q is not numeric", v)
		}
		return f, nil
	default:
		return 0, fmt.Errorf("value of type %T is not numeric", val)
	}
}

func isEmptyValue(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		return t == ""
	case []any:
		return len(t) == 0
	case map[string]any:
		return len(t) == 0
	default:
		return false
	}
}
