package check

import (
	"math"
	"strings"
	"testing"

	"github.com/aalvaropc/drills/internal/domain"
)

func ptr[T any](v T) *T { return &v }

func sampleReport() domain.Report {
	return domain.Report{
		DrillSet: "basics",
		Thermostat: &domain.ThermostatReport{
			FahrenheitInitial: 76,
			CelsiusInitial:    (5.0 / 9.0) * (76 - 32),
		},
		Records: []domain.RecordReport{
			{Name: "Donald", Capabilities: []string{"glide"}, Output: []string{"Gliding!"}},
		},
		Sentences: []domain.SentenceReport{{Sentence: "a bb", Longest: 2, Word: "bb"}},
		Roster:    &domain.RosterReport{EveryoneHere: true, Missing: []string{}},
	}
}

func TestEvaluate_Passes(t *testing.T) {
	specs := map[string]domain.CheckSpec{
		"$.thermostat.celsius_initial": {Approx: ptr(24.4444), Tolerance: ptr(0.001), Gt: ptr(24.0), Lt: ptr(25.0)},
		"$.records[0].output[0]":       {Eq: ptr("Gliding!"), Contains: ptr("Glid"), Matches: ptr(`^Glid\w+!$`)},
		"$.sentences[0].longest":       {Eq: ptr("2")},
		"$.roster.everyone_here":       {Eq: ptr("true")},
		"$.records[0].capabilities":    {Exists: true, Contains: ptr(`"glide"`)},
	}

	results := Evaluate(specs, sampleReport())
	if len(results) != 10 {
		t.Fatalf("expected 10 results, got %d: %+v", len(results), results)
	}
	for _, r := range results {
		if !r.Passed {
			t.Errorf("expected %s on %s to pass: %s", r.Name, r.Expr, r.Message)
		}
	}
}

func TestEvaluate_OrderedByExpression(t *testing.T) {
	specs := map[string]domain.CheckSpec{
		"$.sentences[0].word": {Exists: true},
		"$.drill_set":         {Exists: true},
		"$.records[0].name":   {Exists: true},
	}
	results := Evaluate(specs, sampleReport())
	got := []string{results[0].Expr, results[1].Expr, results[2].Expr}
	want := []string{"$.drill_set", "$.records[0].name", "$.sentences[0].word"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected order %v, got %v", want, got)
		}
	}
}

func TestEvaluate_Failures(t *testing.T) {
	cases := []struct {
		name    string
		expr    string
		spec    domain.CheckSpec
		message string
	}{
		{"eq mismatch", "$.drill_set", domain.CheckSpec{Eq: ptr("advanced")}, `expected eq "advanced", got "basics"`},
		{"approx outside tolerance", "$.thermostat.celsius_initial", domain.CheckSpec{Approx: ptr(26.0)}, "expected ≈ 26"},
		{"missing key", "$.thermostat.kelvin", domain.CheckSpec{Exists: true}, "kelvin"},
		{"empty value", "$.roster.missing", domain.CheckSpec{Exists: true}, "got empty"},
		{"not numeric", "$.drill_set", domain.CheckSpec{Gt: ptr(1.0)}, "not numeric"},
		{"bad regex", "$.drill_set", domain.CheckSpec{Matches: ptr("(")}, "invalid regex"},
		{"lt", "$.thermostat.fahrenheit_initial", domain.CheckSpec{Lt: ptr(0.0)}, "expected < 0"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			results := Evaluate(map[string]domain.CheckSpec{c.expr: c.spec}, sampleReport())
			if len(results) != 1 {
				t.Fatalf("expected one result, got %d", len(results))
			}
			if results[0].Passed {
				t.Fatalf("expected failure, got %+v", results[0])
			}
			if !strings.Contains(results[0].Message, c.message) {
				t.Fatalf("expected message to contain %q, got %q", c.message, results[0].Message)
			}
		})
	}
}

func TestEvaluate_UnmarshalableValue(t *testing.T) {
	results := Evaluate(map[string]domain.CheckSpec{"$.x": {Exists: true}}, map[string]any{"x": math.NaN()})
	if len(results) != 1 || results[0].Passed {
		t.Fatalf("expected a failed check, got %+v", results)
	}
	if !strings.Contains(results[0].Message, "not valid JSON") {
		t.Fatalf("unexpected message %q", results[0].Message)
	}
}

func TestEvaluate_NoSpecs(t *testing.T) {
	if got := Evaluate(nil, sampleReport()); got != nil {
		t.Fatalf("expected nil, got %+v", got)
	}
}

func TestValidate(t *testing.T) {
	if err := Validate(map[string]domain.CheckSpec{"$.a.b[0]": {Exists: true}}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err := Validate(map[string]domain.CheckSpec{"$.a[": {Exists: true}})
	if !domain.IsKind(err, domain.KindInvalidConfig) {
		t.Fatalf("expected KindInvalidConfig for bad jsonpath, got %v", err)
	}

	err = Validate(map[string]domain.CheckSpec{"$.a": {Matches: ptr("[")}})
	if !domain.IsKind(err, domain.KindInvalidConfig) {
		t.Fatalf("expected KindInvalidConfig for bad regex, got %v", err)
	}
}
