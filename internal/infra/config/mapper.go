package config

import (
	"fmt"
	"math"
	"path/filepath"
	"strings"

	"github.com/aalvaropc/drills/internal/domain"
)

func MapDrillSet(path string, y YAMLDrillSet) (domain.DrillSet, error) {
	name := strings.TrimSpace(y.Name)
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	ds := domain.DrillSet{
		Name:      name,
		Path:      path,
		Sentences: y.Sentences,
		Checks:    map[string]domain.CheckSpec{},
	}

	if y.Thermostat != nil {
		if y.Thermostat.Fahrenheit == nil {
			return domain.DrillSet{}, invalidField(path, "thermostat.fahrenheit", "initial reading is required")
		}
		if !finite(*y.Thermostat.Fahrenheit) {
			return domain.DrillSet{}, invalidField(path, "thermostat.fahrenheit", "must be a finite number")
		}
		if c := y.Thermostat.SetCelsius; c != nil {
			if !finite(*c) {
				return domain.DrillSet{}, invalidField(path, "thermostat.set_celsius", "must be a finite number")
			}
			if !finite(domain.CelsiusToFahrenheit(*c)) {
				return domain.DrillSet{}, invalidField(path, "thermostat.set_celsius", "out of range")
			}
		}
		ds.Thermostat = &domain.ThermostatDrill{
			Fahrenheit: *y.Thermostat.Fahrenheit,
			SetCelsius: y.Thermostat.SetCelsius,
		}
	}

	ds.Records = make([]domain.RecordDrill, 0, len(y.Records))
	for i, r := range y.Records {
		fieldPrefix := fmt.Sprintf("records[%d]", i)
		if strings.TrimSpace(r.Name) == "" {
			return domain.DrillSet{}, invalidField(path, fieldPrefix+".name", "record name is required")
		}
		for j, m := range r.Mixins {
			if !domain.KnownMixin(m) {
				return domain.DrillSet{}, invalidField(path, fmt.Sprintf("%s.mixins[%d]", fieldPrefix, j), fmt.Sprintf("unknown mixin %q", m))
			}
		}
		for j, c := range r.Invoke {
			if !declared(r.Mixins, c) {
				return domain.DrillSet{}, invalidField(path, fmt.Sprintf("%s.invoke[%d]", fieldPrefix, j), fmt.Sprintf("capability %q is not mixed in", c))
			}
		}

		fields := stringKeys(r.Fields)
		ds.Records = append(ds.Records, domain.RecordDrill{
			Name:   r.Name,
			Fields: fields,
			Mixins: normalize(r.Mixins),
			Invoke: normalize(r.Invoke),
		})
	}

	if y.Filter != nil {
		if y.Filter.Elem == nil {
			return domain.DrillSet{}, invalidField(path, "filter.elem", "element is required")
		}
		ds.Filter = &domain.FilterDrill{Elem: *y.Filter.Elem, Arrays: y.Filter.Arrays}
	}

	if y.Roster != nil {
		users := make(domain.Roster, len(y.Roster.Users))
		for n, u := range y.Roster.Users {
			users[n] = domain.User{Age: u.Age, Online: u.Online}
		}
		ds.Roster = &domain.RosterDrill{Required: y.Roster.Required, Users: users}
	}

	for expr, c := range y.Checks {
		if strings.TrimSpace(expr) == "" {
			return domain.DrillSet{}, invalidField(path, "checks", "expression is empty")
		}
		if c.Tolerance != nil && c.Approx == nil {
			return domain.DrillSet{}, invalidField(path, "checks."+expr+".tolerance", "tolerance requires approx")
		}
		ds.Checks[expr] = domain.CheckSpec{
			Exists:    c.Exists,
			Eq:        c.Eq,
			Approx:    c.Approx,
			Tolerance: c.Tolerance,
			Contains:  c.Contains,
			Matches:   c.Matches,
			Gt:        c.Gt,
			Lt:        c.Lt,
		}
	}

	return ds, nil
}

// stringKeys copies fields, turning the map[any]any that yaml.v3 produces
// for nested mappings with non-string keys into map[string]any so the
// report stays JSON encodable. The result is never nil.
func stringKeys(fields map[string]any) map[string]any {
	out := make(map[string]any, len(fields))
	for k, v := range fields {
		out[k] = stringKeysValue(v)
	}
	return out
}

func stringKeysValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		return stringKeys(t)
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			out[fmt.Sprint(k)] = stringKeysValue(vv)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, vv := range t {
			out[i] = stringKeysValue(vv)
		}
		return out
	default:
		return v
	}
}

func declared(mixins []string, capability string) bool {
	for _, m := range mixins {
		if strings.EqualFold(strings.TrimSpace(m), strings.TrimSpace(capability)) {
			return true
		}
	}
	return false
}

func normalize(names []string) []string {
	if len(names) == 0 {
		return nil
	}
	out := make([]string, 0, len(names))
	for _, n := range names {
		out = append(out, strings.ToLower(strings.TrimSpace(n)))
	}
	return out
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func invalidField(path, field, msg string) error {
	return &domain.OpError{
		Op:   "config.map",
		Kind: domain.KindInvalidConfig,
		Path: path,
		Err:  fmt.Errorf("field %s: %s: %w", field, msg, domain.ErrInvalidConfig),
	}
}
