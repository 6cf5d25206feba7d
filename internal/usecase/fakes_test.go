package usecase

import (
	"github.com/aalvaropc/drills/internal/domain"
	"github.com/aalvaropc/drills/internal/ports"
)

type fakeDrillLoader struct {
	ds   domain.DrillSet
	err  error
	last string
}

func (f *fakeDrillLoader) LoadDrillSet(nameOrPath string) (domain.DrillSet, error) {
	f.last = nameOrPath
	return f.ds, f.err
}

type fakeInitializer struct {
	spec  domain.WorkspaceSpec
	force bool
	err   error
}

func (f *fakeInitializer) Init(spec domain.WorkspaceSpec, force bool) error {
	f.spec = spec
	f.force = force
	return f.err
}

var (
	_ ports.DrillLoader          = (*fakeDrillLoader)(nil)
	_ ports.WorkspaceInitializer = (*fakeInitializer)(nil)
)

func ptr[T any](v T) *T { return &v }

func basicsDrillSet() domain.DrillSet {
	return domain.DrillSet{
		Name: "basics",
		Path: "drills/basics.yaml",
		Thermostat: &domain.ThermostatDrill{
			Fahrenheit: 76,
			SetCelsius: ptr(26.0),
		},
		Records: []domain.RecordDrill{
			{Name: "Donald", Fields: map[string]any{"numLegs": 2}, Mixins: []string{"glide"}},
			{Name: "Warrior", Fields: map[string]any{"type": "race-boat"}, Mixins: []string{"glide"}, Invoke: []string{"glide", "glide"}},
			{Name: "Rock"},
		},
		Sentences: []string{"The quick brown fox jumped over the lazy dog"},
		Filter: &domain.FilterDrill{
			Elem:   18,
			Arrays: [][]int{{10, 8, 3}, {14, 6, 23}, {3, 18, 6}},
		},
		Roster: &domain.RosterDrill{
			Users: domain.Roster{
				"Alan":  {Age: 27, Online: true},
				"Jeff":  {Age: 32, Online: true},
				"Sarah": {Age: 48, Online: true},
				"Ryan":  {Age: 19, Online: false},
			},
		},
		Checks: map[string]domain.CheckSpec{
			"$.thermostat.celsius_initial": {Approx: ptr(24.4444), Tolerance: ptr(0.001)},
			"$.records[0].output[0]":       {Eq: ptr("Gliding!")},
		},
	}
}
