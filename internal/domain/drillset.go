package domain

// DrillSet is a named list of drills read from a single file.
// Every section is optional.
type DrillSet struct {
	Name string
	Path string

	Thermostat *ThermostatDrill
	Records    []RecordDrill
	Sentences  []string
	Filter     *FilterDrill
	Roster     *RosterDrill

	Checks map[string]CheckSpec
}

type ThermostatDrill struct {
	Fahrenheit float64
	SetCelsius *float64
}

type RecordDrill struct {
	Name   string
	Fields map[string]any
	Mixins []string
	// Invoke lists the capabilities to run; empty means all of them.
	Invoke []string
}

type FilterDrill struct {
	Elem   int
	Arrays [][]int
}

type RosterDrill struct {
	Required []string
	Users    Roster
}

// CheckSpec holds the expectations applied to one JSONPath expression.
type CheckSpec struct {
	Exists    bool
	Eq        *string
	Approx    *float64
	Tolerance *float64
	Contains  *string
	Matches   *string
	Gt        *float64
	Lt        *float64
}

// DrillSetRef identifies a drill set file in a workspace.
type DrillSetRef struct {
	Name string
	Path string
}

// Empty reports whether the set declares no drills at all.
func (d DrillSet) Empty() bool {
	return d.Thermostat == nil &&
		len(d.Records) == 0 &&
		len(d.Sentences) == 0 &&
		d.Filter == nil &&
		d.Roster == nil
}
