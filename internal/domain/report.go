package domain

import "time"

// CheckResult is the output of a single check.
type CheckResult struct {
	Name    string `json:"name"`
	Expr    string `json:"expr"`
	Passed  bool   `json:"passed"`
	Message string `json:"message"`
}

type ThermostatReport struct {
	FahrenheitInitial float64  `json:"fahrenheit_initial"`
	CelsiusInitial    float64  `json:"celsius_initial"`
	SetCelsius        *float64 `json:"set_celsius,omitempty"`
	FahrenheitFinal   float64  `json:"fahrenheit_final"`
	CelsiusFinal      float64  `json:"celsius_final"`
}

type RecordReport struct {
	Name         string         `json:"name"`
	Fields       map[string]any `json:"fields,omitempty"`
	Capabilities []string       `json:"capabilities"`
	// Output holds one line per line written by the invoked capabilities.
	Output []string `json:"output"`
}

type SentenceReport struct {
	Sentence string `json:"sentence"`
	Longest  int    `json:"longest"`
	Word     string `json:"word"`
}

type FilterReport struct {
	Elem   int     `json:"elem"`
	Input  [][]int `json:"input"`
	Result [][]int `json:"result"`
}

type RosterReport struct {
	Required     []string `json:"required"`
	EveryoneHere bool     `json:"everyone_here"`
	Missing      []string `json:"missing"`
	Online       []string `json:"online"`
}

// Report is the result of running a drill set.
type Report struct {
	ID       string    `json:"id"`
	DrillSet string    `json:"drill_set"`
	Path     string    `json:"path"`
	Started  time.Time `json:"started_at"`
	Ended    time.Time `json:"ended_at"`

	Thermostat *ThermostatReport `json:"thermostat,omitempty"`
	Records    []RecordReport    `json:"records,omitempty"`
	Sentences  []SentenceReport  `json:"sentences,omitempty"`
	Filter     *FilterReport     `json:"filter,omitempty"`
	Roster     *RosterReport     `json:"roster,omitempty"`

	Checks []CheckResult `json:"checks,omitempty"`
}

// FailedChecks counts checks that did not pass.
func (r Report) FailedChecks() int {
	n := 0
	for _, c := range r.Checks {
		if !c.Passed {
			n++
		}
	}
	return n
}
