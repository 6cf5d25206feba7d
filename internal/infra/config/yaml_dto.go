package config

type YAMLDrillSet struct {
	Name       string               `yaml:"name"`
	Thermostat *YAMLThermostat      `yaml:"thermostat"`
	Records    []YAMLRecord         `yaml:"records"`
	Sentences  []string             `yaml:"sentences"`
	Filter     *YAMLFilter          `yaml:"filter"`
	Roster     *YAMLRoster          `yaml:"roster"`
	Checks     map[string]YAMLCheck `yaml:"checks"`
}

type YAMLThermostat struct {
	Fahrenheit *float64 `yaml:"fahrenheit"`
	SetCelsius *float64 `yaml:"set_celsius"`
}

type YAMLRecord struct {
	Name   string         `yaml:"name"`
	Fields map[string]any `yaml:"fields"`
	Mixins []string       `yaml:"mixins"`
	Invoke []string       `yaml:"invoke"`
}

type YAMLFilter struct {
	Elem   *int    `yaml:"elem"`
	Arrays [][]int `yaml:"arrays"`
}

type YAMLRoster struct {
	Required []string            `yaml:"required"`
	Users    map[string]YAMLUser `yaml:"users"`
}

type YAMLUser struct {
	Age    int  `yaml:"age"`
	Online bool `yaml:"online"`
}

type YAMLCheck struct {
	Exists    bool     `yaml:"exists"`
	Eq        *string  `yaml:"eq"`
	Approx    *float64 `yaml:"approx"`
	Tolerance *float64 `yaml:"tolerance"`
	Contains  *string  `yaml:"contains"`
	Matches   *string  `yaml:"matches"`
	Gt        *float64 `yaml:"gt"`
	Lt        *float64 `yaml:"lt"`
}
