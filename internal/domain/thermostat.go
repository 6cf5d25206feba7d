package domain

import "math"

// Thermostat stores a temperature in Fahrenheit and exposes it in Celsius.
type Thermostat struct {
	fahrenheit float64
}

// NewThermostat returns a thermostat holding the given Fahrenheit reading.
// Any finite value is accepted; NaN and infinities are rejected.
func NewThermostat(fahrenheit float64) (*Thermostat, error) {
	if !isFinite(fahrenheit) {
		return nil, invalidArgument("thermostat.new", "fahrenheit %v is not a finite number", fahrenheit)
	}
	return &Thermostat{fahrenheit: fahrenheit}, nil
}

// Fahrenheit returns the stored representation.
func (t *Thermostat) Fahrenheit() float64 {
	return t.fahrenheit
}

// Temperature returns the reading in Celsius.
func (t *Thermostat) Temperature() float64 {
	return FahrenheitToCelsius(t.fahrenheit)
}

// SetTemperature overwrites the stored Fahrenheit value from a Celsius reading.
// The thermostat is left untouched when celsius is not finite or has no
// finite Fahrenheit equivalent.
func (t *Thermostat) SetTemperature(celsius float64) error {
	if !isFinite(celsius) {
		return invalidArgument("thermostat.set", "celsius %v is not a finite number", celsius)
	}
	f := CelsiusToFahrenheit(celsius)
	if !isFinite(f) {
		return invalidArgument("thermostat.set", "celsius %v is out of range", celsius)
	}
	t.fahrenheit = f
	return nil
}

func FahrenheitToCelsius(f float64) float64 {
	return (5.0 / 9.0) * (f - 32)
}

// CelsiusToFahrenheit scales before offsetting so c*9 cannot overflow
// for values whose result is still representable.
func CelsiusToFahrenheit(c float64) float64 {
	return c*1.8 + 32
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
