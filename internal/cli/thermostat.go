package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/drills/internal/domain"
)

func thermostatCmd() *cobra.Command {
	var fahrenheit float64
	var setCelsius float64
	var format string

	c := &cobra.Command{
		Use:   "thermostat",
		Short: "Convert a Fahrenheit reading to Celsius and optionally set a new Celsius value",
		RunE: func(cmd *cobra.Command, _ []string) error {
			t, err := domain.NewThermostat(fahrenheit)
			if err != nil {
				return err
			}

			rep := domain.ThermostatReport{
				FahrenheitInitial: t.Fahrenheit(),
				CelsiusInitial:    t.Temperature(),
			}
			if cmd.Flags().Changed("set-celsius") {
				if err := t.SetTemperature(setCelsius); err != nil {
					return err
				}
				set := setCelsius
				rep.SetCelsius = &set
			}
			rep.FahrenheitFinal = t.Fahrenheit()
			rep.CelsiusFinal = t.Temperature()

			out := cmd.OutOrStdout()
			switch format {
			case "json":
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(rep)
			case "pretty", "":
				fmt.Fprintln(out, formatReading(rep.FahrenheitInitial, rep.CelsiusInitial))
				if rep.SetCelsius != nil {
					fmt.Fprintf(out, "set %s°C -> %s\n", formatFloat(*rep.SetCelsius), formatReading(rep.FahrenheitFinal, rep.CelsiusFinal))
				}
				return nil
			default:
				return fmt.Errorf("unsupported format %q (expected pretty|json)", format)
			}
		},
	}

	c.Flags().Float64Var(&fahrenheit, "fahrenheit", 0, "Initial reading in Fahrenheit")
	c.Flags().Float64Var(&setCelsius, "set-celsius", 0, "Celsius value to set after the first reading")
	c.Flags().StringVar(&format, "format", "pretty", "Output format: pretty|json")
	_ = c.MarkFlagRequired("fahrenheit")
	return c
}
