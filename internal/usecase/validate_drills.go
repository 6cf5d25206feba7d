package usecase

import (
	"context"
	"fmt"

	"github.com/aalvaropc/drills/internal/domain"
	"github.com/aalvaropc/drills/internal/ports"
	"github.com/aalvaropc/drills/internal/usecase/check"
)

type ValidateDrills struct {
	drills ports.DrillLoader
}

func NewValidateDrills(dl ports.DrillLoader) *ValidateDrills {
	return &ValidateDrills{drills: dl}
}

// Execute loads a drill set and checks it can run, without running it:
// the set declares at least one drill, every mixin resolves, the thermostat
// readings are accepted and every check expression compiles.
func (uc *ValidateDrills) Execute(ctx context.Context, nameOrPath string) error {
	ds, err := uc.drills.LoadDrillSet(nameOrPath)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	if ds.Empty() {
		return &domain.OpError{
			Op:   "usecase.validate",
			Kind: domain.KindInvalidConfig,
			Path: ds.Path,
			Err:  fmt.Errorf("drill set %q declares no drills: %w", ds.Name, domain.ErrInvalidConfig),
		}
	}

	if ds.Thermostat != nil {
		th, err := domain.NewThermostat(ds.Thermostat.Fahrenheit)
		if err != nil {
			return fmt.Errorf("thermostat: %w", err)
		}
		if ds.Thermostat.SetCelsius != nil {
			if err := th.SetTemperature(*ds.Thermostat.SetCelsius); err != nil {
				return fmt.Errorf("thermostat: %w", err)
			}
		}
	}

	for _, rd := range ds.Records {
		if err := ctx.Err(); err != nil {
			return err
		}
		for _, m := range rd.Mixins {
			if _, err := domain.LookupMixin(m, nil); err != nil {
				return fmt.Errorf("record %q: %w", rd.Name, err)
			}
		}
	}

	return check.Validate(ds.Checks)
}
