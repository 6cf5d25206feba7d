package usecase

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/aalvaropc/drills/internal/domain"
	"github.com/aalvaropc/drills/internal/ports"
	"github.com/aalvaropc/drills/internal/usecase/check"
)

type RunDrills struct {
	drills ports.DrillLoader
	log    *slog.Logger
	now    func() time.Time
	newID  func() string
}

type RunOption func(*RunDrills)

func WithLogger(l *slog.Logger) RunOption {
	return func(uc *RunDrills) {
		if l != nil {
			uc.log = l
		}
	}
}

// WithClock is useful for tests.
func WithClock(now func() time.Time) RunOption {
	return func(uc *RunDrills) {
		if now != nil {
			uc.now = now
		}
	}
}

func WithIDGenerator(gen func() string) RunOption {
	return func(uc *RunDrills) {
		if gen != nil {
			uc.newID = gen
		}
	}
}

func NewRunDrills(dl ports.DrillLoader, opts ...RunOption) *RunDrills {
	uc := &RunDrills{
		drills: dl,
		log:    slog.New(slog.NewJSONHandler(io.Discard, nil)),
		now:    time.Now,
		newID:  uuid.NewString,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Execute loads the drill set and runs every section it declares, then
// evaluates its checks against the resulting report. On cancellation the
// partial report is returned together with the context error.
func (uc *RunDrills) Execute(ctx context.Context, nameOrPath string) (domain.Report, error) {
	ds, err := uc.drills.LoadDrillSet(nameOrPath)
	if err != nil {
		return domain.Report{}, err
	}

	rep := domain.Report{
		ID:       uc.newID(),
		DrillSet: ds.Name,
		Path:     ds.Path,
		Started:  uc.now().UTC(),
	}
	log := uc.log.With("drill_set", ds.Name, "report_id", rep.ID)
	log.Info("drills.run.start", "path", ds.Path)

	finish := func(err error) (domain.Report, error) {
		rep.Ended = uc.now().UTC()
		if err != nil {
			log.Warn("drills.run.aborted", "err", err)
			return rep, err
		}
		log.Info("drills.run.done",
			"checks", len(rep.Checks),
			"failed", rep.FailedChecks(),
			"duration", rep.Ended.Sub(rep.Started).String(),
		)
		return rep, nil
	}

	if err := ctx.Err(); err != nil {
		return finish(err)
	}

	if ds.Thermostat != nil {
		tr, err := runThermostat(*ds.Thermostat)
		if err != nil {
			return finish(fmt.Errorf("thermostat: %w", err))
		}
		rep.Thermostat = &tr
		log.Debug("drills.thermostat", "celsius_initial", tr.CelsiusInitial, "celsius_final", tr.CelsiusFinal)
	}

	for _, rd := range ds.Records {
		if err := ctx.Err(); err != nil {
			return finish(err)
		}
		rr, err := runRecord(rd)
		if err != nil {
			return finish(fmt.Errorf("record %q: %w", rd.Name, err))
		}
		rep.Records = append(rep.Records, rr)
		log.Debug("drills.record", "record", rd.Name, "capabilities", rr.Capabilities)
	}

	for _, s := range ds.Sentences {
		if err := ctx.Err(); err != nil {
			return finish(err)
		}
		rep.Sentences = append(rep.Sentences, domain.SentenceReport{
			Sentence: s,
			Longest:  domain.LongestWordLength(s),
			Word:     domain.LongestWord(s),
		})
	}

	if ds.Filter != nil {
		if err := ctx.Err(); err != nil {
			return finish(err)
		}
		rep.Filter = &domain.FilterReport{
			Elem:   ds.Filter.Elem,
			Input:  ds.Filter.Arrays,
			Result: domain.FilterNested(ds.Filter.Arrays, ds.Filter.Elem),
		}
	}

	if ds.Roster != nil {
		if err := ctx.Err(); err != nil {
			return finish(err)
		}
		rep.Roster = runRoster(*ds.Roster)
	}

	rep.Checks = check.Evaluate(ds.Checks, rep)
	for _, c := range rep.Checks {
		if !c.Passed {
			log.Info("drills.check.failed", "expr", c.Expr, "check", c.Name, "msg", c.Message)
		}
	}

	return finish(nil)
}

func runThermostat(d domain.ThermostatDrill) (domain.ThermostatReport, error) {
	th, err := domain.NewThermostat(d.Fahrenheit)
	if err != nil {
		return domain.ThermostatReport{}, err
	}

	out := domain.ThermostatReport{
		FahrenheitInitial: th.Fahrenheit(),
		CelsiusInitial:    th.Temperature(),
	}
	if d.SetCelsius != nil {
		if err := th.SetTemperature(*d.SetCelsius); err != nil {
			return domain.ThermostatReport{}, err
		}
		c := *d.SetCelsius
		out.SetCelsius = &c
	}
	out.FahrenheitFinal = th.Fahrenheit()
	out.CelsiusFinal = th.Temperature()
	return out, nil
}

func runRecord(d domain.RecordDrill) (domain.RecordReport, error) {
	var buf bytes.Buffer
	rec := domain.NewRecord(d.Name, d.Fields)

	for _, name := range d.Mixins {
		mixin, err := domain.LookupMixin(name, &buf)
		if err != nil {
			return domain.RecordReport{}, err
		}
		if err := mixin(rec); err != nil {
			return domain.RecordReport{}, err
		}
	}

	invoke := d.Invoke
	if len(invoke) == 0 {
		invoke = rec.Capabilities()
	}
	for _, name := range invoke {
		if err := rec.Invoke(name); err != nil {
			return domain.RecordReport{}, err
		}
	}

	return domain.RecordReport{
		Name:         rec.Name,
		Fields:       rec.Attrs,
		Capabilities: rec.Capabilities(),
		Output:       lines(buf.String()),
	}, nil
}

func runRoster(d domain.RosterDrill) *domain.RosterReport {
	required := d.Required
	if len(required) == 0 {
		required = domain.DefaultRosterNames
	}
	missing := domain.Missing(d.Users, required...)
	if missing == nil {
		missing = []string{}
	}
	online := d.Users.Online()
	if online == nil {
		online = []string{}
	}
	return &domain.RosterReport{
		Required:     slices.Clone(required),
		EveryoneHere: len(missing) == 0,
		Missing:      missing,
		Online:       online,
	}
}

func lines(s string) []string {
	s = strings.TrimRight(s, "\n")
	if s == "" {
		return []string{}
	}
	return strings.Split(s, "\n")
}
