package config

import (
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aalvaropc/drills/internal/domain"
)

func TestLoadDrillSet(t *testing.T) {
	path := filepath.Join("testdata", "basics.yaml")
	ds, err := LoadDrillSet(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ds.Name != "basics" {
		t.Fatalf("expected name basics, got %q", ds.Name)
	}
	if ds.Thermostat == nil || ds.Thermostat.Fahrenheit != 76 {
		t.Fatalf("expected thermostat at 76F, got %+v", ds.Thermostat)
	}
	if ds.Thermostat.SetCelsius == nil || *ds.Thermostat.SetCelsius != 26 {
		t.Fatalf("expected set_celsius 26")
	}
	if len(ds.Records) != 2 {
		t.Fatalf("expected two records, got %d", len(ds.Records))
	}
	if ds.Records[1].Mixins[0] != "glide" {
		t.Fatalf("expected mixin names to be normalized, got %q", ds.Records[1].Mixins[0])
	}
	if ds.Filter == nil || ds.Filter.Elem != 3 || len(ds.Filter.Arrays) != 4 {
		t.Fatalf("unexpected filter %+v", ds.Filter)
	}
	if ds.Roster == nil || !ds.Roster.Users["Alan"].Online {
		t.Fatalf("expected roster to map")
	}
	if len(ds.Checks) != 2 {
		t.Fatalf("expected two checks, got %d", len(ds.Checks))
	}
}

func TestLoadDrillSetUnknownMixin(t *testing.T) {
	path := filepath.Join("testdata", "unknown_mixin.yaml")
	_, err := LoadDrillSet(path)
	if err == nil {
		t.Fatalf("expected error")
	}
	if !strings.Contains(err.Error(), "records[0].mixins[1]") {
		t.Fatalf("expected field in error, got %v", err)
	}
	if !strings.Contains(err.Error(), path) {
		t.Fatalf("expected path in error, got %v", err)
	}
	if !domain.IsKind(err, domain.KindInvalidConfig) {
		t.Fatalf("expected KindInvalidConfig, got %v", err)
	}
}

func TestLoadDrillSetMalformed(t *testing.T) {
	_, err := LoadDrillSet(filepath.Join("testdata", "malformed.yaml"))
	if !domain.IsKind(err, domain.KindInvalidConfig) {
		t.Fatalf("expected KindInvalidConfig, got %v", err)
	}
}

func TestLoadDrillSetMissingFile(t *testing.T) {
	_, err := LoadDrillSet(filepath.Join("testdata", "nope.yaml"))
	if !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected KindNotFound, got %v", err)
	}
}

func TestParseDrillSetNestedFieldKeysAreStrings(t *testing.T) {
	src := []byte(`
name: nested
records:
  - name: Donald
    fields:
      meta:
        1: a
        list:
          - {2: b}
`)
	ds, err := ParseDrillSet("drills/nested.yaml", src)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	b, err := json.Marshal(ds.Records[0].Fields)
	if err != nil {
		t.Fatalf("fields must be JSON encodable: %v", err)
	}
	want := `{"meta":{"1":"a","list":[{"2":"b"}]}}`
	if string(b) != want {
		t.Fatalf("expected %s, got %s", want, b)
	}
}

func TestParseDrillSetLargeSetCelsius(t *testing.T) {
	ds, err := ParseDrillSet("drills/hot.yaml", []byte("thermostat: {fahrenheit: 76, set_celsius: 5e307}\n"))
	if err != nil {
		t.Fatalf("representable value must be accepted: %v", err)
	}
	if *ds.Thermostat.SetCelsius != 5e307 {
		t.Fatalf("expected 5e307, got %v", *ds.Thermostat.SetCelsius)
	}

	_, err = ParseDrillSet("drills/hot.yaml", []byte("thermostat: {fahrenheit: 76, set_celsius: 1e308}\n"))
	if !domain.IsKind(err, domain.KindInvalidConfig) {
		t.Fatalf("expected invalid config, got %v", err)
	}
}
