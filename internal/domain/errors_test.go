package domain

import (
	"errors"
	"io/fs"
	"strings"
	"testing"
)

func TestOpErrorWrapUnwrap(t *testing.T) {
	root := errors.New("root")
	err := &OpError{
		Op:   "config.load",
		Kind: KindInvalidConfig,
		Path: "drills/basics.yaml",
		Err:  root,
	}

	if !errors.Is(err, root) {
		t.Fatalf("expected errors.Is to match cause")
	}

	var got *OpError
	if !errors.As(err, &got) {
		t.Fatalf("expected errors.As to match OpError")
	}
	if got.Kind != KindInvalidConfig {
		t.Fatalf("expected kind %s", KindInvalidConfig)
	}
	if !strings.Contains(err.Error(), "path=drills/basics.yaml") {
		t.Fatalf("expected path in message, got %q", err.Error())
	}
}

func TestIsKind(t *testing.T) {
	err := invalidArgument("thermostat.new", "fahrenheit %v is not finite", "NaN")

	if !IsKind(err, KindInvalidArgument) {
		t.Fatalf("expected IsKind to match invalid argument")
	}
	if IsKind(err, KindNotFound) {
		t.Fatalf("expected IsKind to reject other kinds")
	}
	if !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument in chain, got %v", err)
	}
	if IsKind(errors.New("plain"), KindInvalidArgument) {
		t.Fatalf("plain errors carry no kind")
	}
}

func TestOpErrorNil(t *testing.T) {
	var e *OpError
	if e.Error() != "<nil>" {
		t.Fatalf("unexpected nil message %q", e.Error())
	}
	if e.Unwrap() != nil {
		t.Fatalf("expected nil unwrap")
	}
}

func TestOpErrorMatchesKindSentinel(t *testing.T) {
	err := &OpError{
		Op:   "config.load_drillset",
		Kind: KindNotFound,
		Path: "drills/missing.yaml",
		Err:  fs.ErrNotExist,
	}

	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected not_found OpError to match ErrNotFound")
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected cause to stay reachable")
	}
	if errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected other sentinels not to match")
	}

	var nilErr *OpError
	if nilErr.Is(ErrNotFound) {
		t.Fatalf("nil OpError matches nothing")
	}
}
