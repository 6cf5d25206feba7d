package domain

import (
	"fmt"
	"io"
	"reflect"
	"sort"
	"strings"
)

// Action is a zero-argument behavior attached to a single record.
type Action func()

// Augmentable is anything that can hold named capabilities.
type Augmentable interface {
	SetCapability(name string, action Action)
}

// Mixin attaches one capability to a record.
type Mixin func(rec Augmentable) error

// Glider is the statically typed view of the "glide" capability.
type Glider interface {
	Glide()
}

const (
	CapabilityGlide = "glide"
	GlideMessage    = "Gliding!"
)

// Record is a plain data record: a name, free-form attributes, and the
// capabilities mixed into this particular instance.
type Record struct {
	Name  string
	Attrs map[string]any

	caps map[string]Action
}

// NewRecord returns a record with a copy of attrs.
func NewRecord(name string, attrs map[string]any) *Record {
	cp := make(map[string]any, len(attrs))
	for k, v := range attrs {
		cp[k] = v
	}
	return &Record{Name: name, Attrs: cp}
}

func (r *Record) SetCapability(name string, action Action) {
	if r.caps == nil {
		r.caps = map[string]Action{}
	}
	r.caps[name] = action
}

func (r *Record) Capability(name string) (Action, bool) {
	a, ok := r.caps[name]
	return a, ok
}

// Capabilities returns the capability names in sorted order.
func (r *Record) Capabilities() []string {
	out := make([]string, 0, len(r.caps))
	for k := range r.caps {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Invoke runs the named capability.
func (r *Record) Invoke(name string) error {
	a, ok := r.caps[name]
	if !ok {
		return &OpError{
			Op:   "record.invoke",
			Kind: KindNotFound,
			Err:  fmt.Errorf("record %q has no capability %q: %w", r.Name, name, ErrNotFound),
		}
	}
	a()
	return nil
}

// Augment binds action to rec under name, replacing any earlier binding.
func Augment(rec Augmentable, name string, action Action) error {
	if isNilAugmentable(rec) {
		return invalidArgument("augment", "record is nil")
	}
	if strings.TrimSpace(name) == "" {
		return invalidArgument("augment", "capability name is empty")
	}
	if action == nil {
		return invalidArgument("augment", "capability %q has no action", name)
	}
	rec.SetCapability(name, action)
	return nil
}

// GlideMixin attaches "glide", which writes GlideMessage to w.
func GlideMixin(w io.Writer) Mixin {
	return func(rec Augmentable) error {
		return Augment(rec, CapabilityGlide, func() {
			fmt.Fprintln(w, GlideMessage)
		})
	}
}

// LookupMixin resolves a mixin declared by name in a drill set.
func LookupMixin(name string, w io.Writer) (Mixin, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case CapabilityGlide:
		return GlideMixin(w), nil
	default:
		return nil, invalidArgument("mixin.lookup", "unknown mixin %q", name)
	}
}

// KnownMixin reports whether LookupMixin would resolve name.
func KnownMixin(name string) bool {
	return strings.ToLower(strings.TrimSpace(name)) == CapabilityGlide
}

type gliderFunc Action

func (g gliderFunc) Glide() { g() }

// AsGlider exposes the glide capability of r, if it was mixed in.
func AsGlider(r *Record) (Glider, bool) {
	if r == nil {
		return nil, false
	}
	a, ok := r.Capability(CapabilityGlide)
	if !ok {
		return nil, false
	}
	return gliderFunc(a), true
}

func isNilAugmentable(rec Augmentable) bool {
	if rec == nil {
		return true
	}
	v := reflect.ValueOf(rec)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Interface, reflect.Func, reflect.Slice, reflect.Chan:
		return v.IsNil()
	}
	return false
}

// Fields is a bare field map. Capabilities land in the map itself, next to
// the data fields, the way a dynamic object would carry them.
type Fields map[string]any

func (f Fields) SetCapability(name string, action Action) {
	f[name] = action
}
