// Package enumflag is a flag value restricted to a list of strings.
// It implements flag.Value and pflag.Value.
package enumflag

import (
	"fmt"
	"slices"
	"strings"
)

type Value struct {
	Value   string
	Allowed []string
}

func (v *Value) String() string { return v.Value }

func (v *Value) Set(x string) error {
	if !slices.Contains(v.Allowed, x) {
		return fmt.Errorf("expected one of: %v", v.Allowed)
	}
	v.Value = x
	return nil
}

// DocString returns msg followed by the allowed values, for flag usage.
func (v *Value) DocString(msg string) string {
	w := &strings.Builder{}
	if msg != "" {
		fmt.Fprintf(w, "%v: ", msg)
	}
	fmt.Fprintf(w, "one of %v", v.Allowed)
	return w.String()
}

func (v *Value) Type() string { return "string" }

// New returns a Value holding value. allowed is sorted in place.
func New(value string, allowed []string) *Value {
	slices.Sort(allowed)
	return &Value{Allowed: allowed, Value: value}
}
