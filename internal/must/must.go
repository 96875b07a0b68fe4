// Package must handles errors by panicking. It is for command code whose
// main recovers the panic and exits.
package must

import "fmt"

// Must panics if err != nil.
// If format is given the panic value is fmt.Errorf(format...) instead of err.
func Must(err error, format ...any) {
	if err == nil {
		return
	}
	if len(format) > 0 {
		panic(fmt.Errorf(format[0].(string), format[1:]...))
	}
	panic(err)
}

// Must1 calls Must(err), then returns v.
func Must1[T any](v T, err error) T { Must(err); return v }
