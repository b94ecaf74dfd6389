// Package molerr defines the error taxonomy shared across the pricing and
// analytics core. Every layer (math, curve, bond, portfolio) wraps its
// failures in an *Error so a caller can discriminate on Kind without
// string-matching messages.
package molerr

import (
	"errors"
	"fmt"
)

// Kind is a stable, machine-readable error discriminator.
type Kind string

const (
	InvalidInput         Kind = "invalid_input"
	OutOfBounds          Kind = "out_of_bounds"
	DateError            Kind = "date_error"
	CurveError           Kind = "curve_error"
	SolverNonConvergence Kind = "solver_non_convergence"
	MathDomainError      Kind = "math_domain_error"
	BondSpecError        Kind = "bond_spec_error"
	CalibrationFailure   Kind = "calibration_failure"
	NotImplemented       Kind = "not_implemented"
)

// Error is the concrete error type returned at package boundaries.
//
// Op names the failing operation (e.g. "curve.Bootstrap"); Context carries
// free-form diagnostic data (iteration count, residual, last iterate) that
// callers may inspect but should not parse.
type Error struct {
	Kind    Kind
	Op      string
	Context map[string]any
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Kind, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Kind)
}

func (e *Error) Unwrap() error { return e.Err }

// New builds an *Error with no wrapped cause.
func New(kind Kind, op, msg string) *Error {
	return &Error{Kind: kind, Op: op, Err: errors.New(msg)}
}

// Wrap attaches an operation name and kind to an existing error.
func Wrap(kind Kind, op string, err error) *Error {
	if err == nil {
		return nil
	}
	return &Error{Kind: kind, Op: op, Err: err}
}

// WithContext returns a copy of e with k/v merged into Context.
func (e *Error) WithContext(k string, v any) *Error {
	cp := *e
	cp.Context = make(map[string]any, len(e.Context)+1)
	for k0, v0 := range e.Context {
		cp.Context[k0] = v0
	}
	cp.Context[k] = v
	return &cp
}

// Is reports whether err carries the given Kind, unwrapping as needed.
func Is(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// KindOf extracts the Kind from err, or "" if err is not (or does not wrap) an *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}
